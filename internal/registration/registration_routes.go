package registration

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRegistrationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRegistrationRepository(db)
	controller := NewRegistrationController(repo, appConfig)

	authenticated := router.Group("/registration")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.POST("", controller.CreateRegistration)
		authenticated.GET("", controller.GetAllRegistrations)
		authenticated.GET("/:registration_id", controller.GetRegistrationByID)
		authenticated.DELETE("/:registration_id", controller.DeleteRegistration)

		// Bulk import is gated behind its own capability, not a role.
		authenticated.POST("/import",
			rmiddleware.PermissionMiddleware(db, PermImport),
			controller.ImportRegistrations)

		authenticated.GET("/export",
			rmiddleware.AdminMiddleware(db),
			controller.ExportRegistrations)
	}
}
