package brochure

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterBrochureRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewBrochureRepository(db)
	controller := NewBrochureController(repo, appConfig)

	public := router.Group("/brochure")
	{
		public.GET("", controller.GetAllBrochures)
		public.GET("/:brochure_id", controller.GetBrochureByID)
	}

	admin := router.Group("/brochure")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("", controller.CreateBrochure)
		admin.PUT("/:brochure_id", controller.UpdateBrochure)
		admin.POST("/:brochure_id/pdf", controller.UploadBrochurePDF)
		admin.DELETE("/:brochure_id", controller.DeleteBrochure)
	}
}
