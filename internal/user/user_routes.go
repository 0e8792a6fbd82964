package user

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo, appConfig)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		// User administration is admin-only.
		users := authenticated.Group("/user")
		users.Use(rmiddleware.AdminMiddleware(db))
		{
			users.GET("", controller.GetAllUsers)
			users.GET("/:user_id", controller.GetUserByID)
			users.DELETE("/:user_id", controller.DeleteUser)
			users.POST("/:user_id/permissions", controller.GrantPermission)
			users.DELETE("/:user_id/permissions/:code", controller.RevokePermission)
		}

		// Participant views are read-only and open to any authenticated user.
		participants := authenticated.Group("/participant")
		{
			participants.GET("", controller.GetParticipants)
			participants.GET("/:user_id", controller.GetParticipantByID)
		}
	}
}
