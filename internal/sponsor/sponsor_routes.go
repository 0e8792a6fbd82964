package sponsor

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSponsorRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewSponsorRepository(db)
	controller := NewSponsorController(repo, appConfig)

	public := router.Group("/sponsor")
	{
		public.GET("", controller.GetAllSponsors)
		public.GET("/:sponsor_id", controller.GetSponsorByID)
	}

	admin := router.Group("/sponsor")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("", controller.CreateSponsor)
		admin.PUT("/:sponsor_id", controller.UpdateSponsor)
		admin.POST("/:sponsor_id/logo", controller.UploadSponsorLogo)
		admin.DELETE("/:sponsor_id", controller.DeleteSponsor)
	}
}
