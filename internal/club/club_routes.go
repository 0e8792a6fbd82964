package club

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewClubRepository(db)
	controller := NewClubController(repo, appConfig)

	public := router.Group("/club")
	{
		public.GET("", controller.GetAllClubs)
		public.GET("/:club_id", controller.GetClubByID)
	}

	admin := router.Group("/club")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("", controller.CreateClub)
		admin.PUT("/:club_id", controller.UpdateClub)
		admin.DELETE("/:club_id", controller.DeleteClub)
	}
}
