package winner

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterWinnerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewWinnerRepository(db)
	controller := NewWinnerController(repo, appConfig)

	// Podium reads are public; bank details never are.
	public := router.Group("/winner")
	{
		public.GET("", controller.GetAllWinners)
		public.GET("/:winners_id", controller.GetWinnersByID)
	}

	admin := router.Group("/winner")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("/detail", controller.CreateDetailWinner)
		admin.GET("/detail", controller.GetAllDetailWinners)
		admin.GET("/detail/:detail_id", controller.GetDetailWinnerByID)
		admin.PUT("/detail/:detail_id", controller.UpdateDetailWinner)
		admin.POST("/detail/:detail_id/pan", controller.UploadPANPhoto)
		admin.DELETE("/detail/:detail_id", controller.DeleteDetailWinner)

		admin.POST("/team", controller.CreateTeamWinner)
		admin.GET("/team", controller.GetAllTeamWinners)
		admin.GET("/team/:team_id", controller.GetTeamWinnerByID)
		admin.PUT("/team/:team_id", controller.UpdateTeamWinner)
		admin.DELETE("/team/:team_id", controller.DeleteTeamWinner)

		admin.POST("", controller.CreateWinners)
		admin.PUT("/:winners_id", controller.UpdateWinners)
		admin.DELETE("/:winners_id", controller.DeleteWinners)
	}
}
