package event

import (
	"github.com/RohanMehta-11/festly/config"
	mw "github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewEventRepository(db)
	controller := NewEventController(repo, appConfig)

	public := router.Group("/event")
	{
		public.GET("", controller.GetAllEvents)
		public.GET("/:event_id", controller.GetEventByID)
	}

	admin := router.Group("/event")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("", controller.CreateEvent)
		admin.PUT("/:event_id", controller.UpdateEvent)
		admin.DELETE("/:event_id", controller.DeleteEvent)
		admin.GET("/:event_id/history", controller.GetEventHistory)
		admin.POST("/:event_id/poster", controller.UploadPoster)
		admin.POST("/:event_id/rules", controller.UploadRulesPDF)
	}
}
