package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/internal/auth"
	"github.com/RohanMehta-11/festly/internal/brochure"
	"github.com/RohanMehta-11/festly/internal/club"
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/sponsor"
	"github.com/RohanMehta-11/festly/internal/taxonomy"
	"github.com/RohanMehta-11/festly/internal/user"
	"github.com/RohanMehta-11/festly/internal/winner"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded posters, logos and documents.
	r.Static(cfg.App.MediaURL, cfg.App.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "festly",
			"status": "ok",
			"docs":   "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg)
	user.RegisterUserRoutes(api, db, cfg)
	club.RegisterClubRoutes(api, db, cfg)
	taxonomy.RegisterTaxonomyRoutes(api, db, cfg)
	event.RegisterEventRoutes(api, db, cfg)
	registration.RegisterRegistrationRoutes(api, db, cfg)
	sponsor.RegisterSponsorRoutes(api, db, cfg)
	brochure.RegisterBrochureRoutes(api, db, cfg)
	winner.RegisterWinnerRoutes(api, db, cfg)

	return r
}
