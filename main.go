package main

import (
	"log"

	"github.com/RohanMehta-11/festly/config"
	_ "github.com/RohanMehta-11/festly/docs"
	"github.com/RohanMehta-11/festly/internal/brochure"
	"github.com/RohanMehta-11/festly/internal/club"
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/sponsor"
	"github.com/RohanMehta-11/festly/internal/taxonomy"
	"github.com/RohanMehta-11/festly/internal/user"
	"github.com/RohanMehta-11/festly/internal/winner"
	"github.com/RohanMehta-11/festly/routes"
)

// @title Festly REST API
// @version 1.0
// @description Event registration backend for the college fest: clubs, events, registrations, sponsors and winner tracking.
// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.Role{}, &user.Permission{},
		&club.Club{},
		&taxonomy.EventCategory{}, &taxonomy.EventType{},
		&event.Event{}, &event.EventHistory{},
		&registration.Registration{},
		&sponsor.Sponsor{}, &brochure.Brochure{},
		&winner.DetailWinner{}, &winner.TeamWinner{}, &winner.Winners{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
