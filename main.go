package main

import (
	"log"

	"github.com/wbzhu/matchledger/config"
	_ "github.com/wbzhu/matchledger/docs"
	"github.com/wbzhu/matchledger/internal/match"
	"github.com/wbzhu/matchledger/internal/player"
	"github.com/wbzhu/matchledger/routes"
)

// @title MatchLedger REST API
// @version 1.0
// @description Attendance tracking and fee allocation for an amateur football club.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{},
		&match.Match{}, &match.Participation{}, &match.Event{}, &match.FeeOverride{},
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
