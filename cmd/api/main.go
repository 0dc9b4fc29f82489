package main

import (
	"log"

	"github.com/acceslab/acceslab-go/internal/api/middleware"
	"github.com/acceslab/acceslab-go/internal/api/routes"
	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/cron"
	"github.com/acceslab/acceslab-go/internal/db"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Connect, migrate and seed the database
	db.Init()
	if err := db.Seed(db.DB, config.SeedFile); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Object storage for equipment images and report exports
	storage.InitMinio()

	// Audit trail retention
	cron.StartCleanupTask(application.NewAuditService(repository.NewRepositories(db.DB)))

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
