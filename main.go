package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hospital-queue-server/internal/config"
	"hospital-queue-server/internal/metrics"
	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/queue"
	"hospital-queue-server/internal/routes"
	"hospital-queue-server/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Seed the department/doctor roster on first start
	if err := models.Seed(db, cfg.SeedDoctorPassword); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	// Build the queue engine over its collaborators
	estimator := &queue.FormulaEstimator{
		LoadFactor:        cfg.Queue.LoadFactor,
		OverloadThreshold: cfg.Queue.OverloadThreshold,
		OverloadPenalty:   cfg.Queue.OverloadPenalty,
		PeakStartHour:     cfg.Queue.PeakStartHour,
		PeakEndHour:       cfg.Queue.PeakEndHour,
		PeakFactor:        cfg.Queue.PeakFactor,
	}
	engine := queue.NewEngine(store.NewPatients(db), store.NewCatalog(db), queue.Options{
		Scorer:    queue.NewPriorityScorer(cfg.Queue.EmergencyKeywords),
		Estimator: estimator,
		Tokens:    queue.NewTokenIssuer(cfg.Queue.TokenPrefix),
		Metrics:   metrics.NewQueueMetrics(nil),
	})

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, engine, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
