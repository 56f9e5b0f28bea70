package main

import (
	"log"
	"time"

	"licenca_flow_go/config"
	"licenca_flow_go/db"
	"licenca_flow_go/handlers"
	"licenca_flow_go/middleware"
	"licenca_flow_go/models"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Session{},
		&models.Person{},
		&models.Address{},
		&models.Property{},
		&models.PropertyTitle{},
		&models.Activity{},
		&models.Process{},
		&models.ProcessParticipant{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := db.EnsureIndexes(db.DB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Storage for power-of-attorney documents
	services.InitializeStorage(cfg)

	// Activity catalogue
	if err := services.SeedActivities(db.DB); err != nil {
		log.Fatalf("Failed to seed activities: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Protected API routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		// People
		api.GET("/people", handlers.FindPersonHandler)
		api.POST("/people/pf", handlers.CreateIndividualHandler)
		api.POST("/people/pj", handlers.CreateOrganizationHandler)
		api.PATCH("/people/:id", handlers.UpdatePersonHandler)

		// Properties and titles
		api.POST("/properties", handlers.CreatePropertyHandler)
		api.GET("/properties/:id", handlers.GetPropertyHandler)
		api.POST("/properties/:id/titles", handlers.AddTitleHandler)
		api.GET("/properties/:id/titles", handlers.ListTitlesHandler)

		// Activity catalogue
		api.GET("/activities", handlers.ListActivitiesHandler)

		// Inscription wizard
		api.POST("/inscricao/draft", handlers.EnsureDraftHandler)
		api.POST("/inscricao/activity", handlers.SelectActivityHandler)
		api.POST("/inscricao/:id/organization", handlers.LinkOrganizationHandler)
		api.POST("/inscricao/:id/participants", handlers.UpsertParticipantHandler)
		api.GET("/inscricao/:id/participants", handlers.ListParticipantsHandler)
		api.DELETE("/inscricao/:id/participants/:personId/:role", handlers.RemoveParticipantHandler)
		api.POST("/inscricao/:id/procuracao", handlers.UploadProcuracaoHandler)
		api.GET("/inscricao/docs/signed-url", handlers.SignedDocumentURLHandler)
		api.GET("/inscricao/:id", handlers.ProcessSnapshotHandler)
		api.POST("/inscricao/:id/submit", handlers.SubmitHandler)
		api.GET("/inscricao/:id/receipt", handlers.ReceiptHandler)

		// Agency export
		api.GET("/reports/submitted.xlsx", handlers.SubmittedProcessesReportHandler)
	}

	// Background session cleanup (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("[WARNING] Failed to clean up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
