package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chefcheck/chefcheck/internal/config"
	"github.com/chefcheck/chefcheck/internal/database"
	"github.com/chefcheck/chefcheck/internal/handlers"
	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Appliance{},
		&models.TemperatureLog{},
		&models.DeliveryLog{},
		&models.DeliveryItem{},
		&models.ProductionLog{},
		&models.CleaningTask{},
		&models.CleaningChecklistItem{},
		&models.SystemParameters{},
	)
	if err != nil {
		log.Printf("Migration warning: %v\n", err)
	} else {
		log.Println("Schema synchronized successfully")
	}

	// 4. Ensure the singleton parameters row exists
	var params models.SystemParameters
	err = db.Where(models.SystemParameters{ID: models.SystemParametersID}).
		Attrs(models.DefaultParameters()).
		FirstOrCreate(&params).Error
	if err != nil {
		log.Printf("Parameters bootstrap warning: %v", err)
	}

	// 5. Start the live activity hub
	hub := websocket.NewHub()
	go hub.Run()

	// 6. Set up HTTP router
	router := handlers.NewRouter(db, cfg, hub)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Handler(),
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start server in goroutine
	go func() {
		log.Printf("ChefCheck API starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v. Shutting down gracefully...\n", sig)

	// Create context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Shutdown complete")
}
