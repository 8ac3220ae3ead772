// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tracker/internal/config"
	"tracker/internal/database"
	"tracker/internal/repository"
	"tracker/internal/server"
	"tracker/internal/service"
	"tracker/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migration: %v", err)
	}

	sessions := auth.NewSessionManager(cfg.Session.Secret, cfg.Session.Duration)

	authService := service.NewAuthService(repository.NewUserRepository(db))
	taskService := service.NewTaskService(repository.NewTaskRepository(db))

	srv := server.New(authService, taskService, sessions)

	go func() {
		log.Printf("Tracker listening on port %s", cfg.Server.HTTPPort)
		if err := srv.Start(cfg.Server.HTTPPort); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
