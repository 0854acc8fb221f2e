package main

import (
	"alcyxob/workout-api/internal/api"
	"alcyxob/workout-api/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// @title Workout Session API
// @version 1.0
// @description API for scheduling and tracking athletes' workout sessions.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	log.Println("Starting Workout Session API Server...")

	// --- Configuration ---
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	b, err := openBackend(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		log.Println("Ensuring database schema...")
		if err := b.migrate(ctx); err != nil {
			return err
		}
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	sessionService := service.NewWorkoutSessionService(b.sessions, b.athletes)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, sessionService, b.pinger)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// --- Graceful Shutdown ---
	quit, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-quit.Done():
	}
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		return err
	}

	log.Println("Server exiting.")
	return nil
}
