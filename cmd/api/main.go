// Package main provides the entry point for the FutureCrop API server
// @title FutureCrop Price Prediction API
// @version 0.1
// @description Estimates future commodity prices from recent observations and a random-walk model.
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"futurecrop/internal/api/routes"
	"futurecrop/internal/config"
	"futurecrop/internal/forecast"
	"futurecrop/internal/repository/memory"
	"futurecrop/internal/validation"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil {
		if *envFile != ".env" {
			log.Fatalf("Failed to load env file %s: %v", *envFile, err)
		}
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize validators
	validation.Initialize()

	// Load the price dataset; a missing file means synthetic-only mode
	records, err := memory.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	if len(records) == 0 {
		log.Printf("No dataset at %s, serving synthetic prices only", cfg.Dataset.Path)
	} else {
		log.Printf("Loaded %d price records from %s", len(records), cfg.Dataset.Path)
	}
	repo := memory.NewPriceRepository(records)

	predictor := forecast.NewPredictor(nil)

	// Setup routes
	router := routes.SetupRoutes(cfg, repo, predictor)

	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		log.Fatalf("Invalid port number: %v", err)
	}

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
