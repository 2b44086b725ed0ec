// Package main implements the entry point for the items API server,
// a minimal HTTP CRUD service for items backed by an in-memory store.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/williamjohngardner/items-api/internal/config"
	"github.com/williamjohngardner/items-api/internal/platform/logger"
)

// main is the entry point for the items-api server.
// It initializes configuration, sets up logging, injects dependencies,
// and starts the HTTP server.
func main() {
	ctx := context.Background()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, configures logging, and wires the
// application dependencies. Returns the assembled application and any
// initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger)
}
