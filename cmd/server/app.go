package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/williamjohngardner/items-api/internal/config"
	"github.com/williamjohngardner/items-api/internal/platform/memory"
	"github.com/williamjohngardner/items-api/internal/service"
	"github.com/williamjohngardner/items-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	itemStore store.ItemStore

	// Service interfaces
	itemService service.ItemService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration and logger that must be established
// before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize the item store. The store is in-memory, so its contents
	// live and die with the process.
	app.itemStore = memory.NewMemoryItemStore(logger)

	// Initialize item service
	var err error
	app.itemService, err = service.NewItemService(app.itemStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The item store is process memory, so there is nothing to flush or close.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
