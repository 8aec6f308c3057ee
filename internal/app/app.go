package app

import (
	"log/slog"

	"github.com/thenoetrevino/cardi/internal/database"
	projectservice "github.com/thenoetrevino/cardi/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Record store (file or sqlite backed)
	store database.Store

	logger *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(store database.Store, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		store:          store,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(store, cfg.logger),
	}
}

// Store returns the underlying record store
func (a *App) Store() database.Store {
	return a.store
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the record store
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
