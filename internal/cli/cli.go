package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/cardi/internal/app"
	"github.com/thenoetrevino/cardi/internal/config"
	"github.com/thenoetrevino/cardi/internal/database"
	"github.com/thenoetrevino/cardi/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
	// owned is false when the App was injected and belongs to the caller
	owned bool
}

// Options carries the root flags that shape how the CLI is built
type Options struct {
	ConfigPath string
	DataDir    string
	Backend    string
}

// NewCLI loads configuration, opens the configured record store and
// wires the application services
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Flags override everything
	if opts.DataDir != "" {
		cfg.Storage.DataDir = config.ExpandHome(opts.DataDir)
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// A missing log file is not worth failing the command over
	if err := logging.Init(cfg.Log.Level); err != nil {
		slog.Warn("failed to initialize log file", "error", err)
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    app.New(store, app.WithLogger(logging.Logger)),
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// OpenStore opens the record store selected by cfg.Storage
func OpenStore(ctx context.Context, cfg *config.Config) (database.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		repo, err := database.OpenProjectRepo(ctx, cfg.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		codec, err := database.CodecFor(cfg.Storage.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return database.NewFileStore(cfg.Storage.DataDir, codec)
	}
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
