package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/gridsolve/internal/config"
	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	config   *Config
}

// NewApp is the constructor for the main application. Answers are written to
// outW and logs to logW. With no modules given, the core modules are used.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All puzzle modules registered.", "count", len(modules), "puzzles", reg.Len())

	// A mismatch here is a programmer error, so we panic.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
