// Package app wires the application together: logger, configuration loader,
// backend catalog, and orchestrator lifecycle.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	catalog *catalog.Catalog
	model   *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and catalog.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...catalog.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the configuration into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if appConfig.OutputOverride != "" {
		model.OutputDirectory = appConfig.OutputOverride
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Create and populate the backend catalog.
	cat := catalog.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(cat)
	}
	logger.Debug("All backend modules registered.", "count", len(modules))

	return &App{
		outW:    outW,
		logger:  logger,
		catalog: cat,
		model:   model,
	}
}

// Catalog returns the application's backend catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
