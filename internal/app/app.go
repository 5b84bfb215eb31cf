package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/flowgridgo/internal/config"
	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	errW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	model     *config.Model
	converter config.Converter
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Reports go to outW; logs and diagnostics go to errW so a benchmark's
// stdout stays machine-parseable.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.Install(modules...)
	logger.Debug("All block modules registered.", "types", reg.Types())

	a := &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		registry: reg,
	}

	// The benchmark is self-contained; flow files are only loaded when
	// the run is driven by configuration.
	if appConfig.Bench {
		logger.Debug("Benchmark mode, skipping configuration loading.")
		return a
	}

	cfgModel, converter, err := loader.Load(ctx, appConfig.FlowPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "flows", len(cfgModel.Flows))

	a.model = cfgModel
	a.converter = converter
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
