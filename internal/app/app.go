package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/dag"
	"github.com/dakotatools/dakgo/internal/driver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *driver.Registry
	config   *Config
	model    *config.Model
	graph    *dag.Graph
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// In study mode the config model is loaded and cross-checked against the
// registered drivers; in driver mode no study files are read.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...driver.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := driver.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All analysis drivers registered.", "count", len(modules), "names", reg.Names())

	a := &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   appConfig,
	}

	if appConfig.DriverName != "" {
		return a
	}

	model, err := loader.Load(ctx, appConfig.StudyPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Study configuration loaded into unified model.", "studies", len(model.Studies))

	if err := validateDrivers(model, reg); err != nil {
		// Mismatch between study files and compiled-in drivers.
		panic(err)
	}
	logger.Debug("Driver validation passed.")

	a.model = model
	return a
}

// validateDrivers checks that every driver a study's interface names is
// registered.
func validateDrivers(model *config.Model, reg *driver.Registry) error {
	for _, st := range model.Studies {
		name := st.Deck.Interface().Driver
		if _, ok := reg.Lookup(name); !ok {
			return fmt.Errorf("study %q uses unregistered driver %q (registered: %v)",
				st.Name, name, reg.Names())
		}
	}
	return nil
}

// Registry returns the application's driver registry. This is primarily
// for testing.
func (a *App) Registry() *driver.Registry {
	return a.registry
}

// Model returns the loaded study model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
