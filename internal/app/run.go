package app

import (
	"context"
	"fmt"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/ctxlog"
	"github.com/dakotatools/dakgo/internal/dag"
	"github.com/dakotatools/dakgo/internal/driver"
	"github.com/dakotatools/dakgo/internal/study"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.DriverName != "" {
		return a.runDriver(ctx)
	}

	if a.config.RenderOnly {
		return a.renderDecks()
	}

	a.logger.Debug("Building study dependency graph from config model...")
	graph, err := dag.Build(ctx, a.model, a.runFor)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.graph = graph
	a.logger.Debug("Dependency graph built.", "node_count", len(graph.Nodes))

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	if len(graph.Nodes) == 0 {
		a.logger.Warn("No studies found in graph, execution not required.")
		return nil
	}

	a.logger.Info("🚀 Starting study execution...", "studies", len(graph.Nodes))
	exec := dag.NewExecutor(graph, a.config.WorkerCount)
	if err := exec.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 All studies finished.")
	return nil
}

// runFor wraps one configured study into a graph run function.
func (a *App) runFor(st *config.Study) dag.RunFunc {
	s := study.New(st.Name, st.Deck, study.Options{
		BinPath: a.config.DakotaBin,
		Workdir: a.config.Workdir,
	})
	return func(ctx context.Context) error {
		res, err := s.Run(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Study summary written.",
			"study", st.Name, "run_id", res.RunID, "workdir", res.Workdir)
		return nil
	}
}

// renderDecks prints each study's rendered DAKOTA input deck to the output
// writer without running anything.
func (a *App) renderDecks() error {
	for _, st := range a.model.Studies {
		text, err := st.Deck.Render()
		if err != nil {
			return fmt.Errorf("rendering study %q: %w", st.Name, err)
		}
		fmt.Fprintf(a.outW, "# study: %s\n%s\n", st.Name, text)
	}
	return nil
}

// runDriver executes one analysis driver evaluation. DAKOTA's shim script
// invokes this mode once per evaluation from inside the eval directory.
func (a *App) runDriver(ctx context.Context) error {
	f, ok := a.registry.Lookup(a.config.DriverName)
	if !ok {
		return fmt.Errorf("unknown driver %q (registered: %v)", a.config.DriverName, a.registry.Names())
	}
	a.logger.Debug("Running analysis driver.",
		"driver", a.config.DriverName, "params", a.config.ParamsPath, "results", a.config.ResultsPath)
	return driver.ExecuteFactory(ctx, f, a.config.ParamsPath, a.config.ResultsPath)
}
