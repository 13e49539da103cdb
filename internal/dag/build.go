package dag

import (
	"context"
	"fmt"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/ctxlog"
)

// Build turns the loaded config model into an executable graph. The runFor
// callback supplies each study's work function.
func Build(ctx context.Context, model *config.Model, runFor func(*config.Study) RunFunc) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	graph := New()
	for _, s := range model.Studies {
		graph.AddNode(s.Name, runFor(s))
	}
	for _, s := range model.Studies {
		for _, dep := range s.DependsOn {
			if err := graph.AddEdge(dep, s.Name); err != nil {
				return nil, fmt.Errorf("wiring dependency %s -> %s: %w", dep, s.Name, err)
			}
		}
	}

	if err := graph.DetectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Study graph built.", "node_count", len(graph.Nodes))
	return graph, nil
}
