// Package config defines the format-agnostic model of a loaded study
// workspace, decoupling the application from the HCL front end.
package config

import (
	"context"
	"fmt"

	"github.com/dakotatools/dakgo/internal/deck"
)

// Model is the unified representation of every study loaded from a user's
// configuration files.
type Model struct {
	Studies []*Study
}

// Study pairs a built input deck with its position in the execution graph.
type Study struct {
	Name      string
	Deck      *deck.Deck
	DependsOn []string
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it
	// into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Study looks up a study by name.
func (m *Model) Study(name string) (*Study, bool) {
	for _, s := range m.Studies {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Validate checks cross-study consistency: unique names and resolvable
// depends_on references. Per-deck validation happens in the deck package.
func (m *Model) Validate() error {
	if len(m.Studies) == 0 {
		return fmt.Errorf("no studies defined")
	}
	seen := make(map[string]bool, len(m.Studies))
	for _, s := range m.Studies {
		if seen[s.Name] {
			return fmt.Errorf("duplicate study name %q", s.Name)
		}
		seen[s.Name] = true
	}
	for _, s := range m.Studies {
		for _, dep := range s.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("study %q depends on unknown study %q", s.Name, dep)
			}
		}
	}
	return nil
}
