package driver

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface driver packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry maps analysis driver names to their factories for a single
// application instance.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named driver factory. Registering the same name twice is
// a programmer error and panics.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("driver with name '%s' already registered", name))
	}
	slog.Debug("Registering analysis driver.", "name", name)
	r.factories[name] = f
}

// Lookup returns the factory for a driver name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns all registered driver names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
