package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/flowgridgo/internal/flow"
)

// RegisteredBlock holds the compiled Go parts of a block type.
type RegisteredBlock struct {
	// NewParams returns a pointer to a fresh, zero-valued parameter
	// struct to decode a block definition's arguments into.
	NewParams func() any

	// New constructs the block from a parameter struct previously
	// produced by NewParams.
	New func(params any) (flow.Block, error)
}

// RegisterBlock registers the Go constructor for a block type.
func (r *Registry) RegisterBlock(name string, handler *RegisteredBlock) {
	if _, exists := r.BlockRegistry[name]; exists {
		panic(fmt.Sprintf("block type with name '%s' already registered", name))
	}
	slog.Debug("Registering block type.", "name", name)
	r.BlockRegistry[name] = handler
}

// Lookup returns the registered handler for a block type name.
func (r *Registry) Lookup(name string) (*RegisteredBlock, bool) {
	handler, ok := r.BlockRegistry[name]
	return handler, ok
}

// Types returns the sorted names of all registered block types.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.BlockRegistry))
	for name := range r.BlockRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
