package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/flowgridgo/internal/config"
	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
)

// Build constructs a complete, validated flowgraph from a single flow
// definition.
func Build(ctx context.Context, f *config.Flow, reg *registry.Registry, conv config.Converter) (*flow.Graph, error) {
	logger := ctxlog.FromContext(ctx).With("flow", f.Name)
	logger.Debug("Build: Starting graph construction.")

	g := flow.New()

	// First pass: construct and add every block instance.
	for _, def := range f.Blocks {
		handler, ok := reg.Lookup(def.TypeName)
		if !ok {
			return nil, fmt.Errorf("flow %q: block %q: unknown block type %q (registered: %s)",
				f.Name, def.Name, def.TypeName, strings.Join(reg.Types(), ", "))
		}

		params := handler.NewParams()
		if err := conv.DecodeParams(ctx, params, def.Arguments, nil); err != nil {
			return nil, fmt.Errorf("flow %q: block %q: %w", f.Name, def.Name, err)
		}

		b, err := handler.New(params)
		if err != nil {
			return nil, fmt.Errorf("flow %q: block %q: %w", f.Name, def.Name, err)
		}
		if err := g.AddBlock(def.Name, b); err != nil {
			return nil, fmt.Errorf("flow %q: %w", f.Name, err)
		}
	}
	logger.Debug("Build: Block creation complete.", "block_count", len(f.Blocks))

	// Second pass: wire the connections.
	for _, c := range f.Connections {
		from, err := endpoint.Parse(c.From)
		if err != nil {
			return nil, fmt.Errorf("flow %q: connect from: %w", f.Name, err)
		}
		to, err := endpoint.Parse(c.To)
		if err != nil {
			return nil, fmt.Errorf("flow %q: connect to: %w", f.Name, err)
		}

		from = from.WithDefaultPort(endpoint.DefaultOutput)
		to = to.WithDefaultPort(endpoint.DefaultInput)

		if err := g.Connect(from, to); err != nil {
			return nil, fmt.Errorf("flow %q: %w", f.Name, err)
		}
	}
	logger.Debug("Build: Connection wiring complete.", "connection_count", len(f.Connections))

	// Final validation: port coverage and cycle detection.
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("flow %q: invalid flowgraph: %w", f.Name, err)
	}
	logger.Debug("Build: Validation passed.")

	return g, nil
}
