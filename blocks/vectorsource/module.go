// Package vectorsource provides the block that feeds a fixed sample
// vector into a flowgraph.
package vectorsource

import (
	"context"
	"fmt"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
	"github.com/specialistvlad/flowgridgo/internal/sample"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config defines the arguments for the vector_source block. The data
// is either given literally via items, or generated deterministically
// from samples and seed. A zero seed selects the default seed, so
// identical definitions replay identical data.
type Config struct {
	Items   []float32 `flow:"items,optional"`
	Samples int64     `flow:"samples,optional"`
	Seed    uint64    `flow:"seed,optional"`
	Repeat  bool      `flow:"repeat,optional"`
}

// Block replays a fixed vector of samples into its output. With
// repeat enabled it starts over after the last sample and runs until
// its downstream detaches.
type Block struct {
	items  []float32
	repeat bool
}

// New creates a vector source block. Exactly one of items or samples
// must be provided; the vector is materialized here, before any run
// starts, so generation cost never lands inside a measured run.
func New(cfg Config) (*Block, error) {
	if len(cfg.Items) > 0 && cfg.Samples > 0 {
		return nil, fmt.Errorf("vector_source: items and samples are mutually exclusive")
	}

	items := cfg.Items
	if cfg.Samples > 0 {
		seed := cfg.Seed
		if seed == 0 {
			seed = sample.DefaultSeed
		}
		items = sample.Uniform(sample.NewRand(seed), int(cfg.Samples))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("vector_source: either items or samples must be provided")
	}

	return &Block{items: items, repeat: cfg.Repeat}, nil
}

// Describe implements flow.Block.
func (b *Block) Describe() flow.Signature {
	return flow.Signature{Outputs: []string{endpoint.DefaultOutput}}
}

// Work implements flow.Block.
func (b *Block) Work(ctx context.Context, _ []*ring.Reader[float32], out []*ring.Writer[float32]) error {
	w := out[0]
	for {
		remaining := b.items
		for len(remaining) > 0 {
			buf, err := w.Slice(ctx)
			if err != nil {
				return err
			}
			n := copy(buf, remaining)
			w.Produce(n)
			remaining = remaining[n:]
		}
		if !b.repeat {
			return nil
		}
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("vector_source", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
