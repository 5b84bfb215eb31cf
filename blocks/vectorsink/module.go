// Package vectorsink provides the block that collects a flowgraph's
// output stream into memory.
package vectorsink

import (
	"context"
	"fmt"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config defines the arguments for the vector_sink block. Reserve
// preallocates the backing array so collection never reallocates
// inside a measured run. A positive max detaches the sink after that
// many items.
type Config struct {
	Reserve int64 `flow:"reserve,optional"`
	Max     int64 `flow:"max,optional"`
}

// Block accumulates every received sample in memory.
type Block struct {
	max  int64
	data []float32
}

// New creates a vector sink block.
func New(cfg Config) (*Block, error) {
	if cfg.Reserve < 0 {
		return nil, fmt.Errorf("vector_sink: reserve must not be negative")
	}
	if cfg.Max < 0 {
		return nil, fmt.Errorf("vector_sink: max must not be negative")
	}
	return &Block{
		max:  cfg.Max,
		data: make([]float32, 0, cfg.Reserve),
	}, nil
}

// Data returns the collected samples. It must only be called after
// the run has completed.
func (b *Block) Data() []float32 {
	return b.data
}

// Describe implements flow.Block.
func (b *Block) Describe() flow.Signature {
	return flow.Signature{Inputs: []string{endpoint.DefaultInput}}
}

// Work implements flow.Block.
func (b *Block) Work(ctx context.Context, in []*ring.Reader[float32], _ []*ring.Writer[float32]) error {
	r := in[0]
	for {
		buf, err := r.Slice(ctx)
		if err != nil {
			return err
		}

		n := len(buf)
		if b.max > 0 && int64(len(b.data))+int64(n) > b.max {
			n = int(b.max - int64(len(b.data)))
		}
		b.data = append(b.data, buf[:n]...)
		r.Consume(n)

		if b.max > 0 && int64(len(b.data)) == b.max {
			return nil
		}
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("vector_sink", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
