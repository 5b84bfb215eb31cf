// Package copy provides the pass-through block. It moves samples from
// its input to its output unchanged, which makes it the unit of work
// for scheduler and buffer benchmarks.
package copy

import (
	"context"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config is empty; the copy block takes no arguments.
type Config struct{}

// Block copies its input stream to its output stream unchanged,
// preserving order and batch boundaries as space allows.
type Block struct{}

// New creates a copy block.
func New(Config) (*Block, error) {
	return &Block{}, nil
}

// Describe implements flow.Block.
func (b *Block) Describe() flow.Signature {
	return flow.Signature{
		Inputs:  []string{endpoint.DefaultInput},
		Outputs: []string{endpoint.DefaultOutput},
	}
}

// Work implements flow.Block.
func (b *Block) Work(ctx context.Context, in []*ring.Reader[float32], out []*ring.Writer[float32]) error {
	r, w := in[0], out[0]
	for {
		src, err := r.Slice(ctx)
		if err != nil {
			return err
		}
		dst, err := w.Slice(ctx)
		if err != nil {
			return err
		}

		n := copy(dst, src)
		w.Produce(n)
		r.Consume(n)
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("copy", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
