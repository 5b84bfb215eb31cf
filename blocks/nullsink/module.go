// Package nullsink provides the block that consumes and discards its
// input stream. It terminates chains whose output does not matter,
// such as throughput measurements.
package nullsink

import (
	"context"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config is empty; the null_sink block takes no arguments.
type Config struct{}

// Block discards every received sample, keeping only a count.
type Block struct {
	count int64
}

// New creates a null sink block.
func New(Config) (*Block, error) {
	return &Block{}, nil
}

// Count returns the number of discarded samples. It must only be
// called after the run has completed.
func (b *Block) Count() int64 {
	return b.count
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
		b.count += int64(len(buf))
		r.Consume(len(buf))
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("null_sink", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
