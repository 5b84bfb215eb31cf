// Package head provides the block that passes through the first n
// samples of a stream and then stops. Placed after an unbounded
// source it turns an endless flow into a finite run.
package head

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

// Config defines the arguments for the head block.
type Config struct {
	Count int64 `flow:"count"`
}

// Block forwards the first Count samples unchanged, then finishes.
// Its completion detaches the upstream side and drains into EOF on
// the downstream side.
type Block struct {
	count int64
}

// New creates a head block.
func New(cfg Config) (*Block, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("head: count must be positive, got %d", cfg.Count)
	}
	return &Block{count: cfg.Count}, nil
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
	remaining := b.count
	for remaining > 0 {
		src, err := r.Slice(ctx)
		if err != nil {
			return err
		}
		dst, err := w.Slice(ctx)
		if err != nil {
			return err
		}

		n := min(len(src), len(dst))
		if int64(n) > remaining {
			n = int(remaining)
		}
		copy(dst[:n], src[:n])
		w.Produce(n)
		r.Consume(n)
		remaining -= int64(n)
	}
	return nil
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("head", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
