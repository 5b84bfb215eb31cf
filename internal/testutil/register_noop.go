package testutil

import (
	"context"

	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// noopBlock has no ports and does nothing when run.
type noopBlock struct{}

func (noopBlock) Describe() flow.Signature { return flow.Signature{} }

func (noopBlock) Work(context.Context, []*ring.Reader[float32], []*ring.Writer[float32]) error {
	return nil
}

// NoOpModule registers a single "noop" block type with no ports and no
// arguments. It's useful for tests that need valid HCL that can pass
// registry validation without moving any data.
type NoOpModule struct{}

// Register implements the registry.Module interface.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterBlock("noop", &registry.RegisteredBlock{
		NewParams: func() any { return new(struct{}) },
		New: func(any) (flow.Block, error) {
			return noopBlock{}, nil
		},
	})
}
