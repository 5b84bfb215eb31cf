// Package throttle provides the block that limits a stream to a fixed
// sample rate. A flowgraph has no inherent clock; placing a throttle
// in a chain simulates the pacing of real hardware.
package throttle

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config defines the arguments for the throttle block. Burst bounds
// how many samples may pass in one batch; when omitted it defaults to
// one second worth of samples.
type Config struct {
	SamplesPerSec float64 `flow:"samples_per_sec"`
	Burst         int64   `flow:"burst,optional"`
}

// Block forwards its input unchanged while holding the long-term
// throughput at the configured rate.
type Block struct {
	limiter *rate.Limiter
	burst   int
}

// New creates a throttle block.
func New(cfg Config) (*Block, error) {
	if cfg.SamplesPerSec <= 0 {
		return nil, fmt.Errorf("throttle: samples_per_sec must be positive, got %v", cfg.SamplesPerSec)
	}
	if cfg.Burst < 0 {
		return nil, fmt.Errorf("throttle: burst must not be negative, got %d", cfg.Burst)
	}

	burst := int(cfg.Burst)
	if burst == 0 {
		burst = int(cfg.SamplesPerSec)
		if burst < 1 {
			burst = 1
		}
	}

	return &Block{
		limiter: rate.NewLimiter(rate.Limit(cfg.SamplesPerSec), burst),
		burst:   burst,
	}, nil
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

		n := min(len(src), len(dst), b.burst)
		if err := b.limiter.WaitN(ctx, n); err != nil {
			return err
		}
		copy(dst[:n], src[:n])
		w.Produce(n)
		r.Consume(n)
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("throttle", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
