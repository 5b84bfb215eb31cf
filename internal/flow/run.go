package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/metrics"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// RunOptions tunes the execution of a graph.
type RunOptions struct {
	// BufferItems is the minimum capacity, in items, of the stream
	// buffer backing each connection. Values below one select the
	// ring default of a single page worth of items.
	BufferItems int
}

// plannedBlock is one block with its wired streams, ready to execute.
type plannedBlock struct {
	name  string
	block Block
	in    []*ring.Reader[float32]
	out   []*ring.Writer[float32]
}

// Run validates the graph, wires a stream buffer per connection, and
// executes every block on its own goroutine until all of them finish.
// It respects the cancellation signal from the provided context, and
// the first block failure cancels the context seen by the remaining
// blocks.
func (g *Graph) Run(ctx context.Context, opts RunOptions) error {
	logger := ctxlog.FromContext(ctx)

	g.mutex.RLock()
	plan, err := g.planLocked(opts)
	g.mutex.RUnlock()
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		return nil
	}

	logger.Debug("Starting flowgraph run.", "blocks", len(plan))
	start := time.Now()

	eg, runCtx := errgroup.WithContext(ctx)
	for _, pb := range plan {
		eg.Go(func() error {
			blockLogger := logger.With("block", pb.name)
			metrics.BlocksRunning.Inc()
			defer metrics.BlocksRunning.Dec()

			// The engine owns stream shutdown: closing the outputs
			// propagates EOF downstream, detaching the inputs lets
			// upstream writers finish early.
			defer func() {
				for _, w := range pb.out {
					w.Close()
				}
				for _, r := range pb.in {
					r.Close()
				}
			}()

			blockLogger.Debug("Block started.")
			err := pb.block.Work(runCtx, pb.in, pb.out)
			if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				blockLogger.Error("Block failed.", "error", err)
				return fmt.Errorf("block %q: %w", pb.name, err)
			}
			blockLogger.Debug("Block finished.")
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	metrics.RunsTotal.Inc()
	metrics.RunDuration.Observe(elapsed.Seconds())
	logger.Debug("Flowgraph run complete.", "blocks", len(plan), "elapsed", elapsed)
	return nil
}

// planLocked resolves the graph into per-block stream wiring. Buffers
// are created writer-first and every reader attaches before any block
// starts, so each connection observes the stream from its beginning.
func (g *Graph) planLocked(opts RunOptions) ([]plannedBlock, error) {
	if err := g.validateLocked(); err != nil {
		return nil, err
	}

	writers := make(map[endpoint.Endpoint]*ring.Writer[float32])
	for name, n := range g.blocks {
		for _, p := range n.sig.Outputs {
			writers[endpoint.New(name, p)] = ring.New[float32](opts.BufferItems)
		}
	}

	readers := make(map[endpoint.Endpoint]*ring.Reader[float32])
	for name, n := range g.blocks {
		for _, p := range n.sig.Outputs {
			w := writers[endpoint.New(name, p)]
			for _, target := range n.outputs[p] {
				readers[target] = w.AddReader()
			}
		}
	}

	plan := make([]plannedBlock, 0, len(g.blocks))
	for name, n := range g.blocks {
		pb := plannedBlock{
			name:  name,
			block: n.block,
			in:    make([]*ring.Reader[float32], len(n.sig.Inputs)),
			out:   make([]*ring.Writer[float32], len(n.sig.Outputs)),
		}
		for i, p := range n.sig.Inputs {
			pb.in[i] = readers[endpoint.New(name, p)]
		}
		for i, p := range n.sig.Outputs {
			pb.out[i] = writers[endpoint.New(name, p)]
		}
		plan = append(plan, pb)
	}
	return plan, nil
}
