// Package bench implements the built-in copy-chain micro-benchmark: a
// fixed vector of uniform random samples pushed through a straight
// line of pass-through stages. Only the graph run is timed; sample
// generation and graph construction happen before the clock starts.
package bench

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/metrics"
	"github.com/specialistvlad/flowgridgo/internal/sample"
)

// Default workload, matching the classic copy flowgraph benchmark.
const (
	DefaultCopies  = 200
	DefaultSamples = 20000000
)

// Options configures a benchmark invocation.
type Options struct {
	// Copies is the number of pass-through stages between source and
	// sink. Must be at least 1.
	Copies int

	// Samples is the length of the generated input vector.
	Samples int

	// Seed feeds the sample generator, so runs are reproducible.
	Seed uint64

	// Repeat runs the chain this many times on freshly built graphs
	// over the same input vector.
	Repeat int

	// Verify compares the sink's collected output against the source
	// vector after every run.
	Verify bool

	// BufferItems is passed through to flow.RunOptions.
	BufferItems int
}

// Run executes the benchmark. One elapsed-seconds line per run goes to
// stdout; with more than one repetition a summary goes to stderr so
// stdout stays machine-parseable.
func Run(ctx context.Context, stdout, stderr io.Writer, opts Options) error {
	if opts.Copies < 1 {
		return fmt.Errorf("at least one copy stage is required, got %d", opts.Copies)
	}
	if opts.Samples < 1 {
		return fmt.Errorf("sample count must be positive, got %d", opts.Samples)
	}
	if opts.Repeat < 1 {
		return fmt.Errorf("repeat count must be positive, got %d", opts.Repeat)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generating benchmark input.", "samples", opts.Samples, "seed", opts.Seed)
	items := sample.Uniform(sample.NewRand(opts.Seed), opts.Samples)

	seconds := make([]float64, 0, opts.Repeat)
	for rep := 0; rep < opts.Repeat; rep++ {
		g, sink, err := Chain(items, opts.Copies)
		if err != nil {
			return err
		}

		start := time.Now()
		runErr := g.Run(ctx, flow.RunOptions{BufferItems: opts.BufferItems})
		elapsed := time.Since(start)
		if runErr != nil {
			return runErr
		}
		metrics.ItemsProcessed.Add(float64(opts.Samples))

		if opts.Verify {
			if err := verify(items, sink.Data()); err != nil {
				return err
			}
		}

		if err := writeDuration(stdout, elapsed.Seconds()); err != nil {
			return err
		}
		seconds = append(seconds, elapsed.Seconds())
		logger.Debug("Benchmark run complete.", "rep", rep, "elapsed", elapsed)
	}

	if opts.Repeat > 1 {
		return writeSummary(stderr, seconds)
	}
	return nil
}

// verify checks that the sink collected exactly the source vector.
func verify(want, got []float32) error {
	if len(got) != len(want) {
		return fmt.Errorf("verification failed: sink collected %d samples, want %d", len(got), len(want))
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("verification failed: sink samples differ from source")
	}
	return nil
}
