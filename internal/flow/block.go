package flow

import (
	"context"

	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// Signature declares the ports a block exposes. Port names must be
// unique within each direction; the same name may appear on both an
// input and an output.
type Signature struct {
	Inputs  []string
	Outputs []string
}

// Block is a single unit of stream processing. Implementations are
// constructed per graph and owned by it; Work is called exactly once,
// on its own goroutine, with the wired streams.
type Block interface {
	// Describe reports the block's ports. It is consulted while the
	// graph is wired, before Work runs, and must be stable.
	Describe() Signature

	// Work processes the stream until the inputs drain or the outputs
	// detach. The in and out slices are ordered to match Describe.
	// Returning io.EOF or io.ErrClosedPipe signals clean completion;
	// any other non-nil error aborts the whole run.
	//
	// Work must not retain in or out past its return. The engine
	// closes both sides afterwards.
	Work(ctx context.Context, in []*ring.Reader[float32], out []*ring.Writer[float32]) error
}
