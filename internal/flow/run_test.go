package flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// fixedSource emits the given items once and finishes.
func fixedSource(items []float32) *testBlock {
	return &testBlock{
		sig: Signature{Outputs: []string{"out"}},
		work: func(ctx context.Context, _ []*ring.Reader[float32], out []*ring.Writer[float32]) error {
			remaining := items
			for len(remaining) > 0 {
				buf, err := out[0].Slice(ctx)
				if err != nil {
					return err
				}
				n := copy(buf, remaining)
				out[0].Produce(n)
				remaining = remaining[n:]
			}
			return nil
		},
	}
}

// countingSource emits 0, 1, 2, ... until its output detaches or the
// context is canceled.
func countingSource() *testBlock {
	return &testBlock{
		sig: Signature{Outputs: []string{"out"}},
		work: func(ctx context.Context, _ []*ring.Reader[float32], out []*ring.Writer[float32]) error {
			i := 0
			for {
				buf, err := out[0].Slice(ctx)
				if err != nil {
					return err
				}
				for j := range buf {
					buf[j] = float32(i)
					i++
				}
				out[0].Produce(len(buf))
			}
		},
	}
}

// passThrough copies its input to its output unchanged.
func passThrough() *testBlock {
	return &testBlock{
		sig: Signature{Inputs: []string{"in"}, Outputs: []string{"out"}},
		work: func(ctx context.Context, in []*ring.Reader[float32], out []*ring.Writer[float32]) error {
			for {
				src, err := in[0].Slice(ctx)
				if err != nil {
					return err
				}
				dst, err := out[0].Slice(ctx)
				if err != nil {
					return err
				}
				n := copy(dst, src)
				out[0].Produce(n)
				in[0].Consume(n)
			}
		},
	}
}

// collectorSink appends everything it reads to dst. A positive limit
// stops it after exactly that many items.
func collectorSink(dst *[]float32, limit int) *testBlock {
	return &testBlock{
		sig: Signature{Inputs: []string{"in"}},
		work: func(ctx context.Context, in []*ring.Reader[float32], _ []*ring.Writer[float32]) error {
			for {
				buf, err := in[0].Slice(ctx)
				if err != nil {
					return err
				}
				n := len(buf)
				if limit > 0 && len(*dst)+n > limit {
					n = limit - len(*dst)
				}
				*dst = append(*dst, buf[:n]...)
				in[0].Consume(n)
				if limit > 0 && len(*dst) == limit {
					return nil
				}
			}
		},
	}
}

func chainGraph(t *testing.T, blocks map[string]Block, connections [][2]string) *Graph {
	t.Helper()
	g := New()
	for name, b := range blocks {
		require.NoError(t, g.AddBlock(name, b))
	}
	for _, c := range connections {
		from, err := endpoint.Parse(c[0])
		require.NoError(t, err)
		to, err := endpoint.Parse(c[1])
		require.NoError(t, err)
		require.NoError(t, g.Connect(from.WithDefaultPort(endpoint.DefaultOutput), to.WithDefaultPort(endpoint.DefaultInput)))
	}
	return g
}

func TestRun_LinearChain(t *testing.T) {
	t.Parallel()
	items := []float32{0.1, 0.2, 0.3, 0.4, 0.5}
	var got []float32

	g := chainGraph(t,
		map[string]Block{
			"src":  fixedSource(items),
			"mid":  passThrough(),
			"sink": collectorSink(&got, 0),
		},
		[][2]string{{"src", "mid"}, {"mid", "sink"}},
	)

	require.NoError(t, g.Run(context.Background(), RunOptions{}))
	assert.Equal(t, items, got)
}

func TestRun_EmptyGraph(t *testing.T) {
	t.Parallel()
	assert.NoError(t, New().Run(context.Background(), RunOptions{}))
}

func TestRun_RejectsInvalidGraph(t *testing.T) {
	t.Parallel()
	g := New()
	require.NoError(t, g.AddBlock("sink", inert([]string{"in"}, nil)))

	err := g.Run(context.Background(), RunOptions{})
	assert.ErrorContains(t, err, "not connected")
}

func TestRun_FanOut(t *testing.T) {
	t.Parallel()
	items := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	var left, right []float32

	g := chainGraph(t,
		map[string]Block{
			"src":   fixedSource(items),
			"left":  collectorSink(&left, 0),
			"right": collectorSink(&right, 0),
		},
		[][2]string{{"src", "left"}, {"src", "right"}},
	)

	require.NoError(t, g.Run(context.Background(), RunOptions{}))
	assert.Equal(t, items, left, "each branch observes the full stream")
	assert.Equal(t, items, right, "each branch observes the full stream")
}

func TestRun_SmallBufferStillDeliversEverything(t *testing.T) {
	t.Parallel()
	items := make([]float32, 100_000)
	for i := range items {
		items[i] = float32(i)
	}
	var got []float32

	g := chainGraph(t,
		map[string]Block{
			"src":  fixedSource(items),
			"mid":  passThrough(),
			"sink": collectorSink(&got, 0),
		},
		[][2]string{{"src", "mid"}, {"mid", "sink"}},
	)

	require.NoError(t, g.Run(context.Background(), RunOptions{BufferItems: 64}))
	assert.Equal(t, items, got)
}

func TestRun_DownstreamStopUnwindsUpstream(t *testing.T) {
	t.Parallel()
	var got []float32

	// The source is unbounded; the run still terminates because the
	// sink detaches after its quota and the detach ripples upstream.
	g := chainGraph(t,
		map[string]Block{
			"src":  countingSource(),
			"mid":  passThrough(),
			"sink": collectorSink(&got, 1000),
		},
		[][2]string{{"src", "mid"}, {"mid", "sink"}},
	)

	require.NoError(t, g.Run(context.Background(), RunOptions{}))
	require.Len(t, got, 1000)
	for i, v := range got {
		require.Equal(t, float32(i), v)
	}
}

func TestRun_BlockErrorAbortsRun(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	failing := &testBlock{
		sig: Signature{Inputs: []string{"in"}},
		work: func(context.Context, []*ring.Reader[float32], []*ring.Writer[float32]) error {
			return errBoom
		},
	}

	g := chainGraph(t,
		map[string]Block{
			"src": countingSource(),
			"bad": failing,
		},
		[][2]string{{"src", "bad"}},
	)

	err := g.Run(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorContains(t, err, `block "bad"`)
}

func TestRun_ContextCancelStopsRun(t *testing.T) {
	t.Parallel()
	var got []float32
	g := chainGraph(t,
		map[string]Block{
			"src":  countingSource(),
			"sink": collectorSink(&got, 0),
		},
		[][2]string{{"src", "sink"}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	err := g.Run(ctx, RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
