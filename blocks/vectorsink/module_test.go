package vectorsink

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// feedSink streams items into the block and returns Work's result.
func feedSink(t *testing.T, b *Block, items []float32) error {
	t.Helper()
	ctx := context.Background()

	w := ring.New[float32](0)
	r := w.AddReader()

	done := make(chan error, 1)
	go func() {
		err := b.Work(ctx, []*ring.Reader[float32]{r}, nil)
		r.Close()
		done <- err
	}()

	remaining := items
	for len(remaining) > 0 {
		buf, err := w.Slice(ctx)
		if err != nil {
			break
		}
		n := copy(buf, remaining)
		w.Produce(n)
		remaining = remaining[n:]
	}
	w.Close()
	return <-done
}

func TestNew(t *testing.T) {
	t.Run("reserve preallocates the backing array", func(t *testing.T) {
		b, err := New(Config{Reserve: 4096})
		require.NoError(t, err)
		assert.Equal(t, 4096, cap(b.data))
		assert.Empty(t, b.data)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := New(Config{Reserve: -1})
		assert.ErrorContains(t, err, "reserve")

		_, err = New(Config{Max: -1})
		assert.ErrorContains(t, err, "max")
	})
}

func TestWork(t *testing.T) {
	t.Run("collects the whole stream", func(t *testing.T) {
		items := make([]float32, 50_000)
		for i := range items {
			items[i] = float32(i)
		}

		b, err := New(Config{Reserve: int64(len(items))})
		require.NoError(t, err)

		err = feedSink(t, b, items)
		assert.ErrorIs(t, err, io.EOF, "a drained input surfaces as EOF out of Work")
		assert.Equal(t, items, b.Data())
	})

	t.Run("max detaches the sink early", func(t *testing.T) {
		items := make([]float32, 10_000)
		for i := range items {
			items[i] = float32(i)
		}

		b, err := New(Config{Max: 100})
		require.NoError(t, err)

		require.NoError(t, feedSink(t, b, items))
		assert.Equal(t, items[:100], b.Data())
	})
}
