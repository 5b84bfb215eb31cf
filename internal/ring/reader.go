package ring

import (
	"context"
	"io"
)

// Reader is a consuming half of a circular buffer. Every reader sees the
// full item sequence published after it was attached. A Reader is not safe
// for concurrent use by multiple goroutines.
type Reader[T any] struct {
	state *state[T]
	id    int
	wake  chan struct{}

	// lastSpace mirrors Writer.lastSpace for Consume accounting.
	lastSpace int
	detached  bool
}

// Capacity returns the number of items the buffer can hold.
func (r *Reader[T]) Capacity() int {
	return len(r.state.buf)
}

// Slice blocks until at least one item is readable and returns a contiguous
// slice of pending items. The slice is never empty and stays valid until the
// corresponding Consume calls. Once the writer has closed and everything is
// drained it fails with io.EOF; a done context aborts with the context
// error. Like Writer.Slice, the context is checked on every call.
func (r *Reader[T]) Slice(ctx context.Context) ([]T, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf, err := r.TrySlice()
		if err != nil {
			return nil, err
		}
		if len(buf) > 0 {
			return buf, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-r.wake:
		}
	}
}

// TrySlice is the non-blocking variant of Slice. It returns an empty slice
// when no data is pending, and io.EOF once the writer has closed and the
// buffer is drained.
func (r *Reader[T]) TrySlice() ([]T, error) {
	return r.slice(true)
}

func (r *Reader[T]) slice(arm bool) ([]T, error) {
	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.detached {
		panic("ring: Slice on closed Reader")
	}
	my := s.readers[r.id]

	capacity := len(s.buf)
	var pending int
	switch {
	case my.off > s.wOff:
		pending = s.wOff + capacity - my.off
	case my.off < s.wOff:
		pending = s.wOff - my.off
	case my.lap == s.wLap:
		pending = 0
	default:
		pending = capacity
	}

	if pending == 0 {
		if s.closed {
			return nil, io.EOF
		}
		if arm {
			my.armedR = true
		}
		r.lastSpace = 0
		return s.buf[my.off:my.off], nil
	}

	bounded := min(pending, capacity-my.off)
	r.lastSpace = bounded
	return s.buf[my.off : my.off+bounded], nil
}

// Consume frees the first n items of the most recently returned slice. Like
// Produce it may be split across several calls; consuming more in total than
// the slice held panics.
func (r *Reader[T]) Consume(n int) {
	if n == 0 {
		return
	}
	if n > r.lastSpace {
		panic("ring: consumed more than the last slice held")
	}
	r.lastSpace -= n

	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.detached {
		panic("ring: Consume on closed Reader")
	}
	my := s.readers[r.id]
	if my.off+n >= len(s.buf) {
		my.lap = !my.lap
	}
	my.off = (my.off + n) % len(s.buf)

	if my.armedW {
		my.armedW = false
		notify(s.wWake)
	}
}

// Close detaches the reader from the buffer. The writer stops accounting
// for it, and a writer blocked on this reader is woken. Close is idempotent.
func (r *Reader[T]) Close() {
	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.detached {
		return
	}
	r.detached = true

	my := s.readers[r.id]
	delete(s.readers, r.id)
	if my.armedW {
		notify(s.wWake)
	}
}
