package ring

import (
	"context"
	"io"
)

// Writer is the producing half of a circular buffer. It is not safe for
// concurrent use by multiple goroutines.
type Writer[T any] struct {
	state *state[T]

	// lastSpace is the unconsumed remainder of the slice returned by the
	// most recent Slice/TrySlice call; Produce draws it down.
	lastSpace int
}

// AddReader attaches a new reader that observes every item published from
// this point on. Readers may be attached at any time, including while the
// writer is producing from another goroutine.
func (w *Writer[T]) AddReader() *Reader[T] {
	s := w.state
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	wake := make(chan struct{}, 1)
	s.readers[id] = &readerState{
		off:  s.wOff,
		lap:  s.wLap,
		wake: wake,
	}
	s.hadReaders = true

	return &Reader[T]{state: s, id: id, wake: wake}
}

// Capacity returns the number of items the buffer can hold.
func (w *Writer[T]) Capacity() int {
	return len(w.state.buf)
}

// Slice blocks until at least one free slot is available and returns a
// contiguous slice of free space. The returned slice is never empty and
// stays valid until the corresponding Produce calls. It fails with
// io.ErrClosedPipe once every attached reader has detached, and with the
// context error once ctx is done. The context is checked on every call,
// so a producer that never fills the buffer still notices cancellation.
func (w *Writer[T]) Slice(ctx context.Context) ([]T, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf, err := w.TrySlice()
		if err != nil {
			return nil, err
		}
		if len(buf) > 0 {
			return buf, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-w.state.wWake:
		}
	}
}

// TrySlice is the non-blocking variant of Slice. It may return an empty
// slice when the buffer is full.
func (w *Writer[T]) TrySlice() ([]T, error) {
	return w.slice(true)
}

func (w *Writer[T]) slice(arm bool) ([]T, error) {
	s := w.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		panic("ring: Slice on closed Writer")
	}
	if s.hadReaders && len(s.readers) == 0 {
		return nil, io.ErrClosedPipe
	}

	space := w.spaceLocked(arm)
	bounded := min(space, len(s.buf)-s.wOff)
	w.lastSpace = bounded
	return s.buf[s.wOff : s.wOff+bounded], nil
}

// spaceLocked computes the free space as the minimum over all readers and,
// when arm is set and some reader leaves no room, arms the writer wakeup on
// that reader. Must be called with s.mu held.
func (w *Writer[T]) spaceLocked(arm bool) int {
	s := w.state
	capacity := len(s.buf)
	space := capacity

	for _, r := range s.readers {
		var free int
		switch {
		case s.wOff > r.off:
			free = r.off + capacity - s.wOff
		case s.wOff < r.off:
			free = r.off - s.wOff
		case r.lap == s.wLap:
			free = capacity
		default:
			free = 0
		}
		space = min(space, free)
		if free == 0 {
			if arm {
				r.armedW = true
			}
			break
		}
	}
	return space
}

// Produce publishes the first n items of the most recently returned slice.
// It may be called several times against one slice; producing more in total
// than the slice held is a programming error and panics.
func (w *Writer[T]) Produce(n int) {
	if n == 0 {
		return
	}
	if n > w.lastSpace {
		panic("ring: produced more than the last slice held")
	}
	w.lastSpace -= n

	s := w.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		panic("ring: Produce on closed Writer")
	}
	if s.wOff+n >= len(s.buf) {
		s.wLap = !s.wLap
	}
	s.wOff = (s.wOff + n) % len(s.buf)

	for _, r := range s.readers {
		if r.armedR {
			r.armedR = false
			notify(r.wake)
		}
	}
}

// Close marks the stream as finished. Readers drain the remaining items and
// then observe io.EOF. Close is idempotent.
func (w *Writer[T]) Close() {
	s := w.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, r := range s.readers {
		if r.armedR {
			r.armedR = false
			notify(r.wake)
		}
	}
}
