package ring

import (
	"os"
	"reflect"
	"sync"
)

// state is the bookkeeping shared by a writer and its readers. All fields
// are guarded by mu; wake channels have capacity one and are written with
// non-blocking sends, so a pending token acts as a level-triggered signal.
type state[T any] struct {
	mu  sync.Mutex
	buf []T

	wOff   int
	wLap   bool
	closed bool

	// hadReaders distinguishes a buffer that never had readers (free to
	// overwrite) from one whose readers have all detached (orphaned).
	hadReaders bool

	readers map[int]*readerState
	nextID  int

	// wWake is the writer's wakeup channel. Readers drop a token into it
	// when they free space the writer armed itself for.
	wWake chan struct{}
}

// readerState tracks one attached reader.
type readerState struct {
	off int
	lap bool

	// wake receives a token when the writer publishes items this reader
	// armed itself for.
	wake   chan struct{}
	armedR bool

	// armedW is set by the writer when this reader is the one it is
	// blocked on; the reader notifies wWake on its next Consume or Close.
	armedW bool
}

// New creates a circular buffer that holds at least minItems items of type T
// and returns its writing half. The actual capacity is minItems rounded up so
// that the backing byte span is a whole number of pages; minItems <= 0 picks
// the one-page default.
func New[T any](minItems int) *Writer[T] {
	capacity := capacityFor[T](minItems)
	s := &state[T]{
		buf:     make([]T, capacity),
		readers: make(map[int]*readerState),
		wWake:   make(chan struct{}, 1),
	}
	return &Writer[T]{state: s}
}

// capacityFor rounds minItems up to the smallest item count whose byte span
// is a multiple of the page size.
func capacityFor[T any](minItems int) int {
	itemSize := int(reflect.TypeFor[T]().Size())
	if itemSize == 0 {
		itemSize = 1
	}
	page := os.Getpagesize()
	chunk := page / gcd(page, itemSize)
	if minItems <= 0 {
		return chunk
	}
	return (minItems + chunk - 1) / chunk * chunk
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// notify drops a wakeup token into ch without blocking. A token that is
// already pending is enough; the woken side re-checks state in a loop.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
