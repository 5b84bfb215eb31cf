// Package ring implements the circular sample buffer that carries data
// between connected blocks of a flowgraph.
//
// # Model
//
// A buffer is created through its writing half. Readers are attached to a
// Writer and each reader observes every item the writer publishes from the
// moment it was attached:
//
//	w := ring.New[float32](4096)
//	r := w.AddReader()
//
// The writer asks for free space with Slice, fills (part of) the returned
// slice, and publishes with Produce. Readers mirror that with Slice and
// Consume. Both sides may call Produce/Consume several times against one
// slice as long as the total does not exceed the slice length.
//
// # Capacity accounting
//
// Writer and reader positions carry a wrap flag in addition to the offset,
// so a full buffer is distinguishable from an empty one and the entire
// capacity is usable, not capacity-1. The requested capacity is rounded up
// until the backing byte span is a whole number of memory pages.
//
// Returned slices are contiguous views into the buffer and are bounded by
// the physical wrap point; callers already loop on Slice/Produce, so a
// bounded slice only means one extra iteration per lap.
//
// # Blocking and termination
//
// Slice blocks until at least one item (or one free slot) is available and
// honors context cancellation. Close on the writer lets readers drain what
// is left and then fail with io.EOF. A writer whose readers have all
// detached gets io.ErrClosedPipe, so upstream producers stop instead of
// filling a buffer nobody drains. A writer that never had readers does not
// block and silently overwrites.
//
// A Writer or Reader must not be used from more than one goroutine at a
// time; distinct halves of the same buffer are safe to use concurrently.
package ring
