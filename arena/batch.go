package arena

import "unsafe"

// batch is a single fixed-capacity block within an arena. Storage is typed so
// the garbage collector keeps tracing pointers held by the stored values.
type batch[T any] struct {
	slots    []T       // backing storage
	capacity int       // len(slots) * element size, in bytes
	used     int       // bytes handed out, only grows until Reset
	prev     *batch[T] // older batch, nil for the first one
}

// newBatch creates a batch holding at least size bytes worth of elements.
func newBatch[T any](size int, prev *batch[T]) *batch[T] {
	es := elemSize[T]()
	n := (size + es - 1) / es
	if n < 1 {
		n = 1
	}
	return &batch[T]{
		slots:    make([]T, n),
		capacity: n * es,
		prev:     prev,
	}
}

// fits reports whether the batch has room for need more bytes.
func (b *batch[T]) fits(need int) bool {
	return need <= b.capacity-b.used
}

// take carves need bytes off the batch and returns them as n elements.
// The caller must check fits first.
func (b *batch[T]) take(n, need int) []T {
	start := b.used / elemSize[T]()
	b.used += need
	return b.slots[start : start+n : start+n]
}

// contains reports whether p points into the batch's storage.
func (b *batch[T]) contains(p *T) bool {
	if len(b.slots) == 0 {
		return false
	}
	base := uintptr(unsafe.Pointer(&b.slots[0]))
	addr := uintptr(unsafe.Pointer(p))
	return addr >= base && addr < base+uintptr(b.capacity)
}

// reset rewinds the batch and drops references held by its storage.
func (b *batch[T]) reset() {
	clear(b.slots)
	b.used = 0
}

// elemSize returns the size of T in bytes. Zero-sized types are accounted as
// one byte so that every allocation advances the cursor.
func elemSize[T any]() int {
	var zero T
	if s := int(unsafe.Sizeof(zero)); s > 0 {
		return s
	}
	return 1
}
