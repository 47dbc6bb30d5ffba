// Package arena implements a typed batch allocator with shared, reference
// counted handles. Memory is carved from fixed-size batches by bumping a
// cursor and is only reclaimed as a whole.
package arena

import (
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// state is the arena shared by every handle aliasing it.
type state[T any] struct {
	last        *batch[T] // newest batch, head of the backward chain
	numBatches  int
	refs        int
	batchSize   int
	maxBatches  int
	deallocated int
	logger      log.Logger
}

// Allocator is a handle to a batch arena holding values of type T.
// Copies made with Clone or Assign alias the same arena; the arena is dropped
// when the last handle is released. Not goroutine-safe.
type Allocator[T any] struct {
	s *state[T]
}

// NewAllocator creates an allocator whose batches hold batchSize bytes.
// If batchSize <= 0, DefaultBatchSize is used; it is capped at MaxBatchBytes.
// No batch is allocated until the first request.
func NewAllocator[T any](batchSize int) *Allocator[T] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchSize = min(batchSize, MaxBatchBytes)
	return newAllocator[T](batchSize, 0, log.NewNopLogger())
}

// New creates an allocator from a validated config. A nil logger discards
// all output.
func New[T any](cfg Config, logger log.Logger) (*Allocator[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return newAllocator[T](cfg.BatchSize, cfg.MaxBatches, logger), nil
}

func newAllocator[T any](batchSize, maxBatches int, logger log.Logger) *Allocator[T] {
	return &Allocator[T]{s: &state[T]{
		refs:       1,
		batchSize:  batchSize,
		maxBatches: maxBatches,
		logger:     logger,
	}}
}

// Rebind returns a new allocator for element type U configured like a.
// The new allocator has its own arena and a reference count of one.
func Rebind[U, T any](a *Allocator[T]) *Allocator[U] {
	s := a.live()
	return newAllocator[U](s.batchSize, s.maxBatches, s.logger)
}

// Allocate returns n contiguous, zeroed elements carved from the arena.
// Batches are searched from the newest backwards; if none has room, a new
// batch of max(BatchSize, n*sizeof(T)) bytes becomes the head of the chain.
// The returned slice never moves and stays valid until the arena is Reset or
// dropped. Returns nil if n <= 0.
func (a *Allocator[T]) Allocate(n int) ([]T, error) {
	s := a.live()
	if n <= 0 {
		return nil, nil
	}

	es := elemSize[T]()
	if n > math.MaxInt/es {
		return nil, errors.Wrapf(ErrOutOfMemory, "request of %d elements of %d bytes overflows", n, es)
	}
	need := n * es

	for b := s.last; b != nil; b = b.prev {
		if b.fits(need) {
			return b.take(n, need), nil
		}
	}

	b, err := s.grow(need)
	if err != nil {
		return nil, err
	}
	return b.take(n, need), nil
}

// AllocateOne returns storage for a single element.
func (a *Allocator[T]) AllocateOne() (*T, error) {
	s, err := a.Allocate(1)
	if err != nil {
		return nil, err
	}
	return &s[0], nil
}

// EnsureCapacity ensures the newest batch can serve n more elements,
// growing the arena with a new batch if it cannot.
func (a *Allocator[T]) EnsureCapacity(n int) error {
	s := a.live()
	if n <= 0 {
		return nil
	}
	es := elemSize[T]()
	if n > math.MaxInt/es {
		return errors.Wrapf(ErrOutOfMemory, "request of %d elements of %d bytes overflows", n, es)
	}
	if s.last != nil && s.last.fits(n*es) {
		return nil
	}
	_, err := s.grow(n * es)
	return err
}

// Construct stores v at p.
func (a *Allocator[T]) Construct(p *T, v T) {
	*p = v
}

// ConstructWith zeroes the element at p and lets init build it in place.
func (a *Allocator[T]) ConstructWith(p *T, init func(*T)) {
	var zero T
	*p = zero
	if init != nil {
		init(p)
	}
}

// Destroy zeroes the element at p, dropping any references it holds.
// The bytes are not reclaimed.
func (a *Allocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Deallocate hands elements back to the arena. Arenas do not support partial
// frees, so the storage is only accounted for and becomes reusable after
// Reset. Use Reset to reclaim the whole arena.
func (a *Allocator[T]) Deallocate(p []T) {
	s := a.live()
	s.deallocated += len(p) * elemSize[T]()
}

// DeallocateOne hands a single element back to the arena, like Deallocate.
func (a *Allocator[T]) DeallocateOne(p *T) {
	s := a.live()
	s.deallocated += elemSize[T]()
}

// Reset rewinds every batch to empty while keeping them for reuse.
// It affects every handle sharing the arena: memory returned earlier by any
// of them must no longer be used. Any list.List built on the arena must be
// cleared before Reset, its nodes would otherwise be zeroed in place.
func (a *Allocator[T]) Reset() {
	s := a.live()
	for b := s.last; b != nil; b = b.prev {
		b.reset()
	}
	s.deallocated = 0
}

// Clone returns a new handle sharing this arena and bumps the reference count.
func (a *Allocator[T]) Clone() *Allocator[T] {
	s := a.live()
	s.refs++
	return &Allocator[T]{s: s}
}

// Assign makes a share other's arena, releasing the arena a referenced before.
func (a *Allocator[T]) Assign(other *Allocator[T]) {
	o := other.live()
	if a.s == o {
		return
	}
	a.Release()
	o.refs++
	a.s = o
}

// Release drops this handle. The last handle to be released drops all
// batches. Any subsequent use of the handle panics. Releasing twice is a no-op.
func (a *Allocator[T]) Release() {
	s := a.s
	if s == nil {
		return
	}
	a.s = nil
	s.refs--
	if s.refs > 0 {
		return
	}
	level.Debug(s.logger).Log("msg", "arena released", "batches", s.numBatches)
	s.last = nil
	s.numBatches = 0
}

// ReferenceCount returns the number of handles sharing this arena.
func (a *Allocator[T]) ReferenceCount() int {
	if a.s == nil {
		return 0
	}
	return a.s.refs
}

// Owns reports whether p points into a batch of this arena.
func (a *Allocator[T]) Owns(p *T) bool {
	if a.s == nil || p == nil {
		return false
	}
	for b := a.s.last; b != nil; b = b.prev {
		if b.contains(p) {
			return true
		}
	}
	return false
}

// live returns the shared state or panics if the handle was released.
func (a *Allocator[T]) live() *state[T] {
	if a.s == nil {
		panic(errUseAfterRelease)
	}
	return a.s
}

// grow links a new batch of at least need bytes as the head of the chain.
func (s *state[T]) grow(need int) (*batch[T], error) {
	if s.maxBatches > 0 && s.numBatches >= s.maxBatches {
		level.Warn(s.logger).Log("msg", "batch limit reached", "max_batches", s.maxBatches, "request_bytes", need)
		return nil, errors.Wrapf(ErrOutOfMemory, "batch limit of %d reached", s.maxBatches)
	}
	if need > MaxBatchBytes {
		level.Warn(s.logger).Log("msg", "batch too large", "max_batch_bytes", MaxBatchBytes, "request_bytes", need)
		return nil, errors.Wrapf(ErrOutOfMemory, "request of %d bytes exceeds the batch limit of %d bytes", need, MaxBatchBytes)
	}
	size := s.batchSize
	if need > size {
		size = need
	}
	s.last = newBatch[T](size, s.last)
	s.numBatches++
	level.Debug(s.logger).Log("msg", "allocated batch", "batch_bytes", s.last.capacity, "batches", s.numBatches)
	return s.last, nil
}
