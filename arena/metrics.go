package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SizeInUse returns the total number of bytes handed out across all batches.
func (a *Allocator[T]) SizeInUse() int {
	if a.s == nil {
		return 0
	}
	sum := 0
	for b := a.s.last; b != nil; b = b.prev {
		sum += b.used
	}
	return sum
}

// NumBatches returns the number of batches currently held by the arena.
func (a *Allocator[T]) NumBatches() int {
	if a.s == nil {
		return 0
	}
	return a.s.numBatches
}

// Capacity sums the byte size of every batch in the chain, used or not.
// Handles sharing the arena report the same value.
func (a *Allocator[T]) Capacity() int {
	if a.s == nil {
		return 0
	}
	sum := 0
	for b := a.s.last; b != nil; b = b.prev {
		sum += b.capacity
	}
	return sum
}

// Utilization is SizeInUse divided by Capacity, or 0 before the first batch
// is created.
func (a *Allocator[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// BatchSize returns the regular batch size used by this arena.
func (a *Allocator[T]) BatchSize() int {
	if a.s == nil {
		return 0
	}
	return a.s.batchSize
}

// DeallocatedBytes returns the bytes handed back through Deallocate since the
// last Reset.
func (a *Allocator[T]) DeallocatedBytes() int {
	if a.s == nil {
		return 0
	}
	return a.s.deallocated
}

// Metrics returns a snapshot of arena statistics.
func (a *Allocator[T]) Metrics() AllocatorMetrics {
	return AllocatorMetrics{
		SizeInUse:        a.SizeInUse(),
		Capacity:         a.Capacity(),
		NumBatches:       a.NumBatches(),
		BatchSize:        a.BatchSize(),
		References:       a.ReferenceCount(),
		DeallocatedBytes: a.DeallocatedBytes(),
		Utilization:      a.Utilization(),
	}
}

// AllocatorMetrics contains statistical information about an arena.
type AllocatorMetrics struct {
	SizeInUse        int     // Bytes currently handed out
	Capacity         int     // Total capacity in bytes
	NumBatches       int     // Number of batches
	BatchSize        int     // Regular batch size
	References       int     // Handles sharing the arena
	DeallocatedBytes int     // Bytes handed back since the last Reset
	Utilization      float64 // Ratio of used to total capacity (0.0-1.0)
}

func (m AllocatorMetrics) String() string {
	return fmt.Sprintf("in use %s of %s (%.1f%%) in %d batches, %s deallocated, %d refs",
		humanize.IBytes(uint64(m.SizeInUse)),
		humanize.IBytes(uint64(m.Capacity)),
		m.Utilization*100,
		m.NumBatches,
		humanize.IBytes(uint64(m.DeallocatedBytes)),
		m.References,
	)
}
