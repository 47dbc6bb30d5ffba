// Package arena implements a typed batch allocator (memory arena) for Go.
//
// # Overview
//
// An Allocator hands out storage for values of one type by bumping a cursor
// through fixed-size batches. When no batch has room for a request a new
// batch is linked in front of the chain. Previously returned storage never
// moves.
//
// # Basic Usage
//
//	a := arena.NewAllocator[MyStruct](0) // Use default batch size
//	defer a.Release()                    // Drop the handle when done
//
//	// Allocate and build values in place
//	xs, err := a.Allocate(16)
//	p, err := a.AllocateOne()
//	a.Construct(p, MyStruct{ID: 1})
//
//	// Reclaim everything at once
//	a.Reset()
//
// # Sharing
//
// Handles are cheap to share. Clone returns a second handle on the same
// arena and bumps the reference count reported by ReferenceCount on every
// handle. The batches are dropped when the last handle is released:
//
//	b := a.Clone()
//	a.ReferenceCount() // 2
//	b.Release()
//	a.ReferenceCount() // 1
//
// # Deallocation
//
// Arenas do not free single objects. Destroy zeroes a value so it holds no
// references and Deallocate only accounts the bytes. Reset rewinds every
// batch of the arena for all handles sharing it, so every value handed out
// before must be dead by then.
//
// # Thread Safety
//
// Allocators are not goroutine-safe, including the reference count.
//
// # Metrics and Monitoring
//
// The allocator reports its usage:
//
//	m := a.Metrics()
//	fmt.Println(m) // in use 1.2 KiB of 9.8 KiB (12.0%) in 1 batches, ...
//
// NewCollector exposes the same snapshot to a Prometheus registry.
package arena
