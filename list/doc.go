// Package list implements a doubly linked list whose nodes are allocated
// from an arena.Allocator.
//
// # Basic Usage
//
//	l := list.New[int](nil) // private allocator with default settings
//	defer l.Release()
//
//	_ = l.PushBack(3)
//	_ = l.PushBack(1)
//	_ = l.PushFront(2)
//	list.Sort(l)
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		fmt.Println(it.Value())
//	}
//
// # Sharing an allocator
//
// Lists built from the same allocator take their nodes from one arena, which
// makes moving nodes between them with Splice or Merge free of copies:
//
//	alloc, _ := list.NewAllocator[int](arena.DefaultConfig(), logger)
//	defer alloc.Release()
//	a, b := list.New(alloc), list.New(alloc)
//
// # Contracts
//
// Positions are Iterator values. End and REnd are sentinels and must never be
// read through, and neither may Front or Back be called on an empty list;
// these conditions are not checked. TryFront and TryBack are the checked
// alternatives. PopFront and PopBack on an empty list do nothing.
//
// Operations that allocate return arena.ErrOutOfMemory (wrapped) when the
// allocator cannot serve them.
package list
