package list

import (
	"math"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/arenalist/arena"
)

// Node is a list element as stored in the arena. Its fields are private;
// the type is exported so callers can build allocators for it.
type Node[T any] struct {
	next  *Node[T]
	prev  *Node[T]
	value T
}

// link makes m the successor of n.
func (n *Node[T]) link(m *Node[T]) {
	n.next = m
	m.prev = n
}

// Allocator is the allocator type a List[T] takes its nodes from.
type Allocator[T any] = arena.Allocator[Node[T]]

// NewAllocator returns an allocator suitable for List[T].
func NewAllocator[T any](cfg arena.Config, logger log.Logger) (*Allocator[T], error) {
	return arena.New[Node[T]](cfg, logger)
}

// List is a doubly linked list whose nodes are allocated from an arena.
// The head and tail sentinels belong to the list itself. A List must not be
// copied once created; use Clone. Not goroutine-safe.
type List[T any] struct {
	alloc  *Allocator[T]
	head   Node[T]
	tail   Node[T]
	length int
}

// New returns an empty list. A nil alloc gives the list a private allocator
// with default settings; otherwise the list shares alloc, which the caller
// remains responsible for releasing.
func New[T any](alloc *Allocator[T]) *List[T] {
	if alloc == nil {
		alloc = arena.NewAllocator[Node[T]](0)
	} else {
		alloc = alloc.Clone()
	}
	l := &List[T]{alloc: alloc}
	l.init()
	return l
}

// NewFilled returns a list holding count copies of value.
func NewFilled[T any](alloc *Allocator[T], count int, value T) (*List[T], error) {
	l := New(alloc)
	if _, err := l.InsertN(l.End(), count, value); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

// NewSized returns a list holding count zero values.
func NewSized[T any](alloc *Allocator[T], count int) (*List[T], error) {
	l := New(alloc)
	if err := l.Resize(count); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

// init links the sentinels to each other, dropping any nodes.
func (l *List[T]) init() {
	l.head.prev = nil
	l.tail.next = nil
	l.head.link(&l.tail)
	l.length = 0
}

// Release destroys every element and drops the list's allocator handle.
// The list must not be used afterwards.
func (l *List[T]) Release() {
	if l.alloc == nil {
		return
	}
	l.Clear()
	l.alloc.Release()
	l.alloc = nil
}

// Allocator returns a new handle on the list's allocator. The caller must
// release it.
func (l *List[T]) Allocator() *Allocator[T] {
	return l.alloc.Clone()
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.length == 0 }

// MaxSize returns the largest number of elements a list could address.
func (l *List[T]) MaxSize() int {
	return math.MaxInt / int(unsafe.Sizeof(Node[T]{}))
}

// Front returns the first element. Calling it on an empty list is a
// contract violation; use TryFront when the list may be empty.
func (l *List[T]) Front() T { return l.head.next.value }

// Back returns the last element. Calling it on an empty list is a
// contract violation; use TryBack when the list may be empty.
func (l *List[T]) Back() T { return l.tail.prev.value }

// TryFront returns the first element and whether there was one.
func (l *List[T]) TryFront() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.Front(), true
}

// TryBack returns the last element and whether there was one.
func (l *List[T]) TryBack() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.Back(), true
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for l.length > 0 {
		l.PopFront()
	}
}

// Swap exchanges the contents and allocators of l and other in O(1).
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.alloc, other.alloc = other.alloc, l.alloc

	lFirst, lLast, lLen := l.head.next, l.tail.prev, l.length
	oFirst, oLast, oLen := other.head.next, other.tail.prev, other.length

	other.adopt(lFirst, lLast, lLen)
	l.adopt(oFirst, oLast, oLen)
}

// adopt replaces the list contents with the chain first..last taken from
// a list that is being emptied. Sentinels of that list are ignored.
func (l *List[T]) adopt(first, last *Node[T], n int) {
	l.init()
	if n == 0 {
		return
	}
	l.head.link(first)
	last.link(&l.tail)
	l.length = n
}

// Clone returns a new list holding copies of the elements. The copy shares
// the allocator of l.
func (l *List[T]) Clone() (*List[T], error) {
	c := New(l.alloc)
	if err := c.appendFrom(l); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Assign replaces the elements of l with copies of the elements of other.
// The copies are built before the old elements are dropped, so on failure l
// is left unchanged.
func (l *List[T]) Assign(other *List[T]) error {
	if l == other {
		return nil
	}
	tmp := &List[T]{alloc: l.alloc}
	tmp.init()
	if err := tmp.appendFrom(other); err != nil {
		tmp.Clear()
		return err
	}
	l.Clear()
	l.adopt(tmp.head.next, tmp.tail.prev, tmp.length)
	return nil
}

func (l *List[T]) appendFrom(other *List[T]) error {
	for n := other.head.next; n != &other.tail; n = n.next {
		if err := l.PushBack(n.value); err != nil {
			return errors.Wrap(err, "copy list")
		}
	}
	return nil
}
