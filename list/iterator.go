package list

import "iter"

// Iterator is a bidirectional position in a List. Two iterators are equal
// (==) when they denote the same node. An iterator stays valid until its node
// is erased; inserting elements never invalidates it.
//
// End is a sentinel position: reading or writing through it is a contract
// violation and is not checked.
type Iterator[T any] struct {
	n *Node[T]
}

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.n.next} }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.n.prev} }

// Value returns the element at the position.
func (it Iterator[T]) Value() T { return it.n.value }

// Ptr returns a pointer to the element at the position.
func (it Iterator[T]) Ptr() *T { return &it.n.value }

// Set overwrites the element at the position.
func (it Iterator[T]) Set(v T) { it.n.value = v }

// ReverseIterator walks a List from back to front. Like its base iterator it
// denotes the element just before Base.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the forward iterator following the denoted element.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// Next moves towards the front of the list.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{it.base.Prev()}
}

// Prev moves towards the back of the list.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{it.base.Next()}
}

// Value returns the denoted element.
func (it ReverseIterator[T]) Value() T { return it.base.n.prev.value }

// Ptr returns a pointer to the denoted element.
func (it ReverseIterator[T]) Ptr() *T { return &it.base.n.prev.value }

// Begin returns the position of the first element, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{l.head.next} }

// End returns the position past the last element.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{&l.tail} }

// RBegin returns the reverse position of the last element.
func (l *List[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{l.End()} }

// REnd returns the reverse position before the first element.
func (l *List[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{l.Begin()} }

// Values returns an iterator over the elements from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != &l.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail.prev; n != &l.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
