package list

import "cmp"

// Splice moves every element of other before pos in O(1). No element is
// copied or reallocated; other is left empty. Splicing a list into itself
// does nothing.
//
// The moved nodes keep the storage of other's allocator. They stay valid
// while referenced, but a Reset of that allocator invalidates them.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if l == other || other.length == 0 {
		return
	}
	first, last, n := other.head.next, other.tail.prev, other.length
	other.init()
	l.insertChain(pos, first, last, n)
}

// MergeFunc merges the sorted list other into the sorted list l, leaving
// other empty. Equal elements of l come before those of other. cmp returns a
// negative number when a < b, zero when equal and a positive number when
// a > b. Runs in O(n+m) without allocating.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if l == other || other.length == 0 {
		return
	}
	total := l.length + other.length

	a, aEnd := l.head.next, &l.tail
	b, bEnd := other.head.next, &other.tail

	var first, last *Node[T]
	for a != aEnd || b != bEnd {
		var n *Node[T]
		switch {
		case a != aEnd && b != bEnd:
			if cmp(b.value, a.value) < 0 {
				n, b = b, b.next
			} else {
				n, a = a, a.next
			}
		case a != aEnd:
			n, a = a, a.next
		default:
			n, b = b, b.next
		}

		if first == nil {
			first = n
		} else {
			last.link(n)
		}
		last = n
	}

	l.init()
	other.init()
	l.insertChain(l.End(), first, last, total)
}

// SortFunc sorts the list in ascending order as determined by cmp. The list
// is split in halves at Len()/2, each half is sorted recursively and the
// halves are merged back. Nodes are relinked, never copied.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.length < 2 {
		return
	}

	middle := l.length / 2
	mid := l.head.next
	for i := 1; i < middle; i++ {
		mid = mid.next
	}

	right := &List[T]{alloc: l.alloc}
	right.init()
	right.insertChain(right.End(), mid.next, l.tail.prev, l.length-middle)
	mid.link(&l.tail)
	l.length = middle

	l.SortFunc(cmp)
	right.SortFunc(cmp)
	l.MergeFunc(right, cmp)
}

// RemoveFunc removes every element for which pred returns true and returns
// how many were removed.
func (l *List[T]) RemoveFunc(pred func(T) bool) int {
	removed := 0
	for n := l.head.next; n != &l.tail; {
		if pred(n.value) {
			n = l.Erase(Iterator[T]{n}).n
			removed++
		} else {
			n = n.next
		}
	}
	return removed
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	if l.length < 2 {
		return
	}
	for n := l.head.next; n != &l.tail; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	first, last := l.tail.prev, l.head.next
	l.head.link(first)
	last.link(&l.tail)
}

// UniqueFunc removes every element equal to the one before it, so that runs
// of equal adjacent elements collapse to their first one. Returns how many
// elements were removed.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.length < 2 {
		return 0
	}
	removed := 0
	left := l.head.next
	for right := left.next; right != &l.tail; {
		if eq(left.value, right.value) {
			right = l.Erase(Iterator[T]{right}).n
			removed++
		} else {
			left, right = right, right.next
		}
	}
	return removed
}

// Sort sorts l in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// Merge merges the sorted list other into the sorted list l.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Compare[T])
}

// Remove removes every element equal to v and returns how many were removed.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(x T) bool { return x == v })
}

// Unique collapses runs of equal adjacent elements and returns how many
// elements were removed.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}
