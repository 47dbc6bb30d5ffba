package list

import "github.com/pkg/errors"

// newNode allocates a node and lets init build its value in place.
func (l *List[T]) newNode(init func(*T)) (*Node[T], error) {
	n, err := l.alloc.AllocateOne()
	if err != nil {
		return nil, errors.Wrap(err, "allocate list node")
	}
	l.alloc.ConstructWith(n, func(n *Node[T]) {
		if init != nil {
			init(&n.value)
		}
	})
	return n, nil
}

// deleteNode destroys an unlinked node and hands it back to the allocator.
func (l *List[T]) deleteNode(n *Node[T]) {
	l.alloc.Destroy(n)
	l.alloc.DeallocateOne(n)
}

// insertChain links the chain first..last of count nodes before pos.
func (l *List[T]) insertChain(pos Iterator[T], first, last *Node[T], count int) {
	next := pos.n
	next.prev.link(first)
	last.link(next)
	l.length += count
}

// Insert inserts v before pos and returns its position.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	n, err := l.alloc.AllocateOne()
	if err != nil {
		return pos, errors.Wrap(err, "allocate list node")
	}
	l.alloc.Construct(n, Node[T]{value: v})
	l.insertChain(pos, n, n, 1)
	return Iterator[T]{n}, nil
}

// InsertN inserts count copies of v before pos and returns the position of
// the first one, or pos if count <= 0. The nodes come from one allocation, so
// either all of them are inserted or none.
func (l *List[T]) InsertN(pos Iterator[T], count int, v T) (Iterator[T], error) {
	if count <= 0 {
		return pos, nil
	}
	nodes, err := l.alloc.Allocate(count)
	if err != nil {
		return pos, errors.Wrapf(err, "allocate %d list nodes", count)
	}
	for i := range nodes {
		l.alloc.Construct(&nodes[i], Node[T]{value: v})
		if i > 0 {
			nodes[i-1].link(&nodes[i])
		}
	}
	l.insertChain(pos, &nodes[0], &nodes[count-1], count)
	return Iterator[T]{&nodes[0]}, nil
}

// Emplace builds a new element in place before pos. init receives the zero
// valued element. Returns the position of the new element.
func (l *List[T]) Emplace(pos Iterator[T], init func(*T)) (Iterator[T], error) {
	n, err := l.newNode(init)
	if err != nil {
		return pos, err
	}
	l.insertChain(pos, n, n, 1)
	return Iterator[T]{n}, nil
}

// EmplaceBack builds a new element in place at the back.
func (l *List[T]) EmplaceBack(init func(*T)) error {
	_, err := l.Emplace(l.End(), init)
	return err
}

// EmplaceFront builds a new element in place at the front.
func (l *List[T]) EmplaceFront(init func(*T)) error {
	_, err := l.Emplace(l.Begin(), init)
	return err
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	if l.length == 0 {
		return
	}
	l.Erase(Iterator[T]{l.tail.prev})
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	if l.length == 0 {
		return
	}
	l.Erase(Iterator[T]{l.head.next})
}

// Erase removes the element at pos and returns the position that followed
// it. pos must denote an element of l; erasing End is a contract violation.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	n := pos.n
	next := n.next
	n.prev.link(next)
	l.length--
	l.deleteNode(n)
	return Iterator[T]{next}
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Resize grows the list with zero values or shrinks it from the back until
// it holds exactly n elements. Negative sizes are treated as zero.
func (l *List[T]) Resize(n int) error {
	if n > l.length {
		var zero T
		_, err := l.InsertN(l.End(), n-l.length, zero)
		return err
	}
	for l.length > n && l.length > 0 {
		l.PopBack()
	}
	return nil
}
