package list

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/arenalist/arena"
)

func TestReverse(t *testing.T) {
	l := newList(t, nil, 1, 2, 3)
	checkList(t, l, []int{1, 2, 3})

	l.Reverse()
	checkList(t, l, []int{3, 2, 1})

	for _, xs := range [][]int{nil, {1}, {1, 2}} {
		l := newList(t, nil, xs...)
		l.Reverse()
		want := slices.Clone(xs)
		slices.Reverse(want)
		checkList(t, l, want)
	}
}

func TestReverseIterator(t *testing.T) {
	l := newList(t, nil, 1, 2, 3)

	var got []int
	for it := l.RBegin(); it != l.REnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{3, 2, 1}, got)

	it := l.RBegin()
	*it.Ptr() = 30
	require.Equal(t, 30, l.Back())
	require.Equal(t, l.End(), it.Base())
	require.Equal(t, it, it.Next().Prev())

	e := newList(t, nil)
	require.Equal(t, e.RBegin(), e.REnd())
}

func TestUnique(t *testing.T) {
	l := newList(t, nil, 1, 1, 2, 2, 3)
	require.Equal(t, 2, Unique(l))
	checkList(t, l, []int{1, 2, 3})

	tests := []struct {
		in, want []int
	}{
		{nil, nil},
		{[]int{5}, []int{5}},
		{[]int{5, 5, 5, 5}, []int{5}},
		{[]int{1, 2, 1, 1, 2}, []int{1, 2, 1, 2}},
		{[]int{3, 3, 1, 2, 2}, []int{3, 1, 2}},
	}
	for _, tc := range tests {
		l := newList(t, nil, tc.in...)
		Unique(l)
		checkList(t, l, tc.want)

		// Idempotent.
		require.Zero(t, Unique(l))
		checkList(t, l, tc.want)
	}
}

func TestUniqueFunc(t *testing.T) {
	l := newList(t, nil, 1, 3, 5, 2, 4, 7)
	sameParity := func(a, b int) bool { return a%2 == b%2 }
	require.Equal(t, 3, l.UniqueFunc(sameParity))
	checkList(t, l, []int{1, 2, 7})
}

func TestRemove(t *testing.T) {
	l := newList(t, nil, 1, 2, 1, 3, 1)
	require.Equal(t, 3, Remove(l, 1))
	checkList(t, l, []int{2, 3})
	require.Zero(t, Remove(l, 9))
	checkList(t, l, []int{2, 3})

	require.Equal(t, 2, l.RemoveFunc(func(int) bool { return true }))
	checkList(t, l, nil)
}

func TestMerge(t *testing.T) {
	a := newList(t, nil, 1, 3, 5)
	b := newList(t, nil, 2, 4, 6)

	Merge(a, b)
	checkList(t, a, []int{1, 2, 3, 4, 5, 6})
	checkList(t, b, nil)

	tests := []struct {
		a, b, want []int
	}{
		{nil, nil, nil},
		{nil, []int{1, 2}, []int{1, 2}},
		{[]int{1, 2}, nil, []int{1, 2}},
		{[]int{5, 6}, []int{1, 2}, []int{1, 2, 5, 6}},
		{[]int{1, 1, 4}, []int{1, 4, 4, 9}, []int{1, 1, 1, 4, 4, 4, 9}},
	}
	for _, tc := range tests {
		a := newList(t, nil, tc.a...)
		b := newList(t, nil, tc.b...)
		Merge(a, b)
		checkList(t, a, tc.want)
		checkList(t, b, nil)
	}

	// Merging a list into itself does nothing.
	Merge(a, a)
	checkList(t, a, []int{1, 2, 3, 4, 5, 6})
}

type keyed struct {
	key int
	tag string
}

func byKey(a, b keyed) int { return cmp.Compare(a.key, b.key) }

func TestMergeFuncIsStable(t *testing.T) {
	a := New[keyed](nil)
	defer a.Release()
	b := New[keyed](nil)
	defer b.Release()

	for _, k := range []keyed{{1, "a"}, {2, "a"}, {2, "a2"}} {
		require.NoError(t, a.PushBack(k))
	}
	for _, k := range []keyed{{1, "b"}, {2, "b"}} {
		require.NoError(t, b.PushBack(k))
	}

	a.MergeFunc(b, byKey)
	checkList(t, a, []keyed{{1, "a"}, {1, "b"}, {2, "a"}, {2, "a2"}, {2, "b"}})
}

func TestMergeMovesNodes(t *testing.T) {
	a := newList(t, nil, 1, 3)
	b := newList(t, nil, 2)
	moved := b.Begin().Ptr()

	Merge(a, b)
	require.Same(t, moved, a.Begin().Next().Ptr())
	require.Equal(t, 0, b.alloc.DeallocatedBytes(), "merge does not destroy nodes")
}

func TestSort(t *testing.T) {
	tests := [][]int{
		nil,
		{1},
		{2, 1},
		{1, 2, 3},
		{3, 2, 1},
		{5, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		{7, 7, 7},
	}
	for _, in := range tests {
		l := newList(t, nil, in...)
		Sort(l)
		checkList(t, l, slices.Sorted(slices.Values(in)))
	}
}

func TestSortFunc(t *testing.T) {
	l := New[keyed](nil)
	defer l.Release()
	for _, k := range []keyed{{3, "a"}, {1, "a"}, {3, "b"}, {2, "a"}, {1, "b"}} {
		require.NoError(t, l.PushBack(k))
	}

	ptrs := map[*keyed]bool{}
	for it := l.Begin(); it != l.End(); it = it.Next() {
		ptrs[it.Ptr()] = true
	}

	l.SortFunc(byKey)
	checkList(t, l, []keyed{{1, "a"}, {1, "b"}, {2, "a"}, {3, "a"}, {3, "b"}})

	for it := l.Begin(); it != l.End(); it = it.Next() {
		require.True(t, ptrs[it.Ptr()], "sort relinks nodes instead of copying")
	}

	l.SortFunc(func(a, b keyed) int { return byKey(b, a) })
	require.Equal(t, 3, l.Front().key)
	require.Equal(t, 1, l.Back().key)
}

func TestSplice(t *testing.T) {
	t.Run("at the end", func(t *testing.T) {
		a := newList(t, nil, 1, 2)
		b := newList(t, nil, 7, 8)
		seven, eight := b.Begin().Ptr(), b.Begin().Next().Ptr()

		a.Splice(a.End(), b)
		checkList(t, a, []int{1, 2, 7, 8})
		checkList(t, b, nil)

		// The very same nodes moved over.
		require.Same(t, seven, a.Begin().Next().Next().Ptr())
		require.Same(t, eight, a.End().Prev().Ptr())
	})

	t.Run("in the middle", func(t *testing.T) {
		a := newList(t, nil, 1, 4)
		b := newList(t, nil, 2, 3)
		a.Splice(a.Begin().Next(), b)
		checkList(t, a, []int{1, 2, 3, 4})
		checkList(t, b, nil)

		// The emptied list is reusable.
		require.NoError(t, b.PushBack(5))
		checkList(t, b, []int{5})
	})

	t.Run("into an empty list", func(t *testing.T) {
		a := newList(t, nil)
		b := newList(t, nil, 1)
		a.Splice(a.Begin(), b)
		checkList(t, a, []int{1})
		checkList(t, b, nil)
	})

	t.Run("empty and self", func(t *testing.T) {
		a := newList(t, nil, 1, 2)
		a.Splice(a.End(), newList(t, nil))
		a.Splice(a.Begin(), a)
		checkList(t, a, []int{1, 2})
	})

	t.Run("shared allocator", func(t *testing.T) {
		alloc := arena.NewAllocator[Node[int]](0)
		defer alloc.Release()

		a := newList(t, alloc, 1)
		b := newList(t, alloc, 2, 3)
		before := alloc.SizeInUse()

		a.Splice(a.End(), b)
		checkList(t, a, []int{1, 2, 3})
		require.Equal(t, before, alloc.SizeInUse(), "splice does not allocate")
	})
}
