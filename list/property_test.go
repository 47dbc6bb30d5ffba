package list

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func fromSlice(t require.TestingT, xs []int) *List[int] {
	l := New[int](nil)
	for _, x := range xs {
		require.NoError(t, l.PushBack(x))
	}
	return l
}

func TestSortProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(-20, 20)).Draw(t, "xs")
		l := fromSlice(t, xs)
		defer l.Release()

		Sort(l)
		checkList(t, l, slices.Sorted(slices.Values(xs)))
	})
}

func TestMergeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := slices.Sorted(slices.Values(rapid.SliceOf(rapid.IntRange(-20, 20)).Draw(t, "xs")))
		ys := slices.Sorted(slices.Values(rapid.SliceOf(rapid.IntRange(-20, 20)).Draw(t, "ys")))
		a := fromSlice(t, xs)
		defer a.Release()
		b := fromSlice(t, ys)
		defer b.Release()

		Merge(a, b)
		checkList(t, a, slices.Sorted(slices.Values(slices.Concat(xs, ys))))
		checkList(t, b, nil)
	})
}

func TestUniqueIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "xs")
		l := fromSlice(t, xs)
		defer l.Release()

		Unique(l)
		once := slices.Collect(l.Values())
		require.Zero(t, Unique(l))
		checkList(t, l, once)
		checkList(t, l, slices.Compact(slices.Clone(xs)))
	})
}

func TestFIFOProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		l := fromSlice(t, xs)
		defer l.Release()

		var drained []int
		for !l.Empty() {
			drained = append(drained, l.Front())
			l.PopFront()
		}
		require.Equal(t, len(xs), len(drained))
		if len(xs) > 0 {
			require.Equal(t, xs, drained)
		}
	})
}

// TestListMatchesModel runs random operation sequences against a reference
// doubly linked list and checks the link invariants after every step.
func TestListMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New[int](nil)
		defer l.Release()
		model := doublylinkedlist.New()

		value := rapid.IntRange(-5, 5)
		index := func(t *rapid.T, n int) int {
			return rapid.IntRange(0, n).Draw(t, "index")
		}
		at := func(i int) Iterator[int] {
			it := l.Begin()
			for ; i > 0; i-- {
				it = it.Next()
			}
			return it
		}
		rebuild := func(xs []int) {
			model.Clear()
			for _, x := range xs {
				model.Add(x)
			}
		}

		t.Repeat(map[string]func(*rapid.T){
			"PushBack": func(t *rapid.T) {
				v := value.Draw(t, "v")
				require.NoError(t, l.PushBack(v))
				model.Add(v)
			},
			"PushFront": func(t *rapid.T) {
				v := value.Draw(t, "v")
				require.NoError(t, l.PushFront(v))
				model.Prepend(v)
			},
			"PopBack": func(t *rapid.T) {
				l.PopBack()
				if model.Size() > 0 {
					model.Remove(model.Size() - 1)
				}
			},
			"PopFront": func(t *rapid.T) {
				l.PopFront()
				model.Remove(0)
			},
			"Insert": func(t *rapid.T) {
				i := index(t, l.Len())
				v := value.Draw(t, "v")
				_, err := l.Insert(at(i), v)
				require.NoError(t, err)
				model.Insert(i, v)
			},
			"InsertN": func(t *rapid.T) {
				i := index(t, l.Len())
				n := rapid.IntRange(0, 3).Draw(t, "n")
				v := value.Draw(t, "v")
				_, err := l.InsertN(at(i), n, v)
				require.NoError(t, err)
				for k := 0; k < n; k++ {
					model.Insert(i, v)
				}
			},
			"Erase": func(t *rapid.T) {
				if l.Empty() {
					t.Skip("empty")
				}
				i := index(t, l.Len()-1)
				l.Erase(at(i))
				model.Remove(i)
			},
			"Resize": func(t *rapid.T) {
				n := rapid.IntRange(0, 10).Draw(t, "n")
				require.NoError(t, l.Resize(n))
				for model.Size() > n {
					model.Remove(model.Size() - 1)
				}
				for model.Size() < n {
					model.Add(0)
				}
			},
			"Sort": func(t *rapid.T) {
				Sort(l)
				model.Sort(utils.IntComparator)
			},
			"Reverse": func(t *rapid.T) {
				l.Reverse()
				xs := modelValues(model)
				slices.Reverse(xs)
				rebuild(xs)
			},
			"Unique": func(t *rapid.T) {
				Unique(l)
				rebuild(slices.Compact(modelValues(model)))
			},
			"Remove": func(t *rapid.T) {
				v := value.Draw(t, "v")
				Remove(l, v)
				rebuild(slices.DeleteFunc(modelValues(model), func(x int) bool { return x == v }))
			},
			"SpliceCopy": func(t *rapid.T) {
				c, err := l.Clone()
				require.NoError(t, err)
				i := index(t, l.Len())
				xs := modelValues(model)
				l.Splice(at(i), c)
				require.True(t, c.Empty())
				c.Release()
				rebuild(slices.Concat(xs[:i], xs, xs[i:]))
			},
			"": func(t *rapid.T) {
				checkList(t, l, modelValues(model))
			},
		})
	})
}

func modelValues(m *doublylinkedlist.List) []int {
	values := m.Values()
	xs := make([]int, len(values))
	for i, v := range values {
		xs[i] = v.(int)
	}
	return xs
}
