package priority

import (
	"github.com/google/btree"

	"github.com/davidvella/pq/order"
)

// entry pairs a value with its insertion sequence so equally ranked values
// are distinct keys in the tree.
type entry[T any] struct {
	value T
	seq   uint64
}

// Tree implements a priority queue as a B-tree. The best value is the
// maximum of the tree. All operations are O(log n).
type Tree[T any] struct {
	tree *btree.BTreeG[entry[T]]
	seq  uint64
}

// NewTree creates a btree backed queue ordered by cmp.
func NewTree[T any](cmp order.Func[T], opts ...Option) *Tree[T] {
	o := applyOptions(opts)
	return &Tree[T]{
		tree: btree.NewG[entry[T]](o.degree, func(a, b entry[T]) bool {
			if c := cmp(a.value, b.value); c != 0 {
				return c < 0
			}
			return a.seq < b.seq
		}),
	}
}

// Len returns the number of values in the queue.
func (t *Tree[T]) Len() int {
	return t.tree.Len()
}

// Empty reports whether the queue holds no values.
func (t *Tree[T]) Empty() bool {
	return t.tree.Len() == 0
}

// Insert adds v.
func (t *Tree[T]) Insert(v T) {
	t.seq++
	t.tree.ReplaceOrInsert(entry[T]{value: v, seq: t.seq})
}

// Best returns the maximum of the tree.
func (t *Tree[T]) Best() (T, error) {
	e, ok := t.tree.Max()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	return e.value, nil
}

// Remove deletes the maximum of the tree.
func (t *Tree[T]) Remove() error {
	if _, ok := t.tree.DeleteMax(); !ok {
		return ErrEmpty
	}
	return nil
}
