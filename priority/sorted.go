package priority

import (
	"slices"
	"sort"

	"github.com/davidvella/pq/order"
)

// Sorted implements a priority queue as a slice kept in nondecreasing rank
// order, so the best element is always the last one.
type Sorted[T any] struct {
	items []T
	cmp   order.Func[T]
}

// NewSorted creates a sorted slice queue ordered by cmp.
func NewSorted[T any](cmp order.Func[T], opts ...Option) *Sorted[T] {
	o := applyOptions(opts)
	return &Sorted[T]{
		items: make([]T, 0, o.capacity),
		cmp:   cmp,
	}
}

// Len returns the number of items in the queue.
func (s *Sorted[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the queue holds no items.
func (s *Sorted[T]) Empty() bool {
	return len(s.items) == 0
}

// Insert binary searches the slot after the run of items ranking equal to t
// and shifts the higher ranked tail to make room. O(log n) comparisons, O(n)
// moves.
func (s *Sorted[T]) Insert(t T) {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.cmp(s.items[i], t) > 0
	})
	s.items = slices.Insert(s.items, i, t)
}

// Best returns the last item. O(1).
func (s *Sorted[T]) Best() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Remove drops the last item. O(1).
func (s *Sorted[T]) Remove() error {
	if len(s.items) == 0 {
		return ErrEmpty
	}
	var zero T
	last := len(s.items) - 1
	s.items[last] = zero
	s.items = s.items[:last]
	return nil
}
