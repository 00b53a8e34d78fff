package priority

import (
	"fmt"

	"github.com/davidvella/pq/order"
	"github.com/davidvella/pq/sentinel"
)

// List implements a priority queue over an unordered sentinel list. Inserts
// are O(1), finding and removing the best value scans the whole list.
//
// Remove locates the best value with ==. T may be an interface type such as
// any, in which case == panics at run time if the dynamic values are not
// comparable (slices, maps or funcs stored in the interface).
type List[T comparable] struct {
	list *sentinel.List[T]
	cmp  order.Func[T]
}

// NewList creates a list backed queue ordered by cmp. Options are accepted
// for symmetry with the other backends and have no effect.
func NewList[T comparable](cmp order.Func[T], _ ...Option) *List[T] {
	return &List[T]{
		list: sentinel.New[T](),
		cmp:  cmp,
	}
}

// Len returns the number of values in the queue.
func (l *List[T]) Len() int {
	return l.list.Len()
}

// Empty reports whether the queue holds no values.
func (l *List[T]) Empty() bool {
	return l.list.Empty()
}

// Insert appends t to the back of the list.
func (l *List[T]) Insert(t T) {
	l.list.InsertBack(t)
}

// Best scans the list and returns the highest ranked value. Among equally
// ranked values the one closest to the front wins.
func (l *List[T]) Best() (T, error) {
	var best T
	if l.list.Empty() {
		return best, ErrEmpty
	}

	first := true
	for v := range l.list.All() {
		if first || l.cmp(best, v) < 0 {
			best = v
			first = false
		}
	}
	return best, nil
}

// Remove finds the best value and then detaches the first position, front to
// back, holding a value equal to it. Other copies of the value stay queued.
func (l *List[T]) Remove() error {
	best, err := l.Best()
	if err != nil {
		return err
	}

	p, err := l.list.Front()
	for err == nil {
		var v T
		if v, err = l.list.Get(p); err != nil {
			break
		}
		if v == best {
			return l.list.Remove(p)
		}
		p, err = l.list.Next(p)
	}
	return fmt.Errorf("priority: best value not found in list: %w", err)
}
