package priority

import (
	"errors"
	"iter"

	"github.com/davidvella/pq/loser"
	"github.com/davidvella/pq/order"
)

// ErrEmpty is returned by Best and Remove when the queue holds no values.
var ErrEmpty = errors.New("priority: queue is empty")

// Queue is a collection of values that hands out the best one first. The best
// value is the one the queue's ordering function ranks highest.
type Queue[T any] interface {
	// Insert adds t. Duplicates are kept: a value inserted three times must
	// be removed three times.
	Insert(t T)
	// Remove deletes the best value, or returns ErrEmpty.
	Remove() error
	// Best returns the best value, or ErrEmpty.
	Best() (T, error)
	// Empty reports whether the queue holds no values.
	Empty() bool
	// Len returns the number of values in the queue.
	Len() int
}

var (
	_ Queue[int] = (*Heap[int])(nil)
	_ Queue[int] = (*Sorted[int])(nil)
	_ Queue[int] = (*List[int])(nil)
	_ Queue[int] = (*Tree[int])(nil)
)

// Drain removes the values of q best first and yields them. Stopping the
// iteration early leaves the remaining values in q.
func Drain[T any](q Queue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for !q.Empty() {
			v, err := q.Best()
			if err != nil {
				return
			}
			if err := q.Remove(); err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Merge drains all queues and yields their values in a single best first
// sequence. cmp must rank values the same way every queue does.
func Merge[T any](cmp order.Func[T], queues ...Queue[T]) iter.Seq[T] {
	sequences := make([]iter.Seq[T], len(queues))
	for i, q := range queues {
		sequences[i] = Drain(q)
	}
	return loser.New(cmp, sequences...).All()
}
