// Package order defines the ordering functions that rank queue elements.
//
// An ordering function returns a negative number when a ranks lower than b,
// zero when both rank equally and a positive number when a ranks higher.
// Queues built on an ordering function treat the highest ranked element as
// the best one, so Natural yields max-queues and Reverse(Natural) yields
// min-queues.
package order

import "golang.org/x/exp/constraints"

// Func is a three-way comparison that must be a consistent total order.
type Func[T any] func(a, b T) int

// Natural ranks values by their built-in ordering.
func Natural[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse returns an ordering that ranks values opposite to f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess adapts a less function, as used by sort and btree, to a Func.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Less reports whether a ranks strictly lower than b.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}
