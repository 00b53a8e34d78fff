package priority

import "github.com/davidvella/pq/order"

// Heap implements a priority queue as a binary heap over a slice.
//
// The element at index i has children at 2i+1 and 2i+2, and no child ever
// ranks strictly higher than its parent, so the best element is at index 0.
type Heap[T any] struct {
	items []T
	cmp   order.Func[T]
}

// NewHeap creates a binary heap ordered by cmp.
func NewHeap[T any](cmp order.Func[T], opts ...Option) *Heap[T] {
	o := applyOptions(opts)
	return &Heap[T]{
		items: make([]T, 0, o.capacity),
		cmp:   cmp,
	}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Empty reports whether the heap holds no items.
func (h *Heap[T]) Empty() bool {
	return len(h.items) == 0
}

// Insert appends t and swims it up. O(log n).
func (h *Heap[T]) Insert(t T) {
	h.items = append(h.items, t)
	h.up(len(h.items) - 1)
}

// Best returns the root of the heap. O(1).
func (h *Heap[T]) Best() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// Remove deletes the root: the last leaf takes its place and sinks down.
// O(log n).
func (h *Heap[T]) Remove() error {
	if len(h.items) == 0 {
		return ErrEmpty
	}

	var zero T
	last := len(h.items) - 1
	if last == 0 {
		h.items[0] = zero
		h.items = h.items[:0]
		return nil
	}

	h.swap(0, last)
	h.items[last] = zero
	h.items = h.items[:last]
	h.down(0)
	return nil
}

// swap swaps items at index i and j.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// less reports whether the item at i ranks strictly lower than the one at j.
func (h *Heap[T]) less(i, j int) bool {
	return h.cmp(h.items[i], h.items[j]) < 0
}

// up moves the element at index i up while its parent ranks strictly lower.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(parent, i) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down while its higher ranked child
// outranks it. The left child wins ties between children.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.less(child, right) {
			child = right
		}

		if !h.less(i, child) {
			break
		}

		h.swap(i, child)
		i = child
	}
}
