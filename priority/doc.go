// Package priority implements generic priority queues with interchangeable
// backing containers. Every backend satisfies the Queue interface and is
// certified by the contract in package prioritytest.
//
// A queue ranks its values with an order.Func supplied at construction and
// always hands out the highest ranked value first. Pass order.Natural for a
// max-queue and order.Reverse(order.Natural) for a min-queue.
//
// Backends:
//   - Heap: binary heap over a slice, O(log n) Insert and Remove, O(1) Best
//   - Sorted: slice kept in rank order, O(n) Insert, O(1) Best and Remove
//   - List: unordered sentinel list, O(1) Insert, O(n) Best and Remove
//   - Tree: B-tree keyed by rank and arrival, O(log n) everything
//
// Basic usage:
//
//	// Create a min-heap
//	pq := priority.NewHeap(order.Reverse(order.Natural[int]))
//
//	pq.Insert(5)
//	pq.Insert(3)
//	pq.Insert(7)
//
//	best, err := pq.Best() // 3
//	if errors.Is(err, priority.ErrEmpty) {
//	    // nothing queued
//	}
//
//	// Remove values best first
//	for v := range priority.Drain(pq) {
//	    fmt.Println(v) // 3, 5, 7
//	}
//
// Best and Remove on an empty queue return ErrEmpty and leave the queue
// untouched. Values of equal rank come out in no particular order, except in
// the List backend where the earliest inserted one wins.
//
// Queues are not safe for concurrent use.
package priority
