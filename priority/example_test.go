package priority_test

import (
	"errors"
	"fmt"

	"github.com/davidvella/pq/order"
	"github.com/davidvella/pq/priority"
)

// ExampleHeap_minHeap demonstrates using the heap as a min-heap.
func ExampleHeap_minHeap() {
	// Create a min-heap (smaller values rank higher)
	pq := priority.NewHeap(order.Reverse(order.Natural[int]))

	pq.Insert(5)
	pq.Insert(3)
	pq.Insert(7)

	best, _ := pq.Best()
	fmt.Printf("Best: %d\n", best)

	for v := range priority.Drain[int](pq) {
		fmt.Printf("Removed: %d\n", v)
	}

	// Output:
	// Best: 3
	// Removed: 3
	// Removed: 5
	// Removed: 7
}

// ExampleHeap_maxHeap demonstrates the natural order, which makes the
// largest value the best one.
func ExampleHeap_maxHeap() {
	pq := priority.NewHeap(order.Natural[int])
	for _, v := range []int{1, 4, 0, 8, 2} {
		pq.Insert(v)
	}

	for !pq.Empty() {
		best, _ := pq.Best()
		fmt.Println(best)
		_ = pq.Remove()
	}

	if err := pq.Remove(); errors.Is(err, priority.ErrEmpty) {
		fmt.Println("empty")
	}

	// Output:
	// 8
	// 4
	// 2
	// 1
	// 0
	// empty
}

// ExampleNewList_customType demonstrates a queue of custom types.
func ExampleNewList_customType() {
	type Task struct {
		Priority int
		Name     string
	}

	pq := priority.NewList(order.FromLess(func(a, b Task) bool {
		return a.Priority < b.Priority
	}))

	pq.Insert(Task{Priority: 1, Name: "Low priority"})
	pq.Insert(Task{Priority: 2, Name: "High priority"})

	for task := range priority.Drain[Task](pq) {
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 2)
	// Processing: Low priority (priority 1)
}

// ExampleMerge merges queues with different backends.
func ExampleMerge() {
	cmp := order.Natural[int]
	a := priority.NewSorted(cmp)
	b := priority.NewTree(cmp)
	for _, v := range []int{9, 3, 5} {
		a.Insert(v)
	}
	for _, v := range []int{4, 8} {
		b.Insert(v)
	}

	for v := range priority.Merge[int](cmp, a, b) {
		fmt.Print(v, " ")
	}

	// Output: 9 8 5 4 3
}
