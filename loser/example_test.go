package loser_test

import (
	"fmt"
	"slices"

	"github.com/davidvella/pq/loser"
	"github.com/davidvella/pq/order"
)

// ExampleNew_basic demonstrates merging ascending sequences. Reversing the
// natural order makes the smallest value the best one.
func ExampleNew_basic() {
	// Create three ascending sequences
	seq1 := slices.Values([]int{1, 4, 7})
	seq2 := slices.Values([]int{2, 5, 8})
	seq3 := slices.Values([]int{3, 6, 9})

	tree := loser.New(order.Reverse(order.Natural[int]), seq1, seq2, seq3)

	// Print merged sequence
	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_descending merges descending sequences with the natural order.
func ExampleNew_descending() {
	seq1 := slices.Values([]string{"zebra", "dog", "apple"})
	seq2 := slices.Values([]string{"elephant", "banana"})
	seq3 := slices.Values([]string{"fish", "cat"})

	tree := loser.New(order.Natural[string], seq1, seq2, seq3)

	for v := range tree.All() {
		fmt.Printf("%s ", v)
	}

	// Output: zebra fish elephant dog cat banana apple
}

// ExampleNew_empty demonstrates handling empty sequences.
func ExampleNew_empty() {
	seq1 := slices.Values([]int{5, 3, 1})
	seq2 := slices.Values([]int{}) // Empty sequence
	seq3 := slices.Values([]int{4, 2})

	tree := loser.New(order.Natural[int], seq1, seq2, seq3)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 5 4 3 2 1
}
