// Package loser implements a tournament tree (also known as a loser tree) for
// merging several best first sequences into one best first sequence. This
// implementation is based on the work by Bryan Boreham
// (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree where each internal node holds the "loser" of
// the match between its children and the overall "winner" is kept aside. When
// the winner's sequence advances only the matches on its path to the root are
// replayed, so merging k sequences costs O(log k) comparisons per value.
//
// Ranking uses an order.Func: the value it ranks highest is emitted first.
// Each input sequence must already yield its values in that order.
//
// Basic usage:
//
//	// Merge three descending sequences
//	tree := loser.New(order.Natural[int],
//	    slices.Values([]int{9, 5, 1}),
//	    slices.Values([]int{8, 6}),
//	    slices.Values([]int{7}),
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 9, 8, 7, 6, 5, 1
//	}
//
// Implementation Details:
// The tree is laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf i is at position M+i (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1 and record a leaf index
//
// Exhausted sequences lose every match, so no maximum value sentinel is
// needed. Equally ranked values are emitted in the order of the sequences
// they came from.
package loser
