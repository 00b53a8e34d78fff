// Package loser merges best first sequences with a tournament tree.
// Based on https://github.com/bboreham/go-loser/blob/iter/tree.go.
package loser

import (
	"iter"

	"github.com/davidvella/pq/order"
)

// New creates a tree merging sequences, each of which must yield its values
// best first according to cmp.
func New[E any](cmp order.Func[E], sequences ...iter.Seq[E]) *Tree[E] {
	return &Tree[E]{
		cmp:       cmp,
		sequences: sequences,
		leaves:    make([]leaf[E], len(sequences)),
		losers:    make([]int, len(sequences)),
	}
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// With M sequences, leaf i sits at position M+i and the M-1 internal nodes at
// positions 1..M-1. Every internal node records the leaf that lost the match
// played there; the overall winner is kept separately.
type Tree[E any] struct {
	cmp       order.Func[E]
	sequences []iter.Seq[E]
	leaves    []leaf[E]
	losers    []int // Indexed by internal node position, holds a leaf index.
	winner    int
}

type leaf[E any] struct {
	value E
	done  bool
	next  func() (E, bool)
}

// All yields the merged values best first. Ties go to the sequence passed
// first. The tree pulls from its sequences, so it can only be consumed once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.leaves) == 0 {
			return
		}
		for i, s := range t.sequences {
			next, stop := iter.Pull(s)
			t.leaves[i].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i)
		}
		t.winner = t.playGame(1)
		for !t.leaves[t.winner].done &&
			yield(t.leaves[t.winner].value) {
			t.moveNext(t.winner)
			t.replayGames(t.winner)
		}
	}
}

func (t *Tree[E]) moveNext(i int) {
	l := &t.leaves[i]
	if v, ok := l.next(); ok {
		l.value = v
		return
	}
	var zero E
	l.value = zero
	l.done = true
}

// beats reports whether leaf a wins a match against leaf b. Exhausted leaves
// always lose.
func (t *Tree[E]) beats(a, b int) bool {
	la, lb := &t.leaves[a], &t.leaves[b]
	switch {
	case lb.done:
		return !la.done || a < b
	case la.done:
		return false
	}
	if c := t.cmp(la.value, lb.value); c != 0 {
		return c > 0
	}
	return a < b
}

// Find the winning leaf below pos, storing the loser of every internal match.
func (t *Tree[E]) playGame(pos int) int {
	m := len(t.leaves)
	if pos >= m {
		return pos - m
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	if t.beats(left, right) {
		t.losers[pos] = right
		return left
	}
	t.losers[pos] = left
	return right
}

// Leaf i has a new value; replay its matches up to the root.
func (t *Tree[E]) replayGames(i int) {
	winner := i
	for n := parent(len(t.leaves) + i); n != 0; n = parent(n) {
		if t.beats(t.losers[n], winner) {
			// The old loser is the new winner.
			t.losers[n], winner = winner, t.losers[n]
		}
	}
	t.winner = winner
}

func parent(i int) int { return i >> 1 }
