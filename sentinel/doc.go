// Package sentinel implements a generic position-based doubly linked list.
//
// The list is bounded by two permanent sentinel nodes, a head before the
// first element and a tail after the last one, so inserting and removing
// never needs special cases at either end. The sentinels never hold data
// and are never handed out as positions.
//
// Every insert returns a Position. A Position is only meaningful to the list
// that issued it and only until its element is removed; after that every
// operation given the Position fails with ErrPositionInvalid instead of
// touching stale links.
//
// Implementation Details:
// Nodes live in an arena (a slice of slots) owned by the list and are linked
// by slot index rather than by pointer:
//   - Slot 0 is the head sentinel and slot 1 the tail sentinel
//   - A Position records the list identity, the slot index and the slot
//     generation at the time it was issued
//   - Removing an element bumps its slot generation, which invalidates all
//     outstanding positions, and puts the slot on a free list for reuse
//
// Basic usage:
//
//	l := sentinel.New[int]()
//	p := l.InsertBack(5)
//	l.InsertFront(1)
//
//	for v := range l.All() {
//	    fmt.Println(v) // 1, 5
//	}
//
//	_ = l.Remove(p)
//	_, err := l.Get(p) // err == sentinel.ErrPositionInvalid
//
// A List is not safe for concurrent use.
package sentinel
