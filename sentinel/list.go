package sentinel

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
	"sync/atomic"
)

var (
	// ErrEmpty is returned when the front or back of an empty list is needed.
	ErrEmpty = errors.New("sentinel: list is empty")
	// ErrPositionInvalid is returned for positions issued by another list,
	// positions whose element was removed and for stepping past either end.
	ErrPositionInvalid = errors.New("sentinel: position invalid")
)

// Slot indices of the two sentinels. Real nodes live at index 2 and above.
const (
	head = 0
	tail = 1
)

// lists hands out list identities; zero is never used so the zero Position
// belongs to no list.
var lists atomic.Uint64

// Position is a handle to an element stored in a List. It stays valid until
// the element is removed from the list that issued it.
type Position struct {
	list  uint64
	index int
	gen   uint32
}

type slot[T any] struct {
	value  T
	next   int
	prev   int
	gen    uint32 // bumped when the slot is freed for reuse
	linked bool
}

// List is a doubly linked list bounded by a head and a tail sentinel.
// Nodes are stored in an arena owned by the list and linked by index.
// The zero List is not usable, create lists with New.
type List[T any] struct {
	id     uint64
	slots  []slot[T]
	free   []int
	length int
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{
		id:    lists.Add(1),
		slots: make([]slot[T], 2),
	}
	l.slots[head].next = tail
	l.slots[head].prev = -1
	l.slots[tail].prev = head
	l.slots[tail].next = -1
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Get returns the element stored at p.
func (l *List[T]) Get(p Position) (T, error) {
	if !l.valid(p) {
		var zero T
		return zero, ErrPositionInvalid
	}
	return l.slots[p.index].value, nil
}

// Put replaces the element stored at p.
func (l *List[T]) Put(p Position, t T) error {
	if !l.valid(p) {
		return ErrPositionInvalid
	}
	l.slots[p.index].value = t
	return nil
}

// First reports whether p is the front position.
func (l *List[T]) First(p Position) (bool, error) {
	if !l.valid(p) {
		return false, ErrPositionInvalid
	}
	return l.slots[head].next == p.index, nil
}

// Last reports whether p is the back position.
func (l *List[T]) Last(p Position) (bool, error) {
	if !l.valid(p) {
		return false, ErrPositionInvalid
	}
	return l.slots[tail].prev == p.index, nil
}

// Front returns the first position.
func (l *List[T]) Front() (Position, error) {
	if l.Empty() {
		return Position{}, ErrEmpty
	}
	return l.position(l.slots[head].next), nil
}

// Back returns the last position.
func (l *List[T]) Back() (Position, error) {
	if l.Empty() {
		return Position{}, ErrEmpty
	}
	return l.position(l.slots[tail].prev), nil
}

// Next returns the position after p. Asking for the successor of the last
// position is an error, sentinels are never handed out.
func (l *List[T]) Next(p Position) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrPositionInvalid
	}
	next := l.slots[p.index].next
	if next == tail {
		return Position{}, ErrPositionInvalid
	}
	return l.position(next), nil
}

// Previous returns the position before p.
func (l *List[T]) Previous(p Position) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrPositionInvalid
	}
	prev := l.slots[p.index].prev
	if prev == head {
		return Position{}, ErrPositionInvalid
	}
	return l.position(prev), nil
}

// InsertFront inserts t at the front of the list.
func (l *List[T]) InsertFront(t T) Position {
	return l.link(t, head, l.slots[head].next)
}

// InsertBack inserts t at the back of the list.
func (l *List[T]) InsertBack(t T) Position {
	return l.link(t, l.slots[tail].prev, tail)
}

// InsertBefore inserts t immediately before p.
func (l *List[T]) InsertBefore(p Position, t T) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrPositionInvalid
	}
	return l.link(t, l.slots[p.index].prev, p.index), nil
}

// InsertAfter inserts t immediately after p.
func (l *List[T]) InsertAfter(p Position, t T) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrPositionInvalid
	}
	return l.link(t, p.index, l.slots[p.index].next), nil
}

// Remove detaches the element at p. p and every copy of it become invalid.
func (l *List[T]) Remove(p Position) error {
	if !l.valid(p) {
		return ErrPositionInvalid
	}
	l.unlink(p.index)
	return nil
}

// RemoveFront detaches the first element.
func (l *List[T]) RemoveFront() error {
	if l.Empty() {
		return ErrEmpty
	}
	l.unlink(l.slots[head].next)
	return nil
}

// RemoveBack detaches the last element.
func (l *List[T]) RemoveBack() error {
	if l.Empty() {
		return ErrEmpty
	}
	l.unlink(l.slots[tail].prev)
	return nil
}

// All returns the elements from front to back. The sequence is not a
// snapshot: it observes inserts made before or while it is consumed.
// Removing the element just yielded ends the traversal.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.slots[head].next; i > tail; i = l.slots[i].next {
			if !yield(l.slots[i].value) {
				return
			}
		}
	}
}

// Backward returns the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.slots[tail].prev; i > tail; i = l.slots[i].prev {
			if !yield(l.slots[i].value) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := l.slots[head].next; i > tail; i = l.slots[i].next {
		if i != l.slots[head].next {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.slots[i].value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// valid checks p against this list before any slot is dereferenced.
func (l *List[T]) valid(p Position) bool {
	if p.list != l.id || p.index <= tail || p.index >= len(l.slots) {
		return false
	}
	s := &l.slots[p.index]
	return s.linked && s.gen == p.gen
}

func (l *List[T]) position(i int) Position {
	return Position{list: l.id, index: i, gen: l.slots[i].gen}
}

// link stores t in a fresh slot spliced between prev and next.
func (l *List[T]) link(t T, prev, next int) Position {
	var i int
	if n := len(l.free); n > 0 {
		i = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[T]{})
		i = len(l.slots) - 1
	}

	s := &l.slots[i]
	s.value = t
	s.linked = true
	s.prev = prev
	s.next = next
	l.slots[prev].next = i
	l.slots[next].prev = i
	l.length++
	return l.position(i)
}

// unlink relinks the neighbours of slot i and frees the slot. A slot whose
// generation is exhausted is never reused, so its generation cannot wrap
// back to one held by a stale position.
func (l *List[T]) unlink(i int) {
	s := &l.slots[i]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev

	var zero T
	s.value = zero
	s.next = -1
	s.prev = -1
	s.linked = false
	l.length--
	if s.gen == math.MaxUint32 {
		return
	}
	s.gen++
	l.free = append(l.free, i)
}
