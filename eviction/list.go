package eviction

import "iter"

/*
List keeps values in ascending eviction priority: the front is always
the next value to evict.

Nodes live in one slice and link to each other by index, so a Handle
stays valid for as long as its value is in the list no matter how many
other values are inserted or removed. Index 0 is the sentinel that
closes the ring; it never holds a value.
*/
type List[T any] struct {
	nodes []node[T]
	free  []Handle
	less  func(a, b *T) bool
	n     int
}

// Handle addresses one value stored in a List.
type Handle int32

const sentinel Handle = 0

type node[T any] struct {
	value      T
	prev, next Handle
}

// NewList returns an empty list ordered by less.
// less(a, b) must report whether a is evicted before b.
func NewList[T any](less func(a, b *T) bool) *List[T] {
	return &List[T]{
		nodes: make([]node[T], 1),
		less:  less,
	}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.n }

// Front returns the handle of the lowest-priority value.
func (l *List[T]) Front() (Handle, bool) {
	if l.n == 0 {
		return sentinel, false
	}
	return l.nodes[sentinel].next, true
}

// Value returns a pointer to the value behind h. The pointer is only
// valid until the next Insert, which may grow the backing slice.
// Callers that change ordering fields through it must call Fix.
func (l *List[T]) Value(h Handle) *T {
	return &l.nodes[h].value
}

// Insert adds v at its ordered position and returns its handle.
// The position is found by scanning forward from the front.
func (l *List[T]) Insert(v T) Handle {
	h := l.alloc(v)
	l.place(h, l.nodes[sentinel].next)
	l.n++
	return h
}

// Fix restores order after the value behind h gained priority.
//
// The value can only have moved toward the back, so the scan starts at
// its old successor and never looks behind it.
func (l *List[T]) Fix(h Handle) {
	next := l.nodes[h].next
	l.unlink(h)
	l.place(h, next)
}

// Remove unlinks h, recycles its slot and returns the value it held.
func (l *List[T]) Remove(h Handle) T {
	l.unlink(h)
	v := l.nodes[h].value
	l.nodes[h] = node[T]{}
	l.free = append(l.free, h)
	l.n--
	return v
}

// Clear drops every value. Outstanding handles become invalid.
func (l *List[T]) Clear() {
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.free = l.free[:0]
	l.n = 0
}

// All yields handles and values from the front (next victim) to the back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for h := l.nodes[sentinel].next; h != sentinel; h = l.nodes[h].next {
			if !yield(h, &l.nodes[h].value) {
				return
			}
		}
	}
}

// Sorted reports whether no value is ordered before one it should follow.
func (l *List[T]) Sorted() bool {
	var prev *T
	for _, v := range l.All() {
		if prev != nil && l.less(v, prev) {
			return false
		}
		prev = v
	}
	return true
}

func (l *List[T]) alloc(v T) Handle {
	if k := len(l.free); k > 0 {
		h := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[h].value = v
		return h
	}
	l.nodes = append(l.nodes, node[T]{value: v})
	return Handle(len(l.nodes) - 1)
}

// place links h in front of the first node, starting at from, that
// h does not outrank. Reaching the sentinel means h goes last.
func (l *List[T]) place(h, from Handle) {
	at := from
	for at != sentinel && l.less(&l.nodes[at].value, &l.nodes[h].value) {
		at = l.nodes[at].next
	}

	prev := l.nodes[at].prev
	l.nodes[h].prev = prev
	l.nodes[h].next = at
	l.nodes[prev].next = h
	l.nodes[at].prev = h
}

func (l *List[T]) unlink(h Handle) {
	n := &l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev, n.next = sentinel, sentinel
}
