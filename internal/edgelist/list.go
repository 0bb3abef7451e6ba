// Package edgelist implements the sorted, singly-linked adjacency
// representation shared by digraph.Graph and vertex.Record: a per-source (or
// per-vertex) list of entries kept in non-decreasing key order, with a small
// table of live iterator handles so that removing an entry never leaves an
// outstanding iterator pointing at freed state.
//
// This replaces the weak-reference-plus-periodic-compaction pattern of the
// system this package reimplements: handles are registered explicitly on
// creation and deregistered explicitly on Close, and a removal walks only
// the live handles, advancing any that sit on the node being unlinked.
package edgelist

import "errors"

// ErrCapacityExceeded is returned by Insert when adding an entry would push
// the list past MaxLen entries.
var ErrCapacityExceeded = errors.New("edgelist: capacity exceeded")

// MaxLen is the hard per-list capacity shared by every adjacency list in the
// engine (spec invariant: 32767 entries per direction).
const MaxLen = 32767

type node[T any] struct {
	key  int
	val  T
	next *node[T]
}

// List is a sorted singly-linked list of (key, value) entries, ascending by
// key. With AllowMultiples false, inserting a duplicate key is a no-op; with
// it true, duplicate keys are kept as adjacent entries, stable among equals.
type List[T any] struct {
	head           *node[T]
	allowMultiples bool
	length         int
	handles        []*Iterator[T]
}

// New constructs an empty List.
func New[T any](allowMultiples bool) *List[T] {
	return &List[T]{allowMultiples: allowMultiples}
}

// AllowMultiples reports whether this list keeps parallel entries.
func (l *List[T]) AllowMultiples() bool {
	return l.allowMultiples
}

// Len returns the number of entries currently in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Insert inserts val keyed by key, preserving ascending order. With
// multiples disabled, an equal key is a no-op and Insert returns
// (false, nil). With multiples enabled, the new entry is placed just before
// the first strictly-greater entry, stable among equals. Returns
// ErrCapacityExceeded without mutating the list if it is already at MaxLen.
func (l *List[T]) Insert(key int, val T) (bool, error) {
	n := &node[T]{key: key, val: val}

	var prev *node[T]
	cur := l.head
	for cur != nil {
		if key < cur.key {
			break
		}
		if key == cur.key && !l.allowMultiples {
			return false, nil
		}
		prev = cur
		cur = cur.next
	}

	if l.length >= MaxLen {
		return false, ErrCapacityExceeded
	}

	n.next = cur
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	l.length++
	return true, nil
}

// RemoveAllKey removes every entry whose key equals the given key. Any live
// iterator positioned at a removed node is advanced to that node's
// successor before the node is unlinked. Returns the number removed.
func (l *List[T]) RemoveAllKey(key int) int {
	removed := 0
	var prev *node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		if cur.key == key {
			l.advanceHandlesAt(cur)
			if prev == nil {
				l.head = next
			} else {
				prev.next = next
			}
			l.length--
			removed++
			cur = next
			continue
		}
		prev = cur
		cur = next
	}
	return removed
}

// RemoveOneKey removes at most one entry whose key equals the given key
// (the first one encountered in ascending order), leaving any remaining
// parallel entries with the same key untouched. Returns true if an entry
// was removed.
func (l *List[T]) RemoveOneKey(key int) bool {
	var prev *node[T]
	cur := l.head
	for cur != nil {
		if cur.key == key {
			l.advanceHandlesAt(cur)
			if prev == nil {
				l.head = cur.next
			} else {
				prev.next = cur.next
			}
			l.length--
			return true
		}
		if key < cur.key {
			return false
		}
		prev = cur
		cur = cur.next
	}
	return false
}

// DistinctKeys returns the number of distinct keys present in the list.
func (l *List[T]) DistinctKeys() int {
	count := 0
	last := 0
	haveLast := false
	for cur := l.head; cur != nil; cur = cur.next {
		if !haveLast || cur.key != last {
			count++
			last = cur.key
			haveLast = true
		}
	}
	return count
}

// Values returns every value in ascending key order. Intended for tests and
// small diagnostic dumps, not hot paths.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}
	return out
}

// Keys returns every key in ascending order, including repeats.
func (l *List[T]) Keys() []int {
	out := make([]int, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.key)
	}
	return out
}

func (l *List[T]) advanceHandlesAt(target *node[T]) {
	live := l.handles[:0]
	for _, h := range l.handles {
		if h.closed {
			continue
		}
		if h.current == target {
			h.current = target.next
			h.pendingAdvance = true
		}
		live = append(live, h)
	}
	l.handles = live
}

// Iterator is a borrowed, registered handle onto a List. It observes the
// list's live state; if the node it sits on is removed, it is advanced to
// that node's successor before the removal is visible to any other reader.
// pendingAdvance marks that this already happened, so the next Next() call
// consumes it instead of stepping past it a second time. Close must be
// called to deregister the handle when it is no longer needed.
type Iterator[T any] struct {
	list           *List[T]
	current        *node[T]
	started        bool
	closed         bool
	pendingAdvance bool
}

// NewIterator creates and registers a new Iterator over the list.
func (l *List[T]) NewIterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	l.handles = append(l.handles, it)
	return it
}

// Begin positions the iterator at the first entry and returns its value.
// The second return is false if the list is empty.
func (it *Iterator[T]) Begin() (T, bool) {
	it.started = true
	it.pendingAdvance = false
	it.current = it.list.head
	return it.value()
}

// Next advances the iterator and returns the new current value. If current
// was just moved by a removal (pendingAdvance), that move counts as this
// call's step, so it is not stepped again.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.started {
		return it.Begin()
	}
	if it.pendingAdvance {
		it.pendingAdvance = false
	} else if it.current != nil {
		it.current = it.current.next
	}
	return it.value()
}

// Done reports whether the iterator has run off the end of the list.
func (it *Iterator[T]) Done() bool {
	return it.current == nil
}

// Close deregisters the iterator so it no longer receives removal updates.
func (it *Iterator[T]) Close() {
	it.closed = true
}

func (it *Iterator[T]) value() (T, bool) {
	if it.current == nil {
		var zero T
		return zero, false
	}
	return it.current.val, true
}

// GroupIterator yields every consecutive run of entries sharing a key as a
// single batch, relying on the list's ascending-key ordering to guarantee
// that equal keys are contiguous.
type GroupIterator[T any] struct {
	inner *Iterator[T]
}

// NewGroupIterator creates a group iterator over the list.
func (l *List[T]) NewGroupIterator() *GroupIterator[T] {
	return &GroupIterator[T]{inner: l.NewIterator()}
}

// Begin returns the first group of entries sharing a destination/origin.
func (g *GroupIterator[T]) Begin() []T {
	g.inner.Begin()
	return g.matchingGroup()
}

// Next returns the next group of entries sharing a destination/origin.
func (g *GroupIterator[T]) Next() []T {
	return g.matchingGroup()
}

// Done reports whether the group iteration is complete.
func (g *GroupIterator[T]) Done() bool {
	return g.inner.Done()
}

// Close deregisters the underlying iterator.
func (g *GroupIterator[T]) Close() {
	g.inner.Close()
}

func (g *GroupIterator[T]) matchingGroup() []T {
	if g.inner.current == nil {
		return nil
	}
	var group []T
	key := g.inner.current.key
	for g.inner.current != nil && g.inner.current.key == key {
		group = append(group, g.inner.current.val)
		g.inner.current = g.inner.current.next
	}
	return group
}
