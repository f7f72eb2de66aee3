package session

import (
	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/store"
)

// Origin tags how an item entered the queue.
type Origin string

const (
	OriginQueue       Origin = "origin"
	OriginBacktrack   Origin = "backtrack"
	OriginRemediation Origin = "remediation"
)

// Item is one scheduled entry in the session queue.
type Item struct {
	Atom      *atom.Atom
	ConceptID string
	Origin    Origin

	// Depth is the backtrack insertion depth; 0 for origin items.
	Depth int
}

// Queue is the ordered, mutable item sequence for one session. The cursor
// marks the current item; splices land relative to it, never at the end.
type Queue struct {
	items  []*Item
	cursor int
}

// NewQueue creates a queue over the given items.
func NewQueue(items []*Item) *Queue {
	return &Queue{items: items}
}

// Current returns the item at the cursor, or nil when the queue is done.
func (q *Queue) Current() *Item {
	if q.cursor >= len(q.items) {
		return nil
	}
	return q.items[q.cursor]
}

// Advance moves the cursor past the current item.
func (q *Queue) Advance() {
	if q.cursor < len(q.items) {
		q.cursor++
	}
}

// SpliceBeforeCurrent inserts items immediately before the cursor, so
// they are served next and the current item is re-served after them.
func (q *Queue) SpliceBeforeCurrent(items []*Item) {
	if len(items) == 0 {
		return
	}
	rest := make([]*Item, 0, len(q.items)+len(items))
	rest = append(rest, q.items[:q.cursor]...)
	rest = append(rest, items...)
	rest = append(rest, q.items[q.cursor:]...)
	q.items = rest
}

// Remaining returns how many items are left, including the current one.
func (q *Queue) Remaining() int {
	return len(q.items) - q.cursor
}

// Len returns the total queue length including served items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Remove drops the first unserved occurrence of an atom, so a splice can
// hoist an already-queued item forward without duplicating it.
func (q *Queue) Remove(atomID string) {
	for i := q.cursor; i < len(q.items); i++ {
		if q.items[i].Atom.ID == atomID {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether an atom is anywhere in the unserved portion.
func (q *Queue) Contains(atomID string) bool {
	for _, it := range q.items[q.cursor:] {
		if it.Atom.ID == atomID {
			return true
		}
	}
	return false
}

// Summary serializes the unserved portion for persistence.
func (q *Queue) Summary() []store.QueueSlotSummary {
	out := make([]store.QueueSlotSummary, 0, q.Remaining())
	for _, it := range q.items[q.cursor:] {
		out = append(out, store.QueueSlotSummary{
			AtomID:    it.Atom.ID,
			ConceptID: it.ConceptID,
			Origin:    string(it.Origin),
		})
	}
	return out
}
