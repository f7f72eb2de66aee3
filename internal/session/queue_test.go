package session

import (
	"testing"

	"github.com/okanta/memloop/internal/atom"
)

func qItem(atomID, conceptID string, origin Origin) *Item {
	return &Item{
		Atom:      &atom.Atom{ID: atomID, ConceptID: conceptID, Type: atom.TypeFlashcard},
		ConceptID: conceptID,
		Origin:    origin,
	}
}

func TestQueueSpliceBeforeCurrent(t *testing.T) {
	q := NewQueue([]*Item{
		qItem("a1", "a", OriginQueue),
		qItem("b1", "b", OriginQueue),
		qItem("c1", "c", OriginQueue),
	})
	q.Advance() // cursor on b1

	q.SpliceBeforeCurrent([]*Item{
		qItem("p1", "p", OriginBacktrack),
		qItem("r1", "b", OriginRemediation),
	})

	if got := q.Current().Atom.ID; got != "p1" {
		t.Fatalf("current = %s, want the first spliced item", got)
	}
	q.Advance()
	if got := q.Current().Atom.ID; got != "r1" {
		t.Fatalf("second served = %s, want r1", got)
	}
	q.Advance()
	// The item at the splice point is re-served after the inserts.
	if got := q.Current().Atom.ID; got != "b1" {
		t.Fatalf("after inserts = %s, want the original b1", got)
	}
	q.Advance()
	if got := q.Current().Atom.ID; got != "c1" {
		t.Fatalf("tail = %s, want c1", got)
	}
}

func TestQueueSpliceEmptyIsNoop(t *testing.T) {
	q := NewQueue([]*Item{qItem("a1", "a", OriginQueue)})
	q.SpliceBeforeCurrent(nil)
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
}

func TestQueueContainsIgnoresServed(t *testing.T) {
	q := NewQueue([]*Item{
		qItem("a1", "a", OriginQueue),
		qItem("b1", "b", OriginQueue),
	})
	if !q.Contains("a1") {
		t.Fatal("a1 should be in the unserved portion")
	}
	q.Advance()
	if q.Contains("a1") {
		t.Fatal("served items should not count as queued")
	}
	if !q.Contains("b1") {
		t.Fatal("b1 should still be queued")
	}
}

func TestQueueSummaryListsUnservedOnly(t *testing.T) {
	q := NewQueue([]*Item{
		qItem("a1", "a", OriginQueue),
		qItem("b1", "b", OriginBacktrack),
		qItem("c1", "c", OriginRemediation),
	})
	q.Advance()

	sum := q.Summary()
	if len(sum) != 2 {
		t.Fatalf("summary size = %d, want 2", len(sum))
	}
	if sum[0].AtomID != "b1" || sum[0].Origin != "backtrack" {
		t.Errorf("sum[0] = %+v", sum[0])
	}
	if sum[1].AtomID != "c1" || sum[1].Origin != "remediation" {
		t.Errorf("sum[1] = %+v", sum[1])
	}
}

func TestQueueExhaustion(t *testing.T) {
	q := NewQueue([]*Item{qItem("a1", "a", OriginQueue)})
	q.Advance()
	if q.Current() != nil {
		t.Fatal("exhausted queue should have no current item")
	}
	if q.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", q.Remaining())
	}
	q.Advance() // must not panic past the end
}
