package refs

import (
	"testing"

	"emberheap/pkg/kind"
	"emberheap/pkg/value"
)

func TestScopedTablePushAndGet(t *testing.T) {
	tbl := NewScopedTable(4, nil)
	h := tbl.Push(value.Int32(42))
	if got := tbl.Get(h); got != value.Int32(42) {
		t.Errorf("Get(h) = %v, want Int32(42)", got)
	}
}

func TestScopedTableReleaseUnwindsToMark(t *testing.T) {
	tbl := NewScopedTable(4, nil)
	tbl.Push(value.Int32(1))
	mark := tbl.Mark()
	tbl.Push(value.Int32(2))
	tbl.Push(value.Int32(3))
	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	tbl.Release(mark)
	if tbl.Len() != 1 {
		t.Fatalf("Len() after release = %d, want 1", tbl.Len())
	}
}

func TestScopedTableGetAfterReleasePanics(t *testing.T) {
	tbl := NewScopedTable(4, nil)
	mark := tbl.Mark()
	h := tbl.Push(value.Int32(1))
	tbl.Release(mark)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on use of released handle")
		}
	}()
	tbl.Get(h)
}

func TestScopedTableTraceVisitsAllLiveHandles(t *testing.T) {
	tbl := NewScopedTable(4, nil)
	tbl.Push(value.FromHeap(kind.Object, 0))
	tbl.Push(value.Int32(7))
	tbl.Push(value.FromHeap(kind.String, 1))

	visited := 0
	tbl.Trace(func(*value.Value) { visited++ })
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestScopedTableSetOverwritesInPlace(t *testing.T) {
	tbl := NewScopedTable(4, nil)
	h := tbl.Push(value.Int32(1))
	tbl.Set(h, value.Int32(2))
	if got := tbl.Get(h); got != value.Int32(2) {
		t.Errorf("Get(h) = %v, want Int32(2)", got)
	}
}
