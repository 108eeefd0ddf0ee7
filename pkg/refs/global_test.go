package refs

import (
	"testing"

	"emberheap/pkg/value"
)

func TestGlobalTableCreateAndGet(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	h := tbl.Create(value.Int32(10))
	got, ok := tbl.Get(h)
	if !ok || got != value.Int32(10) {
		t.Fatalf("Get(h) = (%v, %v), want (Int32(10), true)", got, ok)
	}
}

func TestGlobalTableReleaseThenGetFails(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	h := tbl.Create(value.Int32(1))
	tbl.Release(h)
	if _, ok := tbl.Get(h); ok {
		t.Error("Get after Release should fail")
	}
}

func TestGlobalTableRecyclesFreedSlots(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	h1 := tbl.Create(value.Int32(1))
	tbl.Release(h1)
	h2 := tbl.Create(value.Int32(2))
	if h2 != h1 {
		t.Errorf("h2 = %d, want recycled slot %d", h2, h1)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (no new slot allocated)", tbl.Len())
	}
}

func TestGlobalTableDoubleReleasePanics(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	h := tbl.Create(value.Int32(1))
	tbl.Release(h)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double release")
		}
	}()
	tbl.Release(h)
}

func TestGlobalTableTraceSkipsFreedSlots(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	tbl.Create(value.Int32(1))
	dead := tbl.Create(value.Int32(2))
	tbl.Create(value.Int32(3))
	tbl.Release(dead)

	visited := 0
	tbl.Trace(func(*value.Value) { visited++ })
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestGlobalTableSetOnReleasedHandlePanics(t *testing.T) {
	tbl := NewGlobalTable(4, nil)
	h := tbl.Create(value.Int32(1))
	tbl.Release(h)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Set of released handle")
		}
	}()
	tbl.Set(h, value.Int32(2))
}
