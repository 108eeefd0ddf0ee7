package records

import (
	"testing"

	"emberheap/pkg/kind"
	"emberheap/pkg/value"
)

func countVisits(trace func(visit func(*value.Value))) int {
	n := 0
	trace(func(*value.Value) { n++ })
	return n
}

func TestObjectDataTrace(t *testing.T) {
	o := &ObjectData{
		Shape:     value.FromHeap(kind.Shape, 1),
		Prototype: value.Null,
		Properties: []PropertySlot{
			{Key: value.FromHeap(kind.String, 2), Descriptor: value.FromHeap(kind.PropertyDescriptor, 3)},
		},
	}
	if got, want := countVisits(o.Trace), 4; got != want {
		t.Errorf("visit count = %d, want %d", got, want)
	}
}

func TestArrayDataTraceVisitsElements(t *testing.T) {
	a := &ArrayData{
		Elements: []value.Value{value.Int32(1), value.FromHeap(kind.Object, 0), value.Undefined},
	}
	if got, want := countVisits(a.Trace), 2+3; got != want {
		t.Errorf("visit count = %d, want %d", got, want)
	}
}

func TestStringDataTraceIsEmpty(t *testing.T) {
	s := &StringData{Bytes: "hello world, this is a long string"}
	if got := countVisits(s.Trace); got != 0 {
		t.Errorf("StringData.Trace should visit nothing, visited %d", got)
	}
}

func TestWeakMapTraceIsNoop(t *testing.T) {
	wm := &WeakMapData{Entries: []MapEntry{{Key: value.FromHeap(kind.Object, 0), Value: value.FromHeap(kind.Object, 1)}}}
	if got := countVisits(wm.Trace); got != 0 {
		t.Errorf("WeakMapData.Trace should be a no-op, visited %d", got)
	}
}

func TestWeakMapSweepDropsDeadKeys(t *testing.T) {
	wm := &WeakMapData{Entries: []MapEntry{
		{Key: value.FromHeap(kind.Object, 0), Value: value.Int32(1)},
		{Key: value.FromHeap(kind.Object, 1), Value: value.Int32(2)},
		{Key: value.FromHeap(kind.Object, 2), Value: value.Int32(3)},
	}}
	alive := map[uint32]bool{0: true, 2: true}
	wm.Sweep(func(k value.Value) bool {
		idx, _ := k.HeapIndex()
		return alive[idx]
	})
	if wm.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", wm.Len())
	}
	k0, _ := wm.KeyAt(0).HeapIndex()
	k1, _ := wm.KeyAt(1).HeapIndex()
	if k0 != 0 || k1 != 2 {
		t.Errorf("surviving keys = (%d, %d), want (0, 2)", k0, k1)
	}
}

func TestEnvironmentRecordTraceVisitsBindings(t *testing.T) {
	e := &EnvironmentRecordData{
		Outer: value.Undefined,
		Bindings: map[string]value.Value{
			"x": value.Int32(1),
			"y": value.FromHeap(kind.Object, 0),
		},
	}
	if got, want := countVisits(e.Trace), 3; got != want {
		t.Errorf("visit count = %d, want %d", got, want)
	}
}

func TestShapeDataTrace(t *testing.T) {
	s := &ShapeData{
		Parent: value.Undefined,
		Keys:   []value.Value{value.FromHeap(kind.String, 1)},
		Transitions: []ShapeTransition{
			{Name: value.FromHeap(kind.String, 2), Child: value.FromHeap(kind.Shape, 5)},
		},
	}
	if got, want := countVisits(s.Trace), 4; got != want {
		t.Errorf("visit count = %d, want %d", got, want)
	}
}
