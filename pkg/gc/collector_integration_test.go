package gc

import (
	"testing"

	"emberheap/pkg/agent"
	"emberheap/pkg/kind"
	"emberheap/pkg/records"
	"emberheap/pkg/refs"
	"emberheap/pkg/value"
)

// The following six scenarios are the concrete end-to-end walkthroughs
// a mark-compact cycle must get right. Each is self-contained.

func smallStringKey(t *testing.T, s string) value.Value {
	v, ok := value.SmallString(s)
	if !ok {
		t.Fatalf("key %q does not fit inline", s)
	}
	return v
}

// 1. Minimal lifecycle: a string, an object holding that string under
// one property, rooting, and a collection that leaves both reachable
// and the property still resolving to the original text.
func TestScenarioMinimalLifecycle(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	hello := a.NewHeapString(may, "hello")
	descriptor := a.NewPropertyDescriptor(may, records.PropertyDescriptorData{Value: hello})
	obj := a.NewObject(may, records.ObjectData{
		Properties: []records.PropertySlot{{Key: smallStringKey(t, "k"), Descriptor: descriptor}},
	})
	root := a.Scoped.Push(obj)

	stats := NewCollector(a).Collect()

	if stats.LiveCounts[kind.String] != 1 {
		t.Fatalf("live Strings = %d, want 1", stats.LiveCounts[kind.String])
	}
	if stats.LiveCounts[kind.Object] != 1 {
		t.Fatalf("live Objects = %d, want 1", stats.LiveCounts[kind.Object])
	}

	got := a.GetObject(a.Scoped.Get(root))
	if len(got.Properties) != 1 {
		t.Fatalf("surviving object has %d properties, want 1", len(got.Properties))
	}
	descV := got.Properties[0].Descriptor
	text := a.GetPropertyDescriptor(descV).Value
	if a.GetHeapString(text).Bytes != "hello" {
		t.Fatalf("property value = %q, want %q", a.GetHeapString(text).Bytes, "hello")
	}
}

// 2. Unreachable collection: a hundred objects, only the first rooted.
func TestScenarioUnreachableCollection(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	first := a.NewObject(may, records.ObjectData{})
	root := a.Scoped.Push(first)
	for i := 1; i < 100; i++ {
		a.NewObject(may, records.ObjectData{})
	}

	stats := NewCollector(a).Collect()
	if stats.LiveCounts[kind.Object] != 1 {
		t.Fatalf("live Objects = %d, want 1", stats.LiveCounts[kind.Object])
	}

	got := a.Scoped.Get(root)
	idx, ok := got.HeapIndex()
	if !ok || idx != 0 {
		t.Fatalf("surviving object index = (%d, %v), want (0, true)", idx, ok)
	}
}

// 3. Reference rewrite through a chain: A.Prototype = B, B.Prototype =
// C, C.Prototype = undefined, with 50 unreachable fillers interleaved
// between each allocation, rooting only A.
func TestScenarioReferenceRewriteChain(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	c := a.NewObject(may, records.ObjectData{})
	for i := 0; i < 50; i++ {
		a.NewObject(may, records.ObjectData{})
	}
	b := a.NewObject(may, records.ObjectData{Prototype: c})
	for i := 0; i < 50; i++ {
		a.NewObject(may, records.ObjectData{})
	}
	aObj := a.NewObject(may, records.ObjectData{Prototype: b})
	for i := 0; i < 50; i++ {
		a.NewObject(may, records.ObjectData{})
	}
	root := a.Scoped.Push(aObj)

	stats := NewCollector(a).Collect()
	if stats.LiveCounts[kind.Object] != 3 {
		t.Fatalf("live Objects = %d, want 3", stats.LiveCounts[kind.Object])
	}

	rootedA := a.Scoped.Get(root)
	next := a.GetObject(rootedA).Prototype
	nextNext := a.GetObject(next).Prototype
	if _, ok := nextNext.Kind(); !ok {
		t.Fatalf("A.Prototype.Prototype is not heap-backed: %v", nextNext)
	}
	cAfter := a.GetObject(nextNext).Prototype
	if cAfter != value.Undefined {
		t.Errorf("C.Prototype = %v, want Undefined", cAfter)
	}
}

// 4. Scoped survival across a may-GC operation that itself triggers a
// collection mid-call.
func TestScenarioScopedSurvivalAcrossMayGC(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	descriptor := a.NewPropertyDescriptor(may, records.PropertyDescriptorData{Value: value.Int32(7)})
	x := a.NewObject(may, records.ObjectData{
		Properties: []records.PropertySlot{{Key: smallStringKey(t, "n"), Descriptor: descriptor}},
	})
	handle := a.Scoped.Push(x)

	// Simulate a may-GC operation that allocates enough garbage to
	// justify a collection, then actually triggers one.
	for i := 0; i < 10; i++ {
		a.NewObject(may, records.ObjectData{})
	}
	NewCollector(a).Collect()

	got := a.GetObject(a.Scoped.Get(handle))
	if len(got.Properties) != 1 {
		t.Fatalf("X lost its property across collection: %d properties, want 1", len(got.Properties))
	}
	n := a.GetPropertyDescriptor(got.Properties[0].Descriptor).Value
	if iv, ok := n.AsInt32(); !ok || iv != 7 {
		t.Fatalf("X.n = (%d, %v), want (7, true)", iv, ok)
	}
}

// 5. Double compaction stability: running scenario 3's chain, then
// collecting again immediately with no intervening mutation.
func TestScenarioDoubleCompactionStability(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	c := a.NewObject(may, records.ObjectData{})
	b := a.NewObject(may, records.ObjectData{Prototype: c})
	aObj := a.NewObject(may, records.ObjectData{Prototype: b})
	for i := 0; i < 20; i++ {
		a.NewObject(may, records.ObjectData{})
	}
	root := a.Scoped.Push(aObj)

	first := NewCollector(a).Collect()
	beforeA := a.Scoped.Get(root)

	second := NewCollector(a).Collect()
	afterA := a.Scoped.Get(root)

	if first.LiveCounts[kind.Object] != second.LiveCounts[kind.Object] {
		t.Fatalf("live Object count changed on an idle second cycle: %d != %d",
			first.LiveCounts[kind.Object], second.LiveCounts[kind.Object])
	}
	if beforeA != afterA {
		t.Errorf("rooted A changed bitwise across an idle cycle: %v != %v", beforeA, afterA)
	}
}

// 6. Parallel kinds: interleaved strings and objects, each object
// pointing at its own string, every other pair dropped.
func TestScenarioParallelKindsSurviveTogether(t *testing.T) {
	a := agent.New(nil)
	may := a.RootScope()

	var handles []refs.Handle
	var texts []string

	for i := 0; i < 10; i++ {
		text := "text-" + string(rune('a'+i))
		s := a.NewHeapString(may, text)
		descriptor := a.NewPropertyDescriptor(may, records.PropertyDescriptorData{Value: s})
		obj := a.NewObject(may, records.ObjectData{
			Properties: []records.PropertySlot{{Key: smallStringKey(t, "s"), Descriptor: descriptor}},
		})
		if i%2 == 0 {
			handles = append(handles, a.Scoped.Push(obj))
			texts = append(texts, text)
		}
	}

	stats := NewCollector(a).Collect()
	if stats.LiveCounts[kind.Object] != uint32(len(handles)) {
		t.Fatalf("live Objects = %d, want %d", stats.LiveCounts[kind.Object], len(handles))
	}
	if stats.LiveCounts[kind.String] != uint32(len(handles)) {
		t.Fatalf("live Strings = %d, want %d", stats.LiveCounts[kind.String], len(handles))
	}

	for i, h := range handles {
		obj := a.GetObject(a.Scoped.Get(h))
		descV := obj.Properties[0].Descriptor
		sv := a.GetPropertyDescriptor(descV).Value
		got := a.GetHeapString(sv).Bytes
		if got != texts[i] {
			t.Errorf("surviving pair %d: string = %q, want %q", i, got, texts[i])
		}
	}
}
