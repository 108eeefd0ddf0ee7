package agent

import (
	"testing"

	"emberheap/pkg/kind"
	"emberheap/pkg/records"
	"emberheap/pkg/refs"
	"emberheap/pkg/value"
)

func TestNewObjectAndGetRoundTrip(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	v := a.NewObject(may, records.ObjectData{Prototype: value.Null})
	if got, _ := v.Kind(); got != kind.Object {
		t.Fatalf("Kind() = %v, want Object", got)
	}
	obj := a.GetObject(v)
	if obj.Prototype != value.Null {
		t.Errorf("Prototype = %v, want Null", obj.Prototype)
	}
}

func TestGetWrongKindPanics(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	v := a.NewObject(may, records.ObjectData{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a non-Array value as an Array")
		}
	}()
	a.GetArray(v)
}

func TestAllocsSinceCollectCountsPushes(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	a.NewObject(may, records.ObjectData{})
	a.NewArray(may, records.ArrayData{})
	if a.AllocsSinceCollect() != 2 {
		t.Errorf("AllocsSinceCollect() = %d, want 2", a.AllocsSinceCollect())
	}
	a.ResetAllocCounter()
	if a.AllocsSinceCollect() != 0 {
		t.Errorf("AllocsSinceCollect() after reset = %d, want 0", a.AllocsSinceCollect())
	}
}

func TestInternStringDeduplicates(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	v1 := a.InternString(may, "length")
	v2 := a.InternString(may, "length")
	if v1 != v2 {
		t.Errorf("InternString returned distinct values for the same text: %v != %v", v1, v2)
	}
	if a.AllocsSinceCollect() != 1 {
		t.Errorf("AllocsSinceCollect() = %d, want 1 (second intern should not allocate)", a.AllocsSinceCollect())
	}
}

func TestPushPopExecutionContextRootsAndUnroots(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	ctx := a.PushExecutionContext(may, records.ExecutionContextData{})

	found := false
	a.TraceRoots(func(v *value.Value) {
		if *v == ctx {
			found = true
		}
	})
	if !found {
		t.Fatal("execution context not found among roots while pushed")
	}

	a.PopExecutionContext()
	found = false
	a.TraceRoots(func(v *value.Value) {
		if *v == ctx {
			found = true
		}
	})
	if found {
		t.Fatal("execution context still a root after pop")
	}
}

func TestNewRealmRootsUntilTeardown(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	r := a.NewRealm(may, records.RealmData{})

	count := func() int {
		n := 0
		a.TraceRoots(func(*value.Value) { n++ })
		return n
	}
	before := count()
	a.TeardownRealm(r)
	after := count()
	if after != before-1 {
		t.Errorf("root count after teardown = %d, want %d", after, before-1)
	}
}

func TestPopExecutionContextOnEmptyStackPanics(t *testing.T) {
	a := New(nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty context stack")
		}
	}()
	a.PopExecutionContext()
}

func TestScopedHandleSurvivesNestedScope(t *testing.T) {
	a := New(nil)
	may := a.RootScope()
	obj := a.NewObject(may, records.ObjectData{})
	outer := a.Scoped.Push(obj)

	inner := a.Scope(func(m MayGC) refs.Handle {
		return a.Scoped.Push(a.GetObject(obj).Prototype)
	})
	_ = inner
	if got := a.Scoped.Get(outer); got != obj {
		t.Errorf("outer handle corrupted by nested scope: got %v, want %v", got, obj)
	}
}

func TestCollectionsCoverEveryKind(t *testing.T) {
	a := New(nil)
	cols := a.Collections()
	for k := kind.Kind(0); k < kind.Count; k++ {
		if cols[k] == nil {
			t.Errorf("no Collection registered for kind %v", k)
			continue
		}
		if cols[k].Kind() != k {
			t.Errorf("collection at index %v reports Kind() = %v", k, cols[k].Kind())
		}
	}
}
