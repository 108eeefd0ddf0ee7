package refs

import "emberheap/pkg/heapvec"
import "emberheap/pkg/value"

// GlobalHandle is an opaque reference into a GlobalTable. Unlike a
// scoped Handle it has no stack discipline: it stays valid until the
// embedder calls Release, however many collection cycles run in
// between (the collector rewrites the Value a live handle points at,
// but never invalidates the handle itself).
type GlobalHandle uint32

type globalSlot struct {
	v    value.Value
	live bool
}

// Trace visits v if the slot is occupied; a freed slot holds no
// reference and is skipped.
func (s *globalSlot) Trace(visit func(*value.Value)) {
	if s.live {
		visit(&s.v)
	}
}

// GlobalTable is a free-list-backed table of explicitly managed
// handles, for embedder state that outlives any single scope: module
// registries, cached constructors, persistent callbacks.
type GlobalTable struct {
	vec  *heapvec.Vector[globalSlot]
	free []uint32
}

// NewGlobalTable builds an empty global table.
func NewGlobalTable(initialCap int, retire *heapvec.RetireQueue) *GlobalTable {
	return &GlobalTable{vec: heapvec.New[globalSlot](initialCap, retire)}
}

// Create roots v under a freshly allocated or recycled handle.
func (t *GlobalTable) Create(v value.Value) GlobalHandle {
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		*t.vec.GetPtr(i) = globalSlot{v: v, live: true}
		return GlobalHandle(i)
	}
	i := t.vec.Push(globalSlot{v: v, live: true})
	return GlobalHandle(i)
}

// Get dereferences h. ok is false if h was never created or has since
// been released.
func (t *GlobalTable) Get(h GlobalHandle) (value.Value, bool) {
	slot, ok := t.vec.Get(uint32(h))
	if !ok || !slot.live {
		return value.Value{}, false
	}
	return slot.v, true
}

// Set overwrites the value a live handle roots. It panics if h is not
// live, since writing through a released handle is a use-after-free
// in the embedder, not a recoverable condition.
func (t *GlobalTable) Set(h GlobalHandle, v value.Value) {
	slot := t.vec.GetPtr(uint32(h))
	if !slot.live {
		panic("refs: Set on released global handle")
	}
	slot.v = v
}

// Release returns h's slot to the free list. Releasing an already-
// released or unknown handle panics.
func (t *GlobalTable) Release(h GlobalHandle) {
	slot := t.vec.GetPtr(uint32(h))
	if !slot.live {
		panic("refs: double release of global handle")
	}
	*slot = globalSlot{}
	t.free = append(t.free, uint32(h))
}

// Len returns the number of slots ever allocated, live or freed —
// callers that need the live count should track it themselves or walk
// Trace.
func (t *GlobalTable) Len() uint32 {
	return t.vec.Len()
}

// Trace visits every live handle's value, rooting it for the collector
// and rewriting it in place during Phase 4.
func (t *GlobalTable) Trace(visit func(*value.Value)) {
	s := t.vec.RawSlice()
	for i := range s {
		s[i].Trace(visit)
	}
}
