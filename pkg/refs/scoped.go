// Package refs holds the two reference tables an Agent exposes to
// embedder code (spec §4.D): a scoped table for short-lived handles
// that die in a stack discipline with the code that created them, and
// a global table for handles whose lifetime the embedder manages
// explicitly. Both tables are collector roots (spec §4.G Phase 1).
package refs

import "emberheap/pkg/heapvec"
import "emberheap/pkg/value"

// Handle is an opaque reference into a ScopedTable. It is only valid
// between the Mark() call that preceded its creation and the matching
// Release(); using it after Release is a programmer error, mirroring
// the scope-exit handles of the engine's own NoGC/Bound discipline
// (package agent). Get panics on a handle at or past the table's
// current depth, but a released handle whose slot a later Push has
// reused reads the new value without any error.
type Handle uint32

// Mark identifies a point in a ScopedTable's history to which Release
// can unwind, analogous to a stack-frame base pointer.
type Mark uint32

// ScopedTable is a push-only stack of rooted values. Entering a scope
// records a Mark; leaving it calls Release(mark), which discards every
// handle pushed since — a nested-region discipline applied to GC
// roots.
type ScopedTable struct {
	vec *heapvec.Vector[value.Value]
}

// NewScopedTable builds an empty scoped table with room for
// initialCap handles before its first growth.
func NewScopedTable(initialCap int, retire *heapvec.RetireQueue) *ScopedTable {
	return &ScopedTable{vec: heapvec.New[value.Value](initialCap, retire)}
}

// Mark returns a checkpoint at the table's current depth.
func (t *ScopedTable) Mark() Mark {
	return Mark(t.vec.Len())
}

// Push roots v and returns a handle to it, valid until the enclosing
// scope is released.
func (t *ScopedTable) Push(v value.Value) Handle {
	return Handle(t.vec.Push(v))
}

// Get dereferences a handle. It panics if h is at or past the table's
// current depth (never pushed, or released and its slot not since
// reused), since that indicates a use-after-scope bug in the caller
// rather than a recoverable runtime condition.
func (t *ScopedTable) Get(h Handle) value.Value {
	v, ok := t.vec.Get(uint32(h))
	if !ok {
		panic("refs: use of released scoped handle")
	}
	return v
}

// Set overwrites the value a still-live handle roots, used when a
// binding is reassigned without changing identity.
func (t *ScopedTable) Set(h Handle, v value.Value) {
	*t.vec.GetPtr(uint32(h)) = v
}

// Release unwinds the table back to mark, discarding every handle
// pushed since it was taken.
func (t *ScopedTable) Release(mark Mark) {
	t.vec.Truncate(uint32(mark))
}

// Len reports the number of currently live handles.
func (t *ScopedTable) Len() uint32 {
	return t.vec.Len()
}

// Trace visits every live scoped handle, rooting it for the collector
// (spec §4.G Phase 1) and rewriting it in place during Phase 4.
func (t *ScopedTable) Trace(visit func(*value.Value)) {
	s := t.vec.RawSlice()
	for i := range s {
		visit(&s[i])
	}
}
