package gc

import (
	"emberheap/pkg/agent"
	"emberheap/pkg/kind"
	"emberheap/pkg/trace"
	"emberheap/pkg/value"
)

// marker holds one cycle's live-bit state: a per-kind boolean slice
// sized to that kind's vector length at cycle start, plus the work
// stack used to drain the transitive closure. Go's growable slice
// stands in for the teacher's fixed-capacity mark stack; there is no
// separate overflow path to maintain since append never runs out of
// room.
type marker struct {
	a      *agent.Agent
	cols   [kind.Count]trace.Collection
	marked [kind.Count][]bool
	stack  []value.Value
}

func newMarker(a *agent.Agent) *marker {
	m := &marker{a: a, cols: a.Collections()}
	for k := range m.cols {
		m.marked[k] = make([]bool, m.cols[k].Len())
	}
	return m
}

// visit is the shared callback for both root enumeration and trace
// dispatch: it marks v's slot live (if not already) and pushes it for
// later draining. Immediates are ignored; they address no vector.
func (m *marker) visit(v *value.Value) {
	k, ok := v.Kind()
	if !ok {
		return
	}
	idx, _ := v.HeapIndex()
	if int(idx) >= len(m.marked[k]) {
		return
	}
	if m.marked[k][idx] {
		return
	}
	m.marked[k][idx] = true
	m.stack = append(m.stack, *v)
}

// drain runs the mark loop until the work stack empties: spec §4.G
// Phase 2, "mark to fixpoint."
func (m *marker) drain() {
	for len(m.stack) > 0 {
		v := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		k, _ := v.Kind()
		idx, _ := v.HeapIndex()
		m.cols[k].TraceAt(idx, m.visit)
	}
}

// run enumerates roots and marks their transitive closure.
func (m *marker) run() {
	m.a.TraceRoots(m.visit)
	m.drain()
}

// isMarked reports whether v's referent is live. Immediates are
// trivially live: they hold no heap slot to sweep.
func (m *marker) isMarked(v value.Value) bool {
	k, ok := v.Kind()
	if !ok {
		return true
	}
	idx, _ := v.HeapIndex()
	if int(idx) >= len(m.marked[k]) {
		return false
	}
	return m.marked[k][idx]
}

// weakSweep is spec §4.I's supplementary phase, run once the ordinary
// mark fixpoint is reached and before compaction: a WeakMap or WeakSet
// holds its keys weakly but its values strongly as long as the key
// survives, and that "as long as" can only be known after marking
// settles. Propagating newly-discovered marks can itself make other
// weak entries' keys live (if a propagated value is itself a live key
// elsewhere), so the propagation step runs to its own fixpoint before
// any entry is actually dropped.
func (m *marker) weakSweep() {
	for {
		progressed := false
		wm := m.cols[kind.WeakMap]
		for idx := uint32(0); idx < wm.Len(); idx++ {
			if !m.marked[kind.WeakMap][idx] {
				continue
			}
			rec := m.a.GetWeakMap(value.FromHeap(kind.WeakMap, idx))
			for i := 0; i < rec.Len(); i++ {
				if !m.isMarked(rec.KeyAt(i)) {
					continue
				}
				before := len(m.stack)
				m.visit(rec.ValueAt(i))
				if len(m.stack) > before {
					progressed = true
				}
			}
		}
		if !progressed {
			break
		}
		m.drain()
	}

	m.a.DropDeadInterned(m.isMarked)

	wm := m.cols[kind.WeakMap]
	for idx := uint32(0); idx < wm.Len(); idx++ {
		if !m.marked[kind.WeakMap][idx] {
			continue
		}
		m.a.GetWeakMap(value.FromHeap(kind.WeakMap, idx)).Sweep(m.isMarked)
	}
	ws := m.cols[kind.WeakSet]
	for idx := uint32(0); idx < ws.Len(); idx++ {
		if !m.marked[kind.WeakSet][idx] {
			continue
		}
		m.a.GetWeakSet(value.FromHeap(kind.WeakSet, idx)).Sweep(m.isMarked)
	}
}
