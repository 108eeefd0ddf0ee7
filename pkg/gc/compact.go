package gc

import (
	"context"

	"golang.org/x/sync/errgroup"

	"emberheap/pkg/agent"
	"emberheap/pkg/kind"
	"emberheap/pkg/trace"
	"emberheap/pkg/value"
)

// compact is spec §4.G Phase 3: for every kind, build the old-index to
// new-index map and shift live records down into the gaps left by
// dead ones, in a single forward pass per kind (destinations never
// exceed sources, so no temporary copy is needed). Kinds are
// independent of each other at this point — shifting one kind's
// vector never touches another's — so the per-kind passes run
// concurrently.
func compact(a *agent.Agent, m *marker) [kind.Count][]uint32 {
	cols := a.Collections()
	var newIndex [kind.Count][]uint32

	g, _ := errgroup.WithContext(context.Background())
	for k := kind.Kind(0); k < kind.Count; k++ {
		k := k
		col := cols[k]
		marked := m.marked[k]
		newIndex[k] = make([]uint32, len(marked))
		g.Go(func() error {
			shiftKind(col, marked, newIndex[k])
			return nil
		})
	}
	_ = g.Wait() // shiftKind never returns an error

	return newIndex
}

// shiftKind moves every live record in col down to its compacted
// position, filling newIndex[oldIdx] = newIdx for every record that
// survives, and truncates col to the new live length.
func shiftKind(col trace.Collection, marked []bool, newIndex []uint32) {
	write := uint32(0)
	for read := uint32(0); read < uint32(len(marked)); read++ {
		if !marked[read] {
			continue
		}
		if write != read {
			col.Move(write, read)
		}
		newIndex[read] = write
		write++
	}
	col.Truncate(write)
}

// rewriteAll is spec §4.G Phase 4: the mandatory global barrier that
// runs only after every kind has finished shifting. It walks every
// surviving record (now at its new, compacted index) plus every root,
// and rewrites each reference it finds from the old index space to
// the new one. It must not start until compact has returned for every
// kind, since a reference to kind X is only resolvable once X's shift
// (and therefore its newIndex map) is complete — this is why shifting
// and rewriting are two separate passes rather than one.
func rewriteAll(a *agent.Agent, newIndex [kind.Count][]uint32) {
	cols := a.Collections()

	rewrite := func(v *value.Value) {
		k, ok := v.Kind()
		if !ok {
			return
		}
		oldIdx, _ := v.HeapIndex()
		*v = value.Rewrite(*v, newIndex[k][oldIdx])
	}

	for k := range cols {
		n := cols[k].Len()
		for i := uint32(0); i < n; i++ {
			cols[k].TraceAt(i, rewrite)
		}
	}

	a.TraceRoots(rewrite)
	a.RewriteInterned(func(v value.Value) value.Value {
		nv := v
		rewrite(&nv)
		return nv
	})

	rewriteWeakEntries(a, rewrite)
}

// rewriteWeakEntries fixes up WeakMap and WeakSet entries directly,
// bypassing the ordinary Trace dispatch: their Trace is intentionally
// a no-op (spec §4.I) so the mark phase never walks through a weak
// reference, but a surviving entry's key and value still address
// indices that just moved, exactly like any other reference, and must
// be translated the same way.
func rewriteWeakEntries(a *agent.Agent, rewrite func(*value.Value)) {
	cols := a.Collections()

	wm := cols[kind.WeakMap]
	for idx := uint32(0); idx < wm.Len(); idx++ {
		rec := a.GetWeakMap(value.FromHeap(kind.WeakMap, idx))
		for i := 0; i < rec.Len(); i++ {
			rewrite(rec.KeyPtr(i))
			rewrite(rec.ValueAt(i))
		}
	}

	ws := cols[kind.WeakSet]
	for idx := uint32(0); idx < ws.Len(); idx++ {
		rec := a.GetWeakSet(value.FromHeap(kind.WeakSet, idx))
		for i := 0; i < rec.Len(); i++ {
			rewrite(rec.ElementPtr(i))
		}
	}
}
