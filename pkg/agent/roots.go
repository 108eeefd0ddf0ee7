package agent

import "emberheap/pkg/value"

// TraceRoots visits every reference the collector must treat as live
// regardless of what else points at it (spec §4.G Phase 1): the scoped
// and global reference tables, every frame on the execution context
// stack, and every realm still live. Because both stacks are stored as
// ordinary Values rather than raw heap indices, the same visit
// callback that marks them also rewrites them in place during Phase
// 4 — no bespoke index-translation step is needed for the root set.
func (a *Agent) TraceRoots(visit func(*value.Value)) {
	a.Scoped.Trace(visit)
	a.Global.Trace(visit)

	for i := range a.contextStack {
		visit(&a.contextStack[i])
	}
	for i := range a.liveRealms {
		visit(&a.liveRealms[i])
	}
}

// DropDeadInterned is the intern table's weak-sweep hook (spec §4.I
// applied to the agent's own cache, not just embedder WeakMaps): the
// intern table holds no mark of its own, so once the mark phase
// settles, every entry whose string did not survive is evicted.
func (a *Agent) DropDeadInterned(isLive func(value.Value) bool) {
	for k, v := range a.interned {
		if !isLive(v) {
			delete(a.interned, k)
		}
	}
}

// RewriteInterned rewrites every surviving interned Value to its
// post-compaction index (spec §4.G Phase 4). Call only after
// DropDeadInterned: every remaining entry is assumed live.
func (a *Agent) RewriteInterned(rewrite func(value.Value) value.Value) {
	for k, v := range a.interned {
		a.interned[k] = rewrite(v)
	}
}

// BumpEpoch is called by package gc once a cycle completes, so any
// NoGC token taken out before the cycle reads as stale afterward.
func (a *Agent) BumpEpoch() {
	a.bumpEpoch()
}
