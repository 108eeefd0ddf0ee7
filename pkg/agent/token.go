package agent

import (
	"emberheap/pkg/refs"
	"emberheap/pkg/value"
)

// Debug gates the epoch assertions in this file. It defaults to false,
// so a MayGC/NoGC/Bound misuse degrades to a stale read instead of a
// panic; tests and development builds can set it true to catch the bug
// immediately (spec §9's fallback discipline for a
// language without borrow checking, promoted here to the primary
// enforcement mechanism).
var Debug = false

// MayGC is held by code that is allowed to allocate, and therefore
// that a collection cycle may run underneath. It carries no epoch
// snapshot because, by definition, any epoch read through it is
// already suspect.
type MayGC struct {
	agent *Agent
}

// RootScope returns the top-level MayGC token for a, handed to the
// embedder's entry point. Nested MayGC tokens are produced by
// Agent.Scope.
func (a *Agent) RootScope() MayGC {
	return MayGC{agent: a}
}

// Reborrow returns a fresh copy of the token. Go values need no
// actual reborrowing, but the call sites that would need it in a
// borrow-checked language are exactly the ones spec §4.E names, so the
// method exists for API fidelity and so a future stricter token (e.g.
// one that zeroes its receiver) can be dropped in without call-site
// changes.
func (m MayGC) Reborrow() MayGC {
	return m
}

// IntoNoGC consumes a MayGC token and returns a NoGC token snapshotting
// the agent's current epoch. Holding the result is a promise, not an
// enforced guarantee: the caller must not call any MayGC-requiring
// method until the NoGC token goes out of scope.
func (m MayGC) IntoNoGC() NoGC {
	return NoGC{agent: m.agent, epoch: m.agent.epoch}
}

// DeriveNoGC hands back a NoGC snapshot without consuming m, for a
// caller that wants to dereference some Bound values but will keep
// allocating afterward under the same MayGC token.
func (m MayGC) DeriveNoGC() NoGC {
	return NoGC{agent: m.agent, epoch: m.agent.epoch}
}

// NoGC is held by code that promises no collection will run for as
// long as the token is alive. Values Bound under it may be
// dereferenced with Get as long as the agent's epoch has not moved.
type NoGC struct {
	agent *Agent
	epoch uint64
}

// Reborrow returns a fresh copy of the token, tied to the same epoch
// snapshot. See MayGC.Reborrow.
func (n NoGC) Reborrow() NoGC {
	return n
}

// Bind stamps v with this scope's epoch. In Debug mode it panics if
// the agent has already collected since the scope began, since that
// means the NoGC promise was broken before Bind was even called.
func (n NoGC) Bind(v value.Value) Bound {
	if Debug && n.agent.epoch != n.epoch {
		panic("agent: Bind called on a NoGC token invalidated by a collection")
	}
	return Bound{value: v, epoch: n.epoch}
}

// Bound ties a Value to the NoGC scope that bound it. It is not safe
// to store past the scope's end; Unbind it into a rooted table first
// if it needs to escape.
type Bound struct {
	value value.Value
	epoch uint64
}

// Get dereferences b, asserting in Debug mode that n is the same scope
// (or a descendant sharing its epoch) that produced b.
func (b Bound) Get(n NoGC) value.Value {
	if Debug && b.epoch != n.epoch {
		panic("agent: Bound value read outside the NoGC scope that bound it")
	}
	return b.value
}

// Unbind strips the epoch stamp. It performs no check: carrying the
// result across a scope boundary is safe only once the caller has
// re-rooted the value somewhere that survives a collection (a
// ScopedTable push, a GlobalTable entry, or an Agent-owned root).
func (b Bound) Unbind() value.Value {
	return b.value
}

// Scope runs f under a nested handle region: f receives a reborrowed
// MayGC token and returns a handle rooted in that region. Scope
// re-roots the escaping value in the enclosing region before releasing
// the nested one, then returns a handle to it there — a nested-region
// discipline applied to GC roots instead of arena memory.
func (a *Agent) Scope(f func(MayGC) refs.Handle) refs.Handle {
	mark := a.Scoped.Mark()
	inner := f(a.RootScope())
	v := a.Scoped.Get(inner)
	a.Scoped.Release(mark)
	return a.Scoped.Push(v)
}
