// Package trace is the per-kind trace dispatcher (spec §4.F): for
// every heap kind it provides the function that visits each outgoing
// reference a record holds, so the collector (package gc) can mark and
// rewrite without knowing the concrete record type of each kind.
package trace

import (
	"emberheap/pkg/heapvec"
	"emberheap/pkg/kind"
	"emberheap/pkg/value"
)

// Traceable is implemented by every heap record type in package
// records. The visitor receives a pointer to each stored reference so
// the collector can rewrite it in place (spec §4.G Phase 4).
type Traceable interface {
	Trace(visit func(*value.Value))
}

// tracePtr constrains a generic parameter PT to be *T where *T
// implements Traceable — the idiomatic Go pattern for attaching a
// pointer-receiver method set to a value type parameter.
type tracePtr[T any] interface {
	*T
	Traceable
}

// Collection is the dispatcher's kind-erased view of one heap-kind
// vector: the minimal surface the collector needs to mark, shift, and
// rewrite a kind without a type switch over every concrete record
// type. Building the fixed slice of Collections once per Agent is the
// flat dispatch table spec §9 calls for in place of virtual dispatch.
type Collection interface {
	Kind() kind.Kind
	Len() uint32
	Move(dst, src uint32)
	Truncate(newLen uint32)
	TraceAt(i uint32, visit func(*value.Value))
}

// VectorCollection adapts a heapvec.Vector[T] of records into a
// Collection, for any record type T whose pointer type implements
// Traceable.
type VectorCollection[T any, PT tracePtr[T]] struct {
	k   kind.Kind
	vec *heapvec.Vector[T]
}

// NewVectorCollection builds the Collection adapter for kind k backed
// by vec. PT must be given explicitly at the call site (e.g.
// NewVectorCollection[records.ObjectData, *records.ObjectData](...))
// since it appears only in the type constraint and Go cannot infer it.
func NewVectorCollection[T any, PT tracePtr[T]](k kind.Kind, vec *heapvec.Vector[T]) *VectorCollection[T, PT] {
	return &VectorCollection[T, PT]{k: k, vec: vec}
}

// Kind returns the heap kind this collection dispatches for.
func (c *VectorCollection[T, PT]) Kind() kind.Kind { return c.k }

// Len returns the number of live records.
func (c *VectorCollection[T, PT]) Len() uint32 { return c.vec.Len() }

// Move relocates the record at src to dst (spec §4.G Phase 4 step 1).
func (c *VectorCollection[T, PT]) Move(dst, src uint32) { c.vec.Move(dst, src) }

// Truncate drops every record at or past newLen.
func (c *VectorCollection[T, PT]) Truncate(newLen uint32) { c.vec.Truncate(newLen) }

// TraceAt invokes the record's Trace method, dispatching through PT
// without a type switch.
func (c *VectorCollection[T, PT]) TraceAt(i uint32, visit func(*value.Value)) {
	rec := c.vec.GetPtr(i)
	PT(rec).Trace(visit)
}

// Vector exposes the underlying typed vector for callers (package
// agent) that need typed Get/Push access alongside the kind-erased
// Collection view.
func (c *VectorCollection[T, PT]) Vector() *heapvec.Vector[T] { return c.vec }
