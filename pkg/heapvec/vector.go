// Package heapvec implements the growable, contiguous per-kind storage
// that backs every heap vector in the engine (spec §4.A), plus the
// growth protocol that keeps pushes safe under future concurrent
// marking (spec §4.H).
package heapvec

import (
	"fmt"
	"sync/atomic"
)

// growthFactor is the geometric factor applied on reallocation, chosen
// to amortize the copy cost (spec requires a factor >= 1.5).
const growthFactor = 1.5

// Vector is one kind's heap storage: a dense, index-addressed sequence
// of T. Indices returned by Push are stable until the next collection
// cycle relocates them.
//
// In single-threaded mode (the default) pushes grow storage in place
// with an ordinary copying reallocation. In concurrent-marking mode, a
// push that forces reallocation publishes the new storage atomically
// and defers freeing the old storage to the Agent's retire queue,
// since a marker goroutine may still hold a pointer into it.
type Vector[T any] struct {
	storage atomic.Pointer[[]T]
	retire  *RetireQueue
}

// New creates an empty vector with the given initial capacity. If
// retire is non-nil, the vector runs in concurrent-marking mode: old
// backing arrays are retired instead of dropped immediately.
func New[T any](initialCap int, retire *RetireQueue) *Vector[T] {
	s := make([]T, 0, initialCap)
	v := &Vector[T]{retire: retire}
	v.storage.Store(&s)
	return v
}

// Len returns the vector's current length.
func (v *Vector[T]) Len() uint32 {
	return uint32(len(*v.storage.Load()))
}

// Cap returns the vector's current capacity.
func (v *Vector[T]) Cap() uint32 {
	return uint32(cap(*v.storage.Load()))
}

// Get returns the record at i. ok is false if i is out of range.
func (v *Vector[T]) Get(i uint32) (rec T, ok bool) {
	s := *v.storage.Load()
	if int(i) >= len(s) {
		return rec, false
	}
	return s[i], true
}

// GetPtr returns a mutable pointer to the record at i, for in-place
// mutation by setters (spec §3: "any setter that installs a reference
// ... is the only way new edges enter the graph"). Only safe to call
// from the single mutator goroutine.
func (v *Vector[T]) GetPtr(i uint32) *T {
	s := *v.storage.Load()
	if int(i) >= len(s) {
		panic(fmt.Sprintf("heapvec: index %d out of range (len %d)", i, len(s)))
	}
	return &s[i]
}

// Push appends rec and returns its new index.
func (v *Vector[T]) Push(rec T) uint32 {
	old := *v.storage.Load()
	if len(old) == cap(old) {
		v.grow(len(old) + 1)
		old = *v.storage.Load()
	}
	newSlice := append(old, rec)
	v.storage.Store(&newSlice)
	return uint32(len(newSlice) - 1)
}

// grow reallocates storage to hold at least minCap elements.
func (v *Vector[T]) grow(minCap int) {
	old := *v.storage.Load()
	newCap := int(float64(cap(old)+1) * growthFactor)
	if newCap < minCap {
		newCap = minCap
	}
	fresh := make([]T, len(old), newCap)
	copy(fresh, old)
	v.storage.Store(&fresh)
	if v.retire != nil {
		v.retire.Add(old)
	}
}

// RawSlice returns the live elements as a slice, for use by the
// collector's shift/rewrite passes (spec §4.G), which run stop-the-
// world and therefore need no atomic indirection.
func (v *Vector[T]) RawSlice() []T {
	return *v.storage.Load()
}

// Move copies the record at src to dst. Used during compaction, where
// dst never exceeds src (spec §4.G step 1: "memmove-safe because
// destinations never exceed sources").
func (v *Vector[T]) Move(dst, src uint32) {
	s := *v.storage.Load()
	s[dst] = s[src]
}

// Truncate shrinks the vector to newLen, discarding everything past
// it. newLen must not exceed the current length.
func (v *Vector[T]) Truncate(newLen uint32) {
	s := *v.storage.Load()
	if int(newLen) > len(s) {
		panic(fmt.Sprintf("heapvec: truncate to %d exceeds length %d", newLen, len(s)))
	}
	truncated := s[:newLen]
	v.storage.Store(&truncated)
}
