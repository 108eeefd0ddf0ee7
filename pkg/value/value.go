// Package value implements the tagged Value discriminator that covers
// every ECMAScript value the engine can represent: immediates held
// inline, and heap-backed values addressed by a (Kind, index) pair.
package value

import (
	"fmt"
	"math"

	"emberheap/pkg/kind"
)

// Tag discriminates a Value's payload. The first few tags name
// immediates; every tag from heapTagBase onward names a heap kind, in
// the same order as kind.Kind, so converting between the two is a
// constant offset.
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNull
	TagBoolean
	TagInt32
	TagSmallString
	TagSmallBigInt

	heapTagBase
)

// maxTag is the highest tag value a Value can legally carry.
const maxTag = Tag(heapTagBase) + Tag(kind.Count) - 1

// smallStringMaxBytes is the inline string budget: 7 bytes plus a
// length byte fit in the 8-byte payload alongside the tag byte.
const smallStringMaxBytes = 7

// Value is a tagged pair (discriminant, payload). Two Values compare
// identity-equal iff their (tag, payload) pair is bitwise equal; Go's
// struct equality gives this for free since both fields are plain
// comparable scalars.
type Value struct {
	tag     Tag
	payload uint64
}

// Undefined is the undefined singleton.
var Undefined = Value{tag: TagUndefined}

// Null is the null singleton.
var Null = Value{tag: TagNull}

// True and False are the boolean singletons.
var (
	True  = Value{tag: TagBoolean, payload: 1}
	False = Value{tag: TagBoolean, payload: 0}
)

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Int32 returns a Value holding an inline 32-bit signed integer.
func Int32(i int32) Value {
	return Value{tag: TagInt32, payload: uint64(uint32(i))}
}

// SmallBigInt returns a Value holding an inline bigint. ok is false if
// the engine should instead box it as a heap BigInt (never the case
// here since the inline range covers all of int64, but the signature
// mirrors the heap constructors for symmetry).
func SmallBigInt(i int64) (v Value, ok bool) {
	return Value{tag: TagSmallBigInt, payload: uint64(i)}, true
}

// SmallString returns a Value holding an inline string of up to 7
// bytes. ok is false when s does not fit and the caller must instead
// allocate a heap String.
func SmallString(s string) (v Value, ok bool) {
	if len(s) > smallStringMaxBytes {
		return Value{}, false
	}
	var payload uint64
	payload |= uint64(len(s))
	for i := 0; i < len(s); i++ {
		payload |= uint64(s[i]) << (8 * (i + 1))
	}
	return Value{tag: TagSmallString, payload: payload}, true
}

// FromHeap returns a Value addressing index within k's vector.
func FromHeap(k kind.Kind, index uint32) Value {
	if !k.Valid() {
		panic(fmt.Sprintf("value: invalid heap kind %d", uint8(k)))
	}
	return Value{tag: heapTagBase + Tag(k), payload: uint64(index)}
}

// Tag returns the value's discriminant.
func (v Value) Tag() Tag { return v.tag }

// IsHeap reports whether v addresses a heap entry.
func (v Value) IsHeap() bool { return v.tag >= heapTagBase }

// Kind returns the heap kind v addresses, or ok=false if v is an
// immediate.
func (v Value) Kind() (k kind.Kind, ok bool) {
	if !v.IsHeap() {
		return 0, false
	}
	return kind.Kind(v.tag - heapTagBase), true
}

// HeapIndex returns the heap index v addresses, or ok=false if v is an
// immediate.
func (v Value) HeapIndex() (index uint32, ok bool) {
	if !v.IsHeap() {
		return 0, false
	}
	return uint32(v.payload), true
}

// IsUndefined, IsNull, IsBoolean, IsInt32, IsSmallString and
// IsSmallBigInt test v's discriminant without touching the heap.
func (v Value) IsUndefined() bool    { return v.tag == TagUndefined }
func (v Value) IsNull() bool         { return v.tag == TagNull }
func (v Value) IsBoolean() bool      { return v.tag == TagBoolean }
func (v Value) IsInt32() bool        { return v.tag == TagInt32 }
func (v Value) IsSmallString() bool  { return v.tag == TagSmallString }
func (v Value) IsSmallBigInt() bool  { return v.tag == TagSmallBigInt }
func (v Value) IsNullOrUndefined() bool {
	return v.tag == TagUndefined || v.tag == TagNull
}

// AsBoolean returns v's boolean payload. ok is false if v is not a
// boolean.
func (v Value) AsBoolean() (b bool, ok bool) {
	if v.tag != TagBoolean {
		return false, false
	}
	return v.payload != 0, true
}

// AsInt32 returns v's inline integer payload. ok is false if v is not
// an inline integer.
func (v Value) AsInt32() (i int32, ok bool) {
	if v.tag != TagInt32 {
		return 0, false
	}
	return int32(uint32(v.payload)), true
}

// AsSmallBigInt returns v's inline bigint payload. ok is false if v is
// not an inline bigint.
func (v Value) AsSmallBigInt() (i int64, ok bool) {
	if v.tag != TagSmallBigInt {
		return 0, false
	}
	return int64(v.payload), true
}

// AsSmallString decodes v's inline string payload. ok is false if v is
// not an inline string.
func (v Value) AsSmallString() (s string, ok bool) {
	if v.tag != TagSmallString {
		return "", false
	}
	n := int(v.payload & 0xff)
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = byte(v.payload >> (8 * (i + 1)))
	}
	return string(buf), true
}

// AsFloat64 converts an Int32 or SmallBigInt immediate to a float64,
// for call sites that need ToNumber-style coercion of an immediate
// without touching the heap. ok is false for any other tag, including
// heap-backed Number and BigInt.
func (v Value) AsFloat64() (f float64, ok bool) {
	switch v.tag {
	case TagInt32:
		i, _ := v.AsInt32()
		return float64(i), true
	case TagSmallBigInt:
		i, _ := v.AsSmallBigInt()
		return float64(i), true
	default:
		return math.NaN(), false
	}
}

// rewrite returns v with its heap index replaced by newIndex, keeping
// the same kind. Used by the collector to relocate references during
// compaction (§4.G Phase 4); panics if v is not heap-backed, since the
// collector only ever calls this on slots it has already confirmed are
// heap references.
func (v Value) rewrite(newIndex uint32) Value {
	if !v.IsHeap() {
		panic("value: rewrite of a non-heap value")
	}
	return Value{tag: v.tag, payload: uint64(newIndex)}
}

// Rewrite is the collector-facing form of rewrite; exported so the
// collector (package gc) can apply it through a visitor
// without this package granting general mutation access to payload
// bits.
func Rewrite(v Value, newIndex uint32) Value { return v.rewrite(newIndex) }

// String renders a debug form. It never dereferences the heap: for a
// heap-backed value it prints the (kind, index) pair, not the
// referent's contents, since printing the contents is a may-GC-free
// but agent-dependent operation that belongs to higher layers.
func (v Value) String() string {
	switch v.tag {
	case TagUndefined:
		return "undefined"
	case TagNull:
		return "null"
	case TagBoolean:
		b, _ := v.AsBoolean()
		return fmt.Sprintf("%t", b)
	case TagInt32:
		i, _ := v.AsInt32()
		return fmt.Sprintf("%d", i)
	case TagSmallString:
		s, _ := v.AsSmallString()
		return fmt.Sprintf("%q", s)
	case TagSmallBigInt:
		i, _ := v.AsSmallBigInt()
		return fmt.Sprintf("%dn", i)
	default:
		k, _ := v.Kind()
		idx, _ := v.HeapIndex()
		return fmt.Sprintf("%s@%d", k, idx)
	}
}
