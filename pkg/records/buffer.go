package records

import "emberheap/pkg/value"

// ArrayBufferData is the record for kind.ArrayBuffer.
type ArrayBufferData struct {
	Bytes    []byte
	Detached bool
}

// Trace is a no-op: a raw byte buffer holds no Value references.
func (*ArrayBufferData) Trace(func(*value.Value)) {}

// DataViewData is the record for kind.DataView.
type DataViewData struct {
	Buffer     value.Value
	ByteOffset uint32
	ByteLength uint32
}

// Trace visits the backing ArrayBuffer reference.
func (d *DataViewData) Trace(visit func(*value.Value)) {
	visit(&d.Buffer)
}

// TypedArrayElementKind names a typed array's element type.
type TypedArrayElementKind uint8

const (
	Int8Elements TypedArrayElementKind = iota
	Uint8Elements
	Uint8ClampedElements
	Int16Elements
	Uint16Elements
	Int32Elements
	Uint32Elements
	Float32Elements
	Float64Elements
	BigInt64Elements
	BigUint64Elements
)

// TypedArrayData is the record for kind.TypedArray.
type TypedArrayData struct {
	Buffer      value.Value
	ElementKind TypedArrayElementKind
	ByteOffset  uint32
	Length      uint32
}

// Trace visits the backing ArrayBuffer reference.
func (t *TypedArrayData) Trace(visit func(*value.Value)) {
	visit(&t.Buffer)
}
