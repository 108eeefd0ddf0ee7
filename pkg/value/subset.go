package value

import "emberheap/pkg/kind"

// Subset enums restrict Value to discriminants a caller has already
// proven present. Conversion to Value is total (Value method); the
// reverse is partial and checked (the As* functions below).

// Object is a Value known to be one of the object-like heap kinds.
type Object struct{ v Value }

// Function is a Value known to be one of the callable heap kinds.
type Function struct{ v Value }

// PropertyKey is a Value known to be usable as an object property key:
// a string, a symbol, or an inline small-integer array index.
type PropertyKey struct{ v Value }

// Numeric is a Value known to be a JavaScript number or bigint,
// inline or heap-backed.
type Numeric struct{ v Value }

// Primitive is a Value known not to be an object.
type Primitive struct{ v Value }

func (o Object) Value() Value      { return o.v }
func (f Function) Value() Value    { return f.v }
func (p PropertyKey) Value() Value { return p.v }
func (n Numeric) Value() Value     { return n.v }
func (p Primitive) Value() Value   { return p.v }

var objectKinds = map[kind.Kind]bool{
	kind.Object:           true,
	kind.Array:             true,
	kind.OrdinaryFunction:  true,
	kind.BuiltinFunction:   true,
	kind.BoundFunction:     true,
	kind.ArrayBuffer:       true,
	kind.DataView:          true,
	kind.TypedArray:        true,
	kind.Map:               true,
	kind.Set:               true,
	kind.WeakMap:           true,
	kind.WeakSet:           true,
	kind.Date:              true,
	kind.RegExp:            true,
	kind.Error:             true,
	kind.Proxy:             true,
	kind.Promise:           true,
}

var functionKinds = map[kind.Kind]bool{
	kind.OrdinaryFunction: true,
	kind.BuiltinFunction:  true,
	kind.BoundFunction:    true,
}

// IsObjectKind reports whether v's kind is one of the object-like heap
// kinds. Immediates are never objects.
func (v Value) IsObjectKind() bool {
	k, ok := v.Kind()
	return ok && objectKinds[k]
}

// IsFunctionKind reports whether v's kind is one of the callable heap
// kinds.
func (v Value) IsFunctionKind() bool {
	k, ok := v.Kind()
	return ok && functionKinds[k]
}

// IsPropertyKeyLike reports whether v could serve as a property key:
// an inline string, an inline integer (used as an array index), or a
// heap String/Symbol.
func (v Value) IsPropertyKeyLike() bool {
	if v.tag == TagSmallString || v.tag == TagInt32 {
		return true
	}
	k, ok := v.Kind()
	return ok && (k == kind.String || k == kind.Symbol)
}

// IsNumericLike reports whether v is a JavaScript number or bigint.
func (v Value) IsNumericLike() bool {
	if v.tag == TagInt32 || v.tag == TagSmallBigInt {
		return true
	}
	k, ok := v.Kind()
	return ok && (k == kind.Number || k == kind.BigInt)
}

// AsObject converts v to the Object subset. ok is false if v's kind is
// not object-like.
func AsObject(v Value) (Object, bool) {
	if !v.IsObjectKind() {
		return Object{}, false
	}
	return Object{v}, true
}

// AsFunction converts v to the Function subset.
func AsFunction(v Value) (Function, bool) {
	if !v.IsFunctionKind() {
		return Function{}, false
	}
	return Function{v}, true
}

// AsPropertyKey converts v to the PropertyKey subset.
func AsPropertyKey(v Value) (PropertyKey, bool) {
	if !v.IsPropertyKeyLike() {
		return PropertyKey{}, false
	}
	return PropertyKey{v}, true
}

// AsNumeric converts v to the Numeric subset.
func AsNumeric(v Value) (Numeric, bool) {
	if !v.IsNumericLike() {
		return Numeric{}, false
	}
	return Numeric{v}, true
}

// AsPrimitive converts v to the Primitive subset. ok is false only for
// object-like kinds.
func AsPrimitive(v Value) (Primitive, bool) {
	if v.IsObjectKind() {
		return Primitive{}, false
	}
	return Primitive{v}, true
}
