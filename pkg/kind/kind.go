// Package kind enumerates every category of heap-resident entity the
// engine knows about. Adding a new heap kind means extending this
// enumeration, giving it a vector in agent.Agent, and providing a record
// type that implements trace.Traceable.
package kind

import "fmt"

// Kind names one category of heap-resident entity. It is a closed
// enumeration: every Value discriminant that addresses the heap names
// exactly one Kind, and that Kind determines which vector the value's
// index addresses.
type Kind uint8

const (
	Object Kind = iota
	Array
	OrdinaryFunction
	BuiltinFunction
	BoundFunction
	String
	Symbol
	BigInt
	Number
	ArrayBuffer
	DataView
	TypedArray
	Map
	Set
	WeakMap
	WeakSet
	Date
	RegExp
	Error
	Proxy
	Promise
	Iterator
	EnvironmentRecord
	Realm
	Script
	Module
	ExecutionContext
	ReferenceRecord
	PropertyDescriptor
	PropertyKeyStorage
	Shape

	// Count is the number of kinds in the enumeration, not a kind itself.
	Count
)

var names = [Count]string{
	Object:             "Object",
	Array:              "Array",
	OrdinaryFunction:   "OrdinaryFunction",
	BuiltinFunction:    "BuiltinFunction",
	BoundFunction:      "BoundFunction",
	String:             "String",
	Symbol:             "Symbol",
	BigInt:             "BigInt",
	Number:             "Number",
	ArrayBuffer:        "ArrayBuffer",
	DataView:           "DataView",
	TypedArray:         "TypedArray",
	Map:                "Map",
	Set:                "Set",
	WeakMap:            "WeakMap",
	WeakSet:            "WeakSet",
	Date:               "Date",
	RegExp:             "RegExp",
	Error:              "Error",
	Proxy:              "Proxy",
	Promise:            "Promise",
	Iterator:           "Iterator",
	EnvironmentRecord:  "EnvironmentRecord",
	Realm:              "Realm",
	Script:             "Script",
	Module:             "Module",
	ExecutionContext:   "ExecutionContext",
	ReferenceRecord:    "ReferenceRecord",
	PropertyDescriptor: "PropertyDescriptor",
	PropertyKeyStorage: "PropertyKeyStorage",
	Shape:              "Shape",
}

// String returns the kind's name, or a placeholder for an out-of-range
// value (which indicates a programmer error, not engine state).
func (k Kind) String() string {
	if k >= Count {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return names[k]
}

// Valid reports whether k is a real member of the enumeration.
func (k Kind) Valid() bool {
	return k < Count
}

// Weak reports whether a kind's outgoing references are weak: the trace
// dispatcher does not mark through them; after marking, the collector
// drops entries whose referent is dead and rewrites the surviving
// entries in place.
func (k Kind) Weak() bool {
	return k == WeakMap || k == WeakSet
}
