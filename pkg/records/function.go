package records

import "emberheap/pkg/value"

// FunctionData is the record for kind.OrdinaryFunction: a closure over
// a captured environment, compiled by the (out-of-scope) bytecode
// compiler into a kind.Script entry.
type FunctionData struct {
	Shape       value.Value
	Prototype   value.Value
	Environment value.Value
	Realm       value.Value
	Script      value.Value
	Name        value.Value
}

// Trace visits every reference FunctionData holds.
func (f *FunctionData) Trace(visit func(*value.Value)) {
	visit(&f.Shape)
	visit(&f.Prototype)
	visit(&f.Environment)
	visit(&f.Realm)
	visit(&f.Script)
	visit(&f.Name)
}

// BuiltinBehavior is a host-implemented function body. It is not a
// Value and carries no outgoing heap edges of its own; whatever state
// it closes over in Go is the host's concern, not the heap's.
type BuiltinBehavior func(agentArgs []value.Value) (value.Value, error)

// BuiltinFunctionData is the record for kind.BuiltinFunction.
type BuiltinFunctionData struct {
	Shape     value.Value
	Prototype value.Value
	Realm     value.Value
	Name      value.Value
	Behavior  BuiltinBehavior
}

// Trace visits every reference BuiltinFunctionData holds. Behavior is
// opaque host code, not traced.
func (b *BuiltinFunctionData) Trace(visit func(*value.Value)) {
	visit(&b.Shape)
	visit(&b.Prototype)
	visit(&b.Realm)
	visit(&b.Name)
}

// BoundFunctionData is the record for kind.BoundFunction.
type BoundFunctionData struct {
	Shape      value.Value
	Prototype  value.Value
	Target     value.Value
	BoundThis  value.Value
	BoundArgs  []value.Value
}

// Trace visits every reference BoundFunctionData holds.
func (b *BoundFunctionData) Trace(visit func(*value.Value)) {
	visit(&b.Shape)
	visit(&b.Prototype)
	visit(&b.Target)
	visit(&b.BoundThis)
	for i := range b.BoundArgs {
		visit(&b.BoundArgs[i])
	}
}
