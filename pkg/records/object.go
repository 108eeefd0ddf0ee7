// Package records defines the per-kind heap-data struct for every
// member of kind.Kind, each implementing the trace contract consumed
// by package trace: Trace(visit func(*value.Value)) invokes visit once
// per outgoing reference the record holds, handing the visitor a
// pointer so it can both mark (spec §4.G Phase 2) and rewrite in place
// (spec §4.G Phase 4).
//
// Records for a kind are uniform in size and layout, so the collector
// can shift them by plain slice-element copy (spec §4.A).
package records

import "emberheap/pkg/value"

// PropertySlot is one entry in an object's own-property storage: a key
// and a reference to its descriptor (kind.PropertyDescriptor).
type PropertySlot struct {
	Key        value.Value
	Descriptor value.Value
}

// ObjectData is the record for kind.Object.
type ObjectData struct {
	Shape      value.Value
	Prototype  value.Value
	Properties []PropertySlot
	Extensible bool
}

// Trace visits Shape, Prototype, and every property's key and
// descriptor reference.
func (o *ObjectData) Trace(visit func(*value.Value)) {
	visit(&o.Shape)
	visit(&o.Prototype)
	for i := range o.Properties {
		visit(&o.Properties[i].Key)
		visit(&o.Properties[i].Descriptor)
	}
}

// ArrayData is the record for kind.Array: like ObjectData but with a
// dense element backing store distinct from named properties, per
// spec §4.A's "struct of arrays" allowance for hot/cold field splits.
type ArrayData struct {
	Shape      value.Value
	Prototype  value.Value
	Properties []PropertySlot
	Elements   []value.Value
	Length     uint32
}

// Trace visits Shape, Prototype, named properties, and every element.
func (a *ArrayData) Trace(visit func(*value.Value)) {
	visit(&a.Shape)
	visit(&a.Prototype)
	for i := range a.Properties {
		visit(&a.Properties[i].Key)
		visit(&a.Properties[i].Descriptor)
	}
	for i := range a.Elements {
		visit(&a.Elements[i])
	}
}
