package records

import "emberheap/pkg/value"

// PropertyDescriptorData is the record for kind.PropertyDescriptor.
type PropertyDescriptorData struct {
	Value        value.Value
	Get          value.Value
	Set          value.Value
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// Trace visits Value, Get, and Set.
func (d *PropertyDescriptorData) Trace(visit func(*value.Value)) {
	visit(&d.Value)
	visit(&d.Get)
	visit(&d.Set)
}

// PropertyKeyStorageData is the record for kind.PropertyKeyStorage: a
// heap entry holding one property key. The agent's string intern table
// (Agent.InternString) does not use it; that table holds kind.String
// values.
type PropertyKeyStorageData struct {
	Key value.Value
}

// Trace visits the underlying key (a heap String or Symbol, or an
// inline immediate).
func (k *PropertyKeyStorageData) Trace(visit func(*value.Value)) {
	visit(&k.Key)
}

// ShapeTransition names one outgoing hidden-class transition edge: a
// property name maps to the child Shape entered by adding it.
type ShapeTransition struct {
	Name  value.Value
	Child value.Value
}

// ShapeData is the record for kind.Shape: the engine's hidden-class
// representation, shared structurally across objects with the same
// property layout.
type ShapeData struct {
	Parent      value.Value
	Keys        []value.Value
	Transitions []ShapeTransition
}

// Trace visits Parent, every key in the shape's layout, and every
// transition's name and child shape.
func (s *ShapeData) Trace(visit func(*value.Value)) {
	visit(&s.Parent)
	for i := range s.Keys {
		visit(&s.Keys[i])
	}
	for i := range s.Transitions {
		visit(&s.Transitions[i].Name)
		visit(&s.Transitions[i].Child)
	}
}
