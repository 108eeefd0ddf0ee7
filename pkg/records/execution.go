package records

import "emberheap/pkg/value"

// EnvironmentRecordData is the record for kind.EnvironmentRecord: a
// lexical scope's bindings plus a link to its outer scope.
type EnvironmentRecordData struct {
	Outer    value.Value
	Bindings map[string]value.Value
}

// Trace visits Outer and every bound value. Binding names are plain Go
// strings, not heap-backed, so only the values need visiting.
func (e *EnvironmentRecordData) Trace(visit func(*value.Value)) {
	visit(&e.Outer)
	for k, v := range e.Bindings {
		visit(&v)
		e.Bindings[k] = v
	}
}

// RealmData is the record for kind.Realm: one global object, its
// environment, and the realm's intrinsic objects.
type RealmData struct {
	GlobalObject value.Value
	GlobalEnv    value.Value
	Intrinsics   map[string]value.Value
}

// Trace visits GlobalObject, GlobalEnv, and every intrinsic.
func (r *RealmData) Trace(visit func(*value.Value)) {
	visit(&r.GlobalObject)
	visit(&r.GlobalEnv)
	for k, v := range r.Intrinsics {
		visit(&v)
		r.Intrinsics[k] = v
	}
}

// ScriptData is the record for kind.Script (and, since the engine does
// not distinguish their heap shape, kind.Module's backing script).
// Bytecode is produced by the (out-of-scope) compiler; the heap only
// needs to know it exists and which realm owns it.
type ScriptData struct {
	Realm    value.Value
	Source   string
	Bytecode []byte
}

// Trace visits Realm; Source and Bytecode hold no heap references.
func (s *ScriptData) Trace(visit func(*value.Value)) {
	visit(&s.Realm)
}

// ModuleData is the record for kind.Module.
type ModuleData struct {
	Script      value.Value
	Environment value.Value
	Exports     map[string]value.Value
}

// Trace visits Script, Environment, and every export.
func (m *ModuleData) Trace(visit func(*value.Value)) {
	visit(&m.Script)
	visit(&m.Environment)
	for k, v := range m.Exports {
		visit(&v)
		m.Exports[k] = v
	}
}

// ExecutionContextData is the record for kind.ExecutionContext: one
// frame of the interpreter's context stack, including its operand
// stack and local slots (spec §4.G Phase 1 names these as roots when
// the context is on the live stack; a suspended generator's context
// is instead reached by whatever holds the kind.Iterator that targets
// it).
type ExecutionContextData struct {
	Function     value.Value
	Realm        value.Value
	LexicalEnv   value.Value
	VariableEnv  value.Value
	OperandStack []value.Value
	Locals       []value.Value
}

// Trace visits every reference an execution context holds, including
// its operand stack and local slots.
func (c *ExecutionContextData) Trace(visit func(*value.Value)) {
	visit(&c.Function)
	visit(&c.Realm)
	visit(&c.LexicalEnv)
	visit(&c.VariableEnv)
	for i := range c.OperandStack {
		visit(&c.OperandStack[i])
	}
	for i := range c.Locals {
		visit(&c.Locals[i])
	}
}

// ReferenceRecordData is the record for kind.ReferenceRecord: the
// result of evaluating an ECMAScript Reference, not yet resolved to a
// value.
type ReferenceRecordData struct {
	Base      value.Value
	Name      value.Value
	ThisValue value.Value
	Strict    bool
}

// Trace visits Base, Name, and ThisValue.
func (r *ReferenceRecordData) Trace(visit func(*value.Value)) {
	visit(&r.Base)
	visit(&r.Name)
	visit(&r.ThisValue)
}
