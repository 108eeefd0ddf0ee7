package records

import "emberheap/pkg/value"

// StringData is the record for kind.String: a heap string too large to
// inline into a Value (spec §3 immediates cap inline strings at 7
// bytes).
type StringData struct {
	Bytes string
}

// Trace is a no-op: strings hold no outgoing references.
func (*StringData) Trace(func(*value.Value)) {}

// SymbolData is the record for kind.Symbol.
type SymbolData struct {
	Description value.Value
}

// Trace visits the symbol's description, which may be undefined or a
// heap string.
func (s *SymbolData) Trace(visit func(*value.Value)) {
	visit(&s.Description)
}
