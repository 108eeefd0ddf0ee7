package records

import "emberheap/pkg/value"

// MapEntry is one key/value pair of a Map or WeakMap.
type MapEntry struct {
	Key   value.Value
	Value value.Value
}

// MapData is the record for kind.Map.
type MapData struct {
	Entries []MapEntry
}

// Trace visits every entry's key and value: a Map holds its entries
// strongly.
func (m *MapData) Trace(visit func(*value.Value)) {
	for i := range m.Entries {
		visit(&m.Entries[i].Key)
		visit(&m.Entries[i].Value)
	}
}

// SetData is the record for kind.Set.
type SetData struct {
	Entries []value.Value
}

// Trace visits every element.
func (s *SetData) Trace(visit func(*value.Value)) {
	for i := range s.Entries {
		visit(&s.Entries[i])
	}
}

// WeakMapData is the record for kind.WeakMap. Its Trace is
// intentionally a no-op (spec §4.I, new): a WeakMap must not keep its
// keys alive. The collector visits WeakMapData through the dedicated
// weak-collection sweep instead of the ordinary trace dispatcher; see
// package gc.
type WeakMapData struct {
	Entries []MapEntry
}

// Trace is a no-op; see the WeakMapData doc comment.
func (*WeakMapData) Trace(func(*value.Value)) {}

// Len reports the number of entries, for the weak sweep.
func (m *WeakMapData) Len() int { return len(m.Entries) }

// KeyAt returns the key of entry i.
func (m *WeakMapData) KeyAt(i int) value.Value { return m.Entries[i].Key }

// ValueAt returns a pointer to the value of entry i, so the sweep can
// both read it (to seed further marking) and rewrite it in place.
func (m *WeakMapData) ValueAt(i int) *value.Value { return &m.Entries[i].Value }

// KeyPtr returns a pointer to the key of entry i, for in-place
// rewriting once the sweep has decided the entry survives.
func (m *WeakMapData) KeyPtr(i int) *value.Value { return &m.Entries[i].Key }

// Sweep removes every entry whose key fails keep, compacting Entries
// in place.
func (m *WeakMapData) Sweep(keep func(key value.Value) bool) {
	out := m.Entries[:0]
	for _, e := range m.Entries {
		if keep(e.Key) {
			out = append(out, e)
		}
	}
	m.Entries = out
}

// WeakSetData is the record for kind.WeakSet. Like WeakMapData, its
// Trace is a no-op; membership is swept, not marked.
type WeakSetData struct {
	Entries []value.Value
}

// Trace is a no-op; see the WeakSetData doc comment.
func (*WeakSetData) Trace(func(*value.Value)) {}

// Len reports the number of entries.
func (s *WeakSetData) Len() int { return len(s.Entries) }

// ElementAt returns element i.
func (s *WeakSetData) ElementAt(i int) value.Value { return s.Entries[i] }

// ElementPtr returns a pointer to element i, for in-place rewriting.
func (s *WeakSetData) ElementPtr(i int) *value.Value { return &s.Entries[i] }

// Sweep removes every element that fails keep.
func (s *WeakSetData) Sweep(keep func(elem value.Value) bool) {
	out := s.Entries[:0]
	for _, e := range s.Entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	s.Entries = out
}
