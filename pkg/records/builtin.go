package records

import "emberheap/pkg/value"

// DateData is the record for kind.Date: milliseconds since the epoch,
// or NaN for an invalid date.
type DateData struct {
	V float64
}

// Trace is a no-op.
func (*DateData) Trace(func(*value.Value)) {}

// RegExpData is the record for kind.RegExp.
type RegExpData struct {
	Source value.Value // heap String or inline small string
	Flags  value.Value
}

// Trace visits the pattern source and flags strings.
func (r *RegExpData) Trace(visit func(*value.Value)) {
	visit(&r.Source)
	visit(&r.Flags)
}

// ErrorKind names the standard error subtype, mirroring the
// ECMAScript native error constructors.
type ErrorKind uint8

const (
	GenericError ErrorKind = iota
	TypeError
	RangeError
	ReferenceError
	SyntaxError
	EvalError
	URIError
)

// ErrorData is the record for kind.Error.
type ErrorData struct {
	ErrKind ErrorKind
	Message value.Value
	Cause   value.Value
	Stack   value.Value
}

// Trace visits Message, Cause, and Stack.
func (e *ErrorData) Trace(visit func(*value.Value)) {
	visit(&e.Message)
	visit(&e.Cause)
	visit(&e.Stack)
}

// ProxyData is the record for kind.Proxy.
type ProxyData struct {
	Target  value.Value
	Handler value.Value
}

// Trace visits Target and Handler.
func (p *ProxyData) Trace(visit func(*value.Value)) {
	visit(&p.Target)
	visit(&p.Handler)
}

// PromiseState names a promise's settlement state.
type PromiseState uint8

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

// PromiseData is the record for kind.Promise.
type PromiseData struct {
	State             PromiseState
	Result            value.Value
	FulfillReactions  []value.Value
	RejectReactions   []value.Value
}

// Trace visits Result and every pending reaction.
func (p *PromiseData) Trace(visit func(*value.Value)) {
	visit(&p.Result)
	for i := range p.FulfillReactions {
		visit(&p.FulfillReactions[i])
	}
	for i := range p.RejectReactions {
		visit(&p.RejectReactions[i])
	}
}

// IteratorKind names the structural shape of an iterator record.
type IteratorKind uint8

const (
	ArrayIterator IteratorKind = iota
	MapIterator
	SetIterator
	StringIterator
	GeneratorIterator
)

// IteratorData is the record for kind.Iterator. Its continuation state
// is an ordinary heap entry, consistent with spec §9's treatment of
// generators and async functions as suspended execution contexts: the
// Target here may itself be a kind.ExecutionContext for a generator.
type IteratorData struct {
	Target  value.Value
	IterKind IteratorKind
	Index   uint32
	Done    bool
}

// Trace visits Target.
func (it *IteratorData) Trace(visit func(*value.Value)) {
	visit(&it.Target)
}
