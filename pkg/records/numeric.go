package records

import (
	"math/big"

	"emberheap/pkg/value"
)

// BigIntData is the record for kind.BigInt: a bigint too large for the
// inline small-bigint immediate (spec §3).
type BigIntData struct {
	V *big.Int
}

// Trace is a no-op: bigints hold no outgoing references.
func (*BigIntData) Trace(func(*value.Value)) {}

// NumberData is the record for kind.Number: a boxed float64. Spec's
// Open Question about NaN-boxing is resolved by always boxing doubles
// here rather than inlining them into Value (§4 "Component Design").
type NumberData struct {
	V float64
}

// Trace is a no-op: boxed numbers hold no outgoing references.
func (*NumberData) Trace(func(*value.Value)) {}
