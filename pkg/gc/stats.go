package gc

import (
	"io"
	"time"

	"github.com/google/pprof/profile"

	"emberheap/pkg/kind"
)

// Stats summarizes one collection cycle: how long it took and how
// many records of each kind survived.
type Stats struct {
	Duration   time.Duration
	LiveCounts [kind.Count]uint32
}

// TotalLive sums LiveCounts across every kind.
func (s Stats) TotalLive() uint32 {
	var total uint32
	for _, n := range s.LiveCounts {
		total += n
	}
	return total
}

// WriteHeapProfile encodes the most recent cycle's per-kind live
// counts as a pprof profile, one sample per kind, so the heap's
// composition can be inspected with the standard `go tool pprof`
// viewers rather than a bespoke dump format.
func (c *Collector) WriteHeapProfile(w io.Writer) error {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "objects", Unit: "count"}},
		TimeNanos:  time.Now().UnixNano(),
	}

	for k := kind.Kind(0); k < kind.Count; k++ {
		id := uint64(k) + 1
		fn := &profile.Function{ID: id, Name: k.String()}
		loc := &profile.Location{ID: id, Line: []profile.Line{{Function: fn}}}
		p.Function = append(p.Function, fn)
		p.Location = append(p.Location, loc)
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(c.last.LiveCounts[k])},
		})
	}

	return p.Write(w)
}
