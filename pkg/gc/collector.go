// Package gc implements the safepoint mark-compact collector (spec
// §4.G): root enumeration, mark to fixpoint, a weak-collection sweep
// (spec §4.I), per-kind compaction, and the global reference-rewrite
// barrier. It operates entirely through the agent.Agent's exported
// Collection dispatch table and root-tracing hooks, so it never needs
// a type switch over the concrete record behind any given kind.
package gc

import (
	"time"

	"emberheap/pkg/agent"
	"emberheap/pkg/kind"
)

// Collector runs collection cycles for one Agent and retains the most
// recent cycle's Stats.
type Collector struct {
	agent *agent.Agent
	last  Stats
}

// NewCollector builds a Collector bound to a.
func NewCollector(a *agent.Agent) *Collector {
	return &Collector{agent: a}
}

// ShouldCollect reports whether the agent has allocated enough since
// the last cycle to warrant another one, per its RealmConfig's
// CollectThreshold. A zero threshold disables automatic triggering;
// the embedder must call Collect explicitly.
func (c *Collector) ShouldCollect() bool {
	threshold := c.agent.Config().CollectThreshold
	return threshold > 0 && c.agent.AllocsSinceCollect() >= uint64(threshold)
}

// Collect runs one full mark-compact cycle and returns its Stats. It
// is a global safepoint: the caller must not be holding a Bound value
// across the call, since every index in the heap may move.
func (c *Collector) Collect() Stats {
	start := time.Now()
	a := c.agent

	m := newMarker(a)
	m.run()
	m.weakSweep()

	newIndex := compact(a, m)
	rewriteAll(a, newIndex)

	a.BumpEpoch()
	a.ResetAllocCounter()

	stats := Stats{Duration: time.Since(start)}
	cols := a.Collections()
	for k := kind.Kind(0); k < kind.Count; k++ {
		stats.LiveCounts[k] = cols[k].Len()
	}
	c.last = stats
	return stats
}

// LastStats returns the Stats from the most recent Collect call, or
// the zero value if none has run yet.
func (c *Collector) LastStats() Stats {
	return c.last
}
