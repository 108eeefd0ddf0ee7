// Package config loads the per-realm tunables that govern an Agent's
// heap layout and collection policy (spec §4.J). A realm with no
// config file uses Defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"emberheap/pkg/kind"
)

// RealmConfig holds the knobs an embedder can set per realm: how much
// to preallocate per heap kind, whether the collector runs its
// marking phase concurrently with the mutator (spec §4.H's structural
// hook; the single-threaded collector in package gc ignores this
// until a concurrent marker is built), and when a cycle triggers.
type RealmConfig struct {
	// InitialCapacity maps a kind's name (kind.Kind.String()) to the
	// number of records its vector preallocates. Kinds absent from the
	// map fall back to DefaultInitialCapacity.
	InitialCapacity map[string]int `yaml:"initial_capacity"`

	// DefaultInitialCapacity is used for any kind not named in
	// InitialCapacity.
	DefaultInitialCapacity int `yaml:"default_initial_capacity"`

	// ConcurrentMarking enables the structural concurrent-marking hook
	// (RCU-style heapvec growth, retire queues) even though the
	// collector itself still runs its mark phase on the mutator
	// goroutine (spec §5: single mutator thread assumed).
	ConcurrentMarking bool `yaml:"concurrent_marking"`

	// CollectThreshold is the number of allocations since the last
	// cycle that triggers the next one. Zero disables automatic
	// triggering; the embedder must call gc.Collector.Collect explicitly.
	CollectThreshold int `yaml:"collect_threshold"`
}

// Defaults returns the configuration a realm gets when none is
// supplied.
func Defaults() *RealmConfig {
	return &RealmConfig{
		DefaultInitialCapacity: 64,
		ConcurrentMarking:      false,
		CollectThreshold:       100000,
	}
}

// CapacityFor returns the configured initial capacity for k, falling
// back to DefaultInitialCapacity when k has no explicit entry.
func (c *RealmConfig) CapacityFor(k kind.Kind) int {
	if c.InitialCapacity != nil {
		if n, ok := c.InitialCapacity[k.String()]; ok {
			return n
		}
	}
	if c.DefaultInitialCapacity > 0 {
		return c.DefaultInitialCapacity
	}
	return 64
}

// Load reads a RealmConfig from a YAML file at path.
func Load(path string) (*RealmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
