package config

import (
	"os"
	"path/filepath"
	"testing"

	"emberheap/pkg/kind"
)

func TestDefaultsCapacityFallback(t *testing.T) {
	cfg := Defaults()
	if got := cfg.CapacityFor(kind.Object); got != cfg.DefaultInitialCapacity {
		t.Errorf("CapacityFor(Object) = %d, want default %d", got, cfg.DefaultInitialCapacity)
	}
}

func TestCapacityForHonorsPerKindOverride(t *testing.T) {
	cfg := Defaults()
	cfg.InitialCapacity = map[string]int{"String": 4096}
	if got := cfg.CapacityFor(kind.String); got != 4096 {
		t.Errorf("CapacityFor(String) = %d, want 4096", got)
	}
	if got := cfg.CapacityFor(kind.Object); got != cfg.DefaultInitialCapacity {
		t.Errorf("CapacityFor(Object) = %d, want default %d", got, cfg.DefaultInitialCapacity)
	}
}

func TestLoadParsesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "realm.yaml")
	contents := "default_initial_capacity: 128\n" +
		"concurrent_marking: true\n" +
		"collect_threshold: 500\n" +
		"initial_capacity:\n" +
		"  Object: 256\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultInitialCapacity != 128 {
		t.Errorf("DefaultInitialCapacity = %d, want 128", cfg.DefaultInitialCapacity)
	}
	if !cfg.ConcurrentMarking {
		t.Error("ConcurrentMarking = false, want true")
	}
	if cfg.CollectThreshold != 500 {
		t.Errorf("CollectThreshold = %d, want 500", cfg.CollectThreshold)
	}
	if got := cfg.CapacityFor(kind.Object); got != 256 {
		t.Errorf("CapacityFor(Object) = %d, want 256", got)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/realm.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
