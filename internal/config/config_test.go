package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.DefaultStrategy != "avalanche" {
		t.Errorf("DefaultStrategy = %q, want avalanche", cfg.General.DefaultStrategy)
	}
	if cfg.Simulation.MaxMonths != 2000 {
		t.Errorf("MaxMonths = %d, want 2000", cfg.Simulation.MaxMonths)
	}
	if cfg.Simulation.Epsilon != 1e-6 {
		t.Errorf("Epsilon = %v, want 1e-6", cfg.Simulation.Epsilon)
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultStrategy = "snowball"
	cfg.General.DefaultBudgets = []float64{500, 750, 1250}
	cfg.Simulation.MaxMonths = 360

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultStrategy != "snowball" {
		t.Errorf("DefaultStrategy = %q, want snowball", loaded.General.DefaultStrategy)
	}
	if len(loaded.General.DefaultBudgets) != 3 || loaded.General.DefaultBudgets[2] != 1250 {
		t.Errorf("DefaultBudgets = %v, want [500 750 1250]", loaded.General.DefaultBudgets)
	}
	if loaded.Simulation.MaxMonths != 360 {
		t.Errorf("MaxMonths = %d, want 360", loaded.Simulation.MaxMonths)
	}
}

func TestDataDir_ConfigOverrideWins(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "dburn") {
		t.Errorf("DataDir = %q, want XDG path", got)
	}

	cfg.General.DataDir = "/somewhere/else"
	if got := DataDir(cfg); got != "/somewhere/else" {
		t.Errorf("DataDir = %q, want override", got)
	}
}
