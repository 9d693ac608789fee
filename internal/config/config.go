// Package config loads and saves dburn's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all dburn configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Simulation SimulationConfig `toml:"simulation"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DefaultStrategy is the payoff strategy used when none is given on the
	// command line: avalanche, snowball, or proportional.
	DefaultStrategy string `toml:"default_strategy"`
	// DefaultBudgets are the monthly budgets evaluated when none are passed.
	DefaultBudgets []float64 `toml:"default_budgets"`
	// DataDir overrides where card metadata, balances, and run history live.
	DataDir string `toml:"data_dir,omitempty"`
}

// SimulationConfig bounds the payoff simulation.
type SimulationConfig struct {
	MaxMonths int     `toml:"max_months"`
	Epsilon   float64 `toml:"epsilon"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultStrategy: "avalanche",
			DefaultBudgets:  []float64{800, 1000},
		},
		Simulation: SimulationConfig{
			MaxMonths: 2000,
			Epsilon:   1e-6,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dburn")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the directory holding card metadata, balances, and run
// history, honoring the config override when present.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dburn")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
