// Package cmd implements the dburn CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"dburn/internal/config"
	"dburn/internal/engine"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir   string
	flagStrategy  string
	flagMaxMonths int
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "dburn",
	Short: "Debt payoff burndown CLI",
	Long:  "Track credit card balances and simulate payoff plans: how many months, how much interest.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagStrategy, "strategy", "s", "", "Payoff strategy: avalanche, snowball, or proportional")
	rootCmd.PersistentFlags().IntVar(&flagMaxMonths, "max-months", 0, "Month cap for simulations")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
}

// loadConfig never fails the command: a broken config file falls back to
// defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %s\n", err)
	}
	return cfg
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

// loadAccounts is the shared account loading path used by all commands:
// saved card metadata joined with last-known balances.
func loadAccounts(cfg config.Config) ([]engine.Account, error) {
	dir := dataDir(cfg)

	meta, err := store.LoadMeta(dir)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return nil, errors.New("no cards saved yet — run `dburn setup` first")
	}

	balances, err := store.LoadBalances(dir)
	if err != nil {
		return nil, err
	}

	return store.BuildAccounts(meta, balances), nil
}

func resolveStrategy(cfg config.Config) (engine.Strategy, error) {
	name := flagStrategy
	if name == "" {
		name = cfg.General.DefaultStrategy
	}
	return engine.ParseStrategy(name)
}

func simOptions(cfg config.Config) engine.Options {
	opts := engine.Options{
		MaxMonths: cfg.Simulation.MaxMonths,
		Epsilon:   cfg.Simulation.Epsilon,
	}
	if flagMaxMonths > 0 {
		opts.MaxMonths = flagMaxMonths
	}
	return opts
}

// recordRun appends a run to the history log. Logging is best-effort: a
// broken history database never fails the simulation that produced the run.
func recordRun(cfg config.Config, run store.Run, accounts []engine.Account) {
	h, err := store.OpenHistory(store.HistoryPath(dataDir(cfg)))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Run not logged: %s\n", err)
		}
		return
	}
	defer func() { _ = h.Close() }()

	if _, err := h.SaveRun(run, accounts); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Run not logged: %s\n", err)
	}
}
