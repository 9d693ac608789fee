package cmd

import (
	"fmt"

	"dburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default strategy: %s\n", cfg.General.DefaultStrategy)
	fmt.Printf("    Default budgets:  %s\n", formatBudgets(cfg.General.DefaultBudgets))
	fmt.Printf("    Data directory:   %s\n", dataDir(cfg))
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Month cap: %d\n", cfg.Simulation.MaxMonths)
	fmt.Printf("    Epsilon:   %g\n", cfg.Simulation.Epsilon)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `dburn setup` to reconfigure.")
	return nil
}
