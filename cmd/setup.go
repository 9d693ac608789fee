package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dburn/internal/cli"
	"dburn/internal/config"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg := loadConfig()
	dir := dataDir(cfg)

	existing, _ := store.LoadMeta(dir)

	fmt.Println()
	fmt.Println("  Welcome to dburn!")
	fmt.Println()

	// 1. Cards
	meta := existing
	if len(existing) > 0 {
		fmt.Printf("  Found %d saved cards:\n", len(existing))
		for _, m := range existing {
			fmt.Printf("    %s (APR %s)\n", m.Name, cli.FormatAPR(m.APR))
		}
		fmt.Print("  Re-enter them from scratch? [y/N] ")
		answer, _ := reader.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			meta = nil
		}
		fmt.Println()
	}

	if len(meta) == 0 {
		fmt.Println("  1. Your cards")
		fmt.Println("     Enter each card's nickname and APR. Blank nickname finishes.")
		meta = promptCards(reader)
		if len(meta) == 0 {
			return fmt.Errorf("at least one card is required")
		}
		if err := store.SaveMeta(dir, meta); err != nil {
			return fmt.Errorf("saving cards: %w", err)
		}
		fmt.Printf("     Saved %d cards.\n", len(meta))
		fmt.Println()
	}

	// 2. Default strategy
	fmt.Println("  2. Default payoff strategy")
	fmt.Println("     (1) Avalanche — highest APR first [default]")
	fmt.Println("     (2) Snowball — smallest balance first")
	fmt.Println("     (3) Proportional — split by balance share")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultStrategy = "snowball"
	case "3":
		cfg.General.DefaultStrategy = "proportional"
	default:
		cfg.General.DefaultStrategy = "avalanche"
	}
	fmt.Println()

	// 3. Default budgets
	fmt.Println("  3. Monthly budgets to compare")
	fmt.Printf("     Comma-separated amounts [default %s]\n", formatBudgets(cfg.General.DefaultBudgets))
	fmt.Print("     > ")
	budgetLine, _ := reader.ReadString('\n')
	if budgets := parseBudgetList(budgetLine); len(budgets) > 0 {
		cfg.General.DefaultBudgets = budgets
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Next: `dburn balance <card> <amount>` to enter balances, then `dburn simulate`.")
	fmt.Println("  Run `dburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptCards(reader *bufio.Reader) []store.CardMeta {
	var meta []store.CardMeta
	seen := map[string]bool{}

	for {
		fmt.Printf("     Card %d nickname: ", len(meta)+1)
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name == "" {
			return meta
		}
		if seen[name] {
			fmt.Printf("     %q is already used, pick another nickname.\n", name)
			continue
		}

		apr, ok := promptAPR(reader, name)
		if !ok {
			continue
		}

		seen[name] = true
		meta = append(meta, store.CardMeta{Name: name, APR: apr})
	}
}

func promptAPR(reader *bufio.Reader, name string) (float64, bool) {
	for {
		fmt.Printf("     %s APR (%%): ", name)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false
		}
		apr, err := strconv.ParseFloat(line, 64)
		if err != nil || apr < 0 {
			fmt.Println("     Enter a number like 24.49")
			continue
		}
		return apr, true
	}
}

func parseBudgetList(line string) []float64 {
	var budgets []float64
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "$")
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v <= 0 {
			continue
		}
		budgets = append(budgets, v)
	}
	return budgets
}

func formatBudgets(budgets []float64) string {
	parts := make([]string, 0, len(budgets))
	for _, b := range budgets {
		parts = append(parts, fmt.Sprintf("%.0f", b))
	}
	return strings.Join(parts, ", ")
}
