package cmd

import (
	"fmt"
	"strconv"

	"dburn/internal/cli"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <card> <amount>",
	Short: "Set a card's current balance",
	Args:  cobra.ExactArgs(2),
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	dir := dataDir(cfg)

	name := args[0]
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number like 1234.56, got %q", args[1])
	}
	if amount < 0 {
		return fmt.Errorf("balance cannot be negative, got %.2f", amount)
	}

	meta, err := store.LoadMeta(dir)
	if err != nil {
		return err
	}
	known := false
	for _, m := range meta {
		if m.Name == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("no card named %q — run `dburn accounts` to see saved cards", name)
	}

	balances, err := store.LoadBalances(dir)
	if err != nil {
		return err
	}
	balances[name] = amount
	if err := store.SaveBalances(dir, balances); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  %s balance set to %s\n", name, cli.FormatMoney(amount))
	}
	return nil
}
