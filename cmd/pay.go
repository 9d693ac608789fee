package cmd

import (
	"fmt"
	"strconv"

	"dburn/internal/cli"
	"dburn/internal/engine"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <card> <amount>",
	Short: "Record a one-time payment against a card",
	Long:  "Reduce a card's saved balance by an out-of-cycle payment, clamped at zero.",
	Args:  cobra.ExactArgs(2),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	name := args[0]
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number like 125.50, got %q", args[1])
	}

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return err
	}

	var before float64
	for _, a := range accounts {
		if a.Name == name {
			before = a.Balance
			break
		}
	}

	if err := engine.ApplyOneTimePayment(accounts, name, amount); err != nil {
		return err
	}

	if err := store.SaveAccountBalances(dataDir(cfg), accounts); err != nil {
		return err
	}

	var after float64
	for _, a := range accounts {
		if a.Name == name {
			after = a.Balance
			break
		}
	}

	if !flagQuiet {
		fmt.Printf("  %s: %s -> %s\n", name, cli.FormatMoney(before), cli.FormatMoney(after))
		if after == 0 && amount > before {
			fmt.Printf("  Overpayment of %s absorbed; %s is paid off.\n",
				cli.FormatMoney(amount-before), name)
		}
	}
	return nil
}
