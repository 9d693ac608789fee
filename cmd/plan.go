package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"dburn/internal/cli"
	"dburn/internal/engine"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var flagPayments []string

var planCmd = &cobra.Command{
	Use:   "plan --pay <card>=<amount> [--pay ...]",
	Short: "Simulate a fixed per-card monthly payment plan",
	Long: `Simulate payoff paying each card a fixed amount every month, with no
reallocation between cards. Repeating --pay for the same card adds up.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringArrayVar(&flagPayments, "pay", nil, "Monthly payment as card=amount (repeatable)")
	planCmd.Flags().IntVar(&flagDetail, "detail", 0, "Show the first N months of the schedule")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	payments, err := parsePayments(flagPayments)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return fmt.Errorf("no payments given — use --pay Card=Amount")
	}

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return err
	}

	res, err := engine.SimulateManual(accounts, payments, simOptions(cfg))
	if err != nil {
		return err
	}

	principal := engine.TotalBalance(accounts)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MANUAL PAYMENT PLAN"))
	fmt.Println()

	recordRun(cfg, store.Run{
		Kind:          store.RunKindManual,
		PaidOff:       res.PaidOff,
		Months:        res.Months,
		TotalInterest: res.TotalInterest,
		TotalPaid:     totalPaid(res, principal),
		Reason:        res.Reason,
	}, accounts)

	renderResult(res, principal)

	if flagDetail > 0 {
		renderSchedule(res.History, flagDetail)
	}

	return nil
}

// parsePayments turns card=amount pairs into a payment map, summing repeats
// of the same card.
func parsePayments(pairs []string) (map[string]float64, error) {
	payments := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, amtStr, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid payment %q, expected card=amount", pair)
		}
		amt, err := strconv.ParseFloat(strings.TrimSpace(amtStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in %q: %w", pair, err)
		}
		if amt < 0 {
			return nil, fmt.Errorf("payment for %s must be >= 0, got %s", name, cli.FormatMoney(amt))
		}
		payments[name] += amt
	}
	return payments, nil
}
