package cmd

import (
	"fmt"

	"dburn/internal/cli"
	"dburn/internal/engine"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagBudget float64
	flagDetail int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate payoff under a monthly budget",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64VarP(&flagBudget, "budget", "b", 0, "Monthly budget (default: first configured budget)")
	simulateCmd.Flags().IntVar(&flagDetail, "detail", 0, "Show the first N months of the schedule")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return err
	}

	strat, err := resolveStrategy(cfg)
	if err != nil {
		return err
	}

	budget := flagBudget
	if budget == 0 && len(cfg.General.DefaultBudgets) > 0 {
		budget = cfg.General.DefaultBudgets[0]
	}

	res, err := engine.SimulateBudget(accounts, budget, strat, simOptions(cfg))
	if err != nil {
		return err
	}

	principal := engine.TotalBalance(accounts)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF  %s/mo  %s", cli.FormatMoney(budget), strat)))
	fmt.Println()

	recordRun(cfg, store.Run{
		Kind:          store.RunKindBudget,
		Strategy:      strat.String(),
		MonthlyBudget: budget,
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

// totalPaid is principal plus interest for a finished run, zero otherwise.
func totalPaid(res engine.Result, principal float64) float64 {
	if !res.PaidOff {
		return 0
	}
	return principal + res.TotalInterest
}

func renderResult(res engine.Result, principal float64) {
	if !res.PaidOff {
		fmt.Printf("  %s\n\n", cli.Warn(fmt.Sprintf("Not paid off: %s", res.Reason)))
		return
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Months to payoff", cli.FormatMonths(res.Months)},
			{"Principal", cli.FormatMoney(principal)},
			{"Total interest", cli.FormatMoney(res.TotalInterest)},
			{"Total paid", cli.FormatMoney(principal + res.TotalInterest)},
		},
	}))

	if len(res.History) > 1 {
		balances := make([]float64, 0, len(res.History))
		for _, m := range res.History {
			balances = append(balances, m.TotalBalance)
		}
		fmt.Printf("\n  Burndown %s\n", cli.RenderSparkline(balances))
	}
	fmt.Println()
}

func renderSchedule(history []engine.MonthSnapshot, limit int) {
	if limit > len(history) {
		limit = len(history)
	}

	rows := make([][]string, 0, limit)
	for _, m := range history[:limit] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			cli.FormatMoney(m.Interest),
			cli.FormatMoney(m.TotalInterest),
			cli.FormatMoney(m.TotalBalance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("First %d months", limit),
		Headers: []string{"Month", "Interest", "Cumulative", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
}
