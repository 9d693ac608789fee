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

var compareCmd = &cobra.Command{
	Use:   "compare [budget...]",
	Short: "Compare payoff across monthly budgets",
	Long:  "Run the payoff simulation for each candidate budget and compare months, interest, and total paid.",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	budgets := cfg.General.DefaultBudgets
	if len(args) > 0 {
		budgets = nil
		for _, arg := range args {
			v, err := strconv.ParseFloat(strings.TrimPrefix(arg, "$"), 64)
			if err != nil {
				return fmt.Errorf("budget must be a number like 900 or 1250.50, got %q", arg)
			}
			budgets = append(budgets, v)
		}
	}
	if len(budgets) == 0 {
		return fmt.Errorf("no budgets to compare — pass amounts or run `dburn setup`")
	}

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return err
	}

	strat, err := resolveStrategy(cfg)
	if err != nil {
		return err
	}

	outcomes, err := engine.CompareBudgets(accounts, budgets, strat, simOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET COMPARISON  %s", strat)))
	fmt.Println()

	var maxInterest float64
	for _, out := range outcomes {
		if out.Result.TotalInterest > maxInterest {
			maxInterest = out.Result.TotalInterest
		}
	}

	rows := make([][]string, 0, len(outcomes))
	for _, out := range outcomes {
		recordRun(cfg, store.Run{
			Kind:          store.RunKindBudget,
			Strategy:      strat.String(),
			MonthlyBudget: out.Budget,
			PaidOff:       out.Result.PaidOff,
			Months:        out.Result.Months,
			TotalInterest: out.Result.TotalInterest,
			TotalPaid:     out.TotalPaid,
			Reason:        out.Result.Reason,
		}, accounts)

		if !out.Result.PaidOff {
			rows = append(rows, []string{
				cli.FormatMoney(out.Budget), "never", "-", "-", "",
			})
			continue
		}
		rows = append(rows, []string{
			cli.FormatMoney(out.Budget),
			cli.FormatMonths(out.Result.Months),
			cli.FormatMoney(out.Result.TotalInterest),
			cli.FormatMoney(out.TotalPaid),
			cli.RenderHorizontalBar(out.Result.TotalInterest, maxInterest, 16),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Budget/mo", "Months", "Interest", "Total paid", "Interest bar"},
		Rows:    rows,
	}))

	for _, out := range outcomes {
		if !out.Result.PaidOff {
			fmt.Printf("  %s\n", cli.Warn(fmt.Sprintf("%s/mo: %s", cli.FormatMoney(out.Budget), out.Result.Reason)))
		}
	}
	fmt.Println()

	return nil
}
