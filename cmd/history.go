package cmd

import (
	"fmt"

	"dburn/internal/cli"
	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent simulation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 15, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	h, err := store.OpenHistory(store.HistoryPath(dataDir(cfg)))
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	runs, err := h.ListRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("\n  No runs recorded yet. Run `dburn simulate` first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUN HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		plan := r.Strategy
		budget := cli.FormatMoney(r.MonthlyBudget)
		if r.Kind == store.RunKindManual {
			plan = "manual"
			budget = "-"
		}

		months := cli.FormatMonths(r.Months)
		interest := cli.FormatMoney(r.TotalInterest)
		if !r.PaidOff {
			months = "never"
			interest = "-"
		}

		rows = append(rows, []string{
			r.RunAt.Local().Format("Jan 02 15:04"),
			plan,
			budget,
			cli.FormatMoney(r.StartingBalance),
			months,
			interest,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Plan", "Budget/mo", "Starting", "Months", "Interest"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
