package cmd

import (
	"fmt"

	"dburn/internal/cli"
	"dburn/internal/engine"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List cards with balances and monthly interest",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	accounts, err := loadAccounts(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT BURNDOWN"))
	fmt.Println()

	var monthlyInterest float64
	rows := make([][]string, 0, len(accounts)+2)
	for _, a := range accounts {
		interest := a.Balance * engine.MonthlyRate(a.APR)
		monthlyInterest += interest
		rows = append(rows, []string{
			a.Name,
			cli.FormatAPR(a.APR),
			cli.FormatMoney(a.Balance),
			cli.FormatMoney(interest),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL", "",
		cli.FormatMoney(engine.TotalBalance(accounts)),
		cli.FormatMoney(monthlyInterest),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "APR", "Balance", "Interest/mo"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Println("  Run `dburn simulate` or `dburn compare` to project payoff.")
	fmt.Println()

	return nil
}
