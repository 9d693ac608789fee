package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"dburn/internal/store"

	"github.com/spf13/cobra"
)

var flagBalancesOnly bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved cards and balances",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagBalancesOnly, "balances-only", false, "Keep cards, delete only saved balances")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	dir := dataDir(cfg)

	what := "saved cards and balances"
	if flagBalancesOnly {
		what = "saved balances"
	}
	fmt.Printf("  Delete %s in %s? [y/N] ", what, dir)

	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Println("  Nothing deleted.")
		return nil
	}

	if err := store.ResetBalances(dir); err != nil {
		return err
	}
	if !flagBalancesOnly {
		if err := store.ResetMeta(dir); err != nil {
			return err
		}
	}

	fmt.Printf("  Deleted %s.\n", what)
	return nil
}
