package tui

import (
	"fmt"
	"strconv"
	"strings"

	"dburn/internal/cli"
	"dburn/internal/engine"

	"github.com/charmbracelet/huh"
)

// planValues backs the huh form fields. Balances are parallel to the
// account list; the rest are parsed after the form completes.
type planValues struct {
	balances []string
	strategy string
	budgets  string
	payments string
}

func newPlanValues(accounts []engine.Account, defaultStrategy string, defaultBudgets []float64) planValues {
	balances := make([]string, len(accounts))
	for i, a := range accounts {
		balances[i] = strconv.FormatFloat(a.Balance, 'f', 2, 64)
	}

	budgetParts := make([]string, 0, len(defaultBudgets))
	for _, b := range defaultBudgets {
		budgetParts = append(budgetParts, strconv.FormatFloat(b, 'f', -1, 64))
	}

	return planValues{
		balances: balances,
		strategy: defaultStrategy,
		budgets:  strings.Join(budgetParts, ", "),
	}
}

// buildPlanForm assembles the two-page form: current balances (prefilled
// from the last run), then strategy, budgets, and optional one-time
// payments.
func buildPlanForm(accounts []engine.Account, vals *planValues) *huh.Form {
	balanceFields := make([]huh.Field, 0, len(accounts))
	for i, a := range accounts {
		balanceFields = append(balanceFields,
			huh.NewInput().
				Title(fmt.Sprintf("%s (APR %s)", a.Name, cli.FormatAPR(a.APR))).
				Prompt("$ ").
				Validate(validateBalance).
				Value(&vals.balances[i]),
		)
	}

	strategyOptions := make([]huh.Option[string], 0, 3)
	for _, s := range []engine.Strategy{engine.Avalanche, engine.Snowball, engine.Proportional} {
		strategyOptions = append(strategyOptions,
			huh.NewOption(fmt.Sprintf("%s — %s", s, s.Description()), s.String()))
	}

	return huh.NewForm(
		huh.NewGroup(balanceFields...).
			Title("Current balances").
			Description("Prefilled from your last run."),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payoff strategy").
				Options(strategyOptions...).
				Value(&vals.strategy),
			huh.NewInput().
				Title("Monthly budgets to evaluate").
				Description("Comma-separated, e.g. 800, 1000").
				Validate(validateBudgets).
				Value(&vals.budgets),
			huh.NewInput().
				Title("Payments already made this month (optional)").
				Description("card=amount pairs, e.g. Chase=200, Discover=50").
				Placeholder("none").
				Validate(paymentValidator(accounts)).
				Value(&vals.payments),
		).Title("Plan"),
	)
}

func validateBalance(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // keep zero
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number like 1234.56")
	}
	if v < 0 {
		return fmt.Errorf("balance cannot be negative")
	}
	return nil
}

func validateBudgets(s string) error {
	budgets, err := parseBudgets(s)
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		return fmt.Errorf("enter at least one budget")
	}
	return nil
}

// paymentValidator rejects unknown card names and negative amounts before
// the simulation ever sees them.
func paymentValidator(accounts []engine.Account) func(string) error {
	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a.Name] = true
	}

	return func(s string) error {
		payments, err := parsePayments(s)
		if err != nil {
			return err
		}
		for name := range payments {
			if !known[name] {
				return fmt.Errorf("no card named %q", name)
			}
		}
		return nil
	}
}

func parseBudgets(s string) ([]float64, error) {
	var budgets []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "$"))
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if v <= 0 {
			return nil, fmt.Errorf("budgets must be positive, got %s", part)
		}
		budgets = append(budgets, v)
	}
	return budgets, nil
}

func parsePayments(s string) (map[string]float64, error) {
	payments := map[string]float64{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, amtStr, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%q is not card=amount", part)
		}
		amt, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(amtStr), "$")), 64)
		if err != nil {
			return nil, fmt.Errorf("amount in %q is not a number", part)
		}
		if amt < 0 {
			return nil, fmt.Errorf("payment for %s cannot be negative", name)
		}
		payments[name] += amt
	}
	return payments, nil
}

func parseBalance(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
