package engine

// BudgetOutcome is one row of a multi-budget comparison.
type BudgetOutcome struct {
	Budget    float64
	Result    Result
	Principal float64
	// TotalPaid is principal plus interest; zero when not paid off.
	TotalPaid float64
}

// CompareBudgets simulates each candidate budget independently against the
// same starting balances and reports the outcomes in order. The input list
// is never mutated.
func CompareBudgets(accounts []Account, budgets []float64, strat Strategy, opts Options) ([]BudgetOutcome, error) {
	principal := TotalBalance(accounts)

	outcomes := make([]BudgetOutcome, 0, len(budgets))
	for _, budget := range budgets {
		res, err := SimulateBudget(accounts, budget, strat, opts)
		if err != nil {
			return nil, err
		}
		out := BudgetOutcome{
			Budget:    budget,
			Result:    res,
			Principal: principal,
		}
		if res.PaidOff {
			out.TotalPaid = principal + res.TotalInterest
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
