package engine

import (
	"fmt"
	"math"
	"sort"
)

// Defaults for Options zero values.
const (
	DefaultMaxMonths = 2000
	DefaultEpsilon   = 1e-6
)

// Options bound a simulation run. The zero value means the defaults.
type Options struct {
	// MaxMonths caps the number of simulated months so a budget that cannot
	// outpace interest never loops forever.
	MaxMonths int
	// Epsilon is the absolute tolerance below which a balance counts as paid.
	Epsilon float64
}

func (o Options) withDefaults() Options {
	if o.MaxMonths <= 0 {
		o.MaxMonths = DefaultMaxMonths
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	return o
}

// MonthSnapshot records the state after one simulated month.
type MonthSnapshot struct {
	Month         int
	Interest      float64
	TotalInterest float64
	Balances      map[string]float64
	TotalBalance  float64
}

// Result is the outcome of one simulation run. Reason is set only when the
// month cap was hit; that is a reportable outcome, not an error.
type Result struct {
	PaidOff       bool
	Months        int
	TotalInterest float64
	Reason        string
	History       []MonthSnapshot
}

// SimulateBudget advances month by month, accruing interest and allocating a
// shared monthly budget according to the strategy, until every balance is
// within epsilon of zero or the month cap is exceeded. It operates on a
// private copy of accounts; the caller's list is never mutated.
func SimulateBudget(accounts []Account, monthlyBudget float64, strat Strategy, opts Options) (Result, error) {
	if monthlyBudget <= 0 {
		return Result{}, fmt.Errorf("%w: monthly budget must be > 0, got %.2f", ErrInvalidArgument, monthlyBudget)
	}
	if !strat.valid() {
		return Result{}, fmt.Errorf("%w: unknown strategy %v", ErrInvalidArgument, strat)
	}
	opts = opts.withDefaults()

	working := cloneAccounts(accounts)
	var (
		months        int
		totalInterest float64
		history       []MonthSnapshot
	)

	for TotalBalance(working) > opts.Epsilon {
		months++
		if months > opts.MaxMonths {
			return Result{
				Months:        months,
				TotalInterest: totalInterest,
				Reason:        fmt.Sprintf("hit the %d-month cap; the budget may be too low to outpace interest", opts.MaxMonths),
				History:       history,
			}, nil
		}

		monthInterest := accrue(working, opts.Epsilon)
		totalInterest += monthInterest

		if strat == Proportional {
			allocateProportional(working, monthlyBudget, opts.Epsilon)
		} else {
			allocateOrdered(working, monthlyBudget, opts.Epsilon, strat.less)
		}

		history = append(history, snapshot(months, monthInterest, totalInterest, working))
	}

	return Result{
		PaidOff:       true,
		Months:        months,
		TotalInterest: totalInterest,
		History:       history,
	}, nil
}

// SimulateManual advances month by month paying each named account exactly
// its configured amount, capped at its current balance. Unused payment never
// moves to another account. Payment map names are checked at the point of
// application each month; an unknown name fails with ErrNotFound.
func SimulateManual(accounts []Account, payments map[string]float64, opts Options) (Result, error) {
	names := make([]string, 0, len(payments))
	for name, amt := range payments {
		if amt < 0 {
			return Result{}, fmt.Errorf("%w: payment for %s must be >= 0, got %.2f", ErrInvalidArgument, name, amt)
		}
		names = append(names, name)
	}
	// Sorted application order keeps runs deterministic.
	sort.Strings(names)
	opts = opts.withDefaults()

	working := cloneAccounts(accounts)

	// First-match indexing: duplicate names resolve to the earliest account.
	byName := make(map[string]int, len(working))
	for i := range working {
		if _, ok := byName[working[i].Name]; !ok {
			byName[working[i].Name] = i
		}
	}

	var (
		months        int
		totalInterest float64
		history       []MonthSnapshot
	)

	for TotalBalance(working) > opts.Epsilon {
		months++
		if months > opts.MaxMonths {
			return Result{
				Months:        months,
				TotalInterest: totalInterest,
				Reason:        fmt.Sprintf("hit the %d-month cap; the payments may be too low to outpace interest", opts.MaxMonths),
				History:       history,
			}, nil
		}

		monthInterest := accrue(working, opts.Epsilon)
		totalInterest += monthInterest

		for _, name := range names {
			i, ok := byName[name]
			if !ok {
				return Result{}, fmt.Errorf("%w: %q", ErrNotFound, name)
			}
			amt := payments[name]
			if working[i].Balance > opts.Epsilon && amt > 0 {
				working[i].Balance -= math.Min(working[i].Balance, amt)
			}
		}

		history = append(history, snapshot(months, monthInterest, totalInterest, working))
	}

	return Result{
		PaidOff:       true,
		Months:        months,
		TotalInterest: totalInterest,
		History:       history,
	}, nil
}

// accrue adds one month of interest to every account still above epsilon and
// returns the total interest added.
func accrue(accounts []Account, eps float64) float64 {
	var monthInterest float64
	for i := range accounts {
		if accounts[i].Balance > eps {
			interest := accounts[i].Balance * MonthlyRate(accounts[i].APR)
			accounts[i].Balance += interest
			monthInterest += interest
		}
	}
	return monthInterest
}

// allocateOrdered walks the active accounts in payoff order, paying each
// min(balance, remaining). Leftover budget only survives the first pass when
// every active account got paid to zero, so one more pass over the re-derived
// active set drains it; leftover is never carried to the next month.
func allocateOrdered(accounts []Account, budget, eps float64, less func(a, b Account) bool) {
	remaining := payPass(accounts, budget, eps, less)
	if remaining > eps {
		payPass(accounts, remaining, eps, less)
	}
}

func payPass(accounts []Account, budget, eps float64, less func(a, b Account) bool) float64 {
	idx := activeIndices(accounts, eps)
	sort.SliceStable(idx, func(i, j int) bool {
		return less(accounts[idx[i]], accounts[idx[j]])
	})

	remaining := budget
	for _, i := range idx {
		if remaining <= eps {
			break
		}
		pay := math.Min(accounts[i].Balance, remaining)
		accounts[i].Balance -= pay
		remaining -= pay
	}
	return remaining
}

// allocateProportional gives each active account budget * (balance / total),
// capped at its balance. Shares never overpay in aggregate, so the whole
// budget counts as spent in one pass; a capped account's surplus is not
// reallocated.
func allocateProportional(accounts []Account, budget, eps float64) {
	idx := activeIndices(accounts, eps)

	var total float64
	for _, i := range idx {
		total += accounts[i].Balance
	}
	if total <= eps {
		return
	}

	for _, i := range idx {
		share := budget * (accounts[i].Balance / total)
		accounts[i].Balance -= math.Min(accounts[i].Balance, share)
	}
}

func activeIndices(accounts []Account, eps float64) []int {
	idx := make([]int, 0, len(accounts))
	for i := range accounts {
		if accounts[i].Balance > eps {
			idx = append(idx, i)
		}
	}
	return idx
}

func snapshot(month int, interest, totalInterest float64, accounts []Account) MonthSnapshot {
	balances := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		balances[a.Name] = max(0, a.Balance)
	}
	return MonthSnapshot{
		Month:         month,
		Interest:      interest,
		TotalInterest: totalInterest,
		Balances:      balances,
		TotalBalance:  TotalBalance(accounts),
	}
}
