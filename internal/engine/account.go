// Package engine implements the debt payoff simulation core: interest
// accrual, payment allocation under selectable strategies, and multi-budget
// comparison. All functions operate on in-memory account lists and perform
// no I/O.
package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by engine operations. Callers test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("account not found")
)

// Account is one revolving interest-bearing balance (a credit card).
// APR is expressed in percent, e.g. 24.49 for 24.49%.
type Account struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	APR     float64 `json:"apr"`
}

// MonthlyRate converts an APR in percent to the monthly periodic rate.
func MonthlyRate(aprPercent float64) float64 {
	return (aprPercent / 100.0) / 12.0
}

// TotalBalance sums the balances of all accounts.
func TotalBalance(accounts []Account) float64 {
	var total float64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// ApplyOneTimePayment reduces the balance of the first account matching name
// by amount, clamped at zero. Overpayment is silently absorbed, not credited
// elsewhere. Unlike the simulation entry points, this mutates the given
// accounts in place.
func ApplyOneTimePayment(accounts []Account, name string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: payment amount must be >= 0, got %.2f", ErrInvalidArgument, amount)
	}
	for i := range accounts {
		if accounts[i].Name == name {
			accounts[i].Balance = max(0, accounts[i].Balance-amount)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// cloneAccounts returns an independent copy; Account holds no references so
// a shallow element copy is a full copy.
func cloneAccounts(accounts []Account) []Account {
	return append([]Account(nil), accounts...)
}
