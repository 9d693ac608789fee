package engine

import "fmt"

// Strategy selects how the monthly budget is split across active accounts.
// It is a closed set; each strategy binds its ordering rule once at call
// entry rather than being re-dispatched by name every month.
type Strategy int

const (
	// Avalanche pays the highest-APR account first.
	Avalanche Strategy = iota
	// Snowball pays the smallest-balance account first.
	Snowball
	// Proportional splits the budget by each account's share of the total
	// active balance.
	Proportional
)

var strategyNames = [...]string{"avalanche", "snowball", "proportional"}

// ParseStrategy maps a strategy name to its Strategy value.
func ParseStrategy(s string) (Strategy, error) {
	for i, name := range strategyNames {
		if s == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: strategy must be one of avalanche, snowball, proportional; got %q", ErrInvalidArgument, s)
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Description returns a one-line explanation for pickers and help text.
func (s Strategy) Description() string {
	switch s {
	case Avalanche:
		return "Highest APR first. Usually minimizes total interest."
	case Snowball:
		return "Smallest balance first. Quick wins, may cost more interest."
	case Proportional:
		return "Split the budget across cards by balance share."
	default:
		return ""
	}
}

func (s Strategy) valid() bool {
	return s >= Avalanche && s <= Proportional
}

// less is the payoff-order comparator for the ordered strategies.
// Proportional has no ordering and must not reach here.
func (s Strategy) less(a, b Account) bool {
	switch s {
	case Avalanche:
		if a.APR != b.APR {
			return a.APR > b.APR
		}
		return a.Balance < b.Balance
	case Snowball:
		if a.Balance != b.Balance {
			return a.Balance < b.Balance
		}
		return a.APR > b.APR
	}
	return false
}
