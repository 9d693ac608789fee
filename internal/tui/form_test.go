package tui

import (
	"testing"

	"dburn/internal/engine"
)

func TestParseBudgets(t *testing.T) {
	budgets, err := parseBudgets(" $800, 1000 ,  1250.50 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 3 || budgets[0] != 800 || budgets[2] != 1250.50 {
		t.Errorf("budgets = %v", budgets)
	}

	if _, err := parseBudgets("800, nope"); err == nil {
		t.Error("expected error for non-numeric budget")
	}
	if _, err := parseBudgets("-100"); err == nil {
		t.Error("expected error for negative budget")
	}
}

func TestParsePayments(t *testing.T) {
	payments, err := parsePayments("Chase=200, Discover = $50, Chase=25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payments["Chase"] != 225 {
		t.Errorf("Chase = %v, want 225 (repeats add up)", payments["Chase"])
	}
	if payments["Discover"] != 50 {
		t.Errorf("Discover = %v, want 50", payments["Discover"])
	}

	if _, err := parsePayments("Chase"); err == nil {
		t.Error("expected error for missing amount")
	}
	if _, err := parsePayments("Chase=-5"); err == nil {
		t.Error("expected error for negative payment")
	}

	empty, err := parsePayments("   ")
	if err != nil || len(empty) != 0 {
		t.Errorf("blank input: payments=%v err=%v, want empty and nil", empty, err)
	}
}

func TestPaymentValidatorRejectsUnknownCard(t *testing.T) {
	validate := paymentValidator([]engine.Account{{Name: "Chase", APR: 24}})

	if err := validate("Chase=100"); err != nil {
		t.Errorf("known card rejected: %v", err)
	}
	if err := validate("Amex=100"); err == nil {
		t.Error("unknown card accepted")
	}
}

func TestNewPlanValuesPrefillsBalances(t *testing.T) {
	accounts := []engine.Account{
		{Name: "Chase", Balance: 1452.93, APR: 27.49},
		{Name: "Discover", Balance: 0, APR: 24.49},
	}

	vals := newPlanValues(accounts, "snowball", []float64{800, 1000})
	if vals.balances[0] != "1452.93" {
		t.Errorf("balances[0] = %q, want 1452.93", vals.balances[0])
	}
	if vals.balances[1] != "0.00" {
		t.Errorf("balances[1] = %q, want 0.00", vals.balances[1])
	}
	if vals.strategy != "snowball" {
		t.Errorf("strategy = %q", vals.strategy)
	}
	if vals.budgets != "800, 1000" {
		t.Errorf("budgets = %q", vals.budgets)
	}
}
