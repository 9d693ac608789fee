package store

import (
	"path/filepath"
	"testing"

	"dburn/internal/engine"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistorySaveAndList(t *testing.T) {
	h := openTestHistory(t)

	accounts := []engine.Account{
		{Name: "Chase", Balance: 1500, APR: 27.49},
		{Name: "Discover", Balance: 500, APR: 24.49},
	}

	_, err := h.SaveRun(Run{
		Kind:          RunKindBudget,
		Strategy:      "avalanche",
		MonthlyBudget: 800,
		PaidOff:       true,
		Months:        3,
		TotalInterest: 62.11,
		TotalPaid:     2062.11,
	}, accounts)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	_, err = h.SaveRun(Run{
		Kind:    RunKindManual,
		Months:  25,
		Reason:  "hit the 24-month cap; the payments may be too low to outpace interest",
		PaidOff: false,
	}, accounts)
	if err != nil {
		t.Fatalf("SaveRun manual: %v", err)
	}

	count, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("RunCount = %d, want 2", count)
	}

	runs, err := h.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns = %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Kind != RunKindManual {
		t.Errorf("runs[0].Kind = %q, want manual", runs[0].Kind)
	}
	if runs[0].PaidOff {
		t.Error("manual run unexpectedly marked paid off")
	}
	if runs[0].Reason == "" {
		t.Error("manual run lost its reason")
	}

	budget := runs[1]
	if budget.Strategy != "avalanche" || budget.MonthlyBudget != 800 {
		t.Errorf("budget run = %+v", budget)
	}
	if budget.StartingBalance != 2000 {
		t.Errorf("StartingBalance = %.2f, want 2000", budget.StartingBalance)
	}
	if len(budget.Accounts) != 2 {
		t.Fatalf("budget run accounts = %d, want 2", len(budget.Accounts))
	}
	if budget.RunAt.IsZero() {
		t.Error("RunAt not recorded")
	}
}

func TestHistoryListLimit(t *testing.T) {
	h := openTestHistory(t)

	accounts := []engine.Account{{Name: "Visa", Balance: 100, APR: 10}}
	for i := 0; i < 5; i++ {
		if _, err := h.SaveRun(Run{Kind: RunKindBudget, MonthlyBudget: float64(100 + i)}, accounts); err != nil {
			t.Fatalf("SaveRun #%d: %v", i, err)
		}
	}

	runs, err := h.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) = %d runs, want 2", len(runs))
	}
	if runs[0].MonthlyBudget != 104 || runs[1].MonthlyBudget != 103 {
		t.Errorf("limit did not keep the newest runs: %v, %v", runs[0].MonthlyBudget, runs[1].MonthlyBudget)
	}
}
