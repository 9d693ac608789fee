package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMetaRoundTrip(t *testing.T) {
	dir := t.TempDir()

	meta, err := LoadMeta(dir)
	if err != nil {
		t.Fatalf("LoadMeta on empty dir: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected no cards, got %d", len(meta))
	}

	want := []CardMeta{
		{Name: "Chase", APR: 27.49},
		{Name: "Discover", APR: 24.49},
	}
	if err := SaveMeta(dir, want); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}

	got, err := LoadMeta(dir)
	if err != nil {
		t.Fatalf("LoadMeta: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("LoadMeta = %+v, want %+v", got, want)
	}

	// The file stays human-inspectable: indented records in saved order.
	raw, err := os.ReadFile(filepath.Join(dir, "cards.json"))
	if err != nil {
		t.Fatalf("reading cards.json: %v", err)
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Error("cards.json is not indented")
	}
}

func TestResetMeta(t *testing.T) {
	dir := t.TempDir()

	if err := ResetMeta(dir); err != nil {
		t.Fatalf("ResetMeta with no file: %v", err)
	}

	if err := SaveMeta(dir, []CardMeta{{Name: "Chase", APR: 20}}); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	if err := ResetMeta(dir); err != nil {
		t.Fatalf("ResetMeta: %v", err)
	}

	meta, err := LoadMeta(dir)
	if err != nil {
		t.Fatalf("LoadMeta after reset: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("expected no cards after reset, got %d", len(meta))
	}
}

func TestBalancesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	balances, err := LoadBalances(dir)
	if err != nil {
		t.Fatalf("LoadBalances on empty dir: %v", err)
	}
	if len(balances) != 0 {
		t.Fatalf("expected empty balances, got %v", balances)
	}

	if err := SaveBalances(dir, map[string]float64{"Chase": 1452.93, "Discover": 381.41}); err != nil {
		t.Fatalf("SaveBalances: %v", err)
	}

	// Saves overwrite wholesale: a card missing from the new set is gone.
	if err := SaveBalances(dir, map[string]float64{"Chase": 1200}); err != nil {
		t.Fatalf("SaveBalances overwrite: %v", err)
	}

	got, err := LoadBalances(dir)
	if err != nil {
		t.Fatalf("LoadBalances: %v", err)
	}
	if len(got) != 1 || got["Chase"] != 1200 {
		t.Errorf("LoadBalances = %v, want map[Chase:1200]", got)
	}
}

func TestBuildAccounts(t *testing.T) {
	meta := []CardMeta{
		{Name: "Chase", APR: 27.49},
		{Name: "  ", APR: 10},
		{Name: "Discover", APR: 24.49},
	}
	balances := map[string]float64{
		"Chase":    1452.93,
		"Discover": -50, // corrupt save, must clamp
	}

	accounts := BuildAccounts(meta, balances)
	if len(accounts) != 2 {
		t.Fatalf("accounts = %d, want 2 (blank name skipped)", len(accounts))
	}
	if accounts[0].Name != "Chase" || accounts[0].Balance != 1452.93 || accounts[0].APR != 27.49 {
		t.Errorf("accounts[0] = %+v", accounts[0])
	}
	if accounts[1].Balance != 0 {
		t.Errorf("negative saved balance not clamped: %+v", accounts[1])
	}
}
