// Package store persists card metadata, last-known balances, and the
// simulation run history under the dburn data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dburn/internal/engine"
)

const (
	metaFile     = "cards.json"
	balancesFile = "balances.json"
)

// CardMeta is one saved card: its nickname and APR. Balances live in a
// separate file so re-entering them never touches the metadata.
type CardMeta struct {
	Name string  `json:"name"`
	APR  float64 `json:"apr"`
}

// LoadMeta reads the saved card list. A missing file yields an empty list.
func LoadMeta(dataDir string) ([]CardMeta, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading card metadata: %w", err)
	}

	var meta []CardMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing card metadata: %w", err)
	}
	return meta, nil
}

// SaveMeta writes the card list, indented so the file stays hand-editable.
func SaveMeta(dataDir string, meta []CardMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding card metadata: %w", err)
	}
	return writeFile(dataDir, metaFile, data)
}

// ResetMeta deletes the saved card list. Missing file is not an error.
func ResetMeta(dataDir string) error {
	return removeFile(dataDir, metaFile)
}

// LoadBalances reads the last-saved balance per card name. A missing file
// yields an empty map.
func LoadBalances(dataDir string) (map[string]float64, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, balancesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]float64{}, nil
		}
		return nil, fmt.Errorf("reading balances: %w", err)
	}

	balances := map[string]float64{}
	if err := json.Unmarshal(data, &balances); err != nil {
		return nil, fmt.Errorf("parsing balances: %w", err)
	}
	return balances, nil
}

// SaveBalances overwrites the whole balance file with the given set. Callers
// save on every simulation run, so the file always mirrors the last run.
func SaveBalances(dataDir string, balances map[string]float64) error {
	data, err := json.MarshalIndent(balances, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding balances: %w", err)
	}
	return writeFile(dataDir, balancesFile, data)
}

// ResetBalances deletes the saved balances. Missing file is not an error.
func ResetBalances(dataDir string) error {
	return removeFile(dataDir, balancesFile)
}

// SaveAccountBalances persists the balances of the given accounts wholesale.
func SaveAccountBalances(dataDir string, accounts []engine.Account) error {
	balances := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		balances[a.Name] = a.Balance
	}
	return SaveBalances(dataDir, balances)
}

// BuildAccounts assembles engine accounts from saved metadata, filling each
// balance from the balance store (0 when unknown). Blank names are skipped
// and negative saved balances clamp to zero.
func BuildAccounts(meta []CardMeta, balances map[string]float64) []engine.Account {
	accounts := make([]engine.Account, 0, len(meta))
	for _, m := range meta {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		accounts = append(accounts, engine.Account{
			Name:    name,
			Balance: max(0, balances[name]),
			APR:     m.APR,
		})
	}
	return accounts
}

func writeFile(dataDir, name string, data []byte) error {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, name), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func removeFile(dataDir, name string) error {
	err := os.Remove(filepath.Join(dataDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}
