package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dburn/internal/engine"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Kinds of recorded runs.
const (
	RunKindBudget = "budget"
	RunKindManual = "manual"
)

// Run is one recorded simulation run.
type Run struct {
	ID              int64
	RunAt           time.Time
	Kind            string
	Strategy        string
	MonthlyBudget   float64
	PaidOff         bool
	Months          int
	TotalInterest   float64
	TotalPaid       float64
	StartingBalance float64
	Reason          string
	Accounts        []RunAccount
}

// RunAccount is the starting state of one account in a recorded run.
type RunAccount struct {
	Name            string
	APR             float64
	StartingBalance float64
}

// History is the SQLite-backed simulation run log.
type History struct {
	db *sql.DB
}

// HistoryPath returns the run history database path under the data dir.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, "history.db")
}

// OpenHistory opens or creates the run history database at the given path.
func OpenHistory(dbPath string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun records a simulation outcome and the accounts it started from.
// Accounts carries the pre-simulation balances, not the result state.
func (h *History) SaveRun(run Run, accounts []engine.Account) (int64, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	runAt := run.RunAt
	if runAt.IsZero() {
		runAt = time.Now()
	}

	paidOff := 0
	if run.PaidOff {
		paidOff = 1
	}

	res, err := tx.Exec(`INSERT INTO runs
		(run_at, kind, strategy, monthly_budget, paid_off, months,
		 total_interest, total_paid, starting_balance, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runAt.UTC().Format(time.RFC3339), run.Kind, run.Strategy, run.MonthlyBudget,
		paidOff, run.Months, run.TotalInterest, run.TotalPaid,
		engine.TotalBalance(accounts), run.Reason,
	)
	if err != nil {
		return 0, err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, a := range accounts {
		_, err := tx.Exec(`INSERT OR REPLACE INTO run_accounts
			(run_id, name, apr, starting_balance) VALUES (?, ?, ?, ?)`,
			runID, a.Name, a.APR, a.Balance,
		)
		if err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}

// ListRuns returns up to limit runs, newest first, with their account
// breakdowns. limit <= 0 means no limit.
func (h *History) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, run_at, kind, strategy, monthly_budget, paid_off,
		months, total_interest, total_paid, starting_balance, reason
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var runAt string
		var paidOff int
		var strategy, reason sql.NullString

		err := rows.Scan(&r.ID, &runAt, &r.Kind, &strategy, &r.MonthlyBudget,
			&paidOff, &r.Months, &r.TotalInterest, &r.TotalPaid,
			&r.StartingBalance, &reason)
		if err != nil {
			return nil, err
		}

		r.PaidOff = paidOff != 0
		if strategy.Valid {
			r.Strategy = strategy.String
		}
		if reason.Valid {
			r.Reason = reason.String
		}
		r.RunAt, _ = time.Parse(time.RFC3339, runAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	// Batch-load the account breakdown for the selected runs.
	runIdx := make(map[int64]int, len(runs))
	for i, r := range runs {
		runIdx[r.ID] = i
	}

	acctRows, err := h.db.Query(`SELECT run_id, name, apr, starting_balance FROM run_accounts`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = acctRows.Close() }()

	for acctRows.Next() {
		var runID int64
		var ra RunAccount
		if err := acctRows.Scan(&runID, &ra.Name, &ra.APR, &ra.StartingBalance); err != nil {
			return nil, err
		}
		if i, ok := runIdx[runID]; ok {
			runs[i].Accounts = append(runs[i].Accounts, ra)
		}
	}

	return runs, acctRows.Err()
}

// RunCount returns the number of recorded runs.
func (h *History) RunCount() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
