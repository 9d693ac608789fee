package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    run_at           TEXT NOT NULL,
    kind             TEXT NOT NULL,
    strategy         TEXT,
    monthly_budget   REAL,
    paid_off         INTEGER NOT NULL DEFAULT 0,
    months           INTEGER NOT NULL,
    total_interest   REAL NOT NULL,
    total_paid       REAL NOT NULL,
    starting_balance REAL NOT NULL,
    reason           TEXT
);

CREATE TABLE IF NOT EXISTS run_accounts (
    run_id           INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    name             TEXT NOT NULL,
    apr              REAL NOT NULL,
    starting_balance REAL NOT NULL,
    PRIMARY KEY (run_id, name)
);

CREATE INDEX IF NOT EXISTS idx_runs_run_at ON runs(run_at);
`
