// Package persistence archives decision telemetry to SQLite so runs can be
// inspected and compared offline.
package persistence

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/freeeve/grandstrat/pkg/strat"
)

// DB wraps a SQLite connection for telemetry archiving.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite archive at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		countries INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS decisions (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		country_id INTEGER NOT NULL,
		action TEXT NOT NULL,
		score INTEGER NOT NULL,
		d_res INTEGER NOT NULL,
		d_sec INTEGER NOT NULL,
		d_growth INTEGER NOT NULL,
		d_pos INTEGER NOT NULL,
		cost INTEGER NOT NULL,
		risk INTEGER NOT NULL,
		alpha INTEGER NOT NULL,
		beta INTEGER NOT NULL,
		gamma INTEGER NOT NULL,
		delta INTEGER NOT NULL,
		kappa INTEGER NOT NULL,
		rho INTEGER NOT NULL,
		commit_rejected INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_run ON decisions(run_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunRecord describes one archived simulation run.
type RunRecord struct {
	ID        string `db:"id"`
	Seed      uint64 `db:"seed"`
	Countries int    `db:"countries"`
	Ticks     int    `db:"ticks"`
	CreatedAt string `db:"created_at"`
}

// SaveRun records run metadata.
func (db *DB) SaveRun(id string, seed uint64, countries, ticks int) error {
	_, err := db.conn.Exec(
		`INSERT INTO runs (id, seed, countries, ticks, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, int64(seed), countries, ticks, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// SaveDecisions writes a batch of telemetry entries for a run.
func (db *DB) SaveDecisions(runID string, entries []strat.DecisionLog) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO decisions (
			run_id, tick, country_id, action, score,
			d_res, d_sec, d_growth, d_pos, cost, risk,
			alpha, beta, gamma, delta, kappa, rho, commit_rejected
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		rejected := 0
		if e.CommitRejected {
			rejected = 1
		}
		if _, err := stmt.Exec(
			runID, int64(e.Tick), e.CountryID, e.Chosen.String(), e.Score,
			e.Components.Res, e.Components.Sec, e.Components.Growth,
			e.Components.Pos, e.Components.Cost, e.Components.Risk,
			e.Weights.Alpha, e.Weights.Beta, e.Weights.Gamma,
			e.Weights.Delta, e.Weights.Kappa, e.Weights.Rho, rejected,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Runs lists archived runs, newest first.
func (db *DB) Runs() ([]RunRecord, error) {
	var runs []RunRecord
	err := db.conn.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC`)
	return runs, err
}

// ActionCount is one row of a per-run action histogram.
type ActionCount struct {
	Action string `db:"action"`
	Count  int    `db:"count"`
}

// ActionCounts returns how often each action was chosen in a run.
func (db *DB) ActionCounts(runID string) ([]ActionCount, error) {
	var counts []ActionCount
	err := db.conn.Select(&counts, `
		SELECT action, COUNT(*) AS count
		FROM decisions WHERE run_id = ?
		GROUP BY action ORDER BY count DESC, action`, runID)
	return counts, err
}

// DecisionCount returns the number of archived decisions for a run.
func (db *DB) DecisionCount(runID string) (int, error) {
	var n int
	err := db.conn.Get(&n, `SELECT COUNT(*) FROM decisions WHERE run_id = ?`, runID)
	return n, err
}
