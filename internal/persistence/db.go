// Package persistence provides SQLite-based archival of completed risk runs.
// The archive is an opt-in supplement: the pipeline's contract is the console
// report, the database exists so that runs can be compared after the fact.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for run archival.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
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
		started_at TEXT NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		rows INTEGER NOT NULL,
		cols INTEGER NOT NULL,
		replicates INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		asset_col INTEGER NOT NULL,
		hit_count INTEGER NOT NULL,
		hit_rate REAL NOT NULL,
		mean_loss REAL NOT NULL,
		max_loss REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS replicate_losses (
		run_id TEXT NOT NULL REFERENCES runs(id),
		replicate INTEGER NOT NULL,
		loss REAL NOT NULL,
		hit INTEGER NOT NULL,
		PRIMARY KEY (run_id, replicate)
	);

	CREATE INDEX IF NOT EXISTS idx_losses_run ON replicate_losses(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunRecord is one archived run: scenario shape, run settings, and the
// aggregate risk numbers. StartedAt is RFC3339 text.
type RunRecord struct {
	ID         string  `db:"id"`
	StartedAt  string  `db:"started_at"`
	ElapsedMS  int64   `db:"elapsed_ms"`
	Rows       int     `db:"rows"`
	Cols       int     `db:"cols"`
	Replicates int     `db:"replicates"`
	Seed       int     `db:"seed"`
	AssetCol   int     `db:"asset_col"`
	HitCount   int     `db:"hit_count"`
	HitRate    float64 `db:"hit_rate"`
	MeanLoss   float64 `db:"mean_loss"`
	MaxLoss    float64 `db:"max_loss"`
}

// SaveRun archives a completed run and its per-replicate outcomes in a single
// transaction. Losses and hits are parallel slices indexed from replicate 1.
// The hit flag is stored as given, never derived from the loss: a burned
// corridor of zero-value cells is a hit with no loss.
func (db *DB) SaveRun(rec RunRecord, losses []float64, hits []bool) error {
	if len(hits) != len(losses) {
		return fmt.Errorf("save run %s: %d losses but %d hit flags", rec.ID, len(losses), len(hits))
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, started_at, elapsed_ms, rows, cols, replicates, seed, asset_col,
		 hit_count, hit_rate, mean_loss, max_loss)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt, rec.ElapsedMS, rec.Rows, rec.Cols,
		rec.Replicates, rec.Seed, rec.AssetCol, rec.HitCount, rec.HitRate,
		rec.MeanLoss, rec.MaxLoss,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.ID, err)
	}

	stmt, err := tx.Preparex(
		"INSERT INTO replicate_losses (run_id, replicate, loss, hit) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, loss := range losses {
		if _, err := stmt.Exec(rec.ID, i+1, loss, hits[i]); err != nil {
			return fmt.Errorf("insert replicate %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("run archived", "run", rec.ID, "replicates", len(losses))
	return nil
}

// RecentRuns returns the most recently started N runs.
func (db *DB) RecentRuns(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := db.conn.Select(&runs, `SELECT
		id, started_at, elapsed_ms, rows, cols, replicates, seed, asset_col,
		hit_count, hit_rate, mean_loss, max_loss
		FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	return runs, err
}

// ReplicateLoss is one archived replicate outcome.
type ReplicateLoss struct {
	Replicate int     `db:"replicate"`
	Loss      float64 `db:"loss"`
	Hit       bool    `db:"hit"`
}

// ReplicateLosses returns a run's per-replicate outcomes in replicate order.
func (db *DB) ReplicateLosses(runID string) ([]ReplicateLoss, error) {
	var losses []ReplicateLoss
	err := db.conn.Select(&losses,
		"SELECT replicate, loss, hit FROM replicate_losses WHERE run_id = ? ORDER BY replicate",
		runID,
	)
	return losses, err
}
