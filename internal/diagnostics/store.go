// Package diagnostics persists per-run achievement timelines and
// terminal episode stats to SQLite, keyed by the Env's RunID. It is
// deliberately narrow: recording full trajectories (stats.jsonl,
// rendered video, compressed observation arrays) is an external
// concern layered outside this module, not something diagnostics
// attempts to replace.
package diagnostics

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection for run diagnostics.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("diagnostics: open: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("diagnostics: migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		episode INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS achievement_events (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		name TEXT NOT NULL,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS episode_stats (
		run_id TEXT PRIMARY KEY,
		steps INTEGER NOT NULL,
		final_health INTEGER NOT NULL,
		total_reward REAL NOT NULL,
		discount REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_achievement_events_run ON achievement_events(run_id);
	`)
	return err
}

// BeginRun records a new run row. seed and episode identify which
// world this run observed, for later cross-referencing against
// determinism checks.
func (s *Store) BeginRun(runID string, seed int64, episode int) error {
	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO runs (run_id, seed, episode) VALUES (?, ?, ?)`,
		runID, seed, episode,
	)
	return err
}

// RecordUnlock appends one achievement-unlock event to the run's
// timeline. Called once per (run, achievement) the first tick its
// count rises above zero.
func (s *Store) RecordUnlock(runID string, tick int, name string, count int) error {
	_, err := s.conn.Exec(
		`INSERT INTO achievement_events (run_id, tick, name, count) VALUES (?, ?, ?, ?)`,
		runID, tick, name, count,
	)
	return err
}

// FinishRun records the terminal stats for a completed episode.
func (s *Store) FinishRun(runID string, steps, finalHealth int, totalReward, discount float64) error {
	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO episode_stats
			(run_id, steps, final_health, total_reward, discount)
			VALUES (?, ?, ?, ?, ?)`,
		runID, steps, finalHealth, totalReward, discount,
	)
	return err
}

// UnlockEvent is one row of a run's achievement timeline.
type UnlockEvent struct {
	Tick  int    `db:"tick"`
	Name  string `db:"name"`
	Count int    `db:"count"`
}

// Timeline returns every achievement-unlock event for runID, ordered
// by tick.
func (s *Store) Timeline(runID string) ([]UnlockEvent, error) {
	var events []UnlockEvent
	err := s.conn.Select(&events,
		`SELECT tick, name, count FROM achievement_events WHERE run_id = ? ORDER BY tick ASC`,
		runID,
	)
	return events, err
}
