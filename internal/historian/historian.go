// Package historian persists match and action records to an embedded
// sqlite database, so finished simulations can be queried afterwards.
package historian

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kmfrost/jaipur/internal/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id          TEXT PRIMARY KEY,
	seed        INTEGER NOT NULL,
	p0          TEXT NOT NULL,
	p1          TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER,
	turns       INTEGER,
	score_p0    INTEGER,
	score_p1    INTEGER,
	winner      INTEGER
);
CREATE TABLE IF NOT EXISTS actions (
	match_id       TEXT NOT NULL REFERENCES matches(id),
	ordinal        INTEGER NOT NULL,
	seat           INTEGER NOT NULL,
	agent          TEXT NOT NULL,
	action_type    TEXT NOT NULL,
	good           TEXT NOT NULL,
	count          INTEGER NOT NULL,
	tokens_awarded INTEGER NOT NULL,
	bonus_tier     INTEGER NOT NULL,
	ts             INTEGER NOT NULL,
	PRIMARY KEY (match_id, ordinal)
);
`

// Store records matches in a sqlite file. It implements sim.Recorder.
type Store struct {
	db *sql.DB
}

var _ sim.Recorder = (*Store)(nil)

// Open creates or opens the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// StartMatch implements sim.Recorder.
func (s *Store) StartMatch(ctx context.Context, matchID uuid.UUID, seed uint64, agents [2]string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (id, seed, p0, p1, started_at) VALUES (?, ?, ?, ?, ?)`,
		matchID.String(), int64(seed), agents[0], agents[1], time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// RecordAction implements sim.Recorder.
func (s *Store) RecordAction(ctx context.Context, rec sim.ActionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO actions
		 (match_id, ordinal, seat, agent, action_type, good, count, tokens_awarded, bonus_tier, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID.String(), rec.Ordinal, rec.Seat, rec.Agent, rec.ActionType,
		rec.Good, rec.Count, rec.TokensAwarded, rec.BonusTier, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("insert action %d: %w", rec.Ordinal, err)
	}
	return nil
}

// FinishMatch implements sim.Recorder.
func (s *Store) FinishMatch(ctx context.Context, res sim.Result) error {
	out, err := s.db.ExecContext(ctx,
		`UPDATE matches
		 SET finished_at = ?, turns = ?, score_p0 = ?, score_p1 = ?, winner = ?
		 WHERE id = ?`,
		time.Now().UnixMilli(), res.Turns, res.Scores[0], res.Scores[1],
		res.Winner, res.MatchID.String())
	if err != nil {
		return fmt.Errorf("finish match: %w", err)
	}
	n, err := out.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("finish match: unknown match %s", res.MatchID)
	}
	return nil
}

// MatchRow is one finished or in-flight match summary.
type MatchRow struct {
	ID     uuid.UUID
	Seed   uint64
	Agents [2]string
	Turns  int
	Scores [2]int
	Winner int8
}

// Matches returns every recorded match, oldest first. Unfinished rows
// report zero turns and scores and a winner of -1.
func (s *Store) Matches(ctx context.Context) ([]MatchRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, seed, p0, p1,
		        COALESCE(turns, 0), COALESCE(score_p0, 0), COALESCE(score_p1, 0),
		        COALESCE(winner, -1)
		 FROM matches ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchRow
	for rows.Next() {
		var m MatchRow
		var id string
		var seed int64
		if err := rows.Scan(&id, &seed, &m.Agents[0], &m.Agents[1],
			&m.Turns, &m.Scores[0], &m.Scores[1], &m.Winner); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse match id %q: %w", id, err)
		}
		m.Seed = uint64(seed)
		out = append(out, m)
	}
	return out, rows.Err()
}

// ActionCount returns the number of recorded actions for a match.
func (s *Store) ActionCount(ctx context.Context, matchID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM actions WHERE match_id = ?`, matchID.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count actions: %w", err)
	}
	return n, nil
}
