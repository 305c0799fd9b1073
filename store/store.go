// Package store caches solver outcomes in SQLite so repeated levels are
// answered without a traversal.
//
// Records are keyed by the canonical key of the initial configuration.
// Moves are positional, so a record also keeps the raw positional form it
// was solved from; MovesFor remaps them onto any arrangement with the same
// key.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/pourpath/solver"
	"github.com/katalvlaran/pourpath/state"
)

// ErrNotFound is returned by Get when no record matches the key.
var ErrNotFound = errors.New("store: record not found")

// Record is one cached outcome.
type Record struct {
	ID        uuid.UUID
	Key       string       // canonical key of the initial configuration
	Raw       string       // positional form the moves refer to
	Moves     []state.Move // empty when unsolvable
	Solvable  bool
	States    int // distinct configurations discovered
	CreatedAt time.Time
}

// NewRecord captures a finished traversal.
func NewRecord(res *solver.Result) *Record {
	return &Record{
		Key:      res.Initial.Key(),
		Raw:      res.Initial.String(),
		Moves:    res.Moves,
		Solvable: res.Solved(),
		States:   res.Stats.Discovered,
	}
}

// MovesFor remaps the cached moves onto s, which must share the record's
// canonical key. Tubes with identical contents are interchangeable, so any
// matching of equal tubes is valid.
func (r *Record) MovesFor(s *state.State) ([]state.Move, error) {
	if s.Key() != r.Key {
		return nil, fmt.Errorf("store: key %q does not match record %q", s.Key(), r.Key)
	}
	if s.String() == r.Raw {
		return append([]state.Move(nil), r.Moves...), nil
	}

	free := map[string][]int{}
	for j := 0; j < s.Len(); j++ {
		raw := s.Tube(j).Raw()
		free[raw] = append(free[raw], j)
	}
	cached := strings.Split(r.Raw, ",")
	perm := make([]int, len(cached))
	for i, raw := range cached {
		idx := free[raw]
		perm[i], free[raw] = idx[0], idx[1:]
	}

	out := make([]state.Move, len(r.Moves))
	for i, m := range r.Moves {
		out[i] = state.Move{From: perm[m.From], To: perm[m.To]}
	}

	return out, nil
}

// SQLiteStore persists records in a single SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Open opens or creates the cache at path. Use ":memory:" for a private
// in-memory cache.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS solutions (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		raw TEXT NOT NULL,
		moves TEXT NOT NULL,
		solvable INTEGER NOT NULL,
		states INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_solutions_created_at ON solutions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put inserts rec or replaces the record with the same key. A zero ID or
// CreatedAt is filled in and written back to rec.
func (s *SQLiteStore) Put(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	moves := rec.Moves
	if moves == nil {
		moves = []state.Move{}
	}
	movesJSON, err := json.Marshal(moves)
	if err != nil {
		return fmt.Errorf("marshal moves: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO solutions (id, key, raw, moves, solvable, states, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			id = excluded.id, raw = excluded.raw, moves = excluded.moves,
			solvable = excluded.solvable, states = excluded.states,
			created_at = excluded.created_at`,
		rec.ID.String(), rec.Key, rec.Raw, string(movesJSON), rec.Solvable, rec.States,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert solution: %w", err)
	}

	return nil
}

// Get returns the record for a canonical key, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, key, raw, moves, solvable, states, created_at FROM solutions WHERE key = ?", key)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return rec, err
}

// List returns every record, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, key, raw, moves, solvable, states, created_at FROM solutions ORDER BY created_at, key")
	if err != nil {
		return nil, fmt.Errorf("query solutions: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}

// Delete removes the record for key. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM solutions WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete solution: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec       Record
		id        string
		movesJSON string
		createdAt string
	)
	if err := sc.Scan(&id, &rec.Key, &rec.Raw, &movesJSON, &rec.Solvable, &rec.States, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan solution: %w", err)
	}

	var err error
	if rec.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	if err = json.Unmarshal([]byte(movesJSON), &rec.Moves); err != nil {
		return nil, fmt.Errorf("unmarshal moves: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &rec, nil
}
