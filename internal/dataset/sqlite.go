package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/tkalab/tka/internal/model"
)

// Entry is one stored reference row.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	model.Pictograph
}

// SQLiteStore persists reference entries in SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id          TEXT PRIMARY KEY,
		letter      TEXT NOT NULL,
		grid_mode   TEXT NOT NULL DEFAULT 'diamond',
		start_pos   TEXT,
		end_pos     TEXT,
		blue_attrs  TEXT NOT NULL,
		red_attrs   TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_letter ON entries(letter);
	CREATE INDEX IF NOT EXISTS idx_entries_letter_grid ON entries(letter, grid_mode);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores one reference entry. The pictograph must carry a letter and
// both motions.
func (s *SQLiteStore) Put(ctx context.Context, p model.Pictograph) (*Entry, error) {
	if p.Letter == "" {
		return nil, fmt.Errorf("entry requires a letter")
	}
	if p.Blue == nil || p.Red == nil {
		return nil, fmt.Errorf("entry %q requires both motions", p.Letter)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("entry %q: %w", p.Letter, err)
	}

	now := time.Now().UTC()
	id := s.newID()

	blueJSON, _ := json.Marshal(p.Blue)
	redJSON, _ := json.Marshal(p.Red)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, letter, grid_mode, start_pos, end_pos, blue_attrs, red_attrs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Letter, string(p.GridMode), p.StartPos, p.EndPos,
		string(blueJSON), string(redJSON), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	return &Entry{ID: id, CreatedAt: now, Pictograph: p}, nil
}

// Import stores a batch of reference pictographs.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.Pictograph) (int, error) {
	imported := 0
	for _, p := range entries {
		if _, err := s.Put(ctx, p); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ExportAll returns all entries, optionally filtered by letter.
func (s *SQLiteStore) ExportAll(ctx context.Context, letter string) ([]Entry, error) {
	query := `SELECT id, letter, grid_mode, start_pos, end_pos, blue_attrs, red_attrs, created_at
	          FROM entries`
	var args []interface{}
	if letter != "" {
		query += ` WHERE letter = ?`
		args = append(args, letter)
	}
	query += ` ORDER BY letter, created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Snapshot loads every entry into an immutable in-memory Provider.
func (s *SQLiteStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	entries, err := s.ExportAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	configs := make([]*model.Pictograph, 0, len(entries))
	for i := range entries {
		p := entries[i].Pictograph
		configs = append(configs, &p)
	}
	return NewSnapshot(configs), nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var gridMode, createdAt string
	var startPos, endPos sql.NullString
	var blueJSON, redJSON string

	err := row.Scan(&e.ID, &e.Letter, &gridMode, &startPos, &endPos,
		&blueJSON, &redJSON, &createdAt)
	if err != nil {
		return e, err
	}

	e.GridMode = model.GridMode(gridMode)
	if startPos.Valid {
		e.StartPos = startPos.String
	}
	if endPos.Valid {
		e.EndPos = endPos.String
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	var blue, red model.Motion
	if err := json.Unmarshal([]byte(blueJSON), &blue); err != nil {
		return e, fmt.Errorf("entry %s blue_attrs: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(redJSON), &red); err != nil {
		return e, fmt.Errorf("entry %s red_attrs: %w", e.ID, err)
	}
	e.Blue = &blue
	e.Red = &red

	return e, nil
}
