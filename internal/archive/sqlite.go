// Package archive provides the durable calculation log, backed by SQLite.
//
// The session history CSV covers save/load of the live sequence; the archive
// is append-only and spans sessions, so past results stay queryable after
// the history is undone, cleared, or evicted.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/calc-session/internal/model"
)

// Store records calculations in a SQLite database.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id         TEXT PRIMARY KEY,
		session    TEXT NOT NULL,
		op         TEXT NOT NULL,
		a          REAL NOT NULL,
		b          REAL NOT NULL,
		result     REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_calculations_session ON calculations(session);
	CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_op ON calculations(op);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Entry is one archived calculation.
type Entry struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Op        model.Op  `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Record appends one calculation under the given session id.
func (s *Store) Record(ctx context.Context, session string, c model.Calculation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, session, op, a, b, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), session, string(c.Op), c.A, c.B, c.Result,
		c.Timestamp.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// ListParams filters List results.
type ListParams struct {
	Session string
	Op      string
	Limit   int
}

// List returns the most recent archived calculations, newest first.
func (s *Store) List(ctx context.Context, p ListParams) ([]Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, session, op, a, b, result, created_at FROM calculations`
	var args []interface{}
	where := ""
	if p.Session != "" {
		where = ` WHERE session = ?`
		args = append(args, p.Session)
	}
	if p.Op != "" {
		if where == "" {
			where = ` WHERE op = ?`
		} else {
			where += ` AND op = ?`
		}
		args = append(args, p.Op)
	}
	query += where + ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var op, createdAt string
		if err := rows.Scan(&e.ID, &e.Session, &op, &e.A, &e.B, &e.Result, &createdAt); err != nil {
			return nil, err
		}
		e.Op = model.Op(op)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}
