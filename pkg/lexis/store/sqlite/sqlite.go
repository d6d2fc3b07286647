package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/store"
)

// timeLayout is fixed-width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; queue callers on the pool instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT,
	pattern TEXT NOT NULL,
	width INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);

CREATE TABLE IF NOT EXISTS run_counts (
	run_id TEXT NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run and its counts
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO runs (id, source, pattern, width, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	pattern=excluded.pattern,
	width=excluded.width,
	created_at=excluded.created_at;
`
	if _, err := tx.ExecContext(ctx, stmt,
		r.ID,
		r.Source,
		r.Pattern,
		r.Width,
		r.CreatedAt.UTC().Format(timeLayout),
	); err != nil {
		return err
	}

	if err := replaceRunCounts(ctx, tx, r.ID, r.Counts); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceRunCounts(ctx context.Context, tx *sql.Tx, runID string, counts []freq.Pair) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM run_counts WHERE run_id=?`, runID); err != nil {
		return err
	}
	if len(counts) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_counts (run_id, word, count, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, p := range counts {
		if p.Key == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, runID, p.Key, p.Value, i); err != nil {
			return err
		}
	}
	return nil
}

// GetRun retrieves a run with its counts in stored order
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, pattern, width, created_at FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, count FROM run_counts WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p freq.Pair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return store.Run{}, err
		}
		r.Counts = append(r.Counts, p)
	}
	return r, rows.Err()
}

// ListRuns lists runs newest first, without counts
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, pattern, width, created_at
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run; its counts cascade. Unknown ids give ErrNotFound.
func (s *sqliteStore) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return nil
}

// TopCollocates sums counts over all runs for pattern
func (s *sqliteStore) TopCollocates(ctx context.Context, pattern string, k int) ([]freq.Pair, error) {
	if k <= 0 {
		k = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT rc.word, SUM(rc.count) AS total
FROM run_counts rc
JOIN runs r ON r.id = rc.run_id
WHERE r.pattern = ?
GROUP BY rc.word
ORDER BY total DESC, rc.word ASC
LIMIT ?;
`, pattern, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []freq.Pair
	for rows.Next() {
		var p freq.Pair
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var (
		r       store.Run
		source  sql.NullString
		created string
	)
	if err := sc.Scan(&r.ID, &source, &r.Pattern, &r.Width, &created); err != nil {
		return store.Run{}, err
	}
	r.Source = source.String
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}
