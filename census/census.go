// Package census provides SQLite-backed storage for manifold censuses.
//
// A census database holds one row per manifold: its name, hyperbolic
// volume, Chern-Simons invariant (when defined), and an opaque encoded
// triangulation blob. The schema matches the census files shipped with
// SnapPy, so existing census databases can be opened directly.
package census

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ckaterba/snappea"
)

const schema = `
CREATE TABLE IF NOT EXISTS census (
	id            INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	volume        REAL,
	chernsimons   REAL,
	triangulation BLOB
);
CREATE INDEX IF NOT EXISTS idx_census_name ON census(name);
`

// ErrNotFound is returned when a census lookup matches no manifold.
var ErrNotFound = errors.New("census: manifold not found")

// Record is one census entry.
type Record struct {
	ID     int64
	Name   string
	Volume float64

	// ChernSimons is the Chern-Simons invariant. Valid is false for
	// manifolds where the invariant could not be computed; census
	// builders store NULL there.
	ChernSimons sql.NullFloat64

	// Triangulation is the encoded triangulation, kept opaque here.
	// Decoding it is the job of the triangulation layer.
	Triangulation []byte
}

// DB is an open census database.
type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) a census database at the given
// path and ensures the schema exists.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("census: open database: %w", err)
	}

	// SQLite allows a single writer; WAL still permits concurrent reads.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("census: migrate schema: %w", err)
	}

	snappea.Logger().Debug("census database opened", "path", path)
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (c *DB) Close() error {
	return c.db.Close()
}

// Insert adds a manifold to the census. The record's ID is ignored;
// SQLite assigns one.
func (c *DB) Insert(ctx context.Context, rec Record) error {
	const q = `INSERT INTO census (name, volume, chernsimons, triangulation)
VALUES (?, ?, ?, ?)`
	_, err := c.db.ExecContext(ctx, q,
		rec.Name,
		rec.Volume,
		rec.ChernSimons,
		rec.Triangulation,
	)
	if err != nil {
		return fmt.Errorf("census: insert %q: %w", rec.Name, err)
	}
	snappea.Logger().Debug("census manifold inserted", "name", rec.Name, "volume", rec.Volume)
	return nil
}

// ByName returns the census entry with the given name, or an error
// wrapping ErrNotFound if no manifold has that name.
func (c *DB) ByName(ctx context.Context, name string) (*Record, error) {
	const q = `SELECT id, name, volume, chernsimons, triangulation
FROM census
WHERE name = ?
LIMIT 1`

	row := c.db.QueryRowContext(ctx, q, name)

	var r Record
	err := row.Scan(&r.ID, &r.Name, &r.Volume, &r.ChernSimons, &r.Triangulation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("census: lookup %q: %w", name, err)
	}
	return &r, nil
}

// Names returns the names of all manifolds in the census, in insertion
// order.
func (c *DB) Names(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM census ORDER BY id`

	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("census: list names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("census: scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("census: list names: %w", err)
	}
	return names, nil
}

// Count returns the number of manifolds in the census.
func (c *DB) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM census`

	var n int
	if err := c.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("census: count: %w", err)
	}
	return n, nil
}
