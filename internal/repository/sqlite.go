package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			stage TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			result_count INTEGER NOT NULL,
			nearest_km REAL NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
		CREATE INDEX IF NOT EXISTS idx_lookups_status ON lookups(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Add(ctx context.Context, l *models.Lookup) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (id, status, stage, error, result_count, nearest_km, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Status, l.Stage, l.Error, l.ResultCount, l.NearestDistance,
		l.Duration.Milliseconds(), l.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert lookup %s: %w", l.ID, err)
	}
	return nil
}

// ListLookups returns the most recent lookups first.
func (s *SQLiteDB) ListLookups(ctx context.Context, opts Filter) ([]models.Lookup, error) {
	query := `SELECT id, status, stage, error, result_count, nearest_km, duration_ms, created_at FROM lookups`
	var args []any

	if opts.Status != nil {
		query += ` WHERE status = ?`
		args = append(args, *opts.Status)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	var out []models.Lookup
	for rows.Next() {
		var (
			l          models.Lookup
			durationMs int64
		)
		if err := rows.Scan(&l.ID, &l.Status, &l.Stage, &l.Error, &l.ResultCount, &l.NearestDistance, &durationMs, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		l.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup rows: %w", err)
	}

	return out, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
