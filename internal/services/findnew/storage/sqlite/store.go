// Package sqlite provides a SQLite-backed distance cache for the duplicate
// finder.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/pokesprite/pokesprite/internal/platform/storage/sqlitemigrate"
	"github.com/pokesprite/pokesprite/internal/services/findnew/storage"
	"github.com/pokesprite/pokesprite/internal/services/findnew/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists comparison distances in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.DistanceStore = (*Store)(nil)

func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

// Open opens a SQLite distance store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetDistance returns the stored distance for key or storage.ErrNotFound.
func (s *Store) GetDistance(ctx context.Context, key storage.PairKey) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var distance float64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT distance FROM distances
		 WHERE tool = ?
		   AND new_path = ? AND new_size = ? AND new_mtime = ?
		   AND old_path = ? AND old_size = ? AND old_mtime = ?`,
		key.Tool,
		key.New.Path, key.New.Size, toNanos(key.New.ModTime),
		key.Old.Path, key.Old.Size, toNanos(key.Old.ModTime),
	).Scan(&distance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get distance: %w", err)
	}
	return distance, nil
}

// PutDistance records distance for key, replacing any previous value.
func (s *Store) PutDistance(ctx context.Context, key storage.PairKey, distance float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key.New.Path) == "" || strings.TrimSpace(key.Old.Path) == "" {
		return fmt.Errorf("both paths are required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO distances (
		   tool,
		   new_path, new_size, new_mtime,
		   old_path, old_size, old_mtime,
		   distance, recorded_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key.Tool,
		key.New.Path, key.New.Size, toNanos(key.New.ModTime),
		key.Old.Path, key.Old.Size, toNanos(key.Old.ModTime),
		distance,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put distance: %w", err)
	}
	return nil
}
