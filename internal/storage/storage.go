package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/money-tracker/internal/config"
	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

// ErrNotFound is returned by update and delete operations on missing rows.
var ErrNotFound = sqlconfig.ErrNotFound

type Storage struct {
	DB *sql.DB
	db bob.DB
	*Reader
}

// NewStorage opens the SQLite database and brings its schema up to date.
func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.SQLiteDBPath)
}

// Open opens (creating if needed) the database at path and runs migrations.
func Open(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection serialises writers and keeps the operator's
	// transactions from tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:     db,
		db:     bdb,
		Reader: NewReader(bdb),
	}, nil
}

// Write begins a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
