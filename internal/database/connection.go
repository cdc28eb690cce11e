package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect selects DDL flavour for the supported drivers.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// Config describes how to reach the store.
type Config struct {
	Driver string
	DSN    string
}

// Source opens a fresh database handle for every operation and closes it
// before the operation returns. No connection is held between operations.
type Source struct {
	dialect Dialect
	dsn     string
}

// NewSource validates the driver and returns a Source for it.
func NewSource(cfg Config) (*Source, error) {
	var dialect Dialect
	switch cfg.Driver {
	case "", "sqlite", "sqlite3":
		dialect = DialectSQLite
	case "postgres", "postgresql", "pq":
		dialect = DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required for driver %q", dialect)
	}
	return &Source{dialect: dialect, dsn: cfg.DSN}, nil
}

func (s *Source) Dialect() Dialect {
	return s.dialect
}

// Do opens a connection, runs fn with it and releases it on every path.
// The error from fn takes precedence over the close error.
func (s *Source) Do(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) (err error) {
	db, err := sql.Open(string(s.dialect), s.dsn)
	if err != nil {
		return fmt.Errorf("open %s database: %w", s.dialect, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s database: %w", s.dialect, cerr)
		}
	}()
	// one physical connection per operation
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s database: %w", s.dialect, err)
	}
	return fn(ctx, db)
}
