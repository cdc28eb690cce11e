package database

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	createAddressTableSQLite = `
CREATE TABLE IF NOT EXISTS Address (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    street TEXT,
    city TEXT,
    state TEXT,
    zip_code TEXT
)`

	createEmployeeTableSQLite = `
CREATE TABLE IF NOT EXISTS Employee (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    address_id INTEGER,
    name TEXT,
    emp_type TEXT,
    salary REAL,
    hourly_rate REAL,
    hours_worked REAL,
    base_salary REAL,
    commission_rate REAL,
    sales REAL,
    FOREIGN KEY(address_id) REFERENCES Address(id)
)`

	createAddressTablePostgres = `
CREATE TABLE IF NOT EXISTS Address (
    id SERIAL PRIMARY KEY,
    street TEXT,
    city TEXT,
    state TEXT,
    zip_code TEXT
)`

	createEmployeeTablePostgres = `
CREATE TABLE IF NOT EXISTS Employee (
    id SERIAL PRIMARY KEY,
    address_id INTEGER REFERENCES Address(id),
    name TEXT,
    emp_type TEXT,
    salary DOUBLE PRECISION,
    hourly_rate DOUBLE PRECISION,
    hours_worked DOUBLE PRECISION,
    base_salary DOUBLE PRECISION,
    commission_rate DOUBLE PRECISION,
    sales DOUBLE PRECISION
)`
)

// Schema ensures the Address and Employee tables exist.
type Schema struct {
	source *Source
}

func NewSchema(source *Source) *Schema {
	return &Schema{source: source}
}

// EnsureSchema creates both tables when absent. Calling it again is a no-op.
func (s *Schema) EnsureSchema(ctx context.Context) error {
	stmts := []string{createAddressTableSQLite, createEmployeeTableSQLite}
	if s.source.Dialect() == DialectPostgres {
		stmts = []string{createAddressTablePostgres, createEmployeeTablePostgres}
	}

	return s.source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}
		return nil
	})
}
