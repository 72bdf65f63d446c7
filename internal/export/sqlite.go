// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store writes roster tables into a SQLite database file.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the SQLite database at path, creating the
// parent directory if needed.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for queries against written tables.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WriteTables replaces each table's contents in a single transaction. Every
// column is TEXT; missing cells are stored as NULL.
func (s *Store) WriteTables(ctx context.Context, tables ...Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		if err := writeTable(ctx, tx, t); err != nil {
			return fmt.Errorf("writing table %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func writeTable(ctx context.Context, tx *sql.Tx, t Table) error {
	name := quoteIdent(t.Name)

	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c) + " TEXT"
	}

	statements := []string{
		`DROP TABLE IF EXISTS ` + name,
		`CREATE TABLE ` + name + ` (row_id INTEGER PRIMARY KEY, ` + strings.Join(cols, ", ") + `)`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO `+name+` (row_id, `+strings.Join(names, ", ")+`) VALUES (?, `+placeholders+`)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns)+1)
	for i, row := range t.Rows {
		args[0] = i
		for j, cell := range row {
			if cell == nil {
				args[j+1] = nil
			} else {
				args[j+1] = *cell
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
