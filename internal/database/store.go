package database

import (
	"database/sql"
	"fmt"
)

// Store wraps the database handle together with the process-lifetime
// read cache. Repositories go through it for every query so that each
// write can clear the cache wholesale.
type Store struct {
	DB    *sql.DB
	Cache *QueryCache
}

// Open connects to Postgres. Idle pooling is disabled so every
// operation checks out a fresh connection and returns it when done;
// no transaction ever spans two calls.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxIdleConns(0)
	return db, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db, Cache: NewQueryCache()}
}

func (s *Store) Query(query string, args ...any) (*sql.Rows, error) {
	return s.DB.Query(query, args...)
}

func (s *Store) QueryRow(query string, args ...any) *sql.Row {
	return s.DB.QueryRow(query, args...)
}

// Exec runs a single statement. Writes commit immediately; callers
// that mutate data must follow up with InvalidateReads.
func (s *Store) Exec(query string, args ...any) (sql.Result, error) {
	return s.DB.Exec(query, args...)
}

// ExecBatch runs one prepared statement over many argument rows in a
// single transaction, committing once at the end.
func (s *Store) ExecBatch(query string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	for i, args := range rows {
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("batch row %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// InvalidateReads discards every cached read result. Called after any
// mutating statement; staleness is never tolerated.
func (s *Store) InvalidateReads() {
	s.Cache.Clear()
}
