package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresDB opens a connection pool and verifies it with a ping.
// The pool is the only shared mutable resource in the process; it is created
// once at startup and passed into repositories.
func NewPostgresDB(dsn string, maxConns, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	db.SetConnMaxIdleTime(30 * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the pool. Safe to call with nil.
func Close(db *sql.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
