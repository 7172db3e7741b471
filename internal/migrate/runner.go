// Package migrate applies directories of SQL files exactly once each,
// tracking applied filenames in a table. The same engine drives schema
// migrations and data seeds.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes pending .sql files from one directory, serialized one file
// at a time, each inside its own transaction. A failed file aborts the whole
// run.
type Runner struct {
	db     *sql.DB
	dir    string
	table  string
	logger *zap.Logger
}

// FileStatus reports one file's tracking state.
type FileStatus struct {
	Filename   string
	ExecutedAt *time.Time
}

// NewMigrationRunner tracks applied files in the migrations table.
func NewMigrationRunner(db *sql.DB, dir string, logger *zap.Logger) *Runner {
	return &Runner{db: db, dir: dir, table: "migrations", logger: logger}
}

// NewSeedRunner tracks applied files in the seeds table.
func NewSeedRunner(db *sql.DB, dir string, logger *zap.Logger) *Runner {
	return &Runner{db: db, dir: dir, table: "seeds", logger: logger}
}

func (r *Runner) ensureTable(ctx context.Context) error {
	// r.table is one of two compile-time constants, never user input.
	q := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, r.table)
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to create %s table: %w", r.table, err)
	}
	return nil
}

func (r *Runner) appliedFiles(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT filename FROM %s ORDER BY executed_at", r.table))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applied files: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, err
		}
		out = append(out, filename)
	}
	return out, rows.Err()
}

func (r *Runner) availableFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		r.logger.Warn("sql directory not found", zap.String("dir", r.dir))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.dir, err)
	}

	out := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		out = append(out, entry.Name())
	}
	sort.Strings(out)
	return out, nil
}

func (r *Runner) applyFile(ctx context.Context, filename string) error {
	content, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (filename) VALUES ($1)", r.table), filename); err != nil {
		return fmt.Errorf("failed to record %s: %w", filename, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("applied", zap.String("table", r.table), zap.String("file", filename))
	return nil
}

// Run applies every pending file in filename order and returns how many ran.
// A second run with no new files executes nothing.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}

	applied, err := r.appliedFiles(ctx)
	if err != nil {
		return 0, err
	}
	available, err := r.availableFiles()
	if err != nil {
		return 0, err
	}

	appliedSet := make(map[string]struct{}, len(applied))
	for _, f := range applied {
		appliedSet[f] = struct{}{}
	}

	count := 0
	for _, filename := range available {
		if _, ok := appliedSet[filename]; ok {
			continue
		}
		if err := r.applyFile(ctx, filename); err != nil {
			return count, err
		}
		count++
	}

	if count == 0 {
		r.logger.Info("nothing pending", zap.String("table", r.table))
	}
	return count, nil
}

// RunForce clears the tracking table and reapplies every file. Used for
// reseeding development data.
func (r *Runner) RunForce(ctx context.Context) (int, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", r.table)); err != nil {
		return 0, fmt.Errorf("failed to clear %s table: %w", r.table, err)
	}
	return r.Run(ctx)
}

// RollbackLast removes the newest tracking row only. It does NOT reverse
// schema changes; those must be undone by hand.
func (r *Runner) RollbackLast(ctx context.Context) (string, error) {
	var last string
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT filename FROM %s ORDER BY executed_at DESC LIMIT 1", r.table)).Scan(&last)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if _, err := r.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE filename = $1", r.table), last); err != nil {
		return "", err
	}

	r.logger.Warn("rolled back tracking row; schema changes must be reversed manually",
		zap.String("file", last))
	return last, nil
}

// Status reports every available file with its applied timestamp, if any.
func (r *Runner) Status(ctx context.Context) ([]FileStatus, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT filename, executed_at FROM %s ORDER BY executed_at", r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	executed := map[string]time.Time{}
	for rows.Next() {
		var filename string
		var at time.Time
		if err := rows.Scan(&filename, &at); err != nil {
			return nil, err
		}
		executed[filename] = at
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	available, err := r.availableFiles()
	if err != nil {
		return nil, err
	}

	out := make([]FileStatus, 0, len(available))
	for _, filename := range available {
		status := FileStatus{Filename: filename}
		if at, ok := executed[filename]; ok {
			t := at
			status.ExecutedAt = &t
		}
		out = append(out, status)
	}
	return out, nil
}
