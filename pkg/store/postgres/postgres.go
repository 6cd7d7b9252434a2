// Package postgres implements the entity store on PostgreSQL via pgx.
// Schema changes ship as embedded SQL migrations tracked in a
// schema_migrations table.
package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store provides entity store operations backed by PostgreSQL
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL-backed store
func NewStore(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

// RunMigrations executes all pending SQL migration files in order.
// Applied migrations are tracked in a schema_migrations table.
func (s *Store) RunMigrations(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	rows, err := s.pool.Query(ctx, `SELECT filename FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration filename: %w", err)
		}
		applied[filename] = true
	}
	rows.Close()

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, filename := range sqlFiles {
		if applied[filename] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, "migrations/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", filename, err)
		}

		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for %s: %w", filename, err)
		}

		if _, err := tx.Exec(ctx, string(content)); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}

		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (filename) VALUES ($1)`, filename); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration %s: %w", filename, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", filename, err)
		}
	}

	return nil
}

// SeedIfEmpty loads the seed data when the store holds no events and no
// volunteers
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM event) + (SELECT COUNT(*) FROM volunteer)
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count existing records: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range model.SeedEvents {
		e := model.SeedEvents[i]
		if err := s.CreateEvent(ctx, &e); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}
	for i := range model.SeedVolunteers {
		v := model.SeedVolunteers[i]
		model.NormalizeVolunteer(&v)
		if err := s.SaveVolunteer(ctx, &v); err != nil {
			return fmt.Errorf("failed to seed volunteer %s: %w", v.ID, err)
		}
	}
	return nil
}

var _ store.Store = (*Store)(nil)
