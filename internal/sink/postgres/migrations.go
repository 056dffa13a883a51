package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Migration struct {
	Version     int
	Description string
	Up          string
	Down        string
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Decoded records",
		Up: `
		CREATE TABLE IF NOT EXISTS decoded_records (
			id UUID PRIMARY KEY,
			payload_index INT NOT NULL,
			program TEXT NOT NULL,
			namespace TEXT NOT NULL,
			shape TEXT,
			discriminator TEXT,
			origin TEXT,
			data JSONB,
			error TEXT,
			decoded_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_decoded_records_program_shape ON decoded_records(program, shape);
		CREATE INDEX IF NOT EXISTS idx_decoded_records_decoded_at ON decoded_records(decoded_at DESC);
		`,
		Down: `
		DROP TABLE IF EXISTS decoded_records;
		`,
	},
	{
		Version:     2,
		Description: "Failed record lookup",
		Up: `
		CREATE INDEX IF NOT EXISTS idx_decoded_records_failed ON decoded_records(program) WHERE error IS NOT NULL;
		`,
		Down: `
		DROP INDEX IF EXISTS idx_decoded_records_failed;
		`,
	},
}

// execer is the subset of pgxpool.Pool and pgx.Tx the migrator needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Migrator struct {
	db     execer
	logger *slog.Logger
}

func NewMigrator(db execer, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) createMigrationsTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err := m.db.Exec(ctx, query)
	return err
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	var version int
	err := m.db.QueryRow(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// pending returns the migrations above version, in order.
func pending(version int) []Migration {
	var out []Migration
	for _, migration := range migrations {
		if migration.Version > version {
			out = append(out, migration)
		}
	}
	return out
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := m.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	todo := pending(currentVersion)
	if len(todo) == 0 {
		return nil
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, migration := range todo {
		if _, err := tx.Exec(ctx, migration.Up); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}

		if _, err := tx.Exec(ctx,
			"INSERT INTO schema_migrations (version, description) VALUES ($1, $2)",
			migration.Version, migration.Description,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}

	m.logger.Info("applied migrations", "count", len(todo), "version", todo[len(todo)-1].Version)
	return nil
}
