// Package postgres stores decoded records in a decoded_records table.
// Importing it registers the "postgres" sink type.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lugondev/solcodec/internal/common"
	"github.com/lugondev/solcodec/internal/config"
	"github.com/lugondev/solcodec/internal/sink"
)

func init() {
	sink.RegisterFactory("postgres", func(ctx context.Context, cfg *config.Config) (sink.Sink, error) {
		return NewSink(ctx, &cfg.Postgres, common.NewLogger(cfg.Log))
	})
}

const insertQuery = `
	INSERT INTO decoded_records (id, payload_index, program, namespace, shape, discriminator, origin, data, error, decoded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO NOTHING
`

type Sink struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSink(ctx context.Context, cfg *config.PostgresConfig, logger *slog.Logger) (*Sink, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := NewMigrator(pool, logger).Up(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Sink{pool: pool, logger: logger}, nil
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func insertArgs(m *sink.RecordModel) []any {
	var data any
	if len(m.Data) > 0 {
		data = string(m.Data)
	}
	return []any{
		m.ID, m.Index, m.Program, m.Namespace,
		nullable(m.Shape), nullable(m.Discriminator), nullable(m.Origin),
		data, nullable(m.Error), m.DecodedAt,
	}
}

func queueRecords(records []*sink.RecordModel) *pgx.Batch {
	batch := &pgx.Batch{}
	for _, m := range records {
		batch.Queue(insertQuery, insertArgs(m)...)
	}
	return batch
}

// Write inserts records in one batch round trip.
func (s *Sink) Write(ctx context.Context, records []*sink.RecordModel) error {
	if len(records) == 0 {
		return nil
	}

	br := s.pool.SendBatch(ctx, queueRecords(records))
	defer br.Close()

	for i := range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", records[i].Index, err)
		}
	}
	return br.Close()
}

func (s *Sink) Close(context.Context) error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
