// Package sink writes decoded records to stdout, files, Postgres or MongoDB.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lugondev/solcodec/internal/config"
	apperrors "github.com/lugondev/solcodec/internal/errors"
)

// Sink receives batches of record models.
type Sink interface {
	Write(ctx context.Context, records []*RecordModel) error
	Close(ctx context.Context) error
}

// Factory builds a database-backed sink from the full configuration.
type Factory func(ctx context.Context, cfg *config.Config) (Sink, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{}
)

// RegisterFactory makes a sink type available to New. The postgres and mongo
// packages register themselves on import.
func RegisterFactory(sinkType string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[sinkType] = f
}

// New builds the sink selected by cfg.Sink.Type. stdout is used for the
// stdout type.
func New(ctx context.Context, cfg *config.Config, stdout io.Writer) (Sink, error) {
	format := Format(cfg.Output.Format)

	switch cfg.Sink.Type {
	case "stdout":
		return NewWriterSink(nopCloser{stdout}, format), nil
	case "file":
		f, err := os.OpenFile(cfg.Sink.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, apperrors.SinkFailed("file", err)
		}
		return NewWriterSink(f, format), nil
	}

	factoriesMu.RLock()
	f, ok := factories[cfg.Sink.Type]
	factoriesMu.RUnlock()
	if !ok {
		return nil, apperrors.ConfigInvalid("sink.type", cfg.Sink.Type)
	}
	s, err := f(ctx, cfg)
	if err != nil {
		return nil, apperrors.SinkFailed(cfg.Sink.Type, err)
	}
	return s, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Memory keeps every written record. It is used by tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	records []*RecordModel
	closed  bool
}

func (m *Memory) Write(_ context.Context, records []*RecordModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("memory sink closed")
	}
	m.records = append(m.records, records...)
	return nil
}

func (m *Memory) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Records returns a copy of the written records.
func (m *Memory) Records() []*RecordModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*RecordModel(nil), m.records...)
}
