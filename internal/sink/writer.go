package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/lugondev/solcodec/internal/errors"
)

// Format selects the WriterSink encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// WriterSink writes one JSON object per line, or one YAML document per
// record, to an io.WriteCloser.
type WriterSink struct {
	mu     sync.Mutex
	out    io.WriteCloser
	writer *bufio.Writer
	format Format
	yaml   *yaml.Encoder
}

func NewWriterSink(out io.WriteCloser, format Format) *WriterSink {
	s := &WriterSink{
		out:    out,
		writer: bufio.NewWriter(out),
		format: format,
	}
	if format == FormatYAML {
		s.yaml = yaml.NewEncoder(s.writer)
		s.yaml.SetIndent(2)
	}
	return s
}

// Write encodes records in order and flushes.
func (s *WriterSink) Write(_ context.Context, records []*RecordModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		if err := s.encode(rec); err != nil {
			return apperrors.SinkFailed("writer", err)
		}
	}
	if err := s.writer.Flush(); err != nil {
		return apperrors.SinkFailed("writer", err)
	}
	return nil
}

func (s *WriterSink) encode(rec *RecordModel) error {
	if s.yaml != nil {
		return s.yaml.Encode(rec)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record %d: %w", rec.Index, err)
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.WriteByte('\n')
}

// Close flushes buffered output and closes the underlying writer.
func (s *WriterSink) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.yaml != nil {
		if err := s.yaml.Close(); err != nil {
			return apperrors.SinkFailed("writer", err)
		}
	}
	if err := s.writer.Flush(); err != nil {
		return apperrors.SinkFailed("writer", err)
	}
	if err := s.out.Close(); err != nil {
		return apperrors.SinkFailed("writer", err)
	}
	return nil
}
