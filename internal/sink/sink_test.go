package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lugondev/solcodec/internal/config"
	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs/raydiumcpmm"
)

func swapRecord() *decoder.Record {
	return &decoder.Record{
		Program:       raydiumcpmm.Name,
		Namespace:     decoder.Events,
		Shape:         "SwapEvent",
		Discriminator: decoder.EventDiscriminator("SwapEvent"),
		Value: &raydiumcpmm.SwapEvent{
			PoolID:      solana.SystemProgramID,
			InputAmount: 1_000,
			BaseInput:   true,
		},
	}
}

func TestRecordToModel(t *testing.T) {
	m, err := RecordToModel(swapRecord(), 4, "line 9")
	if err != nil {
		t.Fatalf("RecordToModel failed: %v", err)
	}
	if _, err := uuid.Parse(m.ID); err != nil {
		t.Errorf("expected a uuid id, got %q", m.ID)
	}
	if m.Discriminator != "40c6cde8260871e2" {
		t.Errorf("unexpected discriminator %s", m.Discriminator)
	}
	if m.Failed() {
		t.Error("expected success")
	}

	var data map[string]any
	if err := json.Unmarshal(m.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data["pool_id"] != solana.SystemProgramID.String() || data["base_input"] != true {
		t.Errorf("unexpected data %v", data)
	}
}

func TestFailureToModel(t *testing.T) {
	cause := &borsh.DecodeError{
		Kind: borsh.KindUnknownDiscriminator,
		Tag:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	m := FailureToModel("pumpfun", decoder.Events, 3, "line 4", cause)
	if !m.Failed() || m.Data != nil {
		t.Errorf("expected a failure without data, got %+v", m)
	}
	if m.Discriminator != "0102030405060708" {
		t.Errorf("expected the offending tag, got %q", m.Discriminator)
	}

	plain := FailureToModel("pumpfun", decoder.Accounts, 0, "", errors.New("bad hex"))
	if plain.Discriminator != "" || plain.Shape != "" {
		t.Errorf("expected no tag or shape, got %+v", plain)
	}
}

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

func TestWriterSinkJSONLines(t *testing.T) {
	ok, err := RecordToModel(swapRecord(), 0, "line 1")
	if err != nil {
		t.Fatal(err)
	}
	failed := FailureToModel(raydiumcpmm.Name, decoder.Events, 1, "line 2", errors.New("truncated"))

	var out closeBuffer
	s := NewWriterSink(&out, FormatJSON)
	if err := s.Write(context.Background(), []*RecordModel{ok, failed}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !out.closed {
		t.Error("expected the writer to be closed")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first["shape"] != "SwapEvent" || first["origin"] != "line 1" {
		t.Errorf("unexpected first line %v", first)
	}
	if !strings.Contains(lines[0], `"data":{"pool_id":`) {
		t.Errorf("expected data to keep field order, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"error":"truncated"`) || strings.Contains(lines[1], `"data"`) {
		t.Errorf("unexpected failure line %s", lines[1])
	}
}

func TestWriterSinkYAML(t *testing.T) {
	ok, err := RecordToModel(swapRecord(), 0, "line 1")
	if err != nil {
		t.Fatal(err)
	}

	var out closeBuffer
	s := NewWriterSink(&out, FormatYAML)
	if err := s.Write(context.Background(), []*RecordModel{ok, ok}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if strings.Count(text, "shape: SwapEvent") != 2 {
		t.Errorf("expected two documents, got:\n%s", text)
	}
	if strings.Contains(text, "{") {
		t.Errorf("expected block style, got:\n%s", text)
	}
	if strings.Index(text, "pool_id:") > strings.Index(text, "input_amount:") {
		t.Errorf("expected JSON field order, got:\n%s", text)
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	var doc struct {
		Data struct {
			InputAmount uint64 `yaml:"input_amount"`
			BaseInput   bool   `yaml:"base_input"`
		} `yaml:"data"`
	}
	if err := dec.Decode(&doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc.Data.InputAmount != 1_000 || !doc.Data.BaseInput {
		t.Errorf("unexpected data %+v", doc.Data)
	}
}

func TestNew(t *testing.T) {
	var stdout bytes.Buffer
	cfg := config.DefaultConfig()

	s, err := New(context.Background(), cfg, &stdout)
	if err != nil {
		t.Fatalf("stdout sink: %v", err)
	}
	m, _ := RecordToModel(swapRecord(), 0, "")
	if err := s.Write(context.Background(), []*RecordModel{m}); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() == 0 {
		t.Error("expected stdout output")
	}

	path := filepath.Join(t.TempDir(), "out.jsonl")
	cfg.Sink.Type = "file"
	cfg.Sink.Path = path
	s, err = New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("file sink: %v", err)
	}
	if err := s.Write(context.Background(), []*RecordModel{m}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(path); err != nil || !bytes.Contains(data, []byte("SwapEvent")) {
		t.Errorf("expected the record in %s, got %q, %v", path, data, err)
	}

	cfg.Sink.Type = "kafka"
	if _, err := New(context.Background(), cfg, nil); !errors.Is(err, apperrors.ErrConfigInvalid) {
		t.Errorf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	rec := &RecordModel{ID: "a"}
	if err := m.Write(context.Background(), []*RecordModel{rec}); err != nil {
		t.Fatal(err)
	}
	if got := m.Records(); len(got) != 1 || got[0] != rec {
		t.Errorf("unexpected records %v", got)
	}
	_ = m.Close(context.Background())
	if err := m.Write(context.Background(), nil); err == nil {
		t.Error("expected write after close to fail")
	}
}
