package pipeline

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/internal/sink"
	"github.com/lugondev/solcodec/internal/source"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/programs"
	"github.com/lugondev/solcodec/pkg/programs/raydiumcpmm"
)

func encodeSwap(t *testing.T, amount uint64) []byte {
	t.Helper()
	table, err := programs.Default().Table(raydiumcpmm.Name, decoder.Events)
	if err != nil {
		t.Fatal(err)
	}
	data, err := table.Encode(&raydiumcpmm.SwapEvent{PoolID: solana.SystemProgramID, InputAmount: amount})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestRunMixedPayloads(t *testing.T) {
	swap := encodeSwap(t, 42)
	unknown := append(bytes.Repeat([]byte{0xff}, 8), swap[8:]...)

	lines := []string{
		hex.EncodeToString(swap),
		hex.EncodeToString(unknown),
		hex.EncodeToString(swap[:20]),
		"not hex",
		"accounts:" + hex.EncodeToString(swap),
		hex.EncodeToString(encodeSwap(t, 43)),
	}
	src := source.NewLineSource(strings.NewReader(strings.Join(lines, "\n")), source.EncodingHex, raydiumcpmm.Name, decoder.Events)

	var logs bytes.Buffer
	mem := &sink.Memory{}
	p := NewPipelineBuilder().
		Source(src).
		Registry(programs.Default()).
		Sink(mem).
		Logger(newLogger(&logs)).
		Build()
	p.BatchSize = 4

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Decoded != 2 || summary.Failed != 4 || summary.Total() != 6 {
		t.Errorf("unexpected summary %+v", summary)
	}

	records := mem.Records()
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Index != i {
			t.Errorf("record %d has index %d", i, r.Index)
		}
	}

	tests := []struct {
		name   string
		rec    *sink.RecordModel
		failed bool
		want   string
	}{
		{"decoded", records[0], false, ""},
		{"unknown tag", records[1], true, "unknown discriminator"},
		{"truncated", records[2], true, "truncated"},
		{"bad framing", records[3], true, apperrors.ErrCodeInvalidInput},
		{"no account table", records[4], true, apperrors.ErrCodeUnknownNamespace},
		{"decoded after failures", records[5], false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rec.Failed() != tt.failed {
				t.Fatalf("expected failed=%v, got %+v", tt.failed, tt.rec)
			}
			if tt.failed && !strings.Contains(tt.rec.Error, tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, tt.rec.Error)
			}
		})
	}

	var data struct {
		InputAmount uint64 `json:"input_amount"`
	}
	if err := json.Unmarshal(records[5].Data, &data); err != nil || data.InputAmount != 43 {
		t.Errorf("expected input_amount 43, got %d (%v)", data.InputAmount, err)
	}
	if records[2].Shape != "SwapEvent" {
		t.Errorf("expected the truncated record to name its shape, got %q", records[2].Shape)
	}

	warnings := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %d:\n%s", len(warnings), logs.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(warnings[1]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["kind"] != "truncated" || entry["shape"] != "SwapEvent" || entry["field"] == nil {
		t.Errorf("expected shape, kind and field attributes, got %v", entry)
	}
}

func TestRunKeepsOrderAcrossBatches(t *testing.T) {
	var lines []string
	for i := 0; i < 25; i++ {
		lines = append(lines, hex.EncodeToString(encodeSwap(t, uint64(i))))
	}
	src := source.NewLineSource(strings.NewReader(strings.Join(lines, "\n")), source.EncodingHex, raydiumcpmm.Name, decoder.Events)
	mem := &sink.Memory{}

	p := &Pipeline{Source: src, Registry: programs.Default(), Sink: mem, Workers: 3, BatchSize: 7}
	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Decoded != 25 {
		t.Errorf("expected 25 decoded, got %+v", summary)
	}
	for i, r := range mem.Records() {
		want := fmt.Sprintf(`"input_amount":%d,`, i)
		if !strings.Contains(string(r.Data), want) {
			t.Errorf("record %d: expected %s in %s", i, want, r.Data)
		}
	}
}

type failingSink struct{}

func (failingSink) Write(context.Context, []*sink.RecordModel) error { return errors.New("disk full") }
func (failingSink) Close(context.Context) error                      { return nil }

func TestRunSinkFailure(t *testing.T) {
	src := source.NewLineSource(strings.NewReader(hex.EncodeToString(encodeSwap(t, 1))), source.EncodingHex, raydiumcpmm.Name, decoder.Events)
	p := &Pipeline{Source: src, Registry: programs.Default(), Sink: failingSink{}}

	if _, err := p.Run(context.Background()); !errors.Is(err, apperrors.ErrSinkFailed) {
		t.Errorf("expected SINK_FAILED, got %v", err)
	}
}

type brokenSource struct{}

func (brokenSource) Next(context.Context) (source.Payload, error) {
	return source.Payload{}, apperrors.SourceFailed("rpc", errors.New("timeout"))
}

func TestRunSourceFailure(t *testing.T) {
	p := &Pipeline{Source: brokenSource{}, Registry: programs.Default(), Sink: &sink.Memory{}}
	if _, err := p.Run(context.Background()); !errors.Is(err, apperrors.ErrSourceFailed) {
		t.Errorf("expected SOURCE_FAILED, got %v", err)
	}
}

func TestRunRequiresCollaborators(t *testing.T) {
	if _, err := (&Pipeline{}).Run(context.Background()); err == nil {
		t.Error("expected an error without collaborators")
	}
}
