package postgres

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lugondev/solcodec/internal/sink"
)

func TestMigrationsOrdered(t *testing.T) {
	for i, m := range migrations {
		if m.Version != i+1 {
			t.Errorf("migration %d has version %d", i, m.Version)
		}
		if strings.TrimSpace(m.Up) == "" || strings.TrimSpace(m.Down) == "" {
			t.Errorf("migration %d is missing a direction", m.Version)
		}
	}
	if !strings.Contains(migrations[0].Up, "CREATE TABLE IF NOT EXISTS decoded_records") {
		t.Error("expected the first migration to create decoded_records idempotently")
	}
}

func TestPending(t *testing.T) {
	tests := []struct {
		version int
		want    int
	}{
		{0, len(migrations)},
		{1, len(migrations) - 1},
		{len(migrations), 0},
	}
	for _, tt := range tests {
		if got := len(pending(tt.version)); got != tt.want {
			t.Errorf("pending(%d) = %d migrations; want %d", tt.version, got, tt.want)
		}
	}
}

func TestInsertArgs(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ok := &sink.RecordModel{
		ID:            "0b6f1c36-8ac4-4b4e-9d0e-0f1c2a3b4c5d",
		Index:         7,
		Program:       "pumpfun",
		Namespace:     "events",
		Shape:         "TradeEvent",
		Discriminator: "bddb7fd34ee661ee",
		Data:          json.RawMessage(`{"sol_amount":1}`),
		DecodedAt:     at,
	}

	args := insertArgs(ok)
	if len(args) != strings.Count(insertQuery, "$") {
		t.Fatalf("expected %d args, got %d", strings.Count(insertQuery, "$"), len(args))
	}
	if args[1] != 7 || args[2] != "pumpfun" {
		t.Errorf("unexpected leading args %v", args[:3])
	}
	if shape := args[4].(*string); shape == nil || *shape != "TradeEvent" {
		t.Errorf("expected shape TradeEvent, got %v", args[4])
	}
	if args[6].(*string) != nil {
		t.Error("expected empty origin to be NULL")
	}
	if args[7] != `{"sol_amount":1}` {
		t.Errorf("expected JSON text, got %v", args[7])
	}
	if args[8].(*string) != nil {
		t.Error("expected no error column")
	}

	failed := &sink.RecordModel{ID: ok.ID, Program: "pumpfun", Namespace: "events", Error: "truncated"}
	args = insertArgs(failed)
	if args[7] != nil {
		t.Errorf("expected NULL data, got %v", args[7])
	}
	if e := args[8].(*string); e == nil || *e != "truncated" {
		t.Errorf("expected error text, got %v", args[8])
	}
}

func TestQueueRecords(t *testing.T) {
	batch := queueRecords([]*sink.RecordModel{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	if batch.Len() != 3 {
		t.Errorf("expected 3 queued inserts, got %d", batch.Len())
	}
}
