package mongo

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lugondev/solcodec/internal/sink"
)

func TestToDocument(t *testing.T) {
	m := &sink.RecordModel{
		ID:        "id-1",
		Index:     2,
		Program:   "raydium_cpmm",
		Namespace: "events",
		Shape:     "SwapEvent",
		Data:      json.RawMessage(`{"pool_id":"11111111111111111111111111111111","input_amount":5,"base_input":true}`),
		DecodedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	doc, err := toDocument(m)
	if err != nil {
		t.Fatalf("toDocument failed: %v", err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("bson.Marshal failed: %v", err)
	}

	var back bson.M
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back["_id"] != "id-1" || back["shape"] != "SwapEvent" {
		t.Errorf("unexpected top-level fields %v", back)
	}
	data, ok := back["data"].(bson.M)
	if !ok {
		t.Fatalf("expected data subdocument, got %T", back["data"])
	}
	if data["base_input"] != true {
		t.Errorf("expected base_input true, got %v", data["base_input"])
	}
	if n, ok := data["input_amount"].(int32); !ok || n != 5 {
		t.Errorf("expected input_amount int32 5, got %T %v", data["input_amount"], data["input_amount"])
	}
	if _, ok := back["error"]; ok {
		t.Error("expected empty error to be omitted")
	}
}

func TestToDocumentFailure(t *testing.T) {
	m := &sink.RecordModel{ID: "id-2", Error: "unknown discriminator 0000000000000000"}
	doc, err := toDocument(m)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Data != nil {
		t.Errorf("expected no data, got %v", doc.Data)
	}
}
