package decoder

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
)

func TestTableDispatch(t *testing.T) {
	table := testEvents()

	data := mustEncode(t, table, ping{Seq: 7, Note: "hi"})
	want := "af126b950b741c44" + "0700000000000000" + "02000000" + "6869"
	if got := hex.EncodeToString(data); got != want {
		t.Fatalf("unexpected encoding\nexpected %s\n     got %s", want, got)
	}

	rec, err := table.Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Program != "test" || rec.Namespace != Events || rec.Shape != "Ping" {
		t.Errorf("unexpected record header %+v", rec)
	}
	if rec.Discriminator != EventDiscriminator("Ping") {
		t.Errorf("unexpected discriminator %s", rec.Discriminator)
	}
	got, ok := rec.Value.(*ping)
	if !ok {
		t.Fatalf("expected *ping, got %T", rec.Value)
	}
	if *got != (ping{Seq: 7, Note: "hi"}) {
		t.Errorf("unexpected value %+v", got)
	}

	// the record owns its data
	data[8] = 0xff
	if got.Seq != 7 {
		t.Error("decoded value aliases the input buffer")
	}
}

func TestTableDispatchShortBuffer(t *testing.T) {
	table := testEvents()
	data := mustEncode(t, table, &ping{Seq: 1, Note: "abc"})

	for n := 0; n < len(data); n++ {
		_, err := table.Dispatch(data[:n])
		if !errors.Is(err, borsh.ErrTruncated) {
			t.Fatalf("length %d: expected truncated, got %v", n, err)
		}
		var de *borsh.DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("length %d: expected *borsh.DecodeError, got %T", n, err)
		}
		if n < DiscriminatorSize {
			if de.Field != "discriminator" {
				t.Errorf("length %d: expected discriminator field, got %q", n, de.Field)
			}
		} else if de.Shape != "Ping" {
			t.Errorf("length %d: expected shape Ping, got %q", n, de.Shape)
		}
	}
}

func TestTableDispatchUnknownTag(t *testing.T) {
	table := testEvents()
	tag := EventDiscriminator("Unregistered")

	// The payload after the tag is not valid for any shape; it must not be read.
	data := append(tag.Bytes(), 0xff, 0xff, 0xff)
	_, err := table.Dispatch(data)
	if !errors.Is(err, borsh.ErrUnknownDiscriminator) {
		t.Fatalf("expected unknown discriminator, got %v", err)
	}
	var de *borsh.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *borsh.DecodeError, got %T", err)
	}
	if !bytes.Equal(de.Tag, tag.Bytes()) {
		t.Errorf("expected tag %x, got %x", tag.Bytes(), de.Tag)
	}
	if de.Shape != "" {
		t.Errorf("expected no shape, got %q", de.Shape)
	}
}

func TestTableMalformedField(t *testing.T) {
	table := testEvents()
	tag := EventDiscriminator("Pong")

	_, err := table.Dispatch(append(tag.Bytes(), 2))
	if !errors.Is(err, borsh.ErrMalformedField) {
		t.Fatalf("expected malformed field, got %v", err)
	}
	var de *borsh.DecodeError
	errors.As(err, &de)
	if de.Shape != "Pong" || de.Field != "ok" {
		t.Errorf("unexpected context shape=%q field=%q", de.Shape, de.Field)
	}
}

func TestTableStrict(t *testing.T) {
	table := testEvents()
	data := append(mustEncode(t, table, pong{Ok: true}), 0, 0)

	if _, err := table.Dispatch(data); err != nil {
		t.Fatalf("lenient dispatch should accept trailing bytes: %v", err)
	}

	_, err := table.DispatchStrict(data)
	if !errors.Is(err, borsh.ErrMalformedField) {
		t.Fatalf("expected malformed field, got %v", err)
	}
	var de *borsh.DecodeError
	errors.As(err, &de)
	if de.Field != TrailingField {
		t.Errorf("expected field %q, got %q", TrailingField, de.Field)
	}

	if _, err := table.Strict().Dispatch(data[:len(data)-2]); err != nil {
		t.Errorf("strict dispatch of exact record failed: %v", err)
	}
}

func TestTableCollisionKeepsFirst(t *testing.T) {
	tag := EventDiscriminator("LpChangeEvent")
	table := NewTable("clmm", Events,
		NewShape[ping]("LpChangeEvent", tag),
		NewShape[pong]("SwapEvent", tag),
	)

	if table.Len() != 1 {
		t.Fatalf("expected 1 shape, got %d", table.Len())
	}
	collisions := table.Collisions()
	if len(collisions) != 1 {
		t.Fatalf("expected 1 collision, got %d", len(collisions))
	}
	want := Collision{Discriminator: tag, Kept: "LpChangeEvent", Dropped: "SwapEvent"}
	if collisions[0] != want {
		t.Errorf("expected %+v, got %+v", want, collisions[0])
	}

	var dup *DuplicateDiscriminatorError
	if err := table.Validate(); !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateDiscriminatorError, got %v", err)
	}
	if dup.Program != "clmm" || dup.Namespace != Events {
		t.Errorf("unexpected error context %+v", dup)
	}

	rec, err := table.Dispatch(mustEncode(t, table, ping{Seq: 3}))
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Shape != "LpChangeEvent" {
		t.Errorf("expected first-registered shape, got %s", rec.Shape)
	}
	if _, ok := table.ShapeByName("SwapEvent"); ok {
		t.Error("dropped shape should not be reachable by name")
	}
}

func TestMustTablePanicsOnCollision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tag := EventDiscriminator("Ping")
	MustTable("test", Events, NewShape[ping]("A", tag), NewShape[pong]("B", tag))
}

func TestTableLookup(t *testing.T) {
	table := testEvents()

	shape, ok := table.Lookup(EventDiscriminator("Pong"))
	if !ok {
		t.Fatal("expected Pong to be found")
	}
	if shape.Name() != "Pong" || shape.Type() != reflect.TypeFor[pong]() {
		t.Errorf("unexpected shape %s %v", shape.Name(), shape.Type())
	}
	if _, ok := shape.New().(*pong); !ok {
		t.Errorf("expected New to return *pong, got %T", shape.New())
	}

	if _, ok := table.Lookup(Discriminator{}); ok {
		t.Error("zero tag should not be found")
	}
	if table.Len() != 2 {
		t.Errorf("lookup changed the table: len %d", table.Len())
	}

	names := []string{}
	for _, s := range table.Shapes() {
		names = append(names, s.Name())
	}
	if !reflect.DeepEqual(names, []string{"Ping", "Pong"}) {
		t.Errorf("unexpected shape order %v", names)
	}
}

func TestTableEncode(t *testing.T) {
	table := testEvents()

	byValue, err := table.Encode(pong{Ok: true})
	if err != nil {
		t.Fatalf("encode value: %v", err)
	}
	byPointer, err := table.Encode(&pong{Ok: true})
	if err != nil {
		t.Fatalf("encode pointer: %v", err)
	}
	if !bytes.Equal(byValue, byPointer) {
		t.Errorf("value and pointer encodings differ: %x vs %x", byValue, byPointer)
	}

	var ee *borsh.EncodeError
	if _, err := table.Encode(counter{}); !errors.As(err, &ee) {
		t.Errorf("expected EncodeError for unregistered type, got %v", err)
	}
	if _, err := table.Encode(nil); !errors.As(err, &ee) {
		t.Errorf("expected EncodeError for nil, got %v", err)
	}
	if _, err := table.Encode((*pong)(nil)); !errors.As(err, &ee) {
		t.Errorf("expected EncodeError for nil pointer, got %v", err)
	}

	rec, err := table.Dispatch(byValue)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	again, err := table.EncodeRecord(rec)
	if err != nil {
		t.Fatalf("encode record: %v", err)
	}
	if !bytes.Equal(again, byValue) {
		t.Errorf("record re-encoding differs: %x vs %x", again, byValue)
	}
}

func BenchmarkTableDispatch(b *testing.B) {
	table := testEvents()
	data, err := table.Encode(ping{Seq: 42, Note: "benchmark"})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := table.Dispatch(data); err != nil {
			b.Fatal(err)
		}
	}
}
