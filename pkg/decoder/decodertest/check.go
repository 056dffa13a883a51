package decodertest

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// Option configures RunTable.
type Option func(*Filler)

// WithOverride installs Override[T] on every Filler RunTable creates.
func WithOverride[T any](fn func(f *Filler) T) Option {
	return func(f *Filler) {
		Override(f, fn)
	}
}

// Seeds used for Seeded samples.
var Seeds = []int64{1, 2, 3}

// Sample builds a filled value for shape. The result is a pointer to the shape's type.
func Sample(t testing.TB, shape *decoder.Shape, mode Mode, seed int64, opts ...Option) any {
	t.Helper()
	f := NewFiller(mode, seed)
	for _, opt := range opts {
		opt(f)
	}
	v := shape.New()
	if err := f.Fill(v); err != nil {
		t.Fatalf("%s: %v", shape.Name(), err)
	}
	return v
}

// RunTable runs every property check over every shape in table.
func RunTable(t *testing.T, table *decoder.Table, opts ...Option) {
	t.Helper()

	if err := table.Validate(); err != nil {
		t.Fatalf("table: %v", err)
	}
	AssertFidelity(t, table)
	AssertUnknownTag(t, table)

	for _, shape := range table.Shapes() {
		t.Run(shape.Name(), func(t *testing.T) {
			AssertRoundTrip(t, table, Sample(t, shape, Zero, 0, opts...))
			for _, seed := range Seeds {
				AssertRoundTrip(t, table, Sample(t, shape, Seeded, seed, opts...))
			}
			data := AssertRoundTrip(t, table, Sample(t, shape, Max, 0, opts...))
			AssertTruncation(t, table, data)
		})
	}
}

// AssertRoundTrip encodes v, decodes the result strictly and requires an equal
// value and an identical re-encoding. It returns the encoded bytes.
func AssertRoundTrip(t testing.TB, table *decoder.Table, v any) []byte {
	t.Helper()

	data, err := table.Encode(v)
	if err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}
	rec, err := table.DispatchStrict(data)
	if err != nil {
		t.Fatalf("decode %T: %v", v, err)
	}

	want := reflect.ValueOf(v)
	if want.Kind() != reflect.Pointer {
		ptr := reflect.New(want.Type())
		ptr.Elem().Set(want)
		want = ptr
	}
	if !reflect.DeepEqual(rec.Value, want.Interface()) {
		t.Fatalf("round trip mismatch for %s\n  sent %+v\n   got %+v", rec.Shape, want.Elem().Interface(), reflect.ValueOf(rec.Value).Elem().Interface())
	}

	again, err := table.EncodeRecord(rec)
	if err != nil {
		t.Fatalf("re-encode %s: %v", rec.Shape, err)
	}
	if !bytes.Equal(again, data) {
		t.Fatalf("re-encoding of %s differs\n  first %x\n second %x", rec.Shape, data, again)
	}
	return data
}

// AssertFidelity requires every tag to be the Anchor derivation of its shape
// name and every encoding to start with that tag.
func AssertFidelity(t testing.TB, table *decoder.Table) {
	t.Helper()

	for _, shape := range table.Shapes() {
		want := table.Namespace().Discriminator(shape.Name())
		if shape.Discriminator() != want {
			t.Errorf("%s: tag %s, derived %s", shape.Name(), shape.Discriminator(), want)
		}
		data, err := shape.Encode(shape.New())
		if err != nil {
			t.Errorf("%s: encode zero value: %v", shape.Name(), err)
			continue
		}
		if !bytes.HasPrefix(data, want[:]) {
			t.Errorf("%s: encoding starts with %x, want %s", shape.Name(), data[:min(len(data), decoder.DiscriminatorSize)], want)
		}
	}
}

// AssertTruncation requires every proper prefix of data to fail with a truncation error.
func AssertTruncation(t testing.TB, table *decoder.Table, data []byte) {
	t.Helper()

	for n := 0; n < len(data); n++ {
		rec, err := table.Dispatch(data[:n])
		if !errors.Is(err, borsh.ErrTruncated) {
			t.Fatalf("prefix of %d/%d bytes: expected truncated, got record=%v err=%v", n, len(data), rec, err)
		}
	}
}

// AssertUnknownTag requires a tag missing from table to be rejected with that tag.
func AssertUnknownTag(t testing.TB, table *decoder.Table) {
	t.Helper()

	tag := unknownTag(table)
	data := append(tag.Bytes(), bytes.Repeat([]byte{0xff}, 64)...)
	_, err := table.Dispatch(data)

	var de *borsh.DecodeError
	if !errors.As(err, &de) || de.Kind != borsh.KindUnknownDiscriminator {
		t.Fatalf("expected unknown discriminator, got %v", err)
	}
	if !bytes.Equal(de.Tag, tag.Bytes()) {
		t.Fatalf("expected tag %s in error, got %x", tag, de.Tag)
	}
}

func unknownTag(table *decoder.Table) decoder.Discriminator {
	for i := 0; ; i++ {
		tag := table.Namespace().Discriminator(fmt.Sprintf("Unregistered%d", i))
		if _, ok := table.Lookup(tag); !ok {
			return tag
		}
	}
}
