package view

import (
	"errors"
	"testing"
)

func TestRecordView(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = byte(i)
	}

	view, err := NewRecordView(buf)
	if err != nil {
		t.Fatalf("Failed to create record view: %v", err)
	}

	tag := view.Tag()
	for i := 0; i < TagSize; i++ {
		if tag[i] != byte(i) {
			t.Errorf("Tag byte %d: expected %d, got %d", i, i, tag[i])
		}
	}
	if !view.HasTag(tag) {
		t.Error("Expected view to match its own tag")
	}

	if len(view.Body()) != 24 {
		t.Errorf("Expected body length 24, got %d", len(view.Body()))
	}
	if len(view.Bytes()) != 32 {
		t.Errorf("Expected full length 32, got %d", len(view.Bytes()))
	}

	view.Body()[0] = 0xff
	if buf[8] != 0xff {
		t.Error("Expected body to alias the input buffer")
	}
}

func TestRecordViewShortBuffer(t *testing.T) {
	for n := 0; n < TagSize; n++ {
		if _, err := NewRecordView(make([]byte, n)); !errors.Is(err, ErrShortBuffer) {
			t.Errorf("length %d: expected ErrShortBuffer, got %v", n, err)
		}
	}

	view, err := NewRecordView(make([]byte, TagSize))
	if err != nil {
		t.Fatalf("Unexpected error for exact tag length: %v", err)
	}
	if len(view.Body()) != 0 {
		t.Errorf("Expected empty body, got %d bytes", len(view.Body()))
	}
}

func TestRecordViewInner(t *testing.T) {
	buf := []byte{
		1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2,
		3, 4,
	}
	outer, err := NewRecordView(buf)
	if err != nil {
		t.Fatalf("Failed to create record view: %v", err)
	}
	inner, err := outer.Inner()
	if err != nil {
		t.Fatalf("Failed to create inner view: %v", err)
	}
	if inner.Tag() != [TagSize]byte{2, 2, 2, 2, 2, 2, 2, 2} {
		t.Errorf("Unexpected inner tag %v", inner.Tag())
	}
	if len(inner.Body()) != 2 {
		t.Errorf("Expected inner body length 2, got %d", len(inner.Body()))
	}

	if _, err := NewRecordView(buf[:12]); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	short, _ := NewRecordView(buf[:12])
	if _, err := short.Inner(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer for short inner record, got %v", err)
	}
}

func BenchmarkRecordView(b *testing.B) {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		view, _ := NewRecordView(buf)
		_ = view.Tag()
		_ = view.Body()
	}
}
