package raydiumcpmm

import (
	"errors"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/decoder/decodertest"
)

func TestEvents(t *testing.T) {
	decodertest.RunTable(t, Events())
}

func TestTags(t *testing.T) {
	tests := []struct {
		shape string
		tag   decoder.Discriminator
	}{
		{"LpChangeEvent", decoder.Discriminator{121, 163, 205, 201, 57, 218, 117, 60}},
		{"SwapEvent", decoder.Discriminator{64, 198, 205, 232, 38, 8, 113, 226}},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			shape, ok := Events().ShapeByName(tt.shape)
			if !ok {
				t.Fatalf("%s missing", tt.shape)
			}
			if shape.Discriminator() != tt.tag {
				t.Errorf("expected %s, got %s", tt.tag, shape.Discriminator())
			}
		})
	}
}

func TestSwapEventBadBool(t *testing.T) {
	data, err := Events().Encode(SwapEvent{BaseInput: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[len(data)-1] = 2

	_, err = Events().Dispatch(data)
	var de *borsh.DecodeError
	if !errors.As(err, &de) || !errors.Is(err, borsh.ErrMalformedField) {
		t.Fatalf("expected malformed field, got %v", err)
	}
	if de.Field != "base_input" {
		t.Errorf("expected field base_input, got %s", de.Field)
	}
}

func TestNoAccountTable(t *testing.T) {
	if _, err := Program().Table(decoder.Accounts); !errors.Is(err, decoder.ErrUnknownNamespace) {
		t.Errorf("expected unknown namespace, got %v", err)
	}
}
