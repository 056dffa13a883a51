package orcawhirlpool

import (
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder/decodertest"
)

func TestAccounts(t *testing.T) {
	decodertest.RunTable(t, Accounts())
}

func TestEvents(t *testing.T) {
	decodertest.RunTable(t, Events())
}

// On-chain account sizes include the 8-byte discriminator.
func TestAccountSizes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		size  int
	}{
		{"Whirlpool", &Whirlpool{}, 653},
		{"Position", &Position{}, 216},
		{"TickArray", &TickArray{}, 9988},
		{"FeeTier", &FeeTier{}, 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Accounts().Encode(tt.value)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if len(data) != tt.size {
				t.Errorf("expected %d bytes, got %d", tt.size, len(data))
			}
		})
	}
}

func TestTradedLayout(t *testing.T) {
	in := Traded{
		AToB:         true,
		PreSqrtPrice: borsh.U128(1 << 40),
		InputAmount:  1_000_000,
		OutputAmount: 999,
		LpFee:        30,
	}
	data, err := Events().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 8+32+1+16+16+6*8 {
		t.Fatalf("unexpected length %d", len(data))
	}
	if data[8+32] != 1 {
		t.Errorf("expected a_to_b byte after whirlpool key, got %d", data[8+32])
	}

	rec, err := Events().Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Shape != "Traded" {
		t.Errorf("expected Traded, got %s", rec.Shape)
	}
	if got := rec.Value.(*Traded); *got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
}

func TestLiquidityEventsAreDistinct(t *testing.T) {
	change := LiquidityChange{TickLowerIndex: -128, TickUpperIndex: 256, TokenAAmount: 5}

	inc, err := Events().Encode(LiquidityIncreased{change})
	if err != nil {
		t.Fatalf("encode increased: %v", err)
	}
	dec, err := Events().Encode(LiquidityDecreased{change})
	if err != nil {
		t.Fatalf("encode decreased: %v", err)
	}
	if string(inc[8:]) != string(dec[8:]) {
		t.Error("expected identical bodies")
	}

	rec, err := Events().Dispatch(dec)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	got, ok := rec.Value.(*LiquidityDecreased)
	if !ok {
		t.Fatalf("expected *LiquidityDecreased, got %T", rec.Value)
	}
	if got.TickLowerIndex != -128 {
		t.Errorf("expected tick -128, got %d", got.TickLowerIndex)
	}
}
