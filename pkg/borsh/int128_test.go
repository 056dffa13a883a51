package borsh

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"
)

func TestUint128String(t *testing.T) {
	tests := []struct {
		name string
		in   Uint128
		want string
	}{
		{"zero", Uint128{}, "0"},
		{"low only", U128(12345), "12345"},
		{"high bit", Uint128{Hi: 1}, "18446744073709551616"},
		{"max", MaxUint128, "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInt128String(t *testing.T) {
	tests := []struct {
		name string
		in   Int128
		want string
	}{
		{"zero", Int128{}, "0"},
		{"minus one", I128(-1), "-1"},
		{"min int64", I128(math.MinInt64), "-9223372036854775808"},
		{"min", Int128{Hi: 1 << 63}, "-170141183460469231731687303715884105728"},
		{"max", Int128{Lo: math.MaxUint64, Hi: math.MaxInt64}, "170141183460469231731687303715884105727"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInt128JSON(t *testing.T) {
	type holder struct {
		U Uint128 `json:"u"`
		I Int128  `json:"i"`
	}
	in := holder{U: MaxUint128, I: I128(-42)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"u":"340282366920938463463374607431768211455","i":"-42"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var out holder
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestFromBigRange(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := Uint128FromBig(tooBig); err == nil {
		t.Error("expected 2^128 to overflow u128")
	}
	if _, err := Uint128FromBig(big.NewInt(-1)); err == nil {
		t.Error("expected negative to be rejected for u128")
	}
	if _, err := Int128FromBig(new(big.Int).Lsh(big.NewInt(1), 127)); err == nil {
		t.Error("expected 2^127 to overflow i128")
	}
	v, err := Int128FromBig(big.NewInt(-5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != I128(-5) {
		t.Errorf("expected %v, got %v", I128(-5), v)
	}
}
