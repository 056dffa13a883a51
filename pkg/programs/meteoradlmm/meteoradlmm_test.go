package meteoradlmm

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/decoder/decodertest"
)

func TestAccounts(t *testing.T) {
	decodertest.RunTable(t, Accounts())
}

// Account sizes, discriminator included.
func TestAccountSizes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		size  int
	}{
		{"BinArrayBitmapExtension", &BinArrayBitmapExtension{}, 1576},
		{"BinArray", &BinArray{}, 10136},
		{"LbPair", &LbPair{}, 904},
		{"Oracle", &Oracle{}, 32},
		{"Position", &Position{}, 7560},
		{"PositionV2", &PositionV2{}, 8120},
		{"PresetParameter", &PresetParameter{}, 36},
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

func TestTags(t *testing.T) {
	tests := []struct {
		shape string
		tag   decoder.Discriminator
	}{
		{"LbPair", decoder.Discriminator{33, 11, 49, 98, 181, 101, 177, 13}},
		{"BinArray", decoder.Discriminator{92, 142, 92, 220, 5, 148, 70, 181}},
		{"PositionV2", decoder.Discriminator{117, 176, 212, 199, 245, 180, 133, 182}},
		{"PresetParameter", decoder.Discriminator{242, 62, 244, 34, 181, 112, 58, 170}},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			shape, ok := Accounts().ShapeByName(tt.shape)
			if !ok {
				t.Fatalf("%s missing", tt.shape)
			}
			if shape.Discriminator() != tt.tag {
				t.Errorf("expected %s, got %s", tt.tag, shape.Discriminator())
			}
		})
	}
}

func TestLbPairActiveID(t *testing.T) {
	in := LbPair{
		Parameters:  StaticParameters{BaseFactor: 10_000, FilterPeriod: 30, MinBinID: -443_636, MaxBinID: 443_636},
		ActiveID:    -5_123,
		BinStep:     25,
		BinStepSeed: [2]byte{25, 0},
		ProtocolFee: ProtocolFee{AmountX: 1, AmountY: 2},
	}
	in.BinArrayBitmap[8] = 1 << 63

	data, err := Accounts().Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// static parameters, variable parameters, bump seed, bin step seed, pair type
	off := 8 + 32 + 32 + 1 + 2 + 1
	if got := int32(binary.LittleEndian.Uint32(data[off:])); got != in.ActiveID {
		t.Fatalf("expected active id %d at %d, got %d", in.ActiveID, off, got)
	}

	rec, err := Accounts().DispatchStrict(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := rec.Value.(*LbPair); *got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
}

func TestPositionV2Truncated(t *testing.T) {
	in := PositionV2{LowerBinID: -35, UpperBinID: 34}
	in.LiquidityShares[0] = borsh.U128(1_000_000)
	in.FeeInfos[69].FeeYPending = 9

	data, err := Accounts().Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tests := []struct {
		name  string
		cut   int
		field string
	}{
		{"inside liquidity shares", 8 + 64 + 100, "liquidity_shares"},
		{"inside fee infos", 8 + 64 + 1120 + 3360 + 10, "fee_infos"},
		{"inside fee owner", len(data) - 87 - 5, "fee_owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Accounts().Dispatch(data[:tt.cut])
			var de *borsh.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *borsh.DecodeError, got %T: %v", err, err)
			}
			if de.Kind != borsh.KindTruncated || de.Shape != "PositionV2" {
				t.Errorf("unexpected error %+v", de)
			}
			if len(de.Field) < len(tt.field) || de.Field[:len(tt.field)] != tt.field {
				t.Errorf("expected field under %s, got %s", tt.field, de.Field)
			}
		})
	}

	rec, err := Accounts().Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := rec.Value.(*PositionV2); *got != in {
		t.Errorf("position did not survive the round trip")
	}
}

// The observation buffer follows the Oracle header in the same account.
func TestOracleTrailingObservations(t *testing.T) {
	data, err := Accounts().Encode(&Oracle{Idx: 3, ActiveSize: 4, Length: 100})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data = append(data, make([]byte, 100*32)...)

	rec, err := Accounts().Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := rec.Value.(*Oracle); got.Length != 100 {
		t.Errorf("expected length 100, got %d", got.Length)
	}
	if _, err := Accounts().DispatchStrict(data); !errors.Is(err, borsh.ErrMalformedField) {
		t.Errorf("expected strict decode to reject the trailing buffer, got %v", err)
	}
}
