package meteorapools

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
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
		{"AddLiquidity", decoder.Discriminator{31, 94, 125, 90, 227, 52, 61, 186}},
		{"Swap", decoder.Discriminator{81, 108, 227, 190, 205, 208, 10, 196}},
		{"PoolInfo", decoder.Discriminator{207, 20, 87, 97, 251, 212, 234, 45}},
		{"PoolCreated", decoder.Discriminator{202, 44, 41, 88, 104, 220, 157, 82}},
		{"PartnerClaimFees", decoder.Discriminator{135, 131, 10, 94, 119, 209, 202, 48}},
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
	if Events().Len() != 18 {
		t.Errorf("expected 18 events, got %d", Events().Len())
	}
}

func TestPoolInfoVirtualPrice(t *testing.T) {
	in := PoolInfo{TokenAAmount: 10, TokenBAmount: 20, VirtualPrice: 1.0425, CurrentTimestamp: 1_700_000_000}
	data, err := Events().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 8+8+8+8+8 {
		t.Fatalf("unexpected length %d", len(data))
	}
	rec, err := Events().DispatchStrict(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := rec.Value.(*PoolInfo); *got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}

	// a NaN price is rejected
	nan := math.Float64bits(math.NaN())
	for i := 0; i < 8; i++ {
		data[8+16+i] = byte(nan >> (8 * i))
	}
	_, err = Events().Dispatch(data)
	var de *borsh.DecodeError
	if !errors.As(err, &de) || de.Kind != borsh.KindMalformedField || de.Field != "virtual_price" {
		t.Errorf("expected malformed virtual_price, got %v", err)
	}
}

func TestPoolCreatedType(t *testing.T) {
	in := PoolCreated{
		LpMint:   solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		PoolType: PoolTypePermissionless,
		Pool:     solana.WrappedSol,
	}
	data, err := Events().Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rec, err := Events().Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out, err := json.Marshal(rec.Value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["pool_type"] != "Permissionless" {
		t.Errorf("expected pool_type Permissionless, got %v", fields["pool_type"])
	}

	// pool_type follows three public keys
	data[8+3*32] = 2
	if _, err := Events().Dispatch(data); !errors.Is(err, borsh.ErrMalformedField) {
		t.Errorf("expected malformed pool_type, got %v", err)
	}
}
