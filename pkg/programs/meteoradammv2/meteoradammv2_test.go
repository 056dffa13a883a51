package meteoradammv2

import (
	"errors"
	"testing"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
	"github.com/lugondev/solcodec/pkg/decoder/decodertest"
)

func TestAccounts(t *testing.T) {
	decodertest.RunTable(t, Accounts())
}

func TestEvents(t *testing.T) {
	decodertest.RunTable(t, Events())
}

// Zero-copy account sizes, discriminator included.
func TestAccountSizes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		size  int
	}{
		{"Pool", &Pool{}, 1112},
		{"Position", &Position{}, 408},
		{"Config", &Config{}, 328},
		{"Vesting", &Vesting{}, 184},
		{"TokenBadge", &TokenBadge{}, 168},
		{"ClaimFeeOperator", &ClaimFeeOperator{}, 168},
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

func TestUpdatePoolFeesAbsentCliff(t *testing.T) {
	in := EvtUpdatePoolFees{
		Params: UpdatePoolFeesParameters{
			DynamicFee: &DynamicFeeParameters{BinStep: 1, FilterPeriod: 10, DecayPeriod: 120, MaxVolatilityAccumulator: 14_460_000},
		},
	}
	in.Pool[0] = 0xaa
	in.Operator[0] = 0xbb

	data, err := Events().Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 8+32+32+1+1+32 {
		t.Fatalf("unexpected length %d", len(data))
	}
	flag := 8 + 32 + 32
	if data[flag] != 0 {
		t.Fatalf("expected absent flag, got %d", data[flag])
	}
	if data[flag+1] != 1 {
		t.Fatalf("expected dynamic fee flag right after the absent cliff fee, got %d", data[flag+1])
	}

	rec, err := Events().DispatchStrict(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	got := rec.Value.(*EvtUpdatePoolFees)
	if got.Params.CliffFeeNumerator != nil {
		t.Errorf("expected absent cliff fee numerator, got %d", *got.Params.CliffFeeNumerator)
	}
	if got.Params.DynamicFee == nil || *got.Params.DynamicFee != *in.Params.DynamicFee {
		t.Errorf("expected %+v, got %+v", in.Params.DynamicFee, got.Params.DynamicFee)
	}
	if got.Pool != in.Pool || got.Operator != in.Operator {
		t.Errorf("expected keys to survive")
	}
}

func TestUpdatePoolFeesBadOptionFlag(t *testing.T) {
	data, err := Events().Encode(EvtUpdatePoolFees{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[8+32+32] = 2

	_, err = Events().Dispatch(data)
	var de *borsh.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *borsh.DecodeError, got %T: %v", err, err)
	}
	if de.Kind != borsh.KindMalformedField || de.Field != "params.cliff_fee_numerator" {
		t.Errorf("unexpected error %+v", de)
	}
}

func TestSharedBodiesAreDistinct(t *testing.T) {
	claim := FeeClaim{TokenAAmount: 3, TokenBAmount: 4}
	partner, err := Events().Encode(EvtClaimPartnerFee{claim})
	if err != nil {
		t.Fatalf("encode partner: %v", err)
	}
	protocol, err := Events().Encode(EvtClaimProtocolFee{claim})
	if err != nil {
		t.Fatalf("encode protocol: %v", err)
	}
	if string(partner[8:]) != string(protocol[8:]) {
		t.Fatalf("expected identical bodies")
	}

	for _, tt := range []struct {
		data []byte
		want string
	}{
		{partner, "EvtClaimPartnerFee"},
		{protocol, "EvtClaimProtocolFee"},
	} {
		rec, err := Events().Dispatch(tt.data)
		if err != nil {
			t.Fatalf("dispatch: %v", err)
		}
		if rec.Shape != tt.want {
			t.Errorf("expected %s, got %s", tt.want, rec.Shape)
		}
		if rec.Discriminator != decoder.EventDiscriminator(tt.want) {
			t.Errorf("%s: unexpected tag %s", tt.want, rec.Discriminator)
		}
	}
}
