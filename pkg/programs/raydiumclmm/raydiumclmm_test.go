package raydiumclmm

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
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

func TestAmmConfigSize(t *testing.T) {
	data, err := Accounts().Encode(AmmConfig{Index: 4, TickSpacing: 60})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 117 {
		t.Errorf("expected 117 bytes, got %d", len(data))
	}
}

func TestAccountSizes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		size  int
	}{
		{"PoolState", PoolState{TickSpacing: 60}, 1544},
		{"ObservationState", ObservationState{Initialized: true}, 4483},
		{"TickArrayState", TickArrayState{StartTickIndex: -3600}, 10240},
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

func TestPoolStateFields(t *testing.T) {
	in := PoolState{
		Bump:          [1]byte{254},
		TokenMint0:    solana.WrappedSol,
		TokenMint1:    solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		MintDecimals0: 9,
		MintDecimals1: 6,
		TickSpacing:   1,
		Liquidity:     borsh.U128(5_000_000),
		SqrtPriceX64:  borsh.Uint128{Lo: 1, Hi: 2},
		TickCurrent:   -20_000,
		Status:        4,
		OpenTime:      1_700_000_000,
		RecentEpoch:   600,
	}
	in.RewardInfos[1].TokenMint = solana.TokenProgramID
	in.TickArrayBitmap[15] = 1 << 63

	data, err := Accounts().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rec, err := Accounts().DispatchStrict(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Shape != "PoolState" {
		t.Fatalf("expected PoolState, got %s", rec.Shape)
	}
	got := rec.Value.(*PoolState)
	if *got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}

	// 381 body bytes precede status
	if data[8+381] != 4 {
		t.Errorf("expected status byte at offset 389, got %d", data[8+381])
	}
}

func TestPoolCreatedEvent(t *testing.T) {
	in := PoolCreatedEvent{
		TokenMint0:   solana.WrappedSol,
		TokenMint1:   solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		TickSpacing:  60,
		PoolState:    solana.MustPublicKeyFromBase58("8sLbNZoA1cfnvMJLPfp98ZLAnFSYCFApfJKMbiXNLwxj"),
		SqrtPriceX64: borsh.Uint128{Lo: 0x1234_5678_9abc_def0, Hi: 7},
		Tick:         -18_420,
		TokenVault0:  solana.SystemProgramID,
		TokenVault1:  solana.TokenProgramID,
	}

	data, err := Events().Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 8+32+32+2+32+16+4+32+32 {
		t.Fatalf("unexpected length %d", len(data))
	}
	want := decoder.EventDiscriminator("PoolCreatedEvent")
	if decoder.Discriminator(data[:8]) != want {
		t.Fatalf("expected tag %s, got %x", want, data[:8])
	}

	rec, err := Events().DispatchStrict(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.Program != Name || rec.Shape != "PoolCreatedEvent" {
		t.Errorf("unexpected record %s/%s", rec.Program, rec.Shape)
	}
	got := rec.Value.(*PoolCreatedEvent)
	if *got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
	if got.Tick != -18_420 {
		t.Errorf("expected negative tick to survive, got %d", got.Tick)
	}
}

func TestSwapEventLayout(t *testing.T) {
	in := SwapEvent{Amount0: 1, Amount1: 2, ZeroForOne: true, Tick: 5}
	data, err := Events().Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) != 8+4*32+4*8+1+16+16+4 {
		t.Fatalf("unexpected length %d", len(data))
	}
	if data[8+4*32+4*8] != 1 {
		t.Errorf("expected zero_for_one after the amounts")
	}
}

// Assigning one tag to every event keeps the first shape and reports the rest.
func TestSharedTagKeepsFirst(t *testing.T) {
	shared := decoder.EventDiscriminator("LpChangeEvent")
	table := decoder.NewTable(Name, decoder.Events,
		decoder.NewShape[PoolCreatedEvent]("PoolCreatedEvent", shared),
		decoder.NewShape[SwapEvent]("SwapEvent", shared),
		decoder.NewShape[LiquidityChangeEvent]("LiquidityChangeEvent", shared),
	)

	if table.Len() != 1 {
		t.Fatalf("expected 1 shape, got %d", table.Len())
	}
	collisions := table.Collisions()
	if len(collisions) != 2 {
		t.Fatalf("expected 2 collisions, got %d", len(collisions))
	}
	for _, c := range collisions {
		if c.Kept != "PoolCreatedEvent" || c.Discriminator != shared {
			t.Errorf("unexpected collision %+v", c)
		}
	}

	var dup *decoder.DuplicateDiscriminatorError
	if err := table.Validate(); !errors.As(err, &dup) {
		t.Fatalf("expected duplicate discriminator error, got %v", err)
	}

	data, err := table.Encode(SwapEvent{})
	if err == nil {
		t.Fatalf("expected dropped shape to be unencodable, got %x", data)
	}

	// Registered tables derive each tag from its own name.
	for _, name := range []string{"PoolCreatedEvent", "SwapEvent", "LiquidityChangeEvent"} {
		shape, ok := Events().ShapeByName(name)
		if !ok {
			t.Fatalf("%s missing", name)
		}
		if shape.Discriminator() == shared {
			t.Errorf("%s uses the shared tag", name)
		}
	}
}
