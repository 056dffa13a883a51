package pumpfun

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

func TestTradeEventDiscriminator(t *testing.T) {
	shape, ok := Events().ShapeByName("TradeEvent")
	if !ok {
		t.Fatal("TradeEvent not registered")
	}
	want, _ := decoder.ParseDiscriminator("bddb7fd34ee661ee")
	if shape.Discriminator() != want {
		t.Errorf("expected %s, got %s", want, shape.Discriminator())
	}
}

func TestFeeTiersTruncatedInsideElement(t *testing.T) {
	cfg := FeeConfig{
		Bump:     254,
		Admin:    solana.SystemProgramID,
		FlatFees: Fees{LpFeeBps: 20, ProtocolFeeBps: 5, CreatorFeeBps: 5},
		FeeTiers: []FeeTier{
			{MarketCapLamportsThreshold: borsh.U128(0), Fees: Fees{LpFeeBps: 100}},
			{MarketCapLamportsThreshold: borsh.U128(1_000_000), Fees: Fees{LpFeeBps: 50}},
			{MarketCapLamportsThreshold: borsh.U128(5_000_000), Fees: Fees{LpFeeBps: 25}},
		},
	}
	data, err := Accounts().Encode(cfg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	const header = 8 + 1 + 32 + 24 + 4
	const tierSize = 16 + 24
	if len(data) != header+3*tierSize {
		t.Fatalf("unexpected encoded length %d", len(data))
	}

	cut := data[:header+2*tierSize+1]
	rec, err := Accounts().Dispatch(cut)
	if rec != nil {
		t.Fatalf("expected no record, got %+v", rec)
	}
	if !errors.Is(err, borsh.ErrTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	var de *borsh.DecodeError
	errors.As(err, &de)
	if de.Shape != "FeeConfig" || de.Field != "fee_tiers[2].market_cap_lamports_threshold" {
		t.Errorf("unexpected context shape=%q field=%q", de.Shape, de.Field)
	}

	full, err := Accounts().Dispatch(data)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := full.Value.(*FeeConfig).FeeTiers; len(got) != 3 || got[2].Fees.LpFeeBps != 25 {
		t.Errorf("unexpected tiers %+v", got)
	}
}

func TestFlippedDiscriminatorByte(t *testing.T) {
	data, err := Events().Encode(TradeEvent{SolAmount: 1, IsBuy: true, IxName: "buy"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	for i := 0; i < decoder.DiscriminatorSize; i++ {
		flipped := append([]byte(nil), data...)
		flipped[i] ^= 0x01
		if _, err := Events().Dispatch(flipped); !errors.Is(err, borsh.ErrUnknownDiscriminator) {
			t.Errorf("byte %d: expected unknown discriminator, got %v", i, err)
		}
	}
}

func TestSharingConfigInvalidStatus(t *testing.T) {
	data, err := Accounts().Encode(SharingConfig{Status: ConfigStatusActive})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[8+2] = 7

	_, err = Accounts().Dispatch(data)
	if !errors.Is(err, borsh.ErrMalformedField) {
		t.Fatalf("expected malformed field, got %v", err)
	}
	var de *borsh.DecodeError
	errors.As(err, &de)
	if de.Field != "status" {
		t.Errorf("expected field status, got %q", de.Field)
	}

	if _, err := Accounts().Encode(SharingConfig{Status: 2}); err == nil {
		t.Error("expected encode of out-of-range status to fail")
	}
}

func TestCreateEventInvalidUTF8(t *testing.T) {
	data, err := Events().Encode(CreateEvent{Name: "ab", Symbol: "X"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[8+4] = 0xff

	_, err = Events().Dispatch(data)
	var de *borsh.DecodeError
	if !errors.As(err, &de) || de.Kind != borsh.KindMalformedField {
		t.Fatalf("expected malformed field, got %v", err)
	}
	if de.Shape != "CreateEvent" || de.Field != "name" {
		t.Errorf("unexpected context shape=%q field=%q", de.Shape, de.Field)
	}
}

func TestConfigStatusString(t *testing.T) {
	if ConfigStatusActive.String() != "Active" || ConfigStatus(9).String() != "ConfigStatus(9)" {
		t.Errorf("unexpected strings %s %s", ConfigStatusActive, ConfigStatus(9))
	}
}
