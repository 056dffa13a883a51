package pumpfun

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const (
	GlobalFeeRecipients    = 7
	SetParamsFeeRecipients = 8
	VolumeDays             = 30
)

type Fees struct {
	LpFeeBps       uint64 `json:"lp_fee_bps"`
	ProtocolFeeBps uint64 `json:"protocol_fee_bps"`
	CreatorFeeBps  uint64 `json:"creator_fee_bps"`
}

func (f *Fees) UnmarshalWithReader(r *borsh.Reader) {
	f.LpFeeBps = r.U64("lp_fee_bps")
	f.ProtocolFeeBps = r.U64("protocol_fee_bps")
	f.CreatorFeeBps = r.U64("creator_fee_bps")
}

func (f *Fees) MarshalWithWriter(w *borsh.Writer) {
	w.U64(f.LpFeeBps)
	w.U64(f.ProtocolFeeBps)
	w.U64(f.CreatorFeeBps)
}

// FeeTier applies Fees above a market-cap threshold.
type FeeTier struct {
	MarketCapLamportsThreshold borsh.Uint128 `json:"market_cap_lamports_threshold"`
	Fees                       Fees          `json:"fees"`
}

func (f *FeeTier) UnmarshalWithReader(r *borsh.Reader) {
	f.MarketCapLamportsThreshold = r.U128("market_cap_lamports_threshold")
	r.Struct("fees", &f.Fees)
}

func (f *FeeTier) MarshalWithWriter(w *borsh.Writer) {
	w.U128(f.MarketCapLamportsThreshold)
	w.Struct(&f.Fees)
}

type Shareholder struct {
	Address  solana.PublicKey `json:"address"`
	ShareBps uint16           `json:"share_bps"`
}

func (s *Shareholder) UnmarshalWithReader(r *borsh.Reader) {
	s.Address = r.PublicKey("address")
	s.ShareBps = r.U16("share_bps")
}

func (s *Shareholder) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(s.Address)
	w.U16(s.ShareBps)
}

type ConfigStatus uint8

const (
	ConfigStatusPaused ConfigStatus = iota
	ConfigStatusActive
)

func (ConfigStatus) EnumVariants() uint8 { return 2 }

func (s ConfigStatus) String() string {
	switch s {
	case ConfigStatusPaused:
		return "Paused"
	case ConfigStatusActive:
		return "Active"
	}
	return fmt.Sprintf("ConfigStatus(%d)", uint8(s))
}

func (s ConfigStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
