package raydiumlaunchpad

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type ClaimVestedEvent struct {
	PoolState   solana.PublicKey `json:"pool_state"`
	Beneficiary solana.PublicKey `json:"beneficiary"`
	ClaimAmount uint64           `json:"claim_amount"`
}

func (e *ClaimVestedEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Beneficiary = r.PublicKey("beneficiary")
	e.ClaimAmount = r.U64("claim_amount")
}

func (e *ClaimVestedEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.Beneficiary)
	w.U64(e.ClaimAmount)
}

type CreateVestingEvent struct {
	PoolState   solana.PublicKey `json:"pool_state"`
	Beneficiary solana.PublicKey `json:"beneficiary"`
	ShareAmount uint64           `json:"share_amount"`
}

func (e *CreateVestingEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Beneficiary = r.PublicKey("beneficiary")
	e.ShareAmount = r.U64("share_amount")
}

func (e *CreateVestingEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.Beneficiary)
	w.U64(e.ShareAmount)
}

type PoolCreateEvent struct {
	PoolState     solana.PublicKey `json:"pool_state"`
	Creator       solana.PublicKey `json:"creator"`
	Config        solana.PublicKey `json:"config"`
	BaseMintParam MintParams       `json:"base_mint_param"`
	CurveParam    CurveParams      `json:"curve_param"`
	VestingParam  VestingParams    `json:"vesting_param"`
}

func (e *PoolCreateEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Creator = r.PublicKey("creator")
	e.Config = r.PublicKey("config")
	r.Struct("base_mint_param", &e.BaseMintParam)
	r.Struct("curve_param", &e.CurveParam)
	r.Struct("vesting_param", &e.VestingParam)
}

func (e *PoolCreateEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.Creator)
	w.PublicKey(e.Config)
	w.Struct(&e.BaseMintParam)
	w.Struct(&e.CurveParam)
	w.Struct(&e.VestingParam)
}

type TradeEvent struct {
	PoolState       solana.PublicKey `json:"pool_state"`
	TotalBaseSell   uint64           `json:"total_base_sell"`
	VirtualBase     uint64           `json:"virtual_base"`
	VirtualQuote    uint64           `json:"virtual_quote"`
	RealBaseBefore  uint64           `json:"real_base_before"`
	RealQuoteBefore uint64           `json:"real_quote_before"`
	RealBaseAfter   uint64           `json:"real_base_after"`
	RealQuoteAfter  uint64           `json:"real_quote_after"`
	AmountIn        uint64           `json:"amount_in"`
	AmountOut       uint64           `json:"amount_out"`
	ProtocolFee     uint64           `json:"protocol_fee"`
	PlatformFee     uint64           `json:"platform_fee"`
	ShareFee        uint64           `json:"share_fee"`
	TradeDirection  TradeDirection   `json:"trade_direction"`
	PoolStatus      PoolStatus       `json:"pool_status"`
}

func (e *TradeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.TotalBaseSell = r.U64("total_base_sell")
	e.VirtualBase = r.U64("virtual_base")
	e.VirtualQuote = r.U64("virtual_quote")
	e.RealBaseBefore = r.U64("real_base_before")
	e.RealQuoteBefore = r.U64("real_quote_before")
	e.RealBaseAfter = r.U64("real_base_after")
	e.RealQuoteAfter = r.U64("real_quote_after")
	e.AmountIn = r.U64("amount_in")
	e.AmountOut = r.U64("amount_out")
	e.ProtocolFee = r.U64("protocol_fee")
	e.PlatformFee = r.U64("platform_fee")
	e.ShareFee = r.U64("share_fee")
	e.TradeDirection = TradeDirection(r.Enum("trade_direction", e.TradeDirection.EnumVariants()))
	e.PoolStatus = PoolStatus(r.Enum("pool_status", e.PoolStatus.EnumVariants()))
}

func (e *TradeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.U64(e.TotalBaseSell)
	w.U64(e.VirtualBase)
	w.U64(e.VirtualQuote)
	w.U64(e.RealBaseBefore)
	w.U64(e.RealQuoteBefore)
	w.U64(e.RealBaseAfter)
	w.U64(e.RealQuoteAfter)
	w.U64(e.AmountIn)
	w.U64(e.AmountOut)
	w.U64(e.ProtocolFee)
	w.U64(e.PlatformFee)
	w.U64(e.ShareFee)
	w.Enum("trade_direction", uint8(e.TradeDirection), e.TradeDirection.EnumVariants())
	w.Enum("pool_status", uint8(e.PoolStatus), e.PoolStatus.EnumVariants())
}
