package orcawhirlpool

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type PoolInitialized struct {
	Whirlpool        solana.PublicKey `json:"whirlpool"`
	WhirlpoolsConfig solana.PublicKey `json:"whirlpools_config"`
	TokenMintA       solana.PublicKey `json:"token_mint_a"`
	TokenMintB       solana.PublicKey `json:"token_mint_b"`
	TickSpacing      uint16           `json:"tick_spacing"`
	TokenProgramA    solana.PublicKey `json:"token_program_a"`
	TokenProgramB    solana.PublicKey `json:"token_program_b"`
	DecimalsA        uint8            `json:"decimals_a"`
	DecimalsB        uint8            `json:"decimals_b"`
	InitialSqrtPrice borsh.Uint128    `json:"initial_sqrt_price"`
}

func (e *PoolInitialized) UnmarshalWithReader(r *borsh.Reader) {
	e.Whirlpool = r.PublicKey("whirlpool")
	e.WhirlpoolsConfig = r.PublicKey("whirlpools_config")
	e.TokenMintA = r.PublicKey("token_mint_a")
	e.TokenMintB = r.PublicKey("token_mint_b")
	e.TickSpacing = r.U16("tick_spacing")
	e.TokenProgramA = r.PublicKey("token_program_a")
	e.TokenProgramB = r.PublicKey("token_program_b")
	e.DecimalsA = r.U8("decimals_a")
	e.DecimalsB = r.U8("decimals_b")
	e.InitialSqrtPrice = r.U128("initial_sqrt_price")
}

func (e *PoolInitialized) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Whirlpool)
	w.PublicKey(e.WhirlpoolsConfig)
	w.PublicKey(e.TokenMintA)
	w.PublicKey(e.TokenMintB)
	w.U16(e.TickSpacing)
	w.PublicKey(e.TokenProgramA)
	w.PublicKey(e.TokenProgramB)
	w.U8(e.DecimalsA)
	w.U8(e.DecimalsB)
	w.U128(e.InitialSqrtPrice)
}

type Traded struct {
	Whirlpool         solana.PublicKey `json:"whirlpool"`
	AToB              bool             `json:"a_to_b"`
	PreSqrtPrice      borsh.Uint128    `json:"pre_sqrt_price"`
	PostSqrtPrice     borsh.Uint128    `json:"post_sqrt_price"`
	InputAmount       uint64           `json:"input_amount"`
	OutputAmount      uint64           `json:"output_amount"`
	InputTransferFee  uint64           `json:"input_transfer_fee"`
	OutputTransferFee uint64           `json:"output_transfer_fee"`
	LpFee             uint64           `json:"lp_fee"`
	ProtocolFee       uint64           `json:"protocol_fee"`
}

func (e *Traded) UnmarshalWithReader(r *borsh.Reader) {
	e.Whirlpool = r.PublicKey("whirlpool")
	e.AToB = r.Bool("a_to_b")
	e.PreSqrtPrice = r.U128("pre_sqrt_price")
	e.PostSqrtPrice = r.U128("post_sqrt_price")
	e.InputAmount = r.U64("input_amount")
	e.OutputAmount = r.U64("output_amount")
	e.InputTransferFee = r.U64("input_transfer_fee")
	e.OutputTransferFee = r.U64("output_transfer_fee")
	e.LpFee = r.U64("lp_fee")
	e.ProtocolFee = r.U64("protocol_fee")
}

func (e *Traded) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Whirlpool)
	w.Bool(e.AToB)
	w.U128(e.PreSqrtPrice)
	w.U128(e.PostSqrtPrice)
	w.U64(e.InputAmount)
	w.U64(e.OutputAmount)
	w.U64(e.InputTransferFee)
	w.U64(e.OutputTransferFee)
	w.U64(e.LpFee)
	w.U64(e.ProtocolFee)
}

// LiquidityChange is the body shared by LiquidityIncreased and LiquidityDecreased.
type LiquidityChange struct {
	Whirlpool         solana.PublicKey `json:"whirlpool"`
	Position          solana.PublicKey `json:"position"`
	TickLowerIndex    int32            `json:"tick_lower_index"`
	TickUpperIndex    int32            `json:"tick_upper_index"`
	Liquidity         borsh.Uint128    `json:"liquidity"`
	TokenAAmount      uint64           `json:"token_a_amount"`
	TokenBAmount      uint64           `json:"token_b_amount"`
	TokenATransferFee uint64           `json:"token_a_transfer_fee"`
	TokenBTransferFee uint64           `json:"token_b_transfer_fee"`
}

func (e *LiquidityChange) UnmarshalWithReader(r *borsh.Reader) {
	e.Whirlpool = r.PublicKey("whirlpool")
	e.Position = r.PublicKey("position")
	e.TickLowerIndex = r.I32("tick_lower_index")
	e.TickUpperIndex = r.I32("tick_upper_index")
	e.Liquidity = r.U128("liquidity")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
	e.TokenATransferFee = r.U64("token_a_transfer_fee")
	e.TokenBTransferFee = r.U64("token_b_transfer_fee")
}

func (e *LiquidityChange) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Whirlpool)
	w.PublicKey(e.Position)
	w.I32(e.TickLowerIndex)
	w.I32(e.TickUpperIndex)
	w.U128(e.Liquidity)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
	w.U64(e.TokenATransferFee)
	w.U64(e.TokenBTransferFee)
}

type LiquidityIncreased struct {
	LiquidityChange
}

type LiquidityDecreased struct {
	LiquidityChange
}
