package meteorapools

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type AddLiquidity struct {
	LpMintAmount uint64 `json:"lp_mint_amount"`
	TokenAAmount uint64 `json:"token_a_amount"`
	TokenBAmount uint64 `json:"token_b_amount"`
}

func (e *AddLiquidity) UnmarshalWithReader(r *borsh.Reader) {
	e.LpMintAmount = r.U64("lp_mint_amount")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
}

func (e *AddLiquidity) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.LpMintAmount)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
}

type RemoveLiquidity struct {
	LpUnmintAmount  uint64 `json:"lp_unmint_amount"`
	TokenAOutAmount uint64 `json:"token_a_out_amount"`
	TokenBOutAmount uint64 `json:"token_b_out_amount"`
}

func (e *RemoveLiquidity) UnmarshalWithReader(r *borsh.Reader) {
	e.LpUnmintAmount = r.U64("lp_unmint_amount")
	e.TokenAOutAmount = r.U64("token_a_out_amount")
	e.TokenBOutAmount = r.U64("token_b_out_amount")
}

func (e *RemoveLiquidity) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.LpUnmintAmount)
	w.U64(e.TokenAOutAmount)
	w.U64(e.TokenBOutAmount)
}

type BootstrapLiquidity struct {
	LpMintAmount uint64           `json:"lp_mint_amount"`
	TokenAAmount uint64           `json:"token_a_amount"`
	TokenBAmount uint64           `json:"token_b_amount"`
	Pool         solana.PublicKey `json:"pool"`
}

func (e *BootstrapLiquidity) UnmarshalWithReader(r *borsh.Reader) {
	e.LpMintAmount = r.U64("lp_mint_amount")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
	e.Pool = r.PublicKey("pool")
}

func (e *BootstrapLiquidity) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.LpMintAmount)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
	w.PublicKey(e.Pool)
}

// Swap amounts are in the input and output token units.
type Swap struct {
	InAmount    uint64 `json:"in_amount"`
	OutAmount   uint64 `json:"out_amount"`
	TradeFee    uint64 `json:"trade_fee"`
	ProtocolFee uint64 `json:"protocol_fee"`
	HostFee     uint64 `json:"host_fee"`
}

func (e *Swap) UnmarshalWithReader(r *borsh.Reader) {
	e.InAmount = r.U64("in_amount")
	e.OutAmount = r.U64("out_amount")
	e.TradeFee = r.U64("trade_fee")
	e.ProtocolFee = r.U64("protocol_fee")
	e.HostFee = r.U64("host_fee")
}

func (e *Swap) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.InAmount)
	w.U64(e.OutAmount)
	w.U64(e.TradeFee)
	w.U64(e.ProtocolFee)
	w.U64(e.HostFee)
}

type SetPoolFees struct {
	TradeFeeNumerator           uint64           `json:"trade_fee_numerator"`
	TradeFeeDenominator         uint64           `json:"trade_fee_denominator"`
	ProtocolTradeFeeNumerator   uint64           `json:"protocol_trade_fee_numerator"`
	ProtocolTradeFeeDenominator uint64           `json:"protocol_trade_fee_denominator"`
	Pool                        solana.PublicKey `json:"pool"`
}

func (e *SetPoolFees) UnmarshalWithReader(r *borsh.Reader) {
	e.TradeFeeNumerator = r.U64("trade_fee_numerator")
	e.TradeFeeDenominator = r.U64("trade_fee_denominator")
	e.ProtocolTradeFeeNumerator = r.U64("protocol_trade_fee_numerator")
	e.ProtocolTradeFeeDenominator = r.U64("protocol_trade_fee_denominator")
	e.Pool = r.PublicKey("pool")
}

func (e *SetPoolFees) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.TradeFeeNumerator)
	w.U64(e.TradeFeeDenominator)
	w.U64(e.ProtocolTradeFeeNumerator)
	w.U64(e.ProtocolTradeFeeDenominator)
	w.PublicKey(e.Pool)
}

// PoolInfo reports reserves after an operation. VirtualPrice is the LP token price in token units.
type PoolInfo struct {
	TokenAAmount     uint64  `json:"token_a_amount"`
	TokenBAmount     uint64  `json:"token_b_amount"`
	VirtualPrice     float64 `json:"virtual_price"`
	CurrentTimestamp uint64  `json:"current_timestamp"`
}

func (e *PoolInfo) UnmarshalWithReader(r *borsh.Reader) {
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
	e.VirtualPrice = r.F64("virtual_price")
	e.CurrentTimestamp = r.U64("current_timestamp")
}

func (e *PoolInfo) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
	w.F64("virtual_price", e.VirtualPrice)
	w.U64(e.CurrentTimestamp)
}

type TransferAdmin struct {
	Admin    solana.PublicKey `json:"admin"`
	NewAdmin solana.PublicKey `json:"new_admin"`
	Pool     solana.PublicKey `json:"pool"`
}

func (e *TransferAdmin) UnmarshalWithReader(r *borsh.Reader) {
	e.Admin = r.PublicKey("admin")
	e.NewAdmin = r.PublicKey("new_admin")
	e.Pool = r.PublicKey("pool")
}

func (e *TransferAdmin) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Admin)
	w.PublicKey(e.NewAdmin)
	w.PublicKey(e.Pool)
}

type OverrideCurveParam struct {
	NewAmp           uint64           `json:"new_amp"`
	UpdatedTimestamp uint64           `json:"updated_timestamp"`
	Pool             solana.PublicKey `json:"pool"`
}

func (e *OverrideCurveParam) UnmarshalWithReader(r *borsh.Reader) {
	e.NewAmp = r.U64("new_amp")
	e.UpdatedTimestamp = r.U64("updated_timestamp")
	e.Pool = r.PublicKey("pool")
}

func (e *OverrideCurveParam) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.NewAmp)
	w.U64(e.UpdatedTimestamp)
	w.PublicKey(e.Pool)
}

type PoolCreated struct {
	LpMint     solana.PublicKey `json:"lp_mint"`
	TokenAMint solana.PublicKey `json:"token_a_mint"`
	TokenBMint solana.PublicKey `json:"token_b_mint"`
	PoolType   PoolType         `json:"pool_type"`
	Pool       solana.PublicKey `json:"pool"`
}

func (e *PoolCreated) UnmarshalWithReader(r *borsh.Reader) {
	e.LpMint = r.PublicKey("lp_mint")
	e.TokenAMint = r.PublicKey("token_a_mint")
	e.TokenBMint = r.PublicKey("token_b_mint")
	e.PoolType = PoolType(r.Enum("pool_type", e.PoolType.EnumVariants()))
	e.Pool = r.PublicKey("pool")
}

func (e *PoolCreated) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.LpMint)
	w.PublicKey(e.TokenAMint)
	w.PublicKey(e.TokenBMint)
	w.Enum("pool_type", uint8(e.PoolType), e.PoolType.EnumVariants())
	w.PublicKey(e.Pool)
}

type PoolEnabled struct {
	Pool    solana.PublicKey `json:"pool"`
	Enabled bool             `json:"enabled"`
}

func (e *PoolEnabled) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Enabled = r.Bool("enabled")
}

func (e *PoolEnabled) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.Bool(e.Enabled)
}

type MigrateFeeAccount struct {
	Pool              solana.PublicKey `json:"pool"`
	NewAdminTokenAFee solana.PublicKey `json:"new_admin_token_a_fee"`
	NewAdminTokenBFee solana.PublicKey `json:"new_admin_token_b_fee"`
	TokenAAmount      uint64           `json:"token_a_amount"`
	TokenBAmount      uint64           `json:"token_b_amount"`
}

func (e *MigrateFeeAccount) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.NewAdminTokenAFee = r.PublicKey("new_admin_token_a_fee")
	e.NewAdminTokenBFee = r.PublicKey("new_admin_token_b_fee")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
}

func (e *MigrateFeeAccount) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.NewAdminTokenAFee)
	w.PublicKey(e.NewAdminTokenBFee)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
}

type CreateLockEscrow struct {
	Pool  solana.PublicKey `json:"pool"`
	Owner solana.PublicKey `json:"owner"`
}

func (e *CreateLockEscrow) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Owner = r.PublicKey("owner")
}

func (e *CreateLockEscrow) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Owner)
}

type Lock struct {
	Pool   solana.PublicKey `json:"pool"`
	Owner  solana.PublicKey `json:"owner"`
	Amount uint64           `json:"amount"`
}

func (e *Lock) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Owner = r.PublicKey("owner")
	e.Amount = r.U64("amount")
}

func (e *Lock) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Owner)
	w.U64(e.Amount)
}

type ClaimFee struct {
	Pool   solana.PublicKey `json:"pool"`
	Owner  solana.PublicKey `json:"owner"`
	Amount uint64           `json:"amount"`
	AFee   uint64           `json:"a_fee"`
	BFee   uint64           `json:"b_fee"`
}

func (e *ClaimFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Owner = r.PublicKey("owner")
	e.Amount = r.U64("amount")
	e.AFee = r.U64("a_fee")
	e.BFee = r.U64("b_fee")
}

func (e *ClaimFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Owner)
	w.U64(e.Amount)
	w.U64(e.AFee)
	w.U64(e.BFee)
}

type CreateConfig struct {
	TradeFeeNumerator         uint64           `json:"trade_fee_numerator"`
	ProtocolTradeFeeNumerator uint64           `json:"protocol_trade_fee_numerator"`
	Config                    solana.PublicKey `json:"config"`
}

func (e *CreateConfig) UnmarshalWithReader(r *borsh.Reader) {
	e.TradeFeeNumerator = r.U64("trade_fee_numerator")
	e.ProtocolTradeFeeNumerator = r.U64("protocol_trade_fee_numerator")
	e.Config = r.PublicKey("config")
}

func (e *CreateConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.TradeFeeNumerator)
	w.U64(e.ProtocolTradeFeeNumerator)
	w.PublicKey(e.Config)
}

type CloseConfig struct {
	Config solana.PublicKey `json:"config"`
}

func (e *CloseConfig) UnmarshalWithReader(r *borsh.Reader) {
	e.Config = r.PublicKey("config")
}

func (e *CloseConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Config)
}

type WithdrawProtocolFees struct {
	Pool              solana.PublicKey `json:"pool"`
	ProtocolAFee      uint64           `json:"protocol_a_fee"`
	ProtocolBFee      uint64           `json:"protocol_b_fee"`
	ProtocolAFeeOwner solana.PublicKey `json:"protocol_a_fee_owner"`
	ProtocolBFeeOwner solana.PublicKey `json:"protocol_b_fee_owner"`
}

func (e *WithdrawProtocolFees) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.ProtocolAFee = r.U64("protocol_a_fee")
	e.ProtocolBFee = r.U64("protocol_b_fee")
	e.ProtocolAFeeOwner = r.PublicKey("protocol_a_fee_owner")
	e.ProtocolBFeeOwner = r.PublicKey("protocol_b_fee_owner")
}

func (e *WithdrawProtocolFees) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.ProtocolAFee)
	w.U64(e.ProtocolBFee)
	w.PublicKey(e.ProtocolAFeeOwner)
	w.PublicKey(e.ProtocolBFeeOwner)
}

type PartnerClaimFees struct {
	Pool    solana.PublicKey `json:"pool"`
	FeeA    uint64           `json:"fee_a"`
	FeeB    uint64           `json:"fee_b"`
	Partner solana.PublicKey `json:"partner"`
}

func (e *PartnerClaimFees) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.FeeA = r.U64("fee_a")
	e.FeeB = r.U64("fee_b")
	e.Partner = r.PublicKey("partner")
}

func (e *PartnerClaimFees) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.FeeA)
	w.U64(e.FeeB)
	w.PublicKey(e.Partner)
}
