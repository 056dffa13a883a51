package pumpswap

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

// TradeAccounts are the accounts reported at the end of buy and sell events.
type TradeAccounts struct {
	Pool                             solana.PublicKey `json:"pool"`
	User                             solana.PublicKey `json:"user"`
	UserBaseTokenAccount             solana.PublicKey `json:"user_base_token_account"`
	UserQuoteTokenAccount            solana.PublicKey `json:"user_quote_token_account"`
	ProtocolFeeRecipient             solana.PublicKey `json:"protocol_fee_recipient"`
	ProtocolFeeRecipientTokenAccount solana.PublicKey `json:"protocol_fee_recipient_token_account"`
}

func (a *TradeAccounts) UnmarshalWithReader(r *borsh.Reader) {
	a.Pool = r.PublicKey("pool")
	a.User = r.PublicKey("user")
	a.UserBaseTokenAccount = r.PublicKey("user_base_token_account")
	a.UserQuoteTokenAccount = r.PublicKey("user_quote_token_account")
	a.ProtocolFeeRecipient = r.PublicKey("protocol_fee_recipient")
	a.ProtocolFeeRecipientTokenAccount = r.PublicKey("protocol_fee_recipient_token_account")
}

func (a *TradeAccounts) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Pool)
	w.PublicKey(a.User)
	w.PublicKey(a.UserBaseTokenAccount)
	w.PublicKey(a.UserQuoteTokenAccount)
	w.PublicKey(a.ProtocolFeeRecipient)
	w.PublicKey(a.ProtocolFeeRecipientTokenAccount)
}

type BuyEvent struct {
	Timestamp              int64  `json:"timestamp"`
	BaseAmountOut          uint64 `json:"base_amount_out"`
	MaxQuoteAmountIn       uint64 `json:"max_quote_amount_in"`
	UserBaseTokenReserves  uint64 `json:"user_base_token_reserves"`
	UserQuoteTokenReserves uint64 `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves  uint64 `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves uint64 `json:"pool_quote_token_reserves"`
	QuoteAmountIn          uint64 `json:"quote_amount_in"`
	LpFeeBasisPoints       uint64 `json:"lp_fee_basis_points"`
	LpFee                  uint64 `json:"lp_fee"`
	ProtocolFeeBasisPoints uint64 `json:"protocol_fee_basis_points"`
	ProtocolFee            uint64 `json:"protocol_fee"`
	QuoteAmountInWithLpFee uint64 `json:"quote_amount_in_with_lp_fee"`
	UserQuoteAmountIn      uint64 `json:"user_quote_amount_in"`
	TradeAccounts
}

func (e *BuyEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.BaseAmountOut = r.U64("base_amount_out")
	e.MaxQuoteAmountIn = r.U64("max_quote_amount_in")
	e.UserBaseTokenReserves = r.U64("user_base_token_reserves")
	e.UserQuoteTokenReserves = r.U64("user_quote_token_reserves")
	e.PoolBaseTokenReserves = r.U64("pool_base_token_reserves")
	e.PoolQuoteTokenReserves = r.U64("pool_quote_token_reserves")
	e.QuoteAmountIn = r.U64("quote_amount_in")
	e.LpFeeBasisPoints = r.U64("lp_fee_basis_points")
	e.LpFee = r.U64("lp_fee")
	e.ProtocolFeeBasisPoints = r.U64("protocol_fee_basis_points")
	e.ProtocolFee = r.U64("protocol_fee")
	e.QuoteAmountInWithLpFee = r.U64("quote_amount_in_with_lp_fee")
	e.UserQuoteAmountIn = r.U64("user_quote_amount_in")
	e.TradeAccounts.UnmarshalWithReader(r)
}

func (e *BuyEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.U64(e.BaseAmountOut)
	w.U64(e.MaxQuoteAmountIn)
	w.U64(e.UserBaseTokenReserves)
	w.U64(e.UserQuoteTokenReserves)
	w.U64(e.PoolBaseTokenReserves)
	w.U64(e.PoolQuoteTokenReserves)
	w.U64(e.QuoteAmountIn)
	w.U64(e.LpFeeBasisPoints)
	w.U64(e.LpFee)
	w.U64(e.ProtocolFeeBasisPoints)
	w.U64(e.ProtocolFee)
	w.U64(e.QuoteAmountInWithLpFee)
	w.U64(e.UserQuoteAmountIn)
	e.TradeAccounts.MarshalWithWriter(w)
}

type SellEvent struct {
	Timestamp                  int64  `json:"timestamp"`
	BaseAmountIn               uint64 `json:"base_amount_in"`
	MinQuoteAmountOut          uint64 `json:"min_quote_amount_out"`
	UserBaseTokenReserves      uint64 `json:"user_base_token_reserves"`
	UserQuoteTokenReserves     uint64 `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves      uint64 `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves     uint64 `json:"pool_quote_token_reserves"`
	QuoteAmountOut             uint64 `json:"quote_amount_out"`
	LpFeeBasisPoints           uint64 `json:"lp_fee_basis_points"`
	LpFee                      uint64 `json:"lp_fee"`
	ProtocolFeeBasisPoints     uint64 `json:"protocol_fee_basis_points"`
	ProtocolFee                uint64 `json:"protocol_fee"`
	QuoteAmountOutWithoutLpFee uint64 `json:"quote_amount_out_without_lp_fee"`
	UserQuoteAmountOut         uint64 `json:"user_quote_amount_out"`
	TradeAccounts
}

func (e *SellEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.BaseAmountIn = r.U64("base_amount_in")
	e.MinQuoteAmountOut = r.U64("min_quote_amount_out")
	e.UserBaseTokenReserves = r.U64("user_base_token_reserves")
	e.UserQuoteTokenReserves = r.U64("user_quote_token_reserves")
	e.PoolBaseTokenReserves = r.U64("pool_base_token_reserves")
	e.PoolQuoteTokenReserves = r.U64("pool_quote_token_reserves")
	e.QuoteAmountOut = r.U64("quote_amount_out")
	e.LpFeeBasisPoints = r.U64("lp_fee_basis_points")
	e.LpFee = r.U64("lp_fee")
	e.ProtocolFeeBasisPoints = r.U64("protocol_fee_basis_points")
	e.ProtocolFee = r.U64("protocol_fee")
	e.QuoteAmountOutWithoutLpFee = r.U64("quote_amount_out_without_lp_fee")
	e.UserQuoteAmountOut = r.U64("user_quote_amount_out")
	e.TradeAccounts.UnmarshalWithReader(r)
}

func (e *SellEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.U64(e.BaseAmountIn)
	w.U64(e.MinQuoteAmountOut)
	w.U64(e.UserBaseTokenReserves)
	w.U64(e.UserQuoteTokenReserves)
	w.U64(e.PoolBaseTokenReserves)
	w.U64(e.PoolQuoteTokenReserves)
	w.U64(e.QuoteAmountOut)
	w.U64(e.LpFeeBasisPoints)
	w.U64(e.LpFee)
	w.U64(e.ProtocolFeeBasisPoints)
	w.U64(e.ProtocolFee)
	w.U64(e.QuoteAmountOutWithoutLpFee)
	w.U64(e.UserQuoteAmountOut)
	e.TradeAccounts.MarshalWithWriter(w)
}

type CreateConfigEvent struct {
	Timestamp              int64                                   `json:"timestamp"`
	Admin                  solana.PublicKey                        `json:"admin"`
	LpFeeBasisPoints       uint64                                  `json:"lp_fee_basis_points"`
	ProtocolFeeBasisPoints uint64                                  `json:"protocol_fee_basis_points"`
	ProtocolFeeRecipients  [ProtocolFeeRecipients]solana.PublicKey `json:"protocol_fee_recipients"`
}

func (e *CreateConfigEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Admin = r.PublicKey("admin")
	e.LpFeeBasisPoints = r.U64("lp_fee_basis_points")
	e.ProtocolFeeBasisPoints = r.U64("protocol_fee_basis_points")
	borsh.ReadArray(r, "protocol_fee_recipients", e.ProtocolFeeRecipients[:], (*borsh.Reader).PublicKey)
}

func (e *CreateConfigEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Admin)
	w.U64(e.LpFeeBasisPoints)
	w.U64(e.ProtocolFeeBasisPoints)
	borsh.WriteArray(w, e.ProtocolFeeRecipients[:], (*borsh.Writer).PublicKey)
}

type CreatePoolEvent struct {
	Timestamp             int64            `json:"timestamp"`
	Index                 uint16           `json:"index"`
	Creator               solana.PublicKey `json:"creator"`
	BaseMint              solana.PublicKey `json:"base_mint"`
	QuoteMint             solana.PublicKey `json:"quote_mint"`
	BaseMintDecimals      uint8            `json:"base_mint_decimals"`
	QuoteMintDecimals     uint8            `json:"quote_mint_decimals"`
	BaseAmountIn          uint64           `json:"base_amount_in"`
	QuoteAmountIn         uint64           `json:"quote_amount_in"`
	PoolBaseAmount        uint64           `json:"pool_base_amount"`
	PoolQuoteAmount       uint64           `json:"pool_quote_amount"`
	MinimumLiquidity      uint64           `json:"minimum_liquidity"`
	InitialLiquidity      uint64           `json:"initial_liquidity"`
	LpTokenAmountOut      uint64           `json:"lp_token_amount_out"`
	PoolBump              uint8            `json:"pool_bump"`
	Pool                  solana.PublicKey `json:"pool"`
	LpMint                solana.PublicKey `json:"lp_mint"`
	UserBaseTokenAccount  solana.PublicKey `json:"user_base_token_account"`
	UserQuoteTokenAccount solana.PublicKey `json:"user_quote_token_account"`
}

func (e *CreatePoolEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Index = r.U16("index")
	e.Creator = r.PublicKey("creator")
	e.BaseMint = r.PublicKey("base_mint")
	e.QuoteMint = r.PublicKey("quote_mint")
	e.BaseMintDecimals = r.U8("base_mint_decimals")
	e.QuoteMintDecimals = r.U8("quote_mint_decimals")
	e.BaseAmountIn = r.U64("base_amount_in")
	e.QuoteAmountIn = r.U64("quote_amount_in")
	e.PoolBaseAmount = r.U64("pool_base_amount")
	e.PoolQuoteAmount = r.U64("pool_quote_amount")
	e.MinimumLiquidity = r.U64("minimum_liquidity")
	e.InitialLiquidity = r.U64("initial_liquidity")
	e.LpTokenAmountOut = r.U64("lp_token_amount_out")
	e.PoolBump = r.U8("pool_bump")
	e.Pool = r.PublicKey("pool")
	e.LpMint = r.PublicKey("lp_mint")
	e.UserBaseTokenAccount = r.PublicKey("user_base_token_account")
	e.UserQuoteTokenAccount = r.PublicKey("user_quote_token_account")
}

func (e *CreatePoolEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.U16(e.Index)
	w.PublicKey(e.Creator)
	w.PublicKey(e.BaseMint)
	w.PublicKey(e.QuoteMint)
	w.U8(e.BaseMintDecimals)
	w.U8(e.QuoteMintDecimals)
	w.U64(e.BaseAmountIn)
	w.U64(e.QuoteAmountIn)
	w.U64(e.PoolBaseAmount)
	w.U64(e.PoolQuoteAmount)
	w.U64(e.MinimumLiquidity)
	w.U64(e.InitialLiquidity)
	w.U64(e.LpTokenAmountOut)
	w.U8(e.PoolBump)
	w.PublicKey(e.Pool)
	w.PublicKey(e.LpMint)
	w.PublicKey(e.UserBaseTokenAccount)
	w.PublicKey(e.UserQuoteTokenAccount)
}

type DepositEvent struct {
	Timestamp              int64            `json:"timestamp"`
	LpTokenAmountOut       uint64           `json:"lp_token_amount_out"`
	MaxBaseAmountIn        uint64           `json:"max_base_amount_in"`
	MaxQuoteAmountIn       uint64           `json:"max_quote_amount_in"`
	UserBaseTokenReserves  uint64           `json:"user_base_token_reserves"`
	UserQuoteTokenReserves uint64           `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves  uint64           `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves uint64           `json:"pool_quote_token_reserves"`
	BaseAmountIn           uint64           `json:"base_amount_in"`
	QuoteAmountIn          uint64           `json:"quote_amount_in"`
	LpMintSupply           uint64           `json:"lp_mint_supply"`
	Pool                   solana.PublicKey `json:"pool"`
	User                   solana.PublicKey `json:"user"`
	UserBaseTokenAccount   solana.PublicKey `json:"user_base_token_account"`
	UserQuoteTokenAccount  solana.PublicKey `json:"user_quote_token_account"`
	UserPoolTokenAccount   solana.PublicKey `json:"user_pool_token_account"`
}

func (e *DepositEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.LpTokenAmountOut = r.U64("lp_token_amount_out")
	e.MaxBaseAmountIn = r.U64("max_base_amount_in")
	e.MaxQuoteAmountIn = r.U64("max_quote_amount_in")
	e.UserBaseTokenReserves = r.U64("user_base_token_reserves")
	e.UserQuoteTokenReserves = r.U64("user_quote_token_reserves")
	e.PoolBaseTokenReserves = r.U64("pool_base_token_reserves")
	e.PoolQuoteTokenReserves = r.U64("pool_quote_token_reserves")
	e.BaseAmountIn = r.U64("base_amount_in")
	e.QuoteAmountIn = r.U64("quote_amount_in")
	e.LpMintSupply = r.U64("lp_mint_supply")
	e.Pool = r.PublicKey("pool")
	e.User = r.PublicKey("user")
	e.UserBaseTokenAccount = r.PublicKey("user_base_token_account")
	e.UserQuoteTokenAccount = r.PublicKey("user_quote_token_account")
	e.UserPoolTokenAccount = r.PublicKey("user_pool_token_account")
}

func (e *DepositEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.U64(e.LpTokenAmountOut)
	w.U64(e.MaxBaseAmountIn)
	w.U64(e.MaxQuoteAmountIn)
	w.U64(e.UserBaseTokenReserves)
	w.U64(e.UserQuoteTokenReserves)
	w.U64(e.PoolBaseTokenReserves)
	w.U64(e.PoolQuoteTokenReserves)
	w.U64(e.BaseAmountIn)
	w.U64(e.QuoteAmountIn)
	w.U64(e.LpMintSupply)
	w.PublicKey(e.Pool)
	w.PublicKey(e.User)
	w.PublicKey(e.UserBaseTokenAccount)
	w.PublicKey(e.UserQuoteTokenAccount)
	w.PublicKey(e.UserPoolTokenAccount)
}

type DisableEvent struct {
	Timestamp         int64            `json:"timestamp"`
	Admin             solana.PublicKey `json:"admin"`
	DisableCreatePool bool             `json:"disable_create_pool"`
	DisableDeposit    bool             `json:"disable_deposit"`
	DisableWithdraw   bool             `json:"disable_withdraw"`
	DisableBuy        bool             `json:"disable_buy"`
	DisableSell       bool             `json:"disable_sell"`
}

func (e *DisableEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Admin = r.PublicKey("admin")
	e.DisableCreatePool = r.Bool("disable_create_pool")
	e.DisableDeposit = r.Bool("disable_deposit")
	e.DisableWithdraw = r.Bool("disable_withdraw")
	e.DisableBuy = r.Bool("disable_buy")
	e.DisableSell = r.Bool("disable_sell")
}

func (e *DisableEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Admin)
	w.Bool(e.DisableCreatePool)
	w.Bool(e.DisableDeposit)
	w.Bool(e.DisableWithdraw)
	w.Bool(e.DisableBuy)
	w.Bool(e.DisableSell)
}

type ExtendAccountEvent struct {
	Timestamp   int64            `json:"timestamp"`
	Account     solana.PublicKey `json:"account"`
	User        solana.PublicKey `json:"user"`
	CurrentSize uint64           `json:"current_size"`
	NewSize     uint64           `json:"new_size"`
}

func (e *ExtendAccountEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Account = r.PublicKey("account")
	e.User = r.PublicKey("user")
	e.CurrentSize = r.U64("current_size")
	e.NewSize = r.U64("new_size")
}

func (e *ExtendAccountEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Account)
	w.PublicKey(e.User)
	w.U64(e.CurrentSize)
	w.U64(e.NewSize)
}

type UpdateAdminEvent struct {
	NewAdmin  solana.PublicKey `json:"new_admin"`
	OldAdmin  solana.PublicKey `json:"old_admin"`
	Timestamp int64            `json:"timestamp"`
}

func (e *UpdateAdminEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.NewAdmin = r.PublicKey("new_admin")
	e.OldAdmin = r.PublicKey("old_admin")
	e.Timestamp = r.I64("timestamp")
}

func (e *UpdateAdminEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.NewAdmin)
	w.PublicKey(e.OldAdmin)
	w.I64(e.Timestamp)
}

type UpdateFeeConfigEvent struct {
	Timestamp int64            `json:"timestamp"`
	NewFee    uint64           `json:"new_fee"`
	OldFee    uint64           `json:"old_fee"`
	Admin     solana.PublicKey `json:"admin"`
}

func (e *UpdateFeeConfigEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.NewFee = r.U64("new_fee")
	e.OldFee = r.U64("old_fee")
	e.Admin = r.PublicKey("admin")
}

func (e *UpdateFeeConfigEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.U64(e.NewFee)
	w.U64(e.OldFee)
	w.PublicKey(e.Admin)
}

type WithdrawEvent struct {
	PoolID            solana.PublicKey `json:"pool_id"`
	LpAmountBurned    uint64           `json:"lp_amount_burned"`
	Token0Amount      uint64           `json:"token0_amount"`
	Token1Amount      uint64           `json:"token1_amount"`
	Token0TransferFee uint64           `json:"token0_transfer_fee"`
	Token1TransferFee uint64           `json:"token1_transfer_fee"`
}

func (e *WithdrawEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolID = r.PublicKey("pool_id")
	e.LpAmountBurned = r.U64("lp_amount_burned")
	e.Token0Amount = r.U64("token0_amount")
	e.Token1Amount = r.U64("token1_amount")
	e.Token0TransferFee = r.U64("token0_transfer_fee")
	e.Token1TransferFee = r.U64("token1_transfer_fee")
}

func (e *WithdrawEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolID)
	w.U64(e.LpAmountBurned)
	w.U64(e.Token0Amount)
	w.U64(e.Token1Amount)
	w.U64(e.Token0TransferFee)
	w.U64(e.Token1TransferFee)
}
