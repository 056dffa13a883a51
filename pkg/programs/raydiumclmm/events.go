package raydiumclmm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const NumRewards = 3

type ConfigChangeEvent struct {
	Index           uint16           `json:"index"`
	Owner           solana.PublicKey `json:"owner"`
	ProtocolFeeRate uint32           `json:"protocol_fee_rate"`
	TradeFeeRate    uint32           `json:"trade_fee_rate"`
	TickSpacing     uint16           `json:"tick_spacing"`
	FundFeeRate     uint32           `json:"fund_fee_rate"`
	FundOwner       solana.PublicKey `json:"fund_owner"`
}

func (e *ConfigChangeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Index = r.U16("index")
	e.Owner = r.PublicKey("owner")
	e.ProtocolFeeRate = r.U32("protocol_fee_rate")
	e.TradeFeeRate = r.U32("trade_fee_rate")
	e.TickSpacing = r.U16("tick_spacing")
	e.FundFeeRate = r.U32("fund_fee_rate")
	e.FundOwner = r.PublicKey("fund_owner")
}

func (e *ConfigChangeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.U16(e.Index)
	w.PublicKey(e.Owner)
	w.U32(e.ProtocolFeeRate)
	w.U32(e.TradeFeeRate)
	w.U16(e.TickSpacing)
	w.U32(e.FundFeeRate)
	w.PublicKey(e.FundOwner)
}

type CreatePersonalPositionEvent struct {
	PoolState                 solana.PublicKey `json:"pool_state"`
	Minter                    solana.PublicKey `json:"minter"`
	NftOwner                  solana.PublicKey `json:"nft_owner"`
	TickLowerIndex            int32            `json:"tick_lower_index"`
	TickUpperIndex            int32            `json:"tick_upper_index"`
	Liquidity                 borsh.Uint128    `json:"liquidity"`
	DepositAmount0            uint64           `json:"deposit_amount0"`
	DepositAmount1            uint64           `json:"deposit_amount1"`
	DepositAmount0TransferFee uint64           `json:"deposit_amount0_transfer_fee"`
	DepositAmount1TransferFee uint64           `json:"deposit_amount1_transfer_fee"`
}

func (e *CreatePersonalPositionEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Minter = r.PublicKey("minter")
	e.NftOwner = r.PublicKey("nft_owner")
	e.TickLowerIndex = r.I32("tick_lower_index")
	e.TickUpperIndex = r.I32("tick_upper_index")
	e.Liquidity = r.U128("liquidity")
	e.DepositAmount0 = r.U64("deposit_amount0")
	e.DepositAmount1 = r.U64("deposit_amount1")
	e.DepositAmount0TransferFee = r.U64("deposit_amount0_transfer_fee")
	e.DepositAmount1TransferFee = r.U64("deposit_amount1_transfer_fee")
}

func (e *CreatePersonalPositionEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.Minter)
	w.PublicKey(e.NftOwner)
	w.I32(e.TickLowerIndex)
	w.I32(e.TickUpperIndex)
	w.U128(e.Liquidity)
	w.U64(e.DepositAmount0)
	w.U64(e.DepositAmount1)
	w.U64(e.DepositAmount0TransferFee)
	w.U64(e.DepositAmount1TransferFee)
}

type IncreaseLiquidityEvent struct {
	PositionNftMint    solana.PublicKey `json:"position_nft_mint"`
	Liquidity          borsh.Uint128    `json:"liquidity"`
	Amount0            uint64           `json:"amount0"`
	Amount1            uint64           `json:"amount1"`
	Amount0TransferFee uint64           `json:"amount0_transfer_fee"`
	Amount1TransferFee uint64           `json:"amount1_transfer_fee"`
}

func (e *IncreaseLiquidityEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PositionNftMint = r.PublicKey("position_nft_mint")
	e.Liquidity = r.U128("liquidity")
	e.Amount0 = r.U64("amount0")
	e.Amount1 = r.U64("amount1")
	e.Amount0TransferFee = r.U64("amount0_transfer_fee")
	e.Amount1TransferFee = r.U64("amount1_transfer_fee")
}

func (e *IncreaseLiquidityEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PositionNftMint)
	w.U128(e.Liquidity)
	w.U64(e.Amount0)
	w.U64(e.Amount1)
	w.U64(e.Amount0TransferFee)
	w.U64(e.Amount1TransferFee)
}

type DecreaseLiquidityEvent struct {
	PositionNftMint solana.PublicKey   `json:"position_nft_mint"`
	Liquidity       borsh.Uint128      `json:"liquidity"`
	DecreaseAmount0 uint64             `json:"decrease_amount0"`
	DecreaseAmount1 uint64             `json:"decrease_amount1"`
	FeeAmount0      uint64             `json:"fee_amount0"`
	FeeAmount1      uint64             `json:"fee_amount1"`
	RewardAmounts   [NumRewards]uint64 `json:"reward_amounts"`
	TransferFee0    uint64             `json:"transfer_fee0"`
	TransferFee1    uint64             `json:"transfer_fee1"`
}

func (e *DecreaseLiquidityEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PositionNftMint = r.PublicKey("position_nft_mint")
	e.Liquidity = r.U128("liquidity")
	e.DecreaseAmount0 = r.U64("decrease_amount0")
	e.DecreaseAmount1 = r.U64("decrease_amount1")
	e.FeeAmount0 = r.U64("fee_amount0")
	e.FeeAmount1 = r.U64("fee_amount1")
	borsh.ReadArray(r, "reward_amounts", e.RewardAmounts[:], (*borsh.Reader).U64)
	e.TransferFee0 = r.U64("transfer_fee0")
	e.TransferFee1 = r.U64("transfer_fee1")
}

func (e *DecreaseLiquidityEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PositionNftMint)
	w.U128(e.Liquidity)
	w.U64(e.DecreaseAmount0)
	w.U64(e.DecreaseAmount1)
	w.U64(e.FeeAmount0)
	w.U64(e.FeeAmount1)
	borsh.WriteArray(w, e.RewardAmounts[:], (*borsh.Writer).U64)
	w.U64(e.TransferFee0)
	w.U64(e.TransferFee1)
}

type LiquidityCalculateEvent struct {
	PoolLiquidity    borsh.Uint128 `json:"pool_liquidity"`
	PoolSqrtPriceX64 borsh.Uint128 `json:"pool_sqrt_price_x64"`
	PoolTick         int32         `json:"pool_tick"`
	CalcAmount0      uint64        `json:"calc_amount0"`
	CalcAmount1      uint64        `json:"calc_amount1"`
	TradeFeeOwed0    uint64        `json:"trade_fee_owed0"`
	TradeFeeOwed1    uint64        `json:"trade_fee_owed1"`
	TransferFee0     uint64        `json:"transfer_fee0"`
	TransferFee1     uint64        `json:"transfer_fee1"`
}

func (e *LiquidityCalculateEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolLiquidity = r.U128("pool_liquidity")
	e.PoolSqrtPriceX64 = r.U128("pool_sqrt_price_x64")
	e.PoolTick = r.I32("pool_tick")
	e.CalcAmount0 = r.U64("calc_amount0")
	e.CalcAmount1 = r.U64("calc_amount1")
	e.TradeFeeOwed0 = r.U64("trade_fee_owed0")
	e.TradeFeeOwed1 = r.U64("trade_fee_owed1")
	e.TransferFee0 = r.U64("transfer_fee0")
	e.TransferFee1 = r.U64("transfer_fee1")
}

func (e *LiquidityCalculateEvent) MarshalWithWriter(w *borsh.Writer) {
	w.U128(e.PoolLiquidity)
	w.U128(e.PoolSqrtPriceX64)
	w.I32(e.PoolTick)
	w.U64(e.CalcAmount0)
	w.U64(e.CalcAmount1)
	w.U64(e.TradeFeeOwed0)
	w.U64(e.TradeFeeOwed1)
	w.U64(e.TransferFee0)
	w.U64(e.TransferFee1)
}

type CollectPersonalFeeEvent struct {
	PositionNftMint        solana.PublicKey `json:"position_nft_mint"`
	RecipientTokenAccount0 solana.PublicKey `json:"recipient_token_account0"`
	RecipientTokenAccount1 solana.PublicKey `json:"recipient_token_account1"`
	Amount0                uint64           `json:"amount0"`
	Amount1                uint64           `json:"amount1"`
}

func (e *CollectPersonalFeeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PositionNftMint = r.PublicKey("position_nft_mint")
	e.RecipientTokenAccount0 = r.PublicKey("recipient_token_account0")
	e.RecipientTokenAccount1 = r.PublicKey("recipient_token_account1")
	e.Amount0 = r.U64("amount0")
	e.Amount1 = r.U64("amount1")
}

func (e *CollectPersonalFeeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PositionNftMint)
	w.PublicKey(e.RecipientTokenAccount0)
	w.PublicKey(e.RecipientTokenAccount1)
	w.U64(e.Amount0)
	w.U64(e.Amount1)
}

type UpdateRewardInfosEvent struct {
	RewardGrowthGlobalX64 [NumRewards]borsh.Uint128 `json:"reward_growth_global_x64"`
}

func (e *UpdateRewardInfosEvent) UnmarshalWithReader(r *borsh.Reader) {
	borsh.ReadArray(r, "reward_growth_global_x64", e.RewardGrowthGlobalX64[:], (*borsh.Reader).U128)
}

func (e *UpdateRewardInfosEvent) MarshalWithWriter(w *borsh.Writer) {
	borsh.WriteArray(w, e.RewardGrowthGlobalX64[:], (*borsh.Writer).U128)
}

type PoolCreatedEvent struct {
	TokenMint0   solana.PublicKey `json:"token_mint0"`
	TokenMint1   solana.PublicKey `json:"token_mint1"`
	TickSpacing  uint16           `json:"tick_spacing"`
	PoolState    solana.PublicKey `json:"pool_state"`
	SqrtPriceX64 borsh.Uint128    `json:"sqrt_price_x64"`
	Tick         int32            `json:"tick"`
	TokenVault0  solana.PublicKey `json:"token_vault0"`
	TokenVault1  solana.PublicKey `json:"token_vault1"`
}

func (e *PoolCreatedEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.TokenMint0 = r.PublicKey("token_mint0")
	e.TokenMint1 = r.PublicKey("token_mint1")
	e.TickSpacing = r.U16("tick_spacing")
	e.PoolState = r.PublicKey("pool_state")
	e.SqrtPriceX64 = r.U128("sqrt_price_x64")
	e.Tick = r.I32("tick")
	e.TokenVault0 = r.PublicKey("token_vault0")
	e.TokenVault1 = r.PublicKey("token_vault1")
}

func (e *PoolCreatedEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.TokenMint0)
	w.PublicKey(e.TokenMint1)
	w.U16(e.TickSpacing)
	w.PublicKey(e.PoolState)
	w.U128(e.SqrtPriceX64)
	w.I32(e.Tick)
	w.PublicKey(e.TokenVault0)
	w.PublicKey(e.TokenVault1)
}

type CollectProtocolFeeEvent struct {
	PoolState              solana.PublicKey `json:"pool_state"`
	RecipientTokenAccount0 solana.PublicKey `json:"recipient_token_account0"`
	RecipientTokenAccount1 solana.PublicKey `json:"recipient_token_account1"`
	Amount0                uint64           `json:"amount0"`
	Amount1                uint64           `json:"amount1"`
}

func (e *CollectProtocolFeeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.RecipientTokenAccount0 = r.PublicKey("recipient_token_account0")
	e.RecipientTokenAccount1 = r.PublicKey("recipient_token_account1")
	e.Amount0 = r.U64("amount0")
	e.Amount1 = r.U64("amount1")
}

func (e *CollectProtocolFeeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.RecipientTokenAccount0)
	w.PublicKey(e.RecipientTokenAccount1)
	w.U64(e.Amount0)
	w.U64(e.Amount1)
}

type LiquidityChangeEvent struct {
	PoolState       solana.PublicKey `json:"pool_state"`
	Tick            int32            `json:"tick"`
	TickLower       int32            `json:"tick_lower"`
	TickUpper       int32            `json:"tick_upper"`
	LiquidityBefore borsh.Uint128    `json:"liquidity_before"`
	LiquidityAfter  borsh.Uint128    `json:"liquidity_after"`
}

func (e *LiquidityChangeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Tick = r.I32("tick")
	e.TickLower = r.I32("tick_lower")
	e.TickUpper = r.I32("tick_upper")
	e.LiquidityBefore = r.U128("liquidity_before")
	e.LiquidityAfter = r.U128("liquidity_after")
}

func (e *LiquidityChangeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.I32(e.Tick)
	w.I32(e.TickLower)
	w.I32(e.TickUpper)
	w.U128(e.LiquidityBefore)
	w.U128(e.LiquidityAfter)
}

// SwapEvent is emitted once per swap.
type SwapEvent struct {
	PoolState     solana.PublicKey `json:"pool_state"`
	Sender        solana.PublicKey `json:"sender"`
	TokenAccount0 solana.PublicKey `json:"token_account_0"`
	TokenAccount1 solana.PublicKey `json:"token_account_1"`
	Amount0       uint64           `json:"amount_0"`
	TransferFee0  uint64           `json:"transfer_fee_0"`
	Amount1       uint64           `json:"amount_1"`
	TransferFee1  uint64           `json:"transfer_fee_1"`
	ZeroForOne    bool             `json:"zero_for_one"`
	SqrtPriceX64  borsh.Uint128    `json:"sqrt_price_x64"`
	Liquidity     borsh.Uint128    `json:"liquidity"`
	Tick          int32            `json:"tick"`
}

func (e *SwapEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolState = r.PublicKey("pool_state")
	e.Sender = r.PublicKey("sender")
	e.TokenAccount0 = r.PublicKey("token_account_0")
	e.TokenAccount1 = r.PublicKey("token_account_1")
	e.Amount0 = r.U64("amount_0")
	e.TransferFee0 = r.U64("transfer_fee_0")
	e.Amount1 = r.U64("amount_1")
	e.TransferFee1 = r.U64("transfer_fee_1")
	e.ZeroForOne = r.Bool("zero_for_one")
	e.SqrtPriceX64 = r.U128("sqrt_price_x64")
	e.Liquidity = r.U128("liquidity")
	e.Tick = r.I32("tick")
}

func (e *SwapEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolState)
	w.PublicKey(e.Sender)
	w.PublicKey(e.TokenAccount0)
	w.PublicKey(e.TokenAccount1)
	w.U64(e.Amount0)
	w.U64(e.TransferFee0)
	w.U64(e.Amount1)
	w.U64(e.TransferFee1)
	w.Bool(e.ZeroForOne)
	w.U128(e.SqrtPriceX64)
	w.U128(e.Liquidity)
	w.I32(e.Tick)
}
