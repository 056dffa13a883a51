package raydiumclmm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

// AmmConfig is a fee tier. The padding fields are not exposed.
type AmmConfig struct {
	Bump            uint8            `json:"bump"`
	Index           uint16           `json:"index"`
	Owner           solana.PublicKey `json:"owner"`
	ProtocolFeeRate uint32           `json:"protocol_fee_rate"`
	TradeFeeRate    uint32           `json:"trade_fee_rate"`
	TickSpacing     uint16           `json:"tick_spacing"`
	FundFeeRate     uint32           `json:"fund_fee_rate"`
	FundOwner       solana.PublicKey `json:"fund_owner"`
}

func (a *AmmConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Bump = r.U8("bump")
	a.Index = r.U16("index")
	a.Owner = r.PublicKey("owner")
	a.ProtocolFeeRate = r.U32("protocol_fee_rate")
	a.TradeFeeRate = r.U32("trade_fee_rate")
	a.TickSpacing = r.U16("tick_spacing")
	a.FundFeeRate = r.U32("fund_fee_rate")
	r.Padding("padding_u32", 4)
	a.FundOwner = r.PublicKey("fund_owner")
	r.Padding("padding", 3*8)
}

func (a *AmmConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U8(a.Bump)
	w.U16(a.Index)
	w.PublicKey(a.Owner)
	w.U32(a.ProtocolFeeRate)
	w.U32(a.TradeFeeRate)
	w.U16(a.TickSpacing)
	w.U32(a.FundFeeRate)
	w.Padding(4)
	w.PublicKey(a.FundOwner)
	w.Padding(3 * 8)
}

// PoolState is a concentrated-liquidity pool. The on-chain account reserves
// fixed padding after status and at the end; it is skipped on decode.
type PoolState struct {
	Bump                   [1]byte                      `json:"bump"`
	AmmConfig              solana.PublicKey             `json:"amm_config"`
	Owner                  solana.PublicKey             `json:"owner"`
	TokenMint0             solana.PublicKey             `json:"token_mint_0"`
	TokenMint1             solana.PublicKey             `json:"token_mint_1"`
	TokenVault0            solana.PublicKey             `json:"token_vault_0"`
	TokenVault1            solana.PublicKey             `json:"token_vault_1"`
	ObservationKey         solana.PublicKey             `json:"observation_key"`
	MintDecimals0          uint8                        `json:"mint_decimals_0"`
	MintDecimals1          uint8                        `json:"mint_decimals_1"`
	TickSpacing            uint16                       `json:"tick_spacing"`
	Liquidity              borsh.Uint128                `json:"liquidity"`
	SqrtPriceX64           borsh.Uint128                `json:"sqrt_price_x64"`
	TickCurrent            int32                        `json:"tick_current"`
	FeeGrowthGlobal0X64    borsh.Uint128                `json:"fee_growth_global_0_x64"`
	FeeGrowthGlobal1X64    borsh.Uint128                `json:"fee_growth_global_1_x64"`
	ProtocolFeesToken0     uint64                       `json:"protocol_fees_token_0"`
	ProtocolFeesToken1     uint64                       `json:"protocol_fees_token_1"`
	SwapInAmountToken0     borsh.Uint128                `json:"swap_in_amount_token_0"`
	SwapOutAmountToken1    borsh.Uint128                `json:"swap_out_amount_token_1"`
	SwapInAmountToken1     borsh.Uint128                `json:"swap_in_amount_token_1"`
	SwapOutAmountToken0    borsh.Uint128                `json:"swap_out_amount_token_0"`
	Status                 uint8                        `json:"status"`
	RewardInfos            [NumRewards]RewardInfo       `json:"reward_infos"`
	TickArrayBitmap        [TickArrayBitmapWords]uint64 `json:"tick_array_bitmap"`
	TotalFeesToken0        uint64                       `json:"total_fees_token_0"`
	TotalFeesClaimedToken0 uint64                       `json:"total_fees_claimed_token_0"`
	TotalFeesToken1        uint64                       `json:"total_fees_token_1"`
	TotalFeesClaimedToken1 uint64                       `json:"total_fees_claimed_token_1"`
	FundFeesToken0         uint64                       `json:"fund_fees_token_0"`
	FundFeesToken1         uint64                       `json:"fund_fees_token_1"`
	OpenTime               uint64                       `json:"open_time"`
	RecentEpoch            uint64                       `json:"recent_epoch"`
}

func (a *PoolState) UnmarshalWithReader(r *borsh.Reader) {
	r.FixedBytes("bump", a.Bump[:])
	a.AmmConfig = r.PublicKey("amm_config")
	a.Owner = r.PublicKey("owner")
	a.TokenMint0 = r.PublicKey("token_mint_0")
	a.TokenMint1 = r.PublicKey("token_mint_1")
	a.TokenVault0 = r.PublicKey("token_vault_0")
	a.TokenVault1 = r.PublicKey("token_vault_1")
	a.ObservationKey = r.PublicKey("observation_key")
	a.MintDecimals0 = r.U8("mint_decimals_0")
	a.MintDecimals1 = r.U8("mint_decimals_1")
	a.TickSpacing = r.U16("tick_spacing")
	a.Liquidity = r.U128("liquidity")
	a.SqrtPriceX64 = r.U128("sqrt_price_x64")
	a.TickCurrent = r.I32("tick_current")
	r.Padding("padding3", 2)
	r.Padding("padding4", 2)
	a.FeeGrowthGlobal0X64 = r.U128("fee_growth_global_0_x64")
	a.FeeGrowthGlobal1X64 = r.U128("fee_growth_global_1_x64")
	a.ProtocolFeesToken0 = r.U64("protocol_fees_token_0")
	a.ProtocolFeesToken1 = r.U64("protocol_fees_token_1")
	a.SwapInAmountToken0 = r.U128("swap_in_amount_token_0")
	a.SwapOutAmountToken1 = r.U128("swap_out_amount_token_1")
	a.SwapInAmountToken1 = r.U128("swap_in_amount_token_1")
	a.SwapOutAmountToken0 = r.U128("swap_out_amount_token_0")
	a.Status = r.U8("status")
	r.Padding("padding", 7)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
	borsh.ReadArray(r, "tick_array_bitmap", a.TickArrayBitmap[:], (*borsh.Reader).U64)
	a.TotalFeesToken0 = r.U64("total_fees_token_0")
	a.TotalFeesClaimedToken0 = r.U64("total_fees_claimed_token_0")
	a.TotalFeesToken1 = r.U64("total_fees_token_1")
	a.TotalFeesClaimedToken1 = r.U64("total_fees_claimed_token_1")
	a.FundFeesToken0 = r.U64("fund_fees_token_0")
	a.FundFeesToken1 = r.U64("fund_fees_token_1")
	a.OpenTime = r.U64("open_time")
	a.RecentEpoch = r.U64("recent_epoch")
	r.Padding("padding1", 24*8)
	r.Padding("padding2", 32*8)
}

func (a *PoolState) MarshalWithWriter(w *borsh.Writer) {
	w.FixedBytes(a.Bump[:])
	w.PublicKey(a.AmmConfig)
	w.PublicKey(a.Owner)
	w.PublicKey(a.TokenMint0)
	w.PublicKey(a.TokenMint1)
	w.PublicKey(a.TokenVault0)
	w.PublicKey(a.TokenVault1)
	w.PublicKey(a.ObservationKey)
	w.U8(a.MintDecimals0)
	w.U8(a.MintDecimals1)
	w.U16(a.TickSpacing)
	w.U128(a.Liquidity)
	w.U128(a.SqrtPriceX64)
	w.I32(a.TickCurrent)
	w.Padding(2)
	w.Padding(2)
	w.U128(a.FeeGrowthGlobal0X64)
	w.U128(a.FeeGrowthGlobal1X64)
	w.U64(a.ProtocolFeesToken0)
	w.U64(a.ProtocolFeesToken1)
	w.U128(a.SwapInAmountToken0)
	w.U128(a.SwapOutAmountToken1)
	w.U128(a.SwapInAmountToken1)
	w.U128(a.SwapOutAmountToken0)
	w.U8(a.Status)
	w.Padding(7)
	borsh.WriteStructArray(w, a.RewardInfos[:])
	borsh.WriteArray(w, a.TickArrayBitmap[:], (*borsh.Writer).U64)
	w.U64(a.TotalFeesToken0)
	w.U64(a.TotalFeesClaimedToken0)
	w.U64(a.TotalFeesToken1)
	w.U64(a.TotalFeesClaimedToken1)
	w.U64(a.FundFeesToken0)
	w.U64(a.FundFeesToken1)
	w.U64(a.OpenTime)
	w.U64(a.RecentEpoch)
	w.Padding(24 * 8)
	w.Padding(32 * 8)
}

// ObservationState is the pool's price oracle ring buffer.
type ObservationState struct {
	Initialized      bool                          `json:"initialized"`
	RecentEpoch      uint64                        `json:"recent_epoch"`
	ObservationIndex uint16                        `json:"observation_index"`
	PoolID           solana.PublicKey              `json:"pool_id"`
	Observations     [ObservationCount]Observation `json:"observations"`
}

func (a *ObservationState) UnmarshalWithReader(r *borsh.Reader) {
	a.Initialized = r.Bool("initialized")
	a.RecentEpoch = r.U64("recent_epoch")
	a.ObservationIndex = r.U16("observation_index")
	a.PoolID = r.PublicKey("pool_id")
	borsh.ReadStructArray(r, "observations", a.Observations[:])
	r.Padding("padding", 4*8)
}

func (a *ObservationState) MarshalWithWriter(w *borsh.Writer) {
	w.Bool(a.Initialized)
	w.U64(a.RecentEpoch)
	w.U16(a.ObservationIndex)
	w.PublicKey(a.PoolID)
	borsh.WriteStructArray(w, a.Observations[:])
	w.Padding(4 * 8)
}

// TickArrayState holds TickArraySize consecutive initialized-or-empty ticks.
type TickArrayState struct {
	PoolID               solana.PublicKey         `json:"pool_id"`
	StartTickIndex       int32                    `json:"start_tick_index"`
	Ticks                [TickArraySize]TickState `json:"ticks"`
	InitializedTickCount uint8                    `json:"initialized_tick_count"`
	RecentEpoch          uint64                   `json:"recent_epoch"`
}

func (a *TickArrayState) UnmarshalWithReader(r *borsh.Reader) {
	a.PoolID = r.PublicKey("pool_id")
	a.StartTickIndex = r.I32("start_tick_index")
	borsh.ReadStructArray(r, "ticks", a.Ticks[:])
	a.InitializedTickCount = r.U8("initialized_tick_count")
	a.RecentEpoch = r.U64("recent_epoch")
	r.Padding("padding", 107)
}

func (a *TickArrayState) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.PoolID)
	w.I32(a.StartTickIndex)
	borsh.WriteStructArray(w, a.Ticks[:])
	w.U8(a.InitializedTickCount)
	w.U64(a.RecentEpoch)
	w.Padding(107)
}
