package raydiumclmm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const (
	// ObservationCount is the size of the ObservationState ring buffer.
	ObservationCount = 100
	// TickArraySize is the number of ticks stored per TickArrayState.
	TickArraySize = 60
	// TickArrayBitmapWords is the number of u64 words in PoolState's tick array bitmap.
	TickArrayBitmapWords = 16
)

type Observation struct {
	BlockTimestamp uint32 `json:"block_timestamp"`
	TickCumulative int64  `json:"tick_cumulative"`
}

func (o *Observation) UnmarshalWithReader(r *borsh.Reader) {
	o.BlockTimestamp = r.U32("block_timestamp")
	o.TickCumulative = r.I64("tick_cumulative")
	r.Padding("padding", 4*8)
}

func (o *Observation) MarshalWithWriter(w *borsh.Writer) {
	w.U32(o.BlockTimestamp)
	w.I64(o.TickCumulative)
	w.Padding(4 * 8)
}

// RewardInfo is one of a pool's three reward emission slots.
type RewardInfo struct {
	RewardState           uint8            `json:"reward_state"`
	OpenTime              uint64           `json:"open_time"`
	EndTime               uint64           `json:"end_time"`
	LastUpdateTime        uint64           `json:"last_update_time"`
	EmissionsPerSecondX64 borsh.Uint128    `json:"emissions_per_second_x64"`
	RewardTotalEmissioned uint64           `json:"reward_total_emissioned"`
	RewardClaimed         uint64           `json:"reward_claimed"`
	TokenMint             solana.PublicKey `json:"token_mint"`
	TokenVault            solana.PublicKey `json:"token_vault"`
	Authority             solana.PublicKey `json:"authority"`
	RewardGrowthGlobalX64 borsh.Uint128    `json:"reward_growth_global_x64"`
}

func (i *RewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	i.RewardState = r.U8("reward_state")
	i.OpenTime = r.U64("open_time")
	i.EndTime = r.U64("end_time")
	i.LastUpdateTime = r.U64("last_update_time")
	i.EmissionsPerSecondX64 = r.U128("emissions_per_second_x64")
	i.RewardTotalEmissioned = r.U64("reward_total_emissioned")
	i.RewardClaimed = r.U64("reward_claimed")
	i.TokenMint = r.PublicKey("token_mint")
	i.TokenVault = r.PublicKey("token_vault")
	i.Authority = r.PublicKey("authority")
	i.RewardGrowthGlobalX64 = r.U128("reward_growth_global_x64")
}

func (i *RewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.U8(i.RewardState)
	w.U64(i.OpenTime)
	w.U64(i.EndTime)
	w.U64(i.LastUpdateTime)
	w.U128(i.EmissionsPerSecondX64)
	w.U64(i.RewardTotalEmissioned)
	w.U64(i.RewardClaimed)
	w.PublicKey(i.TokenMint)
	w.PublicKey(i.TokenVault)
	w.PublicKey(i.Authority)
	w.U128(i.RewardGrowthGlobalX64)
}

type TickState struct {
	Tick                    int32                     `json:"tick"`
	LiquidityNet            borsh.Int128              `json:"liquidity_net"`
	LiquidityGross          borsh.Uint128             `json:"liquidity_gross"`
	FeeGrowthOutside0X64    borsh.Uint128             `json:"fee_growth_outside_0_x64"`
	FeeGrowthOutside1X64    borsh.Uint128             `json:"fee_growth_outside_1_x64"`
	RewardGrowthsOutsideX64 [NumRewards]borsh.Uint128 `json:"reward_growths_outside_x64"`
}

func (s *TickState) UnmarshalWithReader(r *borsh.Reader) {
	s.Tick = r.I32("tick")
	s.LiquidityNet = r.I128("liquidity_net")
	s.LiquidityGross = r.U128("liquidity_gross")
	s.FeeGrowthOutside0X64 = r.U128("fee_growth_outside_0_x64")
	s.FeeGrowthOutside1X64 = r.U128("fee_growth_outside_1_x64")
	borsh.ReadArray(r, "reward_growths_outside_x64", s.RewardGrowthsOutsideX64[:], (*borsh.Reader).U128)
	r.Padding("padding", 13*4)
}

func (s *TickState) MarshalWithWriter(w *borsh.Writer) {
	w.I32(s.Tick)
	w.I128(s.LiquidityNet)
	w.U128(s.LiquidityGross)
	w.U128(s.FeeGrowthOutside0X64)
	w.U128(s.FeeGrowthOutside1X64)
	borsh.WriteArray(w, s.RewardGrowthsOutsideX64[:], (*borsh.Writer).U128)
	w.Padding(13 * 4)
}
