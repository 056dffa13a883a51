package orcawhirlpool

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const (
	NumRewards         = 3
	TickArraySize      = 88
	PositionBitmapSize = 32
)

type WhirlpoolRewardInfo struct {
	Mint                  solana.PublicKey `json:"mint"`
	Vault                 solana.PublicKey `json:"vault"`
	Authority             solana.PublicKey `json:"authority"`
	EmissionsPerSecondX64 borsh.Uint128    `json:"emissions_per_second_x64"`
	GrowthGlobalX64       borsh.Uint128    `json:"growth_global_x64"`
}

func (i *WhirlpoolRewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	i.Mint = r.PublicKey("mint")
	i.Vault = r.PublicKey("vault")
	i.Authority = r.PublicKey("authority")
	i.EmissionsPerSecondX64 = r.U128("emissions_per_second_x64")
	i.GrowthGlobalX64 = r.U128("growth_global_x64")
}

func (i *WhirlpoolRewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(i.Mint)
	w.PublicKey(i.Vault)
	w.PublicKey(i.Authority)
	w.U128(i.EmissionsPerSecondX64)
	w.U128(i.GrowthGlobalX64)
}

type PositionRewardInfo struct {
	GrowthInsideCheckpoint borsh.Uint128 `json:"growth_inside_checkpoint"`
	AmountOwed             uint64        `json:"amount_owed"`
}

func (i *PositionRewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	i.GrowthInsideCheckpoint = r.U128("growth_inside_checkpoint")
	i.AmountOwed = r.U64("amount_owed")
}

func (i *PositionRewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.U128(i.GrowthInsideCheckpoint)
	w.U64(i.AmountOwed)
}

// Tick is one slot of a TickArray.
type Tick struct {
	Initialized          bool                      `json:"initialized"`
	LiquidityNet         borsh.Int128              `json:"liquidity_net"`
	LiquidityGross       borsh.Uint128             `json:"liquidity_gross"`
	FeeGrowthOutsideA    borsh.Uint128             `json:"fee_growth_outside_a"`
	FeeGrowthOutsideB    borsh.Uint128             `json:"fee_growth_outside_b"`
	RewardGrowthsOutside [NumRewards]borsh.Uint128 `json:"reward_growths_outside"`
}

func (t *Tick) UnmarshalWithReader(r *borsh.Reader) {
	t.Initialized = r.Bool("initialized")
	t.LiquidityNet = r.I128("liquidity_net")
	t.LiquidityGross = r.U128("liquidity_gross")
	t.FeeGrowthOutsideA = r.U128("fee_growth_outside_a")
	t.FeeGrowthOutsideB = r.U128("fee_growth_outside_b")
	borsh.ReadArray(r, "reward_growths_outside", t.RewardGrowthsOutside[:], (*borsh.Reader).U128)
}

func (t *Tick) MarshalWithWriter(w *borsh.Writer) {
	w.Bool(t.Initialized)
	w.I128(t.LiquidityNet)
	w.U128(t.LiquidityGross)
	w.U128(t.FeeGrowthOutsideA)
	w.U128(t.FeeGrowthOutsideB)
	borsh.WriteArray(w, t.RewardGrowthsOutside[:], (*borsh.Writer).U128)
}
