package meteoradlmm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const (
	// MaxBinPerArray is the number of bins in a BinArray.
	MaxBinPerArray = 70
	// MaxBinPerPosition is the widest bin range a Position covers.
	MaxBinPerPosition = 70
	NumRewards        = 2
	// BinArrayBitmapWords covers bin arrays -512 to 511 in LbPair.
	BinArrayBitmapWords = 16
	ExtensionBitmapRows = 12
)

// StaticParameters are the fee parameters fixed at pair creation.
type StaticParameters struct {
	BaseFactor               uint16 `json:"base_factor"`
	FilterPeriod             uint16 `json:"filter_period"`
	DecayPeriod              uint16 `json:"decay_period"`
	ReductionFactor          uint16 `json:"reduction_factor"`
	VariableFeeControl       uint32 `json:"variable_fee_control"`
	MaxVolatilityAccumulator uint32 `json:"max_volatility_accumulator"`
	MinBinID                 int32  `json:"min_bin_id"`
	MaxBinID                 int32  `json:"max_bin_id"`
	ProtocolShare            uint16 `json:"protocol_share"`
}

func (p *StaticParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.BaseFactor = r.U16("base_factor")
	p.FilterPeriod = r.U16("filter_period")
	p.DecayPeriod = r.U16("decay_period")
	p.ReductionFactor = r.U16("reduction_factor")
	p.VariableFeeControl = r.U32("variable_fee_control")
	p.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	p.MinBinID = r.I32("min_bin_id")
	p.MaxBinID = r.I32("max_bin_id")
	p.ProtocolShare = r.U16("protocol_share")
	r.Padding("padding", 6)
}

func (p *StaticParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U16(p.BaseFactor)
	w.U16(p.FilterPeriod)
	w.U16(p.DecayPeriod)
	w.U16(p.ReductionFactor)
	w.U32(p.VariableFeeControl)
	w.U32(p.MaxVolatilityAccumulator)
	w.I32(p.MinBinID)
	w.I32(p.MaxBinID)
	w.U16(p.ProtocolShare)
	w.Padding(6)
}

// VariableParameters track volatility between swaps.
type VariableParameters struct {
	VolatilityAccumulator uint32 `json:"volatility_accumulator"`
	VolatilityReference   uint32 `json:"volatility_reference"`
	IndexReference        int32  `json:"index_reference"`
	LastUpdateTimestamp   int64  `json:"last_update_timestamp"`
}

func (p *VariableParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.VolatilityAccumulator = r.U32("volatility_accumulator")
	p.VolatilityReference = r.U32("volatility_reference")
	p.IndexReference = r.I32("index_reference")
	r.Padding("padding", 4)
	p.LastUpdateTimestamp = r.I64("last_update_timestamp")
	r.Padding("padding1", 8)
}

func (p *VariableParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U32(p.VolatilityAccumulator)
	w.U32(p.VolatilityReference)
	w.I32(p.IndexReference)
	w.Padding(4)
	w.I64(p.LastUpdateTimestamp)
	w.Padding(8)
}

type ProtocolFee struct {
	AmountX uint64 `json:"amount_x"`
	AmountY uint64 `json:"amount_y"`
}

func (p *ProtocolFee) UnmarshalWithReader(r *borsh.Reader) {
	p.AmountX = r.U64("amount_x")
	p.AmountY = r.U64("amount_y")
}

func (p *ProtocolFee) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.AmountX)
	w.U64(p.AmountY)
}

type RewardInfo struct {
	Mint                                      solana.PublicKey `json:"mint"`
	Vault                                     solana.PublicKey `json:"vault"`
	Funder                                    solana.PublicKey `json:"funder"`
	RewardDuration                            uint64           `json:"reward_duration"`
	RewardDurationEnd                         uint64           `json:"reward_duration_end"`
	RewardRate                                borsh.Uint128    `json:"reward_rate"`
	LastUpdateTime                            uint64           `json:"last_update_time"`
	CumulativeSecondsWithEmptyLiquidityReward uint64           `json:"cumulative_seconds_with_empty_liquidity_reward"`
}

func (p *RewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	p.Mint = r.PublicKey("mint")
	p.Vault = r.PublicKey("vault")
	p.Funder = r.PublicKey("funder")
	p.RewardDuration = r.U64("reward_duration")
	p.RewardDurationEnd = r.U64("reward_duration_end")
	p.RewardRate = r.U128("reward_rate")
	p.LastUpdateTime = r.U64("last_update_time")
	p.CumulativeSecondsWithEmptyLiquidityReward = r.U64("cumulative_seconds_with_empty_liquidity_reward")
}

func (p *RewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(p.Mint)
	w.PublicKey(p.Vault)
	w.PublicKey(p.Funder)
	w.U64(p.RewardDuration)
	w.U64(p.RewardDurationEnd)
	w.U128(p.RewardRate)
	w.U64(p.LastUpdateTime)
	w.U64(p.CumulativeSecondsWithEmptyLiquidityReward)
}

// Bin is one price bucket of a BinArray. Price is a Q64.64 fixed point value.
type Bin struct {
	AmountX                  uint64                    `json:"amount_x"`
	AmountY                  uint64                    `json:"amount_y"`
	Price                    borsh.Uint128             `json:"price"`
	LiquiditySupply          borsh.Uint128             `json:"liquidity_supply"`
	RewardPerTokenStored     [NumRewards]borsh.Uint128 `json:"reward_per_token_stored"`
	FeeAmountXPerTokenStored borsh.Uint128             `json:"fee_amount_x_per_token_stored"`
	FeeAmountYPerTokenStored borsh.Uint128             `json:"fee_amount_y_per_token_stored"`
	AmountXIn                borsh.Uint128             `json:"amount_x_in"`
	AmountYIn                borsh.Uint128             `json:"amount_y_in"`
}

func (p *Bin) UnmarshalWithReader(r *borsh.Reader) {
	p.AmountX = r.U64("amount_x")
	p.AmountY = r.U64("amount_y")
	p.Price = r.U128("price")
	p.LiquiditySupply = r.U128("liquidity_supply")
	borsh.ReadArray(r, "reward_per_token_stored", p.RewardPerTokenStored[:], (*borsh.Reader).U128)
	p.FeeAmountXPerTokenStored = r.U128("fee_amount_x_per_token_stored")
	p.FeeAmountYPerTokenStored = r.U128("fee_amount_y_per_token_stored")
	p.AmountXIn = r.U128("amount_x_in")
	p.AmountYIn = r.U128("amount_y_in")
}

func (p *Bin) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.AmountX)
	w.U64(p.AmountY)
	w.U128(p.Price)
	w.U128(p.LiquiditySupply)
	borsh.WriteArray(w, p.RewardPerTokenStored[:], (*borsh.Writer).U128)
	w.U128(p.FeeAmountXPerTokenStored)
	w.U128(p.FeeAmountYPerTokenStored)
	w.U128(p.AmountXIn)
	w.U128(p.AmountYIn)
}

type UserRewardInfo struct {
	RewardPerTokenCompletes [NumRewards]borsh.Uint128 `json:"reward_per_token_completes"`
	RewardPendings          [NumRewards]uint64        `json:"reward_pendings"`
}

func (p *UserRewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	borsh.ReadArray(r, "reward_per_token_completes", p.RewardPerTokenCompletes[:], (*borsh.Reader).U128)
	borsh.ReadArray(r, "reward_pendings", p.RewardPendings[:], (*borsh.Reader).U64)
}

func (p *UserRewardInfo) MarshalWithWriter(w *borsh.Writer) {
	borsh.WriteArray(w, p.RewardPerTokenCompletes[:], (*borsh.Writer).U128)
	borsh.WriteArray(w, p.RewardPendings[:], (*borsh.Writer).U64)
}

type FeeInfo struct {
	FeeXPerTokenComplete borsh.Uint128 `json:"fee_x_per_token_complete"`
	FeeYPerTokenComplete borsh.Uint128 `json:"fee_y_per_token_complete"`
	FeeXPending          uint64        `json:"fee_x_pending"`
	FeeYPending          uint64        `json:"fee_y_pending"`
}

func (p *FeeInfo) UnmarshalWithReader(r *borsh.Reader) {
	p.FeeXPerTokenComplete = r.U128("fee_x_per_token_complete")
	p.FeeYPerTokenComplete = r.U128("fee_y_per_token_complete")
	p.FeeXPending = r.U64("fee_x_pending")
	p.FeeYPending = r.U64("fee_y_pending")
}

func (p *FeeInfo) MarshalWithWriter(w *borsh.Writer) {
	w.U128(p.FeeXPerTokenComplete)
	w.U128(p.FeeYPerTokenComplete)
	w.U64(p.FeeXPending)
	w.U64(p.FeeYPending)
}
