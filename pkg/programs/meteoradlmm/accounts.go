package meteoradlmm

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type BinArray struct {
	Index   int64               `json:"index"`
	Version uint8               `json:"version"`
	LbPair  solana.PublicKey    `json:"lb_pair"`
	Bins    [MaxBinPerArray]Bin `json:"bins"`
}

func (a *BinArray) UnmarshalWithReader(r *borsh.Reader) {
	a.Index = r.I64("index")
	a.Version = r.U8("version")
	r.Padding("padding", 7)
	a.LbPair = r.PublicKey("lb_pair")
	borsh.ReadStructArray(r, "bins", a.Bins[:])
}

func (a *BinArray) MarshalWithWriter(w *borsh.Writer) {
	w.I64(a.Index)
	w.U8(a.Version)
	w.Padding(7)
	w.PublicKey(a.LbPair)
	borsh.WriteStructArray(w, a.Bins[:])
}

// LbPair is a liquidity book pair. ActiveID is the bin the current price falls in.
type LbPair struct {
	Parameters               StaticParameters            `json:"parameters"`
	VParameters              VariableParameters          `json:"v_parameters"`
	BumpSeed                 [1]byte                     `json:"bump_seed"`
	BinStepSeed              [2]byte                     `json:"bin_step_seed"`
	PairType                 uint8                       `json:"pair_type"`
	ActiveID                 int32                       `json:"active_id"`
	BinStep                  uint16                      `json:"bin_step"`
	Status                   uint8                       `json:"status"`
	RequireBaseFactorSeed    uint8                       `json:"require_base_factor_seed"`
	BaseFactorSeed           [2]byte                     `json:"base_factor_seed"`
	ActivationType           uint8                       `json:"activation_type"`
	TokenXMint               solana.PublicKey            `json:"token_x_mint"`
	TokenYMint               solana.PublicKey            `json:"token_y_mint"`
	ReserveX                 solana.PublicKey            `json:"reserve_x"`
	ReserveY                 solana.PublicKey            `json:"reserve_y"`
	ProtocolFee              ProtocolFee                 `json:"protocol_fee"`
	RewardInfos              [NumRewards]RewardInfo      `json:"reward_infos"`
	Oracle                   solana.PublicKey            `json:"oracle"`
	BinArrayBitmap           [BinArrayBitmapWords]uint64 `json:"bin_array_bitmap"`
	LastUpdatedAt            int64                       `json:"last_updated_at"`
	PreActivationSwapAddress solana.PublicKey            `json:"pre_activation_swap_address"`
	BaseKey                  solana.PublicKey            `json:"base_key"`
	ActivationPoint          uint64                      `json:"activation_point"`
	PreActivationDuration    uint64                      `json:"pre_activation_duration"`
	Creator                  solana.PublicKey            `json:"creator"`
}

func (a *LbPair) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("parameters", &a.Parameters)
	r.Struct("v_parameters", &a.VParameters)
	r.FixedBytes("bump_seed", a.BumpSeed[:])
	r.FixedBytes("bin_step_seed", a.BinStepSeed[:])
	a.PairType = r.U8("pair_type")
	a.ActiveID = r.I32("active_id")
	a.BinStep = r.U16("bin_step")
	a.Status = r.U8("status")
	a.RequireBaseFactorSeed = r.U8("require_base_factor_seed")
	r.FixedBytes("base_factor_seed", a.BaseFactorSeed[:])
	a.ActivationType = r.U8("activation_type")
	r.Padding("padding0", 1)
	a.TokenXMint = r.PublicKey("token_x_mint")
	a.TokenYMint = r.PublicKey("token_y_mint")
	a.ReserveX = r.PublicKey("reserve_x")
	a.ReserveY = r.PublicKey("reserve_y")
	r.Struct("protocol_fee", &a.ProtocolFee)
	r.Padding("padding1", 32)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
	a.Oracle = r.PublicKey("oracle")
	borsh.ReadArray(r, "bin_array_bitmap", a.BinArrayBitmap[:], (*borsh.Reader).U64)
	a.LastUpdatedAt = r.I64("last_updated_at")
	r.Padding("padding2", 32)
	a.PreActivationSwapAddress = r.PublicKey("pre_activation_swap_address")
	a.BaseKey = r.PublicKey("base_key")
	a.ActivationPoint = r.U64("activation_point")
	a.PreActivationDuration = r.U64("pre_activation_duration")
	r.Padding("padding3", 8)
	r.Padding("padding4", 8)
	a.Creator = r.PublicKey("creator")
	r.Padding("reserved", 24)
}

func (a *LbPair) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&a.Parameters)
	w.Struct(&a.VParameters)
	w.FixedBytes(a.BumpSeed[:])
	w.FixedBytes(a.BinStepSeed[:])
	w.U8(a.PairType)
	w.I32(a.ActiveID)
	w.U16(a.BinStep)
	w.U8(a.Status)
	w.U8(a.RequireBaseFactorSeed)
	w.FixedBytes(a.BaseFactorSeed[:])
	w.U8(a.ActivationType)
	w.Padding(1)
	w.PublicKey(a.TokenXMint)
	w.PublicKey(a.TokenYMint)
	w.PublicKey(a.ReserveX)
	w.PublicKey(a.ReserveY)
	w.Struct(&a.ProtocolFee)
	w.Padding(32)
	borsh.WriteStructArray(w, a.RewardInfos[:])
	w.PublicKey(a.Oracle)
	borsh.WriteArray(w, a.BinArrayBitmap[:], (*borsh.Writer).U64)
	w.I64(a.LastUpdatedAt)
	w.Padding(32)
	w.PublicKey(a.PreActivationSwapAddress)
	w.PublicKey(a.BaseKey)
	w.U64(a.ActivationPoint)
	w.U64(a.PreActivationDuration)
	w.Padding(8)
	w.Padding(8)
	w.PublicKey(a.Creator)
	w.Padding(24)
}

// Oracle is the header of the observation buffer that follows it in the account.
type Oracle struct {
	Idx        uint64 `json:"idx"`
	ActiveSize uint64 `json:"active_size"`
	Length     uint64 `json:"length"`
}

func (a *Oracle) UnmarshalWithReader(r *borsh.Reader) {
	a.Idx = r.U64("idx")
	a.ActiveSize = r.U64("active_size")
	a.Length = r.U64("length")
}

func (a *Oracle) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.Idx)
	w.U64(a.ActiveSize)
	w.U64(a.Length)
}

type Position struct {
	LbPair                 solana.PublicKey                  `json:"lb_pair"`
	Owner                  solana.PublicKey                  `json:"owner"`
	LiquidityShares        [MaxBinPerPosition]uint64         `json:"liquidity_shares"`
	RewardInfos            [MaxBinPerPosition]UserRewardInfo `json:"reward_infos"`
	FeeInfos               [MaxBinPerPosition]FeeInfo        `json:"fee_infos"`
	LowerBinID             int32                             `json:"lower_bin_id"`
	UpperBinID             int32                             `json:"upper_bin_id"`
	LastUpdatedAt          int64                             `json:"last_updated_at"`
	TotalClaimedFeeXAmount uint64                            `json:"total_claimed_fee_x_amount"`
	TotalClaimedFeeYAmount uint64                            `json:"total_claimed_fee_y_amount"`
	TotalClaimedRewards    [NumRewards]uint64                `json:"total_claimed_rewards"`
}

func (a *Position) UnmarshalWithReader(r *borsh.Reader) {
	a.LbPair = r.PublicKey("lb_pair")
	a.Owner = r.PublicKey("owner")
	borsh.ReadArray(r, "liquidity_shares", a.LiquidityShares[:], (*borsh.Reader).U64)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
	borsh.ReadStructArray(r, "fee_infos", a.FeeInfos[:])
	a.LowerBinID = r.I32("lower_bin_id")
	a.UpperBinID = r.I32("upper_bin_id")
	a.LastUpdatedAt = r.I64("last_updated_at")
	a.TotalClaimedFeeXAmount = r.U64("total_claimed_fee_x_amount")
	a.TotalClaimedFeeYAmount = r.U64("total_claimed_fee_y_amount")
	borsh.ReadArray(r, "total_claimed_rewards", a.TotalClaimedRewards[:], (*borsh.Reader).U64)
	r.Padding("reserved", 160)
}

func (a *Position) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.LbPair)
	w.PublicKey(a.Owner)
	borsh.WriteArray(w, a.LiquidityShares[:], (*borsh.Writer).U64)
	borsh.WriteStructArray(w, a.RewardInfos[:])
	borsh.WriteStructArray(w, a.FeeInfos[:])
	w.I32(a.LowerBinID)
	w.I32(a.UpperBinID)
	w.I64(a.LastUpdatedAt)
	w.U64(a.TotalClaimedFeeXAmount)
	w.U64(a.TotalClaimedFeeYAmount)
	borsh.WriteArray(w, a.TotalClaimedRewards[:], (*borsh.Writer).U64)
	w.Padding(160)
}

// PositionV2 holds u128 liquidity shares, one per bin from LowerBinID to UpperBinID.
type PositionV2 struct {
	LbPair                 solana.PublicKey                  `json:"lb_pair"`
	Owner                  solana.PublicKey                  `json:"owner"`
	LiquidityShares        [MaxBinPerPosition]borsh.Uint128  `json:"liquidity_shares"`
	RewardInfos            [MaxBinPerPosition]UserRewardInfo `json:"reward_infos"`
	FeeInfos               [MaxBinPerPosition]FeeInfo        `json:"fee_infos"`
	LowerBinID             int32                             `json:"lower_bin_id"`
	UpperBinID             int32                             `json:"upper_bin_id"`
	LastUpdatedAt          int64                             `json:"last_updated_at"`
	TotalClaimedFeeXAmount uint64                            `json:"total_claimed_fee_x_amount"`
	TotalClaimedFeeYAmount uint64                            `json:"total_claimed_fee_y_amount"`
	TotalClaimedRewards    [NumRewards]uint64                `json:"total_claimed_rewards"`
	Operator               solana.PublicKey                  `json:"operator"`
	LockReleasePoint       uint64                            `json:"lock_release_point"`
	FeeOwner               solana.PublicKey                  `json:"fee_owner"`
}

func (a *PositionV2) UnmarshalWithReader(r *borsh.Reader) {
	a.LbPair = r.PublicKey("lb_pair")
	a.Owner = r.PublicKey("owner")
	borsh.ReadArray(r, "liquidity_shares", a.LiquidityShares[:], (*borsh.Reader).U128)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
	borsh.ReadStructArray(r, "fee_infos", a.FeeInfos[:])
	a.LowerBinID = r.I32("lower_bin_id")
	a.UpperBinID = r.I32("upper_bin_id")
	a.LastUpdatedAt = r.I64("last_updated_at")
	a.TotalClaimedFeeXAmount = r.U64("total_claimed_fee_x_amount")
	a.TotalClaimedFeeYAmount = r.U64("total_claimed_fee_y_amount")
	borsh.ReadArray(r, "total_claimed_rewards", a.TotalClaimedRewards[:], (*borsh.Reader).U64)
	a.Operator = r.PublicKey("operator")
	a.LockReleasePoint = r.U64("lock_release_point")
	r.Padding("padding0", 1)
	a.FeeOwner = r.PublicKey("fee_owner")
	r.Padding("reserved", 87)
}

func (a *PositionV2) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.LbPair)
	w.PublicKey(a.Owner)
	borsh.WriteArray(w, a.LiquidityShares[:], (*borsh.Writer).U128)
	borsh.WriteStructArray(w, a.RewardInfos[:])
	borsh.WriteStructArray(w, a.FeeInfos[:])
	w.I32(a.LowerBinID)
	w.I32(a.UpperBinID)
	w.I64(a.LastUpdatedAt)
	w.U64(a.TotalClaimedFeeXAmount)
	w.U64(a.TotalClaimedFeeYAmount)
	borsh.WriteArray(w, a.TotalClaimedRewards[:], (*borsh.Writer).U64)
	w.PublicKey(a.Operator)
	w.U64(a.LockReleasePoint)
	w.Padding(1)
	w.PublicKey(a.FeeOwner)
	w.Padding(87)
}

type PresetParameter struct {
	BinStep                  uint16 `json:"bin_step"`
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

func (a *PresetParameter) UnmarshalWithReader(r *borsh.Reader) {
	a.BinStep = r.U16("bin_step")
	a.BaseFactor = r.U16("base_factor")
	a.FilterPeriod = r.U16("filter_period")
	a.DecayPeriod = r.U16("decay_period")
	a.ReductionFactor = r.U16("reduction_factor")
	a.VariableFeeControl = r.U32("variable_fee_control")
	a.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	a.MinBinID = r.I32("min_bin_id")
	a.MaxBinID = r.I32("max_bin_id")
	a.ProtocolShare = r.U16("protocol_share")
}

func (a *PresetParameter) MarshalWithWriter(w *borsh.Writer) {
	w.U16(a.BinStep)
	w.U16(a.BaseFactor)
	w.U16(a.FilterPeriod)
	w.U16(a.DecayPeriod)
	w.U16(a.ReductionFactor)
	w.U32(a.VariableFeeControl)
	w.U32(a.MaxVolatilityAccumulator)
	w.I32(a.MinBinID)
	w.I32(a.MaxBinID)
	w.U16(a.ProtocolShare)
}

// BinArrayBitmapExtension extends the pair's bitmap beyond the range covered
// by LbPair.BinArrayBitmap.
type BinArrayBitmapExtension struct {
	LbPair                 solana.PublicKey               `json:"lb_pair"`
	PositiveBinArrayBitmap [ExtensionBitmapRows][8]uint64 `json:"positive_bin_array_bitmap"`
	NegativeBinArrayBitmap [ExtensionBitmapRows][8]uint64 `json:"negative_bin_array_bitmap"`
}

func (a *BinArrayBitmapExtension) UnmarshalWithReader(r *borsh.Reader) {
	a.LbPair = r.PublicKey("lb_pair")
	for i := range a.PositiveBinArrayBitmap {
		borsh.ReadArray(r, "positive_bin_array_bitmap["+strconv.Itoa(i)+"]", a.PositiveBinArrayBitmap[i][:], (*borsh.Reader).U64)
	}
	for i := range a.NegativeBinArrayBitmap {
		borsh.ReadArray(r, "negative_bin_array_bitmap["+strconv.Itoa(i)+"]", a.NegativeBinArrayBitmap[i][:], (*borsh.Reader).U64)
	}
}

func (a *BinArrayBitmapExtension) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.LbPair)
	for i := range a.PositiveBinArrayBitmap {
		borsh.WriteArray(w, a.PositiveBinArrayBitmap[i][:], (*borsh.Writer).U64)
	}
	for i := range a.NegativeBinArrayBitmap {
		borsh.WriteArray(w, a.NegativeBinArrayBitmap[i][:], (*borsh.Writer).U64)
	}
}
