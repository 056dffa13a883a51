package meteoradammv2

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const NumRewards = 2

// BaseFeeParameters is an opaque encoding of one of several fee schedulers.
type BaseFeeParameters struct {
	Data [30]byte `json:"data"`
}

func (p *BaseFeeParameters) UnmarshalWithReader(r *borsh.Reader) {
	r.FixedBytes("data", p.Data[:])
}

func (p *BaseFeeParameters) MarshalWithWriter(w *borsh.Writer) {
	w.FixedBytes(p.Data[:])
}

type BaseFeeInfo struct {
	Data [32]byte `json:"data"`
}

func (p *BaseFeeInfo) UnmarshalWithReader(r *borsh.Reader) {
	r.FixedBytes("data", p.Data[:])
}

func (p *BaseFeeInfo) MarshalWithWriter(w *borsh.Writer) {
	w.FixedBytes(p.Data[:])
}

type DynamicFeeParameters struct {
	BinStep                  uint16        `json:"bin_step"`
	BinStepU128              borsh.Uint128 `json:"bin_step_u128"`
	FilterPeriod             uint16        `json:"filter_period"`
	DecayPeriod              uint16        `json:"decay_period"`
	ReductionFactor          uint16        `json:"reduction_factor"`
	MaxVolatilityAccumulator uint32        `json:"max_volatility_accumulator"`
	VariableFeeControl       uint32        `json:"variable_fee_control"`
}

func (p *DynamicFeeParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.BinStep = r.U16("bin_step")
	p.BinStepU128 = r.U128("bin_step_u128")
	p.FilterPeriod = r.U16("filter_period")
	p.DecayPeriod = r.U16("decay_period")
	p.ReductionFactor = r.U16("reduction_factor")
	p.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	p.VariableFeeControl = r.U32("variable_fee_control")
}

func (p *DynamicFeeParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U16(p.BinStep)
	w.U128(p.BinStepU128)
	w.U16(p.FilterPeriod)
	w.U16(p.DecayPeriod)
	w.U16(p.ReductionFactor)
	w.U32(p.MaxVolatilityAccumulator)
	w.U32(p.VariableFeeControl)
}

type DynamicFeeConfig struct {
	Initialized              uint8         `json:"initialized"`
	MaxVolatilityAccumulator uint32        `json:"max_volatility_accumulator"`
	VariableFeeControl       uint32        `json:"variable_fee_control"`
	BinStep                  uint16        `json:"bin_step"`
	FilterPeriod             uint16        `json:"filter_period"`
	DecayPeriod              uint16        `json:"decay_period"`
	ReductionFactor          uint16        `json:"reduction_factor"`
	BinStepU128              borsh.Uint128 `json:"bin_step_u128"`
}

func (c *DynamicFeeConfig) UnmarshalWithReader(r *borsh.Reader) {
	c.Initialized = r.U8("initialized")
	r.Padding("padding", 7)
	c.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	c.VariableFeeControl = r.U32("variable_fee_control")
	c.BinStep = r.U16("bin_step")
	c.FilterPeriod = r.U16("filter_period")
	c.DecayPeriod = r.U16("decay_period")
	c.ReductionFactor = r.U16("reduction_factor")
	r.Padding("padding_1", 8)
	c.BinStepU128 = r.U128("bin_step_u128")
}

func (c *DynamicFeeConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U8(c.Initialized)
	w.Padding(7)
	w.U32(c.MaxVolatilityAccumulator)
	w.U32(c.VariableFeeControl)
	w.U16(c.BinStep)
	w.U16(c.FilterPeriod)
	w.U16(c.DecayPeriod)
	w.U16(c.ReductionFactor)
	w.Padding(8)
	w.U128(c.BinStepU128)
}

type DynamicFeeStruct struct {
	Initialized              uint8         `json:"initialized"`
	MaxVolatilityAccumulator uint32        `json:"max_volatility_accumulator"`
	VariableFeeControl       uint32        `json:"variable_fee_control"`
	BinStep                  uint16        `json:"bin_step"`
	FilterPeriod             uint16        `json:"filter_period"`
	DecayPeriod              uint16        `json:"decay_period"`
	ReductionFactor          uint16        `json:"reduction_factor"`
	LastUpdateTimestamp      uint64        `json:"last_update_timestamp"`
	BinStepU128              borsh.Uint128 `json:"bin_step_u128"`
	SqrtPriceReference       borsh.Uint128 `json:"sqrt_price_reference"`
	VolatilityAccumulator    borsh.Uint128 `json:"volatility_accumulator"`
	VolatilityReference      borsh.Uint128 `json:"volatility_reference"`
}

func (s *DynamicFeeStruct) UnmarshalWithReader(r *borsh.Reader) {
	s.Initialized = r.U8("initialized")
	r.Padding("padding", 7)
	s.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	s.VariableFeeControl = r.U32("variable_fee_control")
	s.BinStep = r.U16("bin_step")
	s.FilterPeriod = r.U16("filter_period")
	s.DecayPeriod = r.U16("decay_period")
	s.ReductionFactor = r.U16("reduction_factor")
	s.LastUpdateTimestamp = r.U64("last_update_timestamp")
	s.BinStepU128 = r.U128("bin_step_u128")
	s.SqrtPriceReference = r.U128("sqrt_price_reference")
	s.VolatilityAccumulator = r.U128("volatility_accumulator")
	s.VolatilityReference = r.U128("volatility_reference")
}

func (s *DynamicFeeStruct) MarshalWithWriter(w *borsh.Writer) {
	w.U8(s.Initialized)
	w.Padding(7)
	w.U32(s.MaxVolatilityAccumulator)
	w.U32(s.VariableFeeControl)
	w.U16(s.BinStep)
	w.U16(s.FilterPeriod)
	w.U16(s.DecayPeriod)
	w.U16(s.ReductionFactor)
	w.U64(s.LastUpdateTimestamp)
	w.U128(s.BinStepU128)
	w.U128(s.SqrtPriceReference)
	w.U128(s.VolatilityAccumulator)
	w.U128(s.VolatilityReference)
}

// PoolFeeParameters is the instruction-level fee configuration echoed in events.
type PoolFeeParameters struct {
	BaseFee            BaseFeeParameters     `json:"base_fee"`
	ProtocolFeePercent uint8                 `json:"protocol_fee_percent"`
	PartnerFeePercent  uint8                 `json:"partner_fee_percent"`
	ReferralFeePercent uint8                 `json:"referral_fee_percent"`
	DynamicFee         *DynamicFeeParameters `json:"dynamic_fee"`
}

func (p *PoolFeeParameters) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("base_fee", &p.BaseFee)
	p.ProtocolFeePercent = r.U8("protocol_fee_percent")
	p.PartnerFeePercent = r.U8("partner_fee_percent")
	p.ReferralFeePercent = r.U8("referral_fee_percent")
	p.DynamicFee = borsh.ReadStructOption[DynamicFeeParameters](r, "dynamic_fee")
}

func (p *PoolFeeParameters) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&p.BaseFee)
	w.U8(p.ProtocolFeePercent)
	w.U8(p.PartnerFeePercent)
	w.U8(p.ReferralFeePercent)
	borsh.WriteStructOption(w, p.DynamicFee)
}

type PoolFeesConfig struct {
	BaseFee            BaseFeeInfo      `json:"base_fee"`
	DynamicFee         DynamicFeeConfig `json:"dynamic_fee"`
	ProtocolFeePercent uint8            `json:"protocol_fee_percent"`
	PartnerFeePercent  uint8            `json:"partner_fee_percent"`
	ReferralFeePercent uint8            `json:"referral_fee_percent"`
}

func (c *PoolFeesConfig) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("base_fee", &c.BaseFee)
	r.Struct("dynamic_fee", &c.DynamicFee)
	c.ProtocolFeePercent = r.U8("protocol_fee_percent")
	c.PartnerFeePercent = r.U8("partner_fee_percent")
	c.ReferralFeePercent = r.U8("referral_fee_percent")
	r.Padding("padding_0", 5)
	r.Padding("padding_1", 5*8)
}

func (c *PoolFeesConfig) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&c.BaseFee)
	w.Struct(&c.DynamicFee)
	w.U8(c.ProtocolFeePercent)
	w.U8(c.PartnerFeePercent)
	w.U8(c.ReferralFeePercent)
	w.Padding(5)
	w.Padding(5 * 8)
}

// PoolFeesStruct is the fee state stored on a pool. The base fee occupies 32
// bytes followed by 8 bytes of padding.
type PoolFeesStruct struct {
	BaseFee            BaseFeeInfo      `json:"base_fee"`
	ProtocolFeePercent uint8            `json:"protocol_fee_percent"`
	PartnerFeePercent  uint8            `json:"partner_fee_percent"`
	ReferralFeePercent uint8            `json:"referral_fee_percent"`
	DynamicFee         DynamicFeeStruct `json:"dynamic_fee"`
	InitSqrtPrice      borsh.Uint128    `json:"init_sqrt_price"`
}

func (s *PoolFeesStruct) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("base_fee", &s.BaseFee)
	r.Padding("base_fee.padding_1", 8)
	s.ProtocolFeePercent = r.U8("protocol_fee_percent")
	s.PartnerFeePercent = r.U8("partner_fee_percent")
	s.ReferralFeePercent = r.U8("referral_fee_percent")
	r.Padding("padding_0", 5)
	r.Struct("dynamic_fee", &s.DynamicFee)
	s.InitSqrtPrice = r.U128("init_sqrt_price")
}

func (s *PoolFeesStruct) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&s.BaseFee)
	w.Padding(8)
	w.U8(s.ProtocolFeePercent)
	w.U8(s.PartnerFeePercent)
	w.U8(s.ReferralFeePercent)
	w.Padding(5)
	w.Struct(&s.DynamicFee)
	w.U128(s.InitSqrtPrice)
}

type PoolMetrics struct {
	TotalLpAFee       borsh.Uint128 `json:"total_lp_a_fee"`
	TotalLpBFee       borsh.Uint128 `json:"total_lp_b_fee"`
	TotalProtocolAFee uint64        `json:"total_protocol_a_fee"`
	TotalProtocolBFee uint64        `json:"total_protocol_b_fee"`
	TotalPartnerAFee  uint64        `json:"total_partner_a_fee"`
	TotalPartnerBFee  uint64        `json:"total_partner_b_fee"`
	TotalPosition     uint64        `json:"total_position"`
}

func (m *PoolMetrics) UnmarshalWithReader(r *borsh.Reader) {
	m.TotalLpAFee = r.U128("total_lp_a_fee")
	m.TotalLpBFee = r.U128("total_lp_b_fee")
	m.TotalProtocolAFee = r.U64("total_protocol_a_fee")
	m.TotalProtocolBFee = r.U64("total_protocol_b_fee")
	m.TotalPartnerAFee = r.U64("total_partner_a_fee")
	m.TotalPartnerBFee = r.U64("total_partner_b_fee")
	m.TotalPosition = r.U64("total_position")
	r.Padding("padding", 8)
}

func (m *PoolMetrics) MarshalWithWriter(w *borsh.Writer) {
	w.U128(m.TotalLpAFee)
	w.U128(m.TotalLpBFee)
	w.U64(m.TotalProtocolAFee)
	w.U64(m.TotalProtocolBFee)
	w.U64(m.TotalPartnerAFee)
	w.U64(m.TotalPartnerBFee)
	w.U64(m.TotalPosition)
	w.Padding(8)
}

type RewardInfo struct {
	Initialized                               uint8            `json:"initialized"`
	RewardTokenFlag                           uint8            `json:"reward_token_flag"`
	Mint                                      solana.PublicKey `json:"mint"`
	Vault                                     solana.PublicKey `json:"vault"`
	Funder                                    solana.PublicKey `json:"funder"`
	RewardDuration                            uint64           `json:"reward_duration"`
	RewardDurationEnd                         uint64           `json:"reward_duration_end"`
	RewardRate                                borsh.Uint128    `json:"reward_rate"`
	RewardPerTokenStored                      [32]byte         `json:"reward_per_token_stored"`
	LastUpdateTime                            uint64           `json:"last_update_time"`
	CumulativeSecondsWithEmptyLiquidityReward uint64           `json:"cumulative_seconds_with_empty_liquidity_reward"`
}

func (ri *RewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	ri.Initialized = r.U8("initialized")
	ri.RewardTokenFlag = r.U8("reward_token_flag")
	r.Padding("_padding_0", 6)
	r.Padding("_padding_1", 8)
	ri.Mint = r.PublicKey("mint")
	ri.Vault = r.PublicKey("vault")
	ri.Funder = r.PublicKey("funder")
	ri.RewardDuration = r.U64("reward_duration")
	ri.RewardDurationEnd = r.U64("reward_duration_end")
	ri.RewardRate = r.U128("reward_rate")
	r.FixedBytes("reward_per_token_stored", ri.RewardPerTokenStored[:])
	ri.LastUpdateTime = r.U64("last_update_time")
	ri.CumulativeSecondsWithEmptyLiquidityReward = r.U64("cumulative_seconds_with_empty_liquidity_reward")
}

func (ri *RewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.U8(ri.Initialized)
	w.U8(ri.RewardTokenFlag)
	w.Padding(6 + 8)
	w.PublicKey(ri.Mint)
	w.PublicKey(ri.Vault)
	w.PublicKey(ri.Funder)
	w.U64(ri.RewardDuration)
	w.U64(ri.RewardDurationEnd)
	w.U128(ri.RewardRate)
	w.FixedBytes(ri.RewardPerTokenStored[:])
	w.U64(ri.LastUpdateTime)
	w.U64(ri.CumulativeSecondsWithEmptyLiquidityReward)
}

type PositionMetrics struct {
	TotalClaimedAFee uint64 `json:"total_claimed_a_fee"`
	TotalClaimedBFee uint64 `json:"total_claimed_b_fee"`
}

func (m *PositionMetrics) UnmarshalWithReader(r *borsh.Reader) {
	m.TotalClaimedAFee = r.U64("total_claimed_a_fee")
	m.TotalClaimedBFee = r.U64("total_claimed_b_fee")
}

func (m *PositionMetrics) MarshalWithWriter(w *borsh.Writer) {
	w.U64(m.TotalClaimedAFee)
	w.U64(m.TotalClaimedBFee)
}

type UserRewardInfo struct {
	RewardPerTokenCheckpoint [32]byte `json:"reward_per_token_checkpoint"`
	RewardPendings           uint64   `json:"reward_pendings"`
	TotalClaimedRewards      uint64   `json:"total_claimed_rewards"`
}

func (u *UserRewardInfo) UnmarshalWithReader(r *borsh.Reader) {
	r.FixedBytes("reward_per_token_checkpoint", u.RewardPerTokenCheckpoint[:])
	u.RewardPendings = r.U64("reward_pendings")
	u.TotalClaimedRewards = r.U64("total_claimed_rewards")
}

func (u *UserRewardInfo) MarshalWithWriter(w *borsh.Writer) {
	w.FixedBytes(u.RewardPerTokenCheckpoint[:])
	w.U64(u.RewardPendings)
	w.U64(u.TotalClaimedRewards)
}

// LiquidityParameters is shared by add and remove liquidity.
type LiquidityParameters struct {
	LiquidityDelta        borsh.Uint128 `json:"liquidity_delta"`
	TokenAAmountThreshold uint64        `json:"token_a_amount_threshold"`
	TokenBAmountThreshold uint64        `json:"token_b_amount_threshold"`
}

func (p *LiquidityParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.LiquidityDelta = r.U128("liquidity_delta")
	p.TokenAAmountThreshold = r.U64("token_a_amount_threshold")
	p.TokenBAmountThreshold = r.U64("token_b_amount_threshold")
}

func (p *LiquidityParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U128(p.LiquidityDelta)
	w.U64(p.TokenAAmountThreshold)
	w.U64(p.TokenBAmountThreshold)
}

type SwapParameters struct {
	AmountIn         uint64 `json:"amount_in"`
	MinimumAmountOut uint64 `json:"minimum_amount_out"`
}

func (p *SwapParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.AmountIn = r.U64("amount_in")
	p.MinimumAmountOut = r.U64("minimum_amount_out")
}

func (p *SwapParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.AmountIn)
	w.U64(p.MinimumAmountOut)
}

type SwapParameters2 struct {
	Amount0  uint64 `json:"amount_0"`
	Amount1  uint64 `json:"amount_1"`
	SwapMode uint8  `json:"swap_mode"`
}

func (p *SwapParameters2) UnmarshalWithReader(r *borsh.Reader) {
	p.Amount0 = r.U64("amount_0")
	p.Amount1 = r.U64("amount_1")
	p.SwapMode = r.U8("swap_mode")
}

func (p *SwapParameters2) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.Amount0)
	w.U64(p.Amount1)
	w.U8(p.SwapMode)
}

type SwapResult struct {
	OutputAmount  uint64        `json:"output_amount"`
	NextSqrtPrice borsh.Uint128 `json:"next_sqrt_price"`
	LpFee         uint64        `json:"lp_fee"`
	ProtocolFee   uint64        `json:"protocol_fee"`
	PartnerFee    uint64        `json:"partner_fee"`
	ReferralFee   uint64        `json:"referral_fee"`
}

func (s *SwapResult) UnmarshalWithReader(r *borsh.Reader) {
	s.OutputAmount = r.U64("output_amount")
	s.NextSqrtPrice = r.U128("next_sqrt_price")
	s.LpFee = r.U64("lp_fee")
	s.ProtocolFee = r.U64("protocol_fee")
	s.PartnerFee = r.U64("partner_fee")
	s.ReferralFee = r.U64("referral_fee")
}

func (s *SwapResult) MarshalWithWriter(w *borsh.Writer) {
	w.U64(s.OutputAmount)
	w.U128(s.NextSqrtPrice)
	w.U64(s.LpFee)
	w.U64(s.ProtocolFee)
	w.U64(s.PartnerFee)
	w.U64(s.ReferralFee)
}

type SwapResult2 struct {
	IncludedFeeInputAmount uint64        `json:"included_fee_input_amount"`
	ExcludedFeeInputAmount uint64        `json:"excluded_fee_input_amount"`
	AmountLeft             uint64        `json:"amount_left"`
	OutputAmount           uint64        `json:"output_amount"`
	NextSqrtPrice          borsh.Uint128 `json:"next_sqrt_price"`
	TradingFee             uint64        `json:"trading_fee"`
	ProtocolFee            uint64        `json:"protocol_fee"`
	PartnerFee             uint64        `json:"partner_fee"`
	ReferralFee            uint64        `json:"referral_fee"`
}

func (s *SwapResult2) UnmarshalWithReader(r *borsh.Reader) {
	s.IncludedFeeInputAmount = r.U64("included_fee_input_amount")
	s.ExcludedFeeInputAmount = r.U64("excluded_fee_input_amount")
	s.AmountLeft = r.U64("amount_left")
	s.OutputAmount = r.U64("output_amount")
	s.NextSqrtPrice = r.U128("next_sqrt_price")
	s.TradingFee = r.U64("trading_fee")
	s.ProtocolFee = r.U64("protocol_fee")
	s.PartnerFee = r.U64("partner_fee")
	s.ReferralFee = r.U64("referral_fee")
}

func (s *SwapResult2) MarshalWithWriter(w *borsh.Writer) {
	w.U64(s.IncludedFeeInputAmount)
	w.U64(s.ExcludedFeeInputAmount)
	w.U64(s.AmountLeft)
	w.U64(s.OutputAmount)
	w.U128(s.NextSqrtPrice)
	w.U64(s.TradingFee)
	w.U64(s.ProtocolFee)
	w.U64(s.PartnerFee)
	w.U64(s.ReferralFee)
}

// UpdatePoolFeesParameters leaves a fee unchanged when its field is absent.
type UpdatePoolFeesParameters struct {
	CliffFeeNumerator *uint64               `json:"cliff_fee_numerator"`
	DynamicFee        *DynamicFeeParameters `json:"dynamic_fee"`
}

func (p *UpdatePoolFeesParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.CliffFeeNumerator = borsh.ReadOption(r, "cliff_fee_numerator", (*borsh.Reader).U64)
	p.DynamicFee = borsh.ReadStructOption[DynamicFeeParameters](r, "dynamic_fee")
}

func (p *UpdatePoolFeesParameters) MarshalWithWriter(w *borsh.Writer) {
	borsh.WriteOption(w, p.CliffFeeNumerator, (*borsh.Writer).U64)
	borsh.WriteStructOption(w, p.DynamicFee)
}
