package meteoradbc

import (
	"github.com/lugondev/solcodec/pkg/borsh"
)

// MaxCurvePoints is the number of liquidity distribution points a PoolConfig stores.
const MaxCurvePoints = 20

type BaseFeeConfig struct {
	CliffFeeNumerator uint64 `json:"cliff_fee_numerator"`
	SecondFactor      uint64 `json:"second_factor"`
	ThirdFactor       uint64 `json:"third_factor"`
	FirstFactor       uint16 `json:"first_factor"`
	BaseFeeMode       uint8  `json:"base_fee_mode"`
}

func (p *BaseFeeConfig) UnmarshalWithReader(r *borsh.Reader) {
	p.CliffFeeNumerator = r.U64("cliff_fee_numerator")
	p.SecondFactor = r.U64("second_factor")
	p.ThirdFactor = r.U64("third_factor")
	p.FirstFactor = r.U16("first_factor")
	p.BaseFeeMode = r.U8("base_fee_mode")
	r.Padding("padding_0", 5)
}

func (p *BaseFeeConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.CliffFeeNumerator)
	w.U64(p.SecondFactor)
	w.U64(p.ThirdFactor)
	w.U16(p.FirstFactor)
	w.U8(p.BaseFeeMode)
	w.Padding(5)
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

func (p *DynamicFeeConfig) UnmarshalWithReader(r *borsh.Reader) {
	p.Initialized = r.U8("initialized")
	r.Padding("padding", 7)
	p.MaxVolatilityAccumulator = r.U32("max_volatility_accumulator")
	p.VariableFeeControl = r.U32("variable_fee_control")
	p.BinStep = r.U16("bin_step")
	p.FilterPeriod = r.U16("filter_period")
	p.DecayPeriod = r.U16("decay_period")
	p.ReductionFactor = r.U16("reduction_factor")
	r.Padding("padding2", 8)
	p.BinStepU128 = r.U128("bin_step_u128")
}

func (p *DynamicFeeConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U8(p.Initialized)
	w.Padding(7)
	w.U32(p.MaxVolatilityAccumulator)
	w.U32(p.VariableFeeControl)
	w.U16(p.BinStep)
	w.U16(p.FilterPeriod)
	w.U16(p.DecayPeriod)
	w.U16(p.ReductionFactor)
	w.Padding(8)
	w.U128(p.BinStepU128)
}

// PoolFeesConfig is the fee section of a PoolConfig account.
type PoolFeesConfig struct {
	BaseFee            BaseFeeConfig    `json:"base_fee"`
	DynamicFee         DynamicFeeConfig `json:"dynamic_fee"`
	ProtocolFeePercent uint8            `json:"protocol_fee_percent"`
	ReferralFeePercent uint8            `json:"referral_fee_percent"`
}

func (p *PoolFeesConfig) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("base_fee", &p.BaseFee)
	r.Struct("dynamic_fee", &p.DynamicFee)
	r.Padding("padding_0", 40)
	r.Padding("padding_1", 6)
	p.ProtocolFeePercent = r.U8("protocol_fee_percent")
	p.ReferralFeePercent = r.U8("referral_fee_percent")
}

func (p *PoolFeesConfig) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&p.BaseFee)
	w.Struct(&p.DynamicFee)
	w.Padding(40)
	w.Padding(6)
	w.U8(p.ProtocolFeePercent)
	w.U8(p.ReferralFeePercent)
}

type PoolFees struct {
	TradeFeeNumerator           uint64 `json:"trade_fee_numerator"`
	TradeFeeDenominator         uint64 `json:"trade_fee_denominator"`
	ProtocolTradeFeeNumerator   uint64 `json:"protocol_trade_fee_numerator"`
	ProtocolTradeFeeDenominator uint64 `json:"protocol_trade_fee_denominator"`
}

func (p *PoolFees) UnmarshalWithReader(r *borsh.Reader) {
	p.TradeFeeNumerator = r.U64("trade_fee_numerator")
	p.TradeFeeDenominator = r.U64("trade_fee_denominator")
	p.ProtocolTradeFeeNumerator = r.U64("protocol_trade_fee_numerator")
	p.ProtocolTradeFeeDenominator = r.U64("protocol_trade_fee_denominator")
}

func (p *PoolFees) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.TradeFeeNumerator)
	w.U64(p.TradeFeeDenominator)
	w.U64(p.ProtocolTradeFeeNumerator)
	w.U64(p.ProtocolTradeFeeDenominator)
}

type LockedVestingConfig struct {
	AmountPerPeriod                uint64 `json:"amount_per_period"`
	CliffDurationFromMigrationTime uint64 `json:"cliff_duration_from_migration_time"`
	Frequency                      uint64 `json:"frequency"`
	NumberOfPeriod                 uint64 `json:"number_of_period"`
	CliffUnlockAmount              uint64 `json:"cliff_unlock_amount"`
}

func (p *LockedVestingConfig) UnmarshalWithReader(r *borsh.Reader) {
	p.AmountPerPeriod = r.U64("amount_per_period")
	p.CliffDurationFromMigrationTime = r.U64("cliff_duration_from_migration_time")
	p.Frequency = r.U64("frequency")
	p.NumberOfPeriod = r.U64("number_of_period")
	p.CliffUnlockAmount = r.U64("cliff_unlock_amount")
	r.Padding("_padding", 8)
}

func (p *LockedVestingConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.AmountPerPeriod)
	w.U64(p.CliffDurationFromMigrationTime)
	w.U64(p.Frequency)
	w.U64(p.NumberOfPeriod)
	w.U64(p.CliffUnlockAmount)
	w.Padding(8)
}

type LiquidityDistributionConfig struct {
	SqrtPrice borsh.Uint128 `json:"sqrt_price"`
	Liquidity borsh.Uint128 `json:"liquidity"`
}

func (p *LiquidityDistributionConfig) UnmarshalWithReader(r *borsh.Reader) {
	p.SqrtPrice = r.U128("sqrt_price")
	p.Liquidity = r.U128("liquidity")
}

func (p *LiquidityDistributionConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U128(p.SqrtPrice)
	w.U128(p.Liquidity)
}

type VolatilityTracker struct {
	LastUpdateTimestamp   uint64        `json:"last_update_timestamp"`
	SqrtPriceReference    borsh.Uint128 `json:"sqrt_price_reference"`
	VolatilityAccumulator borsh.Uint128 `json:"volatility_accumulator"`
	VolatilityReference   borsh.Uint128 `json:"volatility_reference"`
}

func (p *VolatilityTracker) UnmarshalWithReader(r *borsh.Reader) {
	p.LastUpdateTimestamp = r.U64("last_update_timestamp")
	r.Padding("padding", 8)
	p.SqrtPriceReference = r.U128("sqrt_price_reference")
	p.VolatilityAccumulator = r.U128("volatility_accumulator")
	p.VolatilityReference = r.U128("volatility_reference")
}

func (p *VolatilityTracker) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.LastUpdateTimestamp)
	w.Padding(8)
	w.U128(p.SqrtPriceReference)
	w.U128(p.VolatilityAccumulator)
	w.U128(p.VolatilityReference)
}

type PoolMetrics struct {
	TotalProtocolBaseFee  uint64 `json:"total_protocol_base_fee"`
	TotalProtocolQuoteFee uint64 `json:"total_protocol_quote_fee"`
	TotalTradingBaseFee   uint64 `json:"total_trading_base_fee"`
	TotalTradingQuoteFee  uint64 `json:"total_trading_quote_fee"`
}

func (p *PoolMetrics) UnmarshalWithReader(r *borsh.Reader) {
	p.TotalProtocolBaseFee = r.U64("total_protocol_base_fee")
	p.TotalProtocolQuoteFee = r.U64("total_protocol_quote_fee")
	p.TotalTradingBaseFee = r.U64("total_trading_base_fee")
	p.TotalTradingQuoteFee = r.U64("total_trading_quote_fee")
}

func (p *PoolMetrics) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.TotalProtocolBaseFee)
	w.U64(p.TotalProtocolQuoteFee)
	w.U64(p.TotalTradingBaseFee)
	w.U64(p.TotalTradingQuoteFee)
}

type BaseFeeParameters struct {
	CliffFeeNumerator uint64 `json:"cliff_fee_numerator"`
	FirstFactor       uint16 `json:"first_factor"`
	SecondFactor      uint64 `json:"second_factor"`
	ThirdFactor       uint64 `json:"third_factor"`
	BaseFeeMode       uint8  `json:"base_fee_mode"`
}

func (p *BaseFeeParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.CliffFeeNumerator = r.U64("cliff_fee_numerator")
	p.FirstFactor = r.U16("first_factor")
	p.SecondFactor = r.U64("second_factor")
	p.ThirdFactor = r.U64("third_factor")
	p.BaseFeeMode = r.U8("base_fee_mode")
}

func (p *BaseFeeParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.CliffFeeNumerator)
	w.U16(p.FirstFactor)
	w.U64(p.SecondFactor)
	w.U64(p.ThirdFactor)
	w.U8(p.BaseFeeMode)
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

type PoolFeeParameters struct {
	BaseFee    BaseFeeParameters     `json:"base_fee"`
	DynamicFee *DynamicFeeParameters `json:"dynamic_fee"`
}

func (p *PoolFeeParameters) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("base_fee", &p.BaseFee)
	p.DynamicFee = borsh.ReadStructOption[DynamicFeeParameters](r, "dynamic_fee")
}

func (p *PoolFeeParameters) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&p.BaseFee)
	borsh.WriteStructOption(w, p.DynamicFee)
}

type LockedVestingParams struct {
	AmountPerPeriod                uint64 `json:"amount_per_period"`
	CliffDurationFromMigrationTime uint64 `json:"cliff_duration_from_migration_time"`
	Frequency                      uint64 `json:"frequency"`
	NumberOfPeriod                 uint64 `json:"number_of_period"`
	CliffUnlockAmount              uint64 `json:"cliff_unlock_amount"`
}

func (p *LockedVestingParams) UnmarshalWithReader(r *borsh.Reader) {
	p.AmountPerPeriod = r.U64("amount_per_period")
	p.CliffDurationFromMigrationTime = r.U64("cliff_duration_from_migration_time")
	p.Frequency = r.U64("frequency")
	p.NumberOfPeriod = r.U64("number_of_period")
	p.CliffUnlockAmount = r.U64("cliff_unlock_amount")
}

func (p *LockedVestingParams) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.AmountPerPeriod)
	w.U64(p.CliffDurationFromMigrationTime)
	w.U64(p.Frequency)
	w.U64(p.NumberOfPeriod)
	w.U64(p.CliffUnlockAmount)
}

type TokenSupplyParams struct {
	PreMigrationTokenSupply  uint64 `json:"pre_migration_token_supply"`
	PostMigrationTokenSupply uint64 `json:"post_migration_token_supply"`
}

func (p *TokenSupplyParams) UnmarshalWithReader(r *borsh.Reader) {
	p.PreMigrationTokenSupply = r.U64("pre_migration_token_supply")
	p.PostMigrationTokenSupply = r.U64("post_migration_token_supply")
}

func (p *TokenSupplyParams) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.PreMigrationTokenSupply)
	w.U64(p.PostMigrationTokenSupply)
}

type MigrationFee struct {
	FeePercentage        uint8 `json:"fee_percentage"`
	CreatorFeePercentage uint8 `json:"creator_fee_percentage"`
}

func (p *MigrationFee) UnmarshalWithReader(r *borsh.Reader) {
	p.FeePercentage = r.U8("fee_percentage")
	p.CreatorFeePercentage = r.U8("creator_fee_percentage")
}

func (p *MigrationFee) MarshalWithWriter(w *borsh.Writer) {
	w.U8(p.FeePercentage)
	w.U8(p.CreatorFeePercentage)
}

type MigratedPoolFee struct {
	CollectFeeMode uint8  `json:"collect_fee_mode"`
	DynamicFee     uint8  `json:"dynamic_fee"`
	PoolFeeBps     uint16 `json:"pool_fee_bps"`
}

func (p *MigratedPoolFee) UnmarshalWithReader(r *borsh.Reader) {
	p.CollectFeeMode = r.U8("collect_fee_mode")
	p.DynamicFee = r.U8("dynamic_fee")
	p.PoolFeeBps = r.U16("pool_fee_bps")
}

func (p *MigratedPoolFee) MarshalWithWriter(w *borsh.Writer) {
	w.U8(p.CollectFeeMode)
	w.U8(p.DynamicFee)
	w.U16(p.PoolFeeBps)
}

type LiquidityDistributionParameters struct {
	SqrtPrice borsh.Uint128 `json:"sqrt_price"`
	Liquidity borsh.Uint128 `json:"liquidity"`
}

func (p *LiquidityDistributionParameters) UnmarshalWithReader(r *borsh.Reader) {
	p.SqrtPrice = r.U128("sqrt_price")
	p.Liquidity = r.U128("liquidity")
}

func (p *LiquidityDistributionParameters) MarshalWithWriter(w *borsh.Writer) {
	w.U128(p.SqrtPrice)
	w.U128(p.Liquidity)
}

// ConfigParameters mirrors the create_config instruction arguments.
type ConfigParameters struct {
	PoolFees                    PoolFeeParameters                 `json:"pool_fees"`
	CollectFeeMode              uint8                             `json:"collect_fee_mode"`
	MigrationOption             uint8                             `json:"migration_option"`
	ActivationType              uint8                             `json:"activation_type"`
	TokenType                   uint8                             `json:"token_type"`
	TokenDecimal                uint8                             `json:"token_decimal"`
	PartnerLpPercentage         uint8                             `json:"partner_lp_percentage"`
	PartnerLockedLpPercentage   uint8                             `json:"partner_locked_lp_percentage"`
	CreatorLpPercentage         uint8                             `json:"creator_lp_percentage"`
	CreatorLockedLpPercentage   uint8                             `json:"creator_locked_lp_percentage"`
	MigrationQuoteThreshold     uint64                            `json:"migration_quote_threshold"`
	SqrtStartPrice              borsh.Uint128                     `json:"sqrt_start_price"`
	LockedVesting               LockedVestingParams               `json:"locked_vesting"`
	MigrationFeeOption          uint8                             `json:"migration_fee_option"`
	TokenSupply                 *TokenSupplyParams                `json:"token_supply"`
	CreatorTradingFeePercentage uint8                             `json:"creator_trading_fee_percentage"`
	TokenUpdateAuthority        uint8                             `json:"token_update_authority"`
	MigrationFee                MigrationFee                      `json:"migration_fee"`
	MigratedPoolFee             MigratedPoolFee                   `json:"migrated_pool_fee"`
	Curve                       []LiquidityDistributionParameters `json:"curve"`
}

func (p *ConfigParameters) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("pool_fees", &p.PoolFees)
	p.CollectFeeMode = r.U8("collect_fee_mode")
	p.MigrationOption = r.U8("migration_option")
	p.ActivationType = r.U8("activation_type")
	p.TokenType = r.U8("token_type")
	p.TokenDecimal = r.U8("token_decimal")
	p.PartnerLpPercentage = r.U8("partner_lp_percentage")
	p.PartnerLockedLpPercentage = r.U8("partner_locked_lp_percentage")
	p.CreatorLpPercentage = r.U8("creator_lp_percentage")
	p.CreatorLockedLpPercentage = r.U8("creator_locked_lp_percentage")
	p.MigrationQuoteThreshold = r.U64("migration_quote_threshold")
	p.SqrtStartPrice = r.U128("sqrt_start_price")
	r.Struct("locked_vesting", &p.LockedVesting)
	p.MigrationFeeOption = r.U8("migration_fee_option")
	p.TokenSupply = borsh.ReadStructOption[TokenSupplyParams](r, "token_supply")
	p.CreatorTradingFeePercentage = r.U8("creator_trading_fee_percentage")
	p.TokenUpdateAuthority = r.U8("token_update_authority")
	r.Struct("migration_fee", &p.MigrationFee)
	r.Struct("migrated_pool_fee", &p.MigratedPoolFee)
	r.VecPadding("padding", 8)
	p.Curve = borsh.ReadStructVec[LiquidityDistributionParameters](r, "curve")
}

func (p *ConfigParameters) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&p.PoolFees)
	w.U8(p.CollectFeeMode)
	w.U8(p.MigrationOption)
	w.U8(p.ActivationType)
	w.U8(p.TokenType)
	w.U8(p.TokenDecimal)
	w.U8(p.PartnerLpPercentage)
	w.U8(p.PartnerLockedLpPercentage)
	w.U8(p.CreatorLpPercentage)
	w.U8(p.CreatorLockedLpPercentage)
	w.U64(p.MigrationQuoteThreshold)
	w.U128(p.SqrtStartPrice)
	w.Struct(&p.LockedVesting)
	w.U8(p.MigrationFeeOption)
	borsh.WriteStructOption(w, p.TokenSupply)
	w.U8(p.CreatorTradingFeePercentage)
	w.U8(p.TokenUpdateAuthority)
	w.Struct(&p.MigrationFee)
	w.Struct(&p.MigratedPoolFee)
	w.VecPadding()
	borsh.WriteStructVec(w, "curve", p.Curve)
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

// SwapParameters2 carries the swap mode of swap2: 0 exact in, 1 partial fill, 2 exact out.
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
	ActualInputAmount uint64        `json:"actual_input_amount"`
	OutputAmount      uint64        `json:"output_amount"`
	NextSqrtPrice     borsh.Uint128 `json:"next_sqrt_price"`
	TradingFee        uint64        `json:"trading_fee"`
	ProtocolFee       uint64        `json:"protocol_fee"`
	ReferralFee       uint64        `json:"referral_fee"`
}

func (p *SwapResult) UnmarshalWithReader(r *borsh.Reader) {
	p.ActualInputAmount = r.U64("actual_input_amount")
	p.OutputAmount = r.U64("output_amount")
	p.NextSqrtPrice = r.U128("next_sqrt_price")
	p.TradingFee = r.U64("trading_fee")
	p.ProtocolFee = r.U64("protocol_fee")
	p.ReferralFee = r.U64("referral_fee")
}

func (p *SwapResult) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.ActualInputAmount)
	w.U64(p.OutputAmount)
	w.U128(p.NextSqrtPrice)
	w.U64(p.TradingFee)
	w.U64(p.ProtocolFee)
	w.U64(p.ReferralFee)
}

type SwapResult2 struct {
	IncludedFeeInputAmount uint64        `json:"included_fee_input_amount"`
	ExcludedFeeInputAmount uint64        `json:"excluded_fee_input_amount"`
	AmountLeft             uint64        `json:"amount_left"`
	OutputAmount           uint64        `json:"output_amount"`
	NextSqrtPrice          borsh.Uint128 `json:"next_sqrt_price"`
	TradingFee             uint64        `json:"trading_fee"`
	ProtocolFee            uint64        `json:"protocol_fee"`
	ReferralFee            uint64        `json:"referral_fee"`
}

func (p *SwapResult2) UnmarshalWithReader(r *borsh.Reader) {
	p.IncludedFeeInputAmount = r.U64("included_fee_input_amount")
	p.ExcludedFeeInputAmount = r.U64("excluded_fee_input_amount")
	p.AmountLeft = r.U64("amount_left")
	p.OutputAmount = r.U64("output_amount")
	p.NextSqrtPrice = r.U128("next_sqrt_price")
	p.TradingFee = r.U64("trading_fee")
	p.ProtocolFee = r.U64("protocol_fee")
	p.ReferralFee = r.U64("referral_fee")
}

func (p *SwapResult2) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.IncludedFeeInputAmount)
	w.U64(p.ExcludedFeeInputAmount)
	w.U64(p.AmountLeft)
	w.U64(p.OutputAmount)
	w.U128(p.NextSqrtPrice)
	w.U64(p.TradingFee)
	w.U64(p.ProtocolFee)
	w.U64(p.ReferralFee)
}
