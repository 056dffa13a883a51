package meteoradbc

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type EvtClaimCreatorTradingFee struct {
	Pool             solana.PublicKey `json:"pool"`
	TokenBaseAmount  uint64           `json:"token_base_amount"`
	TokenQuoteAmount uint64           `json:"token_quote_amount"`
}

func (e *EvtClaimCreatorTradingFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TokenBaseAmount = r.U64("token_base_amount")
	e.TokenQuoteAmount = r.U64("token_quote_amount")
}

func (e *EvtClaimCreatorTradingFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.TokenBaseAmount)
	w.U64(e.TokenQuoteAmount)
}

type EvtClaimProtocolFee struct {
	Pool             solana.PublicKey `json:"pool"`
	TokenBaseAmount  uint64           `json:"token_base_amount"`
	TokenQuoteAmount uint64           `json:"token_quote_amount"`
}

func (e *EvtClaimProtocolFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TokenBaseAmount = r.U64("token_base_amount")
	e.TokenQuoteAmount = r.U64("token_quote_amount")
}

func (e *EvtClaimProtocolFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.TokenBaseAmount)
	w.U64(e.TokenQuoteAmount)
}

type EvtClaimTradingFee struct {
	Pool             solana.PublicKey `json:"pool"`
	TokenBaseAmount  uint64           `json:"token_base_amount"`
	TokenQuoteAmount uint64           `json:"token_quote_amount"`
}

func (e *EvtClaimTradingFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TokenBaseAmount = r.U64("token_base_amount")
	e.TokenQuoteAmount = r.U64("token_quote_amount")
}

func (e *EvtClaimTradingFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.TokenBaseAmount)
	w.U64(e.TokenQuoteAmount)
}

type EvtCloseClaimFeeOperator struct {
	ClaimFeeOperator solana.PublicKey `json:"claim_fee_operator"`
	Operator         solana.PublicKey `json:"operator"`
}

func (e *EvtCloseClaimFeeOperator) UnmarshalWithReader(r *borsh.Reader) {
	e.ClaimFeeOperator = r.PublicKey("claim_fee_operator")
	e.Operator = r.PublicKey("operator")
}

func (e *EvtCloseClaimFeeOperator) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.ClaimFeeOperator)
	w.PublicKey(e.Operator)
}

type EvtCreateClaimFeeOperator struct {
	Operator solana.PublicKey `json:"operator"`
}

func (e *EvtCreateClaimFeeOperator) UnmarshalWithReader(r *borsh.Reader) {
	e.Operator = r.PublicKey("operator")
}

func (e *EvtCreateClaimFeeOperator) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Operator)
}

type EvtCreateConfig struct {
	Config                    solana.PublicKey                  `json:"config"`
	QuoteMint                 solana.PublicKey                  `json:"quote_mint"`
	FeeClaimer                solana.PublicKey                  `json:"fee_claimer"`
	Owner                     solana.PublicKey                  `json:"owner"`
	PoolFees                  PoolFeeParameters                 `json:"pool_fees"`
	CollectFeeMode            uint8                             `json:"collect_fee_mode"`
	MigrationOption           uint8                             `json:"migration_option"`
	ActivationType            uint8                             `json:"activation_type"`
	TokenDecimal              uint8                             `json:"token_decimal"`
	TokenType                 uint8                             `json:"token_type"`
	PartnerLockedLpPercentage uint8                             `json:"partner_locked_lp_percentage"`
	PartnerLpPercentage       uint8                             `json:"partner_lp_percentage"`
	CreatorLockedLpPercentage uint8                             `json:"creator_locked_lp_percentage"`
	CreatorLpPercentage       uint8                             `json:"creator_lp_percentage"`
	SwapBaseAmount            uint64                            `json:"swap_base_amount"`
	MigrationQuoteThreshold   uint64                            `json:"migration_quote_threshold"`
	MigrationBaseAmount       uint64                            `json:"migration_base_amount"`
	SqrtStartPrice            borsh.Uint128                     `json:"sqrt_start_price"`
	LockedVesting             LockedVestingParams               `json:"locked_vesting"`
	MigrationFeeOption        uint8                             `json:"migration_fee_option"`
	FixedTokenSupplyFlag      uint8                             `json:"fixed_token_supply_flag"`
	PreMigrationTokenSupply   uint64                            `json:"pre_migration_token_supply"`
	PostMigrationTokenSupply  uint64                            `json:"post_migration_token_supply"`
	Curve                     []LiquidityDistributionParameters `json:"curve"`
}

func (e *EvtCreateConfig) UnmarshalWithReader(r *borsh.Reader) {
	e.Config = r.PublicKey("config")
	e.QuoteMint = r.PublicKey("quote_mint")
	e.FeeClaimer = r.PublicKey("fee_claimer")
	e.Owner = r.PublicKey("owner")
	r.Struct("pool_fees", &e.PoolFees)
	e.CollectFeeMode = r.U8("collect_fee_mode")
	e.MigrationOption = r.U8("migration_option")
	e.ActivationType = r.U8("activation_type")
	e.TokenDecimal = r.U8("token_decimal")
	e.TokenType = r.U8("token_type")
	e.PartnerLockedLpPercentage = r.U8("partner_locked_lp_percentage")
	e.PartnerLpPercentage = r.U8("partner_lp_percentage")
	e.CreatorLockedLpPercentage = r.U8("creator_locked_lp_percentage")
	e.CreatorLpPercentage = r.U8("creator_lp_percentage")
	e.SwapBaseAmount = r.U64("swap_base_amount")
	e.MigrationQuoteThreshold = r.U64("migration_quote_threshold")
	e.MigrationBaseAmount = r.U64("migration_base_amount")
	e.SqrtStartPrice = r.U128("sqrt_start_price")
	r.Struct("locked_vesting", &e.LockedVesting)
	e.MigrationFeeOption = r.U8("migration_fee_option")
	e.FixedTokenSupplyFlag = r.U8("fixed_token_supply_flag")
	e.PreMigrationTokenSupply = r.U64("pre_migration_token_supply")
	e.PostMigrationTokenSupply = r.U64("post_migration_token_supply")
	e.Curve = borsh.ReadStructVec[LiquidityDistributionParameters](r, "curve")
}

func (e *EvtCreateConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Config)
	w.PublicKey(e.QuoteMint)
	w.PublicKey(e.FeeClaimer)
	w.PublicKey(e.Owner)
	w.Struct(&e.PoolFees)
	w.U8(e.CollectFeeMode)
	w.U8(e.MigrationOption)
	w.U8(e.ActivationType)
	w.U8(e.TokenDecimal)
	w.U8(e.TokenType)
	w.U8(e.PartnerLockedLpPercentage)
	w.U8(e.PartnerLpPercentage)
	w.U8(e.CreatorLockedLpPercentage)
	w.U8(e.CreatorLpPercentage)
	w.U64(e.SwapBaseAmount)
	w.U64(e.MigrationQuoteThreshold)
	w.U64(e.MigrationBaseAmount)
	w.U128(e.SqrtStartPrice)
	w.Struct(&e.LockedVesting)
	w.U8(e.MigrationFeeOption)
	w.U8(e.FixedTokenSupplyFlag)
	w.U64(e.PreMigrationTokenSupply)
	w.U64(e.PostMigrationTokenSupply)
	borsh.WriteStructVec(w, "curve", e.Curve)
}

type EvtCreateConfigV2 struct {
	Config           solana.PublicKey `json:"config"`
	QuoteMint        solana.PublicKey `json:"quote_mint"`
	FeeClaimer       solana.PublicKey `json:"fee_claimer"`
	LeftoverReceiver solana.PublicKey `json:"leftover_receiver"`
	ConfigParameters ConfigParameters `json:"config_parameters"`
}

func (e *EvtCreateConfigV2) UnmarshalWithReader(r *borsh.Reader) {
	e.Config = r.PublicKey("config")
	e.QuoteMint = r.PublicKey("quote_mint")
	e.FeeClaimer = r.PublicKey("fee_claimer")
	e.LeftoverReceiver = r.PublicKey("leftover_receiver")
	r.Struct("config_parameters", &e.ConfigParameters)
}

func (e *EvtCreateConfigV2) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Config)
	w.PublicKey(e.QuoteMint)
	w.PublicKey(e.FeeClaimer)
	w.PublicKey(e.LeftoverReceiver)
	w.Struct(&e.ConfigParameters)
}

type EvtCreateDammV2MigrationMetadata struct {
	VirtualPool solana.PublicKey `json:"virtual_pool"`
}

func (e *EvtCreateDammV2MigrationMetadata) UnmarshalWithReader(r *borsh.Reader) {
	e.VirtualPool = r.PublicKey("virtual_pool")
}

func (e *EvtCreateDammV2MigrationMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.VirtualPool)
}

type EvtCreateMeteoraMigrationMetadata struct {
	VirtualPool solana.PublicKey `json:"virtual_pool"`
}

func (e *EvtCreateMeteoraMigrationMetadata) UnmarshalWithReader(r *borsh.Reader) {
	e.VirtualPool = r.PublicKey("virtual_pool")
}

func (e *EvtCreateMeteoraMigrationMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.VirtualPool)
}

type EvtCreatorWithdrawSurplus struct {
	Pool          solana.PublicKey `json:"pool"`
	SurplusAmount uint64           `json:"surplus_amount"`
}

func (e *EvtCreatorWithdrawSurplus) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.SurplusAmount = r.U64("surplus_amount")
}

func (e *EvtCreatorWithdrawSurplus) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.SurplusAmount)
}

// EvtCurveComplete marks a pool reaching its migration threshold.
type EvtCurveComplete struct {
	Pool         solana.PublicKey `json:"pool"`
	Config       solana.PublicKey `json:"config"`
	BaseReserve  uint64           `json:"base_reserve"`
	QuoteReserve uint64           `json:"quote_reserve"`
}

func (e *EvtCurveComplete) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Config = r.PublicKey("config")
	e.BaseReserve = r.U64("base_reserve")
	e.QuoteReserve = r.U64("quote_reserve")
}

func (e *EvtCurveComplete) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Config)
	w.U64(e.BaseReserve)
	w.U64(e.QuoteReserve)
}

type EvtInitializePool struct {
	Pool            solana.PublicKey `json:"pool"`
	Config          solana.PublicKey `json:"config"`
	Creator         solana.PublicKey `json:"creator"`
	BaseMint        solana.PublicKey `json:"base_mint"`
	PoolType        uint8            `json:"pool_type"`
	ActivationPoint uint64           `json:"activation_point"`
}

func (e *EvtInitializePool) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Config = r.PublicKey("config")
	e.Creator = r.PublicKey("creator")
	e.BaseMint = r.PublicKey("base_mint")
	e.PoolType = r.U8("pool_type")
	e.ActivationPoint = r.U64("activation_point")
}

func (e *EvtInitializePool) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Config)
	w.PublicKey(e.Creator)
	w.PublicKey(e.BaseMint)
	w.U8(e.PoolType)
	w.U64(e.ActivationPoint)
}

type EvtPartnerMetadata struct {
	PartnerMetadata solana.PublicKey `json:"partner_metadata"`
	FeeClaimer      solana.PublicKey `json:"fee_claimer"`
}

func (e *EvtPartnerMetadata) UnmarshalWithReader(r *borsh.Reader) {
	e.PartnerMetadata = r.PublicKey("partner_metadata")
	e.FeeClaimer = r.PublicKey("fee_claimer")
}

func (e *EvtPartnerMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PartnerMetadata)
	w.PublicKey(e.FeeClaimer)
}

type EvtPartnerWithdrawMigrationFee struct {
	Pool solana.PublicKey `json:"pool"`
	Fee  uint64           `json:"fee"`
}

func (e *EvtPartnerWithdrawMigrationFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Fee = r.U64("fee")
}

func (e *EvtPartnerWithdrawMigrationFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.Fee)
}

type EvtPartnerWithdrawSurplus struct {
	Pool          solana.PublicKey `json:"pool"`
	SurplusAmount uint64           `json:"surplus_amount"`
}

func (e *EvtPartnerWithdrawSurplus) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.SurplusAmount = r.U64("surplus_amount")
}

func (e *EvtPartnerWithdrawSurplus) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.SurplusAmount)
}

type EvtProtocolWithdrawSurplus struct {
	Pool          solana.PublicKey `json:"pool"`
	SurplusAmount uint64           `json:"surplus_amount"`
}

func (e *EvtProtocolWithdrawSurplus) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.SurplusAmount = r.U64("surplus_amount")
}

func (e *EvtProtocolWithdrawSurplus) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.SurplusAmount)
}

// EvtSwap is emitted by swap. TradeDirection is 0 for base to quote and 1 for quote to base.
type EvtSwap struct {
	Pool             solana.PublicKey `json:"pool"`
	Config           solana.PublicKey `json:"config"`
	TradeDirection   uint8            `json:"trade_direction"`
	HasReferral      bool             `json:"has_referral"`
	Params           SwapParameters   `json:"params"`
	SwapResult       SwapResult       `json:"swap_result"`
	AmountIn         uint64           `json:"amount_in"`
	CurrentTimestamp uint64           `json:"current_timestamp"`
}

func (e *EvtSwap) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Config = r.PublicKey("config")
	e.TradeDirection = r.U8("trade_direction")
	e.HasReferral = r.Bool("has_referral")
	r.Struct("params", &e.Params)
	r.Struct("swap_result", &e.SwapResult)
	e.AmountIn = r.U64("amount_in")
	e.CurrentTimestamp = r.U64("current_timestamp")
}

func (e *EvtSwap) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Config)
	w.U8(e.TradeDirection)
	w.Bool(e.HasReferral)
	w.Struct(&e.Params)
	w.Struct(&e.SwapResult)
	w.U64(e.AmountIn)
	w.U64(e.CurrentTimestamp)
}

type EvtSwap2 struct {
	Pool               solana.PublicKey `json:"pool"`
	Config             solana.PublicKey `json:"config"`
	TradeDirection     uint8            `json:"trade_direction"`
	HasReferral        bool             `json:"has_referral"`
	SwapParameters     SwapParameters2  `json:"swap_parameters"`
	SwapResult         SwapResult2      `json:"swap_result"`
	QuoteReserveAmount uint64           `json:"quote_reserve_amount"`
	MigrationThreshold uint64           `json:"migration_threshold"`
	CurrentTimestamp   uint64           `json:"current_timestamp"`
}

func (e *EvtSwap2) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Config = r.PublicKey("config")
	e.TradeDirection = r.U8("trade_direction")
	e.HasReferral = r.Bool("has_referral")
	r.Struct("swap_parameters", &e.SwapParameters)
	r.Struct("swap_result", &e.SwapResult)
	e.QuoteReserveAmount = r.U64("quote_reserve_amount")
	e.MigrationThreshold = r.U64("migration_threshold")
	e.CurrentTimestamp = r.U64("current_timestamp")
}

func (e *EvtSwap2) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Config)
	w.U8(e.TradeDirection)
	w.Bool(e.HasReferral)
	w.Struct(&e.SwapParameters)
	w.Struct(&e.SwapResult)
	w.U64(e.QuoteReserveAmount)
	w.U64(e.MigrationThreshold)
	w.U64(e.CurrentTimestamp)
}

type EvtUpdatePoolCreator struct {
	Pool       solana.PublicKey `json:"pool"`
	Creator    solana.PublicKey `json:"creator"`
	NewCreator solana.PublicKey `json:"new_creator"`
}

func (e *EvtUpdatePoolCreator) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Creator = r.PublicKey("creator")
	e.NewCreator = r.PublicKey("new_creator")
}

func (e *EvtUpdatePoolCreator) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Creator)
	w.PublicKey(e.NewCreator)
}

type EvtVirtualPoolMetadata struct {
	VirtualPoolMetadata solana.PublicKey `json:"virtual_pool_metadata"`
	VirtualPool         solana.PublicKey `json:"virtual_pool"`
}

func (e *EvtVirtualPoolMetadata) UnmarshalWithReader(r *borsh.Reader) {
	e.VirtualPoolMetadata = r.PublicKey("virtual_pool_metadata")
	e.VirtualPool = r.PublicKey("virtual_pool")
}

func (e *EvtVirtualPoolMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.VirtualPoolMetadata)
	w.PublicKey(e.VirtualPool)
}

type EvtWithdrawLeftover struct {
	Pool             solana.PublicKey `json:"pool"`
	LeftoverReceiver solana.PublicKey `json:"leftover_receiver"`
	LeftoverAmount   uint64           `json:"leftover_amount"`
}

func (e *EvtWithdrawLeftover) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.LeftoverReceiver = r.PublicKey("leftover_receiver")
	e.LeftoverAmount = r.U64("leftover_amount")
}

func (e *EvtWithdrawLeftover) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.LeftoverReceiver)
	w.U64(e.LeftoverAmount)
}

type EvtWithdrawMigrationFee struct {
	Pool solana.PublicKey `json:"pool"`
	Fee  uint64           `json:"fee"`
	Flag uint8            `json:"flag"`
}

func (e *EvtWithdrawMigrationFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Fee = r.U64("fee")
	e.Flag = r.U8("flag")
}

func (e *EvtWithdrawMigrationFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.Fee)
	w.U8(e.Flag)
}
