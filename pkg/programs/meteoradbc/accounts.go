package meteoradbc

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type ClaimFeeOperator struct {
	Operator solana.PublicKey `json:"operator"`
}

func (a *ClaimFeeOperator) UnmarshalWithReader(r *borsh.Reader) {
	a.Operator = r.PublicKey("operator")
	r.Padding("_padding", 128)
}

func (a *ClaimFeeOperator) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Operator)
	w.Padding(128)
}

type Config struct {
	PoolFees             PoolFees         `json:"pool_fees"`
	ActivationDuration   uint64           `json:"activation_duration"`
	VaultConfigKey       solana.PublicKey `json:"vault_config_key"`
	PoolCreatorAuthority solana.PublicKey `json:"pool_creator_authority"`
	ActivationType       uint8            `json:"activation_type"`
	PartnerFeeNumerator  uint64           `json:"partner_fee_numerator"`
}

func (a *Config) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("pool_fees", &a.PoolFees)
	a.ActivationDuration = r.U64("activation_duration")
	a.VaultConfigKey = r.PublicKey("vault_config_key")
	a.PoolCreatorAuthority = r.PublicKey("pool_creator_authority")
	a.ActivationType = r.U8("activation_type")
	a.PartnerFeeNumerator = r.U64("partner_fee_numerator")
	r.Padding("padding", 219)
}

func (a *Config) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&a.PoolFees)
	w.U64(a.ActivationDuration)
	w.PublicKey(a.VaultConfigKey)
	w.PublicKey(a.PoolCreatorAuthority)
	w.U8(a.ActivationType)
	w.U64(a.PartnerFeeNumerator)
	w.Padding(219)
}

// LockEscrow is carried over from the DAMM v1 lock escrow layout.
type LockEscrow struct {
	Pool                solana.PublicKey `json:"pool"`
	Owner               solana.PublicKey `json:"owner"`
	EscrowVault         solana.PublicKey `json:"escrow_vault"`
	Bump                uint8            `json:"bump"`
	TotalLockedAmount   uint64           `json:"total_locked_amount"`
	LpPerToken          borsh.Uint128    `json:"lp_per_token"`
	UnclaimedFeePending uint64           `json:"unclaimed_fee_pending"`
	AFee                uint64           `json:"a_fee"`
	BFee                uint64           `json:"b_fee"`
}

func (a *LockEscrow) UnmarshalWithReader(r *borsh.Reader) {
	a.Pool = r.PublicKey("pool")
	a.Owner = r.PublicKey("owner")
	a.EscrowVault = r.PublicKey("escrow_vault")
	a.Bump = r.U8("bump")
	a.TotalLockedAmount = r.U64("total_locked_amount")
	a.LpPerToken = r.U128("lp_per_token")
	a.UnclaimedFeePending = r.U64("unclaimed_fee_pending")
	a.AFee = r.U64("a_fee")
	a.BFee = r.U64("b_fee")
}

func (a *LockEscrow) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Pool)
	w.PublicKey(a.Owner)
	w.PublicKey(a.EscrowVault)
	w.U8(a.Bump)
	w.U64(a.TotalLockedAmount)
	w.U128(a.LpPerToken)
	w.U64(a.UnclaimedFeePending)
	w.U64(a.AFee)
	w.U64(a.BFee)
}

type MeteoraDammMigrationMetadata struct {
	VirtualPool         solana.PublicKey `json:"virtual_pool"`
	Partner             solana.PublicKey `json:"partner"`
	LpMint              solana.PublicKey `json:"lp_mint"`
	PartnerLockedLp     uint64           `json:"partner_locked_lp"`
	PartnerLp           uint64           `json:"partner_lp"`
	CreatorLockedLp     uint64           `json:"creator_locked_lp"`
	CreatorLp           uint64           `json:"creator_lp"`
	CreatorLockedStatus uint8            `json:"creator_locked_status"`
	PartnerLockedStatus uint8            `json:"partner_locked_status"`
	CreatorClaimStatus  uint8            `json:"creator_claim_status"`
	PartnerClaimStatus  uint8            `json:"partner_claim_status"`
}

func (a *MeteoraDammMigrationMetadata) UnmarshalWithReader(r *borsh.Reader) {
	a.VirtualPool = r.PublicKey("virtual_pool")
	r.Padding("padding_0", 32)
	a.Partner = r.PublicKey("partner")
	a.LpMint = r.PublicKey("lp_mint")
	a.PartnerLockedLp = r.U64("partner_locked_lp")
	a.PartnerLp = r.U64("partner_lp")
	a.CreatorLockedLp = r.U64("creator_locked_lp")
	a.CreatorLp = r.U64("creator_lp")
	r.Padding("_padding_0", 1)
	a.CreatorLockedStatus = r.U8("creator_locked_status")
	a.PartnerLockedStatus = r.U8("partner_locked_status")
	a.CreatorClaimStatus = r.U8("creator_claim_status")
	a.PartnerClaimStatus = r.U8("partner_claim_status")
	r.Padding("_padding", 107)
}

func (a *MeteoraDammMigrationMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.VirtualPool)
	w.Padding(32)
	w.PublicKey(a.Partner)
	w.PublicKey(a.LpMint)
	w.U64(a.PartnerLockedLp)
	w.U64(a.PartnerLp)
	w.U64(a.CreatorLockedLp)
	w.U64(a.CreatorLp)
	w.Padding(1)
	w.U8(a.CreatorLockedStatus)
	w.U8(a.PartnerLockedStatus)
	w.U8(a.CreatorClaimStatus)
	w.U8(a.PartnerClaimStatus)
	w.Padding(107)
}

type MeteoraDammV2Metadata struct {
	VirtualPool solana.PublicKey `json:"virtual_pool"`
	Partner     solana.PublicKey `json:"partner"`
}

func (a *MeteoraDammV2Metadata) UnmarshalWithReader(r *borsh.Reader) {
	a.VirtualPool = r.PublicKey("virtual_pool")
	r.Padding("padding_0", 32)
	a.Partner = r.PublicKey("partner")
	r.Padding("_padding", 126)
}

func (a *MeteoraDammV2Metadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.VirtualPool)
	w.Padding(32)
	w.PublicKey(a.Partner)
	w.Padding(126)
}

type PartnerMetadata struct {
	FeeClaimer solana.PublicKey `json:"fee_claimer"`
	Name       string           `json:"name"`
	Website    string           `json:"website"`
	Logo       string           `json:"logo"`
}

func (a *PartnerMetadata) UnmarshalWithReader(r *borsh.Reader) {
	a.FeeClaimer = r.PublicKey("fee_claimer")
	r.Padding("padding", 96)
	a.Name = r.String("name")
	a.Website = r.String("website")
	a.Logo = r.String("logo")
}

func (a *PartnerMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.FeeClaimer)
	w.Padding(96)
	w.String("name", a.Name)
	w.String("website", a.Website)
	w.String("logo", a.Logo)
}

// PoolConfig is the partner configuration a VirtualPool is launched from.
type PoolConfig struct {
	QuoteMint                     solana.PublicKey                            `json:"quote_mint"`
	FeeClaimer                    solana.PublicKey                            `json:"fee_claimer"`
	LeftoverReceiver              solana.PublicKey                            `json:"leftover_receiver"`
	PoolFees                      PoolFeesConfig                              `json:"pool_fees"`
	CollectFeeMode                uint8                                       `json:"collect_fee_mode"`
	MigrationOption               uint8                                       `json:"migration_option"`
	ActivationType                uint8                                       `json:"activation_type"`
	TokenDecimal                  uint8                                       `json:"token_decimal"`
	Version                       uint8                                       `json:"version"`
	TokenType                     uint8                                       `json:"token_type"`
	QuoteTokenFlag                uint8                                       `json:"quote_token_flag"`
	PartnerLockedLpPercentage     uint8                                       `json:"partner_locked_lp_percentage"`
	PartnerLpPercentage           uint8                                       `json:"partner_lp_percentage"`
	CreatorLockedLpPercentage     uint8                                       `json:"creator_locked_lp_percentage"`
	CreatorLpPercentage           uint8                                       `json:"creator_lp_percentage"`
	MigrationFeeOption            uint8                                       `json:"migration_fee_option"`
	FixedTokenSupplyFlag          uint8                                       `json:"fixed_token_supply_flag"`
	CreatorTradingFeePercentage   uint8                                       `json:"creator_trading_fee_percentage"`
	TokenUpdateAuthority          uint8                                       `json:"token_update_authority"`
	MigrationFeePercentage        uint8                                       `json:"migration_fee_percentage"`
	CreatorMigrationFeePercentage uint8                                       `json:"creator_migration_fee_percentage"`
	SwapBaseAmount                uint64                                      `json:"swap_base_amount"`
	MigrationQuoteThreshold       uint64                                      `json:"migration_quote_threshold"`
	MigrationBaseThreshold        uint64                                      `json:"migration_base_threshold"`
	MigrationSqrtPrice            borsh.Uint128                               `json:"migration_sqrt_price"`
	LockedVestingConfig           LockedVestingConfig                         `json:"locked_vesting_config"`
	PreMigrationTokenSupply       uint64                                      `json:"pre_migration_token_supply"`
	PostMigrationTokenSupply      uint64                                      `json:"post_migration_token_supply"`
	MigratedCollectFeeMode        uint8                                       `json:"migrated_collect_fee_mode"`
	MigratedDynamicFee            uint8                                       `json:"migrated_dynamic_fee"`
	MigratedPoolFeeBps            uint16                                      `json:"migrated_pool_fee_bps"`
	SqrtStartPrice                borsh.Uint128                               `json:"sqrt_start_price"`
	Curve                         [MaxCurvePoints]LiquidityDistributionConfig `json:"curve"`
}

func (a *PoolConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.QuoteMint = r.PublicKey("quote_mint")
	a.FeeClaimer = r.PublicKey("fee_claimer")
	a.LeftoverReceiver = r.PublicKey("leftover_receiver")
	r.Struct("pool_fees", &a.PoolFees)
	a.CollectFeeMode = r.U8("collect_fee_mode")
	a.MigrationOption = r.U8("migration_option")
	a.ActivationType = r.U8("activation_type")
	a.TokenDecimal = r.U8("token_decimal")
	a.Version = r.U8("version")
	a.TokenType = r.U8("token_type")
	a.QuoteTokenFlag = r.U8("quote_token_flag")
	a.PartnerLockedLpPercentage = r.U8("partner_locked_lp_percentage")
	a.PartnerLpPercentage = r.U8("partner_lp_percentage")
	a.CreatorLockedLpPercentage = r.U8("creator_locked_lp_percentage")
	a.CreatorLpPercentage = r.U8("creator_lp_percentage")
	a.MigrationFeeOption = r.U8("migration_fee_option")
	a.FixedTokenSupplyFlag = r.U8("fixed_token_supply_flag")
	a.CreatorTradingFeePercentage = r.U8("creator_trading_fee_percentage")
	a.TokenUpdateAuthority = r.U8("token_update_authority")
	a.MigrationFeePercentage = r.U8("migration_fee_percentage")
	a.CreatorMigrationFeePercentage = r.U8("creator_migration_fee_percentage")
	r.Padding("_padding_0", 7)
	a.SwapBaseAmount = r.U64("swap_base_amount")
	a.MigrationQuoteThreshold = r.U64("migration_quote_threshold")
	a.MigrationBaseThreshold = r.U64("migration_base_threshold")
	a.MigrationSqrtPrice = r.U128("migration_sqrt_price")
	r.Struct("locked_vesting_config", &a.LockedVestingConfig)
	a.PreMigrationTokenSupply = r.U64("pre_migration_token_supply")
	a.PostMigrationTokenSupply = r.U64("post_migration_token_supply")
	a.MigratedCollectFeeMode = r.U8("migrated_collect_fee_mode")
	a.MigratedDynamicFee = r.U8("migrated_dynamic_fee")
	a.MigratedPoolFeeBps = r.U16("migrated_pool_fee_bps")
	r.Padding("_padding_1", 12)
	r.Padding("_padding_2", 16)
	a.SqrtStartPrice = r.U128("sqrt_start_price")
	borsh.ReadStructArray(r, "curve", a.Curve[:])
}

func (a *PoolConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.QuoteMint)
	w.PublicKey(a.FeeClaimer)
	w.PublicKey(a.LeftoverReceiver)
	w.Struct(&a.PoolFees)
	w.U8(a.CollectFeeMode)
	w.U8(a.MigrationOption)
	w.U8(a.ActivationType)
	w.U8(a.TokenDecimal)
	w.U8(a.Version)
	w.U8(a.TokenType)
	w.U8(a.QuoteTokenFlag)
	w.U8(a.PartnerLockedLpPercentage)
	w.U8(a.PartnerLpPercentage)
	w.U8(a.CreatorLockedLpPercentage)
	w.U8(a.CreatorLpPercentage)
	w.U8(a.MigrationFeeOption)
	w.U8(a.FixedTokenSupplyFlag)
	w.U8(a.CreatorTradingFeePercentage)
	w.U8(a.TokenUpdateAuthority)
	w.U8(a.MigrationFeePercentage)
	w.U8(a.CreatorMigrationFeePercentage)
	w.Padding(7)
	w.U64(a.SwapBaseAmount)
	w.U64(a.MigrationQuoteThreshold)
	w.U64(a.MigrationBaseThreshold)
	w.U128(a.MigrationSqrtPrice)
	w.Struct(&a.LockedVestingConfig)
	w.U64(a.PreMigrationTokenSupply)
	w.U64(a.PostMigrationTokenSupply)
	w.U8(a.MigratedCollectFeeMode)
	w.U8(a.MigratedDynamicFee)
	w.U16(a.MigratedPoolFeeBps)
	w.Padding(12)
	w.Padding(16)
	w.U128(a.SqrtStartPrice)
	borsh.WriteStructArray(w, a.Curve[:])
}

// VirtualPool is the bonding curve pool a token trades on before migration.
type VirtualPool struct {
	VolatilityTracker          VolatilityTracker `json:"volatility_tracker"`
	Config                     solana.PublicKey  `json:"config"`
	Creator                    solana.PublicKey  `json:"creator"`
	BaseMint                   solana.PublicKey  `json:"base_mint"`
	BaseVault                  solana.PublicKey  `json:"base_vault"`
	QuoteVault                 solana.PublicKey  `json:"quote_vault"`
	BaseReserve                uint64            `json:"base_reserve"`
	QuoteReserve               uint64            `json:"quote_reserve"`
	ProtocolBaseFee            uint64            `json:"protocol_base_fee"`
	ProtocolQuoteFee           uint64            `json:"protocol_quote_fee"`
	PartnerBaseFee             uint64            `json:"partner_base_fee"`
	PartnerQuoteFee            uint64            `json:"partner_quote_fee"`
	SqrtPrice                  borsh.Uint128     `json:"sqrt_price"`
	ActivationPoint            uint64            `json:"activation_point"`
	PoolType                   uint8             `json:"pool_type"`
	IsMigrated                 uint8             `json:"is_migrated"`
	IsPartnerWithdrawSurplus   uint8             `json:"is_partner_withdraw_surplus"`
	IsProtocolWithdrawSurplus  uint8             `json:"is_protocol_withdraw_surplus"`
	MigrationProgress          uint8             `json:"migration_progress"`
	IsWithdrawLeftover         uint8             `json:"is_withdraw_leftover"`
	IsCreatorWithdrawSurplus   uint8             `json:"is_creator_withdraw_surplus"`
	MigrationFeeWithdrawStatus uint8             `json:"migration_fee_withdraw_status"`
	Metrics                    PoolMetrics       `json:"metrics"`
	FinishCurveTimestamp       uint64            `json:"finish_curve_timestamp"`
	CreatorBaseFee             uint64            `json:"creator_base_fee"`
	CreatorQuoteFee            uint64            `json:"creator_quote_fee"`
}

func (a *VirtualPool) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("volatility_tracker", &a.VolatilityTracker)
	a.Config = r.PublicKey("config")
	a.Creator = r.PublicKey("creator")
	a.BaseMint = r.PublicKey("base_mint")
	a.BaseVault = r.PublicKey("base_vault")
	a.QuoteVault = r.PublicKey("quote_vault")
	a.BaseReserve = r.U64("base_reserve")
	a.QuoteReserve = r.U64("quote_reserve")
	a.ProtocolBaseFee = r.U64("protocol_base_fee")
	a.ProtocolQuoteFee = r.U64("protocol_quote_fee")
	a.PartnerBaseFee = r.U64("partner_base_fee")
	a.PartnerQuoteFee = r.U64("partner_quote_fee")
	a.SqrtPrice = r.U128("sqrt_price")
	a.ActivationPoint = r.U64("activation_point")
	a.PoolType = r.U8("pool_type")
	a.IsMigrated = r.U8("is_migrated")
	a.IsPartnerWithdrawSurplus = r.U8("is_partner_withdraw_surplus")
	a.IsProtocolWithdrawSurplus = r.U8("is_protocol_withdraw_surplus")
	a.MigrationProgress = r.U8("migration_progress")
	a.IsWithdrawLeftover = r.U8("is_withdraw_leftover")
	a.IsCreatorWithdrawSurplus = r.U8("is_creator_withdraw_surplus")
	a.MigrationFeeWithdrawStatus = r.U8("migration_fee_withdraw_status")
	r.Struct("metrics", &a.Metrics)
	a.FinishCurveTimestamp = r.U64("finish_curve_timestamp")
	a.CreatorBaseFee = r.U64("creator_base_fee")
	a.CreatorQuoteFee = r.U64("creator_quote_fee")
	r.Padding("_padding_1", 56)
}

func (a *VirtualPool) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&a.VolatilityTracker)
	w.PublicKey(a.Config)
	w.PublicKey(a.Creator)
	w.PublicKey(a.BaseMint)
	w.PublicKey(a.BaseVault)
	w.PublicKey(a.QuoteVault)
	w.U64(a.BaseReserve)
	w.U64(a.QuoteReserve)
	w.U64(a.ProtocolBaseFee)
	w.U64(a.ProtocolQuoteFee)
	w.U64(a.PartnerBaseFee)
	w.U64(a.PartnerQuoteFee)
	w.U128(a.SqrtPrice)
	w.U64(a.ActivationPoint)
	w.U8(a.PoolType)
	w.U8(a.IsMigrated)
	w.U8(a.IsPartnerWithdrawSurplus)
	w.U8(a.IsProtocolWithdrawSurplus)
	w.U8(a.MigrationProgress)
	w.U8(a.IsWithdrawLeftover)
	w.U8(a.IsCreatorWithdrawSurplus)
	w.U8(a.MigrationFeeWithdrawStatus)
	w.Struct(&a.Metrics)
	w.U64(a.FinishCurveTimestamp)
	w.U64(a.CreatorBaseFee)
	w.U64(a.CreatorQuoteFee)
	w.Padding(56)
}

type VirtualPoolMetadata struct {
	VirtualPool solana.PublicKey `json:"virtual_pool"`
	Name        string           `json:"name"`
	Website     string           `json:"website"`
	Logo        string           `json:"logo"`
}

func (a *VirtualPoolMetadata) UnmarshalWithReader(r *borsh.Reader) {
	a.VirtualPool = r.PublicKey("virtual_pool")
	r.Padding("padding", 96)
	a.Name = r.String("name")
	a.Website = r.String("website")
	a.Logo = r.String("logo")
}

func (a *VirtualPoolMetadata) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.VirtualPool)
	w.Padding(96)
	w.String("name", a.Name)
	w.String("website", a.Website)
	w.String("logo", a.Logo)
}
