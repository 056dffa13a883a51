package meteoradammv2

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type Pool struct {
	PoolFees               PoolFeesStruct         `json:"pool_fees"`
	TokenAMint             solana.PublicKey       `json:"token_a_mint"`
	TokenBMint             solana.PublicKey       `json:"token_b_mint"`
	TokenAVault            solana.PublicKey       `json:"token_a_vault"`
	TokenBVault            solana.PublicKey       `json:"token_b_vault"`
	WhitelistedVault       solana.PublicKey       `json:"whitelisted_vault"`
	Partner                solana.PublicKey       `json:"partner"`
	Liquidity              borsh.Uint128          `json:"liquidity"`
	ProtocolAFee           uint64                 `json:"protocol_a_fee"`
	ProtocolBFee           uint64                 `json:"protocol_b_fee"`
	PartnerAFee            uint64                 `json:"partner_a_fee"`
	PartnerBFee            uint64                 `json:"partner_b_fee"`
	SqrtMinPrice           borsh.Uint128          `json:"sqrt_min_price"`
	SqrtMaxPrice           borsh.Uint128          `json:"sqrt_max_price"`
	SqrtPrice              borsh.Uint128          `json:"sqrt_price"`
	ActivationPoint        uint64                 `json:"activation_point"`
	ActivationType         uint8                  `json:"activation_type"`
	PoolStatus             uint8                  `json:"pool_status"`
	TokenAFlag             uint8                  `json:"token_a_flag"`
	TokenBFlag             uint8                  `json:"token_b_flag"`
	CollectFeeMode         uint8                  `json:"collect_fee_mode"`
	PoolType               uint8                  `json:"pool_type"`
	Version                uint8                  `json:"version"`
	FeeAPerLiquidity       [32]byte               `json:"fee_a_per_liquidity"`
	FeeBPerLiquidity       [32]byte               `json:"fee_b_per_liquidity"`
	PermanentLockLiquidity borsh.Uint128          `json:"permanent_lock_liquidity"`
	Metrics                PoolMetrics            `json:"metrics"`
	Creator                solana.PublicKey       `json:"creator"`
	RewardInfos            [NumRewards]RewardInfo `json:"reward_infos"`
}

func (a *Pool) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("pool_fees", &a.PoolFees)
	a.TokenAMint = r.PublicKey("token_a_mint")
	a.TokenBMint = r.PublicKey("token_b_mint")
	a.TokenAVault = r.PublicKey("token_a_vault")
	a.TokenBVault = r.PublicKey("token_b_vault")
	a.WhitelistedVault = r.PublicKey("whitelisted_vault")
	a.Partner = r.PublicKey("partner")
	a.Liquidity = r.U128("liquidity")
	r.Padding("_padding", 16)
	a.ProtocolAFee = r.U64("protocol_a_fee")
	a.ProtocolBFee = r.U64("protocol_b_fee")
	a.PartnerAFee = r.U64("partner_a_fee")
	a.PartnerBFee = r.U64("partner_b_fee")
	a.SqrtMinPrice = r.U128("sqrt_min_price")
	a.SqrtMaxPrice = r.U128("sqrt_max_price")
	a.SqrtPrice = r.U128("sqrt_price")
	a.ActivationPoint = r.U64("activation_point")
	a.ActivationType = r.U8("activation_type")
	a.PoolStatus = r.U8("pool_status")
	a.TokenAFlag = r.U8("token_a_flag")
	a.TokenBFlag = r.U8("token_b_flag")
	a.CollectFeeMode = r.U8("collect_fee_mode")
	a.PoolType = r.U8("pool_type")
	a.Version = r.U8("version")
	r.Padding("_padding_0", 1)
	r.FixedBytes("fee_a_per_liquidity", a.FeeAPerLiquidity[:])
	r.FixedBytes("fee_b_per_liquidity", a.FeeBPerLiquidity[:])
	a.PermanentLockLiquidity = r.U128("permanent_lock_liquidity")
	r.Struct("metrics", &a.Metrics)
	a.Creator = r.PublicKey("creator")
	r.Padding("_padding_1", 6*8)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
}

func (a *Pool) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&a.PoolFees)
	w.PublicKey(a.TokenAMint)
	w.PublicKey(a.TokenBMint)
	w.PublicKey(a.TokenAVault)
	w.PublicKey(a.TokenBVault)
	w.PublicKey(a.WhitelistedVault)
	w.PublicKey(a.Partner)
	w.U128(a.Liquidity)
	w.Padding(16)
	w.U64(a.ProtocolAFee)
	w.U64(a.ProtocolBFee)
	w.U64(a.PartnerAFee)
	w.U64(a.PartnerBFee)
	w.U128(a.SqrtMinPrice)
	w.U128(a.SqrtMaxPrice)
	w.U128(a.SqrtPrice)
	w.U64(a.ActivationPoint)
	w.U8(a.ActivationType)
	w.U8(a.PoolStatus)
	w.U8(a.TokenAFlag)
	w.U8(a.TokenBFlag)
	w.U8(a.CollectFeeMode)
	w.U8(a.PoolType)
	w.U8(a.Version)
	w.Padding(1)
	w.FixedBytes(a.FeeAPerLiquidity[:])
	w.FixedBytes(a.FeeBPerLiquidity[:])
	w.U128(a.PermanentLockLiquidity)
	w.Struct(&a.Metrics)
	w.PublicKey(a.Creator)
	w.Padding(6 * 8)
	borsh.WriteStructArray(w, a.RewardInfos[:])
}

type Position struct {
	Pool                     solana.PublicKey           `json:"pool"`
	NftMint                  solana.PublicKey           `json:"nft_mint"`
	FeeAPerTokenCheckpoint   [32]byte                   `json:"fee_a_per_token_checkpoint"`
	FeeBPerTokenCheckpoint   [32]byte                   `json:"fee_b_per_token_checkpoint"`
	FeeAPending              uint64                     `json:"fee_a_pending"`
	FeeBPending              uint64                     `json:"fee_b_pending"`
	UnlockedLiquidity        borsh.Uint128              `json:"unlocked_liquidity"`
	VestedLiquidity          borsh.Uint128              `json:"vested_liquidity"`
	PermanentLockedLiquidity borsh.Uint128              `json:"permanent_locked_liquidity"`
	Metrics                  PositionMetrics            `json:"metrics"`
	RewardInfos              [NumRewards]UserRewardInfo `json:"reward_infos"`
}

func (a *Position) UnmarshalWithReader(r *borsh.Reader) {
	a.Pool = r.PublicKey("pool")
	a.NftMint = r.PublicKey("nft_mint")
	r.FixedBytes("fee_a_per_token_checkpoint", a.FeeAPerTokenCheckpoint[:])
	r.FixedBytes("fee_b_per_token_checkpoint", a.FeeBPerTokenCheckpoint[:])
	a.FeeAPending = r.U64("fee_a_pending")
	a.FeeBPending = r.U64("fee_b_pending")
	a.UnlockedLiquidity = r.U128("unlocked_liquidity")
	a.VestedLiquidity = r.U128("vested_liquidity")
	a.PermanentLockedLiquidity = r.U128("permanent_locked_liquidity")
	r.Struct("metrics", &a.Metrics)
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
	r.Padding("padding", 6*16)
}

func (a *Position) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Pool)
	w.PublicKey(a.NftMint)
	w.FixedBytes(a.FeeAPerTokenCheckpoint[:])
	w.FixedBytes(a.FeeBPerTokenCheckpoint[:])
	w.U64(a.FeeAPending)
	w.U64(a.FeeBPending)
	w.U128(a.UnlockedLiquidity)
	w.U128(a.VestedLiquidity)
	w.U128(a.PermanentLockedLiquidity)
	w.Struct(&a.Metrics)
	borsh.WriteStructArray(w, a.RewardInfos[:])
	w.Padding(6 * 16)
}

type Config struct {
	VaultConfigKey       solana.PublicKey `json:"vault_config_key"`
	PoolCreatorAuthority solana.PublicKey `json:"pool_creator_authority"`
	PoolFees             PoolFeesConfig   `json:"pool_fees"`
	ActivationType       uint8            `json:"activation_type"`
	CollectFeeMode       uint8            `json:"collect_fee_mode"`
	ConfigType           uint8            `json:"config_type"`
	Index                uint64           `json:"index"`
	SqrtMinPrice         borsh.Uint128    `json:"sqrt_min_price"`
	SqrtMaxPrice         borsh.Uint128    `json:"sqrt_max_price"`
}

func (a *Config) UnmarshalWithReader(r *borsh.Reader) {
	a.VaultConfigKey = r.PublicKey("vault_config_key")
	a.PoolCreatorAuthority = r.PublicKey("pool_creator_authority")
	r.Struct("pool_fees", &a.PoolFees)
	a.ActivationType = r.U8("activation_type")
	a.CollectFeeMode = r.U8("collect_fee_mode")
	a.ConfigType = r.U8("config_type")
	r.Padding("_padding_0", 5)
	a.Index = r.U64("index")
	a.SqrtMinPrice = r.U128("sqrt_min_price")
	a.SqrtMaxPrice = r.U128("sqrt_max_price")
	r.Padding("_padding_1", 10*8)
}

func (a *Config) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.VaultConfigKey)
	w.PublicKey(a.PoolCreatorAuthority)
	w.Struct(&a.PoolFees)
	w.U8(a.ActivationType)
	w.U8(a.CollectFeeMode)
	w.U8(a.ConfigType)
	w.Padding(5)
	w.U64(a.Index)
	w.U128(a.SqrtMinPrice)
	w.U128(a.SqrtMaxPrice)
	w.Padding(10 * 8)
}

type Vesting struct {
	Position               solana.PublicKey `json:"position"`
	CliffPoint             uint64           `json:"cliff_point"`
	PeriodFrequency        uint64           `json:"period_frequency"`
	CliffUnlockLiquidity   borsh.Uint128    `json:"cliff_unlock_liquidity"`
	LiquidityPerPeriod     borsh.Uint128    `json:"liquidity_per_period"`
	TotalReleasedLiquidity borsh.Uint128    `json:"total_released_liquidity"`
	NumberOfPeriod         uint16           `json:"number_of_period"`
}

func (a *Vesting) UnmarshalWithReader(r *borsh.Reader) {
	a.Position = r.PublicKey("position")
	a.CliffPoint = r.U64("cliff_point")
	a.PeriodFrequency = r.U64("period_frequency")
	a.CliffUnlockLiquidity = r.U128("cliff_unlock_liquidity")
	a.LiquidityPerPeriod = r.U128("liquidity_per_period")
	a.TotalReleasedLiquidity = r.U128("total_released_liquidity")
	a.NumberOfPeriod = r.U16("number_of_period")
	r.Padding("padding", 14)
	r.Padding("padding2", 4*16)
}

func (a *Vesting) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Position)
	w.U64(a.CliffPoint)
	w.U64(a.PeriodFrequency)
	w.U128(a.CliffUnlockLiquidity)
	w.U128(a.LiquidityPerPeriod)
	w.U128(a.TotalReleasedLiquidity)
	w.U16(a.NumberOfPeriod)
	w.Padding(14)
	w.Padding(4 * 16)
}

type TokenBadge struct {
	TokenMint solana.PublicKey `json:"token_mint"`
}

func (a *TokenBadge) UnmarshalWithReader(r *borsh.Reader) {
	a.TokenMint = r.PublicKey("token_mint")
	r.Padding("_padding", 128)
}

func (a *TokenBadge) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.TokenMint)
	w.Padding(128)
}

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
