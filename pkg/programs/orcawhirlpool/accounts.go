package orcawhirlpool

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type WhirlpoolsConfig struct {
	FeeAuthority                  solana.PublicKey `json:"fee_authority"`
	CollectProtocolFeesAuthority  solana.PublicKey `json:"collect_protocol_fees_authority"`
	RewardEmissionsSuperAuthority solana.PublicKey `json:"reward_emissions_super_authority"`
	DefaultProtocolFeeRate        uint16           `json:"default_protocol_fee_rate"`
}

func (a *WhirlpoolsConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.FeeAuthority = r.PublicKey("fee_authority")
	a.CollectProtocolFeesAuthority = r.PublicKey("collect_protocol_fees_authority")
	a.RewardEmissionsSuperAuthority = r.PublicKey("reward_emissions_super_authority")
	a.DefaultProtocolFeeRate = r.U16("default_protocol_fee_rate")
}

func (a *WhirlpoolsConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.FeeAuthority)
	w.PublicKey(a.CollectProtocolFeesAuthority)
	w.PublicKey(a.RewardEmissionsSuperAuthority)
	w.U16(a.DefaultProtocolFeeRate)
}

type WhirlpoolsConfigExtension struct {
	WhirlpoolsConfig         solana.PublicKey `json:"whirlpools_config"`
	ConfigExtensionAuthority solana.PublicKey `json:"config_extension_authority"`
	TokenBadgeAuthority      solana.PublicKey `json:"token_badge_authority"`
}

func (a *WhirlpoolsConfigExtension) UnmarshalWithReader(r *borsh.Reader) {
	a.WhirlpoolsConfig = r.PublicKey("whirlpools_config")
	a.ConfigExtensionAuthority = r.PublicKey("config_extension_authority")
	a.TokenBadgeAuthority = r.PublicKey("token_badge_authority")
}

func (a *WhirlpoolsConfigExtension) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.WhirlpoolsConfig)
	w.PublicKey(a.ConfigExtensionAuthority)
	w.PublicKey(a.TokenBadgeAuthority)
}

type FeeTier struct {
	WhirlpoolsConfig solana.PublicKey `json:"whirlpools_config"`
	TickSpacing      uint16           `json:"tick_spacing"`
	DefaultFeeRate   uint16           `json:"default_fee_rate"`
}

func (a *FeeTier) UnmarshalWithReader(r *borsh.Reader) {
	a.WhirlpoolsConfig = r.PublicKey("whirlpools_config")
	a.TickSpacing = r.U16("tick_spacing")
	a.DefaultFeeRate = r.U16("default_fee_rate")
}

func (a *FeeTier) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.WhirlpoolsConfig)
	w.U16(a.TickSpacing)
	w.U16(a.DefaultFeeRate)
}

type PositionBundle struct {
	PositionBundleMint solana.PublicKey         `json:"position_bundle_mint"`
	PositionBitmap     [PositionBitmapSize]byte `json:"position_bitmap"`
}

func (a *PositionBundle) UnmarshalWithReader(r *borsh.Reader) {
	a.PositionBundleMint = r.PublicKey("position_bundle_mint")
	r.FixedBytes("position_bitmap", a.PositionBitmap[:])
}

func (a *PositionBundle) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.PositionBundleMint)
	w.FixedBytes(a.PositionBitmap[:])
}

type Position struct {
	Whirlpool            solana.PublicKey               `json:"whirlpool"`
	PositionMint         solana.PublicKey               `json:"position_mint"`
	Liquidity            borsh.Uint128                  `json:"liquidity"`
	TickLowerIndex       int32                          `json:"tick_lower_index"`
	TickUpperIndex       int32                          `json:"tick_upper_index"`
	FeeGrowthCheckpointA borsh.Uint128                  `json:"fee_growth_checkpoint_a"`
	FeeOwedA             uint64                         `json:"fee_owed_a"`
	FeeGrowthCheckpointB borsh.Uint128                  `json:"fee_growth_checkpoint_b"`
	FeeOwedB             uint64                         `json:"fee_owed_b"`
	RewardInfos          [NumRewards]PositionRewardInfo `json:"reward_infos"`
}

func (a *Position) UnmarshalWithReader(r *borsh.Reader) {
	a.Whirlpool = r.PublicKey("whirlpool")
	a.PositionMint = r.PublicKey("position_mint")
	a.Liquidity = r.U128("liquidity")
	a.TickLowerIndex = r.I32("tick_lower_index")
	a.TickUpperIndex = r.I32("tick_upper_index")
	a.FeeGrowthCheckpointA = r.U128("fee_growth_checkpoint_a")
	a.FeeOwedA = r.U64("fee_owed_a")
	a.FeeGrowthCheckpointB = r.U128("fee_growth_checkpoint_b")
	a.FeeOwedB = r.U64("fee_owed_b")
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
}

func (a *Position) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Whirlpool)
	w.PublicKey(a.PositionMint)
	w.U128(a.Liquidity)
	w.I32(a.TickLowerIndex)
	w.I32(a.TickUpperIndex)
	w.U128(a.FeeGrowthCheckpointA)
	w.U64(a.FeeOwedA)
	w.U128(a.FeeGrowthCheckpointB)
	w.U64(a.FeeOwedB)
	borsh.WriteStructArray(w, a.RewardInfos[:])
}

// TickArray holds TickArraySize consecutive ticks starting at StartTickIndex.
type TickArray struct {
	StartTickIndex int32               `json:"start_tick_index"`
	Ticks          [TickArraySize]Tick `json:"ticks"`
	Whirlpool      solana.PublicKey    `json:"whirlpool"`
}

func (a *TickArray) UnmarshalWithReader(r *borsh.Reader) {
	a.StartTickIndex = r.I32("start_tick_index")
	borsh.ReadStructArray(r, "ticks", a.Ticks[:])
	a.Whirlpool = r.PublicKey("whirlpool")
}

func (a *TickArray) MarshalWithWriter(w *borsh.Writer) {
	w.I32(a.StartTickIndex)
	borsh.WriteStructArray(w, a.Ticks[:])
	w.PublicKey(a.Whirlpool)
}

type TokenBadge struct {
	WhirlpoolsConfig solana.PublicKey `json:"whirlpools_config"`
	TokenMint        solana.PublicKey `json:"token_mint"`
}

func (a *TokenBadge) UnmarshalWithReader(r *borsh.Reader) {
	a.WhirlpoolsConfig = r.PublicKey("whirlpools_config")
	a.TokenMint = r.PublicKey("token_mint")
}

func (a *TokenBadge) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.WhirlpoolsConfig)
	w.PublicKey(a.TokenMint)
}

type Whirlpool struct {
	WhirlpoolsConfig           solana.PublicKey                `json:"whirlpools_config"`
	WhirlpoolBump              [1]byte                         `json:"whirlpool_bump"`
	TickSpacing                uint16                          `json:"tick_spacing"`
	TickSpacingSeed            [2]byte                         `json:"tick_spacing_seed"`
	FeeRate                    uint16                          `json:"fee_rate"`
	ProtocolFeeRate            uint16                          `json:"protocol_fee_rate"`
	Liquidity                  borsh.Uint128                   `json:"liquidity"`
	SqrtPrice                  borsh.Uint128                   `json:"sqrt_price"`
	TickCurrentIndex           int32                           `json:"tick_current_index"`
	ProtocolFeeOwedA           uint64                          `json:"protocol_fee_owed_a"`
	ProtocolFeeOwedB           uint64                          `json:"protocol_fee_owed_b"`
	TokenMintA                 solana.PublicKey                `json:"token_mint_a"`
	TokenVaultA                solana.PublicKey                `json:"token_vault_a"`
	FeeGrowthGlobalA           borsh.Uint128                   `json:"fee_growth_global_a"`
	TokenMintB                 solana.PublicKey                `json:"token_mint_b"`
	TokenVaultB                solana.PublicKey                `json:"token_vault_b"`
	FeeGrowthGlobalB           borsh.Uint128                   `json:"fee_growth_global_b"`
	RewardLastUpdatedTimestamp uint64                          `json:"reward_last_updated_timestamp"`
	RewardInfos                [NumRewards]WhirlpoolRewardInfo `json:"reward_infos"`
}

func (a *Whirlpool) UnmarshalWithReader(r *borsh.Reader) {
	a.WhirlpoolsConfig = r.PublicKey("whirlpools_config")
	r.FixedBytes("whirlpool_bump", a.WhirlpoolBump[:])
	a.TickSpacing = r.U16("tick_spacing")
	r.FixedBytes("tick_spacing_seed", a.TickSpacingSeed[:])
	a.FeeRate = r.U16("fee_rate")
	a.ProtocolFeeRate = r.U16("protocol_fee_rate")
	a.Liquidity = r.U128("liquidity")
	a.SqrtPrice = r.U128("sqrt_price")
	a.TickCurrentIndex = r.I32("tick_current_index")
	a.ProtocolFeeOwedA = r.U64("protocol_fee_owed_a")
	a.ProtocolFeeOwedB = r.U64("protocol_fee_owed_b")
	a.TokenMintA = r.PublicKey("token_mint_a")
	a.TokenVaultA = r.PublicKey("token_vault_a")
	a.FeeGrowthGlobalA = r.U128("fee_growth_global_a")
	a.TokenMintB = r.PublicKey("token_mint_b")
	a.TokenVaultB = r.PublicKey("token_vault_b")
	a.FeeGrowthGlobalB = r.U128("fee_growth_global_b")
	a.RewardLastUpdatedTimestamp = r.U64("reward_last_updated_timestamp")
	borsh.ReadStructArray(r, "reward_infos", a.RewardInfos[:])
}

func (a *Whirlpool) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.WhirlpoolsConfig)
	w.FixedBytes(a.WhirlpoolBump[:])
	w.U16(a.TickSpacing)
	w.FixedBytes(a.TickSpacingSeed[:])
	w.U16(a.FeeRate)
	w.U16(a.ProtocolFeeRate)
	w.U128(a.Liquidity)
	w.U128(a.SqrtPrice)
	w.I32(a.TickCurrentIndex)
	w.U64(a.ProtocolFeeOwedA)
	w.U64(a.ProtocolFeeOwedB)
	w.PublicKey(a.TokenMintA)
	w.PublicKey(a.TokenVaultA)
	w.U128(a.FeeGrowthGlobalA)
	w.PublicKey(a.TokenMintB)
	w.PublicKey(a.TokenVaultB)
	w.U128(a.FeeGrowthGlobalB)
	w.U64(a.RewardLastUpdatedTimestamp)
	borsh.WriteStructArray(w, a.RewardInfos[:])
}
