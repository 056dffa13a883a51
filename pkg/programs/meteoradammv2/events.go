package meteoradammv2

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type EvtSwap struct {
	Pool             solana.PublicKey `json:"pool"`
	TradeDirection   uint8            `json:"trade_direction"`
	HasReferral      bool             `json:"has_referral"`
	Params           SwapParameters   `json:"params"`
	SwapResult       SwapResult       `json:"swap_result"`
	ActualAmountIn   uint64           `json:"actual_amount_in"`
	CurrentTimestamp uint64           `json:"current_timestamp"`
}

func (e *EvtSwap) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TradeDirection = r.U8("trade_direction")
	e.HasReferral = r.Bool("has_referral")
	r.Struct("params", &e.Params)
	r.Struct("swap_result", &e.SwapResult)
	e.ActualAmountIn = r.U64("actual_amount_in")
	e.CurrentTimestamp = r.U64("current_timestamp")
}

func (e *EvtSwap) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U8(e.TradeDirection)
	w.Bool(e.HasReferral)
	w.Struct(&e.Params)
	w.Struct(&e.SwapResult)
	w.U64(e.ActualAmountIn)
	w.U64(e.CurrentTimestamp)
}

type EvtSwap2 struct {
	Pool                         solana.PublicKey `json:"pool"`
	TradeDirection               uint8            `json:"trade_direction"`
	CollectFeeMode               uint8            `json:"collect_fee_mode"`
	HasReferral                  bool             `json:"has_referral"`
	Params                       SwapParameters2  `json:"params"`
	SwapResult                   SwapResult2      `json:"swap_result"`
	IncludedTransferFeeAmountIn  uint64           `json:"included_transfer_fee_amount_in"`
	IncludedTransferFeeAmountOut uint64           `json:"included_transfer_fee_amount_out"`
	ExcludedTransferFeeAmountOut uint64           `json:"excluded_transfer_fee_amount_out"`
	CurrentTimestamp             uint64           `json:"current_timestamp"`
	ReserveAAmount               uint64           `json:"reserve_a_amount"`
	ReserveBAmount               uint64           `json:"reserve_b_amount"`
}

func (e *EvtSwap2) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TradeDirection = r.U8("trade_direction")
	e.CollectFeeMode = r.U8("collect_fee_mode")
	e.HasReferral = r.Bool("has_referral")
	r.Struct("params", &e.Params)
	r.Struct("swap_result", &e.SwapResult)
	e.IncludedTransferFeeAmountIn = r.U64("included_transfer_fee_amount_in")
	e.IncludedTransferFeeAmountOut = r.U64("included_transfer_fee_amount_out")
	e.ExcludedTransferFeeAmountOut = r.U64("excluded_transfer_fee_amount_out")
	e.CurrentTimestamp = r.U64("current_timestamp")
	e.ReserveAAmount = r.U64("reserve_a_amount")
	e.ReserveBAmount = r.U64("reserve_b_amount")
}

func (e *EvtSwap2) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U8(e.TradeDirection)
	w.U8(e.CollectFeeMode)
	w.Bool(e.HasReferral)
	w.Struct(&e.Params)
	w.Struct(&e.SwapResult)
	w.U64(e.IncludedTransferFeeAmountIn)
	w.U64(e.IncludedTransferFeeAmountOut)
	w.U64(e.ExcludedTransferFeeAmountOut)
	w.U64(e.CurrentTimestamp)
	w.U64(e.ReserveAAmount)
	w.U64(e.ReserveBAmount)
}

type EvtInitializePool struct {
	Pool            solana.PublicKey  `json:"pool"`
	TokenAMint      solana.PublicKey  `json:"token_a_mint"`
	TokenBMint      solana.PublicKey  `json:"token_b_mint"`
	Creator         solana.PublicKey  `json:"creator"`
	Payer           solana.PublicKey  `json:"payer"`
	AlphaVault      solana.PublicKey  `json:"alpha_vault"`
	PoolFees        PoolFeeParameters `json:"pool_fees"`
	SqrtMinPrice    borsh.Uint128     `json:"sqrt_min_price"`
	SqrtMaxPrice    borsh.Uint128     `json:"sqrt_max_price"`
	ActivationType  uint8             `json:"activation_type"`
	CollectFeeMode  uint8             `json:"collect_fee_mode"`
	Liquidity       borsh.Uint128     `json:"liquidity"`
	SqrtPrice       borsh.Uint128     `json:"sqrt_price"`
	ActivationPoint uint64            `json:"activation_point"`
	TokenAFlag      uint8             `json:"token_a_flag"`
	TokenBFlag      uint8             `json:"token_b_flag"`
	TokenAAmount    uint64            `json:"token_a_amount"`
	TokenBAmount    uint64            `json:"token_b_amount"`
	TotalAmountA    uint64            `json:"total_amount_a"`
	TotalAmountB    uint64            `json:"total_amount_b"`
	PoolType        uint8             `json:"pool_type"`
}

func (e *EvtInitializePool) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TokenAMint = r.PublicKey("token_a_mint")
	e.TokenBMint = r.PublicKey("token_b_mint")
	e.Creator = r.PublicKey("creator")
	e.Payer = r.PublicKey("payer")
	e.AlphaVault = r.PublicKey("alpha_vault")
	r.Struct("pool_fees", &e.PoolFees)
	e.SqrtMinPrice = r.U128("sqrt_min_price")
	e.SqrtMaxPrice = r.U128("sqrt_max_price")
	e.ActivationType = r.U8("activation_type")
	e.CollectFeeMode = r.U8("collect_fee_mode")
	e.Liquidity = r.U128("liquidity")
	e.SqrtPrice = r.U128("sqrt_price")
	e.ActivationPoint = r.U64("activation_point")
	e.TokenAFlag = r.U8("token_a_flag")
	e.TokenBFlag = r.U8("token_b_flag")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
	e.TotalAmountA = r.U64("total_amount_a")
	e.TotalAmountB = r.U64("total_amount_b")
	e.PoolType = r.U8("pool_type")
}

func (e *EvtInitializePool) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.TokenAMint)
	w.PublicKey(e.TokenBMint)
	w.PublicKey(e.Creator)
	w.PublicKey(e.Payer)
	w.PublicKey(e.AlphaVault)
	w.Struct(&e.PoolFees)
	w.U128(e.SqrtMinPrice)
	w.U128(e.SqrtMaxPrice)
	w.U8(e.ActivationType)
	w.U8(e.CollectFeeMode)
	w.U128(e.Liquidity)
	w.U128(e.SqrtPrice)
	w.U64(e.ActivationPoint)
	w.U8(e.TokenAFlag)
	w.U8(e.TokenBFlag)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
	w.U64(e.TotalAmountA)
	w.U64(e.TotalAmountB)
	w.U8(e.PoolType)
}

type EvtCreateConfig struct {
	PoolFees             PoolFeeParameters `json:"pool_fees"`
	VaultConfigKey       solana.PublicKey  `json:"vault_config_key"`
	PoolCreatorAuthority solana.PublicKey  `json:"pool_creator_authority"`
	ActivationType       uint8             `json:"activation_type"`
	SqrtMinPrice         borsh.Uint128     `json:"sqrt_min_price"`
	SqrtMaxPrice         borsh.Uint128     `json:"sqrt_max_price"`
	CollectFeeMode       uint8             `json:"collect_fee_mode"`
	Index                uint64            `json:"index"`
	Config               solana.PublicKey  `json:"config"`
}

func (e *EvtCreateConfig) UnmarshalWithReader(r *borsh.Reader) {
	r.Struct("pool_fees", &e.PoolFees)
	e.VaultConfigKey = r.PublicKey("vault_config_key")
	e.PoolCreatorAuthority = r.PublicKey("pool_creator_authority")
	e.ActivationType = r.U8("activation_type")
	e.SqrtMinPrice = r.U128("sqrt_min_price")
	e.SqrtMaxPrice = r.U128("sqrt_max_price")
	e.CollectFeeMode = r.U8("collect_fee_mode")
	e.Index = r.U64("index")
	e.Config = r.PublicKey("config")
}

func (e *EvtCreateConfig) MarshalWithWriter(w *borsh.Writer) {
	w.Struct(&e.PoolFees)
	w.PublicKey(e.VaultConfigKey)
	w.PublicKey(e.PoolCreatorAuthority)
	w.U8(e.ActivationType)
	w.U128(e.SqrtMinPrice)
	w.U128(e.SqrtMaxPrice)
	w.U8(e.CollectFeeMode)
	w.U64(e.Index)
	w.PublicKey(e.Config)
}

type EvtCreateDynamicConfig struct {
	Config               solana.PublicKey `json:"config"`
	PoolCreatorAuthority solana.PublicKey `json:"pool_creator_authority"`
	Index                uint64           `json:"index"`
}

func (e *EvtCreateDynamicConfig) UnmarshalWithReader(r *borsh.Reader) {
	e.Config = r.PublicKey("config")
	e.PoolCreatorAuthority = r.PublicKey("pool_creator_authority")
	e.Index = r.U64("index")
}

func (e *EvtCreateDynamicConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Config)
	w.PublicKey(e.PoolCreatorAuthority)
	w.U64(e.Index)
}

type EvtCloseConfig struct {
	Config solana.PublicKey `json:"config"`
	Admin  solana.PublicKey `json:"admin"`
}

func (e *EvtCloseConfig) UnmarshalWithReader(r *borsh.Reader) {
	e.Config = r.PublicKey("config")
	e.Admin = r.PublicKey("admin")
}

func (e *EvtCloseConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Config)
	w.PublicKey(e.Admin)
}

type EvtAddLiquidity struct {
	Pool         solana.PublicKey    `json:"pool"`
	Position     solana.PublicKey    `json:"position"`
	Owner        solana.PublicKey    `json:"owner"`
	Params       LiquidityParameters `json:"params"`
	TokenAAmount uint64              `json:"token_a_amount"`
	TokenBAmount uint64              `json:"token_b_amount"`
	TotalAmountA uint64              `json:"total_amount_a"`
	TotalAmountB uint64              `json:"total_amount_b"`
}

func (e *EvtAddLiquidity) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.Owner = r.PublicKey("owner")
	r.Struct("params", &e.Params)
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
	e.TotalAmountA = r.U64("total_amount_a")
	e.TotalAmountB = r.U64("total_amount_b")
}

func (e *EvtAddLiquidity) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.PublicKey(e.Owner)
	w.Struct(&e.Params)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
	w.U64(e.TotalAmountA)
	w.U64(e.TotalAmountB)
}

type EvtRemoveLiquidity struct {
	Pool         solana.PublicKey    `json:"pool"`
	Position     solana.PublicKey    `json:"position"`
	Owner        solana.PublicKey    `json:"owner"`
	Params       LiquidityParameters `json:"params"`
	TokenAAmount uint64              `json:"token_a_amount"`
	TokenBAmount uint64              `json:"token_b_amount"`
}

func (e *EvtRemoveLiquidity) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.Owner = r.PublicKey("owner")
	r.Struct("params", &e.Params)
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
}

func (e *EvtRemoveLiquidity) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.PublicKey(e.Owner)
	w.Struct(&e.Params)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
}

type EvtClaimPositionFee struct {
	Pool        solana.PublicKey `json:"pool"`
	Position    solana.PublicKey `json:"position"`
	Owner       solana.PublicKey `json:"owner"`
	FeeAClaimed uint64           `json:"fee_a_claimed"`
	FeeBClaimed uint64           `json:"fee_b_claimed"`
}

func (e *EvtClaimPositionFee) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.Owner = r.PublicKey("owner")
	e.FeeAClaimed = r.U64("fee_a_claimed")
	e.FeeBClaimed = r.U64("fee_b_claimed")
}

func (e *EvtClaimPositionFee) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.PublicKey(e.Owner)
	w.U64(e.FeeAClaimed)
	w.U64(e.FeeBClaimed)
}

// FeeClaim is the body shared by partner and protocol fee claims.
type FeeClaim struct {
	Pool         solana.PublicKey `json:"pool"`
	TokenAAmount uint64           `json:"token_a_amount"`
	TokenBAmount uint64           `json:"token_b_amount"`
}

func (e *FeeClaim) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.TokenAAmount = r.U64("token_a_amount")
	e.TokenBAmount = r.U64("token_b_amount")
}

func (e *FeeClaim) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U64(e.TokenAAmount)
	w.U64(e.TokenBAmount)
}

type EvtClaimPartnerFee struct {
	FeeClaim
}

type EvtClaimProtocolFee struct {
	FeeClaim
}

// PositionLifecycle is the body shared by position creation and closing.
type PositionLifecycle struct {
	Pool            solana.PublicKey `json:"pool"`
	Owner           solana.PublicKey `json:"owner"`
	Position        solana.PublicKey `json:"position"`
	PositionNftMint solana.PublicKey `json:"position_nft_mint"`
}

func (e *PositionLifecycle) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Owner = r.PublicKey("owner")
	e.Position = r.PublicKey("position")
	e.PositionNftMint = r.PublicKey("position_nft_mint")
}

func (e *PositionLifecycle) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Owner)
	w.PublicKey(e.Position)
	w.PublicKey(e.PositionNftMint)
}

type EvtCreatePosition struct {
	PositionLifecycle
}

type EvtClosePosition struct {
	PositionLifecycle
}

type EvtLockPosition struct {
	Pool                 solana.PublicKey `json:"pool"`
	Position             solana.PublicKey `json:"position"`
	Owner                solana.PublicKey `json:"owner"`
	Vesting              solana.PublicKey `json:"vesting"`
	CliffPoint           uint64           `json:"cliff_point"`
	PeriodFrequency      uint64           `json:"period_frequency"`
	CliffUnlockLiquidity borsh.Uint128    `json:"cliff_unlock_liquidity"`
	LiquidityPerPeriod   borsh.Uint128    `json:"liquidity_per_period"`
	NumberOfPeriod       uint16           `json:"number_of_period"`
}

func (e *EvtLockPosition) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.Owner = r.PublicKey("owner")
	e.Vesting = r.PublicKey("vesting")
	e.CliffPoint = r.U64("cliff_point")
	e.PeriodFrequency = r.U64("period_frequency")
	e.CliffUnlockLiquidity = r.U128("cliff_unlock_liquidity")
	e.LiquidityPerPeriod = r.U128("liquidity_per_period")
	e.NumberOfPeriod = r.U16("number_of_period")
}

func (e *EvtLockPosition) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.PublicKey(e.Owner)
	w.PublicKey(e.Vesting)
	w.U64(e.CliffPoint)
	w.U64(e.PeriodFrequency)
	w.U128(e.CliffUnlockLiquidity)
	w.U128(e.LiquidityPerPeriod)
	w.U16(e.NumberOfPeriod)
}

type EvtPermanentLockPosition struct {
	Pool                          solana.PublicKey `json:"pool"`
	Position                      solana.PublicKey `json:"position"`
	LockLiquidityAmount           borsh.Uint128    `json:"lock_liquidity_amount"`
	TotalPermanentLockedLiquidity borsh.Uint128    `json:"total_permanent_locked_liquidity"`
}

func (e *EvtPermanentLockPosition) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.LockLiquidityAmount = r.U128("lock_liquidity_amount")
	e.TotalPermanentLockedLiquidity = r.U128("total_permanent_locked_liquidity")
}

func (e *EvtPermanentLockPosition) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.U128(e.LockLiquidityAmount)
	w.U128(e.TotalPermanentLockedLiquidity)
}

type EvtSetPoolStatus struct {
	Pool   solana.PublicKey `json:"pool"`
	Status uint8            `json:"status"`
}

func (e *EvtSetPoolStatus) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Status = r.U8("status")
}

func (e *EvtSetPoolStatus) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U8(e.Status)
}

type EvtUpdatePoolFees struct {
	Pool     solana.PublicKey         `json:"pool"`
	Operator solana.PublicKey         `json:"operator"`
	Params   UpdatePoolFeesParameters `json:"params"`
}

func (e *EvtUpdatePoolFees) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Operator = r.PublicKey("operator")
	r.Struct("params", &e.Params)
}

func (e *EvtUpdatePoolFees) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Operator)
	w.Struct(&e.Params)
}

type EvtInitializeReward struct {
	Pool           solana.PublicKey `json:"pool"`
	RewardMint     solana.PublicKey `json:"reward_mint"`
	Funder         solana.PublicKey `json:"funder"`
	Creator        solana.PublicKey `json:"creator"`
	RewardIndex    uint8            `json:"reward_index"`
	RewardDuration uint64           `json:"reward_duration"`
}

func (e *EvtInitializeReward) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.RewardMint = r.PublicKey("reward_mint")
	e.Funder = r.PublicKey("funder")
	e.Creator = r.PublicKey("creator")
	e.RewardIndex = r.U8("reward_index")
	e.RewardDuration = r.U64("reward_duration")
}

func (e *EvtInitializeReward) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.RewardMint)
	w.PublicKey(e.Funder)
	w.PublicKey(e.Creator)
	w.U8(e.RewardIndex)
	w.U64(e.RewardDuration)
}

type EvtFundReward struct {
	Pool                        solana.PublicKey `json:"pool"`
	Funder                      solana.PublicKey `json:"funder"`
	MintReward                  solana.PublicKey `json:"mint_reward"`
	RewardIndex                 uint8            `json:"reward_index"`
	Amount                      uint64           `json:"amount"`
	TransferFeeExcludedAmountIn uint64           `json:"transfer_fee_excluded_amount_in"`
	RewardDurationEnd           uint64           `json:"reward_duration_end"`
	PreRewardRate               borsh.Uint128    `json:"pre_reward_rate"`
	PostRewardRate              borsh.Uint128    `json:"post_reward_rate"`
}

func (e *EvtFundReward) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Funder = r.PublicKey("funder")
	e.MintReward = r.PublicKey("mint_reward")
	e.RewardIndex = r.U8("reward_index")
	e.Amount = r.U64("amount")
	e.TransferFeeExcludedAmountIn = r.U64("transfer_fee_excluded_amount_in")
	e.RewardDurationEnd = r.U64("reward_duration_end")
	e.PreRewardRate = r.U128("pre_reward_rate")
	e.PostRewardRate = r.U128("post_reward_rate")
}

func (e *EvtFundReward) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Funder)
	w.PublicKey(e.MintReward)
	w.U8(e.RewardIndex)
	w.U64(e.Amount)
	w.U64(e.TransferFeeExcludedAmountIn)
	w.U64(e.RewardDurationEnd)
	w.U128(e.PreRewardRate)
	w.U128(e.PostRewardRate)
}

type EvtClaimReward struct {
	Pool        solana.PublicKey `json:"pool"`
	Position    solana.PublicKey `json:"position"`
	Owner       solana.PublicKey `json:"owner"`
	MintReward  solana.PublicKey `json:"mint_reward"`
	RewardIndex uint8            `json:"reward_index"`
	TotalReward uint64           `json:"total_reward"`
}

func (e *EvtClaimReward) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.Position = r.PublicKey("position")
	e.Owner = r.PublicKey("owner")
	e.MintReward = r.PublicKey("mint_reward")
	e.RewardIndex = r.U8("reward_index")
	e.TotalReward = r.U64("total_reward")
}

func (e *EvtClaimReward) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.Position)
	w.PublicKey(e.Owner)
	w.PublicKey(e.MintReward)
	w.U8(e.RewardIndex)
	w.U64(e.TotalReward)
}

type EvtUpdateRewardDuration struct {
	Pool              solana.PublicKey `json:"pool"`
	RewardIndex       uint8            `json:"reward_index"`
	OldRewardDuration uint64           `json:"old_reward_duration"`
	NewRewardDuration uint64           `json:"new_reward_duration"`
}

func (e *EvtUpdateRewardDuration) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.RewardIndex = r.U8("reward_index")
	e.OldRewardDuration = r.U64("old_reward_duration")
	e.NewRewardDuration = r.U64("new_reward_duration")
}

func (e *EvtUpdateRewardDuration) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U8(e.RewardIndex)
	w.U64(e.OldRewardDuration)
	w.U64(e.NewRewardDuration)
}

type EvtUpdateRewardFunder struct {
	Pool        solana.PublicKey `json:"pool"`
	RewardIndex uint8            `json:"reward_index"`
	OldFunder   solana.PublicKey `json:"old_funder"`
	NewFunder   solana.PublicKey `json:"new_funder"`
}

func (e *EvtUpdateRewardFunder) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.RewardIndex = r.U8("reward_index")
	e.OldFunder = r.PublicKey("old_funder")
	e.NewFunder = r.PublicKey("new_funder")
}

func (e *EvtUpdateRewardFunder) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.U8(e.RewardIndex)
	w.PublicKey(e.OldFunder)
	w.PublicKey(e.NewFunder)
}

type EvtWithdrawIneligibleReward struct {
	Pool       solana.PublicKey `json:"pool"`
	RewardMint solana.PublicKey `json:"reward_mint"`
	Amount     uint64           `json:"amount"`
}

func (e *EvtWithdrawIneligibleReward) UnmarshalWithReader(r *borsh.Reader) {
	e.Pool = r.PublicKey("pool")
	e.RewardMint = r.PublicKey("reward_mint")
	e.Amount = r.U64("amount")
}

func (e *EvtWithdrawIneligibleReward) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Pool)
	w.PublicKey(e.RewardMint)
	w.U64(e.Amount)
}
