// Package meteoradammv2 holds the schemas of the Meteora DAMM v2 program.
//
// Accounts are zero-copy on chain. Their layouts carry explicit padding, so
// the field-by-field encoding matches the in-memory layout byte for byte.
package meteoradammv2

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "meteora_damm_v2"

var ProgramID = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[Pool]("Pool"),
		decoder.AccountShape[Position]("Position"),
		decoder.AccountShape[Config]("Config"),
		decoder.AccountShape[Vesting]("Vesting"),
		decoder.AccountShape[TokenBadge]("TokenBadge"),
		decoder.AccountShape[ClaimFeeOperator]("ClaimFeeOperator"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[EvtSwap]("EvtSwap"),
		decoder.EventShape[EvtSwap2]("EvtSwap2"),
		decoder.EventShape[EvtInitializePool]("EvtInitializePool"),
		decoder.EventShape[EvtCreateConfig]("EvtCreateConfig"),
		decoder.EventShape[EvtCreateDynamicConfig]("EvtCreateDynamicConfig"),
		decoder.EventShape[EvtCloseConfig]("EvtCloseConfig"),
		decoder.EventShape[EvtAddLiquidity]("EvtAddLiquidity"),
		decoder.EventShape[EvtRemoveLiquidity]("EvtRemoveLiquidity"),
		decoder.EventShape[EvtClaimPositionFee]("EvtClaimPositionFee"),
		decoder.EventShape[EvtClaimPartnerFee]("EvtClaimPartnerFee"),
		decoder.EventShape[EvtClaimProtocolFee]("EvtClaimProtocolFee"),
		decoder.EventShape[EvtCreatePosition]("EvtCreatePosition"),
		decoder.EventShape[EvtClosePosition]("EvtClosePosition"),
		decoder.EventShape[EvtLockPosition]("EvtLockPosition"),
		decoder.EventShape[EvtPermanentLockPosition]("EvtPermanentLockPosition"),
		decoder.EventShape[EvtSetPoolStatus]("EvtSetPoolStatus"),
		decoder.EventShape[EvtUpdatePoolFees]("EvtUpdatePoolFees"),
		decoder.EventShape[EvtInitializeReward]("EvtInitializeReward"),
		decoder.EventShape[EvtFundReward]("EvtFundReward"),
		decoder.EventShape[EvtClaimReward]("EvtClaimReward"),
		decoder.EventShape[EvtUpdateRewardDuration]("EvtUpdateRewardDuration"),
		decoder.EventShape[EvtUpdateRewardFunder]("EvtUpdateRewardFunder"),
		decoder.EventShape[EvtWithdrawIneligibleReward]("EvtWithdrawIneligibleReward"),
	)
})

func Program() *decoder.Program {
	return &decoder.Program{
		Name:     Name,
		ID:       ProgramID,
		Accounts: Accounts(),
		Events:   Events(),
	}
}
