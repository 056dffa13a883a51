// Package pumpfun holds the schemas of the Pump.fun bonding-curve program.
package pumpfun

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "pumpfun"

var ProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[Global]("Global"),
		decoder.AccountShape[BondingCurve]("BondingCurve"),
		decoder.AccountShape[FeeConfig]("FeeConfig"),
		decoder.AccountShape[GlobalVolumeAccumulator]("GlobalVolumeAccumulator"),
		decoder.AccountShape[SharingConfig]("SharingConfig"),
		decoder.AccountShape[UserVolumeAccumulator]("UserVolumeAccumulator"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[CreateEvent]("CreateEvent"),
		decoder.EventShape[TradeEvent]("TradeEvent"),
		decoder.EventShape[CompleteEvent]("CompleteEvent"),
		decoder.EventShape[SetParamsEvent]("SetParamsEvent"),
		decoder.EventShape[CollectCreatorFeeEvent]("CollectCreatorFeeEvent"),
		decoder.EventShape[CompletePumpAmmMigrationEvent]("CompletePumpAmmMigrationEvent"),
		decoder.EventShape[ExtendAccountEvent]("ExtendAccountEvent"),
		decoder.EventShape[SetCreatorEvent]("SetCreatorEvent"),
		decoder.EventShape[SetMetaplexCreatorEvent]("SetMetaplexCreatorEvent"),
		decoder.EventShape[UpdateGlobalAuthorityEvent]("UpdateGlobalAuthorityEvent"),
		decoder.EventShape[AdminSetCreatorEvent]("AdminSetCreatorEvent"),
		decoder.EventShape[ClaimTokenIncentivesEvent]("ClaimTokenIncentivesEvent"),
		decoder.EventShape[DistributeCreatorFeesEvent]("DistributeCreatorFeesEvent"),
		decoder.EventShape[MinimumDistributableFeeEvent]("MinimumDistributableFeeEvent"),
		decoder.EventShape[ReservedFeeRecipientsEvent]("ReservedFeeRecipientsEvent"),
		decoder.EventShape[SyncUserVolumeAccumulatorEvent]("SyncUserVolumeAccumulatorEvent"),
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
