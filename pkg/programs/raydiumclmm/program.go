// Package raydiumclmm holds the schemas of the Raydium concentrated-liquidity
// program.
//
// Tags are derived from event names. Tables that assign one shared tag to
// every CLMM event decode everything as the first registered shape; the
// derived tags keep each event distinct.
package raydiumclmm

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "raydium_clmm"

var ProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[AmmConfig]("AmmConfig"),
		decoder.AccountShape[PoolState]("PoolState"),
		decoder.AccountShape[ObservationState]("ObservationState"),
		decoder.AccountShape[TickArrayState]("TickArrayState"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[PoolCreatedEvent]("PoolCreatedEvent"),
		decoder.EventShape[SwapEvent]("SwapEvent"),
		decoder.EventShape[ConfigChangeEvent]("ConfigChangeEvent"),
		decoder.EventShape[CreatePersonalPositionEvent]("CreatePersonalPositionEvent"),
		decoder.EventShape[IncreaseLiquidityEvent]("IncreaseLiquidityEvent"),
		decoder.EventShape[DecreaseLiquidityEvent]("DecreaseLiquidityEvent"),
		decoder.EventShape[LiquidityCalculateEvent]("LiquidityCalculateEvent"),
		decoder.EventShape[CollectPersonalFeeEvent]("CollectPersonalFeeEvent"),
		decoder.EventShape[UpdateRewardInfosEvent]("UpdateRewardInfosEvent"),
		decoder.EventShape[CollectProtocolFeeEvent]("CollectProtocolFeeEvent"),
		decoder.EventShape[LiquidityChangeEvent]("LiquidityChangeEvent"),
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
