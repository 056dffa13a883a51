// Package raydiumlaunchpad holds the schemas of the Raydium launchpad
// bonding-curve program.
//
// The program emits events through self-CPI, so logged and inner-instruction
// payloads carry the event-CPI tag ahead of the event tag. Dispatch through
// decoder.Registry or decoder.EventDispatcher strips it.
package raydiumlaunchpad

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "raydium_launchpad"

var ProgramID = solana.MustPublicKeyFromBase58("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[GlobalConfig]("GlobalConfig"),
		decoder.AccountShape[PlatformConfig]("PlatformConfig"),
		decoder.AccountShape[PoolState]("PoolState"),
		decoder.AccountShape[VestingRecord]("VestingRecord"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[ClaimVestedEvent]("ClaimVestedEvent"),
		decoder.EventShape[CreateVestingEvent]("CreateVestingEvent"),
		decoder.EventShape[PoolCreateEvent]("PoolCreateEvent"),
		decoder.EventShape[TradeEvent]("TradeEvent"),
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
