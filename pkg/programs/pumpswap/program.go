// Package pumpswap holds the schemas of the PumpSwap constant-product AMM.
//
// Every discriminator is derived from the Anchor name. Several tags published
// alongside older PumpSwap decoders (SellEvent, DepositEvent, DisableEvent and
// ExtendAccountEvent) do not match their names and are not used.
package pumpswap

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "pumpswap"

var ProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[GlobalConfig]("GlobalConfig"),
		decoder.AccountShape[Pool]("Pool"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[BuyEvent]("BuyEvent"),
		decoder.EventShape[SellEvent]("SellEvent"),
		decoder.EventShape[CreateConfigEvent]("CreateConfigEvent"),
		decoder.EventShape[CreatePoolEvent]("CreatePoolEvent"),
		decoder.EventShape[DepositEvent]("DepositEvent"),
		decoder.EventShape[DisableEvent]("DisableEvent"),
		decoder.EventShape[ExtendAccountEvent]("ExtendAccountEvent"),
		decoder.EventShape[UpdateAdminEvent]("UpdateAdminEvent"),
		decoder.EventShape[UpdateFeeConfigEvent]("UpdateFeeConfigEvent"),
		decoder.EventShape[WithdrawEvent]("WithdrawEvent"),
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
