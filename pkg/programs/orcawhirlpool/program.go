// Package orcawhirlpool holds the account and event schemas of the Orca
// Whirlpool concentrated-liquidity program.
package orcawhirlpool

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "orca_whirlpool"

var ProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[WhirlpoolsConfig]("WhirlpoolsConfig"),
		decoder.AccountShape[WhirlpoolsConfigExtension]("WhirlpoolsConfigExtension"),
		decoder.AccountShape[FeeTier]("FeeTier"),
		decoder.AccountShape[PositionBundle]("PositionBundle"),
		decoder.AccountShape[Position]("Position"),
		decoder.AccountShape[TickArray]("TickArray"),
		decoder.AccountShape[TokenBadge]("TokenBadge"),
		decoder.AccountShape[Whirlpool]("Whirlpool"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[PoolInitialized]("PoolInitialized"),
		decoder.EventShape[Traded]("Traded"),
		decoder.EventShape[LiquidityIncreased]("LiquidityIncreased"),
		decoder.EventShape[LiquidityDecreased]("LiquidityDecreased"),
	)
})

// Program returns the program descriptor for registration.
func Program() *decoder.Program {
	return &decoder.Program{
		Name:     Name,
		ID:       ProgramID,
		Accounts: Accounts(),
		Events:   Events(),
	}
}
