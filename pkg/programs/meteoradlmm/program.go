// Package meteoradlmm holds the account schemas of the Meteora DLMM
// (liquidity book) program. Event schemas are not provided.
//
// BinArray, LbPair and the positions are zero-copy accounts with fixed-size
// bin arrays.
package meteoradlmm

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "meteora_dlmm"

var ProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[BinArrayBitmapExtension]("BinArrayBitmapExtension"),
		decoder.AccountShape[BinArray]("BinArray"),
		decoder.AccountShape[LbPair]("LbPair"),
		decoder.AccountShape[Oracle]("Oracle"),
		decoder.AccountShape[Position]("Position"),
		decoder.AccountShape[PositionV2]("PositionV2"),
		decoder.AccountShape[PresetParameter]("PresetParameter"),
	)
})

func Program() *decoder.Program {
	return &decoder.Program{
		Name:     Name,
		ID:       ProgramID,
		Accounts: Accounts(),
	}
}
