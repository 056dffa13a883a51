// Package raydiumcpmm holds the event schemas of the Raydium constant-product
// program. Account schemas are not provided.
package raydiumcpmm

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "raydium_cpmm"

var ProgramID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[LpChangeEvent]("LpChangeEvent"),
		decoder.EventShape[SwapEvent]("SwapEvent"),
	)
})

func Program() *decoder.Program {
	return &decoder.Program{
		Name:   Name,
		ID:     ProgramID,
		Events: Events(),
	}
}
