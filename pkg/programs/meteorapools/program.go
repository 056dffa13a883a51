// Package meteorapools holds the event schemas of the Meteora dynamic AMM
// (DAMM v1) pools program. Account schemas are not provided.
package meteorapools

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "meteora_pools"

var ProgramID = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[AddLiquidity]("AddLiquidity"),
		decoder.EventShape[RemoveLiquidity]("RemoveLiquidity"),
		decoder.EventShape[BootstrapLiquidity]("BootstrapLiquidity"),
		decoder.EventShape[Swap]("Swap"),
		decoder.EventShape[SetPoolFees]("SetPoolFees"),
		decoder.EventShape[PoolInfo]("PoolInfo"),
		decoder.EventShape[TransferAdmin]("TransferAdmin"),
		decoder.EventShape[OverrideCurveParam]("OverrideCurveParam"),
		decoder.EventShape[PoolCreated]("PoolCreated"),
		decoder.EventShape[PoolEnabled]("PoolEnabled"),
		decoder.EventShape[MigrateFeeAccount]("MigrateFeeAccount"),
		decoder.EventShape[CreateLockEscrow]("CreateLockEscrow"),
		decoder.EventShape[Lock]("Lock"),
		decoder.EventShape[ClaimFee]("ClaimFee"),
		decoder.EventShape[CreateConfig]("CreateConfig"),
		decoder.EventShape[CloseConfig]("CloseConfig"),
		decoder.EventShape[WithdrawProtocolFees]("WithdrawProtocolFees"),
		decoder.EventShape[PartnerClaimFees]("PartnerClaimFees"),
	)
})

func Program() *decoder.Program {
	return &decoder.Program{
		Name:   Name,
		ID:     ProgramID,
		Events: Events(),
	}
}
