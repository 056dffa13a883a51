// Package meteoradbc holds the schemas of the Meteora dynamic bonding curve
// program.
//
// VirtualPool and PoolConfig are zero-copy accounts and keep their fixed
// on-chain padding. The metadata accounts are Borsh encoded and end in
// variable-length strings.
package meteoradbc

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/decoder"
)

const Name = "meteora_dbc"

var ProgramID = solana.MustPublicKeyFromBase58("dbcij3LWUppWqq96dh6gJWwBifmcGfLSB5D4DuSMaqN")

var Accounts = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Accounts,
		decoder.AccountShape[ClaimFeeOperator]("ClaimFeeOperator"),
		decoder.AccountShape[Config]("Config"),
		decoder.AccountShape[LockEscrow]("LockEscrow"),
		decoder.AccountShape[MeteoraDammMigrationMetadata]("MeteoraDammMigrationMetadata"),
		decoder.AccountShape[MeteoraDammV2Metadata]("MeteoraDammV2Metadata"),
		decoder.AccountShape[PartnerMetadata]("PartnerMetadata"),
		decoder.AccountShape[PoolConfig]("PoolConfig"),
		decoder.AccountShape[VirtualPool]("VirtualPool"),
		decoder.AccountShape[VirtualPoolMetadata]("VirtualPoolMetadata"),
	)
})

var Events = sync.OnceValue(func() *decoder.Table {
	return decoder.MustTable(Name, decoder.Events,
		decoder.EventShape[EvtClaimCreatorTradingFee]("EvtClaimCreatorTradingFee"),
		decoder.EventShape[EvtClaimProtocolFee]("EvtClaimProtocolFee"),
		decoder.EventShape[EvtClaimTradingFee]("EvtClaimTradingFee"),
		decoder.EventShape[EvtCloseClaimFeeOperator]("EvtCloseClaimFeeOperator"),
		decoder.EventShape[EvtCreateClaimFeeOperator]("EvtCreateClaimFeeOperator"),
		decoder.EventShape[EvtCreateConfig]("EvtCreateConfig"),
		decoder.EventShape[EvtCreateConfigV2]("EvtCreateConfigV2"),
		decoder.EventShape[EvtCreateDammV2MigrationMetadata]("EvtCreateDammV2MigrationMetadata"),
		decoder.EventShape[EvtCreateMeteoraMigrationMetadata]("EvtCreateMeteoraMigrationMetadata"),
		decoder.EventShape[EvtCreatorWithdrawSurplus]("EvtCreatorWithdrawSurplus"),
		decoder.EventShape[EvtCurveComplete]("EvtCurveComplete"),
		decoder.EventShape[EvtInitializePool]("EvtInitializePool"),
		decoder.EventShape[EvtPartnerMetadata]("EvtPartnerMetadata"),
		decoder.EventShape[EvtPartnerWithdrawMigrationFee]("EvtPartnerWithdrawMigrationFee"),
		decoder.EventShape[EvtPartnerWithdrawSurplus]("EvtPartnerWithdrawSurplus"),
		decoder.EventShape[EvtProtocolWithdrawSurplus]("EvtProtocolWithdrawSurplus"),
		decoder.EventShape[EvtSwap]("EvtSwap"),
		decoder.EventShape[EvtSwap2]("EvtSwap2"),
		decoder.EventShape[EvtUpdatePoolCreator]("EvtUpdatePoolCreator"),
		decoder.EventShape[EvtVirtualPoolMetadata]("EvtVirtualPoolMetadata"),
		decoder.EventShape[EvtWithdrawLeftover]("EvtWithdrawLeftover"),
		decoder.EventShape[EvtWithdrawMigrationFee]("EvtWithdrawMigrationFee"),
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
