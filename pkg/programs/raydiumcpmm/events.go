package raydiumcpmm

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

// ChangeType values of LpChangeEvent.
const (
	ChangeDeposit  uint8 = 0
	ChangeWithdraw uint8 = 1
)

type LpChangeEvent struct {
	PoolID            solana.PublicKey `json:"pool_id"`
	LpAmountBefore    uint64           `json:"lp_amount_before"`
	Token0VaultBefore uint64           `json:"token0_vault_before"`
	Token1VaultBefore uint64           `json:"token1_vault_before"`
	Token0Amount      uint64           `json:"token0_amount"`
	Token1Amount      uint64           `json:"token1_amount"`
	Token0TransferFee uint64           `json:"token0_transfer_fee"`
	Token1TransferFee uint64           `json:"token1_transfer_fee"`
	ChangeType        uint8            `json:"change_type"`
}

func (e *LpChangeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolID = r.PublicKey("pool_id")
	e.LpAmountBefore = r.U64("lp_amount_before")
	e.Token0VaultBefore = r.U64("token0_vault_before")
	e.Token1VaultBefore = r.U64("token1_vault_before")
	e.Token0Amount = r.U64("token0_amount")
	e.Token1Amount = r.U64("token1_amount")
	e.Token0TransferFee = r.U64("token0_transfer_fee")
	e.Token1TransferFee = r.U64("token1_transfer_fee")
	e.ChangeType = r.U8("change_type")
}

func (e *LpChangeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolID)
	w.U64(e.LpAmountBefore)
	w.U64(e.Token0VaultBefore)
	w.U64(e.Token1VaultBefore)
	w.U64(e.Token0Amount)
	w.U64(e.Token1Amount)
	w.U64(e.Token0TransferFee)
	w.U64(e.Token1TransferFee)
	w.U8(e.ChangeType)
}

// SwapEvent reports one swap. BaseInput is set for exact-input swaps.
type SwapEvent struct {
	PoolID            solana.PublicKey `json:"pool_id"`
	InputVaultBefore  uint64           `json:"input_vault_before"`
	OutputVaultBefore uint64           `json:"output_vault_before"`
	InputAmount       uint64           `json:"input_amount"`
	OutputAmount      uint64           `json:"output_amount"`
	InputTransferFee  uint64           `json:"input_transfer_fee"`
	OutputTransferFee uint64           `json:"output_transfer_fee"`
	BaseInput         bool             `json:"base_input"`
}

func (e *SwapEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.PoolID = r.PublicKey("pool_id")
	e.InputVaultBefore = r.U64("input_vault_before")
	e.OutputVaultBefore = r.U64("output_vault_before")
	e.InputAmount = r.U64("input_amount")
	e.OutputAmount = r.U64("output_amount")
	e.InputTransferFee = r.U64("input_transfer_fee")
	e.OutputTransferFee = r.U64("output_transfer_fee")
	e.BaseInput = r.Bool("base_input")
}

func (e *SwapEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.PoolID)
	w.U64(e.InputVaultBefore)
	w.U64(e.OutputVaultBefore)
	w.U64(e.InputAmount)
	w.U64(e.OutputAmount)
	w.U64(e.InputTransferFee)
	w.U64(e.OutputTransferFee)
	w.Bool(e.BaseInput)
}
