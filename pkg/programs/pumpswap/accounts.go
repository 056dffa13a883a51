package pumpswap

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

const ProtocolFeeRecipients = 8

type GlobalConfig struct {
	Admin                  solana.PublicKey                        `json:"admin"`
	LpFeeBasisPoints       uint64                                  `json:"lp_fee_basis_points"`
	ProtocolFeeBasisPoints uint64                                  `json:"protocol_fee_basis_points"`
	DisableFlags           uint8                                   `json:"disable_flags"`
	ProtocolFeeRecipients  [ProtocolFeeRecipients]solana.PublicKey `json:"protocol_fee_recipients"`
}

func (a *GlobalConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Admin = r.PublicKey("admin")
	a.LpFeeBasisPoints = r.U64("lp_fee_basis_points")
	a.ProtocolFeeBasisPoints = r.U64("protocol_fee_basis_points")
	a.DisableFlags = r.U8("disable_flags")
	borsh.ReadArray(r, "protocol_fee_recipients", a.ProtocolFeeRecipients[:], (*borsh.Reader).PublicKey)
}

func (a *GlobalConfig) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.Admin)
	w.U64(a.LpFeeBasisPoints)
	w.U64(a.ProtocolFeeBasisPoints)
	w.U8(a.DisableFlags)
	borsh.WriteArray(w, a.ProtocolFeeRecipients[:], (*borsh.Writer).PublicKey)
}

type Pool struct {
	PoolBump              uint8            `json:"pool_bump"`
	Index                 uint16           `json:"index"`
	Creator               solana.PublicKey `json:"creator"`
	BaseMint              solana.PublicKey `json:"base_mint"`
	QuoteMint             solana.PublicKey `json:"quote_mint"`
	LpMint                solana.PublicKey `json:"lp_mint"`
	PoolBaseTokenAccount  solana.PublicKey `json:"pool_base_token_account"`
	PoolQuoteTokenAccount solana.PublicKey `json:"pool_quote_token_account"`
	LpSupply              uint64           `json:"lp_supply"`
}

func (a *Pool) UnmarshalWithReader(r *borsh.Reader) {
	a.PoolBump = r.U8("pool_bump")
	a.Index = r.U16("index")
	a.Creator = r.PublicKey("creator")
	a.BaseMint = r.PublicKey("base_mint")
	a.QuoteMint = r.PublicKey("quote_mint")
	a.LpMint = r.PublicKey("lp_mint")
	a.PoolBaseTokenAccount = r.PublicKey("pool_base_token_account")
	a.PoolQuoteTokenAccount = r.PublicKey("pool_quote_token_account")
	a.LpSupply = r.U64("lp_supply")
}

func (a *Pool) MarshalWithWriter(w *borsh.Writer) {
	w.U8(a.PoolBump)
	w.U16(a.Index)
	w.PublicKey(a.Creator)
	w.PublicKey(a.BaseMint)
	w.PublicKey(a.QuoteMint)
	w.PublicKey(a.LpMint)
	w.PublicKey(a.PoolBaseTokenAccount)
	w.PublicKey(a.PoolQuoteTokenAccount)
	w.U64(a.LpSupply)
}
