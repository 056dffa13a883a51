package raydiumlaunchpad

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type GlobalConfig struct {
	Epoch                 uint64           `json:"epoch"`
	CurveType             uint8            `json:"curve_type"`
	Index                 uint16           `json:"index"`
	MigrateFee            uint64           `json:"migrate_fee"`
	TradeFeeRate          uint64           `json:"trade_fee_rate"`
	MaxShareFeeRate       uint64           `json:"max_share_fee_rate"`
	MinBaseSupply         uint64           `json:"min_base_supply"`
	MaxLockRate           uint64           `json:"max_lock_rate"`
	MinBaseSellRate       uint64           `json:"min_base_sell_rate"`
	MinBaseMigrateRate    uint64           `json:"min_base_migrate_rate"`
	MinQuoteFundRaising   uint64           `json:"min_quote_fund_raising"`
	QuoteMint             solana.PublicKey `json:"quote_mint"`
	ProtocolFeeOwner      solana.PublicKey `json:"protocol_fee_owner"`
	MigrateFeeOwner       solana.PublicKey `json:"migrate_fee_owner"`
	MigrateToAmmWallet    solana.PublicKey `json:"migrate_to_amm_wallet"`
	MigrateToCpswapWallet solana.PublicKey `json:"migrate_to_cpswap_wallet"`
}

func (a *GlobalConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Epoch = r.U64("epoch")
	a.CurveType = r.U8("curve_type")
	a.Index = r.U16("index")
	a.MigrateFee = r.U64("migrate_fee")
	a.TradeFeeRate = r.U64("trade_fee_rate")
	a.MaxShareFeeRate = r.U64("max_share_fee_rate")
	a.MinBaseSupply = r.U64("min_base_supply")
	a.MaxLockRate = r.U64("max_lock_rate")
	a.MinBaseSellRate = r.U64("min_base_sell_rate")
	a.MinBaseMigrateRate = r.U64("min_base_migrate_rate")
	a.MinQuoteFundRaising = r.U64("min_quote_fund_raising")
	a.QuoteMint = r.PublicKey("quote_mint")
	a.ProtocolFeeOwner = r.PublicKey("protocol_fee_owner")
	a.MigrateFeeOwner = r.PublicKey("migrate_fee_owner")
	a.MigrateToAmmWallet = r.PublicKey("migrate_to_amm_wallet")
	a.MigrateToCpswapWallet = r.PublicKey("migrate_to_cpswap_wallet")
	r.Padding("padding", 16*8)
}

func (a *GlobalConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.Epoch)
	w.U8(a.CurveType)
	w.U16(a.Index)
	w.U64(a.MigrateFee)
	w.U64(a.TradeFeeRate)
	w.U64(a.MaxShareFeeRate)
	w.U64(a.MinBaseSupply)
	w.U64(a.MaxLockRate)
	w.U64(a.MinBaseSellRate)
	w.U64(a.MinBaseMigrateRate)
	w.U64(a.MinQuoteFundRaising)
	w.PublicKey(a.QuoteMint)
	w.PublicKey(a.ProtocolFeeOwner)
	w.PublicKey(a.MigrateFeeOwner)
	w.PublicKey(a.MigrateToAmmWallet)
	w.PublicKey(a.MigrateToCpswapWallet)
	w.Padding(16 * 8)
}

// PlatformConfig carries free-form byte fields. Its trailing padding is a
// length-prefixed byte sequence and is skipped on decode.
type PlatformConfig struct {
	Epoch             uint64           `json:"epoch"`
	PlatformFeeWallet solana.PublicKey `json:"platform_fee_wallet"`
	PlatformNftWallet solana.PublicKey `json:"platform_nft_wallet"`
	PlatformScale     uint64           `json:"platform_scale"`
	CreatorScale      uint64           `json:"creator_scale"`
	BurnScale         uint64           `json:"burn_scale"`
	FeeRate           uint64           `json:"fee_rate"`
	Name              []byte           `json:"name"`
	Web               []byte           `json:"web"`
	Img               []byte           `json:"img"`
}

func (a *PlatformConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Epoch = r.U64("epoch")
	a.PlatformFeeWallet = r.PublicKey("platform_fee_wallet")
	a.PlatformNftWallet = r.PublicKey("platform_nft_wallet")
	a.PlatformScale = r.U64("platform_scale")
	a.CreatorScale = r.U64("creator_scale")
	a.BurnScale = r.U64("burn_scale")
	a.FeeRate = r.U64("fee_rate")
	a.Name = r.ByteVec("name")
	a.Web = r.ByteVec("web")
	a.Img = r.ByteVec("img")
	r.VecPadding("padding", 1)
}

func (a *PlatformConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.Epoch)
	w.PublicKey(a.PlatformFeeWallet)
	w.PublicKey(a.PlatformNftWallet)
	w.U64(a.PlatformScale)
	w.U64(a.CreatorScale)
	w.U64(a.BurnScale)
	w.U64(a.FeeRate)
	w.ByteVec("name", a.Name)
	w.ByteVec("web", a.Web)
	w.ByteVec("img", a.Img)
	w.VecPadding()
}

// PoolState is one bonding curve. Status and MigrateType are raw bytes on
// the account even though events carry PoolStatus.
type PoolState struct {
	Epoch                 uint64           `json:"epoch"`
	AuthBump              uint8            `json:"auth_bump"`
	Status                uint8            `json:"status"`
	BaseDecimals          uint8            `json:"base_decimals"`
	QuoteDecimals         uint8            `json:"quote_decimals"`
	MigrateType           uint8            `json:"migrate_type"`
	Supply                uint64           `json:"supply"`
	TotalBaseSell         uint64           `json:"total_base_sell"`
	VirtualBase           uint64           `json:"virtual_base"`
	VirtualQuote          uint64           `json:"virtual_quote"`
	RealBase              uint64           `json:"real_base"`
	RealQuote             uint64           `json:"real_quote"`
	TotalQuoteFundRaising uint64           `json:"total_quote_fund_raising"`
	QuoteProtocolFee      uint64           `json:"quote_protocol_fee"`
	PlatformFee           uint64           `json:"platform_fee"`
	MigrateFee            uint64           `json:"migrate_fee"`
	VestingSchedule       VestingSchedule  `json:"vesting_schedule"`
	GlobalConfig          solana.PublicKey `json:"global_config"`
	PlatformConfig        solana.PublicKey `json:"platform_config"`
	BaseMint              solana.PublicKey `json:"base_mint"`
	QuoteMint             solana.PublicKey `json:"quote_mint"`
	BaseVault             solana.PublicKey `json:"base_vault"`
	QuoteVault            solana.PublicKey `json:"quote_vault"`
	Creator               solana.PublicKey `json:"creator"`
}

func (a *PoolState) UnmarshalWithReader(r *borsh.Reader) {
	a.Epoch = r.U64("epoch")
	a.AuthBump = r.U8("auth_bump")
	a.Status = r.U8("status")
	a.BaseDecimals = r.U8("base_decimals")
	a.QuoteDecimals = r.U8("quote_decimals")
	a.MigrateType = r.U8("migrate_type")
	a.Supply = r.U64("supply")
	a.TotalBaseSell = r.U64("total_base_sell")
	a.VirtualBase = r.U64("virtual_base")
	a.VirtualQuote = r.U64("virtual_quote")
	a.RealBase = r.U64("real_base")
	a.RealQuote = r.U64("real_quote")
	a.TotalQuoteFundRaising = r.U64("total_quote_fund_raising")
	a.QuoteProtocolFee = r.U64("quote_protocol_fee")
	a.PlatformFee = r.U64("platform_fee")
	a.MigrateFee = r.U64("migrate_fee")
	r.Struct("vesting_schedule", &a.VestingSchedule)
	a.GlobalConfig = r.PublicKey("global_config")
	a.PlatformConfig = r.PublicKey("platform_config")
	a.BaseMint = r.PublicKey("base_mint")
	a.QuoteMint = r.PublicKey("quote_mint")
	a.BaseVault = r.PublicKey("base_vault")
	a.QuoteVault = r.PublicKey("quote_vault")
	a.Creator = r.PublicKey("creator")
	r.Padding("padding", 8*8)
}

func (a *PoolState) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.Epoch)
	w.U8(a.AuthBump)
	w.U8(a.Status)
	w.U8(a.BaseDecimals)
	w.U8(a.QuoteDecimals)
	w.U8(a.MigrateType)
	w.U64(a.Supply)
	w.U64(a.TotalBaseSell)
	w.U64(a.VirtualBase)
	w.U64(a.VirtualQuote)
	w.U64(a.RealBase)
	w.U64(a.RealQuote)
	w.U64(a.TotalQuoteFundRaising)
	w.U64(a.QuoteProtocolFee)
	w.U64(a.PlatformFee)
	w.U64(a.MigrateFee)
	w.Struct(&a.VestingSchedule)
	w.PublicKey(a.GlobalConfig)
	w.PublicKey(a.PlatformConfig)
	w.PublicKey(a.BaseMint)
	w.PublicKey(a.QuoteMint)
	w.PublicKey(a.BaseVault)
	w.PublicKey(a.QuoteVault)
	w.PublicKey(a.Creator)
	w.Padding(8 * 8)
}

type VestingRecord struct {
	Epoch            uint64           `json:"epoch"`
	Pool             solana.PublicKey `json:"pool"`
	Beneficiary      solana.PublicKey `json:"beneficiary"`
	ClaimedAmount    uint64           `json:"claimed_amount"`
	TokenShareAmount uint64           `json:"token_share_amount"`
}

func (a *VestingRecord) UnmarshalWithReader(r *borsh.Reader) {
	a.Epoch = r.U64("epoch")
	a.Pool = r.PublicKey("pool")
	a.Beneficiary = r.PublicKey("beneficiary")
	a.ClaimedAmount = r.U64("claimed_amount")
	a.TokenShareAmount = r.U64("token_share_amount")
	r.Padding("padding", 8*8)
}

func (a *VestingRecord) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.Epoch)
	w.PublicKey(a.Pool)
	w.PublicKey(a.Beneficiary)
	w.U64(a.ClaimedAmount)
	w.U64(a.TokenShareAmount)
	w.Padding(8 * 8)
}
