package pumpfun

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type Global struct {
	Initialized                 bool                                  `json:"initialized"`
	Authority                   solana.PublicKey                      `json:"authority"`
	FeeRecipient                solana.PublicKey                      `json:"fee_recipient"`
	InitialVirtualTokenReserves uint64                                `json:"initial_virtual_token_reserves"`
	InitialVirtualSolReserves   uint64                                `json:"initial_virtual_sol_reserves"`
	InitialRealTokenReserves    uint64                                `json:"initial_real_token_reserves"`
	TokenTotalSupply            uint64                                `json:"token_total_supply"`
	FeeBasisPoints              uint64                                `json:"fee_basis_points"`
	WithdrawAuthority           solana.PublicKey                      `json:"withdraw_authority"`
	EnableMigrate               bool                                  `json:"enable_migrate"`
	PoolMigrationFee            uint64                                `json:"pool_migration_fee"`
	CreatorFeeBasisPoints       uint64                                `json:"creator_fee_basis_points"`
	FeeRecipients               [GlobalFeeRecipients]solana.PublicKey `json:"fee_recipients"`
	SetCreatorAuthority         solana.PublicKey                      `json:"set_creator_authority"`
	AdminSetCreatorAuthority    solana.PublicKey                      `json:"admin_set_creator_authority"`
	CreateV2Enabled             bool                                  `json:"create_v2_enabled"`
	WhitelistPda                solana.PublicKey                      `json:"whitelist_pda"`
	ReservedFeeRecipient        solana.PublicKey                      `json:"reserved_fee_recipient"`
	MayhemModeEnabled           bool                                  `json:"mayhem_mode_enabled"`
	ReservedFeeRecipients       [GlobalFeeRecipients]solana.PublicKey `json:"reserved_fee_recipients"`
}

func (a *Global) UnmarshalWithReader(r *borsh.Reader) {
	a.Initialized = r.Bool("initialized")
	a.Authority = r.PublicKey("authority")
	a.FeeRecipient = r.PublicKey("fee_recipient")
	a.InitialVirtualTokenReserves = r.U64("initial_virtual_token_reserves")
	a.InitialVirtualSolReserves = r.U64("initial_virtual_sol_reserves")
	a.InitialRealTokenReserves = r.U64("initial_real_token_reserves")
	a.TokenTotalSupply = r.U64("token_total_supply")
	a.FeeBasisPoints = r.U64("fee_basis_points")
	a.WithdrawAuthority = r.PublicKey("withdraw_authority")
	a.EnableMigrate = r.Bool("enable_migrate")
	a.PoolMigrationFee = r.U64("pool_migration_fee")
	a.CreatorFeeBasisPoints = r.U64("creator_fee_basis_points")
	borsh.ReadArray(r, "fee_recipients", a.FeeRecipients[:], (*borsh.Reader).PublicKey)
	a.SetCreatorAuthority = r.PublicKey("set_creator_authority")
	a.AdminSetCreatorAuthority = r.PublicKey("admin_set_creator_authority")
	a.CreateV2Enabled = r.Bool("create_v2_enabled")
	a.WhitelistPda = r.PublicKey("whitelist_pda")
	a.ReservedFeeRecipient = r.PublicKey("reserved_fee_recipient")
	a.MayhemModeEnabled = r.Bool("mayhem_mode_enabled")
	borsh.ReadArray(r, "reserved_fee_recipients", a.ReservedFeeRecipients[:], (*borsh.Reader).PublicKey)
}

func (a *Global) MarshalWithWriter(w *borsh.Writer) {
	w.Bool(a.Initialized)
	w.PublicKey(a.Authority)
	w.PublicKey(a.FeeRecipient)
	w.U64(a.InitialVirtualTokenReserves)
	w.U64(a.InitialVirtualSolReserves)
	w.U64(a.InitialRealTokenReserves)
	w.U64(a.TokenTotalSupply)
	w.U64(a.FeeBasisPoints)
	w.PublicKey(a.WithdrawAuthority)
	w.Bool(a.EnableMigrate)
	w.U64(a.PoolMigrationFee)
	w.U64(a.CreatorFeeBasisPoints)
	borsh.WriteArray(w, a.FeeRecipients[:], (*borsh.Writer).PublicKey)
	w.PublicKey(a.SetCreatorAuthority)
	w.PublicKey(a.AdminSetCreatorAuthority)
	w.Bool(a.CreateV2Enabled)
	w.PublicKey(a.WhitelistPda)
	w.PublicKey(a.ReservedFeeRecipient)
	w.Bool(a.MayhemModeEnabled)
	borsh.WriteArray(w, a.ReservedFeeRecipients[:], (*borsh.Writer).PublicKey)
}

type BondingCurve struct {
	VirtualTokenReserves uint64           `json:"virtual_token_reserves"`
	VirtualSolReserves   uint64           `json:"virtual_sol_reserves"`
	RealTokenReserves    uint64           `json:"real_token_reserves"`
	RealSolReserves      uint64           `json:"real_sol_reserves"`
	TokenTotalSupply     uint64           `json:"token_total_supply"`
	Complete             bool             `json:"complete"`
	Creator              solana.PublicKey `json:"creator"`
	IsMayhemMode         bool             `json:"is_mayhem_mode"`
}

func (a *BondingCurve) UnmarshalWithReader(r *borsh.Reader) {
	a.VirtualTokenReserves = r.U64("virtual_token_reserves")
	a.VirtualSolReserves = r.U64("virtual_sol_reserves")
	a.RealTokenReserves = r.U64("real_token_reserves")
	a.RealSolReserves = r.U64("real_sol_reserves")
	a.TokenTotalSupply = r.U64("token_total_supply")
	a.Complete = r.Bool("complete")
	a.Creator = r.PublicKey("creator")
	a.IsMayhemMode = r.Bool("is_mayhem_mode")
}

func (a *BondingCurve) MarshalWithWriter(w *borsh.Writer) {
	w.U64(a.VirtualTokenReserves)
	w.U64(a.VirtualSolReserves)
	w.U64(a.RealTokenReserves)
	w.U64(a.RealSolReserves)
	w.U64(a.TokenTotalSupply)
	w.Bool(a.Complete)
	w.PublicKey(a.Creator)
	w.Bool(a.IsMayhemMode)
}

// FeeConfig holds the flat fees and the market-cap tiered schedule.
type FeeConfig struct {
	Bump     uint8            `json:"bump"`
	Admin    solana.PublicKey `json:"admin"`
	FlatFees Fees             `json:"flat_fees"`
	FeeTiers []FeeTier        `json:"fee_tiers"`
}

func (a *FeeConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Bump = r.U8("bump")
	a.Admin = r.PublicKey("admin")
	r.Struct("flat_fees", &a.FlatFees)
	a.FeeTiers = borsh.ReadStructVec[FeeTier](r, "fee_tiers")
}

func (a *FeeConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U8(a.Bump)
	w.PublicKey(a.Admin)
	w.Struct(&a.FlatFees)
	borsh.WriteStructVec(w, "fee_tiers", a.FeeTiers)
}

type GlobalVolumeAccumulator struct {
	StartTime        int64              `json:"start_time"`
	EndTime          int64              `json:"end_time"`
	SecondsInADay    int64              `json:"seconds_in_a_day"`
	Mint             solana.PublicKey   `json:"mint"`
	TotalTokenSupply [VolumeDays]uint64 `json:"total_token_supply"`
	SolVolumes       [VolumeDays]uint64 `json:"sol_volumes"`
}

func (a *GlobalVolumeAccumulator) UnmarshalWithReader(r *borsh.Reader) {
	a.StartTime = r.I64("start_time")
	a.EndTime = r.I64("end_time")
	a.SecondsInADay = r.I64("seconds_in_a_day")
	a.Mint = r.PublicKey("mint")
	borsh.ReadArray(r, "total_token_supply", a.TotalTokenSupply[:], (*borsh.Reader).U64)
	borsh.ReadArray(r, "sol_volumes", a.SolVolumes[:], (*borsh.Reader).U64)
}

func (a *GlobalVolumeAccumulator) MarshalWithWriter(w *borsh.Writer) {
	w.I64(a.StartTime)
	w.I64(a.EndTime)
	w.I64(a.SecondsInADay)
	w.PublicKey(a.Mint)
	borsh.WriteArray(w, a.TotalTokenSupply[:], (*borsh.Writer).U64)
	borsh.WriteArray(w, a.SolVolumes[:], (*borsh.Writer).U64)
}

type SharingConfig struct {
	Bump         uint8            `json:"bump"`
	Version      uint8            `json:"version"`
	Status       ConfigStatus     `json:"status"`
	Mint         solana.PublicKey `json:"mint"`
	Admin        solana.PublicKey `json:"admin"`
	AdminRevoked bool             `json:"admin_revoked"`
	Shareholders []Shareholder    `json:"shareholders"`
}

func (a *SharingConfig) UnmarshalWithReader(r *borsh.Reader) {
	a.Bump = r.U8("bump")
	a.Version = r.U8("version")
	a.Status = ConfigStatus(r.Enum("status", a.Status.EnumVariants()))
	a.Mint = r.PublicKey("mint")
	a.Admin = r.PublicKey("admin")
	a.AdminRevoked = r.Bool("admin_revoked")
	a.Shareholders = borsh.ReadStructVec[Shareholder](r, "shareholders")
}

func (a *SharingConfig) MarshalWithWriter(w *borsh.Writer) {
	w.U8(a.Bump)
	w.U8(a.Version)
	w.Enum("status", uint8(a.Status), a.Status.EnumVariants())
	w.PublicKey(a.Mint)
	w.PublicKey(a.Admin)
	w.Bool(a.AdminRevoked)
	borsh.WriteStructVec(w, "shareholders", a.Shareholders)
}

type UserVolumeAccumulator struct {
	User                  solana.PublicKey `json:"user"`
	NeedsClaim            bool             `json:"needs_claim"`
	TotalUnclaimedTokens  uint64           `json:"total_unclaimed_tokens"`
	TotalClaimedTokens    uint64           `json:"total_claimed_tokens"`
	CurrentSolVolume      uint64           `json:"current_sol_volume"`
	LastUpdateTimestamp   int64            `json:"last_update_timestamp"`
	HasTotalClaimedTokens bool             `json:"has_total_claimed_tokens"`
}

func (a *UserVolumeAccumulator) UnmarshalWithReader(r *borsh.Reader) {
	a.User = r.PublicKey("user")
	a.NeedsClaim = r.Bool("needs_claim")
	a.TotalUnclaimedTokens = r.U64("total_unclaimed_tokens")
	a.TotalClaimedTokens = r.U64("total_claimed_tokens")
	a.CurrentSolVolume = r.U64("current_sol_volume")
	a.LastUpdateTimestamp = r.I64("last_update_timestamp")
	a.HasTotalClaimedTokens = r.Bool("has_total_claimed_tokens")
}

func (a *UserVolumeAccumulator) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(a.User)
	w.Bool(a.NeedsClaim)
	w.U64(a.TotalUnclaimedTokens)
	w.U64(a.TotalClaimedTokens)
	w.U64(a.CurrentSolVolume)
	w.I64(a.LastUpdateTimestamp)
	w.Bool(a.HasTotalClaimedTokens)
}
