package pumpfun

import (
	"github.com/gagliardetto/solana-go"
	"github.com/lugondev/solcodec/pkg/borsh"
)

type CreateEvent struct {
	Name                 string           `json:"name"`
	Symbol               string           `json:"symbol"`
	URI                  string           `json:"uri"`
	Mint                 solana.PublicKey `json:"mint"`
	BondingCurve         solana.PublicKey `json:"bonding_curve"`
	User                 solana.PublicKey `json:"user"`
	Creator              solana.PublicKey `json:"creator"`
	Timestamp            int64            `json:"timestamp"`
	VirtualTokenReserves uint64           `json:"virtual_token_reserves"`
	VirtualSolReserves   uint64           `json:"virtual_sol_reserves"`
	RealTokenReserves    uint64           `json:"real_token_reserves"`
	TokenTotalSupply     uint64           `json:"token_total_supply"`
}

func (e *CreateEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Name = r.String("name")
	e.Symbol = r.String("symbol")
	e.URI = r.String("uri")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.User = r.PublicKey("user")
	e.Creator = r.PublicKey("creator")
	e.Timestamp = r.I64("timestamp")
	e.VirtualTokenReserves = r.U64("virtual_token_reserves")
	e.VirtualSolReserves = r.U64("virtual_sol_reserves")
	e.RealTokenReserves = r.U64("real_token_reserves")
	e.TokenTotalSupply = r.U64("token_total_supply")
}

func (e *CreateEvent) MarshalWithWriter(w *borsh.Writer) {
	w.String("name", e.Name)
	w.String("symbol", e.Symbol)
	w.String("uri", e.URI)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.PublicKey(e.User)
	w.PublicKey(e.Creator)
	w.I64(e.Timestamp)
	w.U64(e.VirtualTokenReserves)
	w.U64(e.VirtualSolReserves)
	w.U64(e.RealTokenReserves)
	w.U64(e.TokenTotalSupply)
}

type TradeEvent struct {
	Mint                  solana.PublicKey `json:"mint"`
	SolAmount             uint64           `json:"sol_amount"`
	TokenAmount           uint64           `json:"token_amount"`
	IsBuy                 bool             `json:"is_buy"`
	User                  solana.PublicKey `json:"user"`
	Timestamp             int64            `json:"timestamp"`
	VirtualSolReserves    uint64           `json:"virtual_sol_reserves"`
	VirtualTokenReserves  uint64           `json:"virtual_token_reserves"`
	RealSolReserves       uint64           `json:"real_sol_reserves"`
	RealTokenReserves     uint64           `json:"real_token_reserves"`
	FeeRecipient          solana.PublicKey `json:"fee_recipient"`
	FeeBasisPoints        uint64           `json:"fee_basis_points"`
	Fee                   uint64           `json:"fee"`
	Creator               solana.PublicKey `json:"creator"`
	CreatorFeeBasisPoints uint64           `json:"creator_fee_basis_points"`
	CreatorFee            uint64           `json:"creator_fee"`
	TrackVolume           bool             `json:"track_volume"`
	TotalUnclaimedTokens  uint64           `json:"total_unclaimed_tokens"`
	TotalClaimedTokens    uint64           `json:"total_claimed_tokens"`
	CurrentSolVolume      uint64           `json:"current_sol_volume"`
	LastUpdateTimestamp   int64            `json:"last_update_timestamp"`
	IxName                string           `json:"ix_name"`
	MayhemMode            bool             `json:"mayhem_mode"`
}

func (e *TradeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Mint = r.PublicKey("mint")
	e.SolAmount = r.U64("sol_amount")
	e.TokenAmount = r.U64("token_amount")
	e.IsBuy = r.Bool("is_buy")
	e.User = r.PublicKey("user")
	e.Timestamp = r.I64("timestamp")
	e.VirtualSolReserves = r.U64("virtual_sol_reserves")
	e.VirtualTokenReserves = r.U64("virtual_token_reserves")
	e.RealSolReserves = r.U64("real_sol_reserves")
	e.RealTokenReserves = r.U64("real_token_reserves")
	e.FeeRecipient = r.PublicKey("fee_recipient")
	e.FeeBasisPoints = r.U64("fee_basis_points")
	e.Fee = r.U64("fee")
	e.Creator = r.PublicKey("creator")
	e.CreatorFeeBasisPoints = r.U64("creator_fee_basis_points")
	e.CreatorFee = r.U64("creator_fee")
	e.TrackVolume = r.Bool("track_volume")
	e.TotalUnclaimedTokens = r.U64("total_unclaimed_tokens")
	e.TotalClaimedTokens = r.U64("total_claimed_tokens")
	e.CurrentSolVolume = r.U64("current_sol_volume")
	e.LastUpdateTimestamp = r.I64("last_update_timestamp")
	e.IxName = r.String("ix_name")
	e.MayhemMode = r.Bool("mayhem_mode")
}

func (e *TradeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Mint)
	w.U64(e.SolAmount)
	w.U64(e.TokenAmount)
	w.Bool(e.IsBuy)
	w.PublicKey(e.User)
	w.I64(e.Timestamp)
	w.U64(e.VirtualSolReserves)
	w.U64(e.VirtualTokenReserves)
	w.U64(e.RealSolReserves)
	w.U64(e.RealTokenReserves)
	w.PublicKey(e.FeeRecipient)
	w.U64(e.FeeBasisPoints)
	w.U64(e.Fee)
	w.PublicKey(e.Creator)
	w.U64(e.CreatorFeeBasisPoints)
	w.U64(e.CreatorFee)
	w.Bool(e.TrackVolume)
	w.U64(e.TotalUnclaimedTokens)
	w.U64(e.TotalClaimedTokens)
	w.U64(e.CurrentSolVolume)
	w.I64(e.LastUpdateTimestamp)
	w.String("ix_name", e.IxName)
	w.Bool(e.MayhemMode)
}

type CompleteEvent struct {
	User         solana.PublicKey `json:"user"`
	Mint         solana.PublicKey `json:"mint"`
	BondingCurve solana.PublicKey `json:"bonding_curve"`
	Timestamp    int64            `json:"timestamp"`
}

func (e *CompleteEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.User = r.PublicKey("user")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.Timestamp = r.I64("timestamp")
}

func (e *CompleteEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.User)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.I64(e.Timestamp)
}

type SetParamsEvent struct {
	InitialVirtualTokenReserves uint64                                   `json:"initial_virtual_token_reserves"`
	InitialVirtualSolReserves   uint64                                   `json:"initial_virtual_sol_reserves"`
	InitialRealTokenReserves    uint64                                   `json:"initial_real_token_reserves"`
	FinalRealSolReserves        uint64                                   `json:"final_real_sol_reserves"`
	TokenTotalSupply            uint64                                   `json:"token_total_supply"`
	FeeBasisPoints              uint64                                   `json:"fee_basis_points"`
	WithdrawAuthority           solana.PublicKey                         `json:"withdraw_authority"`
	EnableMigrate               bool                                     `json:"enable_migrate"`
	PoolMigrationFee            uint64                                   `json:"pool_migration_fee"`
	CreatorFeeBasisPoints       uint64                                   `json:"creator_fee_basis_points"`
	FeeRecipients               [SetParamsFeeRecipients]solana.PublicKey `json:"fee_recipients"`
	Timestamp                   int64                                    `json:"timestamp"`
	SetCreatorAuthority         solana.PublicKey                         `json:"set_creator_authority"`
	AdminSetCreatorAuthority    solana.PublicKey                         `json:"admin_set_creator_authority"`
}

func (e *SetParamsEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.InitialVirtualTokenReserves = r.U64("initial_virtual_token_reserves")
	e.InitialVirtualSolReserves = r.U64("initial_virtual_sol_reserves")
	e.InitialRealTokenReserves = r.U64("initial_real_token_reserves")
	e.FinalRealSolReserves = r.U64("final_real_sol_reserves")
	e.TokenTotalSupply = r.U64("token_total_supply")
	e.FeeBasisPoints = r.U64("fee_basis_points")
	e.WithdrawAuthority = r.PublicKey("withdraw_authority")
	e.EnableMigrate = r.Bool("enable_migrate")
	e.PoolMigrationFee = r.U64("pool_migration_fee")
	e.CreatorFeeBasisPoints = r.U64("creator_fee_basis_points")
	borsh.ReadArray(r, "fee_recipients", e.FeeRecipients[:], (*borsh.Reader).PublicKey)
	e.Timestamp = r.I64("timestamp")
	e.SetCreatorAuthority = r.PublicKey("set_creator_authority")
	e.AdminSetCreatorAuthority = r.PublicKey("admin_set_creator_authority")
}

func (e *SetParamsEvent) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.InitialVirtualTokenReserves)
	w.U64(e.InitialVirtualSolReserves)
	w.U64(e.InitialRealTokenReserves)
	w.U64(e.FinalRealSolReserves)
	w.U64(e.TokenTotalSupply)
	w.U64(e.FeeBasisPoints)
	w.PublicKey(e.WithdrawAuthority)
	w.Bool(e.EnableMigrate)
	w.U64(e.PoolMigrationFee)
	w.U64(e.CreatorFeeBasisPoints)
	borsh.WriteArray(w, e.FeeRecipients[:], (*borsh.Writer).PublicKey)
	w.I64(e.Timestamp)
	w.PublicKey(e.SetCreatorAuthority)
	w.PublicKey(e.AdminSetCreatorAuthority)
}

type CollectCreatorFeeEvent struct {
	Timestamp  int64            `json:"timestamp"`
	Creator    solana.PublicKey `json:"creator"`
	CreatorFee uint64           `json:"creator_fee"`
}

func (e *CollectCreatorFeeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Creator = r.PublicKey("creator")
	e.CreatorFee = r.U64("creator_fee")
}

func (e *CollectCreatorFeeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Creator)
	w.U64(e.CreatorFee)
}

type CompletePumpAmmMigrationEvent struct {
	User             solana.PublicKey `json:"user"`
	Mint             solana.PublicKey `json:"mint"`
	MintAmount       uint64           `json:"mint_amount"`
	SolAmount        uint64           `json:"sol_amount"`
	PoolMigrationFee uint64           `json:"pool_migration_fee"`
	BondingCurve     solana.PublicKey `json:"bonding_curve"`
	Timestamp        int64            `json:"timestamp"`
	Pool             solana.PublicKey `json:"pool"`
}

func (e *CompletePumpAmmMigrationEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.User = r.PublicKey("user")
	e.Mint = r.PublicKey("mint")
	e.MintAmount = r.U64("mint_amount")
	e.SolAmount = r.U64("sol_amount")
	e.PoolMigrationFee = r.U64("pool_migration_fee")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.Timestamp = r.I64("timestamp")
	e.Pool = r.PublicKey("pool")
}

func (e *CompletePumpAmmMigrationEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.User)
	w.PublicKey(e.Mint)
	w.U64(e.MintAmount)
	w.U64(e.SolAmount)
	w.U64(e.PoolMigrationFee)
	w.PublicKey(e.BondingCurve)
	w.I64(e.Timestamp)
	w.PublicKey(e.Pool)
}

type ExtendAccountEvent struct {
	Account     solana.PublicKey `json:"account"`
	User        solana.PublicKey `json:"user"`
	CurrentSize uint64           `json:"current_size"`
	NewSize     uint64           `json:"new_size"`
	Timestamp   int64            `json:"timestamp"`
}

func (e *ExtendAccountEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Account = r.PublicKey("account")
	e.User = r.PublicKey("user")
	e.CurrentSize = r.U64("current_size")
	e.NewSize = r.U64("new_size")
	e.Timestamp = r.I64("timestamp")
}

func (e *ExtendAccountEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Account)
	w.PublicKey(e.User)
	w.U64(e.CurrentSize)
	w.U64(e.NewSize)
	w.I64(e.Timestamp)
}

type SetCreatorEvent struct {
	Timestamp    int64            `json:"timestamp"`
	Mint         solana.PublicKey `json:"mint"`
	BondingCurve solana.PublicKey `json:"bonding_curve"`
	Creator      solana.PublicKey `json:"creator"`
}

func (e *SetCreatorEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.Creator = r.PublicKey("creator")
}

func (e *SetCreatorEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.PublicKey(e.Creator)
}

type SetMetaplexCreatorEvent struct {
	Timestamp    int64            `json:"timestamp"`
	Mint         solana.PublicKey `json:"mint"`
	BondingCurve solana.PublicKey `json:"bonding_curve"`
	Metadata     solana.PublicKey `json:"metadata"`
	Creator      solana.PublicKey `json:"creator"`
}

func (e *SetMetaplexCreatorEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.Metadata = r.PublicKey("metadata")
	e.Creator = r.PublicKey("creator")
}

func (e *SetMetaplexCreatorEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.PublicKey(e.Metadata)
	w.PublicKey(e.Creator)
}

type UpdateGlobalAuthorityEvent struct {
	Global       solana.PublicKey `json:"global"`
	Authority    solana.PublicKey `json:"authority"`
	NewAuthority solana.PublicKey `json:"new_authority"`
	Timestamp    int64            `json:"timestamp"`
}

func (e *UpdateGlobalAuthorityEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Global = r.PublicKey("global")
	e.Authority = r.PublicKey("authority")
	e.NewAuthority = r.PublicKey("new_authority")
	e.Timestamp = r.I64("timestamp")
}

func (e *UpdateGlobalAuthorityEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.Global)
	w.PublicKey(e.Authority)
	w.PublicKey(e.NewAuthority)
	w.I64(e.Timestamp)
}

type AdminSetCreatorEvent struct {
	Timestamp                int64            `json:"timestamp"`
	AdminSetCreatorAuthority solana.PublicKey `json:"admin_set_creator_authority"`
	Mint                     solana.PublicKey `json:"mint"`
	BondingCurve             solana.PublicKey `json:"bonding_curve"`
	OldCreator               solana.PublicKey `json:"old_creator"`
	NewCreator               solana.PublicKey `json:"new_creator"`
}

func (e *AdminSetCreatorEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.AdminSetCreatorAuthority = r.PublicKey("admin_set_creator_authority")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.OldCreator = r.PublicKey("old_creator")
	e.NewCreator = r.PublicKey("new_creator")
}

func (e *AdminSetCreatorEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.AdminSetCreatorAuthority)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.PublicKey(e.OldCreator)
	w.PublicKey(e.NewCreator)
}

type ClaimTokenIncentivesEvent struct {
	User               solana.PublicKey `json:"user"`
	Mint               solana.PublicKey `json:"mint"`
	Amount             uint64           `json:"amount"`
	Timestamp          int64            `json:"timestamp"`
	TotalClaimedTokens uint64           `json:"total_claimed_tokens"`
	CurrentSolVolume   uint64           `json:"current_sol_volume"`
}

func (e *ClaimTokenIncentivesEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.User = r.PublicKey("user")
	e.Mint = r.PublicKey("mint")
	e.Amount = r.U64("amount")
	e.Timestamp = r.I64("timestamp")
	e.TotalClaimedTokens = r.U64("total_claimed_tokens")
	e.CurrentSolVolume = r.U64("current_sol_volume")
}

func (e *ClaimTokenIncentivesEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.User)
	w.PublicKey(e.Mint)
	w.U64(e.Amount)
	w.I64(e.Timestamp)
	w.U64(e.TotalClaimedTokens)
	w.U64(e.CurrentSolVolume)
}

type DistributeCreatorFeesEvent struct {
	Timestamp     int64            `json:"timestamp"`
	Mint          solana.PublicKey `json:"mint"`
	BondingCurve  solana.PublicKey `json:"bonding_curve"`
	SharingConfig solana.PublicKey `json:"sharing_config"`
	Admin         solana.PublicKey `json:"admin"`
	Distributed   uint64           `json:"distributed"`
}

func (e *DistributeCreatorFeesEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.Mint = r.PublicKey("mint")
	e.BondingCurve = r.PublicKey("bonding_curve")
	e.SharingConfig = r.PublicKey("sharing_config")
	e.Admin = r.PublicKey("admin")
	e.Distributed = r.U64("distributed")
}

func (e *DistributeCreatorFeesEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.Mint)
	w.PublicKey(e.BondingCurve)
	w.PublicKey(e.SharingConfig)
	w.PublicKey(e.Admin)
	w.U64(e.Distributed)
}

type MinimumDistributableFeeEvent struct {
	MinimumRequired   uint64 `json:"minimum_required"`
	DistributableFees uint64 `json:"distributable_fees"`
	CanDistribute     bool   `json:"can_distribute"`
}

func (e *MinimumDistributableFeeEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.MinimumRequired = r.U64("minimum_required")
	e.DistributableFees = r.U64("distributable_fees")
	e.CanDistribute = r.Bool("can_distribute")
}

func (e *MinimumDistributableFeeEvent) MarshalWithWriter(w *borsh.Writer) {
	w.U64(e.MinimumRequired)
	w.U64(e.DistributableFees)
	w.Bool(e.CanDistribute)
}

type ReservedFeeRecipientsEvent struct {
	Timestamp             int64                                 `json:"timestamp"`
	ReservedFeeRecipient  solana.PublicKey                      `json:"reserved_fee_recipient"`
	ReservedFeeRecipients [GlobalFeeRecipients]solana.PublicKey `json:"reserved_fee_recipients"`
}

func (e *ReservedFeeRecipientsEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.Timestamp = r.I64("timestamp")
	e.ReservedFeeRecipient = r.PublicKey("reserved_fee_recipient")
	borsh.ReadArray(r, "reserved_fee_recipients", e.ReservedFeeRecipients[:], (*borsh.Reader).PublicKey)
}

func (e *ReservedFeeRecipientsEvent) MarshalWithWriter(w *borsh.Writer) {
	w.I64(e.Timestamp)
	w.PublicKey(e.ReservedFeeRecipient)
	borsh.WriteArray(w, e.ReservedFeeRecipients[:], (*borsh.Writer).PublicKey)
}

type SyncUserVolumeAccumulatorEvent struct {
	User                     solana.PublicKey `json:"user"`
	TotalClaimedTokensBefore uint64           `json:"total_claimed_tokens_before"`
	TotalClaimedTokensAfter  uint64           `json:"total_claimed_tokens_after"`
	Timestamp                int64            `json:"timestamp"`
}

func (e *SyncUserVolumeAccumulatorEvent) UnmarshalWithReader(r *borsh.Reader) {
	e.User = r.PublicKey("user")
	e.TotalClaimedTokensBefore = r.U64("total_claimed_tokens_before")
	e.TotalClaimedTokensAfter = r.U64("total_claimed_tokens_after")
	e.Timestamp = r.I64("timestamp")
}

func (e *SyncUserVolumeAccumulatorEvent) MarshalWithWriter(w *borsh.Writer) {
	w.PublicKey(e.User)
	w.U64(e.TotalClaimedTokensBefore)
	w.U64(e.TotalClaimedTokensAfter)
	w.I64(e.Timestamp)
}
