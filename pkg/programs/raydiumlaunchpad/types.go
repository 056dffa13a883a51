package raydiumlaunchpad

import (
	"fmt"

	"github.com/lugondev/solcodec/pkg/borsh"
)

type PoolStatus uint8

const (
	PoolStatusFund PoolStatus = iota
	PoolStatusMigrate
	PoolStatusTrade
)

func (PoolStatus) EnumVariants() uint8 { return 3 }

func (s PoolStatus) String() string {
	switch s {
	case PoolStatusFund:
		return "Fund"
	case PoolStatusMigrate:
		return "Migrate"
	case PoolStatusTrade:
		return "Trade"
	}
	return fmt.Sprintf("PoolStatus(%d)", uint8(s))
}

func (s PoolStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type TradeDirection uint8

const (
	TradeDirectionBuy TradeDirection = iota
	TradeDirectionSell
)

func (TradeDirection) EnumVariants() uint8 { return 2 }

func (d TradeDirection) String() string {
	switch d {
	case TradeDirectionBuy:
		return "Buy"
	case TradeDirectionSell:
		return "Sell"
	}
	return fmt.Sprintf("TradeDirection(%d)", uint8(d))
}

func (d TradeDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type MintParams struct {
	Decimals uint8  `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	URI      string `json:"uri"`
}

func (p *MintParams) UnmarshalWithReader(r *borsh.Reader) {
	p.Decimals = r.U8("decimals")
	p.Name = r.String("name")
	p.Symbol = r.String("symbol")
	p.URI = r.String("uri")
}

func (p *MintParams) MarshalWithWriter(w *borsh.Writer) {
	w.U8(p.Decimals)
	w.String("name", p.Name)
	w.String("symbol", p.Symbol)
	w.String("uri", p.URI)
}

type ConstantCurve struct {
	Supply                uint64 `json:"supply"`
	TotalBaseSell         uint64 `json:"total_base_sell"`
	TotalQuoteFundRaising uint64 `json:"total_quote_fund_raising"`
	MigrateType           uint8  `json:"migrate_type"`
}

func (c *ConstantCurve) UnmarshalWithReader(r *borsh.Reader) {
	c.Supply = r.U64("supply")
	c.TotalBaseSell = r.U64("total_base_sell")
	c.TotalQuoteFundRaising = r.U64("total_quote_fund_raising")
	c.MigrateType = r.U8("migrate_type")
}

func (c *ConstantCurve) MarshalWithWriter(w *borsh.Writer) {
	w.U64(c.Supply)
	w.U64(c.TotalBaseSell)
	w.U64(c.TotalQuoteFundRaising)
	w.U8(c.MigrateType)
}

// FixedCurve and LinearCurve share a layout.
type FixedCurve struct {
	Supply                uint64 `json:"supply"`
	TotalQuoteFundRaising uint64 `json:"total_quote_fund_raising"`
	MigrateType           uint8  `json:"migrate_type"`
}

func (c *FixedCurve) UnmarshalWithReader(r *borsh.Reader) {
	c.Supply = r.U64("supply")
	c.TotalQuoteFundRaising = r.U64("total_quote_fund_raising")
	c.MigrateType = r.U8("migrate_type")
}

func (c *FixedCurve) MarshalWithWriter(w *borsh.Writer) {
	w.U64(c.Supply)
	w.U64(c.TotalQuoteFundRaising)
	w.U8(c.MigrateType)
}

type LinearCurve FixedCurve

func (c *LinearCurve) UnmarshalWithReader(r *borsh.Reader) {
	(*FixedCurve)(c).UnmarshalWithReader(r)
}

func (c *LinearCurve) MarshalWithWriter(w *borsh.Writer) {
	(*FixedCurve)(c).MarshalWithWriter(w)
}

type CurveKind uint8

const (
	CurveConstant CurveKind = iota
	CurveFixed
	CurveLinear
)

func (CurveKind) EnumVariants() uint8 { return 3 }

func (k CurveKind) String() string {
	switch k {
	case CurveConstant:
		return "Constant"
	case CurveFixed:
		return "Fixed"
	case CurveLinear:
		return "Linear"
	}
	return fmt.Sprintf("CurveKind(%d)", uint8(k))
}

func (k CurveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// CurveParams is a tagged union. Kind selects which payload is on the wire;
// the other pointers are nil after decoding. Encoding a nil payload writes
// its zero value.
type CurveParams struct {
	Kind     CurveKind      `json:"kind"`
	Constant *ConstantCurve `json:"constant,omitempty"`
	Fixed    *FixedCurve    `json:"fixed,omitempty"`
	Linear   *LinearCurve   `json:"linear,omitempty"`
}

func (c *CurveParams) UnmarshalWithReader(r *borsh.Reader) {
	c.Kind = CurveKind(r.Enum("kind", c.Kind.EnumVariants()))
	if r.Failed() {
		return
	}
	switch c.Kind {
	case CurveConstant:
		c.Constant = new(ConstantCurve)
		r.Struct("constant", c.Constant)
	case CurveFixed:
		c.Fixed = new(FixedCurve)
		r.Struct("fixed", c.Fixed)
	case CurveLinear:
		c.Linear = new(LinearCurve)
		r.Struct("linear", c.Linear)
	}
}

func (c *CurveParams) MarshalWithWriter(w *borsh.Writer) {
	w.Enum("kind", uint8(c.Kind), c.Kind.EnumVariants())
	switch c.Kind {
	case CurveConstant:
		w.Struct(orZero(c.Constant))
	case CurveFixed:
		w.Struct(orZero(c.Fixed))
	case CurveLinear:
		w.Struct(orZero(c.Linear))
	}
}

func orZero[T any, PT interface {
	*T
	borsh.Marshaler
}](p PT) PT {
	if p == nil {
		return PT(new(T))
	}
	return p
}

type VestingParams struct {
	TotalLockedAmount uint64 `json:"total_locked_amount"`
	CliffPeriod       uint64 `json:"cliff_period"`
	UnlockPeriod      uint64 `json:"unlock_period"`
}

func (p *VestingParams) UnmarshalWithReader(r *borsh.Reader) {
	p.TotalLockedAmount = r.U64("total_locked_amount")
	p.CliffPeriod = r.U64("cliff_period")
	p.UnlockPeriod = r.U64("unlock_period")
}

func (p *VestingParams) MarshalWithWriter(w *borsh.Writer) {
	w.U64(p.TotalLockedAmount)
	w.U64(p.CliffPeriod)
	w.U64(p.UnlockPeriod)
}

type VestingSchedule struct {
	TotalLockedAmount    uint64 `json:"total_locked_amount"`
	CliffPeriod          uint64 `json:"cliff_period"`
	UnlockPeriod         uint64 `json:"unlock_period"`
	StartTime            uint64 `json:"start_time"`
	AllocatedShareAmount uint64 `json:"allocated_share_amount"`
}

func (s *VestingSchedule) UnmarshalWithReader(r *borsh.Reader) {
	s.TotalLockedAmount = r.U64("total_locked_amount")
	s.CliffPeriod = r.U64("cliff_period")
	s.UnlockPeriod = r.U64("unlock_period")
	s.StartTime = r.U64("start_time")
	s.AllocatedShareAmount = r.U64("allocated_share_amount")
}

func (s *VestingSchedule) MarshalWithWriter(w *borsh.Writer) {
	w.U64(s.TotalLockedAmount)
	w.U64(s.CliffPeriod)
	w.U64(s.UnlockPeriod)
	w.U64(s.StartTime)
	w.U64(s.AllocatedShareAmount)
}
