package borsh

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer stored as two little-endian halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// MaxUint128 is the largest Uint128.
var MaxUint128 = Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}

// U128 builds a Uint128 from a uint64.
func U128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// I128 builds an Int128 from an int64, sign-extending the high half.
func I128(v int64) Int128 {
	hi := uint64(0)
	if v < 0 {
		hi = math.MaxUint64
	}
	return Int128{Lo: uint64(v), Hi: hi}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// BigInt returns u as a big.Int.
func (u Uint128) BigInt() *big.Int {
	n := new(big.Int).SetUint64(u.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.BigInt().String()
}

// MarshalJSON encodes u as a quoted decimal string; 128-bit values do not fit a JSON number.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(u.String())), nil
}

// UnmarshalJSON parses a quoted or bare decimal.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	n, err := parseJSONBig(data)
	if err != nil {
		return err
	}
	v, err := Uint128FromBig(n)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (u Uint128) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// Uint128FromBig converts n, failing if it is negative or wider than 128 bits.
func Uint128FromBig(n *big.Int) (Uint128, error) {
	if n.Sign() < 0 || n.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("value %s out of range for u128", n)
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(n, 64)
	return Uint128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

// IsNegative reports whether i is below zero.
func (i Int128) IsNegative() bool {
	return i.Hi>>63 == 1
}

// BigInt returns i as a big.Int.
func (i Int128) BigInt() *big.Int {
	n := Uint128{Lo: i.Lo, Hi: i.Hi}.BigInt()
	if i.IsNegative() {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return n
}

// String returns the decimal representation.
func (i Int128) String() string {
	return i.BigInt().String()
}

// MarshalJSON encodes i as a quoted decimal string.
func (i Int128) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(i.String())), nil
}

// UnmarshalJSON parses a quoted or bare decimal.
func (i *Int128) UnmarshalJSON(data []byte) error {
	n, err := parseJSONBig(data)
	if err != nil {
		return err
	}
	v, err := Int128FromBig(n)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i Int128) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// Int128FromBig converts n, failing if it does not fit in 128 bits.
func Int128FromBig(n *big.Int) (Int128, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 127)
	if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
		return Int128{}, fmt.Errorf("value %s out of range for i128", n)
	}
	v := new(big.Int).Set(n)
	if v.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	u, err := Uint128FromBig(v)
	if err != nil {
		return Int128{}, err
	}
	return Int128{Lo: u.Lo, Hi: u.Hi}, nil
}

func parseJSONBig(data []byte) (*big.Int, error) {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
