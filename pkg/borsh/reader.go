// Package borsh implements the field-level codec for Borsh-encoded Solana
// account and event records.
//
// Reader and Writer carry a sticky error: after the first failure every
// further call is a no-op that returns a zero value, and Err reports the
// failure with the dotted path of the field that caused it. Record types
// implement Unmarshaler and Marshaler on top of them:
//
//	func (e *SwapEvent) UnmarshalWithReader(r *borsh.Reader) {
//		e.Pool = r.PublicKey("pool")
//		e.AmountIn = r.U64("amount_in")
//	}
package borsh

import (
	"math"
	"strings"
	"unicode/utf8"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Unmarshaler is implemented by record types that decode themselves from a Reader.
type Unmarshaler interface {
	UnmarshalWithReader(r *Reader)
}

// Reader decodes Borsh fields from an untrusted buffer.
type Reader struct {
	dec  *bin.Decoder
	path []string
	err  error
}

// NewReader returns a Reader over data. The buffer is borrowed; every value
// the Reader returns is a copy.
func NewReader(data []byte) *Reader {
	return &Reader{dec: bin.NewBorshDecoder(data)}
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Failed reports whether a previous read failed.
func (r *Reader) Failed() bool {
	return r.err != nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.dec.Remaining()
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return int(r.dec.Position())
}

// Fail records a malformed-field error for field unless an error is already set.
// Record types use it for constraints the primitives cannot express.
func (r *Reader) Fail(field, reason string) {
	if r.err == nil {
		r.err = malformed(r.fieldPath(field), reason)
	}
}

func (r *Reader) fieldPath(field string) string {
	if len(r.path) == 0 {
		return field
	}
	if field == "" {
		return strings.Join(r.path, ".")
	}
	return strings.Join(r.path, ".") + "." + field
}

func (r *Reader) push(segment string) {
	r.path = append(r.path, segment)
}

func (r *Reader) pop() {
	r.path = r.path[:len(r.path)-1]
}

// need checks that n bytes remain, recording a truncation error otherwise.
func (r *Reader) need(field string, n int) bool {
	if r.err != nil {
		return false
	}
	if have := r.dec.Remaining(); have < n {
		r.err = truncated(r.fieldPath(field), n, have)
		return false
	}
	return true
}

// library errors cannot occur after need succeeds; keep them anyway.
func (r *Reader) check(field string, err error) bool {
	if err != nil && r.err == nil {
		r.err = malformed(r.fieldPath(field), err.Error())
	}
	return r.err == nil
}

// U8 reads an unsigned byte.
func (r *Reader) U8(field string) uint8 {
	if !r.need(field, 1) {
		return 0
	}
	v, err := r.dec.ReadByte()
	if !r.check(field, err) {
		return 0
	}
	return v
}

// I8 reads a signed byte.
func (r *Reader) I8(field string) int8 {
	return int8(r.U8(field))
}

// U16 reads a little-endian uint16.
func (r *Reader) U16(field string) uint16 {
	if !r.need(field, 2) {
		return 0
	}
	v, err := r.dec.ReadUint16(bin.LE)
	if !r.check(field, err) {
		return 0
	}
	return v
}

// I16 reads a little-endian int16.
func (r *Reader) I16(field string) int16 {
	return int16(r.U16(field))
}

// U32 reads a little-endian uint32.
func (r *Reader) U32(field string) uint32 {
	if !r.need(field, 4) {
		return 0
	}
	v, err := r.dec.ReadUint32(bin.LE)
	if !r.check(field, err) {
		return 0
	}
	return v
}

// I32 reads a little-endian int32.
func (r *Reader) I32(field string) int32 {
	return int32(r.U32(field))
}

// U64 reads a little-endian uint64.
func (r *Reader) U64(field string) uint64 {
	if !r.need(field, 8) {
		return 0
	}
	v, err := r.dec.ReadUint64(bin.LE)
	if !r.check(field, err) {
		return 0
	}
	return v
}

// I64 reads a little-endian int64.
func (r *Reader) I64(field string) int64 {
	return int64(r.U64(field))
}

// U128 reads a little-endian unsigned 128-bit integer.
func (r *Reader) U128(field string) Uint128 {
	if !r.need(field, 16) {
		return Uint128{}
	}
	v, err := r.dec.ReadUint128(bin.LE)
	if !r.check(field, err) {
		return Uint128{}
	}
	return Uint128{Lo: v.Lo, Hi: v.Hi}
}

// I128 reads a little-endian signed 128-bit integer.
func (r *Reader) I128(field string) Int128 {
	u := r.U128(field)
	return Int128{Lo: u.Lo, Hi: u.Hi}
}

// F64 reads a little-endian IEEE-754 double. NaN is malformed.
func (r *Reader) F64(field string) float64 {
	if !r.need(field, 8) {
		return 0
	}
	v, err := r.dec.ReadFloat64(bin.LE)
	if !r.check(field, err) {
		return 0
	}
	if math.IsNaN(v) {
		r.err = malformed(r.fieldPath(field), "NaN float")
		return 0
	}
	return v
}

// Bool reads a boolean. Any byte other than 0 or 1 is malformed.
func (r *Reader) Bool(field string) bool {
	b := r.U8(field)
	if r.err != nil {
		return false
	}
	if b > 1 {
		r.err = malformed(r.fieldPath(field), "invalid bool byte")
		return false
	}
	return b == 1
}

// FixedBytes fills dst with exactly len(dst) bytes.
func (r *Reader) FixedBytes(field string, dst []byte) {
	if !r.need(field, len(dst)) {
		return
	}
	b, err := r.dec.ReadBytes(len(dst))
	if !r.check(field, err) {
		return
	}
	copy(dst, b)
}

// PublicKey reads a 32-byte public key.
func (r *Reader) PublicKey(field string) solana.PublicKey {
	var pk solana.PublicKey
	r.FixedBytes(field, pk[:])
	if r.err != nil {
		return solana.PublicKey{}
	}
	return pk
}

// Len reads a u32 element count and checks it against the remaining bytes.
// Every Borsh element occupies at least one byte, so a count larger than the
// remainder cannot be satisfied.
func (r *Reader) Len(field string) int {
	n := r.U32(field)
	if r.err != nil {
		return 0
	}
	if have := r.dec.Remaining(); uint64(n) > uint64(have) {
		r.err = &DecodeError{
			Kind:   KindTruncated,
			Field:  r.fieldPath(field),
			Reason: "length prefix exceeds remaining bytes",
			Need:   int(n),
			Have:   have,
		}
		return 0
	}
	return int(n)
}

// ByteVec reads a u32 length-prefixed byte sequence.
func (r *Reader) ByteVec(field string) []byte {
	n := r.Len(field)
	if r.err != nil {
		return nil
	}
	out := make([]byte, n)
	r.FixedBytes(field, out)
	if r.err != nil {
		return nil
	}
	return out
}

// String reads a u32 length-prefixed UTF-8 string.
func (r *Reader) String(field string) string {
	b := r.ByteVec(field)
	if r.err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		r.err = malformed(r.fieldPath(field), "invalid utf-8")
		return ""
	}
	return string(b)
}

// Option reads a presence flag. The caller reads the payload when it returns true.
func (r *Reader) Option(field string) bool {
	b := r.U8(field)
	if r.err != nil {
		return false
	}
	if b > 1 {
		r.err = malformed(r.fieldPath(field), "invalid option flag")
		return false
	}
	return b == 1
}

// Enum reads a one-byte variant index and checks it against the variant count.
func (r *Reader) Enum(field string, variants uint8) uint8 {
	v := r.U8(field)
	if r.err != nil {
		return 0
	}
	if v >= variants {
		r.err = malformed(r.fieldPath(field), "enum variant out of range")
		return 0
	}
	return v
}

// Padding skips n bytes of fixed padding.
func (r *Reader) Padding(field string, n int) {
	if !r.need(field, n) {
		return
	}
	r.check(field, r.dec.SkipBytes(uint(n)))
}

// VecPadding skips a u32 length-prefixed padding sequence of elemSize-byte elements.
func (r *Reader) VecPadding(field string, elemSize int) {
	n := r.Len(field)
	if r.err != nil {
		return
	}
	r.Padding(field, n*elemSize)
}

// Struct decodes a nested record, prefixing field paths with field.
func (r *Reader) Struct(field string, v Unmarshaler) {
	if r.err != nil {
		return
	}
	r.push(field)
	v.UnmarshalWithReader(r)
	r.pop()
}
