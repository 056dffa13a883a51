package borsh

import (
	"bytes"
	"math"
	"unicode/utf8"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Marshaler is implemented by record types that encode themselves to a Writer.
type Marshaler interface {
	MarshalWithWriter(w *Writer)
}

// Writer encodes Borsh fields into an in-memory buffer.
type Writer struct {
	buf bytes.Buffer
	enc *bin.Encoder
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.enc = bin.NewBorshEncoder(&w.buf)
	return w
}

// Bytes returns the encoded bytes. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Size returns the number of bytes written.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Err returns the first error encountered, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Fail records an encode error unless one is already set.
func (w *Writer) Fail(field, reason string) {
	if w.err == nil {
		w.err = &EncodeError{Field: field, Reason: reason}
	}
}

func (w *Writer) keep(err error) {
	if err != nil && w.err == nil {
		w.err = &EncodeError{Reason: err.Error()}
	}
}

// Raw appends b verbatim.
func (w *Writer) Raw(b []byte) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteBytes(b, false))
}

// U8 writes an unsigned byte.
func (w *Writer) U8(v uint8) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteUint8(v))
}

// I8 writes a signed byte.
func (w *Writer) I8(v int8) {
	w.U8(uint8(v))
}

// U16 writes a little-endian uint16.
func (w *Writer) U16(v uint16) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteUint16(v, bin.LE))
}

// I16 writes a little-endian int16.
func (w *Writer) I16(v int16) {
	w.U16(uint16(v))
}

// U32 writes a little-endian uint32.
func (w *Writer) U32(v uint32) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteUint32(v, bin.LE))
}

// I32 writes a little-endian int32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// U64 writes a little-endian uint64.
func (w *Writer) U64(v uint64) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteUint64(v, bin.LE))
}

// I64 writes a little-endian int64.
func (w *Writer) I64(v int64) {
	w.U64(uint64(v))
}

// U128 writes a little-endian unsigned 128-bit integer.
func (w *Writer) U128(v Uint128) {
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteUint128(bin.Uint128{Lo: v.Lo, Hi: v.Hi}, bin.LE))
}

// I128 writes a little-endian signed 128-bit integer.
func (w *Writer) I128(v Int128) {
	w.U128(Uint128{Lo: v.Lo, Hi: v.Hi})
}

// F64 writes a little-endian IEEE-754 double. NaN cannot be encoded.
func (w *Writer) F64(field string, v float64) {
	if math.IsNaN(v) {
		w.Fail(field, "NaN float")
		return
	}
	if w.err != nil {
		return
	}
	w.keep(w.enc.WriteFloat64(v, bin.LE))
}

// Bool writes 1 or 0.
func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

// FixedBytes writes b without a length prefix.
func (w *Writer) FixedBytes(b []byte) {
	w.Raw(b)
}

// PublicKey writes a 32-byte public key.
func (w *Writer) PublicKey(pk solana.PublicKey) {
	w.Raw(pk[:])
}

// Len writes a u32 element count.
func (w *Writer) Len(field string, n int) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		w.Fail(field, "sequence too long")
		return
	}
	w.U32(uint32(n))
}

// ByteVec writes a u32 length-prefixed byte sequence.
func (w *Writer) ByteVec(field string, b []byte) {
	w.Len(field, len(b))
	w.Raw(b)
}

// String writes a u32 length-prefixed UTF-8 string.
func (w *Writer) String(field string, s string) {
	if !utf8.ValidString(s) {
		w.Fail(field, "invalid utf-8")
		return
	}
	w.ByteVec(field, []byte(s))
}

// Option writes a presence flag.
func (w *Writer) Option(present bool) {
	w.Bool(present)
}

// Enum writes a one-byte variant index after checking it against the variant count.
func (w *Writer) Enum(field string, v, variants uint8) {
	if v >= variants {
		w.Fail(field, "enum variant out of range")
		return
	}
	w.U8(v)
}

// Padding writes n zero bytes.
func (w *Writer) Padding(n int) {
	if n <= 0 {
		return
	}
	w.Raw(make([]byte, n))
}

// VecPadding writes an empty length-prefixed padding sequence.
func (w *Writer) VecPadding() {
	w.U32(0)
}

// Struct encodes a nested record.
func (w *Writer) Struct(v Marshaler) {
	if w.err != nil {
		return
	}
	v.MarshalWithWriter(w)
}
