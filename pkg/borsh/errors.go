package borsh

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a DecodeError.
type Kind int

const (
	// KindTruncated means the buffer ended before a field was complete.
	KindTruncated Kind = iota + 1
	// KindUnknownDiscriminator means the leading tag matched no registered shape.
	KindUnknownDiscriminator
	// KindMalformedField means a field violated its declared constraints.
	KindMalformedField
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindUnknownDiscriminator:
		return "unknown discriminator"
	case KindMalformedField:
		return "malformed field"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any DecodeError of the same kind.
var (
	ErrTruncated            = &DecodeError{Kind: KindTruncated}
	ErrUnknownDiscriminator = &DecodeError{Kind: KindUnknownDiscriminator}
	ErrMalformedField       = &DecodeError{Kind: KindMalformedField}
)

// DecodeError is returned for any failure to decode an untrusted buffer.
type DecodeError struct {
	Kind Kind

	// Shape is the record shape being decoded, set by the dispatcher.
	Shape string

	// Field is the dotted path of the failing field, e.g. "pool_fees.dynamic_fee.bin_step".
	Field string

	// Tag is the offending discriminator for KindUnknownDiscriminator.
	Tag []byte

	// Reason is a short human-readable explanation.
	Reason string

	// Need and Have are byte counts for KindTruncated.
	Need int
	Have int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Shape != "" {
		b.WriteString(e.Shape)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	switch {
	case e.Kind == KindUnknownDiscriminator:
		fmt.Fprintf(&b, " %s", hex.EncodeToString(e.Tag))
	case e.Reason != "":
		b.WriteString(": ")
		b.WriteString(e.Reason)
	case e.Kind == KindTruncated:
		fmt.Fprintf(&b, ": need %d bytes, have %d", e.Need, e.Have)
	}
	return b.String()
}

// Is reports whether target is a DecodeError of the same kind.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithShape returns a copy of err annotated with the shape name.
// Errors that are not a *DecodeError are wrapped as malformed.
func WithShape(err error, shape string) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		return &DecodeError{Kind: KindMalformedField, Shape: shape, Reason: err.Error()}
	}
	annotated := *de
	annotated.Shape = shape
	return &annotated
}

func truncated(field string, need, have int) *DecodeError {
	return &DecodeError{Kind: KindTruncated, Field: field, Need: need, Have: have}
}

func malformed(field, reason string) *DecodeError {
	return &DecodeError{Kind: KindMalformedField, Field: field, Reason: reason}
}

// EncodeError is returned when a value cannot be represented on the wire.
type EncodeError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	if e.Field == "" {
		return "encode: " + e.Reason
	}
	return fmt.Sprintf("encode %s: %s", e.Field, e.Reason)
}
