// Package errors defines the coded errors reported by the solcodec command
// and its collaborators.
//
// Codec failures stay as *borsh.DecodeError inside pkg/; a CodecError wraps
// them with a stable code once they reach the application layer.
package errors

import (
	"errors"
	"fmt"

	"github.com/lugondev/solcodec/pkg/borsh"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// Error codes.
const (
	ErrCodeUnknownProgram   = "UNKNOWN_PROGRAM"
	ErrCodeUnknownNamespace = "UNKNOWN_NAMESPACE"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeDecodeFailed     = "DECODE_FAILED"
	ErrCodeSinkFailed       = "SINK_FAILED"
	ErrCodeSourceFailed     = "SOURCE_FAILED"
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
)

// CodecError is an application error with a stable code.
type CodecError struct {
	// Code is one of the ErrCode constants.
	Code string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Details contains additional error context.
	Details map[string]any
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *CodecError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CodecError with the same code.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of e with cause attached.
func (e *CodecError) WithCause(cause error) *CodecError {
	c := *e
	c.Cause = cause
	return &c
}

// WithDetails returns a copy of e with details attached.
func (e *CodecError) WithDetails(details map[string]any) *CodecError {
	c := *e
	c.Details = details
	return &c
}

// NewError creates a new CodecError.
func NewError(code, message string) *CodecError {
	return &CodecError{
		Code:    code,
		Message: message,
	}
}

// Sentinels for errors.Is; they match any CodecError with the same code.
var (
	ErrUnknownProgram   = NewError(ErrCodeUnknownProgram, "unknown program")
	ErrUnknownNamespace = NewError(ErrCodeUnknownNamespace, "unknown namespace")
	ErrInvalidInput     = NewError(ErrCodeInvalidInput, "invalid input")
	ErrDecodeFailed     = NewError(ErrCodeDecodeFailed, "decode failed")
	ErrSinkFailed       = NewError(ErrCodeSinkFailed, "sink failed")
	ErrSourceFailed     = NewError(ErrCodeSourceFailed, "source failed")
	ErrConfigInvalid    = NewError(ErrCodeConfigInvalid, "invalid configuration")
)

// InvalidInput reports input that could not be framed into a payload.
func InvalidInput(what string, cause error) *CodecError {
	return NewError(ErrCodeInvalidInput, fmt.Sprintf("invalid %s", what)).WithCause(cause)
}

// DecodeFailed wraps a codec failure. DecodeError fields are copied into Details.
func DecodeFailed(what string, cause error) *CodecError {
	e := NewError(ErrCodeDecodeFailed, fmt.Sprintf("failed to decode %s", what)).WithCause(cause)
	var de *borsh.DecodeError
	if errors.As(cause, &de) {
		details := map[string]any{"kind": de.Kind.String()}
		if de.Shape != "" {
			details["shape"] = de.Shape
		}
		if de.Field != "" {
			details["field"] = de.Field
		}
		if len(de.Tag) > 0 {
			details["tag"] = fmt.Sprintf("%x", de.Tag)
		}
		e.Details = details
	}
	return e
}

// SinkFailed wraps a sink write or close failure.
func SinkFailed(sink string, cause error) *CodecError {
	return NewError(ErrCodeSinkFailed, fmt.Sprintf("%s sink failed", sink)).WithCause(cause)
}

// SourceFailed wraps a payload source failure.
func SourceFailed(source string, cause error) *CodecError {
	return NewError(ErrCodeSourceFailed, fmt.Sprintf("%s source failed", source)).WithCause(cause)
}

// ConfigInvalid reports a configuration value outside its allowed set.
func ConfigInvalid(key string, value any) *CodecError {
	return NewError(ErrCodeConfigInvalid, fmt.Sprintf("invalid value %v for %s", value, key)).
		WithDetails(map[string]any{"key": key, "value": value})
}

// FromRegistry maps registry lookup failures onto coded errors. Other errors
// are returned unchanged.
func FromRegistry(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, decoder.ErrUnknownProgram):
		return ErrUnknownProgram.WithCause(err)
	case errors.Is(err, decoder.ErrUnknownNamespace):
		return ErrUnknownNamespace.WithCause(err)
	}
	return err
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
