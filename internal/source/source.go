// Package source frames raw account and event payloads for the decode
// pipeline. Every Source yields Payloads one at a time and returns io.EOF
// when it is exhausted.
package source

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	apperrors "github.com/lugondev/solcodec/internal/errors"
	"github.com/lugondev/solcodec/pkg/buffer"
	"github.com/lugondev/solcodec/pkg/decoder"
)

// Payload is one framed record awaiting dispatch.
type Payload struct {
	// Index counts payloads from zero in source order.
	Index     int
	Program   string
	Namespace decoder.Namespace
	Data      []byte
	// Origin says where the payload came from, e.g. "line 4" or an account address.
	Origin string
	// Err is set when the payload could not be framed. Data is nil then.
	Err error
}

// Source yields payloads in order.
type Source interface {
	// Next returns the next payload, or io.EOF when there are no more.
	Next(ctx context.Context) (Payload, error)
}

// Encoding is the text encoding of a payload.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
	EncodingBase58 Encoding = "base58"
)

// ParseEncoding accepts hex, base64 and base58.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(s))); e {
	case EncodingHex, EncodingBase64, EncodingBase58:
		return e, nil
	}
	return "", apperrors.InvalidInput("encoding", fmt.Errorf("unsupported encoding %q", s))
}

// Decode converts text to bytes. Hex input may carry a 0x prefix.
func (e Encoding) Decode(text string) ([]byte, error) {
	switch e {
	case EncodingHex:
		text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
		return buffer.Decode(hex.DecodedLen(len(text)), func(dst []byte) (int, error) {
			return hex.Decode(dst, []byte(text))
		})
	case EncodingBase64:
		return buffer.Decode(base64.StdEncoding.DecodedLen(len(text)), func(dst []byte) (int, error) {
			return base64.StdEncoding.Decode(dst, []byte(text))
		})
	case EncodingBase58:
		return base58.Decode(text)
	}
	return nil, fmt.Errorf("unsupported encoding %q", e)
}

// Drain reads src until io.EOF.
func Drain(ctx context.Context, src Source) ([]Payload, error) {
	var out []Payload
	for {
		p, err := src.Next(ctx)
		if err != nil {
			if isEOF(err) {
				return out, nil
			}
			return out, err
		}
		out = append(out, p)
	}
}
