// Package decoder routes discriminator-tagged Solana records to the shape
// that decodes them.
//
// A Table maps the 8-byte tags of one namespace (accounts or events) of one
// program to Shapes. Tables are built once and never mutated, so any number of
// goroutines may dispatch through the same Table without locking:
//
//	events := decoder.MustTable("raydium_clmm", decoder.Events,
//		decoder.EventShape[PoolCreatedEvent]("PoolCreatedEvent"),
//		decoder.EventShape[SwapEvent]("SwapEvent"),
//	)
//	record, err := events.Dispatch(data)
//
// A Registry groups the tables of several programs and resolves programs by
// name or program id.
package decoder

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// DiscriminatorSize is the length of every record tag.
const DiscriminatorSize = 8

// Discriminator is the 8-byte tag that prefixes an account or event record.
type Discriminator [DiscriminatorSize]byte

// AnchorDiscriminator returns the first 8 bytes of sha256("<namespace>:<name>"),
// the tag Anchor assigns to accounts and events.
func AnchorDiscriminator(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var d Discriminator
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// AccountDiscriminator returns the Anchor tag for an account type.
func AccountDiscriminator(name string) Discriminator {
	return AnchorDiscriminator("account", name)
}

// EventDiscriminator returns the Anchor tag for an event type.
func EventDiscriminator(name string) Discriminator {
	return AnchorDiscriminator("event", name)
}

// ParseDiscriminator parses 16 hex digits, with or without a 0x prefix.
func ParseDiscriminator(s string) (Discriminator, error) {
	var d Discriminator
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != hex.EncodedLen(DiscriminatorSize) {
		return d, fmt.Errorf("discriminator must be %d hex digits, got %d", hex.EncodedLen(DiscriminatorSize), len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("invalid discriminator %q: %w", s, err)
	}
	return d, nil
}

// NewDiscriminator copies the first 8 bytes of data. Shorter input is zero-padded.
func NewDiscriminator(data []byte) Discriminator {
	var d Discriminator
	copy(d[:], data)
	return d
}

// Bytes returns the tag as a slice.
func (d Discriminator) Bytes() []byte {
	return d[:]
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText encodes the tag as hex.
func (d Discriminator) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a hex tag.
func (d *Discriminator) UnmarshalText(text []byte) error {
	v, err := ParseDiscriminator(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Namespace separates the tag spaces of a program.
type Namespace string

const (
	Accounts Namespace = "accounts"
	Events   Namespace = "events"
)

// ParseNamespace accepts the singular and plural spellings.
func ParseNamespace(s string) (Namespace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "account", "accounts":
		return Accounts, nil
	case "event", "events":
		return Events, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNamespace, s)
}

// Discriminator derives the Anchor tag of name within the namespace.
func (n Namespace) Discriminator(name string) Discriminator {
	if n == Accounts {
		return AccountDiscriminator(name)
	}
	return EventDiscriminator(name)
}
