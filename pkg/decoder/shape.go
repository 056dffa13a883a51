package decoder

import (
	"fmt"
	"reflect"

	"github.com/lugondev/solcodec/pkg/borsh"
)

// TrailingField names the pseudo-field reported when strict decoding finds
// bytes after the last field.
const TrailingField = "<trailing>"

// Shape describes one record type: its name, its tag and how to move it
// between bytes and a Go value.
type Shape struct {
	name   string
	tag    Discriminator
	typ    reflect.Type
	decode func(r *borsh.Reader) any
	encode func(w *borsh.Writer, v any) bool
}

// NewShape builds a Shape for T. Decoded values are *T; Encode accepts T or *T.
func NewShape[T any, PT interface {
	*T
	borsh.Unmarshaler
	borsh.Marshaler
}](name string, tag Discriminator) *Shape {
	return &Shape{
		name: name,
		tag:  tag,
		typ:  reflect.TypeFor[T](),
		decode: func(r *borsh.Reader) any {
			v := new(T)
			PT(v).UnmarshalWithReader(r)
			return v
		},
		encode: func(w *borsh.Writer, v any) bool {
			switch x := v.(type) {
			case *T:
				if x == nil {
					return false
				}
				PT(x).MarshalWithWriter(w)
			case T:
				PT(&x).MarshalWithWriter(w)
			default:
				return false
			}
			return true
		},
	}
}

// AccountShape builds a Shape tagged with the Anchor account discriminator of name.
func AccountShape[T any, PT interface {
	*T
	borsh.Unmarshaler
	borsh.Marshaler
}](name string) *Shape {
	return NewShape[T, PT](name, AccountDiscriminator(name))
}

// EventShape builds a Shape tagged with the Anchor event discriminator of name.
func EventShape[T any, PT interface {
	*T
	borsh.Unmarshaler
	borsh.Marshaler
}](name string) *Shape {
	return NewShape[T, PT](name, EventDiscriminator(name))
}

func (s *Shape) Name() string {
	return s.name
}

func (s *Shape) Discriminator() Discriminator {
	return s.tag
}

// Type returns the record's struct type.
func (s *Shape) Type() reflect.Type {
	return s.typ
}

// New returns a pointer to a zero value of the record type.
func (s *Shape) New() any {
	return reflect.New(s.typ).Interface()
}

// DecodeBody decodes the bytes that follow the tag. Errors carry the shape name.
func (s *Shape) DecodeBody(body []byte) (any, error) {
	return s.decodeBody(body, false)
}

func (s *Shape) decodeBody(body []byte, strict bool) (any, error) {
	r := borsh.NewReader(body)
	v := s.decode(r)
	if err := r.Err(); err != nil {
		return nil, borsh.WithShape(err, s.name)
	}
	if strict && r.Remaining() > 0 {
		return nil, &borsh.DecodeError{
			Kind:   borsh.KindMalformedField,
			Shape:  s.name,
			Field:  TrailingField,
			Reason: fmt.Sprintf("%d unread bytes", r.Remaining()),
		}
	}
	return v, nil
}

// EncodeBody encodes v without the tag.
func (s *Shape) EncodeBody(v any) ([]byte, error) {
	w := borsh.NewWriter()
	if !s.encode(w, v) {
		return nil, &borsh.EncodeError{Reason: fmt.Sprintf("%s cannot encode %T", s.name, v)}
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Encode encodes v with its tag.
func (s *Shape) Encode(v any) ([]byte, error) {
	w := borsh.NewWriter()
	w.Raw(s.tag[:])
	if !s.encode(w, v) {
		return nil, &borsh.EncodeError{Reason: fmt.Sprintf("%s cannot encode %T", s.name, v)}
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
