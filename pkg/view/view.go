// Package view provides zero-copy access to discriminator-prefixed records.
package view

import "errors"

// TagSize is the length of the leading discriminator.
const TagSize = 8

// ErrShortBuffer is returned when a buffer cannot hold a discriminator.
var ErrShortBuffer = errors.New("buffer shorter than discriminator")

// RecordView splits a raw record into its tag and body without copying the body.
type RecordView struct {
	buffer []byte
	tag    [TagSize]byte
}

// NewRecordView returns a view over buffer, which must hold at least TagSize bytes.
func NewRecordView(buffer []byte) (RecordView, error) {
	if len(buffer) < TagSize {
		return RecordView{}, ErrShortBuffer
	}
	var tag [TagSize]byte
	copy(tag[:], buffer[:TagSize])
	return RecordView{buffer: buffer, tag: tag}, nil
}

// Tag returns the leading discriminator.
func (v RecordView) Tag() [TagSize]byte {
	return v.tag
}

// HasTag reports whether the record starts with tag.
func (v RecordView) HasTag(tag [TagSize]byte) bool {
	return v.tag == tag
}

// Body returns the bytes after the discriminator. It aliases the original buffer.
func (v RecordView) Body() []byte {
	return v.buffer[TagSize:]
}

// Bytes returns the whole record.
func (v RecordView) Bytes() []byte {
	return v.buffer
}

// Inner treats the body as another tagged record. Anchor's emit_cpi wraps
// events this way: an instruction tag, then the event tag, then the payload.
func (v RecordView) Inner() (RecordView, error) {
	return NewRecordView(v.Body())
}
