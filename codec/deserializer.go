// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/ava-labs/movetx/consts"
)

// Deserializer reads BCS encodings from a byte buffer through a cursor.
// Like Serializer it keeps the first error; once set, every read
// returns the zero value.
type Deserializer struct {
	buf    []byte
	offset int
	err    error
}

func NewDeserializer(b []byte) *Deserializer {
	return &Deserializer{buf: b}
}

// read returns the next n bytes and advances the cursor.
func (d *Deserializer) read(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.Remaining() < n {
		d.err = fmt.Errorf("%w: need %d have %d", ErrInsufficientBytes, n, d.Remaining())
		return nil
	}
	b := d.buf[d.offset : d.offset+n]
	d.offset += n
	return b
}

func (d *Deserializer) DeserializeU8() uint8 {
	b := d.read(consts.Uint8Len)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *Deserializer) DeserializeU16() uint16 {
	b := d.read(consts.Uint16Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (d *Deserializer) DeserializeU32() uint32 {
	b := d.read(consts.Uint32Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *Deserializer) DeserializeU64() uint64 {
	b := d.read(consts.Uint64Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *Deserializer) DeserializeU128() *big.Int {
	b := d.read(consts.Uint128Len)
	if b == nil {
		return new(big.Int)
	}
	var be [consts.Uint128Len]byte
	for i := range b {
		be[len(be)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be[:])
}

// DeserializeBool accepts only 0 and 1.
func (d *Deserializer) DeserializeBool() bool {
	b := d.read(consts.Uint8Len)
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		d.err = fmt.Errorf("%w: %d", ErrInvalidBool, b[0])
		return false
	}
}

// DeserializeUleb128 rejects encodings that overflow 32 bits or that
// carry redundant trailing zero groups.
func (d *Deserializer) DeserializeUleb128() uint32 {
	if d.err != nil {
		return 0
	}
	v, n, err := readUleb128(d.buf[d.offset:])
	if err != nil {
		d.err = err
		return 0
	}
	d.offset += n
	return v
}

// DeserializeLen reads a length or count prefix and checks that at
// least that many bytes remain. Every element occupies at least one
// byte, so a count larger than the remaining input is always truncated.
func (d *Deserializer) DeserializeLen() int {
	l := int(d.DeserializeUleb128())
	if d.err != nil {
		return 0
	}
	if l > d.Remaining() {
		d.err = fmt.Errorf("%w: length %d have %d", ErrInsufficientBytes, l, d.Remaining())
		return 0
	}
	return l
}

func (d *Deserializer) DeserializeBytes() []byte {
	l := d.DeserializeLen()
	b := d.read(l)
	if b == nil {
		return nil
	}
	out := make([]byte, l)
	copy(out, b)
	return out
}

func (d *Deserializer) DeserializeStr() string {
	b := d.DeserializeBytes()
	if d.err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		d.err = ErrInvalidUTF8
		return ""
	}
	return string(b)
}

func (d *Deserializer) DeserializeFixedBytes(n int) []byte {
	b := d.read(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// DeserializeVariant reads a discriminant. It exists so enum decoders
// read their index the same way.
func (d *Deserializer) DeserializeVariant() uint32 {
	return d.DeserializeUleb128()
}

// UnknownVariant records an UnknownVariantError for typ.
func (d *Deserializer) UnknownVariant(typ string, index uint32) {
	d.SetErr(&UnknownVariantError{Type: typ, Index: index})
}

func (d *Deserializer) SetErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Deserializer) Err() error {
	return d.err
}

func (d *Deserializer) Offset() int {
	return d.offset
}

func (d *Deserializer) Remaining() int {
	return len(d.buf) - d.offset
}

// Empty reports whether the cursor reached the end of the buffer.
func (d *Deserializer) Empty() bool {
	return d.offset == len(d.buf)
}

// DeserializeSequence reads a count followed by that many elements.
func DeserializeSequence[T any](d *Deserializer, f func(*Deserializer) T) []T {
	n := d.DeserializeLen()
	if d.Err() != nil {
		return nil
	}
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item := f(d)
		if d.Err() != nil {
			return nil
		}
		items = append(items, item)
	}
	return items
}

// DeserializeBytesSequence reads a count followed by that many length
// prefixed buffers.
func DeserializeBytesSequence(d *Deserializer) [][]byte {
	return DeserializeSequence(d, (*Deserializer).DeserializeBytes)
}

// Unmarshal decodes a value from b with f and requires that every byte
// is consumed.
func Unmarshal[T any](b []byte, f func(*Deserializer) T) (T, error) {
	d := NewDeserializer(b)
	v := f(d)
	if err := d.Err(); err != nil {
		var zero T
		return zero, err
	}
	if !d.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrTrailingBytes, d.Remaining())
	}
	return v, nil
}
