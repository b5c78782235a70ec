// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/ava-labs/movetx/consts"
)

// MaxU128 is 2^128 - 1.
var MaxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Serializable is implemented by every value with a canonical BCS encoding.
type Serializable interface {
	Serialize(s *Serializer)
}

// Serializer appends BCS encodings to an owned buffer. The first error
// encountered is kept and every later write is ignored, so callers
// can write a whole structure and check Err once.
type Serializer struct {
	buf []byte
	err error
}

func NewSerializer() *Serializer {
	return &Serializer{buf: make([]byte, 0, 64)}
}

func (s *Serializer) SerializeU8(v uint8) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf, v)
}

func (s *Serializer) SerializeU16(v uint16) {
	if s.err != nil {
		return
	}
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}

func (s *Serializer) SerializeU32(v uint32) {
	if s.err != nil {
		return
	}
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

func (s *Serializer) SerializeU64(v uint64) {
	if s.err != nil {
		return
	}
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// SerializeU128 writes v as 16 little-endian bytes. Negative values and
// values above MaxU128 are rejected.
func (s *Serializer) SerializeU128(v *big.Int) {
	if s.err != nil {
		return
	}
	if v == nil || v.Sign() < 0 || v.Cmp(MaxU128) > 0 {
		s.err = ErrU128OutOfRange
		return
	}
	var be [consts.Uint128Len]byte
	v.FillBytes(be[:])
	for i := len(be) - 1; i >= 0; i-- {
		s.buf = append(s.buf, be[i])
	}
}

func (s *Serializer) SerializeBool(v bool) {
	if v {
		s.SerializeU8(1)
		return
	}
	s.SerializeU8(0)
}

// SerializeUleb128 writes v using the minimal number of 7-bit groups.
func (s *Serializer) SerializeUleb128(v uint32) {
	if s.err != nil {
		return
	}
	s.buf = appendUleb128(s.buf, v)
}

// SerializeLen writes a length or count prefix.
func (s *Serializer) SerializeLen(n int) {
	if s.err != nil {
		return
	}
	if n < 0 || uint64(n) > uint64(consts.MaxUint32) {
		s.err = ErrTooLong
		return
	}
	s.SerializeUleb128(uint32(n))
}

// SerializeBytes writes a length prefixed byte buffer.
func (s *Serializer) SerializeBytes(b []byte) {
	s.SerializeLen(len(b))
	s.SerializeFixedBytes(b)
}

// SerializeStr writes a length prefixed UTF-8 string.
func (s *Serializer) SerializeStr(v string) {
	s.SerializeLen(len(v))
	s.SerializeFixedBytes([]byte(v))
}

// SerializeFixedBytes writes b without a length prefix.
func (s *Serializer) SerializeFixedBytes(b []byte) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf, b...)
}

// SetErr records err unless an earlier error is already held.
func (s *Serializer) SetErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Serializer) Err() error {
	return s.err
}

// Bytes returns the accumulated buffer.
func (s *Serializer) Bytes() []byte {
	return s.buf
}

// SerializeSequence writes a count followed by each element.
func SerializeSequence[T Serializable](s *Serializer, items []T) {
	s.SerializeLen(len(items))
	for _, item := range items {
		item.Serialize(s)
	}
}

// SerializeBytesSequence writes a count followed by each length
// prefixed buffer.
func SerializeBytesSequence(s *Serializer, items [][]byte) {
	s.SerializeLen(len(items))
	for _, item := range items {
		s.SerializeBytes(item)
	}
}

// Marshal returns the canonical encoding of v.
func Marshal(v Serializable) ([]byte, error) {
	s := NewSerializer()
	v.Serialize(s)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}
