// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/consts"
)

func TestUleb128(t *testing.T) {
	tests := []struct {
		value    uint32
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16383, []byte{0xff, 0x7f}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{consts.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tt := range tests {
		require := require.New(t)

		s := NewSerializer()
		s.SerializeUleb128(tt.value)
		require.Equal(tt.expected, s.Bytes())
		require.Equal(len(tt.expected), Uleb128Len(tt.value))

		d := NewDeserializer(s.Bytes())
		require.Equal(tt.value, d.DeserializeUleb128())
		require.NoError(d.Err())
		require.True(d.Empty())
	}
}

func TestUleb128Minimal(t *testing.T) {
	require := require.New(t)

	for shift := 0; shift < 32; shift++ {
		for _, v := range []uint32{1 << shift, 1<<shift - 1, 1<<shift + 1} {
			want := (bits.Len32(v) + 6) / 7
			if want == 0 {
				want = 1
			}
			s := NewSerializer()
			s.SerializeUleb128(v)
			require.Len(s.Bytes(), want, "value %d", v)

			d := NewDeserializer(s.Bytes())
			require.Equal(v, d.DeserializeUleb128())
			require.NoError(d.Err())
		}
	}
}

func TestUleb128Invalid(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
	}{
		{
			name:        "padded zero",
			input:       []byte{0x80, 0x00},
			expectedErr: ErrNonCanonicalUleb128,
		},
		{
			name:        "padded one",
			input:       []byte{0x81, 0x80, 0x00},
			expectedErr: ErrNonCanonicalUleb128,
		},
		{
			name:        "overflow in fifth byte",
			input:       []byte{0xff, 0xff, 0xff, 0xff, 0x10},
			expectedErr: ErrInvalidUleb128,
		},
		{
			name:        "six bytes",
			input:       []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
			expectedErr: ErrInvalidUleb128,
		},
		{
			name:        "unterminated",
			input:       []byte{0x80},
			expectedErr: ErrInsufficientBytes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			d := NewDeserializer(tt.input)
			d.DeserializeUleb128()
			require.ErrorIs(d.Err(), tt.expectedErr)
		})
	}
}

func TestSerializeLenTooLong(t *testing.T) {
	require := require.New(t)

	s := NewSerializer()
	s.SerializeLen(-1)
	require.ErrorIs(s.Err(), ErrTooLong)
}
