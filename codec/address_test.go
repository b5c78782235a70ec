// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	full := "0x000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:     "core",
			input:    "0x1",
			expected: "0x0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			name:     "no prefix",
			input:    "a",
			expected: "0x000000000000000000000000000000000000000000000000000000000000000a",
		},
		{
			name:     "full",
			input:    full,
			expected: full,
		},
		{
			name:        "too long",
			input:       full + "00",
			expectedErr: ErrInvalidAddress,
		},
		{
			name:        "not hex",
			input:       "0xzz",
			expectedErr: ErrInvalidAddress,
		},
		{
			name:        "empty",
			input:       "0x",
			expectedErr: ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			addr, err := ParseAddress(tt.input)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				return
			}
			require.Equal(tt.expected, addr.String())
		})
	}
}

func TestAddressShortString(t *testing.T) {
	require := require.New(t)

	require.Equal("0x0", EmptyAddress.ShortString())
	require.Equal("0x1", CoreCodeAddress.ShortString())
	require.Equal("0x100", MustParseAddress("0x0100").ShortString())
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)

	addr := MustParseAddress("0xcafe")
	b, err := json.Marshal(addr)
	require.NoError(err)

	var parsed Address
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(addr, parsed)
}

func TestAddressSerialize(t *testing.T) {
	require := require.New(t)

	addr := MustParseAddress("0xcafe")
	b, err := Marshal(addr)
	require.NoError(err)

	expected, err := borsh.Serialize([32]byte(addr))
	require.NoError(err)
	require.Equal(expected, b)

	_, err = Unmarshal(b[:31], DeserializeAddress)
	require.ErrorIs(err, ErrInsufficientBytes)
}

func TestToAddress(t *testing.T) {
	require := require.New(t)

	_, err := ToAddress(make([]byte, 31))
	require.ErrorIs(err, ErrInvalidAddress)

	addr, err := ToAddress(CoreCodeAddress[:])
	require.NoError(err)
	require.Equal(CoreCodeAddress, addr)
}
