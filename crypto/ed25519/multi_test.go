// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/codec"
)

func TestCreateBitmap(t *testing.T) {
	tests := []struct {
		name        string
		indices     []int
		expected    [BitmapLen]byte
		expectedErr error
	}{
		{
			name:     "first",
			indices:  []int{0},
			expected: [BitmapLen]byte{0b1000_0000, 0, 0, 0},
		},
		{
			name:     "spread",
			indices:  []int{0, 3, 9, 31},
			expected: [BitmapLen]byte{0b1001_0000, 0b0100_0000, 0, 0b0000_0001},
		},
		{
			name:     "unordered",
			indices:  []int{31, 0},
			expected: [BitmapLen]byte{0b1000_0000, 0, 0, 0b0000_0001},
		},
		{
			name:        "out of range",
			indices:     []int{32},
			expectedErr: ErrInvalidBitmap,
		},
		{
			name:        "negative",
			indices:     []int{-1},
			expectedErr: ErrInvalidBitmap,
		},
		{
			name:        "duplicate",
			indices:     []int{1, 1},
			expectedErr: ErrDuplicateSigner,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			bitmap, err := CreateBitmap(tt.indices)
			require.ErrorIs(err, tt.expectedErr)
			if tt.expectedErr != nil {
				return
			}
			require.Equal(tt.expected, bitmap)
		})
	}
}

func TestBitmapIndices(t *testing.T) {
	require := require.New(t)

	bitmap, err := CreateBitmap([]int{9, 2, 30})
	require.NoError(err)
	require.Equal([]int{2, 9, 30}, BitmapIndices(bitmap))
}

func newKeys(t *testing.T, n int) []PrivateKey {
	keys := make([]PrivateKey, n)
	for i := range keys {
		priv, err := GeneratePrivateKey()
		require.NoError(t, err)
		keys[i] = priv
	}
	return keys
}

func TestMultiPublicKey(t *testing.T) {
	require := require.New(t)
	keys := newKeys(t, 3)

	pk, err := NewMultiPublicKey([]PublicKey{keys[0].PublicKey(), keys[1].PublicKey(), keys[2].PublicKey()}, 2)
	require.NoError(err)
	require.Len(pk.Bytes(), 3*PublicKeyLen+1)
	require.Equal(uint8(2), pk.Bytes()[3*PublicKeyLen])

	b, err := codec.Marshal(pk)
	require.NoError(err)
	decoded, err := codec.Unmarshal(b, DeserializeMultiPublicKey)
	require.NoError(err)
	require.Equal(pk, decoded)

	_, err = NewMultiPublicKey(pk.Keys, 4)
	require.ErrorIs(err, ErrInvalidThreshold)
	_, err = NewMultiPublicKey(pk.Keys, 0)
	require.ErrorIs(err, ErrInvalidThreshold)
	_, err = NewMultiPublicKey(nil, 1)
	require.ErrorIs(err, ErrTooManyKeys)

	_, err = codec.Unmarshal([]byte{3, 1, 2, 3}, DeserializeMultiPublicKey)
	require.ErrorIs(err, ErrInvalidPublicKey)
}

func TestSignVerifyMulti(t *testing.T) {
	require := require.New(t)
	keys := newKeys(t, 3)
	pk, err := NewMultiPublicKey([]PublicKey{keys[0].PublicKey(), keys[1].PublicKey(), keys[2].PublicKey()}, 2)
	require.NoError(err)

	msg := []byte("msg")
	sig, err := SignMulti(msg, map[int]PrivateKey{2: keys[2], 0: keys[0]})
	require.NoError(err)
	require.Equal([]int{0, 2}, BitmapIndices(sig.Bitmap))
	require.Equal(Sign(msg, keys[0]), sig.Signatures[0])
	require.Equal(Sign(msg, keys[2]), sig.Signatures[1])
	require.True(VerifyMulti(msg, pk, sig))
	require.False(VerifyMulti([]byte("other"), pk, sig))

	b, err := codec.Marshal(sig)
	require.NoError(err)
	payloadLen := 2*SignatureLen + BitmapLen
	require.Len(b, codec.Uleb128Len(uint32(payloadLen))+payloadLen)
	decoded, err := codec.Unmarshal(b, DeserializeMultiSignature)
	require.NoError(err)
	require.Equal(sig, decoded)

	// below threshold
	single, err := SignMulti(msg, map[int]PrivateKey{1: keys[1]})
	require.NoError(err)
	require.False(VerifyMulti(msg, pk, single))
}

func TestDeserializeMultiSignatureBitmapMismatch(t *testing.T) {
	require := require.New(t)
	keys := newKeys(t, 1)

	sig, err := SignMulti([]byte("msg"), map[int]PrivateKey{0: keys[0]})
	require.NoError(err)
	sig.Bitmap[0] |= 0b0100_0000

	b, err := codec.Marshal(sig)
	require.NoError(err)
	_, err = codec.Unmarshal(b, DeserializeMultiSignature)
	require.ErrorIs(err, ErrInvalidBitmap)
}
