// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/consts"
)

// NewRandomAddress returns a random address
// for use during testing
func NewRandomAddress() (codec.Address, error) {
	b := make([]byte, consts.AddressLen)
	if _, err := rand.Read(b); err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ToAddress(b)
}

// MustNewRandomAddress is NewRandomAddress failing the test on error.
func MustNewRandomAddress(t testing.TB) codec.Address {
	addr, err := NewRandomAddress()
	require.NoError(t, err)
	return addr
}

// RoundTrip marshals v, decodes it again with f and requires the decoded
// value to equal v and the whole buffer to be consumed. It returns the
// encoded bytes for further assertions.
func RoundTrip[T codec.Serializable](t testing.TB, v T, f func(*codec.Deserializer) T) []byte {
	t.Helper()
	require := require.New(t)

	b, err := codec.Marshal(v)
	require.NoError(err)

	decoded, err := codec.Unmarshal(b, f)
	require.NoError(err)
	require.Equal(v, decoded)

	again, err := codec.Marshal(decoded)
	require.NoError(err)
	require.Equal(b, again)
	return b
}
