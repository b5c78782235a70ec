// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package authtest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

// NewED25519Factory returns a factory over a freshly generated key.
func NewED25519Factory(t testing.TB) *auth.ED25519Factory {
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return auth.NewED25519Factory(priv)
}

// FixedED25519Factory returns the same key for the same seed byte, for
// tests that compare against recorded bytes.
func FixedED25519Factory(t testing.TB, seed byte) *auth.ED25519Factory {
	priv, err := ed25519.PrivateKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.PrivateKeySeedLen))
	require.NoError(t, err)
	return auth.NewED25519Factory(priv)
}
