// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/consts"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

// AuthenticationKey is SHA3-256(public key bytes || scheme). A fresh
// account's address equals its authentication key.
type AuthenticationKey [consts.HashLen]byte

func newAuthenticationKey(pub []byte, scheme uint8) AuthenticationKey {
	h := sha3.New256()
	_, _ = h.Write(pub)
	_, _ = h.Write([]byte{scheme})
	var k AuthenticationKey
	copy(k[:], h.Sum(nil))
	return k
}

func NewED25519AuthenticationKey(pk ed25519.PublicKey) AuthenticationKey {
	return newAuthenticationKey(pk[:], ED25519Scheme)
}

func NewMultiED25519AuthenticationKey(pk *ed25519.MultiPublicKey) AuthenticationKey {
	return newAuthenticationKey(pk.Bytes(), MultiED25519Scheme)
}

func (k AuthenticationKey) Address() codec.Address {
	return codec.Address(k)
}

func (k AuthenticationKey) String() string {
	return codec.ToHex(k[:])
}

func NewED25519Address(pk ed25519.PublicKey) codec.Address {
	return NewED25519AuthenticationKey(pk).Address()
}

func NewMultiED25519Address(pk *ed25519.MultiPublicKey) codec.Address {
	return NewMultiED25519AuthenticationKey(pk).Address()
}
