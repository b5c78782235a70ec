// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

// AccountSigner signs a signing message on behalf of one account.
type AccountSigner interface {
	Address() codec.Address
	SignAccount(msg []byte) (AccountAuthenticator, error)
}

var (
	_ AccountSigner = (*ED25519Factory)(nil)
	_ AccountSigner = (*MultiED25519Factory)(nil)
)

type ED25519Factory struct {
	priv ed25519.PrivateKey
	addr codec.Address
}

// NewED25519Factory signs for the account derived from priv.
func NewED25519Factory(priv ed25519.PrivateKey) *ED25519Factory {
	return &ED25519Factory{priv: priv, addr: NewED25519Address(priv.PublicKey())}
}

// NewED25519FactoryWithAddress signs for addr, an account whose
// authentication key was rotated to priv.
func NewED25519FactoryWithAddress(priv ed25519.PrivateKey, addr codec.Address) *ED25519Factory {
	return &ED25519Factory{priv: priv, addr: addr}
}

func (d *ED25519Factory) PublicKey() ed25519.PublicKey {
	return d.priv.PublicKey()
}

func (d *ED25519Factory) Address() codec.Address {
	return d.addr
}

// SignMessage returns the raw signature over msg.
func (d *ED25519Factory) SignMessage(msg []byte) (ed25519.Signature, error) {
	return ed25519.Sign(msg, d.priv), nil
}

func (d *ED25519Factory) Sign(msg []byte) (*ED25519, error) {
	sig, err := d.SignMessage(msg)
	if err != nil {
		return nil, err
	}
	return &ED25519{PublicKey: d.PublicKey(), Signature: sig}, nil
}

func (d *ED25519Factory) SignAccount(msg []byte) (AccountAuthenticator, error) {
	a, err := d.Sign(msg)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// MultiED25519Factory holds some of the private keys of a multi key,
// indexed by their position in the multi key.
type MultiED25519Factory struct {
	pk   *ed25519.MultiPublicKey
	keys map[int]ed25519.PrivateKey
}

func NewMultiED25519Factory(pk *ed25519.MultiPublicKey, keys map[int]ed25519.PrivateKey) (*MultiED25519Factory, error) {
	if err := pk.Verify(); err != nil {
		return nil, err
	}
	if len(keys) < int(pk.Threshold) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInsufficientSignatures, len(keys), pk.Threshold)
	}
	for i, priv := range keys {
		if i < 0 || i >= len(pk.Keys) || pk.Keys[i] != priv.PublicKey() {
			return nil, fmt.Errorf("%w: index %d", ErrUnauthorizedSigner, i)
		}
	}
	return &MultiED25519Factory{pk: pk, keys: keys}, nil
}

func (m *MultiED25519Factory) PublicKey() *ed25519.MultiPublicKey {
	return m.pk
}

func (m *MultiED25519Factory) Address() codec.Address {
	return NewMultiED25519Address(m.pk)
}

// SignMessage returns the aggregated signature and bitmap over msg.
func (m *MultiED25519Factory) SignMessage(msg []byte) (*ed25519.MultiSignature, error) {
	return ed25519.SignMulti(msg, m.keys)
}

func (m *MultiED25519Factory) Sign(msg []byte) (*MultiED25519, error) {
	sig, err := m.SignMessage(msg)
	if err != nil {
		return nil, err
	}
	return &MultiED25519{PublicKey: m.pk, Signature: sig}, nil
}

func (m *MultiED25519Factory) SignAccount(msg []byte) (AccountAuthenticator, error) {
	a, err := m.Sign(msg)
	if err != nil {
		return nil, err
	}
	return a, nil
}
