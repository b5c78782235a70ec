// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

// TransactionAuthenticator authenticates a whole transaction.
type TransactionAuthenticator interface {
	codec.Serializable

	Variant() uint32
	// Verify checks the authenticator against the signing message.
	Verify(msg []byte) error

	isTransactionAuthenticator()
}

// AccountAuthenticator authenticates a single account inside a
// MultiAgent authenticator.
type AccountAuthenticator interface {
	codec.Serializable

	Variant() uint32
	Verify(msg []byte) error
	// Address derives the account this authenticator speaks for.
	Address() codec.Address

	isAccountAuthenticator()
}

var (
	_ TransactionAuthenticator = (*ED25519)(nil)
	_ TransactionAuthenticator = (*MultiED25519)(nil)
	_ TransactionAuthenticator = (*MultiAgent)(nil)
	_ AccountAuthenticator     = (*ED25519)(nil)
	_ AccountAuthenticator     = (*MultiED25519)(nil)
)

// ED25519 is a single key signature. It shares its discriminant and
// layout at the transaction and account level.
type ED25519 struct {
	PublicKey ed25519.PublicKey `json:"public_key"`
	Signature ed25519.Signature `json:"signature"`
}

func (*ED25519) Variant() uint32 { return ED25519ID }

func (d *ED25519) Verify(msg []byte) error {
	if !ed25519.Verify(msg, d.PublicKey, d.Signature) {
		return ed25519.ErrInvalidSignature
	}
	return nil
}

func (d *ED25519) Address() codec.Address {
	return NewED25519Address(d.PublicKey)
}

func (d *ED25519) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(d.Variant())
	d.PublicKey.Serialize(s)
	d.Signature.Serialize(s)
}

func (*ED25519) isTransactionAuthenticator() {}
func (*ED25519) isAccountAuthenticator()     {}

// MultiED25519 is a K-of-N signature.
type MultiED25519 struct {
	PublicKey *ed25519.MultiPublicKey `json:"public_key"`
	Signature *ed25519.MultiSignature `json:"signature"`
}

func (*MultiED25519) Variant() uint32 { return MultiED25519ID }

func (d *MultiED25519) Verify(msg []byte) error {
	if !ed25519.VerifyMulti(msg, d.PublicKey, d.Signature) {
		return ed25519.ErrInvalidSignature
	}
	return nil
}

func (d *MultiED25519) Address() codec.Address {
	return NewMultiED25519Address(d.PublicKey)
}

func (d *MultiED25519) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(d.Variant())
	d.PublicKey.Serialize(s)
	d.Signature.Serialize(s)
}

func (*MultiED25519) isTransactionAuthenticator() {}
func (*MultiED25519) isAccountAuthenticator()     {}

// MultiAgent authenticates a sender and an ordered list of secondary
// signers. SecondaryAddresses[i] is authenticated by SecondarySigners[i].
type MultiAgent struct {
	Sender             AccountAuthenticator   `json:"sender"`
	SecondaryAddresses []codec.Address        `json:"secondary_signer_addresses"`
	SecondarySigners   []AccountAuthenticator `json:"secondary_signers"`
}

// NewMultiAgent requires one authenticator per secondary address.
func NewMultiAgent(
	sender AccountAuthenticator,
	addrs []codec.Address,
	signers []AccountAuthenticator,
) (*MultiAgent, error) {
	m := &MultiAgent{
		Sender:             sender,
		SecondaryAddresses: addrs,
		SecondarySigners:   signers,
	}
	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MultiAgent) check() error {
	if m.Sender == nil {
		return ErrMissingAuthenticator
	}
	if len(m.SecondaryAddresses) != len(m.SecondarySigners) {
		return fmt.Errorf("%w: %d addresses and %d authenticators",
			ErrSignerCountMismatch, len(m.SecondaryAddresses), len(m.SecondarySigners))
	}
	seen := set.NewSet[codec.Address](len(m.SecondaryAddresses))
	for _, addr := range m.SecondaryAddresses {
		if seen.Contains(addr) {
			return fmt.Errorf("%w: %s", ErrDuplicateSigner, addr)
		}
		seen.Add(addr)
	}
	for _, signer := range m.SecondarySigners {
		if signer == nil {
			return ErrMissingAuthenticator
		}
	}
	return nil
}

func (*MultiAgent) Variant() uint32 { return MultiAgentID }

// Verify checks every signature over msg. Binding secondary addresses
// to the keys that signed for them is left to the chain, which knows
// the current authentication keys.
func (m *MultiAgent) Verify(msg []byte) error {
	if err := m.check(); err != nil {
		return err
	}
	if err := m.Sender.Verify(msg); err != nil {
		return err
	}
	for i, signer := range m.SecondarySigners {
		if err := signer.Verify(msg); err != nil {
			return fmt.Errorf("secondary signer %d: %w", i, err)
		}
	}
	return nil
}

func (m *MultiAgent) Serialize(s *codec.Serializer) {
	if err := m.check(); err != nil {
		s.SetErr(err)
		return
	}
	s.SerializeUleb128(m.Variant())
	m.Sender.Serialize(s)
	codec.SerializeSequence(s, m.SecondaryAddresses)
	codec.SerializeSequence(s, m.SecondarySigners)
}

func (*MultiAgent) isTransactionAuthenticator() {}

func deserializeED25519(d *codec.Deserializer) *ED25519 {
	return &ED25519{
		PublicKey: ed25519.DeserializePublicKey(d),
		Signature: ed25519.DeserializeSignature(d),
	}
}

func deserializeMultiED25519(d *codec.Deserializer) *MultiED25519 {
	return &MultiED25519{
		PublicKey: ed25519.DeserializeMultiPublicKey(d),
		Signature: ed25519.DeserializeMultiSignature(d),
	}
}

func DeserializeTransactionAuthenticator(d *codec.Deserializer) TransactionAuthenticator {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	switch index {
	case ED25519ID:
		a := deserializeED25519(d)
		if d.Err() != nil {
			return nil
		}
		return a
	case MultiED25519ID:
		a := deserializeMultiED25519(d)
		if d.Err() != nil {
			return nil
		}
		return a
	case MultiAgentID:
		m := &MultiAgent{
			Sender:             DeserializeAccountAuthenticator(d),
			SecondaryAddresses: codec.DeserializeSequence(d, codec.DeserializeAddress),
			SecondarySigners:   codec.DeserializeSequence(d, DeserializeAccountAuthenticator),
		}
		if d.Err() != nil {
			return nil
		}
		if err := m.check(); err != nil {
			d.SetErr(err)
			return nil
		}
		return m
	default:
		d.UnknownVariant("TransactionAuthenticator", index)
		return nil
	}
}

func DeserializeAccountAuthenticator(d *codec.Deserializer) AccountAuthenticator {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	switch index {
	case ED25519ID:
		a := deserializeED25519(d)
		if d.Err() != nil {
			return nil
		}
		return a
	case MultiED25519ID:
		a := deserializeMultiED25519(d)
		if d.Err() != nil {
			return nil
		}
		return a
	default:
		d.UnknownVariant("AccountAuthenticator", index)
		return nil
	}
}
