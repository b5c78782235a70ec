// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"fmt"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

// SignFunc signs a signing message with a single key.
type SignFunc func(msg []byte) (ed25519.Signature, error)

// MultiSignFunc returns an aggregated signature and bitmap over a
// signing message.
type MultiSignFunc func(msg []byte) (*ed25519.MultiSignature, error)

// Ed25519Signer signs raw transactions for a single key account.
type Ed25519Signer struct {
	publicKey ed25519.PublicKey
	sign      SignFunc
}

func NewEd25519Signer(publicKey ed25519.PublicKey, sign SignFunc) *Ed25519Signer {
	return &Ed25519Signer{publicKey: publicKey, sign: sign}
}

// NewEd25519SignerFromFactory signs with the factory's private key.
func NewEd25519SignerFromFactory(f *auth.ED25519Factory) *Ed25519Signer {
	return NewEd25519Signer(f.PublicKey(), f.SignMessage)
}

func (e *Ed25519Signer) RawToSigned(raw *chain.RawTransaction) (*chain.SignedTransaction, error) {
	msg, err := chain.SigningMessage(raw)
	if err != nil {
		return nil, err
	}
	sig, err := e.sign(msg)
	if err != nil {
		return nil, err
	}
	return chain.NewSignedTransaction(raw, &auth.ED25519{
		PublicKey: e.publicKey,
		Signature: sig,
	}), nil
}

// Sign returns the encoded signed transaction.
func (e *Ed25519Signer) Sign(raw *chain.RawTransaction) ([]byte, error) {
	signed, err := e.RawToSigned(raw)
	if err != nil {
		return nil, err
	}
	return signed.Bytes()
}

// Simulate encodes raw with an all-zero signature. Nodes accept it for
// simulation and reject it for submission.
func (e *Ed25519Signer) Simulate(raw *chain.RawTransaction) ([]byte, error) {
	return codec.Marshal(chain.NewSignedTransaction(raw, &auth.ED25519{
		PublicKey: e.publicKey,
	}))
}

// MultiEd25519Signer signs raw transactions for a multi key account.
type MultiEd25519Signer struct {
	publicKey *ed25519.MultiPublicKey
	sign      MultiSignFunc
}

func NewMultiEd25519Signer(publicKey *ed25519.MultiPublicKey, sign MultiSignFunc) *MultiEd25519Signer {
	return &MultiEd25519Signer{publicKey: publicKey, sign: sign}
}

func NewMultiEd25519SignerFromFactory(f *auth.MultiED25519Factory) *MultiEd25519Signer {
	return NewMultiEd25519Signer(f.PublicKey(), f.SignMessage)
}

func (m *MultiEd25519Signer) RawToSigned(raw *chain.RawTransaction) (*chain.SignedTransaction, error) {
	msg, err := chain.SigningMessage(raw)
	if err != nil {
		return nil, err
	}
	sig, err := m.sign(msg)
	if err != nil {
		return nil, err
	}
	return chain.NewSignedTransaction(raw, &auth.MultiED25519{
		PublicKey: m.publicKey,
		Signature: sig,
	}), nil
}

func (m *MultiEd25519Signer) Sign(raw *chain.RawTransaction) ([]byte, error) {
	signed, err := m.RawToSigned(raw)
	if err != nil {
		return nil, err
	}
	return signed.Bytes()
}

// SignMultiAgent has the sender and every secondary signer sign the
// multi-agent envelope of raw. Secondary signers are listed in the order
// their addresses appear in the transaction. The sender may not also be
// a secondary signer.
func SignMultiAgent(
	raw *chain.RawTransaction,
	sender auth.AccountSigner,
	secondary ...auth.AccountSigner,
) (*chain.SignedTransaction, error) {
	addrs := make([]codec.Address, len(secondary))
	for i, s := range secondary {
		addrs[i] = s.Address()
		if addrs[i] == raw.Sender {
			return nil, fmt.Errorf("%w: %s is the sender", auth.ErrDuplicateSigner, addrs[i].ShortString())
		}
	}
	msg, err := chain.SigningMessage(chain.NewMultiAgentRawTransaction(raw, addrs))
	if err != nil {
		return nil, err
	}

	senderAuth, err := sender.SignAccount(msg)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	signers := make([]auth.AccountAuthenticator, len(secondary))
	for i, s := range secondary {
		a, err := s.SignAccount(msg)
		if err != nil {
			return nil, fmt.Errorf("secondary signer %s: %w", addrs[i].ShortString(), err)
		}
		signers[i] = a
	}
	ma, err := auth.NewMultiAgent(senderAuth, addrs, signers)
	if err != nil {
		return nil, err
	}
	return chain.NewSignedTransaction(raw, ma), nil
}
