// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"fmt"

	"github.com/hdevalence/ed25519consensus"

	"github.com/ava-labs/movetx/codec"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

// We use the ZIP-215 specification for ed25519 signature
// verification (https://zips.z.cash/zip-0215) because it provides
// an explicit validity criteria for signatures, supports batch
// verification, and is broadly compatible with signatures produced
// by almost all ed25519 implementations (which don't require
// canonically-encoded points).
const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey
	// is formatted as privateKey = seed|publicKey. Accounts export
	// only the seed.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize
)

var (
	EmptyPublicKey  = PublicKey{}
	EmptyPrivateKey = PrivateKey{}
	EmptySignature  = Signature{}
)

// GeneratePrivateKey returns a Ed25519 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PrivateKeyFromSeed expands a 32 byte seed.
func PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != PrivateKeySeedLen {
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
	return PrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// HexToKey accepts either the 32 byte seed or the full 64 byte key.
func HexToKey(s string) (PrivateKey, error) {
	b, err := codec.LoadHex(s, -1)
	if err != nil {
		return EmptyPrivateKey, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	switch len(b) {
	case PrivateKeySeedLen:
		return PrivateKeyFromSeed(b)
	case PrivateKeyLen:
		pk := PrivateKey(b)
		if PrivateKey(ed25519.NewKeyFromSeed(pk.Seed())) != pk {
			return EmptyPrivateKey, ErrInvalidPrivateKey
		}
		return pk, nil
	default:
		return EmptyPrivateKey, ErrInvalidPrivateKey
	}
}

// PublicKey returns a PublicKey associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

func (p PrivateKey) Seed() []byte {
	return p[:PrivateKeySeedLen]
}

// ToHex returns the seed, which is how accounts export keys.
func (p PrivateKey) ToHex() string {
	return codec.ToHex(p.Seed())
}

// Sign returns a valid signature for msg using pk.
func Sign(msg []byte, pk PrivateKey) Signature {
	sig := ed25519.Sign(pk[:], msg)
	return Signature(sig)
}

// Verify returns whether s is a valid signature of msg by p.
func Verify(msg []byte, p PublicKey, s Signature) bool {
	return ed25519consensus.Verify(p[:], msg, s[:])
}

func (p PublicKey) String() string {
	return codec.ToHex(p[:])
}

// Serialize writes the key as length prefixed bytes.
func (p PublicKey) Serialize(s *codec.Serializer) {
	s.SerializeBytes(p[:])
}

func DeserializePublicKey(d *codec.Deserializer) PublicKey {
	b := d.DeserializeBytes()
	if d.Err() != nil {
		return EmptyPublicKey
	}
	if len(b) != PublicKeyLen {
		d.SetErr(fmt.Errorf("%w: %d bytes", ErrInvalidPublicKey, len(b)))
		return EmptyPublicKey
	}
	return PublicKey(b)
}

func (s Signature) String() string {
	return codec.ToHex(s[:])
}

// Serialize writes the signature as length prefixed bytes.
func (s Signature) Serialize(ser *codec.Serializer) {
	ser.SerializeBytes(s[:])
}

func DeserializeSignature(d *codec.Deserializer) Signature {
	b := d.DeserializeBytes()
	if d.Err() != nil {
		return EmptySignature
	}
	if len(b) != SignatureLen {
		d.SetErr(fmt.Errorf("%w: %d bytes", ErrInvalidSignature, len(b)))
		return EmptySignature
	}
	return Signature(b)
}

type Batch struct {
	bv ed25519consensus.BatchVerifier
}

func NewBatch(size int) *Batch {
	return &Batch{bv: ed25519consensus.NewPreallocatedBatchVerifier(size)}
}

func (b *Batch) Add(msg []byte, p PublicKey, s Signature) {
	b.bv.Add(p[:], msg, s[:])
}

func (b *Batch) Verify() bool {
	return b.bv.Verify()
}
