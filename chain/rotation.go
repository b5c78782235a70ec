// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/movetx/codec"

// RotationProofChallenge is signed by both the current and the new key
// when rotating an account's authentication key.
type RotationProofChallenge struct {
	AccountAddress    codec.Address
	ModuleName        string
	StructName        string
	SequenceNumber    uint64
	Originator        codec.Address
	CurrentAuthKey    codec.Address
	NewPublicKeyBytes []byte
}

// NewRotationProofChallenge fills in the framework's 0x1::account
// location for the challenge struct.
func NewRotationProofChallenge(
	seq uint64,
	originator codec.Address,
	currentAuthKey codec.Address,
	newPublicKey []byte,
) *RotationProofChallenge {
	return &RotationProofChallenge{
		AccountAddress:    codec.CoreCodeAddress,
		ModuleName:        "account",
		StructName:        "RotationProofChallenge",
		SequenceNumber:    seq,
		Originator:        originator,
		CurrentAuthKey:    currentAuthKey,
		NewPublicKeyBytes: newPublicKey,
	}
}

func (c *RotationProofChallenge) Serialize(s *codec.Serializer) {
	c.AccountAddress.Serialize(s)
	s.SerializeStr(c.ModuleName)
	s.SerializeStr(c.StructName)
	s.SerializeU64(c.SequenceNumber)
	c.Originator.Serialize(s)
	c.CurrentAuthKey.Serialize(s)
	s.SerializeBytes(c.NewPublicKeyBytes)
}

func DeserializeRotationProofChallenge(d *codec.Deserializer) *RotationProofChallenge {
	c := &RotationProofChallenge{
		AccountAddress:    codec.DeserializeAddress(d),
		ModuleName:        d.DeserializeStr(),
		StructName:        d.DeserializeStr(),
		SequenceNumber:    d.DeserializeU64(),
		Originator:        codec.DeserializeAddress(d),
		CurrentAuthKey:    codec.DeserializeAddress(d),
		NewPublicKeyBytes: d.DeserializeBytes(),
	}
	if d.Err() != nil {
		return nil
	}
	return c
}
