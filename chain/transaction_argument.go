// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"

	"github.com/ava-labs/movetx/codec"
)

// TransactionArgument is a typed argument of a script payload.
type TransactionArgument interface {
	codec.Serializable

	Variant() uint32

	isTransactionArgument()
}

type (
	U8Arg       struct{ Value uint8 }
	U64Arg      struct{ Value uint64 }
	U128Arg     struct{ Value *big.Int }
	AddressArg  struct{ Value codec.Address }
	U8VectorArg struct{ Value []byte }
	BoolArg     struct{ Value bool }
)

var (
	_ TransactionArgument = (*U8Arg)(nil)
	_ TransactionArgument = (*U64Arg)(nil)
	_ TransactionArgument = (*U128Arg)(nil)
	_ TransactionArgument = (*AddressArg)(nil)
	_ TransactionArgument = (*U8VectorArg)(nil)
	_ TransactionArgument = (*BoolArg)(nil)
)

func (*U8Arg) Variant() uint32       { return U8ArgID }
func (*U64Arg) Variant() uint32      { return U64ArgID }
func (*U128Arg) Variant() uint32     { return U128ArgID }
func (*AddressArg) Variant() uint32  { return AddressArgID }
func (*U8VectorArg) Variant() uint32 { return U8VectorArgID }
func (*BoolArg) Variant() uint32     { return BoolArgID }

func (a *U8Arg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeU8(a.Value)
}

func (a *U64Arg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeU64(a.Value)
}

func (a *U128Arg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeU128(a.Value)
}

func (a *AddressArg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	a.Value.Serialize(s)
}

func (a *U8VectorArg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeBytes(a.Value)
}

func (a *BoolArg) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeBool(a.Value)
}

func (*U8Arg) isTransactionArgument()       {}
func (*U64Arg) isTransactionArgument()      {}
func (*U128Arg) isTransactionArgument()     {}
func (*AddressArg) isTransactionArgument()  {}
func (*U8VectorArg) isTransactionArgument() {}
func (*BoolArg) isTransactionArgument()     {}

func DeserializeTransactionArgument(d *codec.Deserializer) TransactionArgument {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	var arg TransactionArgument
	switch index {
	case U8ArgID:
		arg = &U8Arg{Value: d.DeserializeU8()}
	case U64ArgID:
		arg = &U64Arg{Value: d.DeserializeU64()}
	case U128ArgID:
		arg = &U128Arg{Value: d.DeserializeU128()}
	case AddressArgID:
		arg = &AddressArg{Value: codec.DeserializeAddress(d)}
	case U8VectorArgID:
		arg = &U8VectorArg{Value: d.DeserializeBytes()}
	case BoolArgID:
		arg = &BoolArg{Value: d.DeserializeBool()}
	default:
		d.UnknownVariant("TransactionArgument", index)
	}
	if d.Err() != nil {
		return nil
	}
	return arg
}
