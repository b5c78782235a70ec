// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

// TransactionPayload is the code a transaction runs.
type TransactionPayload interface {
	codec.Serializable

	Variant() uint32

	isTransactionPayload()
}

var (
	_ TransactionPayload = (*Script)(nil)
	_ TransactionPayload = (*EntryFunction)(nil)
)

// Script carries compiled bytecode and typed arguments.
type Script struct {
	Code     []byte
	TypeArgs []typetag.TypeTag
	Args     []TransactionArgument
}

func (*Script) Variant() uint32 { return ScriptPayloadID }

func (p *Script) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(p.Variant())
	p.SerializeBody(s)
}

// SerializeBody writes the script without its payload discriminant.
func (p *Script) SerializeBody(s *codec.Serializer) {
	s.SerializeBytes(p.Code)
	codec.SerializeSequence(s, p.TypeArgs)
	codec.SerializeSequence(s, p.Args)
}

func DeserializeScriptBody(d *codec.Deserializer) *Script {
	p := &Script{
		Code:     d.DeserializeBytes(),
		TypeArgs: codec.DeserializeSequence(d, typetag.DeserializeTypeTag),
		Args:     codec.DeserializeSequence(d, DeserializeTransactionArgument),
	}
	if len(p.TypeArgs) == 0 {
		p.TypeArgs = nil
	}
	if len(p.Args) == 0 {
		p.Args = nil
	}
	return p
}

func (*Script) isTransactionPayload() {}

// EntryFunction calls a published entry function. Each argument is
// already encoded for its parameter type and is written as a length
// prefixed blob.
type EntryFunction struct {
	Module   typetag.ModuleID
	Function typetag.Identifier
	TypeArgs []typetag.TypeTag
	Args     [][]byte
}

func NewEntryFunction(module typetag.ModuleID, function string, typeArgs []typetag.TypeTag, args [][]byte) *EntryFunction {
	return &EntryFunction{
		Module:   module,
		Function: typetag.Identifier(function),
		TypeArgs: typeArgs,
		Args:     args,
	}
}

func (*EntryFunction) Variant() uint32 { return EntryFunctionPayloadID }

func (p *EntryFunction) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(p.Variant())
	p.SerializeBody(s)
}

// SerializeBody writes the entry function without its payload
// discriminant.
func (p *EntryFunction) SerializeBody(s *codec.Serializer) {
	p.Module.Serialize(s)
	p.Function.Serialize(s)
	codec.SerializeSequence(s, p.TypeArgs)
	codec.SerializeBytesSequence(s, p.Args)
}

func DeserializeEntryFunctionBody(d *codec.Deserializer) *EntryFunction {
	p := &EntryFunction{
		Module:   typetag.DeserializeModuleID(d),
		Function: typetag.DeserializeIdentifier(d),
		TypeArgs: codec.DeserializeSequence(d, typetag.DeserializeTypeTag),
		Args:     codec.DeserializeBytesSequence(d),
	}
	if len(p.TypeArgs) == 0 {
		p.TypeArgs = nil
	}
	if len(p.Args) == 0 {
		p.Args = nil
	}
	return p
}

// QualifiedName returns "addr::module::function".
func (p *EntryFunction) QualifiedName() string {
	return p.Module.String() + "::" + string(p.Function)
}

func (*EntryFunction) isTransactionPayload() {}

func DeserializeTransactionPayload(d *codec.Deserializer) TransactionPayload {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	var p TransactionPayload
	switch index {
	case ScriptPayloadID:
		p = DeserializeScriptBody(d)
	case EntryFunctionPayloadID:
		p = DeserializeEntryFunctionBody(d)
	default:
		d.UnknownVariant("TransactionPayload", index)
	}
	if d.Err() != nil {
		return nil
	}
	return p
}
