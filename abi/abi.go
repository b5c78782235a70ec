// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

// ScriptABI discriminants.
const (
	TransactionScriptID uint32 = 0
	EntryFunctionID     uint32 = 1
)

// ScriptABI describes the parameters of a callable script or entry
// function.
type ScriptABI interface {
	codec.Serializable

	Variant() uint32
	// QualifiedName is the key the ABI is resolved by.
	QualifiedName() string
	TypeArgs() []TypeArgumentABI
	Args() []ArgumentABI

	isScriptABI()
}

var (
	_ ScriptABI = (*TransactionScriptABI)(nil)
	_ ScriptABI = (*EntryFunctionABI)(nil)
)

// TypeArgumentABI names a generic type parameter.
type TypeArgumentABI struct {
	Name string `json:"name"`
}

func (t TypeArgumentABI) Serialize(s *codec.Serializer) {
	s.SerializeStr(t.Name)
}

func DeserializeTypeArgumentABI(d *codec.Deserializer) TypeArgumentABI {
	return TypeArgumentABI{Name: d.DeserializeStr()}
}

// ArgumentABI pairs a parameter name with its type.
type ArgumentABI struct {
	Name    string          `json:"name"`
	TypeTag typetag.TypeTag `json:"type_tag"`
}

func (a ArgumentABI) Serialize(s *codec.Serializer) {
	s.SerializeStr(a.Name)
	a.TypeTag.Serialize(s)
}

func DeserializeArgumentABI(d *codec.Deserializer) ArgumentABI {
	return ArgumentABI{
		Name:    d.DeserializeStr(),
		TypeTag: typetag.DeserializeTypeTag(d),
	}
}

// TransactionScriptABI describes a script payload and carries its code.
type TransactionScriptABI struct {
	Name    string            `json:"name"`
	Doc     string            `json:"doc"`
	Code    []byte            `json:"code"`
	TyArgs  []TypeArgumentABI `json:"ty_args"`
	ArgList []ArgumentABI     `json:"args"`
}

func (*TransactionScriptABI) Variant() uint32 { return TransactionScriptID }

func (a *TransactionScriptABI) QualifiedName() string { return a.Name }

func (a *TransactionScriptABI) TypeArgs() []TypeArgumentABI { return a.TyArgs }

func (a *TransactionScriptABI) Args() []ArgumentABI { return a.ArgList }

func (a *TransactionScriptABI) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeStr(a.Name)
	s.SerializeStr(a.Doc)
	s.SerializeBytes(a.Code)
	codec.SerializeSequence(s, a.TyArgs)
	codec.SerializeSequence(s, a.ArgList)
}

func (*TransactionScriptABI) isScriptABI() {}

// EntryFunctionABI describes a published entry function.
type EntryFunctionABI struct {
	Name       string            `json:"name"`
	ModuleName typetag.ModuleID  `json:"module_name"`
	Doc        string            `json:"doc"`
	TyArgs     []TypeArgumentABI `json:"ty_args"`
	ArgList    []ArgumentABI     `json:"args"`
}

func (*EntryFunctionABI) Variant() uint32 { return EntryFunctionID }

// QualifiedName returns "addr::module::function" with a short address.
func (a *EntryFunctionABI) QualifiedName() string {
	return a.ModuleName.String() + "::" + a.Name
}

func (a *EntryFunctionABI) TypeArgs() []TypeArgumentABI { return a.TyArgs }

func (a *EntryFunctionABI) Args() []ArgumentABI { return a.ArgList }

func (a *EntryFunctionABI) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(a.Variant())
	s.SerializeStr(a.Name)
	a.ModuleName.Serialize(s)
	s.SerializeStr(a.Doc)
	codec.SerializeSequence(s, a.TyArgs)
	codec.SerializeSequence(s, a.ArgList)
}

func (*EntryFunctionABI) isScriptABI() {}

func DeserializeScriptABI(d *codec.Deserializer) ScriptABI {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	var a ScriptABI
	switch index {
	case TransactionScriptID:
		a = &TransactionScriptABI{
			Name:    d.DeserializeStr(),
			Doc:     d.DeserializeStr(),
			Code:    d.DeserializeBytes(),
			TyArgs:  codec.DeserializeSequence(d, DeserializeTypeArgumentABI),
			ArgList: codec.DeserializeSequence(d, DeserializeArgumentABI),
		}
	case EntryFunctionID:
		a = &EntryFunctionABI{
			Name:       d.DeserializeStr(),
			ModuleName: typetag.DeserializeModuleID(d),
			Doc:        d.DeserializeStr(),
			TyArgs:     codec.DeserializeSequence(d, DeserializeTypeArgumentABI),
			ArgList:    codec.DeserializeSequence(d, DeserializeArgumentABI),
		}
	default:
		d.UnknownVariant("ScriptABI", index)
	}
	if d.Err() != nil {
		return nil
	}
	return a
}

// UnmarshalScriptABI decodes a whole compiled ABI descriptor.
func UnmarshalScriptABI(b []byte) (ScriptABI, error) {
	return codec.Unmarshal(b, DeserializeScriptABI)
}
