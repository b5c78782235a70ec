// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typetag

import (
	"strings"

	"github.com/ava-labs/movetx/codec"
)

// Discriminants are part of the wire format. New variants are appended.
const (
	BoolVariant uint32 = iota
	U8Variant
	U64Variant
	U128Variant
	AddressVariant
	SignerVariant
	VectorVariant
	StructVariant
)

// TypeTag describes the type of a Move value. The set of
// implementations is closed.
type TypeTag interface {
	codec.Serializable

	// Variant returns the discriminant written before the payload.
	Variant() uint32
	String() string

	isTypeTag()
}

type (
	Bool    struct{}
	U8      struct{}
	U64     struct{}
	U128    struct{}
	Address struct{}
	Signer  struct{}
)

// Vector is vector<Elem>.
type Vector struct {
	Elem TypeTag
}

// StructTag names a struct published at Address and its type arguments.
type StructTag struct {
	Address  codec.Address
	Module   Identifier
	Name     Identifier
	TypeArgs []TypeTag
}

var (
	_ TypeTag = Bool{}
	_ TypeTag = U8{}
	_ TypeTag = U64{}
	_ TypeTag = U128{}
	_ TypeTag = Address{}
	_ TypeTag = Signer{}
	_ TypeTag = Vector{}
	_ TypeTag = StructTag{}
)

func (Bool) Variant() uint32      { return BoolVariant }
func (U8) Variant() uint32        { return U8Variant }
func (U64) Variant() uint32       { return U64Variant }
func (U128) Variant() uint32      { return U128Variant }
func (Address) Variant() uint32   { return AddressVariant }
func (Signer) Variant() uint32    { return SignerVariant }
func (Vector) Variant() uint32    { return VectorVariant }
func (StructTag) Variant() uint32 { return StructVariant }

func (Bool) String() string    { return "bool" }
func (U8) String() string      { return "u8" }
func (U64) String() string     { return "u64" }
func (U128) String() string    { return "u128" }
func (Address) String() string { return "address" }
func (Signer) String() string  { return "signer" }

func (v Vector) String() string {
	return "vector<" + v.Elem.String() + ">"
}

func (t StructTag) String() string {
	var b strings.Builder
	b.WriteString(t.Address.ShortString())
	b.WriteString("::")
	b.WriteString(string(t.Module))
	b.WriteString("::")
	b.WriteString(string(t.Name))
	if len(t.TypeArgs) > 0 {
		b.WriteByte('<')
		for i, arg := range t.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

func (Bool) isTypeTag()      {}
func (U8) isTypeTag()        {}
func (U64) isTypeTag()       {}
func (U128) isTypeTag()      {}
func (Address) isTypeTag()   {}
func (Signer) isTypeTag()    {}
func (Vector) isTypeTag()    {}
func (StructTag) isTypeTag() {}

func (t Bool) Serialize(s *codec.Serializer)    { s.SerializeUleb128(t.Variant()) }
func (t U8) Serialize(s *codec.Serializer)      { s.SerializeUleb128(t.Variant()) }
func (t U64) Serialize(s *codec.Serializer)     { s.SerializeUleb128(t.Variant()) }
func (t U128) Serialize(s *codec.Serializer)    { s.SerializeUleb128(t.Variant()) }
func (t Address) Serialize(s *codec.Serializer) { s.SerializeUleb128(t.Variant()) }
func (t Signer) Serialize(s *codec.Serializer)  { s.SerializeUleb128(t.Variant()) }

func (v Vector) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(v.Variant())
	v.Elem.Serialize(s)
}

func (t StructTag) Serialize(s *codec.Serializer) {
	s.SerializeUleb128(t.Variant())
	t.SerializeBody(s)
}

// SerializeBody writes the struct tag without its TypeTag discriminant.
func (t StructTag) SerializeBody(s *codec.Serializer) {
	t.Address.Serialize(s)
	t.Module.Serialize(s)
	t.Name.Serialize(s)
	codec.SerializeSequence(s, t.TypeArgs)
}

// Is reports whether t names addr::module::name, ignoring type arguments.
func (t StructTag) Is(addr codec.Address, module, name string) bool {
	return t.Address == addr && string(t.Module) == module && string(t.Name) == name
}

// IsString reports whether t is 0x1::string::String.
func (t StructTag) IsString() bool {
	return t.Is(codec.CoreCodeAddress, "string", "String")
}

// DeserializeTypeTag reads a discriminant and the matching variant.
func DeserializeTypeTag(d *codec.Deserializer) TypeTag {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	switch index {
	case BoolVariant:
		return Bool{}
	case U8Variant:
		return U8{}
	case U64Variant:
		return U64{}
	case U128Variant:
		return U128{}
	case AddressVariant:
		return Address{}
	case SignerVariant:
		return Signer{}
	case VectorVariant:
		elem := DeserializeTypeTag(d)
		if d.Err() != nil {
			return nil
		}
		return Vector{Elem: elem}
	case StructVariant:
		t := DeserializeStructTagBody(d)
		if d.Err() != nil {
			return nil
		}
		return t
	default:
		d.UnknownVariant("TypeTag", index)
		return nil
	}
}

// DeserializeStructTagBody reads a struct tag written by SerializeBody.
// Empty type argument lists decode as nil.
func DeserializeStructTagBody(d *codec.Deserializer) StructTag {
	t := StructTag{
		Address: codec.DeserializeAddress(d),
		Module:  DeserializeIdentifier(d),
		Name:    DeserializeIdentifier(d),
	}
	t.TypeArgs = codec.DeserializeSequence(d, DeserializeTypeTag)
	if len(t.TypeArgs) == 0 {
		t.TypeArgs = nil
	}
	return t
}
