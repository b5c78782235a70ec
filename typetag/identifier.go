// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typetag

import (
	"fmt"
	"strings"

	"github.com/ava-labs/movetx/codec"
)

// Identifier is a module, function or struct name.
type Identifier string

func (i Identifier) Serialize(s *codec.Serializer) {
	s.SerializeStr(string(i))
}

func DeserializeIdentifier(d *codec.Deserializer) Identifier {
	return Identifier(d.DeserializeStr())
}

// ModuleID identifies a module published at Address.
type ModuleID struct {
	Address codec.Address
	Name    Identifier
}

func NewModuleID(addr codec.Address, name string) ModuleID {
	return ModuleID{Address: addr, Name: Identifier(name)}
}

// ParseModuleID parses "addr::module".
func ParseModuleID(s string) (ModuleID, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 2 || parts[1] == "" {
		return ModuleID{}, fmt.Errorf("%w: module id %q", ErrInvalidTypeTag, s)
	}
	addr, err := codec.ParseAddress(parts[0])
	if err != nil {
		return ModuleID{}, fmt.Errorf("%w: %w", ErrInvalidTypeTag, err)
	}
	return NewModuleID(addr, parts[1]), nil
}

func (m ModuleID) String() string {
	return m.Address.ShortString() + "::" + string(m.Name)
}

func (m ModuleID) Serialize(s *codec.Serializer) {
	m.Address.Serialize(s)
	m.Name.Serialize(s)
}

func DeserializeModuleID(d *codec.Deserializer) ModuleID {
	return ModuleID{
		Address: codec.DeserializeAddress(d),
		Name:    DeserializeIdentifier(d),
	}
}
