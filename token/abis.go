// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

const (
	DirectTransferFunction      = "0x3::token::direct_transfer_script"
	OptInDirectTransferFunction = "0x3::token::opt_in_direct_transfer"

	TokenStoreType = "0x3::token::TokenStore"
	tokenIDType    = "0x3::token::TokenId"
	tokenType      = "0x3::token::Token"
)

// TokenAddress is 0x3, where the token modules are published.
var TokenAddress = codec.Address{31: 3}

var stringTag = typetag.StructTag{
	Address: codec.CoreCodeAddress,
	Module:  "string",
	Name:    "String",
}

// entryABIs are the token entry functions the client calls.
func entryABIs() []abi.ScriptABI {
	module := typetag.NewModuleID(TokenAddress, "token")
	return []abi.ScriptABI{
		&abi.EntryFunctionABI{
			Name:       "direct_transfer_script",
			ModuleName: module,
			ArgList: []abi.ArgumentABI{
				{Name: "creators_address", TypeTag: typetag.Address{}},
				{Name: "collection", TypeTag: stringTag},
				{Name: "name", TypeTag: stringTag},
				{Name: "property_version", TypeTag: typetag.U64{}},
				{Name: "amount", TypeTag: typetag.U64{}},
			},
		},
		&abi.EntryFunctionABI{
			Name:       "opt_in_direct_transfer",
			ModuleName: module,
			ArgList: []abi.ArgumentABI{
				{Name: "opt_in", TypeTag: typetag.Bool{}},
			},
		},
	}
}
