// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/codectest"
	"github.com/ava-labs/movetx/typetag"
)

func coinTransferABI() *EntryFunctionABI {
	return &EntryFunctionABI{
		Name:       "transfer",
		ModuleName: typetag.NewModuleID(codec.CoreCodeAddress, "coin"),
		Doc:        "",
		TyArgs:     []TypeArgumentABI{{Name: "CoinType"}},
		ArgList: []ArgumentABI{
			{Name: "to", TypeTag: typetag.Address{}},
			{Name: "amount", TypeTag: typetag.U64{}},
		},
	}
}

func TestEntryFunctionABIEncoding(t *testing.T) {
	require := require.New(t)

	b := codectest.RoundTrip[ScriptABI](t, coinTransferABI(), DeserializeScriptABI)

	expected := []byte{1, 8}
	expected = append(expected, "transfer"...)
	expected = append(expected, codec.CoreCodeAddress[:]...)
	expected = append(expected, 4)
	expected = append(expected, "coin"...)
	expected = append(expected, 0)    // doc
	expected = append(expected, 1, 8) // one type arg
	expected = append(expected, "CoinType"...)
	expected = append(expected, 2, 2)
	expected = append(expected, "to"...)
	expected = append(expected, 4, 6)
	expected = append(expected, "amount"...)
	expected = append(expected, 2)
	require.Equal(expected, b)
}

func TestTransactionScriptABIEncoding(t *testing.T) {
	require := require.New(t)

	a := &TransactionScriptABI{
		Name:    "main",
		Doc:     "mint",
		Code:    []byte{0xa1, 0x1c, 0xeb, 0x0b},
		TyArgs:  []TypeArgumentABI{},
		ArgList: []ArgumentABI{{Name: "amount", TypeTag: typetag.U64{}}},
	}
	b := codectest.RoundTrip[ScriptABI](t, a, DeserializeScriptABI)
	require.Equal(byte(TransactionScriptID), b[0])
	require.Equal("main", a.QualifiedName())
}

func TestUnmarshalScriptABIErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
	}{
		{name: "empty", input: nil, err: codec.ErrInsufficientBytes},
		{name: "unknown variant", input: []byte{2}, err: codec.ErrUnknownVariant},
		{name: "truncated", input: []byte{1, 8, 't'}, err: codec.ErrInsufficientBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := UnmarshalScriptABI(tt.input)
			require.ErrorIs(err, tt.err)
		})
	}

	b, err := codec.Marshal(coinTransferABI())
	require.NoError(t, err)
	_, err = UnmarshalScriptABI(append(b, 0))
	require.ErrorIs(t, err, codec.ErrTrailingBytes)
}
