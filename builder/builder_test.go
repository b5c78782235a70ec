// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/crypto/ed25519"
	"github.com/ava-labs/movetx/typetag"
)

const (
	transferFn = "0x1::coin::transfer"
	aptosCoin  = "0x1::aptos_coin::AptosCoin"
)

func testResolver(t *testing.T) abi.Resolver {
	r, err := abi.NewLocalResolverFromABIs([]abi.ScriptABI{
		&abi.EntryFunctionABI{
			Name:       "transfer",
			ModuleName: typetag.NewModuleID(codec.CoreCodeAddress, "coin"),
			TyArgs:     []abi.TypeArgumentABI{{Name: "CoinType"}},
			ArgList: []abi.ArgumentABI{
				{Name: "to", TypeTag: typetag.Address{}},
				{Name: "amount", TypeTag: typetag.U64{}},
			},
		},
		&abi.TransactionScriptABI{
			Name: "mint",
			Code: []byte{0xa1, 0x1c, 0xeb, 0x0b},
			ArgList: []abi.ArgumentABI{
				{Name: "to", TypeTag: typetag.Address{}},
				{Name: "amount", TypeTag: typetag.U64{}},
			},
		},
	})
	require.NoError(t, err)
	return r
}

func clockAt(unix int64) *mockable.Clock {
	c := &mockable.Clock{}
	c.Set(time.Unix(unix, 0))
	return c
}

func u64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func str(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

// expectedTransferBytes is the encoding of the sender 0x1 transfer of
// 1000 AptosCoin to 0x2.
func expectedTransferBytes() []byte {
	two := codec.MustParseAddress("0x2")
	b := append([]byte{}, codec.CoreCodeAddress[:]...) // sender
	b = append(b, u64(5)...)                            // sequence number
	b = append(b, 2)                                    // entry function
	b = append(b, codec.CoreCodeAddress[:]...)
	b = append(b, str("coin")...)
	b = append(b, str("transfer")...)
	b = append(b, 1, 7) // one struct type arg
	b = append(b, codec.CoreCodeAddress[:]...)
	b = append(b, str("aptos_coin")...)
	b = append(b, str("AptosCoin")...)
	b = append(b, 0)
	b = append(b, 2, 32) // two args
	b = append(b, two[:]...)
	b = append(b, 8)
	b = append(b, u64(1000)...)
	b = append(b, u64(2000)...)       // max gas
	b = append(b, u64(100)...)        // gas unit price
	b = append(b, u64(1700000000)...) // expiration
	return append(b, 4)               // chain id
}

// signedTransferHex is expectedTransferBytes signed by the key with
// seed 0x0707..07.
const signedTransferHex = "0000000000000000000000000000000000000000000000000000000000000001" +
	"0500000000000000020000000000000000000000000000000000000000000000" +
	"00000000000000000104636f696e087472616e73666572010700000000000000" +
	"000000000000000000000000000000000000000000000000010a6170746f735f" +
	"636f696e094170746f73436f696e000220000000000000000000000000000000" +
	"000000000000000000000000000000000208e803000000000000d00700000000" +
	"0000640000000000000000f1536500000000040020ea4a6c63e29c520abef550" +
	"7b132ec5f9954776aebebe7b92421eea691446d22c4018f096a7d64f9ee1afcf" +
	"d4f490ed8aac7e0ea7a55396286abc62e24183f0a37f1395c1e1237302fd24d1" +
	"23d253da45fa2489e5a90dd21829c9e5b61cce34890e"

func TestBuildAndSignConformance(t *testing.T) {
	require := require.New(t)

	sender := codec.CoreCodeAddress
	priv, err := ed25519.PrivateKeyFromSeed(bytes.Repeat([]byte{7}, ed25519.PrivateKeySeedLen))
	require.NoError(err)
	factory := auth.NewED25519FactoryWithAddress(priv, sender)
	b := New(testResolver(t), Config{
		Sender:         &sender,
		SequenceNumber: 5,
		GasUnitPrice:   100,
		MaxGasAmount:   2000,
		ChainID:        4,
	}, WithClock(clockAt(1700000000-int64(DefaultExpSecFromNow))))

	build := func() []byte {
		raw, err := b.Build(context.Background(), transferFn, []string{aptosCoin}, []dynamic.Value{dynamic.Text("0x2"), dynamic.Int(1000)})
		require.NoError(err)

		rawBytes, err := codec.Marshal(raw)
		require.NoError(err)
		require.Equal(expectedTransferBytes(), rawBytes)

		signer := NewEd25519SignerFromFactory(factory)
		signedBytes, err := signer.Sign(raw)
		require.NoError(err)

		signed, err := chain.UnmarshalSignedTransaction(signedBytes)
		require.NoError(err)
		require.NoError(signed.Verify())

		pk := factory.PublicKey()
		prefix := append(append(append([]byte{}, rawBytes...), 0, 32), pk[:]...)
		require.Equal(prefix, signedBytes[:len(prefix)])
		require.Equal(byte(64), signedBytes[len(prefix)])
		require.Len(signedBytes, len(prefix)+1+64)
		return signedBytes
	}
	expected, err := codec.LoadHex(signedTransferHex, -1)
	require.NoError(err)
	require.Equal(expected, build())
	// the builder is reusable and signing is deterministic
	require.Equal(expected, build())
}

func TestBuildDefaults(t *testing.T) {
	require := require.New(t)

	sender := codec.MustParseAddress("0xcafe")
	b := New(testResolver(t), Config{Sender: &sender, GasUnitPrice: 1}, WithClock(clockAt(1000)))
	raw, err := b.Build(context.Background(), transferFn, []string{aptosCoin}, dynamic.Texts("0x2", "1"))
	require.NoError(err)
	require.Equal(DefaultMaxGasAmount, raw.MaxGasAmount)
	require.Equal(uint64(20_000), raw.MaxGasAmount)
	require.Equal(uint64(1020), raw.ExpirationTimestampSecs)
	require.Equal(uint64(0), raw.SequenceNumber)

	b.SetSequenceNumber(9)
	raw, err = b.Build(context.Background(), transferFn, []string{aptosCoin}, dynamic.Texts("0x2", "1"))
	require.NoError(err)
	require.Equal(uint64(9), raw.SequenceNumber)
	require.Equal(uint64(9), b.Config().SequenceNumber)
}

func TestBuildErrors(t *testing.T) {
	sender := codec.CoreCodeAddress

	tests := []struct {
		name   string
		config Config
		fn     string
		tyTags []string
		args   []dynamic.Value
		err    error
	}{
		{
			name:   "missing sender",
			config: Config{GasUnitPrice: 100},
			fn:     transferFn,
			tyTags: []string{aptosCoin},
			args:   dynamic.Texts("0x2", "1"),
			err:    ErrMissingSender,
		},
		{
			name:   "missing gas unit price",
			config: Config{Sender: &sender},
			fn:     transferFn,
			tyTags: []string{aptosCoin},
			args:   dynamic.Texts("0x2", "1"),
			err:    ErrMissingGasUnitPrice,
		},
		{
			name:   "unknown function",
			config: Config{Sender: &sender, GasUnitPrice: 100},
			fn:     "0x1::coin::burn",
			tyTags: []string{aptosCoin},
			args:   dynamic.Texts("0x2", "1"),
			err:    abi.ErrFunctionNotFound,
		},
		{
			name:   "wrong arg count",
			config: Config{Sender: &sender, GasUnitPrice: 100},
			fn:     transferFn,
			tyTags: []string{aptosCoin},
			args:   dynamic.Texts("0x2"),
			err:    dynamic.ErrWrongArgCount,
		},
		{
			name:   "invalid arg",
			config: Config{Sender: &sender, GasUnitPrice: 100},
			fn:     transferFn,
			tyTags: []string{aptosCoin},
			args:   []dynamic.Value{dynamic.Text("0x2"), dynamic.Bool(true)},
			err:    dynamic.ErrInvalidArg,
		},
		{
			name:   "wrong type arg count",
			config: Config{Sender: &sender, GasUnitPrice: 100},
			fn:     transferFn,
			args:   dynamic.Texts("0x2", "1"),
			err:    ErrWrongTypeArgCount,
		},
		{
			name:   "invalid type tag",
			config: Config{Sender: &sender, GasUnitPrice: 100},
			fn:     transferFn,
			tyTags: []string{"0x1::aptos_coin"},
			args:   dynamic.Texts("0x2", "1"),
			err:    typetag.ErrInvalidTypeTag,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			raw, err := New(testResolver(t), tt.config).Build(context.Background(), tt.fn, tt.tyTags, tt.args)
			require.ErrorIs(err, tt.err)
			require.Nil(raw)
		})
	}
}

func TestBuildScript(t *testing.T) {
	require := require.New(t)

	sender := codec.CoreCodeAddress
	b := New(testResolver(t), Config{Sender: &sender, GasUnitPrice: 100})
	raw, err := b.Build(context.Background(), "mint", nil, dynamic.Texts("0x2", "50"))
	require.NoError(err)
	require.Equal(&chain.Script{
		Code: []byte{0xa1, 0x1c, 0xeb, 0x0b},
		Args: []chain.TransactionArgument{
			&chain.AddressArg{Value: codec.MustParseAddress("0x2")},
			&chain.U64Arg{Value: 50},
		},
	}, raw.Payload)
}

func TestBuildPayloadWithoutSender(t *testing.T) {
	require := require.New(t)

	payload, err := New(testResolver(t), Config{}).BuildPayload(context.Background(), transferFn, []string{aptosCoin}, dynamic.Texts("0x2", "1000"))
	require.NoError(err)
	ef, ok := payload.(*chain.EntryFunction)
	require.True(ok)
	require.Equal(transferFn, ef.QualifiedName())
	require.Equal([]byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0}, ef.Args[1])
}
