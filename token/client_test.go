// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/api/rest"
	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/auth/authtest"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

// fakeNode answers chain metadata and records submissions.
type fakeNode struct {
	submitted []*chain.SignedTransaction
}

func (*fakeNode) GetChainID(context.Context) (chain.ChainID, error) { return 4, nil }

func (*fakeNode) GetSequenceNumber(context.Context, codec.Address) (uint64, error) { return 9, nil }

func (*fakeNode) EstimateGasUnitPrice(context.Context) (uint64, error) { return 100, nil }

func (*fakeNode) GetAccountResource(context.Context, codec.Address, string) (*rest.MoveResource, error) {
	return nil, rest.ErrNotFound
}

func (*fakeNode) GetTableItem(context.Context, string, rest.TableItemRequest, any) error {
	return rest.ErrNotFound
}

func (f *fakeNode) SubmitSignedTransaction(_ context.Context, b []byte) (*rest.PendingTransaction, error) {
	signed, err := chain.UnmarshalSignedTransaction(b)
	if err != nil {
		return nil, err
	}
	f.submitted = append(f.submitted, signed)
	return &rest.PendingTransaction{Hash: "0x1234"}, nil
}

func testTokenID() TokenID {
	return TokenID{
		TokenDataID: TokenDataID{
			Creator:    codec.MustParseAddress("0xa11ce"),
			Collection: "Alice's",
			Name:       "Alice's first token",
		},
	}
}

func TestDirectTransfer(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{}
	cli, err := NewClient(node, builder.Config{MaxGasAmount: 5_000})
	require.NoError(err)

	sender := authtest.NewED25519Factory(t)
	receiver := authtest.NewED25519Factory(t)
	pending, err := cli.DirectTransfer(context.Background(), sender, receiver, testTokenID(), 1)
	require.NoError(err)
	require.Equal("0x1234", pending.Hash)

	require.Len(node.submitted, 1)
	signed := node.submitted[0]
	require.NoError(signed.Verify())
	require.Equal(sender.Address(), signed.RawTxn.Sender)
	require.Equal(uint64(9), signed.RawTxn.SequenceNumber)
	require.Equal(uint64(5_000), signed.RawTxn.MaxGasAmount)
	require.Equal(chain.ChainID(4), signed.RawTxn.ChainID)

	fn, ok := signed.RawTxn.Payload.(*chain.EntryFunction)
	require.True(ok)
	require.Equal(DirectTransferFunction, fn.QualifiedName())
	require.Len(fn.Args, 5)
	require.Equal(testTokenID().TokenDataID.Creator.Bytes(), fn.Args[0])
	require.Equal(append([]byte{7}, "Alice's"...), fn.Args[1])
	require.Equal([]byte{1, 0, 0, 0, 0, 0, 0, 0}, fn.Args[4])

	ma, ok := signed.Authenticator.(*auth.MultiAgent)
	require.True(ok)
	require.Equal([]codec.Address{receiver.Address()}, ma.SecondaryAddresses)
}

func TestOptInDirectTransfer(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{}
	cli, err := NewClient(node, builder.Config{})
	require.NoError(err)

	sender := authtest.NewED25519Factory(t)
	_, err = cli.OptInDirectTransfer(context.Background(), sender, true)
	require.NoError(err)

	require.Len(node.submitted, 1)
	signed := node.submitted[0]
	require.NoError(signed.Verify())
	_, ok := signed.Authenticator.(*auth.ED25519)
	require.True(ok)
	fn, ok := signed.RawTxn.Payload.(*chain.EntryFunction)
	require.True(ok)
	require.Equal(OptInDirectTransferFunction, fn.QualifiedName())
	require.Equal([][]byte{{1}}, fn.Args)
}

func TestBalance(t *testing.T) {
	require := require.New(t)

	owner := codec.MustParseAddress("0xb0b")
	router := mux.NewRouter()
	router.HandleFunc("/v1/accounts/{address}/resource/{type}", func(w http.ResponseWriter, req *http.Request) {
		if mux.Vars(req)["type"] != TokenStoreType {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type": TokenStoreType,
			"data": map[string]any{"tokens": map[string]any{"handle": "0x77"}},
		})
	}).Methods(http.MethodGet)
	router.HandleFunc("/v1/tables/0x77/item", func(w http.ResponseWriter, req *http.Request) {
		var item struct {
			KeyType string  `json:"key_type"`
			Key     TokenID `json:"key"`
		}
		if err := json.NewDecoder(req.Body).Decode(&item); err != nil || item.KeyType != tokenIDType {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if item.Key.TokenDataID.Name != testTokenID().TokenDataID.Name {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"table item not found","error_code":"table_item_not_found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"amount": "3", "id": item.Key})
	}).Methods(http.MethodPost)
	server := httptest.NewServer(router)
	defer server.Close()

	node := rest.New(server.URL+"/v1", rest.WithBackOff(func() backoff.BackOff {
		return &backoff.ZeroBackOff{}
	}))
	cli, err := NewClient(node, builder.Config{})
	require.NoError(err)
	ctx := context.Background()

	bal, err := cli.Balance(ctx, owner, testTokenID())
	require.NoError(err)
	require.Equal(uint64(3), bal)

	missing := testTokenID()
	missing.TokenDataID.Name = "never minted"
	bal, err = cli.Balance(ctx, owner, missing)
	require.NoError(err)
	require.Zero(bal)
}

func TestBalanceWithoutTokenStore(t *testing.T) {
	cli, err := NewClient(&fakeNode{}, builder.Config{})
	require.NoError(t, err)

	_, err = cli.Balance(context.Background(), codec.MustParseAddress("0xb0b"), testTokenID())
	require.ErrorIs(t, err, rest.ErrNotFound)
}
