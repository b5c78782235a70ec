// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/api/rest"
	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

// Node is the part of the node API the token client needs.
type Node interface {
	builder.ChainMetadata

	GetAccountResource(ctx context.Context, addr codec.Address, resourceType string) (*rest.MoveResource, error)
	GetTableItem(ctx context.Context, handle string, req rest.TableItemRequest, out any) error
	SubmitSignedTransaction(ctx context.Context, signed []byte) (*rest.PendingTransaction, error)
}

var _ Node = (*rest.Client)(nil)

type TokenDataID struct {
	Creator    codec.Address `json:"creator"`
	Collection string        `json:"collection"`
	Name       string        `json:"name"`
}

type TokenID struct {
	TokenDataID     TokenDataID `json:"token_data_id"`
	PropertyVersion uint64      `json:"property_version,string"`
}

type tokenStore struct {
	Tokens struct {
		Handle string `json:"handle"`
	} `json:"tokens"`
}

type tokenValue struct {
	Amount uint64 `json:"amount,string"`
}

type Option func(*Client)

func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithBuilderOptions passes opts to every transaction builder.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(c *Client) { c.opts = append(c.opts, opts...) }
}

// Client sends token transactions built from the token module ABIs.
type Client struct {
	node     Node
	resolver *abi.LocalResolver
	config   builder.Config
	opts     []builder.Option
	log      logging.Logger
}

// NewClient builds transactions with config. Its Sender is replaced by
// the signing account of every call.
func NewClient(node Node, config builder.Config, opts ...Option) (*Client, error) {
	resolver, err := abi.NewLocalResolverFromABIs(entryABIs())
	if err != nil {
		return nil, err
	}
	c := &Client{
		node:     node,
		resolver: resolver,
		config:   config,
		log:      logging.NoLog{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) remote(sender codec.Address) *builder.Remote {
	config := c.config
	config.Sender = &sender
	return builder.NewRemote(c.node, c.resolver, config, c.opts...)
}

// DirectTransfer moves amount of a token from sender to receiver. Both
// accounts sign the transaction.
func (c *Client) DirectTransfer(
	ctx context.Context,
	sender auth.AccountSigner,
	receiver auth.AccountSigner,
	id TokenID,
	amount uint64,
) (*rest.PendingTransaction, error) {
	raw, err := c.remote(sender.Address()).Build(ctx, DirectTransferFunction, nil, []dynamic.Value{
		dynamic.Address(id.TokenDataID.Creator),
		dynamic.Text(id.TokenDataID.Collection),
		dynamic.Text(id.TokenDataID.Name),
		dynamic.Text(strconv.FormatUint(id.PropertyVersion, 10)),
		dynamic.Text(strconv.FormatUint(amount, 10)),
	})
	if err != nil {
		return nil, err
	}
	signed, err := builder.SignMultiAgent(raw, sender, receiver)
	if err != nil {
		return nil, err
	}
	b, err := signed.Bytes()
	if err != nil {
		return nil, err
	}
	pending, err := c.node.SubmitSignedTransaction(ctx, b)
	if err != nil {
		return nil, err
	}
	c.log.Debug("submitted direct transfer",
		zap.String("sender", sender.Address().ShortString()),
		zap.String("receiver", receiver.Address().ShortString()),
		zap.String("token", id.TokenDataID.Name),
		zap.Uint64("amount", amount),
		zap.String("hash", pending.Hash),
	)
	return pending, nil
}

// OptInDirectTransfer lets other accounts transfer tokens to sender
// without its signature.
func (c *Client) OptInDirectTransfer(ctx context.Context, sender auth.AccountSigner, optIn bool) (*rest.PendingTransaction, error) {
	raw, err := c.remote(sender.Address()).Build(ctx, OptInDirectTransferFunction, nil, []dynamic.Value{dynamic.Bool(optIn)})
	if err != nil {
		return nil, err
	}
	msg, err := chain.SigningMessage(raw)
	if err != nil {
		return nil, err
	}
	a, err := sender.SignAccount(msg)
	if err != nil {
		return nil, err
	}
	txAuth, ok := a.(auth.TransactionAuthenticator)
	if !ok {
		return nil, fmt.Errorf("%w: %T", auth.ErrInvalidKeyType, a)
	}
	b, err := chain.NewSignedTransaction(raw, txAuth).Bytes()
	if err != nil {
		return nil, err
	}
	return c.node.SubmitSignedTransaction(ctx, b)
}

// Balance returns how much of id owner holds. A token missing from the
// owner's store is a zero balance.
func (c *Client) Balance(ctx context.Context, owner codec.Address, id TokenID) (uint64, error) {
	resource, err := c.node.GetAccountResource(ctx, owner, TokenStoreType)
	if err != nil {
		return 0, err
	}
	var store tokenStore
	if err := json.Unmarshal(resource.Data, &store); err != nil {
		return 0, fmt.Errorf("%w: token store: %w", rest.ErrInvalidResponse, err)
	}

	var value tokenValue
	err = c.node.GetTableItem(ctx, store.Tokens.Handle, rest.TableItemRequest{
		KeyType:   tokenIDType,
		ValueType: tokenType,
		Key:       id,
	}, &value)
	switch {
	case errors.Is(err, rest.ErrNotFound):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return value.Amount, nil
}
