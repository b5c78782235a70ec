// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/crypto/ed25519"
	"github.com/ava-labs/movetx/token"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Query and transfer tokens",
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print how much of a token an account holds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
		defer cancel()

		e, cli, err := newTokenClient(cmd)
		if err != nil {
			return err
		}
		id, err := tokenID(cmd)
		if err != nil {
			return err
		}
		var owner codec.Address
		if s, _ := cmd.Flags().GetString("owner"); s != "" {
			owner, err = codec.ParseAddress(s)
		} else {
			owner, err = senderAddress(cmd)
		}
		if err != nil {
			return err
		}
		bal, err := cli.Balance(ctx, owner, id)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		e.log.Debug("fetched token balance")
		return printValue(cmd, tokenBalanceCmdResponse{Owner: owner.String(), Balance: bal})
	},
}

var tokenTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer a token, signed by both the sender and the receiver",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
		defer cancel()

		_, cli, err := newTokenClient(cmd)
		if err != nil {
			return err
		}
		id, err := tokenID(cmd)
		if err != nil {
			return err
		}
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		receiverHex, _ := cmd.Flags().GetString("receiver-key")
		receiverKey, err := ed25519.HexToKey(receiverHex)
		if err != nil {
			return fmt.Errorf("failed to decode receiver key: %w", err)
		}
		amount, _ := cmd.Flags().GetUint64("amount")

		pending, err := cli.DirectTransfer(ctx,
			auth.NewED25519Factory(key),
			auth.NewED25519Factory(receiverKey),
			id,
			amount,
		)
		if err != nil {
			return fmt.Errorf("failed to transfer token: %w", err)
		}
		return printValue(cmd, tokenTransferCmdResponse{Hash: pending.Hash})
	},
}

func newTokenClient(cmd *cobra.Command) (*env, *token.Client, error) {
	e, err := newEnv(cmd)
	if err != nil {
		return nil, nil, err
	}
	cli, err := token.NewClient(e.client, e.defaults.BuilderConfig(codec.Address{}),
		token.WithLogger(e.log),
		token.WithBuilderOptions(builder.WithLogger(e.log), builder.WithTracer(e.tracer)),
	)
	if err != nil {
		return nil, nil, err
	}
	return e, cli, nil
}

func tokenID(cmd *cobra.Command) (token.TokenID, error) {
	creator, _ := cmd.Flags().GetString("creator")
	addr, err := codec.ParseAddress(creator)
	if err != nil {
		return token.TokenID{}, fmt.Errorf("failed to parse creator: %w", err)
	}
	collection, _ := cmd.Flags().GetString("collection")
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetUint64("property-version")
	return token.TokenID{
		TokenDataID: token.TokenDataID{
			Creator:    addr,
			Collection: collection,
			Name:       name,
		},
		PropertyVersion: version,
	}, nil
}

type tokenBalanceCmdResponse struct {
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

func (r tokenBalanceCmdResponse) String() string {
	return fmt.Sprintf("%s holds %d", r.Owner, r.Balance)
}

type tokenTransferCmdResponse struct {
	Hash string `json:"hash"`
}

func (r tokenTransferCmdResponse) String() string {
	return "✅ submitted transfer (hash: " + r.Hash + ")"
}

func init() {
	for _, c := range []*cobra.Command{tokenBalanceCmd, tokenTransferCmd} {
		c.Flags().String("creator", "", "Address of the token creator")
		c.Flags().String("collection", "", "Collection name")
		c.Flags().String("name", "", "Token name")
		c.Flags().Uint64("property-version", 0, "Property version of the token")
		_ = c.MarkFlagRequired("creator")
		_ = c.MarkFlagRequired("collection")
		_ = c.MarkFlagRequired("name")
	}
	tokenBalanceCmd.Flags().String("owner", "", "Owner address (defaults to the key's address)")
	tokenTransferCmd.Flags().String("receiver-key", "", "Private key of the receiver as hex string")
	tokenTransferCmd.Flags().Uint64("amount", 1, "Amount to transfer")
	_ = tokenTransferCmd.MarkFlagRequired("receiver-key")

	tokenCmd.AddCommand(tokenBalanceCmd, tokenTransferCmd)
	rootCmd.AddCommand(tokenCmd)
}
