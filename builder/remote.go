// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

// ChainMetadata answers the chain state a raw transaction needs.
type ChainMetadata interface {
	GetChainID(ctx context.Context) (chain.ChainID, error)
	GetSequenceNumber(ctx context.Context, addr codec.Address) (uint64, error)
	EstimateGasUnitPrice(ctx context.Context) (uint64, error)
}

// Remote fills the sequence number, chain id and gas unit price from the
// chain when the config leaves them zero.
type Remote struct {
	metadata ChainMetadata
	resolver abi.Resolver
	config   Config
	opts     []Option
	options
}

func NewRemote(metadata ChainMetadata, resolver abi.Resolver, config Config, opts ...Option) *Remote {
	return &Remote{
		metadata: metadata,
		resolver: resolver,
		config:   config,
		opts:     opts,
		options:  newOptions(opts),
	}
}

// Build looks up the missing fields concurrently, then builds fn.
func (r *Remote) Build(
	ctx context.Context,
	fn string,
	tyTags []string,
	args []dynamic.Value,
) (*chain.RawTransaction, error) {
	ctx, span := r.tracer.Start(ctx, "RemoteBuilder.Build")
	defer span.End()

	config, err := r.FillConfig(ctx)
	if err != nil {
		return nil, err
	}
	return New(r.resolver, config, r.opts...).Build(ctx, fn, tyTags, args)
}

// FillConfig returns the config with every zero chain field looked up.
func (r *Remote) FillConfig(ctx context.Context) (Config, error) {
	config := r.config
	if config.Sender == nil {
		return Config{}, ErrMissingSender
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	if config.SequenceNumber == 0 {
		g.Go(func() error {
			seq, err := r.metadata.GetSequenceNumber(gctx, *config.Sender)
			config.SequenceNumber = seq
			return err
		})
	}
	if config.ChainID == 0 {
		g.Go(func() error {
			id, err := r.metadata.GetChainID(gctx)
			config.ChainID = id
			return err
		})
	}
	if config.GasUnitPrice == 0 {
		g.Go(func() error {
			price, err := r.metadata.EstimateGasUnitPrice(gctx)
			config.GasUnitPrice = price
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Config{}, err
	}
	r.log.Debug("filled transaction config",
		zap.String("sender", config.Sender.ShortString()),
		zap.Uint64("sequenceNumber", config.SequenceNumber),
		zap.Uint8("chainID", uint8(config.ChainID)),
		zap.Uint64("gasUnitPrice", config.GasUnitPrice),
		zap.Duration("t", time.Since(start)),
	)
	return config, nil
}
