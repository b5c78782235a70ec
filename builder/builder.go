// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"go.uber.org/zap"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"

	mtrace "github.com/ava-labs/movetx/trace"
)

const (
	DefaultMaxGasAmount  uint64 = 20_000
	DefaultExpSecFromNow uint64 = 20
)

// Config holds the fields of a raw transaction that do not come from the
// payload. Zero MaxGasAmount and ExpSecFromNow take the defaults; a
// missing Sender or zero GasUnitPrice fails the build.
type Config struct {
	Sender         *codec.Address
	SequenceNumber uint64
	GasUnitPrice   uint64
	MaxGasAmount   uint64
	ExpSecFromNow  uint64
	ChainID        chain.ChainID
}

func (c Config) maxGasAmount() uint64 {
	if c.MaxGasAmount == 0 {
		return DefaultMaxGasAmount
	}
	return c.MaxGasAmount
}

func (c Config) expSecFromNow() uint64 {
	if c.ExpSecFromNow == 0 {
		return DefaultExpSecFromNow
	}
	return c.ExpSecFromNow
}

type Option func(*options)

type options struct {
	clock  *mockable.Clock
	log    logging.Logger
	tracer trace.Tracer
}

func newOptions(opts []Option) options {
	o := options{
		clock:  &mockable.Clock{},
		log:    logging.NoLog{},
		tracer: mtrace.Noop,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the clock expiration timestamps are computed from.
func WithClock(clock *mockable.Clock) Option {
	return func(o *options) { o.clock = clock }
}

func WithLogger(log logging.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// Builder turns a function name, type arguments and loosely typed values
// into a raw transaction, using resolver to find the function's ABI.
//
// A Builder may build any number of transactions. It is not safe for
// concurrent use while SetSequenceNumber is being called.
type Builder struct {
	resolver abi.Resolver
	config   Config
	options
}

func New(resolver abi.Resolver, config Config, opts ...Option) *Builder {
	return &Builder{
		resolver: resolver,
		config:   config,
		options:  newOptions(opts),
	}
}

func (b *Builder) Config() Config {
	return b.config
}

func (b *Builder) SetSequenceNumber(seq uint64) {
	b.config.SequenceNumber = seq
}

// BuildPayload encodes a call to fn. It needs no sender or chain state,
// so it can be handed to another party to sign.
func (b *Builder) BuildPayload(
	ctx context.Context,
	fn string,
	tyTags []string,
	args []dynamic.Value,
) (chain.TransactionPayload, error) {
	typeArgs, err := typetag.ParseAll(tyTags)
	if err != nil {
		return nil, err
	}
	if len(typeArgs) == 0 {
		typeArgs = nil
	}
	fnABI, err := b.resolver.Resolve(ctx, fn)
	if err != nil {
		return nil, err
	}
	if len(fnABI.TypeArgs()) != len(typeArgs) {
		return nil, fmt.Errorf("%w: %s expects %d but found %d",
			ErrWrongTypeArgCount, fn, len(fnABI.TypeArgs()), len(typeArgs))
	}

	switch a := fnABI.(type) {
	case *abi.EntryFunctionABI:
		encoded, err := dynamic.EncodeArgs(a.ArgList, args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		return chain.NewEntryFunction(a.ModuleName, a.Name, typeArgs, encoded), nil
	case *abi.TransactionScriptABI:
		scriptArgs, err := dynamic.ScriptArgs(a.ArgList, args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		if len(scriptArgs) == 0 {
			scriptArgs = nil
		}
		return &chain.Script{Code: a.Code, TypeArgs: typeArgs, Args: scriptArgs}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownABI, fnABI)
	}
}

// Build returns the raw transaction calling fn. Nothing is returned
// unless every argument encodes.
func (b *Builder) Build(
	ctx context.Context,
	fn string,
	tyTags []string,
	args []dynamic.Value,
) (*chain.RawTransaction, error) {
	ctx, span := b.tracer.Start(ctx, "Builder.Build")
	defer span.End()

	if b.config.Sender == nil {
		return nil, ErrMissingSender
	}
	if b.config.GasUnitPrice == 0 {
		return nil, ErrMissingGasUnitPrice
	}
	payload, err := b.BuildPayload(ctx, fn, tyTags, args)
	if err != nil {
		return nil, err
	}
	raw := &chain.RawTransaction{
		Sender:                  *b.config.Sender,
		SequenceNumber:          b.config.SequenceNumber,
		Payload:                 payload,
		MaxGasAmount:            b.config.maxGasAmount(),
		GasUnitPrice:            b.config.GasUnitPrice,
		ExpirationTimestampSecs: b.clock.Unix() + b.config.expSecFromNow(),
		ChainID:                 b.config.ChainID,
	}
	b.log.Debug("built transaction",
		zap.String("function", fn),
		zap.String("sender", raw.Sender.ShortString()),
		zap.Uint64("sequenceNumber", raw.SequenceNumber),
		zap.Uint64("expiration", raw.ExpirationTimestampSecs),
	)
	return raw, nil
}
