// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/neilotoole/errgroup"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/movetx/cache"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"

	mtrace "github.com/ava-labs/movetx/trace"
)

const (
	DefaultCacheTTL = 10 * time.Minute
	// number of accounts whose modules are kept
	defaultCacheSize = 256
)

// ModuleLookup lists the modules published under an account.
type ModuleLookup interface {
	GetAccountModules(ctx context.Context, addr codec.Address) ([]MoveModuleBytecode, error)
}

type MoveModuleBytecode struct {
	Bytecode codec.Bytes `json:"bytecode"`
	ABI      *MoveModule `json:"abi,omitempty"`
}

type MoveModule struct {
	Address          codec.Address  `json:"address"`
	Name             string         `json:"name"`
	ExposedFunctions []MoveFunction `json:"exposed_functions"`
}

type MoveFunctionGenericTypeParam struct {
	Constraints []string `json:"constraints"`
}

type MoveFunction struct {
	Name              string                         `json:"name"`
	Visibility        string                         `json:"visibility"`
	IsEntry           bool                           `json:"is_entry"`
	GenericTypeParams []MoveFunctionGenericTypeParam `json:"generic_type_params"`
	Params            []string                       `json:"params"`
	Return            []string                       `json:"return"`
}

type remoteEntry struct {
	abi *EntryFunctionABI
	err error
}

type accountABIs map[string]remoteEntry

type Option func(*RemoteResolver)

func WithCacheTTL(ttl time.Duration) Option {
	return func(r *RemoteResolver) { r.ttl = ttl }
}

func WithClock(clock *mockable.Clock) Option {
	return func(r *RemoteResolver) { r.clock = clock }
}

func WithLogger(log logging.Logger) Option {
	return func(r *RemoteResolver) { r.log = log }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *RemoteResolver) { r.tracer = tracer }
}

func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(r *RemoteResolver) { r.registerer = registerer }
}

// RemoteResolver builds entry function ABIs from the module listing of
// the function's account. Listings are cached per account.
type RemoteResolver struct {
	lookup ModuleLookup

	ttl        time.Duration
	clock      *mockable.Clock
	log        logging.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer

	metrics *metrics
	cache   *cache.Expiring[codec.Address, accountABIs]
}

func NewRemoteResolver(lookup ModuleLookup, opts ...Option) (*RemoteResolver, error) {
	r := &RemoteResolver{
		lookup: lookup,
		ttl:    DefaultCacheTTL,
		clock:  &mockable.Clock{},
		log:    logging.NoLog{},
		tracer: mtrace.Noop,
	}
	for _, opt := range opts {
		opt(r)
	}
	m, err := newMetrics(r.registerer)
	if err != nil {
		return nil, err
	}
	r.metrics = m
	c, err := cache.NewExpiring[codec.Address, accountABIs](defaultCacheSize, r.ttl, r.clock)
	if err != nil {
		return nil, err
	}
	r.cache = c
	return r, nil
}

func (r *RemoteResolver) Resolve(ctx context.Context, name string) (ScriptABI, error) {
	ctx, span := r.tracer.Start(ctx, "RemoteResolver.Resolve")
	defer span.End()

	fn, err := ParseFunctionName(name)
	if err != nil {
		return nil, err
	}
	abis, err := r.accountABIs(ctx, fn.Address)
	if err != nil {
		return nil, err
	}
	entry, ok := abis[fn.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, fn)
	}
	if entry.err != nil {
		return nil, entry.err
	}
	return entry.abi, nil
}

// Prefetch warms the cache for addrs, fetching at most limit accounts at
// once. Duplicate addresses are fetched once.
func (r *RemoteResolver) Prefetch(ctx context.Context, addrs []codec.Address, limit int) error {
	if limit <= 0 {
		limit = 1
	}
	unique := set.Of(addrs...)
	g, gctx := errgroup.WithContextN(ctx, limit, unique.Len())
	for addr := range unique {
		addr := addr
		g.Go(func() error {
			_, err := r.accountABIs(gctx, addr)
			return err
		})
	}
	return g.Wait()
}

func (r *RemoteResolver) accountABIs(ctx context.Context, addr codec.Address) (accountABIs, error) {
	if abis, ok := r.cache.Get(addr); ok {
		r.metrics.cacheHits.Inc()
		r.log.Debug("abi cache hit", zap.String("account", addr.ShortString()))
		return abis, nil
	}
	r.metrics.cacheMisses.Inc()

	abis, err := r.fetch(ctx, addr)
	if err != nil {
		r.metrics.fetchFailures.Inc()
		return nil, err
	}
	r.cache.Put(addr, abis)
	return abis, nil
}

func (r *RemoteResolver) fetch(ctx context.Context, addr codec.Address) (accountABIs, error) {
	ctx, span := r.tracer.Start(ctx, "RemoteResolver.fetch")
	defer span.End()

	start := time.Now()
	modules, err := r.lookup.GetAccountModules(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("fetching modules of %s: %w", addr.ShortString(), err)
	}
	abis := accountABIs{}
	for _, module := range modules {
		if module.ABI == nil {
			continue
		}
		for _, fn := range module.ABI.ExposedFunctions {
			if !fn.IsEntry {
				continue
			}
			name := FunctionName{
				Address:  module.ABI.Address,
				Module:   module.ABI.Name,
				Function: fn.Name,
			}
			abi, err := entryFunctionABI(module.ABI, fn)
			abis[name.String()] = remoteEntry{abi: abi, err: err}
		}
	}
	r.log.Debug("fetched account abis",
		zap.String("account", addr.ShortString()),
		zap.Int("modules", len(modules)),
		zap.Int("entryFunctions", len(abis)),
		zap.Duration("t", time.Since(start)),
	)
	return abis, nil
}

// entryFunctionABI drops the leading signer parameters, which the VM
// supplies, and names the rest var0, var1, ...
func entryFunctionABI(module *MoveModule, fn MoveFunction) (*EntryFunctionABI, error) {
	params := fn.Params
	for len(params) > 0 && (params[0] == "signer" || params[0] == "&signer") {
		params = params[1:]
	}
	args := make([]ArgumentABI, len(params))
	for i, p := range params {
		tag, err := typetag.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("%s::%s::%s param %d: %w", module.Address.ShortString(), module.Name, fn.Name, i, err)
		}
		args[i] = ArgumentABI{Name: "var" + strconv.Itoa(i), TypeTag: tag}
	}
	tyArgs := make([]TypeArgumentABI, len(fn.GenericTypeParams))
	for i := range tyArgs {
		tyArgs[i] = TypeArgumentABI{Name: strconv.Itoa(i)}
	}
	return &EntryFunctionABI{
		Name:       fn.Name,
		ModuleName: typetag.NewModuleID(module.Address, module.Name),
		TyArgs:     tyArgs,
		ArgList:    args,
	}, nil
}
