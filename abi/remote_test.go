// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

var errNodeDown = errors.New("node down")

func coinModules() []MoveModuleBytecode {
	return []MoveModuleBytecode{
		{
			Bytecode: codec.Bytes{0xa1, 0x1c, 0xeb, 0x0b},
			ABI: &MoveModule{
				Address: codec.CoreCodeAddress,
				Name:    "coin",
				ExposedFunctions: []MoveFunction{
					{
						Name:              "transfer",
						Visibility:        "public",
						IsEntry:           true,
						GenericTypeParams: []MoveFunctionGenericTypeParam{{}},
						Params:            []string{"&signer", "address", "u64"},
					},
					{
						Name:       "balance",
						Visibility: "public",
						Params:     []string{"address"},
						Return:     []string{"u64"},
					},
					{
						Name:       "register_twice",
						IsEntry:    true,
						Params:     []string{"signer", "&signer", "vector<u8>", "signer"},
					},
					{
						Name:    "generic_param",
						IsEntry: true,
						Params:  []string{"&signer", "T0"},
					},
				},
			},
		},
		{Bytecode: codec.Bytes{0x01}}, // no abi
	}
}

func TestRemoteResolverResolve(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	lookup := NewMockModuleLookup(ctrl)
	lookup.EXPECT().GetAccountModules(gomock.Any(), codec.CoreCodeAddress).Return(coinModules(), nil).Times(1)

	r, err := NewRemoteResolver(lookup)
	require.NoError(err)

	ctx := context.Background()
	a, err := r.Resolve(ctx, "0x01::coin::transfer")
	require.NoError(err)
	require.Equal(&EntryFunctionABI{
		Name:       "transfer",
		ModuleName: typetag.NewModuleID(codec.CoreCodeAddress, "coin"),
		TyArgs:     []TypeArgumentABI{{Name: "0"}},
		ArgList: []ArgumentABI{
			{Name: "var0", TypeTag: typetag.Address{}},
			{Name: "var1", TypeTag: typetag.U64{}},
		},
	}, a)

	// only leading signers are stripped
	a, err = r.Resolve(ctx, "0x1::coin::register_twice")
	require.NoError(err)
	require.Equal([]ArgumentABI{
		{Name: "var0", TypeTag: typetag.Vector{Elem: typetag.U8{}}},
		{Name: "var1", TypeTag: typetag.Signer{}},
	}, a.Args())
	require.Empty(a.TypeArgs())

	_, err = r.Resolve(ctx, "0x1::coin::balance")
	require.ErrorIs(err, ErrFunctionNotFound)

	_, err = r.Resolve(ctx, "0x1::coin::generic_param")
	require.ErrorIs(err, typetag.ErrInvalidTypeTag)

	_, err = r.Resolve(ctx, "coin::transfer")
	require.ErrorIs(err, ErrInvalidFunctionName)
}

func TestRemoteResolverCacheExpiry(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	clock := &mockable.Clock{}
	start := time.Unix(1_700_000_000, 0)
	clock.Set(start)

	lookup := NewMockModuleLookup(ctrl)
	lookup.EXPECT().GetAccountModules(gomock.Any(), codec.CoreCodeAddress).Return(coinModules(), nil).Times(2)

	registry := prometheus.NewRegistry()
	r, err := NewRemoteResolver(lookup,
		WithClock(clock),
		WithCacheTTL(DefaultCacheTTL),
		WithRegisterer(registry),
	)
	require.NoError(err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := r.Resolve(ctx, "0x1::coin::transfer")
		require.NoError(err)
	}
	require.Equal(float64(1), testutil.ToFloat64(r.metrics.cacheMisses))
	require.Equal(float64(2), testutil.ToFloat64(r.metrics.cacheHits))

	clock.Set(start.Add(DefaultCacheTTL))
	_, err = r.Resolve(ctx, "0x1::coin::transfer")
	require.NoError(err)
	require.Equal(float64(2), testutil.ToFloat64(r.metrics.cacheMisses))

	families, err := registry.Gather()
	require.NoError(err)
	require.Len(families, 3)
}

func TestRemoteResolverFetchFailure(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	lookup := NewMockModuleLookup(ctrl)
	gomock.InOrder(
		lookup.EXPECT().GetAccountModules(gomock.Any(), codec.CoreCodeAddress).Return(nil, errNodeDown),
		lookup.EXPECT().GetAccountModules(gomock.Any(), codec.CoreCodeAddress).Return(coinModules(), nil),
	)

	r, err := NewRemoteResolver(lookup)
	require.NoError(err)

	ctx := context.Background()
	_, err = r.Resolve(ctx, "0x1::coin::transfer")
	require.ErrorIs(err, errNodeDown)
	require.Equal(float64(1), testutil.ToFloat64(r.metrics.fetchFailures))

	// failures are not cached
	_, err = r.Resolve(ctx, "0x1::coin::transfer")
	require.NoError(err)
}

func TestRemoteResolverPrefetch(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	a1 := codec.MustParseAddress("0x1")
	a3 := codec.MustParseAddress("0x3")

	var calls atomic.Int32
	lookup := NewMockModuleLookup(ctrl)
	lookup.EXPECT().GetAccountModules(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, codec.Address) ([]MoveModuleBytecode, error) {
			calls.Inc()
			return coinModules(), nil
		},
	).Times(2)

	r, err := NewRemoteResolver(lookup)
	require.NoError(err)

	require.NoError(r.Prefetch(context.Background(), []codec.Address{a1, a3, a1, a3, a1}, 2))
	require.Equal(int32(2), calls.Load())

	// served from cache
	_, err = r.Resolve(context.Background(), "0x1::coin::transfer")
	require.NoError(err)
}

func TestRemoteResolverPrefetchError(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	lookup := NewMockModuleLookup(ctrl)
	lookup.EXPECT().GetAccountModules(gomock.Any(), gomock.Any()).Return(nil, errNodeDown).AnyTimes()

	r, err := NewRemoteResolver(lookup)
	require.NoError(err)
	err = r.Prefetch(context.Background(), []codec.Address{codec.CoreCodeAddress}, 4)
	require.ErrorIs(err, errNodeDown)
}
