// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/movetx/codec"
)

// Resolver finds the ABI of a function by name. Entry functions are
// named "addr::module::function"; scripts by their own name.
type Resolver interface {
	Resolve(ctx context.Context, name string) (ScriptABI, error)
}

var (
	_ Resolver = (*LocalResolver)(nil)
	_ Resolver = (*RemoteResolver)(nil)
)

// FunctionName is a parsed "addr::module::function".
type FunctionName struct {
	Address  codec.Address
	Module   string
	Function string
}

// ParseFunctionName requires exactly three non-empty segments and a
// valid address.
func ParseFunctionName(name string) (FunctionName, error) {
	parts := strings.Split(name, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return FunctionName{}, fmt.Errorf("%w: %q", ErrInvalidFunctionName, name)
	}
	addr, err := codec.ParseAddress(parts[0])
	if err != nil {
		return FunctionName{}, fmt.Errorf("%w: %w", ErrInvalidFunctionName, err)
	}
	return FunctionName{Address: addr, Module: parts[1], Function: parts[2]}, nil
}

func (f FunctionName) String() string {
	return f.Address.ShortString() + "::" + f.Module + "::" + f.Function
}

// canonicalName rewrites entry function names to the short address
// form used as map keys. Other names are returned unchanged.
func canonicalName(name string) string {
	if f, err := ParseFunctionName(name); err == nil {
		return f.String()
	}
	return name
}

// LocalResolver serves ABIs decoded from compiled descriptors. It is
// read-only after construction.
type LocalResolver struct {
	abis map[string]ScriptABI
}

// NewLocalResolver decodes every descriptor. Two descriptors resolving
// to the same name are an error.
func NewLocalResolver(descriptors [][]byte) (*LocalResolver, error) {
	abis := make([]ScriptABI, 0, len(descriptors))
	for i, b := range descriptors {
		a, err := UnmarshalScriptABI(b)
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		abis = append(abis, a)
	}
	return NewLocalResolverFromABIs(abis)
}

func NewLocalResolverFromABIs(abis []ScriptABI) (*LocalResolver, error) {
	r := &LocalResolver{abis: make(map[string]ScriptABI, len(abis))}
	for _, a := range abis {
		name := a.QualifiedName()
		if _, ok := r.abis[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrConflictingABI, name)
		}
		r.abis[name] = a
	}
	return r, nil
}

func (r *LocalResolver) Resolve(_ context.Context, name string) (ScriptABI, error) {
	a, ok := r.abis[canonicalName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}
	return a, nil
}

// Functions returns the names of every known ABI in sorted order.
func (r *LocalResolver) Functions() []string {
	names := maps.Keys(r.abis)
	slices.Sort(names)
	return names
}
