// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dynamic

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/consts"
	"github.com/ava-labs/movetx/typetag"
)

// SerializeArg writes v encoded as tag into s.
func SerializeArg(v Value, tag typetag.TypeTag, s *codec.Serializer) error {
	switch t := tag.(type) {
	case typetag.Bool:
		b, err := toBool(v)
		if err != nil {
			return err
		}
		s.SerializeBool(b)
	case typetag.U8:
		n, err := toUint(v, uint64(consts.MaxUint8))
		if err != nil {
			return err
		}
		s.SerializeU8(uint8(n))
	case typetag.U64:
		n, err := toUint(v, consts.MaxUint64)
		if err != nil {
			return err
		}
		s.SerializeU64(n)
	case typetag.U128:
		n, err := toU128(v)
		if err != nil {
			return err
		}
		s.SerializeU128(n)
	case typetag.Address:
		addr, err := toAddress(v)
		if err != nil {
			return err
		}
		addr.Serialize(s)
	case typetag.Vector:
		if _, ok := t.Elem.(typetag.U8); ok {
			switch b := v.(type) {
			case Bytes:
				s.SerializeBytes(b)
				return s.Err()
			case Text:
				s.SerializeStr(string(b))
				return s.Err()
			}
		}
		l, ok := v.(List)
		if !ok {
			return fmt.Errorf("%w: %s requires a list but found %T", ErrInvalidArg, tag, v)
		}
		s.SerializeLen(len(l))
		for i, elem := range l {
			if err := SerializeArg(elem, t.Elem, s); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	case typetag.StructTag:
		if !t.IsString() {
			return fmt.Errorf("%w: %s", ErrUnsupportedStructArg, t)
		}
		text, ok := v.(Text)
		if !ok {
			return fmt.Errorf("%w: %s requires text but found %T", ErrInvalidArg, t, v)
		}
		s.SerializeStr(string(text))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedArgType, tag)
	}
	return s.Err()
}

// EncodeArg returns v encoded as tag.
func EncodeArg(v Value, tag typetag.TypeTag) ([]byte, error) {
	s := codec.NewSerializer()
	if err := SerializeArg(v, tag, s); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// ToTransactionArgument converts v into a script argument of type tag.
// Only the types a script argument can carry are accepted.
func ToTransactionArgument(v Value, tag typetag.TypeTag) (chain.TransactionArgument, error) {
	switch t := tag.(type) {
	case typetag.Bool:
		b, err := toBool(v)
		if err != nil {
			return nil, err
		}
		return &chain.BoolArg{Value: b}, nil
	case typetag.U8:
		n, err := toUint(v, uint64(consts.MaxUint8))
		if err != nil {
			return nil, err
		}
		return &chain.U8Arg{Value: uint8(n)}, nil
	case typetag.U64:
		n, err := toUint(v, consts.MaxUint64)
		if err != nil {
			return nil, err
		}
		return &chain.U64Arg{Value: n}, nil
	case typetag.U128:
		n, err := toU128(v)
		if err != nil {
			return nil, err
		}
		return &chain.U128Arg{Value: n}, nil
	case typetag.Address:
		addr, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		return &chain.AddressArg{Value: addr}, nil
	case typetag.Vector:
		if _, ok := t.Elem.(typetag.U8); ok {
			switch b := v.(type) {
			case Bytes:
				return &chain.U8VectorArg{Value: b}, nil
			case Text:
				return &chain.U8VectorArg{Value: []byte(b)}, nil
			}
			return nil, fmt.Errorf("%w: %s requires bytes or text but found %T", ErrInvalidArg, tag, v)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedArgType, tag)
}

// EncodeArgs encodes one value per declared parameter, in order. Any
// failure discards every encoded argument.
func EncodeArgs(params []abi.ArgumentABI, values []Value) ([][]byte, error) {
	if len(params) != len(values) {
		return nil, fmt.Errorf("%w: expected %d but found %d", ErrWrongArgCount, len(params), len(values))
	}
	args := make([][]byte, len(params))
	for i, p := range params {
		b, err := EncodeArg(values[i], p.TypeTag)
		if err != nil {
			return nil, fmt.Errorf("arg %d (%s): %w", i, p.Name, err)
		}
		args[i] = b
	}
	return args, nil
}

// ScriptArgs is EncodeArgs for script payloads.
func ScriptArgs(params []abi.ArgumentABI, values []Value) ([]chain.TransactionArgument, error) {
	if len(params) != len(values) {
		return nil, fmt.Errorf("%w: expected %d but found %d", ErrWrongArgCount, len(params), len(values))
	}
	args := make([]chain.TransactionArgument, len(params))
	for i, p := range params {
		a, err := ToTransactionArgument(values[i], p.TypeTag)
		if err != nil {
			return nil, fmt.Errorf("arg %d (%s): %w", i, p.Name, err)
		}
		args[i] = a
	}
	return args, nil
}

func toBool(v Value) (bool, error) {
	switch b := v.(type) {
	case Bool:
		return bool(b), nil
	case Text:
		switch b {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("%w: invalid boolean string %q", ErrInvalidArg, string(b))
	}
	return false, fmt.Errorf("%w: bool requires a boolean but found %T", ErrInvalidArg, v)
}

func toUint(v Value, limit uint64) (uint64, error) {
	switch n := v.(type) {
	case Int:
		if n < 0 || uint64(n) > limit {
			return 0, fmt.Errorf("%w: %d out of range", ErrInvalidArg, int64(n))
		}
		return uint64(n), nil
	case BigInt:
		if n.Int == nil || n.Sign() < 0 || !n.IsUint64() || n.Uint64() > limit {
			return 0, fmt.Errorf("%w: %s out of range", ErrInvalidArg, n)
		}
		return n.Uint64(), nil
	case Text:
		parsed, err := strconv.ParseUint(string(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidArg, err)
		}
		if parsed > limit {
			return 0, fmt.Errorf("%w: %d out of range", ErrInvalidArg, parsed)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("%w: integer required but found %T", ErrInvalidArg, v)
}

func toU128(v Value) (*big.Int, error) {
	var n *big.Int
	switch x := v.(type) {
	case Int:
		n = big.NewInt(int64(x))
	case BigInt:
		if x.Int == nil {
			return nil, fmt.Errorf("%w: nil integer", ErrInvalidArg)
		}
		n = new(big.Int).Set(x.Int)
	case Text:
		parsed, ok := new(big.Int).SetString(string(x), 10)
		if !ok {
			return nil, fmt.Errorf("%w: invalid integer string %q", ErrInvalidArg, string(x))
		}
		n = parsed
	default:
		return nil, fmt.Errorf("%w: integer required but found %T", ErrInvalidArg, v)
	}
	if n.Sign() < 0 || n.Cmp(codec.MaxU128) > 0 {
		return nil, fmt.Errorf("%w: %s out of range", ErrInvalidArg, n)
	}
	return n, nil
}

func toAddress(v Value) (codec.Address, error) {
	switch a := v.(type) {
	case Address:
		return codec.Address(a), nil
	case Text:
		addr, err := codec.ParseAddress(string(a))
		if err != nil {
			return codec.EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidArg, err)
		}
		return addr, nil
	}
	return codec.EmptyAddress, fmt.Errorf("%w: address requires hex text but found %T", ErrInvalidArg, v)
}
