// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ava-labs/movetx/codec"
)

// Value is a loosely typed argument supplied by a caller. It is coerced
// into a concrete encoding once the parameter's type tag is known.
type Value interface {
	isValue()
}

type (
	Bool    bool
	Int     int64
	BigInt  struct{ *big.Int }
	Text    string
	Bytes   []byte
	List    []Value
	Address codec.Address
)

func (Bool) isValue()    {}
func (Int) isValue()     {}
func (BigInt) isValue()  {}
func (Text) isValue()    {}
func (Bytes) isValue()   {}
func (List) isValue()    {}
func (Address) isValue() {}

// Texts wraps every string as a Text value.
func Texts(args ...string) []Value {
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = Text(a)
	}
	return values
}

// ParseJSON decodes a JSON document into a Value. Integers that do not
// fit in an int64 become BigInt. Objects and fractional numbers are
// rejected.
func ParseJSON(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArg, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after json value", ErrInvalidArg)
	}
	return fromJSON(raw)
}

// ParseJSONArgs decodes a JSON array into one Value per element.
func ParseJSONArgs(b []byte) ([]Value, error) {
	v, err := ParseJSON(b)
	if err != nil {
		return nil, err
	}
	l, ok := v.(List)
	if !ok {
		return nil, fmt.Errorf("%w: expected a json array", ErrInvalidArg)
	}
	return l, nil
}

func fromJSON(raw any) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return Text(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		n, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedJSONNumber, v)
		}
		return BigInt{n}, nil
	case []any:
		l := make(List, len(v))
		for i, elem := range v {
			value, err := fromJSON(elem)
			if err != nil {
				return nil, err
			}
			l[i] = value
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: unsupported json value %T", ErrInvalidArg, raw)
	}
}
