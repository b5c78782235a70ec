// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ava-labs/movetx/consts"
)

// Address represents the 32 byte address of an account.
type Address [consts.AddressLen]byte

var (
	EmptyAddress = Address{}

	// CoreCodeAddress is 0x1, where the framework modules are published.
	CoreCodeAddress = Address{consts.AddressLen - 1: 1}
)

// ToAddress copies b into an Address. b must be exactly AddressLen bytes.
func ToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != consts.AddressLen {
		return a, fmt.Errorf("%w: expected %d bytes but found %d", ErrInvalidAddress, consts.AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress parses a hex address with an optional 0x prefix. Short
// forms are left padded with zeros, so "0x1" is CoreCodeAddress.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(s, "0x")
	if len(s) == 0 || len(s) > consts.AddressLen*2 {
		return a, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	copy(a[consts.AddressLen-len(b):], b)
	return a, nil
}

// MustParseAddress is ParseAddress for constants. It panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the full 0x prefixed hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString trims leading zeros, rendering CoreCodeAddress as "0x1".
func (a Address) ShortString() string {
	s := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if s == "" {
		return "0x0"
	}
	return "0x" + s
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) Serialize(s *Serializer) {
	s.SerializeFixedBytes(a[:])
}

func DeserializeAddress(d *Deserializer) Address {
	var a Address
	copy(a[:], d.DeserializeFixedBytes(consts.AddressLen))
	return a
}
