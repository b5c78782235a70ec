// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientBytes   = errors.New("insufficient bytes")
	ErrInvalidUleb128      = errors.New("invalid uleb128")
	ErrNonCanonicalUleb128 = errors.New("non-canonical uleb128")
	ErrInvalidBool         = errors.New("invalid bool")
	ErrUnknownVariant      = errors.New("unknown variant")
	ErrTrailingBytes       = errors.New("trailing bytes")
	ErrTooLong             = errors.New("length exceeds u32")
	ErrU128OutOfRange      = errors.New("u128 out of range")
	ErrInvalidSize         = errors.New("invalid size")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidUTF8         = errors.New("invalid utf-8")
)

// UnknownVariantError is returned when a tagged value carries a
// discriminant its type does not define.
type UnknownVariantError struct {
	Type  string
	Index uint32
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: %s %d", ErrUnknownVariant, e.Type, e.Index)
}

func (*UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}
