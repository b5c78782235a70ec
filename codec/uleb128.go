// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/movetx/consts"
)

func appendUleb128(b []byte, v uint32) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// Uleb128Len returns the number of bytes used to encode v.
func Uleb128Len(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// readUleb128 decodes a value from the start of b and returns the number
// of bytes consumed.
func readUleb128(b []byte) (uint32, int, error) {
	var v uint64
	for i := 0; i < consts.MaxUleb128Len; i++ {
		if i >= len(b) {
			return 0, 0, fmt.Errorf("%w: uleb128", ErrInsufficientBytes)
		}
		c := b[i]
		v |= uint64(c&0x7f) << (7 * i)
		if c&0x80 != 0 {
			continue
		}
		if i > 0 && c == 0 {
			return 0, 0, ErrNonCanonicalUleb128
		}
		if v > uint64(consts.MaxUint32) {
			return 0, 0, fmt.Errorf("%w: overflows u32", ErrInvalidUleb128)
		}
		return uint32(v), i + 1, nil
	}
	return 0, 0, fmt.Errorf("%w: overflows u32", ErrInvalidUleb128)
}
