// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package typetag

import "errors"

var (
	ErrUnrecognizedToken = errors.New("unrecognized token")
	ErrInvalidTypeTag    = errors.New("invalid type tag")
)
