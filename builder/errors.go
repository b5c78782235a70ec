// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import "errors"

var (
	ErrMissingSender       = errors.New("no sender provided")
	ErrMissingGasUnitPrice = errors.New("no gas unit price provided")
	ErrWrongTypeArgCount   = errors.New("wrong number of type args")
	ErrUnknownABI          = errors.New("unknown abi format")
)
