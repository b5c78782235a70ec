// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import "errors"

var (
	ErrFunctionNotFound    = errors.New("function not found")
	ErrConflictingABI      = errors.New("conflicting abi")
	ErrInvalidFunctionName = errors.New("invalid function name")
)
