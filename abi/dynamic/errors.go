// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dynamic

import "errors"

var (
	ErrInvalidArg            = errors.New("invalid arg")
	ErrUnsupportedArgType    = errors.New("unsupported arg type")
	ErrUnsupportedStructArg  = errors.New("the only supported struct arg is of type 0x1::string::String")
	ErrWrongArgCount         = errors.New("wrong number of args")
	ErrUnsupportedJSONNumber = errors.New("unsupported json number")
)
