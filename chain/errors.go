// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrMissingRawTransaction  = errors.New("missing raw transaction")
	ErrMissingPayload         = errors.New("missing payload")
	ErrMissingAuthenticator   = errors.New("missing authenticator")
)
