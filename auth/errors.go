// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "errors"

var (
	ErrInvalidKeyType         = errors.New("invalid key type")
	ErrSignerCountMismatch    = errors.New("secondary signer count mismatch")
	ErrDuplicateSigner        = errors.New("duplicate secondary signer")
	ErrMissingAuthenticator   = errors.New("missing authenticator")
	ErrUnauthorizedSigner     = errors.New("signer key does not match multi key")
	ErrInsufficientSignatures = errors.New("insufficient signatures")
)
