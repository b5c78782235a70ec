// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import "errors"

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidThreshold  = errors.New("invalid threshold")
	ErrTooManyKeys       = errors.New("too many keys")
	ErrInvalidBitmap     = errors.New("invalid bitmap")
	ErrDuplicateSigner   = errors.New("duplicate signer")
)
