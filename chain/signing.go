// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/movetx/codec"
)

// SigningMessage returns SHA3-256(salt) || bcs(v), where the salt is
// chosen by the concrete type of v. Only raw transactions and
// multi-agent raw transactions can be signed.
func SigningMessage(v codec.Serializable) ([]byte, error) {
	var salt string
	switch v.(type) {
	case *RawTransaction:
		salt = RawTransactionSalt
	case *MultiAgentRawTransaction:
		salt = RawTransactionWithDataSalt
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTransactionType, v)
	}
	prefix := sha3.Sum256([]byte(salt))
	s := codec.NewSerializer()
	s.SerializeFixedBytes(prefix[:])
	v.Serialize(s)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}
