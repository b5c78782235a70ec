// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Domain separation salts. The signing message of a value is
// SHA3-256(salt) followed by the value's encoding.
const (
	RawTransactionSalt         = "APTOS::RawTransaction"
	RawTransactionWithDataSalt = "APTOS::RawTransactionWithData"
	TransactionSalt            = "APTOS::Transaction"
)

// Payload discriminants. 1 belonged to a removed module bundle payload
// and is never produced or accepted.
const (
	ScriptPayloadID        uint32 = 0
	EntryFunctionPayloadID uint32 = 2
)

// Transaction argument discriminants. They are independent of the type
// tag discriminants.
const (
	U8ArgID uint32 = iota
	U64ArgID
	U128ArgID
	AddressArgID
	U8VectorArgID
	BoolArgID
)

const (
	// MultiAgentWithDataID is the only RawTransactionWithData variant.
	MultiAgentWithDataID uint32 = 0
	// UserTransactionID is the user transaction variant of the
	// transaction enum hashed for a transaction's hash.
	UserTransactionID uint32 = 0
)
