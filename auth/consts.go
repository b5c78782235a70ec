// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

// Authenticator discriminants are part of the wire format. We explicitly
// assign them to avoid accidental remapping.
const (
	ED25519ID      uint32 = 0
	MultiED25519ID uint32 = 1
	MultiAgentID   uint32 = 2
)

// Authentication key schemes, appended to the public key before hashing.
const (
	ED25519Scheme      uint8 = 0
	MultiED25519Scheme uint8 = 1
)

const (
	ED25519Key      = "ed25519"
	MultiED25519Key = "multi_ed25519"
)
