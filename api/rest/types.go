// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rest

import (
	"encoding/json"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/codec"
)

// Content types understood by the node.
const (
	JSONContentType              = "application/json"
	SignedTransactionContentType = "application/x.aptos.signed_transaction+bcs"
)

type IndexResponse struct {
	ChainID       uint8  `json:"chain_id" validate:"required"`
	Epoch         string `json:"epoch" validate:"omitempty,numeric"`
	LedgerVersion string `json:"ledger_version" validate:"omitempty,numeric"`
	BlockHeight   string `json:"block_height" validate:"omitempty,numeric"`
}

type AccountResponse struct {
	SequenceNumber    string `json:"sequence_number" validate:"required,numeric"`
	AuthenticationKey string `json:"authentication_key" validate:"required"`
}

type GasEstimateResponse struct {
	DeprioritizedGasEstimate uint64 `json:"deprioritized_gas_estimate"`
	GasEstimate              uint64 `json:"gas_estimate" validate:"required"`
	PrioritizedGasEstimate   uint64 `json:"prioritized_gas_estimate"`
}

type moduleResponse struct {
	Bytecode codec.Bytes     `json:"bytecode" validate:"required"`
	ABI      *abi.MoveModule `json:"abi"`
}

// PendingTransaction is the node's answer to a submission.
type PendingTransaction struct {
	Hash                    string `json:"hash" validate:"required"`
	Sender                  string `json:"sender"`
	SequenceNumber          string `json:"sequence_number"`
	MaxGasAmount            string `json:"max_gas_amount"`
	GasUnitPrice            string `json:"gas_unit_price"`
	ExpirationTimestampSecs string `json:"expiration_timestamp_secs"`
}

// SimulationResult is the part of a simulated user transaction the
// caller needs to judge it.
type SimulationResult struct {
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status" validate:"required"`
	GasUsed  string `json:"gas_used" validate:"omitempty,numeric"`
}

type MoveResource struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data" validate:"required"`
}

type TableItemRequest struct {
	KeyType   string `json:"key_type"`
	ValueType string `json:"value_type"`
	Key       any    `json:"key"`
}

// apiError is the body of a failed request.
type apiError struct {
	Message     string `json:"message"`
	ErrorCode   string `json:"error_code"`
	VMErrorCode int    `json:"vm_error_code,omitempty"`
}
