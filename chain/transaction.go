// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/consts"
)

// ChainID separates networks so a transaction signed for one cannot be
// replayed on another.
type ChainID uint8

func (c ChainID) Serialize(s *codec.Serializer) {
	s.SerializeU8(uint8(c))
}

// RawTransaction is the unsigned transaction envelope.
type RawTransaction struct {
	Sender                  codec.Address      `json:"sender"`
	SequenceNumber          uint64             `json:"sequence_number"`
	Payload                 TransactionPayload `json:"payload"`
	MaxGasAmount            uint64             `json:"max_gas_amount"`
	GasUnitPrice            uint64             `json:"gas_unit_price"`
	ExpirationTimestampSecs uint64             `json:"expiration_timestamp_secs"`
	ChainID                 ChainID            `json:"chain_id"`
}

func (t *RawTransaction) Serialize(s *codec.Serializer) {
	if t == nil {
		s.SetErr(ErrMissingRawTransaction)
		return
	}
	if t.Payload == nil {
		s.SetErr(ErrMissingPayload)
		return
	}
	t.Sender.Serialize(s)
	s.SerializeU64(t.SequenceNumber)
	t.Payload.Serialize(s)
	s.SerializeU64(t.MaxGasAmount)
	s.SerializeU64(t.GasUnitPrice)
	s.SerializeU64(t.ExpirationTimestampSecs)
	t.ChainID.Serialize(s)
}

func DeserializeRawTransaction(d *codec.Deserializer) *RawTransaction {
	t := &RawTransaction{
		Sender:                  codec.DeserializeAddress(d),
		SequenceNumber:          d.DeserializeU64(),
		Payload:                 DeserializeTransactionPayload(d),
		MaxGasAmount:            d.DeserializeU64(),
		GasUnitPrice:            d.DeserializeU64(),
		ExpirationTimestampSecs: d.DeserializeU64(),
		ChainID:                 ChainID(d.DeserializeU8()),
	}
	if d.Err() != nil {
		return nil
	}
	return t
}

// UnmarshalRawTransaction decodes a whole buffer.
func UnmarshalRawTransaction(b []byte) (*RawTransaction, error) {
	return codec.Unmarshal(b, DeserializeRawTransaction)
}

// MultiAgentRawTransaction is signed by the sender and every secondary
// signer of a multi-agent transaction.
type MultiAgentRawTransaction struct {
	RawTxn             *RawTransaction `json:"raw_txn"`
	SecondaryAddresses []codec.Address `json:"secondary_signer_addresses"`
}

func NewMultiAgentRawTransaction(raw *RawTransaction, secondary []codec.Address) *MultiAgentRawTransaction {
	return &MultiAgentRawTransaction{RawTxn: raw, SecondaryAddresses: secondary}
}

func (t *MultiAgentRawTransaction) Serialize(s *codec.Serializer) {
	if t.RawTxn == nil {
		s.SetErr(ErrMissingRawTransaction)
		return
	}
	s.SerializeUleb128(MultiAgentWithDataID)
	t.RawTxn.Serialize(s)
	codec.SerializeSequence(s, t.SecondaryAddresses)
}

func DeserializeMultiAgentRawTransaction(d *codec.Deserializer) *MultiAgentRawTransaction {
	index := d.DeserializeVariant()
	if d.Err() != nil {
		return nil
	}
	if index != MultiAgentWithDataID {
		d.UnknownVariant("RawTransactionWithData", index)
		return nil
	}
	t := &MultiAgentRawTransaction{
		RawTxn:             DeserializeRawTransaction(d),
		SecondaryAddresses: codec.DeserializeSequence(d, codec.DeserializeAddress),
	}
	if d.Err() != nil {
		return nil
	}
	return t
}

// SignedTransaction is the terminal artifact submitted to a node.
type SignedTransaction struct {
	RawTxn        *RawTransaction               `json:"raw_txn"`
	Authenticator auth.TransactionAuthenticator `json:"authenticator"`
}

func NewSignedTransaction(raw *RawTransaction, authenticator auth.TransactionAuthenticator) *SignedTransaction {
	return &SignedTransaction{RawTxn: raw, Authenticator: authenticator}
}

func (t *SignedTransaction) Serialize(s *codec.Serializer) {
	if t.RawTxn == nil {
		s.SetErr(ErrMissingRawTransaction)
		return
	}
	if t.Authenticator == nil {
		s.SetErr(ErrMissingAuthenticator)
		return
	}
	t.RawTxn.Serialize(s)
	t.Authenticator.Serialize(s)
}

func DeserializeSignedTransaction(d *codec.Deserializer) *SignedTransaction {
	t := &SignedTransaction{
		RawTxn:        DeserializeRawTransaction(d),
		Authenticator: auth.DeserializeTransactionAuthenticator(d),
	}
	if d.Err() != nil {
		return nil
	}
	return t
}

// UnmarshalSignedTransaction decodes a whole buffer.
func UnmarshalSignedTransaction(b []byte) (*SignedTransaction, error) {
	return codec.Unmarshal(b, DeserializeSignedTransaction)
}

func (t *SignedTransaction) Bytes() ([]byte, error) {
	return codec.Marshal(t)
}

// SigningMessage returns the message the authenticator signed: the
// multi-agent envelope for MultiAgent authenticators and the raw
// transaction otherwise.
func (t *SignedTransaction) SigningMessage() ([]byte, error) {
	if m, ok := t.Authenticator.(*auth.MultiAgent); ok {
		return SigningMessage(NewMultiAgentRawTransaction(t.RawTxn, m.SecondaryAddresses))
	}
	return SigningMessage(t.RawTxn)
}

// Verify checks the authenticator's signatures over the signing message.
func (t *SignedTransaction) Verify() error {
	if t.Authenticator == nil {
		return ErrMissingAuthenticator
	}
	msg, err := t.SigningMessage()
	if err != nil {
		return err
	}
	return t.Authenticator.Verify(msg)
}

// Hash is the hash a node reports for the submitted user transaction.
func (t *SignedTransaction) Hash() ([consts.HashLen]byte, error) {
	s := codec.NewSerializer()
	prefix := sha3.Sum256([]byte(TransactionSalt))
	s.SerializeFixedBytes(prefix[:])
	s.SerializeUleb128(UserTransactionID)
	t.Serialize(s)
	if err := s.Err(); err != nil {
		return [consts.HashLen]byte{}, err
	}
	return sha3.Sum256(s.Bytes()), nil
}
