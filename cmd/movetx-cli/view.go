// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

// txView is the printable form of a raw or signed transaction.
type txView struct {
	Sender                  string   `json:"sender"`
	SequenceNumber          uint64   `json:"sequenceNumber"`
	Payload                 string   `json:"payload"`
	TypeArgs                []string `json:"typeArgs"`
	Args                    []string `json:"args"`
	MaxGasAmount            uint64   `json:"maxGasAmount"`
	GasUnitPrice            uint64   `json:"gasUnitPrice"`
	ExpirationTimestampSecs uint64   `json:"expirationTimestampSecs"`
	ChainID                 uint8    `json:"chainId"`
	Authenticator           string   `json:"authenticator,omitempty"`
	Signers                 []string `json:"signers,omitempty"`
	Hash                    string   `json:"hash,omitempty"`
	Bytes                   string   `json:"bytes"`
}

func newRawView(raw *chain.RawTransaction, b []byte) (txView, error) {
	v := txView{
		Sender:                  raw.Sender.String(),
		SequenceNumber:          raw.SequenceNumber,
		MaxGasAmount:            raw.MaxGasAmount,
		GasUnitPrice:            raw.GasUnitPrice,
		ExpirationTimestampSecs: raw.ExpirationTimestampSecs,
		ChainID:                 uint8(raw.ChainID),
		Bytes:                   codec.ToHex(b),
	}
	switch p := raw.Payload.(type) {
	case *chain.EntryFunction:
		v.Payload = p.QualifiedName()
		for _, tag := range p.TypeArgs {
			v.TypeArgs = append(v.TypeArgs, tag.String())
		}
		for _, arg := range p.Args {
			v.Args = append(v.Args, codec.ToHex(arg))
		}
	case *chain.Script:
		v.Payload = fmt.Sprintf("script (%d bytes)", len(p.Code))
		for _, tag := range p.TypeArgs {
			v.TypeArgs = append(v.TypeArgs, tag.String())
		}
		for _, arg := range p.Args {
			ab, err := codec.Marshal(arg)
			if err != nil {
				return txView{}, err
			}
			v.Args = append(v.Args, codec.ToHex(ab))
		}
	}
	return v, nil
}

func newSignedView(signed *chain.SignedTransaction, b []byte) (txView, error) {
	v, err := newRawView(signed.RawTxn, b)
	if err != nil {
		return txView{}, err
	}
	hash, err := signed.Hash()
	if err != nil {
		return txView{}, err
	}
	v.Hash = codec.ToHex(hash[:])
	switch a := signed.Authenticator.(type) {
	case *auth.ED25519:
		v.Authenticator = "ed25519"
	case *auth.MultiED25519:
		v.Authenticator = "multi_ed25519"
	case *auth.MultiAgent:
		v.Authenticator = "multi_agent"
		for _, addr := range a.SecondaryAddresses {
			v.Signers = append(v.Signers, addr.String())
		}
	}
	return v, nil
}

func (v txView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sender: %s\n", v.Sender)
	fmt.Fprintf(&b, "sequence number: %d\n", v.SequenceNumber)
	fmt.Fprintf(&b, "payload: %s\n", v.Payload)
	if len(v.TypeArgs) > 0 {
		fmt.Fprintf(&b, "type args: %s\n", strings.Join(v.TypeArgs, ", "))
	}
	for i, arg := range v.Args {
		fmt.Fprintf(&b, "arg %d: %s\n", i, arg)
	}
	fmt.Fprintf(&b, "max gas amount: %d\n", v.MaxGasAmount)
	fmt.Fprintf(&b, "gas unit price: %d\n", v.GasUnitPrice)
	fmt.Fprintf(&b, "expiration: %d\n", v.ExpirationTimestampSecs)
	fmt.Fprintf(&b, "chain id: %d\n", v.ChainID)
	if v.Authenticator != "" {
		fmt.Fprintf(&b, "authenticator: %s\n", v.Authenticator)
	}
	for _, s := range v.Signers {
		fmt.Fprintf(&b, "secondary signer: %s\n", s)
	}
	if v.Hash != "" {
		fmt.Fprintf(&b, "hash: %s\n", v.Hash)
	}
	fmt.Fprintf(&b, "bytes: %s", v.Bytes)
	return b.String()
}
