// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

const (
	// CursorHeader carries the cursor of the next page of a listing.
	CursorHeader = "X-Aptos-Cursor"

	modulesPageSize = 100
)

var (
	_ abi.ModuleLookup      = (*Client)(nil)
	_ builder.ChainMetadata = (*Client)(nil)
)

func (cli *Client) Index(ctx context.Context) (*IndexResponse, error) {
	resp := new(IndexResponse)
	if _, err := cli.get(ctx, "Index", "/", resp); err != nil {
		return nil, err
	}
	return resp, cli.validateStruct("Index", resp)
}

func (cli *Client) GetChainID(ctx context.Context) (chain.ChainID, error) {
	index, err := cli.Index(ctx)
	if err != nil {
		return 0, err
	}
	return chain.ChainID(index.ChainID), nil
}

func (cli *Client) GetAccount(ctx context.Context, addr codec.Address) (*AccountResponse, error) {
	resp := new(AccountResponse)
	if _, err := cli.get(ctx, "GetAccount", "/accounts/"+addr.String(), resp); err != nil {
		return nil, err
	}
	return resp, cli.validateStruct("GetAccount", resp)
}

func (cli *Client) GetSequenceNumber(ctx context.Context, addr codec.Address) (uint64, error) {
	account, err := cli.GetAccount(ctx, addr)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(account.SequenceNumber, 10, 64)
}

func (cli *Client) EstimateGasUnitPrice(ctx context.Context) (uint64, error) {
	resp := new(GasEstimateResponse)
	if _, err := cli.get(ctx, "EstimateGasPrice", "/estimate_gas_price", resp); err != nil {
		return 0, err
	}
	if err := cli.validateStruct("EstimateGasPrice", resp); err != nil {
		return 0, err
	}
	return resp.GasEstimate, nil
}

// GetAccountModules follows the listing cursor until every module of
// addr is read.
func (cli *Client) GetAccountModules(ctx context.Context, addr codec.Address) ([]abi.MoveModuleBytecode, error) {
	var (
		modules []abi.MoveModuleBytecode
		cursor  string
	)
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(modulesPageSize))
		if cursor != "" {
			q.Set("start", cursor)
		}
		var page []moduleResponse
		resp, err := cli.get(ctx, "GetAccountModules", "/accounts/"+addr.String()+"/modules?"+q.Encode(), &page)
		if err != nil {
			return nil, err
		}
		for i := range page {
			if err := cli.validateStruct("GetAccountModules", &page[i]); err != nil {
				return nil, err
			}
			modules = append(modules, abi.MoveModuleBytecode{
				Bytecode: page[i].Bytecode,
				ABI:      page[i].ABI,
			})
		}
		cursor = resp.header.Get(CursorHeader)
		if cursor == "" {
			break
		}
	}
	cli.log.Debug("fetched account modules",
		zap.String("address", addr.ShortString()),
		zap.Int("modules", len(modules)),
	)
	return modules, nil
}

// GetAccountResource returns the resource of type resourceType stored
// under addr.
func (cli *Client) GetAccountResource(ctx context.Context, addr codec.Address, resourceType string) (*MoveResource, error) {
	resp := new(MoveResource)
	path := fmt.Sprintf("/accounts/%s/resource/%s", addr, url.PathEscape(resourceType))
	if _, err := cli.get(ctx, "GetAccountResource", path, resp); err != nil {
		return nil, err
	}
	return resp, cli.validateStruct("GetAccountResource", resp)
}

// GetTableItem decodes the value stored under req.Key in the table
// handle into out.
func (cli *Client) GetTableItem(ctx context.Context, handle string, req TableItemRequest, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return cli.post(ctx, "GetTableItem", "/tables/"+url.PathEscape(handle)+"/item", JSONContentType, body, out)
}

// SubmitSignedTransaction posts an encoded signed transaction.
func (cli *Client) SubmitSignedTransaction(ctx context.Context, signed []byte) (*PendingTransaction, error) {
	resp := new(PendingTransaction)
	if err := cli.post(ctx, "SubmitTransaction", "/transactions", SignedTransactionContentType, signed, resp); err != nil {
		return nil, err
	}
	return resp, cli.validateStruct("SubmitTransaction", resp)
}

// SimulateTransaction runs an encoded signed transaction without
// committing it. The signature must be the all-zero signature.
func (cli *Client) SimulateTransaction(ctx context.Context, signed []byte) ([]SimulationResult, error) {
	var resp []SimulationResult
	if err := cli.post(ctx, "SimulateTransaction", "/transactions/simulate", SignedTransactionContentType, signed, &resp); err != nil {
		return nil, err
	}
	for i := range resp {
		if err := cli.validateStruct("SimulateTransaction", &resp[i]); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
