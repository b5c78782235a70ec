// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/abi"
)

var abiCmd = &cobra.Command{
	Use:   "abi [function]",
	Short: "Print the parameters of a function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
		defer cancel()

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		resolver, err := newResolver(cmd, e)
		if err != nil {
			return err
		}
		a, err := resolver.Resolve(ctx, args[0])
		if err != nil {
			return err
		}
		return printValue(cmd, newABICmdResponse(a))
	},
}

type abiParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type abiCmdResponse struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	TypeArgs []string   `json:"typeArgs"`
	Args     []abiParam `json:"args"`
}

func newABICmdResponse(a abi.ScriptABI) abiCmdResponse {
	r := abiCmdResponse{Name: a.QualifiedName(), Kind: "entry function"}
	if a.Variant() == abi.TransactionScriptID {
		r.Kind = "script"
	}
	for _, t := range a.TypeArgs() {
		r.TypeArgs = append(r.TypeArgs, t.Name)
	}
	for _, arg := range a.Args() {
		r.Args = append(r.Args, abiParam{Name: arg.Name, Type: arg.TypeTag.String()})
	}
	return r
}

func (r abiCmdResponse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Name, r.Kind)
	if len(r.TypeArgs) > 0 {
		fmt.Fprintf(&b, "type args: %s\n", strings.Join(r.TypeArgs, ", "))
	}
	b.WriteString("Inputs:\n")
	for _, arg := range r.Args {
		fmt.Fprintf(&b, "  %s: %s\n", arg.Name, arg.Type)
	}
	return strings.TrimSpace(b.String())
}

func init() {
	abiCmd.Flags().StringSlice("abi", nil, "Compiled ABI descriptors as hex or file paths")
	rootCmd.AddCommand(abiCmd)
}
