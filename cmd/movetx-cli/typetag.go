// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/typetag"
)

var typetagCmd = &cobra.Command{
	Use:   "typetag",
	Short: "Inspect type tags",
}

var typetagParseCmd = &cobra.Command{
	Use:   "parse [tag]...",
	Short: "Parse type tags and print their canonical form and encoding",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := typetag.ParseAll(args)
		if err != nil {
			return err
		}
		resp := typetagParseCmdResponse{Tags: make([]parsedTypeTag, len(tags))}
		for i, tag := range tags {
			b, err := codec.Marshal(tag)
			if err != nil {
				return err
			}
			resp.Tags[i] = parsedTypeTag{Input: args[i], Canonical: tag.String(), Encoded: codec.ToHex(b)}
		}
		return printValue(cmd, resp)
	},
}

type parsedTypeTag struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Encoded   string `json:"encoded"`
}

type typetagParseCmdResponse struct {
	Tags []parsedTypeTag `json:"tags"`
}

func (r typetagParseCmdResponse) String() string {
	var b strings.Builder
	for _, t := range r.Tags {
		fmt.Fprintf(&b, "%s\n  canonical: %s\n  encoded: %s\n", t.Input, t.Canonical, t.Encoded)
	}
	return strings.TrimSpace(b.String())
}

func init() {
	typetagCmd.AddCommand(typetagParseCmd)
	rootCmd.AddCommand(typetagCmd)
}
