// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/crypto/ed25519"
)

var settableKeys = set.Of("endpoint", "key", "output", "config")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI preferences",
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Persist a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !settableKeys.Contains(key) {
			return fmt.Errorf("unknown preference %q", key)
		}
		if key == "key" {
			if _, err := ed25519.HexToKey(value); err != nil {
				return fmt.Errorf("failed to decode key: %w", err)
			}
		}
		if err := setConfigValue(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, configSetCmdResponse{Key: key, Value: value})
	},
}

type configSetCmdResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r configSetCmdResponse) String() string {
	if r.Key == "key" {
		return "key updated"
	}
	return fmt.Sprintf("%s set to: %s", r.Key, r.Value)
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
