// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/movetx/auth"
	"github.com/ava-labs/movetx/crypto/ed25519"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new ED25519 key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		set, err := cmd.Flags().GetBool("set")
		if err != nil {
			return err
		}
		if set {
			if err := setConfigValue("key", key.ToHex()); err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
		}
		return printValue(cmd, keyCmdResponse{
			Key:       key.ToHex(),
			PublicKey: key.PublicKey().String(),
			Address:   auth.NewED25519Address(key.PublicKey()).String(),
		})
	},
}

var keyAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print current key address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, keyCmdResponse{
			PublicKey: key.PublicKey().String(),
			Address:   auth.NewED25519Address(key.PublicKey()).String(),
		})
	},
}

type keyCmdResponse struct {
	Key       string `json:"key,omitempty"`
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
}

func (r keyCmdResponse) String() string {
	s := fmt.Sprintf("address: %s\npublic key: %s", r.Address, r.PublicKey)
	if r.Key != "" {
		s = "key: " + r.Key + "\n" + s
	}
	return s
}

func init() {
	keyGenerateCmd.Flags().Bool("set", false, "Store the key as the default key")
	keyCmd.AddCommand(keyGenerateCmd, keyAddressCmd)
	rootCmd.AddCommand(keyCmd)
}
