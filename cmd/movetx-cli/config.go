// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/movetx/api/rest"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/config"
	"github.com/ava-labs/movetx/crypto/ed25519"
	"github.com/ava-labs/movetx/utils"

	ilogging "github.com/ava-labs/movetx/internal/logging"
	mtrace "github.com/ava-labs/movetx/trace"
)

const defaultsFile = "movetx.yaml"

var (
	configDir string
	tracer    trace.Tracer
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error getting home directory:", err)
		os.Exit(1)
	}

	configDir, err = utils.InitSubDirectory(homeDir, ".movetx-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating config directory:", err)
		os.Exit(1)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := utils.SaveBytes(configFile, nil); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating config file:", err)
			os.Exit(1)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}
	utils.Outf("%s\n", v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

func decodeFileOrHex(fileNameOrHex string) ([]byte, error) {
	if decoded, err := codec.LoadHex(fileNameOrHex, -1); err == nil {
		return decoded, nil
	}

	if fileContents, err := utils.LoadBytes(fileNameOrHex, -1); err == nil {
		return fileContents, nil
	}

	return nil, errors.New("unable to decode input as hex, or read as file path")
}

// loadDefaults reads the transaction defaults from --config, or from
// the CLI directory when the flag is unset.
func loadDefaults(cmd *cobra.Command) (*config.Config, error) {
	path, err := getConfigValue(cmd, "config", false)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = filepath.Join(configDir, defaultsFile)
	}
	return config.Load(path)
}

func loadKey(cmd *cobra.Command) (ed25519.PrivateKey, error) {
	keyString, err := getConfigValue(cmd, "key", true)
	if err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("failed to get key: %w", err)
	}
	key, err := ed25519.HexToKey(keyString)
	if err != nil {
		return ed25519.EmptyPrivateKey, fmt.Errorf("failed to decode key: %w", err)
	}
	return key, nil
}

// env is what a command needs to talk to a node.
type env struct {
	defaults *config.Config
	log      logging.Logger
	tracer   trace.Tracer
	client   *rest.Client
}

func newEnv(cmd *cobra.Command) (*env, error) {
	defaults, err := loadDefaults(cmd)
	if err != nil {
		return nil, err
	}
	log, err := ilogging.New("movetx-cli", defaults.GetLogConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if tracer == nil {
		tracer, err = mtrace.New(defaults.GetTraceConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create tracer: %w", err)
		}
	}

	endpoint, err := getConfigValue(cmd, "endpoint", false)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = defaults.GetEndpoint()
	}
	opts := []rest.Option{rest.WithLogger(log), rest.WithTracer(tracer)}
	if defaults.MaxAttempts > 0 {
		opts = append(opts, rest.WithMaxAttempts(defaults.MaxAttempts))
	}
	return &env{
		defaults: defaults,
		log:      log,
		tracer:   tracer,
		client:   rest.New(endpoint, opts...),
	}, nil
}

func closeTracer() error {
	if tracer == nil {
		return nil
	}
	return tracer.Close()
}
