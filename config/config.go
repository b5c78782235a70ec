// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/movetx/abi"
	"github.com/ava-labs/movetx/builder"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
	"github.com/ava-labs/movetx/internal/logging"
	"github.com/ava-labs/movetx/trace"
)

const (
	DefaultEndpoint = "http://127.0.0.1:8080/v1"
	appName         = "movetx"
)

type Config struct {
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`

	MaxGasAmount   uint64 `yaml:"max_gas_amount"`
	ExpirationSecs uint64 `yaml:"expiration_secs"`
	// Zero asks the node.
	GasUnitPrice uint64 `yaml:"gas_unit_price"`
	// Zero asks the node.
	ChainID uint8 `yaml:"chain_id"`

	ABICacheTTL time.Duration `yaml:"abi_cache_ttl" validate:"gte=0"`
	MaxAttempts int           `yaml:"max_attempts" validate:"gte=0"`

	Log   logging.Config `yaml:"log"`
	Trace trace.Config   `yaml:"trace"`
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if c.Trace.SampleRate < 0 || c.Trace.SampleRate > 1 {
		return nil, fmt.Errorf("invalid config: sample rate %f outside [0, 1]", c.Trace.SampleRate)
	}
	return c, nil
}

func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

func (c *Config) GetMaxGasAmount() uint64 {
	if c.MaxGasAmount == 0 {
		return builder.DefaultMaxGasAmount
	}
	return c.MaxGasAmount
}

func (c *Config) GetExpirationSecs() uint64 {
	if c.ExpirationSecs == 0 {
		return builder.DefaultExpSecFromNow
	}
	return c.ExpirationSecs
}

func (c *Config) GetABICacheTTL() time.Duration {
	if c.ABICacheTTL == 0 {
		return abi.DefaultCacheTTL
	}
	return c.ABICacheTTL
}

func (c *Config) GetLogConfig() logging.Config { return c.Log }

func (c *Config) GetTraceConfig() *trace.Config {
	tc := c.Trace
	tc.AppName = appName
	return &tc
}

// BuilderConfig returns the transaction defaults for sender.
func (c *Config) BuilderConfig(sender codec.Address) builder.Config {
	return builder.Config{
		Sender:        &sender,
		GasUnitPrice:  c.GasUnitPrice,
		MaxGasAmount:  c.GetMaxGasAmount(),
		ExpSecFromNow: c.GetExpirationSecs(),
		ChainID:       chain.ChainID(c.ChainID),
	}
}
