// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)

	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(err)
	require.Equal(DefaultEndpoint, c.GetEndpoint())
	require.Equal(uint64(20_000), c.GetMaxGasAmount())
	require.Equal(uint64(20), c.GetExpirationSecs())
	require.Equal(10*time.Minute, c.GetABICacheTTL())
	require.False(c.GetTraceConfig().Enabled)
	require.Equal(appName, c.GetTraceConfig().AppName)

	sender := codec.MustParseAddress("0x1")
	bc := c.BuilderConfig(sender)
	require.Equal(sender, *bc.Sender)
	require.Zero(bc.GasUnitPrice)
	require.Zero(bc.ChainID)
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte(`
endpoint: https://fullnode.devnet.example.com/v1
max_gas_amount: 2000
expiration_secs: 60
gas_unit_price: 150
chain_id: 34
abi_cache_ttl: 1m30s
log:
  level: debug
  file: movetx.log
trace:
  enabled: true
  sample_rate: 0.5
`), 0o600))

	c, err := Load(path)
	require.NoError(err)
	require.Equal("https://fullnode.devnet.example.com/v1", c.GetEndpoint())
	require.Equal(uint64(2000), c.GetMaxGasAmount())
	require.Equal(uint64(60), c.GetExpirationSecs())
	require.Equal(90*time.Second, c.GetABICacheTTL())
	require.Equal("debug", c.GetLogConfig().Level)
	require.Equal("movetx.log", c.GetLogConfig().File)
	require.True(c.GetTraceConfig().Enabled)
	require.InDelta(0.5, c.GetTraceConfig().SampleRate, 0)

	bc := c.BuilderConfig(codec.MustParseAddress("0x2"))
	require.Equal(uint64(150), bc.GasUnitPrice)
	require.Equal(chain.ChainID(34), bc.ChainID)
	require.Equal(uint64(60), bc.ExpSecFromNow)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown field", yaml: "gas_price: 1"},
		{name: "bad endpoint", yaml: "endpoint: not a url"},
		{name: "negative ttl", yaml: "abi_cache_ttl: -1s"},
		{name: "sample rate above one", yaml: "trace:\n  sample_rate: 2"},
		{name: "chain id overflow", yaml: "chain_id: 256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}
