// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesFile(t *testing.T) {
	require := require.New(t)

	file := filepath.Join(t.TempDir(), "movetx.log")
	log, err := New("test", Config{Level: "debug", File: file, Quiet: true})
	require.NoError(err)

	log.Debug("built transaction", zap.Uint64("sequenceNumber", 5))
	log.Stop()

	b, err := os.ReadFile(file)
	require.NoError(err)
	require.Contains(string(b), "built transaction")
}

func TestNewInvalidLevel(t *testing.T) {
	require := require.New(t)

	_, err := New("test", Config{Level: "loud"})
	require.Error(err)
}
