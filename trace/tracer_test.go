// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracerIsNoop(t *testing.T) {
	require := require.New(t)

	for _, cfg := range []*Config{nil, {Enabled: false, SampleRate: 1}} {
		tr, err := New(cfg)
		require.NoError(err)
		require.Equal(Noop, tr)

		_, span := tr.Start(context.Background(), "Builder.Build")
		require.False(span.IsRecording())
		span.End()
		require.NoError(tr.Close())
	}
}

func TestEnabledTracerSamples(t *testing.T) {
	require := require.New(t)

	tr, err := New(&Config{Enabled: true, SampleRate: 1, AppName: "movetx"})
	require.NoError(err)

	_, span := tr.Start(context.Background(), "Builder.Build")
	require.True(span.IsRecording())
	span.End()

	// nothing listens on the collector endpoint
	_ = tr.Close()
}
