// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/movetx/abi/dynamic"
	"github.com/ava-labs/movetx/chain"
	"github.com/ava-labs/movetx/codec"
)

var errUnavailable = errors.New("node unavailable")

func TestRemoteFillsMissingFields(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	sender := codec.MustParseAddress("0x1")
	metadata := NewMockChainMetadata(ctrl)
	metadata.EXPECT().GetSequenceNumber(gomock.Any(), sender).Return(uint64(12), nil)
	metadata.EXPECT().GetChainID(gomock.Any()).Return(chain.ChainID(4), nil)
	metadata.EXPECT().EstimateGasUnitPrice(gomock.Any()).Return(uint64(150), nil)

	r := NewRemote(metadata, testResolver(t), Config{Sender: &sender}, WithClock(clockAt(1000)))
	raw, err := r.Build(context.Background(), transferFn, []string{aptosCoin}, dynamic.Texts("0x2", "10"))
	require.NoError(err)
	require.Equal(sender, raw.Sender)
	require.Equal(uint64(12), raw.SequenceNumber)
	require.Equal(chain.ChainID(4), raw.ChainID)
	require.Equal(uint64(150), raw.GasUnitPrice)
	require.Equal(uint64(DefaultMaxGasAmount), raw.MaxGasAmount)
	require.Equal(uint64(1000+DefaultExpSecFromNow), raw.ExpirationTimestampSecs)
}

func TestRemoteKeepsProvidedFields(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	sender := codec.MustParseAddress("0x1")
	// no lookups are expected
	metadata := NewMockChainMetadata(ctrl)

	config := Config{
		Sender:         &sender,
		SequenceNumber: 3,
		ChainID:        2,
		GasUnitPrice:   100,
	}
	filled, err := NewRemote(metadata, testResolver(t), config).FillConfig(context.Background())
	require.NoError(err)
	require.Equal(config, filled)
}

func TestRemoteErrors(t *testing.T) {
	sender := codec.MustParseAddress("0x1")

	tests := []struct {
		name   string
		config Config
		setup  func(*MockChainMetadata)
		err    error
	}{
		{
			name:   "missing sender",
			config: Config{},
			setup:  func(*MockChainMetadata) {},
			err:    ErrMissingSender,
		},
		{
			name:   "sequence number lookup fails",
			config: Config{Sender: &sender, ChainID: 4, GasUnitPrice: 100},
			setup: func(m *MockChainMetadata) {
				m.EXPECT().GetSequenceNumber(gomock.Any(), sender).Return(uint64(0), errUnavailable)
			},
			err: errUnavailable,
		},
		{
			name:   "gas estimate fails",
			config: Config{Sender: &sender, SequenceNumber: 1, ChainID: 4},
			setup: func(m *MockChainMetadata) {
				m.EXPECT().EstimateGasUnitPrice(gomock.Any()).Return(uint64(0), errUnavailable)
			},
			err: errUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metadata := NewMockChainMetadata(ctrl)
			tt.setup(metadata)

			_, err := NewRemote(metadata, testResolver(t), tt.config).
				Build(context.Background(), transferFn, []string{aptosCoin}, dynamic.Texts("0x2", "10"))
			require.ErrorIs(t, err, tt.err)
		})
	}
}
