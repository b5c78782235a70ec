// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	const limit = 3

	type op struct {
		put    bool
		key    int
		exists bool // put: key was present; get: key is present
	}

	tests := []struct {
		name string
		ops  []op
	}{
		{
			name: "fill without eviction",
			ops: []op{
				{put: true, key: 1},
				{put: true, key: 2},
				{put: true, key: 3},
				{key: 1, exists: true},
				{key: 3, exists: true},
			},
		},
		{
			name: "oldest evicted first",
			ops: []op{
				{put: true, key: 1},
				{put: true, key: 2},
				{put: true, key: 3},
				{put: true, key: 4},
				{key: 1},
				{key: 2, exists: true},
				{put: true, key: 5},
				{key: 2},
				{key: 3, exists: true},
			},
		},
		{
			name: "overwrite keeps position",
			ops: []op{
				{put: true, key: 1},
				{put: true, key: 2},
				{put: true, key: 1, exists: true},
				{put: true, key: 3},
				{put: true, key: 4},
				{key: 1},
				{key: 4, exists: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			c, err := NewFIFO[int, int](limit)
			require.NoError(err)
			for _, o := range tt.ops {
				if o.put {
					require.Equal(o.exists, c.Put(o.key, o.key*10))
					continue
				}
				v, ok := c.Get(o.key)
				require.Equal(o.exists, ok, "key %d", o.key)
				if ok {
					require.Equal(o.key*10, v)
				}
			}
			require.LessOrEqual(c.Len(), limit)
		})
	}
}

func TestFIFOInvalidLimit(t *testing.T) {
	require := require.New(t)

	_, err := NewFIFO[int, int](0)
	require.ErrorIs(err, ErrInvalidLimit)
}
