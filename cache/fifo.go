// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/utils/buffer"
)

var ErrInvalidLimit = errors.New("limit must be greater than 0")

// FIFO is a fixed size map that evicts the oldest inserted key once
// full. Overwriting a key does not change its position.
type FIFO[K comparable, V any] struct {
	l sync.RWMutex

	limit int
	order buffer.Deque[K]
	m     map[K]V
}

func NewFIFO[K comparable, V any](limit int) (*FIFO[K, V], error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return &FIFO[K, V]{
		limit: limit,
		order: buffer.NewUnboundedDeque[K](limit + 1),
		m:     make(map[K]V, limit),
	}, nil
}

// Put stores val under key and reports whether key was already present.
func (f *FIFO[K, V]) Put(key K, val V) bool {
	f.l.Lock()
	defer f.l.Unlock()

	_, exists := f.m[key]
	if !exists {
		if f.order.Len() == f.limit {
			oldest, _ := f.order.PopLeft()
			delete(f.m, oldest)
		}
		f.order.PushRight(key)
	}
	f.m[key] = val
	return exists
}

func (f *FIFO[K, V]) Get(key K) (V, bool) {
	f.l.RLock()
	defer f.l.RUnlock()

	v, ok := f.m[key]
	return v, ok
}

func (f *FIFO[K, V]) Len() int {
	f.l.RLock()
	defer f.l.RUnlock()

	return len(f.m)
}
