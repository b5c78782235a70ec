// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
)

type expiringEntry[V any] struct {
	val     V
	expires time.Time
}

// Expiring is a FIFO whose entries stop being served ttl after they were
// stored. Stale entries are only dropped when overwritten or evicted.
type Expiring[K comparable, V any] struct {
	ttl   time.Duration
	clock *mockable.Clock
	inner *FIFO[K, expiringEntry[V]]
}

// NewExpiring uses the wall clock when clock is nil.
func NewExpiring[K comparable, V any](limit int, ttl time.Duration, clock *mockable.Clock) (*Expiring[K, V], error) {
	inner, err := NewFIFO[K, expiringEntry[V]](limit)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = &mockable.Clock{}
	}
	return &Expiring[K, V]{
		ttl:   ttl,
		clock: clock,
		inner: inner,
	}, nil
}

func (e *Expiring[K, V]) Put(key K, val V) {
	e.inner.Put(key, expiringEntry[V]{
		val:     val,
		expires: e.clock.Time().Add(e.ttl),
	})
}

// Get returns the value stored under key if it has not expired.
func (e *Expiring[K, V]) Get(key K) (V, bool) {
	entry, ok := e.inner.Get(key)
	if !ok || !e.clock.Time().Before(entry.expires) {
		var empty V
		return empty, false
	}
	return entry.val, true
}
