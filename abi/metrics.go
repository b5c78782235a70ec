// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abi

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	fetchFailures prometheus.Counter
}

// newMetrics registers on r when it is not nil.
func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abi",
			Name:      "cache_hits",
			Help:      "number of account abi lookups served from cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abi",
			Name:      "cache_misses",
			Help:      "number of account abi lookups that fetched modules",
		}),
		fetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abi",
			Name:      "fetch_failures",
			Help:      "number of failed module fetches",
		}),
	}
	if r == nil {
		return m, nil
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.cacheHits),
		r.Register(m.cacheMisses),
		r.Register(m.fetchFailures),
	)
	return m, errs.Err
}
