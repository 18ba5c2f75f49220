// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/decred/dcrd/lru"
)

// seenFilter remembers a bounded number of recently seen addresses.  The
// least recently seen address is forgotten first once the limit is reached.
type seenFilter struct {
	cache lru.Cache
}

// newSeenFilter returns a seenFilter that remembers up to limit addresses.
func newSeenFilter(limit uint) *seenFilter {
	return &seenFilter{
		cache: lru.NewCache(limit),
	}
}

// Seen reports whether addr was already seen and records it as the most
// recently seen address.
func (f *seenFilter) Seen(addr string) bool {
	if f.cache.Contains(addr) {
		log.Debugf("Skipping repeated address %s", addr)
		return true
	}
	f.cache.Add(addr)
	return false
}
