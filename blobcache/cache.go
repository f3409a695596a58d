// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package blobcache keeps decompressed blobs in memory. Blobs are
// identified by the digest of their compressed bytes, so a blob that is
// loaded again under another name is decoded only once.
package blobcache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/xlog"
)

// DefaultSize is the number of blobs a cache created with size 0 holds.
const DefaultSize = 256

var debug xlog.Logger

// SetDebug sets the logger for the debug output of the package.
func SetDebug(l xlog.Logger) { debug = l }

// key identifies a blob by its compressed data and its decoded length.
type key struct {
	sum uint64
	n   int
}

func hasher(k key) uint64 {
	return k.sum ^ uint64(k.n)*0x9e3779b97f4a7c15
}

// Stats counts the lookups of a cache.
type Stats struct {
	Hits   int64
	Misses int64
}

// Cache is a bounded cache of decompressed blobs. Admission and eviction
// follow the TinyLFU policy. A Cache is safe for concurrent use by
// multiple goroutines.
type Cache struct {
	mu    sync.Mutex
	lfu   *tinylfu.T[key, []byte]
	stats Stats
}

// New creates a cache holding up to size blobs.
func New(size int) (*Cache, error) {
	switch {
	case size < 0:
		return nil, errors.New("blobcache: size must not be negative")
	case size == 0:
		size = DefaultSize
	}
	return &Cache{lfu: tinylfu.New[key, []byte](size, size*10, hasher)}, nil
}

// Get returns the n bytes encoded in compressed. The name is only used in
// errors and debug output. The returned slice is shared between callers
// and must not be modified.
func (c *Cache) Get(name string, compressed []byte, n int) ([]byte, error) {
	k := key{sum: xxhash.Sum64(compressed), n: n}

	c.mu.Lock()
	p, ok := c.lfu.Get(k)
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()
	if ok {
		return p, nil
	}

	p, err := compress.Decompress(compressed, n)
	if err != nil {
		return nil, fmt.Errorf("blobcache: %s: %w", name, err)
	}
	xlog.Printf(debug, "decoded %s (%d bytes)", name, n)

	c.mu.Lock()
	c.lfu.Add(k, p)
	c.mu.Unlock()
	return p, nil
}

// Stats returns the lookup counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
