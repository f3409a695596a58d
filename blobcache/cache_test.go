// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package blobcache

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	compress "github.com/0xJonas/skylite-sub000"
)

func compressed(t *testing.T, data []byte) []byte {
	t.Helper()
	out, _, err := compress.Compress(data, compress.Methods())
	require.NoError(t, err)
	return out
}

func TestGet(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)

	data := bytes.Repeat([]byte("tile map row "), 50)
	z := compressed(t, data)

	p, err := c.Get("map", z, len(data))
	require.NoError(t, err)
	require.Equal(t, data, p)
	require.Equal(t, Stats{Misses: 1}, c.Stats())

	// Same blob under another name is served from the cache.
	p, err = c.Get("map-copy", z, len(data))
	require.NoError(t, err)
	require.Equal(t, data, p)
	require.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())

	// A different length is another blob.
	p, err = c.Get("map-prefix", z, 13)
	require.NoError(t, err)
	require.Equal(t, data[:13], p)
	require.Equal(t, Stats{Hits: 1, Misses: 2}, c.Stats())
}

func TestGetError(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)
	_, err = c.Get("broken", []byte{byte(compress.Raw), 1}, 3)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "broken")

	_, err = New(-1)
	require.Error(t, err)
}

func TestGetConcurrent(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	blobs := make([][]byte, 16)
	zs := make([][]byte, len(blobs))
	for i := range blobs {
		blobs[i] = bytes.Repeat([]byte(fmt.Sprintf("sprite %d;", i)), 20)
		zs[i] = compressed(t, blobs[i])
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := i % len(blobs)
				p, err := c.Get("sprite", zs[k], len(blobs[k]))
				if err != nil {
					t.Errorf("Get error %s", err)
					return
				}
				if !bytes.Equal(p, blobs[k]) {
					t.Errorf("blob %d mismatch", k)
					return
				}
			}
		}()
	}
	wg.Wait()
	s := c.Stats()
	require.Equal(t, int64(800), s.Hits+s.Misses)
}
