// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lz78 implements a Lempel-Ziv codec with a phrase dictionary.
//
// The encoded stream is a sequence of pairs: the variable length encoded
// index of a known phrase and a literal byte extending it. Every pair adds
// a phrase to the dictionary until it holds MaxNodes phrases. The stream
// has no end marker. The last pair always carries a placeholder byte,
// because a decoder reads a literal after every index.
package lz78

import "github.com/0xJonas/skylite-sub000/xlog"

// debug receives the debug output of the package. Nil switches the output
// off.
var debug xlog.Logger

// SetDebug sets the logger for debug output of the package.
func SetDebug(l xlog.Logger) { debug = l }

// Encode compresses p.
func Encode(p []byte) []byte {
	t := newTrie()
	out := make([]byte, 0, len(p)/2+2)
	i := 0
	for _, c := range p {
		if k, ok := t.child(i, c); ok {
			i = k
			continue
		}
		t.add(i, c)
		out = appendVarint(out, uint64(i))
		out = append(out, c)
		i = 0
	}
	out = appendVarint(out, uint64(i))
	out = append(out, 0)
	xlog.Printf(debug, "%d bytes coded to %d, %d phrases",
		len(p), len(out), len(t.nodes))
	return out
}
