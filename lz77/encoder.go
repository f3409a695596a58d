// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz77

import "github.com/0xJonas/skylite-sub000/xlog"

// debug receives the debug output of the package. Nil switches the output
// off.
var debug xlog.Logger

// SetDebug sets the logger for debug output of the package.
func SetDebug(l xlog.Logger) { debug = l }

const (
	// MaxLen is the maximum length of a literal run or a match.
	MaxLen = 128
	// MinMatchLen is the minimum length of a match that is coded as
	// match operation.
	MinMatchLen = 3
)

// encoder is a greedy matcher. It tracks all distances in the dictionary
// that match the current run of input bytes. Bytes that are not yet
// coded are pending; they are still in the dictionary because pending is
// kept below MaxLen.
type encoder struct {
	dict     dict
	pending  int
	dists    []int
	matchLen int
	out      []byte
}

// writeLiteral codes the oldest n pending bytes as literal run.
func (e *encoder) writeLiteral(n int) {
	if n == 0 {
		return
	}
	e.out = append(e.out, byte((n-1)<<1))
	for i := 0; i < n; i++ {
		e.out = append(e.out, e.dict.byteAt(e.pending-i-1))
	}
	e.pending -= n
}

// writeMatch codes the next n pending bytes as a copy from the given
// distance.
func (e *encoder) writeMatch(dist, n int) {
	if n == 0 {
		return
	}
	e.out = append(e.out, byte((n-1)<<1|1), byte(dist))
	e.pending -= n
}

// maxDist returns the largest distance of the current match. The
// distances are kept in ascending order.
func (e *encoder) maxDist() int {
	return e.dists[len(e.dists)-1]
}

// extend keeps the distances at which the match continues with c.
func (e *encoder) extend(c byte) {
	k := 0
	for _, d := range e.dists {
		if e.dict.byteAt(d) == c {
			e.dists[k] = d
			k++
		}
	}
	e.dists = e.dists[:k]
}

// seed collects all distances whose byte equals c.
func (e *encoder) seed(c byte) {
	e.dists = e.dists[:0]
	for d := 0; d < DictSize; d++ {
		if e.dict.byteAt(d) == c {
			e.dists = append(e.dists, d)
		}
	}
}

func (e *encoder) WriteByte(c byte) error {
	if len(e.dists) > 0 {
		dist := e.maxDist()
		e.extend(c)
		if len(e.dists) == 0 {
			if e.matchLen >= MinMatchLen {
				e.writeLiteral(e.pending - e.matchLen)
				e.writeMatch(dist, e.matchLen)
			}
			e.matchLen = 0
		} else {
			e.matchLen++
		}
	}
	if len(e.dists) == 0 {
		e.seed(c)
		if len(e.dists) > 0 {
			e.matchLen = 1
		}
	}

	e.dict.WriteByte(c)
	e.pending++

	// The dictionary must not overwrite pending bytes.
	if e.pending >= MaxLen {
		e.writeLiteral(e.pending - e.matchLen)
	}
	if e.matchLen >= MaxLen {
		e.writeMatch(e.maxDist(), e.matchLen)
		e.dists = e.dists[:0]
		e.matchLen = 0
	}
	return nil
}

// close codes all pending bytes.
func (e *encoder) close() {
	if e.pending > 0 {
		e.writeLiteral(e.pending - e.matchLen)
	}
	if e.matchLen > 0 {
		e.writeMatch(e.maxDist(), e.matchLen)
		e.matchLen = 0
	}
}

// Encode compresses p. The result starts with the offset of the entropy
// transform followed by the operations.
func Encode(p []byte) []byte {
	e := &encoder{
		dists: make([]int, 0, DictSize),
		out:   make([]byte, 1, 1+len(p)+len(p)/MaxLen+1),
	}
	for _, c := range p {
		e.WriteByte(c)
	}
	e.close()
	off := transform(e.out[1:])
	e.out[0] = off
	xlog.Printf(debug, "%d bytes coded to %d, transform offset %d",
		len(p), len(e.out), off)
	return e.out
}
