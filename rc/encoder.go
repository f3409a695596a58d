// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package rc implements the range coder stage. The input is converted
// into a bit sequence, whitened by a Predictor and the residual bits are
// range coded using a single probability for a zero bit that is computed
// from the whole input.
//
// The encoded stream starts with a 4-byte header: the probability of a
// zero bit in units of 1/65536 and the tap mask of the predictor, both as
// big-endian uint16 values. The code bytes follow.
package rc

import (
	"encoding/binary"

	"github.com/0xJonas/skylite-sub000/xlog"
)

// debug receives the debug output of the package. Nil switches the output
// off.
var debug xlog.Logger

// SetDebug sets the logger for debug output of the package.
func SetDebug(l xlog.Logger) { debug = l }

const (
	// probBits gives the resolution of the zero-bit probability.
	probBits = 16
	// maxProb is the largest probability value that can be stored.
	maxProb = 1<<probBits - 1

	// HeaderLen is the length of the header of an encoded stream.
	HeaderLen = 4

	// fullWidth is the width of the initial interval.
	fullWidth = 1 << 32
	// minWidth is the smallest width usable without shifting.
	minWidth = 1 << 16
)

// Prob computes the probability of a zero bit for a sequence of n bits
// containing the given number of zeros. The result is clamped, so that
// neither a zero bit nor a one bit gets a probability of zero.
func Prob(zeros, n int) uint16 {
	if n == 0 {
		return 1 << (probBits - 1)
	}
	p := (uint64(zeros) << probBits) / uint64(n)
	switch {
	case p < 1:
		p = 1
	case p > maxProb:
		p = maxProb
	}
	return uint16(p)
}

// needsShift reports whether the interval has to be shifted before the
// next bit can be coded: either the leading byte is settled or the
// interval became too narrow.
func needsShift(start, width uint64) bool {
	return start>>24 == (start+width)>>24 || width < minWidth
}

// shift removes the leading byte c of start from the interval and scales
// it by 256. If the interval crosses the next multiple of 1<<24, it is cut
// back to the part below that boundary, so no carry can occur.
func shift(start, width uint64) (c byte, nstart, nwidth uint64) {
	c = byte(start >> 24)
	rest := start&0xff000000 + 0x01000000 - start
	if rest < width {
		width = rest
	}
	return c, (start & 0x00ffffff) << 8, width << 8
}

// split returns the width of the zero part of an interval.
func split(width uint64, p0 uint16) uint64 {
	return width * uint64(p0) >> probBits
}

// rangeEncoder codes bits with a fixed probability.
type rangeEncoder struct {
	out   []byte
	p0    uint16
	start uint64
	width uint64
}

func newRangeEncoder(out []byte, p0 uint16) *rangeEncoder {
	return &rangeEncoder{out: out, p0: p0, width: fullWidth}
}

// encode codes the bit b.
func (e *rangeEncoder) encode(b byte) {
	bound := split(e.width, e.p0)
	if b&1 == 0 {
		e.width = bound
	} else {
		e.start += bound
		e.width -= bound
	}
	for needsShift(e.start, e.width) {
		e.shiftOut()
	}
}

func (e *rangeEncoder) shiftOut() {
	var c byte
	c, e.start, e.width = shift(e.start, e.width)
	e.out = append(e.out, c)
}

// flush writes bytes until the remaining interval covers the full range.
// Whatever bytes a decoder reads after the stream are inside the interval
// then.
func (e *rangeEncoder) flush() []byte {
	for e.width < fullWidth {
		e.shiftOut()
	}
	return e.out
}

// Encode encodes p and returns the header followed by the code bytes.
func Encode(p []byte) []byte {
	s := ExpandBits(p)
	taps := SearchTaps(s)
	r := Whiten(s, taps)
	zeros := 0
	for _, b := range r {
		zeros += int(1 - b)
	}
	p0 := Prob(zeros, len(r))
	xlog.Printf(debug, "taps %#04x p0 %d ones %d/%d",
		taps, p0, len(r)-zeros, len(r))

	out := make([]byte, HeaderLen, HeaderLen+len(p))
	binary.BigEndian.PutUint16(out[0:], p0)
	binary.BigEndian.PutUint16(out[2:], taps)
	e := newRangeEncoder(out, p0)
	for _, b := range r {
		e.encode(b)
	}
	return e.flush()
}
