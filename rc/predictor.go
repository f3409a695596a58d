// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

import "math/bits"

// Predictor predicts the next bit of a bit sequence from the last 16 bits.
// The prediction is the parity of the history register masked with the
// taps.
type Predictor struct {
	taps  uint16
	state uint16
}

// NewPredictor creates a predictor with an empty history.
func NewPredictor(taps uint16) *Predictor {
	return &Predictor{taps: taps}
}

// Taps returns the tap mask of the predictor.
func (p *Predictor) Taps() uint16 { return p.taps }

// Predict returns the predicted value of the next bit.
func (p *Predictor) Predict() byte {
	return byte(bits.OnesCount16(p.state&p.taps) & 1)
}

// Push shifts the bit b into the history register.
func (p *Predictor) Push(b byte) {
	p.state = p.state<<1 | uint16(b&1)
}

// mispredictions counts the bits of s the predictor with the given taps
// gets wrong.
func mispredictions(s []byte, taps uint16) int {
	p := Predictor{taps: taps}
	n := 0
	for _, b := range s {
		n += int(p.Predict() ^ b)
		p.Push(b)
	}
	return n
}

// SearchTaps finds the tap mask for the bit sequence s. Starting with the
// empty mask, whose mispredictions are the 1-bits of s, it adds the single
// tap that reduces the mispredictions most as long as there is a strict
// improvement. Ties are resolved in favour of the lower tap.
func SearchTaps(s []byte) uint16 {
	var taps uint16
	best := 0
	for _, b := range s {
		best += int(b)
	}
	for {
		roundBest, roundTap := best, -1
		for i := 0; i < 16; i++ {
			m := mispredictions(s, taps|1<<i)
			if m < roundBest {
				roundBest, roundTap = m, i
			}
		}
		if roundTap < 0 {
			return taps
		}
		best = roundBest
		taps |= 1 << roundTap
	}
}

// Whiten returns the residual sequence of s: every bit is replaced by the
// XOR of the bit and its prediction.
func Whiten(s []byte, taps uint16) []byte {
	r := make([]byte, len(s))
	p := Predictor{taps: taps}
	for i, b := range s {
		r[i] = p.Predict() ^ b
		p.Push(b)
	}
	return r
}
