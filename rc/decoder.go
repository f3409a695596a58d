// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

import (
	"errors"
	"io"
)

// Decoder decodes a stream produced by Encode. It provides the decoded
// data bit by bit or byte by byte. The decoder doesn't know the length of
// the original data; reading beyond it returns garbage.
type Decoder struct {
	r     io.ByteReader
	pred  Predictor
	p0    uint16
	start uint64
	width uint64
	code  uint64
}

// NewDecoder reads the header and the initial code window from r.
func NewDecoder(r io.ByteReader) (*Decoder, error) {
	var h [HeaderLen]byte
	for i := range h {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		h[i] = c
	}
	d := &Decoder{
		r:     r,
		p0:    uint16(h[0])<<8 | uint16(h[1]),
		width: fullWidth,
	}
	if d.p0 == 0 {
		return nil, errors.New("rc: zero probability in header")
	}
	d.pred = Predictor{taps: uint16(h[2])<<8 | uint16(h[3])}
	for i := 0; i < 4; i++ {
		if err := d.updateCode(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Prob returns the probability for a zero residual bit.
func (d *Decoder) Prob() uint16 { return d.p0 }

// Taps returns the tap mask of the predictor.
func (d *Decoder) Taps() uint16 { return d.pred.taps }

// updateCode shifts the next code byte into the code window. The encoder
// guarantees that bytes beyond the end of the stream don't matter, so a
// missing byte is read as zero.
func (d *Decoder) updateCode() error {
	c, err := d.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}
		c = 0
	}
	d.code = (d.code&0x00ffffff)<<8 | uint64(c)
	return nil
}

// ReadBit decodes the next bit.
func (d *Decoder) ReadBit() (b byte, err error) {
	bound := split(d.width, d.p0)
	var r byte
	if d.code < d.start+bound {
		d.width = bound
	} else {
		d.start += bound
		d.width -= bound
		r = 1
	}
	for needsShift(d.start, d.width) {
		_, d.start, d.width = shift(d.start, d.width)
		if err = d.updateCode(); err != nil {
			return 0, err
		}
	}
	b = r ^ d.pred.Predict()
	d.pred.Push(b)
	return b, nil
}

// ReadByte decodes the next eight bits and returns them as byte, most
// significant bit first.
func (d *Decoder) ReadByte() (c byte, err error) {
	for i := 0; i < 8; i++ {
		b, err := d.ReadBit()
		if err != nil {
			return 0, err
		}
		c = c<<1 | b
	}
	return c, nil
}
