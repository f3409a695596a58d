// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lz77 implements a byte oriented Lempel-Ziv codec with a
// dictionary of 256 bytes.
//
// The encoded stream consists of a single offset byte followed by
// operations. Every operation starts with a control byte. The low bit of
// the control byte selects between a literal run (0) and a match (1); the
// remaining bits hold the length minus one. A literal run is followed by
// its bytes, a match by a single byte giving the distance of the copy
// source. Before the control bytes are written, the offset is subtracted
// from them, which moves their values close to the values of the literal
// bytes and helps a statistical coder applied later.
package lz77

import "io"

// Decoder decodes a stream created by Encode. It doesn't detect the end of
// the original data; the caller must stop reading after the original
// length.
type Decoder struct {
	r      io.ByteReader
	dict   dict
	offset byte
	match  bool
	dist   int
	// remaining bytes of the current operation
	n int
}

// NewDecoder creates a decoder reading the operation stream from r.
func NewDecoder(r io.ByteReader) (*Decoder, error) {
	off, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return &Decoder{r: r, offset: off}, nil
}

// readOp reads the next operation.
func (d *Decoder) readOp() error {
	c, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	c += d.offset
	if c&1 != 0 {
		dist, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		d.dist = int(dist)
	}
	d.n = int(c>>1) + 1
	d.match = c&1 != 0
	return nil
}

// ReadByte returns the next decoded byte.
func (d *Decoder) ReadByte() (c byte, err error) {
	if d.n == 0 {
		if err = d.readOp(); err != nil {
			return 0, err
		}
	}
	if d.match {
		c = d.dict.byteAt(d.dist)
	} else if c, err = d.r.ReadByte(); err != nil {
		return 0, err
	}
	d.dict.WriteByte(c)
	d.n--
	return c, nil
}
