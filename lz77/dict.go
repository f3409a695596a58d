// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz77

// DictSize is the number of bytes kept in the history window.
const DictSize = 256

// dict is a circular history of the last DictSize bytes. Positions are
// addressed by their distance from the newest byte; distance 0 is the
// byte written last. Bytes that have never been written read as zero.
type dict struct {
	data [DictSize]byte
	head int
}

// WriteByte appends c, overwriting the oldest byte.
func (d *dict) WriteByte(c byte) error {
	d.data[d.head] = c
	d.head++
	if d.head == DictSize {
		d.head = 0
	}
	return nil
}

// byteAt returns the byte at the given distance.
func (d *dict) byteAt(dist int) byte {
	if !(0 <= dist && dist < DictSize) {
		panic("lz77: distance out of range")
	}
	i := d.head - 1 - dist
	if i < 0 {
		i += DictSize
	}
	return d.data[i]
}
