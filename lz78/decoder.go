// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz78

import "io"

// Decoder decodes a stream created by Encode. The caller must stop reading
// after the original length; the stream doesn't mark its end.
type Decoder struct {
	r      io.ByteReader
	t      *trie
	phrase []byte
	pos    int
}

// NewDecoder creates a decoder reading pairs from r.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r, t: newTrie()}
}

// readPhrase reads the next pair and replaces the current phrase. Indexes
// not in the dictionary can only come from input that wasn't produced by
// Encode; they are decoded as the empty phrase.
func (d *Decoder) readPhrase() error {
	u, err := readVarint(d.r)
	if err != nil {
		return err
	}
	c, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	i := 0
	if u < uint64(len(d.t.nodes)) {
		i = int(u)
	}
	d.phrase = append(d.t.appendPhrase(d.phrase[:0], i), c)
	d.pos = 0
	d.t.add(i, c)
	return nil
}

// ReadByte returns the next decoded byte.
func (d *Decoder) ReadByte() (c byte, err error) {
	if d.pos >= len(d.phrase) {
		if err = d.readPhrase(); err != nil {
			return 0, err
		}
	}
	c = d.phrase[d.pos]
	d.pos++
	return c, nil
}
