// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"bytes"
	"fmt"
	"io"
)

// BitReader is implemented by decoders that provide their output bit by
// bit. The range coder decoder is one of them.
type BitReader interface {
	ReadBit() (b byte, err error)
}

// NewDecoder reads the stage tags from the front of data and builds the
// chain of decoders that reverses the stages. The returned decoder
// provides the original data. It doesn't know the length of the data; the
// caller must stop reading after the original length.
func NewDecoder(data []byte) (io.ByteReader, error) {
	var r io.ByteReader = bytes.NewReader(data)
	for {
		tag, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		c, ok := codecs[Method(tag)]
		if !ok {
			return r, nil
		}
		if r, err = c.newDecoder(r); err != nil {
			return nil, fmt.Errorf("compress: %s stage: %w",
				Method(tag), err)
		}
	}
}
