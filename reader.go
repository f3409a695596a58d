// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"errors"
	"io"
)

// Reader provides the decompressed data as io.Reader. It stops after the
// original length given to NewReader.
type Reader struct {
	d io.ByteReader
	// n is the number of bytes still to be decoded.
	n int64
}

// NewReader creates a reader for the data created by Compress. The
// argument n must be the length of the original data.
func NewReader(data []byte, n int64) (*Reader, error) {
	if n < 0 {
		return nil, ErrLength
	}
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}
	return &Reader{d: d, n: n}, nil
}

// Len returns the number of bytes that can still be read.
func (r *Reader) Len() int64 { return r.n }

// ReadByte returns the next decompressed byte.
func (r *Reader) ReadByte() (c byte, err error) {
	if r.n <= 0 {
		return 0, io.EOF
	}
	if c, err = r.d.ReadByte(); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	r.n--
	return c, nil
}

// Read reads decompressed data into p.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.n <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > r.n {
		p = p[:r.n]
	}
	for n < len(p) {
		if p[n], err = r.ReadByte(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Discard skips the next n decompressed bytes. It returns the number of
// bytes discarded, which is less than n only at the end of the data or on
// error.
func (r *Reader) Discard(n int64) (discarded int64, err error) {
	if n < 0 {
		return 0, errors.New("compress: negative discard count")
	}
	for discarded < n {
		if _, err = r.ReadByte(); err != nil {
			return discarded, err
		}
		discarded++
	}
	return discarded, nil
}

// Decompress returns the n bytes of original data for data created by
// Compress.
func Decompress(data []byte, n int) ([]byte, error) {
	r, err := NewReader(data, int64(n))
	if err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if _, err = io.ReadFull(r, p); err != nil {
		return nil, err
	}
	return p, nil
}
