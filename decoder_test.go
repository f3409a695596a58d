// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xJonas/skylite-sub000/lz77"
	"github.com/0xJonas/skylite-sub000/lz78"
	"github.com/0xJonas/skylite-sub000/rc"
)

func TestNewDecoderChain(t *testing.T) {
	data := pattern(1024)
	out, reports, err := Compress(data, []Method{LZ78, RC})
	require.NoError(t, err)
	require.False(t, reports[0].Skipped)
	require.False(t, reports[1].Skipped)

	d, err := NewDecoder(out)
	require.NoError(t, err)
	// The first stage applied is the last one reversed.
	require.IsType(t, &lz78.Decoder{}, d)

	out, _, err = Compress(data, []Method{LZ77})
	require.NoError(t, err)
	d, err = NewDecoder(out)
	require.NoError(t, err)
	require.IsType(t, &lz77.Decoder{}, d)
}

func TestNewDecoderRaw(t *testing.T) {
	d, err := NewDecoder([]byte{byte(Raw), 'a', 'b'})
	require.NoError(t, err)
	c, err := d.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	// Unknown tags terminate the chain like Raw.
	d, err = NewDecoder([]byte{0x99, 'x'})
	require.NoError(t, err)
	c, err = d.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('x'), c)
}

func TestNewDecoderErrors(t *testing.T) {
	_, err := NewDecoder(nil)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewDecoder([]byte{byte(RC), 0x12})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "rc stage")

	_, err = NewDecoder([]byte{byte(LZ77)})
	require.ErrorIs(t, err, io.EOF)
}

func TestBitReader(t *testing.T) {
	data := bytes.Repeat([]byte{0x55, 0x00, 0x00, 0x00}, 64)
	out, reports, err := Compress(data, []Method{RC})
	require.NoError(t, err)
	require.False(t, reports[0].Skipped)

	d, err := NewDecoder(out)
	require.NoError(t, err)
	require.IsType(t, &rc.Decoder{}, d)
	br, ok := d.(BitReader)
	require.True(t, ok)
	for i, want := range rc.ExpandBits(data) {
		b, err := br.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, b, "bit %d", i)
	}
}

func TestReader(t *testing.T) {
	data := bytes.Repeat([]byte("blob data "), 100)
	out, _, err := Compress(data, []Method{LZ77, LZ78, RC})
	require.NoError(t, err)

	r, err := NewReader(out, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), r.Len())
	var buf bytes.Buffer
	p := make([]byte, 7)
	for {
		n, err := r.Read(p)
		buf.Write(p[:n])
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, data, buf.Bytes())
	require.Equal(t, int64(0), r.Len())
	_, err = r.ReadByte()
	require.Equal(t, io.EOF, err)
}

func TestReaderDiscard(t *testing.T) {
	data := pattern(1024)
	out, _, err := Compress(data, Methods())
	require.NoError(t, err)
	r, err := NewReader(out, int64(len(data)))
	require.NoError(t, err)

	n, err := r.Discard(1000)
	require.NoError(t, err)
	require.Equal(t, int64(1000), n)
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data[1000:], rest)

	n, err = r.Discard(1)
	require.Equal(t, io.EOF, err)
	require.Zero(t, n)
	_, err = r.Discard(-1)
	require.Error(t, err)
}

func TestReaderErrors(t *testing.T) {
	_, err := NewReader([]byte{byte(Raw)}, -1)
	require.ErrorIs(t, err, ErrLength)

	_, err = Decompress([]byte{byte(Raw), 1, 2}, 5)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
