// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz78

import "io"

// maxVarintLen is the maximum length of a variable length encoded uint64.
const maxVarintLen = 10

// appendVarint appends the variable length encoding of u: seven bits per
// byte, least significant group first, with the high bit set on all bytes
// except the last.
func appendVarint(p []byte, u uint64) []byte {
	for u >= 0x80 {
		p = append(p, byte(u)|0x80)
		u >>= 7
	}
	return append(p, byte(u))
}

// readVarint reads a variable length encoded integer. At most maxVarintLen
// bytes are consumed; longer sequences return the bits read so far.
func readVarint(r io.ByteReader) (u uint64, err error) {
	for i := 0; i < maxVarintLen; i++ {
		c, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		u |= uint64(c&0x7f) << (7 * uint(i))
		if c < 0x80 {
			break
		}
	}
	return u, nil
}
