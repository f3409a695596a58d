// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package rc

// ExpandBits returns the bits of p, one bit per byte with values 0 or 1.
// The bits of each byte are given most significant bit first.
func ExpandBits(p []byte) []byte {
	s := make([]byte, 0, 8*len(p))
	for _, c := range p {
		for i := 7; i >= 0; i-- {
			s = append(s, (c>>uint(i))&1)
		}
	}
	return s
}

// PackBits is the inverse of ExpandBits. A trailing partial byte is padded
// with zero bits.
func PackBits(s []byte) []byte {
	p := make([]byte, (len(s)+7)/8)
	for i, b := range s {
		p[i/8] |= (b & 1) << uint(7-i%8)
	}
	return p
}
