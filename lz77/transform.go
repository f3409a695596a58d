// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz77

// histograms counts the values of the control bytes and of the literal
// bytes in the operation stream p. Distance bytes are not counted.
func histograms(p []byte) (ctrl, lit [256]int) {
	for i := 0; i < len(p); {
		c := p[i]
		ctrl[c]++
		i++
		if c&1 != 0 {
			i++
			continue
		}
		n := int(c>>1) + 1
		for _, b := range p[i:min(i+n, len(p))] {
			lit[b]++
		}
		i += n
	}
	return ctrl, lit
}

// bestOffset returns the offset r for which the control bytes reduced by r
// correlate best with the literal bytes. The smallest offset wins ties.
func bestOffset(ctrl, lit *[256]int) byte {
	best, score := 0, -1
	for r := 0; r < 256; r++ {
		s := 0
		for v, n := range ctrl {
			if n != 0 {
				s += n * lit[(v-r)&0xff]
			}
		}
		if s > score {
			best, score = r, s
		}
	}
	return byte(best)
}

// transform subtracts the best offset from every control byte of the
// operation stream p and returns the offset.
func transform(p []byte) byte {
	ctrl, lit := histograms(p)
	off := bestOffset(&ctrl, &lit)
	for i := 0; i < len(p); {
		c := p[i]
		p[i] = c - off
		i++
		if c&1 != 0 {
			i++
		} else {
			i += int(c>>1) + 1
		}
	}
	return off
}
