// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates pseudo-random English-like text. The words
// follow a Zipf distribution, which gives the text the repetitions the
// dictionary coders are built for.
package randtxt

import (
	"math/rand"
	"sort"
)

// words is ordered by decreasing frequency.
var words = []string{
	"the", "of", "and", "to", "a", "in", "is", "it", "you", "that",
	"he", "was", "for", "on", "are", "with", "as", "his", "they", "be",
	"at", "one", "have", "this", "from", "or", "had", "by", "hot", "word",
	"but", "what", "some", "we", "can", "out", "other", "were", "all",
	"there", "when", "up", "use", "your", "how", "said", "an", "each",
	"she", "which", "do", "their", "time", "if", "will", "way", "about",
	"many", "then", "them", "write", "would", "like", "so", "these",
	"her", "long", "make", "thing", "see", "him", "two", "has", "look",
	"more", "day", "could", "go", "come", "did", "number", "sound", "no",
	"most", "people", "my", "over", "know", "water", "than", "call",
	"first", "who", "may", "down", "side", "been", "now", "find", "tile",
	"sprite", "castle", "dungeon", "player", "level", "music", "door",
}

type prob struct {
	s string
	p float64
}

type probs []prob

func (s probs) SearchProb(p float64) int {
	return sort.Search(len(s), func(k int) bool { return s[k].p >= p })
}

// cdf returns the cumulative distribution for the n values returned by p.
func cdf(n int, p func(i int) prob) probs {
	prs := make(probs, n)
	sum := 0.0
	for i := range prs {
		pr := p(i)
		sum += pr.p
		prs[i] = pr
	}
	q := 1.0 / sum
	x := 0.0
	for i, pr := range prs {
		x = min(x+pr.p*q, 1.0)
		prs[i].p = x
	}
	prs[n-1].p = 1.0
	return prs
}

var wcdf = cdf(len(words), func(i int) prob {
	return prob{words[i], 1 / float64(i+1)}
})

// Reader produces an endless stream of words, separated by spaces and
// grouped into sentences.
type Reader struct {
	rnd *rand.Rand
	buf []byte
	// n counts the words of the current sentence.
	n int
}

func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

func (r *Reader) word() {
	w := wcdf[wcdf.SearchProb(r.rnd.Float64())].s
	start := len(r.buf)
	r.buf = append(r.buf, w...)
	if r.n == 0 {
		r.buf[start] -= 'a' - 'A'
	}
	r.n++
	if r.n >= 4 && r.rnd.Intn(8) == 0 {
		r.buf = append(r.buf, '.')
		r.n = 0
	}
	r.buf = append(r.buf, ' ')
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			r.word()
		}
		k := copy(p[n:], r.buf)
		r.buf = r.buf[k:]
		n += k
	}
	return n, nil
}
