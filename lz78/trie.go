// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lz78

// MaxNodes limits the number of nodes of the phrase trie including the
// root.
const MaxNodes = 1024

// noNode marks the missing parent of the root.
const noNode = -1

// node is a phrase in the trie: the phrase of the parent extended by c.
type node struct {
	c      byte
	parent int
	// children are allocated on the first extension
	children []int
}

// trie stores the known phrases. Node 0 is the root and represents the
// empty phrase.
type trie struct {
	nodes []node
}

func newTrie() *trie {
	t := &trie{nodes: make([]node, 1, MaxNodes)}
	t.nodes[0].parent = noNode
	return t
}

// full reports whether no further phrases can be added.
func (t *trie) full() bool { return len(t.nodes) >= MaxNodes }

// child returns the index of the node extending node i with c. The second
// result is false if there is no such node.
func (t *trie) child(i int, c byte) (int, bool) {
	for _, k := range t.nodes[i].children {
		if t.nodes[k].c == c {
			return k, true
		}
	}
	return 0, false
}

// add extends the phrase of node i by c. Nothing is added to a full trie.
func (t *trie) add(i int, c byte) {
	if t.full() {
		return
	}
	k := len(t.nodes)
	t.nodes = append(t.nodes, node{c: c, parent: i})
	t.nodes[i].children = append(t.nodes[i].children, k)
}

// appendPhrase appends the phrase of node i to p.
func (t *trie) appendPhrase(p []byte, i int) []byte {
	n := len(p)
	for ; t.nodes[i].parent != noNode; i = t.nodes[i].parent {
		p = append(p, t.nodes[i].c)
	}
	q := p[n:]
	for j, k := 0, len(q)-1; j < k; j, k = j+1, k-1 {
		q[j], q[k] = q[k], q[j]
	}
	return p
}
