// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	nullNode         nodeType = iota // no prefix, no children
	fullNode                         // prefix and children
	leafNode                         // prefix, no children
	intermediateNode                 // only children, no prefix
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Trie) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t *Trie) dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}

	fmt.Fprintf(w, "### IPv4: size(%d), nodes(%d)\n", t.size, t.nodes)
	t.root.dumpRec(w, 0, 0)
}

// dumpRec, rec-descent the trie, only nodes with a prefix are
// printed, interior nodes would just blow up the output.
func (n *node) dumpRec(w io.Writer, addr uint32, depth int) {
	if n.terminal || depth == 0 {
		indent := strings.Repeat(".", depth)
		fmt.Fprintf(w, "%s[%s] depth: %d path: [%s] mask: %s\n",
			indent, n.hasType(), depth, bitPath(addr, depth), maskFmt(n))
	}

	for bit, c := range n.children {
		if c != nil {
			c.dumpRec(w, addr|uint32(bit)<<(maxMask-1-depth), depth+1)
		}
	}
}

// hasType returns the nodeType.
func (n *node) hasType() nodeType {
	switch {
	case !n.terminal && n.isLeaf():
		return nullNode
	case n.terminal && n.isLeaf():
		return leafNode
	case n.terminal:
		return fullNode
	default:
		return intermediateNode
	}
}

// bitPath, the first depth bits of addr as 0/1 string.
func bitPath(addr uint32, depth int) string {
	buf := new(strings.Builder)
	for i := range depth {
		if i != 0 && i%8 == 0 {
			buf.WriteString(".")
		}
		fmt.Fprintf(buf, "%d", bitAt(addr, i))
	}
	return buf.String()
}

func maskFmt(n *node) string {
	if !n.terminal {
		return "-"
	}
	return fmt.Sprintf("/%d", n.mask)
}

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case nullNode:
		return "NULL"
	case fullNode:
		return "FULL"
	case leafNode:
		return "LEAF"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}

// stats, only used for dump, tests and benchmarks
type stats struct {
	pfxs  int
	nodes int
}

// nodeStatsRec, calculate the number of pfxs and nodes under n, rec-descent.
// It panics if a terminal node violates the depth invariant.
func (n *node) nodeStatsRec(depth int) stats {
	var s stats
	if n == nil {
		return s
	}

	s.nodes = 1 // this node
	if n.terminal {
		if int(n.mask) != depth {
			panic(fmt.Sprintf("logic error, mask /%d at depth %d", n.mask, depth))
		}
		s.pfxs = 1
	}

	for _, c := range n.children {
		rs := c.nodeStatsRec(depth + 1)
		s.pfxs += rs.pfxs
		s.nodes += rs.nodes
	}

	return s
}
