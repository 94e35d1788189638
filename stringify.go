// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"bytes"
	"fmt"
	"io"
	"net/netip"
	"strings"
)

// kid, a node has no path information about its predecessors,
// we collect this during the recursive descent.
// The addr/depth is needed to get the CIDR back.
type kid struct {
	n     *node
	addr  uint32
	depth int
}

// cidr returns the prefix represented by this kid.
func (k kid) cidr() netip.Prefix {
	return prefixFrom(k.addr, k.depth)
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered CIDRs
// as string, just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered CIDRs to w.
// If w is nil, Fprint panics. An empty trie writes nothing.
//
// The order from top to bottom is in ascending order of the prefix address
// and the subtree structure is determined by the CIDRs coverage.
//
//	▼
//	├─ 10.0.0.0/8
//	│  ├─ 10.0.0.0/24
//	│  └─ 10.0.1.0/24
//	├─ 127.0.0.0/8
//	│  └─ 127.0.0.1/32
//	└─ 192.168.0.0/16
//	   └─ 192.168.1.0/24
func (t *Trie) Fprint(w io.Writer) error {
	if t.size == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return fprintRec(w, t.topKids(), "")
}

// fprintRec, the output is a hierarchical CIDR tree of these kids.
func fprintRec(w io.Writer, kids []kid, pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, k := range kids {
		// ... treat last kid special
		if i == len(kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s\n", pad+glyphe, k.cidr()); err != nil {
			return err
		}

		// rec-descent with this kid as parent
		if err := fprintRec(w, k.n.directKids(k.addr, k.depth), pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// topKids returns the prefixes not covered by any other prefix.
func (t *Trie) topKids() []kid {
	if t.root == nil {
		return nil
	}

	// default route covers everything
	if t.root.terminal {
		return []kid{{n: t.root}}
	}

	return t.root.directKids(0, 0)
}

// directKids returns the nearest terminal nodes below n, in sort order.
// n itself at addr/depth is excluded.
func (n *node) directKids(addr uint32, depth int) []kid {
	var kids []kid

	for bit, c := range n.children {
		if c == nil {
			continue
		}

		childAddr := addr | uint32(bit)<<(maxMask-1-depth)

		// terminal child, stop here, its subtree belongs to this kid
		if c.terminal {
			kids = append(kids, kid{n: c, addr: childAddr, depth: depth + 1})
			continue
		}

		kids = append(kids, c.directKids(childAddr, depth+1)...)
	}

	return kids
}
