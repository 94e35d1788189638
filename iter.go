// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"iter"
	"net/netip"
)

// All returns an iterator over all prefixes in natural CIDR sort order,
// ascending by address, shorter prefixes before longer ones.
func (t *Trie) All() iter.Seq[netip.Prefix] {
	return func(yield func(netip.Prefix) bool) {
		if t.root == nil {
			return
		}
		_ = t.root.allRec(0, 0, yield)
	}
}

// allRec walks the subtree in pre-order, returns false on early exit.
func (n *node) allRec(addr uint32, depth int, yield func(netip.Prefix) bool) bool {
	if n.terminal {
		if !yield(prefixFrom(addr, depth)) {
			return false
		}
	}

	for bit, c := range n.children {
		if c == nil {
			continue
		}
		if !c.allRec(addr|uint32(bit)<<(maxMask-1-depth), depth+1, yield) {
			return false
		}
	}
	return true
}

// Supernets returns an iterator over the mask lengths of all prefixes
// covering ip, from the longest to the shortest match.
// The first yielded mask is the one Check returns.
func (t *Trie) Supernets(ip uint32) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := t.root
		if n == nil {
			return
		}

		// collect the matching masks along the path
		var stack [maxMask + 1]uint8
		var top int

		for depth := 0; n != nil; depth++ {
			if n.terminal {
				stack[top] = n.mask
				top++
			}
			if depth == maxMask {
				break
			}
			n = n.children[bitAt(ip, depth)]
		}

		// unwind, longest first
		for i := top - 1; i >= 0; i-- {
			if !yield(int(stack[i])) {
				return
			}
		}
	}
}
