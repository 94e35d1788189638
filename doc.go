// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bintrie provides a simple binary trie for IPv4
// longest-prefix-match lookups.
//
// A prefix is a base address and a mask length in [0,32]. The trie
// stores a set of prefixes and answers the question: what is the
// mask length of the most specific prefix matching this address?
//
//	t := bintrie.New()
//	t.Add(0x0A140000, 16)    // 10.20.0.0/16
//	t.Add(0x0A148000, 20)    // 10.20.128.0/20
//	t.Check(0x0A148010)      // 20, true
//	t.Del(0x0A148000, 20)
//	t.Check(0x0A148010)      // 16, true
//
// The trie is a strict binary tree without path compression, one level
// per address bit. Lookups and modifications are bounded by 32 steps.
// Del does not purge interior nodes, call Compact to reclaim them.
//
// Failures are reported by the [Outcome] and a sentinel error, never by
// a panic. A Trie is not safe for concurrent use.
//
// The [netip] based methods Insert, Delete, Lookup and Contains are thin
// adapters for callers working with [netip.Prefix] and [netip.Addr].
package bintrie
