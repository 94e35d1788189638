// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random provides seeded IPv4 test data generators.
package random

import (
	"math/rand/v2"
	"net/netip"
)

// IP4 returns a random IPv4 address.
func IP4(prng *rand.Rand) netip.Addr {
	var b [4]byte
	for i := range b {
		b[i] = byte(prng.Uint32() & 0xff)
	}
	return netip.AddrFrom4(b)
}

// Prefix4 returns a random, masked IPv4 prefix with bits in [0,32].
func Prefix4(prng *rand.Rand) netip.Prefix {
	bits := prng.IntN(33)
	pfx, err := IP4(prng).Prefix(bits)
	if err != nil {
		panic(err)
	}
	return pfx
}

// RealWorldPrefixes4 returns n unique, masked IPv4 prefixes with bits in
// [8,28], the typical range of a routing table.
func RealWorldPrefixes4(prng *rand.Rand, n int) []netip.Prefix {
	set := make(map[netip.Prefix]struct{}, n)
	pfxs := make([]netip.Prefix, 0, n)

	for len(pfxs) < n {
		bits := 8 + prng.IntN(21)
		pfx, err := IP4(prng).Prefix(bits)
		if err != nil {
			panic(err)
		}

		if _, ok := set[pfx]; ok {
			continue
		}
		set[pfx] = struct{}{}
		pfxs = append(pfxs, pfx)
	}

	return pfxs
}
