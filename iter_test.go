// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"math/rand/v2"
	"net/netip"
	"slices"
	"testing"

	"github.com/gaissmai/bintrie/internal/golden"
	"github.com/gaissmai/bintrie/internal/tests/random"
)

func TestAll(t *testing.T) {
	t.Parallel()

	var trie Trie
	if got := slices.Collect(trie.All()); len(got) != 0 {
		t.Errorf("All on zero value = %v, want empty", got)
	}

	prng := rand.New(rand.NewPCG(42, 42))
	gold := new(golden.Table)

	for range 1_000 {
		pfx := random.Prefix4(prng)
		trie.Insert(pfx)
		gold.Insert(pfx)
	}

	got := slices.Collect(trie.All())
	want := gold.AllSorted()
	if !slices.Equal(got, want) {
		t.Fatalf("All differs from golden, got %d prefixes, want %d", len(got), len(want))
	}
}

func TestAllEarlyExit(t *testing.T) {
	t.Parallel()

	trie := New()
	trie.Insert(mpp("0.0.0.0/0"))
	trie.Insert(mpp("10.0.0.0/8"))
	trie.Insert(mpp("192.168.0.0/16"))

	var got []netip.Prefix
	for pfx := range trie.All() {
		got = append(got, pfx)
		if len(got) == 2 {
			break
		}
	}

	want := []netip.Prefix{mpp("0.0.0.0/0"), mpp("10.0.0.0/8")}
	if !slices.Equal(got, want) {
		t.Errorf("All with break = %v, want %v", got, want)
	}
}

func TestSupernets(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(42, 42))
	trie := New()
	gold := new(golden.Table)

	for range 2_000 {
		pfx := random.Prefix4(prng)
		trie.Insert(pfx)
		gold.Insert(pfx)
	}

	for range 1_000 {
		ip := random.IP4(prng)
		u, _ := AddrToUint32(ip)

		var want []int
		for _, pfx := range gold.Supernets(ip) {
			want = append(want, pfx.Bits())
		}

		got := slices.Collect(trie.Supernets(u))
		if !slices.Equal(got, want) {
			t.Fatalf("Supernets(%s) = %v, want %v", ip, got, want)
		}

		// first one is the lpm
		if mask, ok := trie.Check(u); ok && got[0] != mask {
			t.Fatalf("Supernets(%s) starts with %d, Check = %d", ip, got[0], mask)
		}
	}
}

func TestSupernetsEarlyExit(t *testing.T) {
	t.Parallel()

	trie := New()
	trie.Insert(mpp("0.0.0.0/0"))
	trie.Insert(mpp("10.0.0.0/8"))
	trie.Insert(mpp("10.20.0.0/16"))
	trie.Insert(mpp("10.20.128.16/32"))

	var got []int
	for mask := range trie.Supernets(u32("10.20.128.16")) {
		got = append(got, mask)
		if mask == 16 {
			break
		}
	}

	if want := []int{32, 16}; !slices.Equal(got, want) {
		t.Errorf("Supernets with break = %v, want %v", got, want)
	}
}
