// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"cmp"
	"net/netip"
	"slices"
)

// Table is a simple and slow IPv4 prefix set, implemented as a slice
// of prefixes, as a golden reference for bintrie.
type Table []netip.Prefix

// Insert adds pfx in canonical form, returns false for a duplicate.
func (t *Table) Insert(pfx netip.Prefix) bool {
	pfx = pfx.Masked()
	if slices.Contains(*t, pfx) {
		return false
	}
	*t = append(*t, pfx)
	return true
}

// Delete removes pfx, returns false if pfx is not in the table.
func (t *Table) Delete(pfx netip.Prefix) bool {
	pfx = pfx.Masked()
	for i, item := range *t {
		if item == pfx {
			*t = slices.Delete(*t, i, i+1)
			return true
		}
	}
	return false
}

// Lookup returns the longest prefix containing ip.
func (t Table) Lookup(ip netip.Addr) (lpm netip.Prefix, ok bool) {
	bestLen := -1

	for _, item := range t {
		if item.Contains(ip) && item.Bits() > bestLen {
			lpm = item
			ok = true
			bestLen = item.Bits()
		}
	}
	return lpm, ok
}

// Supernets returns all prefixes containing ip, longest first.
func (t Table) Supernets(ip netip.Addr) []netip.Prefix {
	var result []netip.Prefix

	for _, item := range t {
		if item.Contains(ip) {
			result = append(result, item)
		}
	}
	slices.SortFunc(result, CmpPrefix)
	slices.Reverse(result)
	return result
}

// AllSorted returns a sorted copy of all prefixes.
func (t Table) AllSorted() []netip.Prefix {
	result := slices.Clone(t)
	slices.SortFunc(result, CmpPrefix)
	return result
}

// CmpPrefix, helper function, compare func for prefix sort,
// all cidrs are already normalized
func CmpPrefix(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}

	return cmp.Compare(a.Bits(), b.Bits())
}
