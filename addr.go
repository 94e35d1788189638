// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// AddrToUint32 returns the IPv4 address ip as uint32 in host order,
// false for invalid or IPv6 addresses.
func AddrToUint32(ip netip.Addr) (uint32, bool) {
	if !ip.Is4() {
		return 0, false
	}
	a4 := ip.As4()
	return binary.BigEndian.Uint32(a4[:]), true
}

// Uint32ToAddr is the inverse of AddrToUint32.
func Uint32ToAddr(u uint32) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], u)
	return netip.AddrFrom4(a4)
}

// prefixFrom returns the canonical prefix for base/mask.
func prefixFrom(base uint32, mask int) netip.Prefix {
	return netip.PrefixFrom(Uint32ToAddr(base), mask).Masked()
}

// ParsePrefix parses an IPv4 CIDR string like "10.20.0.0/16" into
// base address and mask length. The host bits are not masked.
func ParsePrefix(s string) (base uint32, mask int, err error) {
	pfx, err := netip.ParsePrefix(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return splitPrefix(pfx)
}

// splitPrefix returns base and mask of an IPv4 prefix.
func splitPrefix(pfx netip.Prefix) (base uint32, mask int, err error) {
	if !pfx.IsValid() {
		return 0, 0, ErrInvalidPrefix
	}
	base, ok := AddrToUint32(pfx.Addr())
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s is no IPv4 prefix", ErrInvalidPrefix, pfx)
	}
	return base, pfx.Bits(), nil
}

// Insert adds pfx to the trie, see Add.
// Invalid or IPv6 prefixes are reported as InvalidMask with ErrInvalidPrefix.
func (t *Trie) Insert(pfx netip.Prefix) (Outcome, error) {
	base, mask, err := splitPrefix(pfx)
	if err != nil {
		return InvalidMask, err
	}
	return t.Add(base, mask)
}

// Delete removes pfx from the trie, see Del.
// Invalid or IPv6 prefixes are reported as InvalidMask with ErrInvalidPrefix.
func (t *Trie) Delete(pfx netip.Prefix) (Outcome, error) {
	base, mask, err := splitPrefix(pfx)
	if err != nil {
		return InvalidMask, err
	}
	return t.Del(base, mask)
}

// Lookup does a longest-prefix-match for ip and returns the
// matching prefix and true, or false if no prefix matches
// or ip is no IPv4 address.
func (t *Trie) Lookup(ip netip.Addr) (lpm netip.Prefix, ok bool) {
	u, ok := AddrToUint32(ip)
	if !ok {
		return lpm, false
	}

	mask, ok := t.Check(u)
	if !ok {
		return lpm, false
	}

	return prefixFrom(u, mask), true
}

// Contains reports whether any prefix matches ip.
func (t *Trie) Contains(ip netip.Addr) bool {
	_, ok := t.Lookup(ip)
	return ok
}
