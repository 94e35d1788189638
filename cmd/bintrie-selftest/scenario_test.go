// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/bintrie"
)

func TestDefaultScenario(t *testing.T) {
	trie := bintrie.New()
	defer trie.Destroy()

	failed, err := defaultScenario().Run(trie)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 2, trie.Size())
}

func TestScenarioMismatch(t *testing.T) {
	s := Scenario{
		Name: "mismatch",
		Steps: []Step{
			{Op: "add", Prefix: "10.0.0.0/8", Want: "Inserted"},
			{Op: "check", IP: "10.1.1.1", Want: "16"},
			{Op: "del", Prefix: "192.168.0.0/16", Want: "Removed"},
			{Op: "CHECK", IP: "11.1.1.1", Want: noMatch},
		},
	}

	failed, err := s.Run(bintrie.New())
	require.NoError(t, err)
	assert.Equal(t, 2, failed)
}

func TestScenarioMalformed(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{"unknown op", Step{Op: "upsert", Prefix: "10.0.0.0/8"}},
		{"missing mask", Step{Op: "add", Prefix: "10.0.0.0"}},
		{"bad mask", Step{Op: "del", Prefix: "10.0.0.0/x"}},
		{"bad addr", Step{Op: "add", Prefix: "10.0.0/8"}},
		{"ipv6 prefix", Step{Op: "add", Prefix: "2001:db8::/32"}},
		{"bad ip", Step{Op: "check", IP: "10.0.0"}},
		{"ipv6 ip", Step{Op: "check", IP: "::1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scenario{Name: tt.name, Steps: []Step{tt.step}}
			_, err := s.Run(bintrie.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "step 1")
		})
	}
}

func TestParseBaseMask(t *testing.T) {
	base, mask, err := parseBaseMask("80.64.128.0/20")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x50408000), base)
	assert.Equal(t, 20, mask)

	// out of range masks are passed through
	base, mask, err = parseBaseMask("192.168.0.1/33")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xC0A80001), base)
	assert.Equal(t, 33, mask)

	_, mask, err = parseBaseMask("10.0.0.0/-1")
	require.NoError(t, err)
	assert.Equal(t, -1, mask)
}
