// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/gaissmai/bintrie"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var stlog = logrus.WithField("component", "selftest")

// noMatch is the expected value of a check without any matching prefix.
const noMatch = "none"

// Step is a single trie operation with its expected result.
//
//	op: add|del, prefix: "10.20.0.0/16", want: Inserted|AlreadyExists|...
//	op: check,   ip: "10.20.128.16",     want: "16" or "none"
type Step struct {
	Op     string `mapstructure:"op" json:"op"`
	Prefix string `mapstructure:"prefix" json:"prefix,omitempty"`
	IP     string `mapstructure:"ip" json:"ip,omitempty"`
	Want   string `mapstructure:"want" json:"want"`
}

// Scenario is an ordered list of steps, run against one trie.
type Scenario struct {
	Name  string `mapstructure:"name" json:"name"`
	Steps []Step `mapstructure:"steps" json:"steps"`
}

// defaultScenario, the classic example with three prefixes.
func defaultScenario() Scenario {
	return Scenario{
		Name: "default",
		Steps: []Step{
			{Op: "add", Prefix: "10.20.0.0/16", Want: "Inserted"},
			{Op: "add", Prefix: "10.20.0.0/16", Want: "AlreadyExists"},
			{Op: "add", Prefix: "80.64.128.0/20", Want: "Inserted"},
			{Op: "add", Prefix: "30.40.2.3/24", Want: "Inserted"},
			{Op: "add", Prefix: "192.168.0.1/33", Want: "InvalidMask"},

			{Op: "check", IP: "10.20.128.16", Want: "16"},
			{Op: "check", IP: "80.64.140.1", Want: "20"},
			{Op: "check", IP: "192.168.1.1", Want: noMatch},
			{Op: "check", IP: "30.40.2.14", Want: "24"},

			{Op: "del", Prefix: "10.20.0.0/16", Want: "Removed"},
			{Op: "check", IP: "10.20.128.16", Want: noMatch},
		},
	}
}

// Run executes all steps on trie and logs each result.
// It returns the number of steps with an unexpected result,
// malformed steps stop the run with an error.
func (s Scenario) Run(trie *bintrie.Trie) (failed int, err error) {
	log := stlog.WithField("scenario", s.Name)

	for i, step := range s.Steps {
		got, err := step.exec(trie)
		if err != nil {
			return failed, errors.Wrapf(err, "step %d", i+1)
		}

		entry := log.WithFields(logrus.Fields{
			"step": i + 1,
			"op":   step.Op,
			"arg":  step.arg(),
			"got":  got,
			"want": step.Want,
		})

		if got != step.Want {
			failed++
			entry.Error("unexpected result")
			continue
		}
		entry.Info("ok")
	}

	return failed, nil
}

// arg returns the operand of the step.
func (s Step) arg() string {
	if strings.EqualFold(s.Op, "check") {
		return s.IP
	}
	return s.Prefix
}

// exec runs the step and returns the result in the notation of Want.
func (s Step) exec(trie *bintrie.Trie) (string, error) {
	switch strings.ToLower(s.Op) {
	case "add":
		base, mask, err := parseBaseMask(s.Prefix)
		if err != nil {
			return "", err
		}
		outcome, _ := trie.Add(base, mask)
		return outcome.String(), nil

	case "del":
		base, mask, err := parseBaseMask(s.Prefix)
		if err != nil {
			return "", err
		}
		outcome, _ := trie.Del(base, mask)
		return outcome.String(), nil

	case "check":
		ip, err := netip.ParseAddr(s.IP)
		if err != nil {
			return "", errors.Wrapf(err, "check %q", s.IP)
		}
		u, ok := bintrie.AddrToUint32(ip)
		if !ok {
			return "", errors.Errorf("check %q: no IPv4 address", s.IP)
		}
		mask, ok := trie.Check(u)
		if !ok {
			return noMatch, nil
		}
		return strconv.Itoa(mask), nil

	default:
		return "", errors.Errorf("unknown op %q", s.Op)
	}
}

// parseBaseMask splits "addr/mask" without validating the mask range,
// out of range masks must reach the trie unchanged.
func parseBaseMask(s string) (base uint32, mask int, err error) {
	addrStr, maskStr, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, errors.Errorf("prefix %q: missing mask", s)
	}

	ip, err := netip.ParseAddr(addrStr)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "prefix %q", s)
	}

	base, ok := bintrie.AddrToUint32(ip)
	if !ok {
		return 0, 0, errors.Errorf("prefix %q: no IPv4 address", s)
	}

	mask, err = strconv.Atoi(maskStr)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "prefix %q", s)
	}

	return base, mask, nil
}
