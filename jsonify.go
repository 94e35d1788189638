// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"net/netip"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DumpListNode contains CIDR and Subnets, representing the trie
// in a sorted, recursive representation, especially useful for serialization.
type DumpListNode struct {
	CIDR    netip.Prefix   `json:"cidr"`
	Subnets []DumpListNode `json:"subnets,omitempty"`
}

// MarshalJSON dumps the trie as sorted list of roots and their subnets.
// Lists, not maps (cidr -> subnets), because the order matters.
func (t *Trie) MarshalJSON() ([]byte, error) {
	result := struct {
		Ipv4 []DumpListNode `json:"ipv4,omitempty"`
	}{
		Ipv4: t.DumpList(),
	}

	return json.Marshal(result)
}

// DumpList dumps the trie into a list of roots and their subnets.
// It returns nil for an empty trie.
func (t *Trie) DumpList() []DumpListNode {
	if t.size == 0 {
		return nil
	}
	return dumpListRec(t.topKids())
}

func dumpListRec(kids []kid) []DumpListNode {
	if len(kids) == 0 {
		return nil
	}

	elements := make([]DumpListNode, 0, len(kids))
	for _, k := range kids {
		elements = append(elements, DumpListNode{
			CIDR:    k.cidr(),
			Subnets: dumpListRec(k.n.directKids(k.addr, k.depth)),
		})
	}

	return elements
}

// yamlNode is the YAML representation of a DumpListNode.
type yamlNode struct {
	CIDR    string     `yaml:"cidr"`
	Subnets []yamlNode `yaml:"subnets,omitempty"`
}

// MarshalYAML implements the yaml Marshaler interface with the same
// layout as MarshalJSON.
func (t *Trie) MarshalYAML() (any, error) {
	result := struct {
		Ipv4 []yamlNode `yaml:"ipv4,omitempty"`
	}{
		Ipv4: toYAML(t.DumpList()),
	}

	return result, nil
}

func toYAML(list []DumpListNode) []yamlNode {
	if len(list) == 0 {
		return nil
	}

	nodes := make([]yamlNode, 0, len(list))
	for _, item := range list {
		nodes = append(nodes, yamlNode{
			CIDR:    item.CIDR.String(),
			Subnets: toYAML(item.Subnets),
		})
	}

	return nodes
}
