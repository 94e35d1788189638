// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import "errors"

var (
	// ErrInvalidMask is returned for a mask length outside [0,32].
	ErrInvalidMask = errors.New("bintrie: invalid mask length")

	// ErrEmptySet is returned by Del on a trie without any prefix.
	ErrEmptySet = errors.New("bintrie: empty prefix set")

	// ErrNotFound is returned by Del if the prefix is not in the trie.
	ErrNotFound = errors.New("bintrie: prefix not found")

	// ErrOutOfMemory is returned by Add if the node budget is exhausted.
	ErrOutOfMemory = errors.New("bintrie: node budget exhausted")

	// ErrInvalidPrefix is returned by the netip adapters for invalid
	// or non IPv4 prefixes.
	ErrInvalidPrefix = errors.New("bintrie: invalid IPv4 prefix")
)

// Outcome reports the result of a modifying operation.
type Outcome uint8

const (
	// Inserted, Add stored a new prefix.
	Inserted Outcome = iota

	// AlreadyExists, Add found the prefix already stored.
	AlreadyExists

	// Removed, Del removed the prefix.
	Removed

	// InvalidMask, the mask length is outside [0,32].
	InvalidMask

	// EmptySet, Del was called on a trie without any prefix.
	EmptySet

	// NotFound, Del did not find the prefix.
	NotFound

	// OutOfMemory, Add would exceed the node budget.
	OutOfMemory
)

var outcomeNames = [...]string{
	Inserted:      "Inserted",
	AlreadyExists: "AlreadyExists",
	Removed:       "Removed",
	InvalidMask:   "InvalidMask",
	EmptySet:      "EmptySet",
	NotFound:      "NotFound",
	OutOfMemory:   "OutOfMemory",
}

// String implements fmt.Stringer, unknown values print as "Outcome(?)".
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Outcome(?)"
}

// Err maps a failure outcome to its sentinel error.
// Inserted, AlreadyExists and Removed are no failures, Err returns nil.
func (o Outcome) Err() error {
	switch o {
	case InvalidMask:
		return ErrInvalidMask
	case EmptySet:
		return ErrEmptySet
	case NotFound:
		return ErrNotFound
	case OutOfMemory:
		return ErrOutOfMemory
	default:
		return nil
	}
}
