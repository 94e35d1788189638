// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

const (
	// maxMask is the longest IPv4 prefix length and the max trie depth.
	maxMask = 32
)

// node is a binary trie node, the children are indexed by the address bit.
//
// A node at depth d represents all addresses sharing the first d bits
// of the path from the root. If terminal is set, the prefix of length d
// is in the set and mask is d.
type node struct {
	children [2]*node
	terminal bool
	mask     uint8
}

// isLeaf reports whether n has no children.
func (n *node) isLeaf() bool {
	return n.children[0] == nil && n.children[1] == nil
}

// Trie is an IPv4 longest-prefix-match set, implemented as
// a binary trie without path compression.
//
// The zero value is ready to use. A Trie is not safe for
// concurrent use, protect it with a single external lock.
type Trie struct {
	root *node

	// number of stored prefixes
	size int

	// number of allocated nodes, root included
	nodes int

	// node budget, 0 means unlimited
	maxNodes int
}

// Option configures a Trie.
type Option func(*Trie)

// WithMaxNodes limits the number of trie nodes, root included.
// Add reports OutOfMemory instead of growing beyond this budget.
// n <= 0 means unlimited.
func WithMaxNodes(n int) Option {
	return func(t *Trie) {
		if n < 0 {
			n = 0
		}
		t.maxNodes = n
	}
}

// New returns an empty trie with a single root node.
func New(opts ...Option) *Trie {
	t := new(Trie)
	for _, opt := range opts {
		opt(t)
	}
	t.init()
	return t
}

// init allocates the root node, if needed.
func (t *Trie) init() {
	if t.root == nil {
		t.root = new(node)
		t.nodes = 1
	}
}

// bitAt returns the address bit at depth, counted from the MSB.
func bitAt(addr uint32, depth int) uint32 {
	return (addr >> (maxMask - 1 - depth)) & 1
}

// validMask reports whether mask is a legal IPv4 prefix length.
func validMask(mask int) bool {
	return mask >= 0 && mask <= maxMask
}

// Add inserts the prefix base/mask. Only the mask most significant
// bits of base are relevant, the host bits are ignored.
//
// Add returns Inserted for a new prefix and AlreadyExists for a duplicate,
// both with a nil error. An invalid mask or an exhausted node budget are
// reported with InvalidMask or OutOfMemory and the matching error,
// the trie is unchanged in these cases.
func (t *Trie) Add(base uint32, mask int) (Outcome, error) {
	if !validMask(mask) {
		return InvalidMask, ErrInvalidMask
	}

	t.init()

	// check the budget before allocating, never leave a half built path
	if t.maxNodes > 0 && t.nodes+t.missingNodes(base, mask) > t.maxNodes {
		return OutOfMemory, ErrOutOfMemory
	}

	n := t.root
	for depth := range mask {
		bit := bitAt(base, depth)

		// create missing intermediate child, no path compression!
		child := n.children[bit]
		if child == nil {
			child = new(node)
			n.children[bit] = child
			t.nodes++
		}

		// go down
		n = child
	}

	if n.terminal {
		return AlreadyExists, nil
	}

	n.terminal = true
	n.mask = uint8(mask)
	t.size++

	return Inserted, nil
}

// missingNodes counts the nodes Add must allocate for base/mask.
func (t *Trie) missingNodes(base uint32, mask int) int {
	n := t.root
	for depth := range mask {
		n = n.children[bitAt(base, depth)]
		if n == nil {
			return mask - depth
		}
	}
	return 0
}

// Del removes the prefix base/mask.
//
// Del returns InvalidMask for a mask outside [0,32], EmptySet if the
// trie holds no prefix at all and NotFound if base/mask was never added
// or is already deleted. Interior nodes are not pruned, see Compact.
func (t *Trie) Del(base uint32, mask int) (Outcome, error) {
	if !validMask(mask) {
		return InvalidMask, ErrInvalidMask
	}

	if t.size == 0 {
		return EmptySet, ErrEmptySet
	}

	n := t.root
	for depth := range mask {
		n = n.children[bitAt(base, depth)]
		if n == nil {
			// path was never built
			return NotFound, ErrNotFound
		}
	}

	if !n.terminal {
		return NotFound, ErrNotFound
	}

	n.terminal = false
	n.mask = 0
	t.size--

	return Removed, nil
}

// Check does a longest-prefix-match for ip and returns the mask length
// of the most specific matching prefix and true, or false if no
// prefix matches.
func (t *Trie) Check(ip uint32) (mask int, ok bool) {
	n := t.root
	if n == nil {
		return 0, false
	}

	for depth := 0; ; depth++ {
		// deeper matches overwrite shallower ones
		if n.terminal {
			mask, ok = int(n.mask), true
		}

		if depth == maxMask {
			return mask, ok
		}

		// stop traversing, no longer prefix can match
		n = n.children[bitAt(ip, depth)]
		if n == nil {
			return mask, ok
		}
	}
}

// Size returns the number of stored prefixes.
func (t *Trie) Size() int {
	return t.size
}

// Nodes returns the number of allocated trie nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// IsEmpty reports whether the trie holds no prefix.
func (t *Trie) IsEmpty() bool {
	return t.size == 0
}

// Destroy releases all nodes, children before their parent.
// Afterwards the trie is empty and may be used again.
func (t *Trie) Destroy() {
	if t.root == nil {
		return
	}

	releaseAll(t.root)

	t.root = nil
	t.size = 0
	t.nodes = 0
}

// releaseAll unlinks and clears all nodes below and including n in
// post-order with an explicit stack. Returns the number of released nodes.
func releaseAll(n *node) int {
	// the stack never grows beyond the max path length
	stack := make([]*node, 0, maxMask+1)
	stack = append(stack, n)

	released := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// descend into the first remaining child
		if c := top.children[0]; c != nil {
			stack = append(stack, c)
			continue
		}
		if c := top.children[1]; c != nil {
			stack = append(stack, c)
			continue
		}

		// leaf, pop and unlink it from the parent
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			if parent.children[0] == top {
				parent.children[0] = nil
			} else {
				parent.children[1] = nil
			}
		}

		*top = node{}
		released++
	}

	return released
}

// Compact purges dangling paths, interior nodes without a prefix and
// without any prefix below them. The root is never purged.
// Query results are unchanged, Compact returns the number of purged nodes.
func (t *Trie) Compact() int {
	if t.root == nil {
		return 0
	}

	purged := t.root.purgeRec()
	t.nodes -= purged

	return purged
}

// purgeRec purges all empty subtrees below n.
func (n *node) purgeRec() (purged int) {
	for i, c := range n.children {
		if c == nil {
			continue
		}

		purged += c.purgeRec()

		if !c.terminal && c.isLeaf() {
			n.children[i] = nil
			purged++
		}
	}
	return purged
}
