package trie

// node represents a single vertex of the radix trie
type node struct {
	// prefix is the compressed edge label leading into this node.
	// It is empty only for the root.
	prefix string

	// isLeaf marks that the path from the root through this node spells
	// a stored word
	isLeaf bool

	// root points at the trie's root so a search can restart there when
	// it crosses a word boundary. Every node in a tree shares the same
	// root pointer; it carries no ownership.
	root *node

	// children maps the first byte of each child's prefix to the child
	children map[byte]*node
}

// newNode creates a node attached to the given root. Passing nil makes
// the node its own root.
func newNode(root *node, prefix string, isLeaf bool) *node {
	n := &node{
		prefix:   prefix,
		isLeaf:   isLeaf,
		children: make(map[byte]*node),
	}
	if root == nil {
		root = n
	}
	n.root = root
	return n
}

// splitPrefix compares a and b byte by byte from index 0 and returns the
// common prefix together with the unmatched tails of both strings.
func splitPrefix(a, b string) (matched, remainderA, remainderB string) {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i], a[i:], b[i:]
}
