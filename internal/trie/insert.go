package trie

// add inserts word into the subtree rooted at n, keeping every edge
// maximally compressed. Exactly one of four cases applies, selected by the
// relation between word and the node's prefix and by whether an edge for
// word's first byte already exists.
//
// repeatingPrefix is set by case 3 when the remaining word opens by
// repeating the prefix just consumed (adding "aa" when "a" is already an
// edge). It forces the recursion past case 1 so the repeated word is
// inserted as a new edge instead of being mistaken for one that is already
// present.
func (n *node) add(word string, repeatingPrefix bool) {
	// Case 1: the word is exactly this node's prefix. Marking an existing
	// leaf again is a no-op, which keeps Add idempotent.
	if n.prefix == word && !repeatingPrefix {
		n.isLeaf = true
		return
	}

	// Case 2: no edge starts with the word's first byte.
	child, ok := n.children[word[0]]
	if !ok {
		n.children[word[0]] = newNode(n.root, word, true)
		return
	}

	matched, remainderPrefix, remainderWord := splitPrefix(child.prefix, word)

	// Case 3: the child's edge is fully consumed by the word.
	if remainderPrefix == "" {
		if remainderWord == "" {
			child.add(matched, false)
			return
		}
		child.add(remainderWord, remainderWord[0] == matched[0])
		return
	}

	// Case 4: the word diverges partway through the child's edge. The child
	// keeps its subtree and leaf flag under the shortened prefix, and a new
	// intermediate node takes over the shared part.
	child.prefix = remainderPrefix
	mid := newNode(n.root, matched, remainderWord == "")
	mid.children[remainderPrefix[0]] = child
	n.children[matched[0]] = mid
	if remainderWord != "" {
		mid.add(remainderWord, false)
	}
}
