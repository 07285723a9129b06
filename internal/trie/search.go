package trie

// findKey identifies a memoized search result: the node the search is at,
// the remaining input, and whether boundary wrap is enabled.
type findKey struct {
	n    *node
	word string
	wrap bool
}

// find counts the ways the stored words can exactly consume word.
//
// With wrap enabled, reaching a word boundary partway through the input
// explores two branches: continue down the current edge (if one exists) and
// restart a fresh word from the root. Invoked on the root this yields the
// number of distinct segmentations of word into stored words. With wrap
// disabled it degenerates to membership counting, except that a leaf with no
// continuation edge still restarts at the root; that fallback fires
// regardless of mode and is pinned by a contract test.
//
// Overlapping suffixes recur across the recursion, so results are memoized
// per (node, word, wrap). The memo map is owned by the facade and dropped on
// every mutation.
func (n *node) find(word string, wrap bool, memo map[findKey]int) int {
	if word == "" {
		if n.isLeaf {
			return 1
		}
		return 0
	}

	key := findKey{n, word, wrap}
	if count, ok := memo[key]; ok {
		return count
	}

	child, ok := n.children[word[0]]
	if !ok {
		count := 0
		// End of a stored word with no continuation edge: try to start a
		// new word at this exact boundary. The root never delegates to
		// itself, otherwise a root marked as a word would recurse forever.
		if n.isLeaf && n != n.root {
			count = n.root.find(word, wrap, memo)
		}
		memo[key] = count
		return count
	}

	// Up to two candidate branches per step.
	candidates := []*node{child}
	if n.isLeaf && wrap {
		if alt, exists := n.root.children[word[0]]; exists {
			candidates = append(candidates, alt)
		}
	}

	count := 0
	for _, c := range candidates {
		_, remainderPrefix, remainderWord := splitPrefix(c.prefix, word)
		if remainderPrefix != "" {
			continue
		}
		if remainderWord == "" {
			if c.isLeaf {
				count++
			}
			continue
		}
		count += c.find(remainderWord, wrap, memo)
	}
	memo[key] = count
	return count
}
