// Package trie implements an edge-compressed prefix tree (radix trie) over a
// set of words. Besides exact membership it supports sentence queries: given
// a string, count in how many distinct ways it decomposes into a
// concatenation of stored words.
//
// The trie only grows; there is no deletion. Comparison is byte-wise with no
// case or Unicode normalization. The type is not safe for concurrent use:
// Add restructures nodes in place and queries write to an internal memo
// cache, so callers must serialize access externally.
package trie

// Trie owns the root of a radix trie and exposes the dictionary operations
// over it.
type Trie struct {
	root *node

	// memo caches counting-search results between mutations. Cached counts
	// go stale as soon as the tree changes, so Add drops the whole map.
	memo map[findKey]int
}

// New creates an empty trie containing only the root node.
func New() *Trie {
	return &Trie{root: newNode(nil, "", false)}
}

// Add inserts word into the trie. Adding a word that is already stored is a
// no-op. Adding the empty string marks the root itself as a word, so
// IsWord("") reports true afterwards.
func (t *Trie) Add(word string) {
	t.root.add(word, false)
	t.memo = nil
}

// AddMany inserts each word in order, equivalent to sequential Add calls.
func (t *Trie) AddMany(words []string) {
	for _, word := range words {
		t.Add(word)
	}
}

// IsWord reports whether word is recognized by the trie. A query that is not
// stored itself but decomposes into several stored words can still match
// through the boundary fallback in the search; the package tests pin that
// contract.
func (t *Trie) IsWord(word string) bool {
	return t.count(word, false) > 0
}

// IsSentence reports whether text splits into a concatenation of stored
// words.
func (t *Trie) IsSentence(text string) bool {
	return t.count(text, true) > 0
}

// PossibleSentences returns the number of distinct ways text splits into a
// concatenation of stored words.
func (t *Trie) PossibleSentences(text string) int {
	return t.count(text, true)
}

func (t *Trie) count(word string, wrap bool) int {
	if t.memo == nil {
		t.memo = make(map[findKey]int)
	}
	return t.root.find(word, wrap, t.memo)
}

// Size returns the total number of nodes in the trie, root included.
func (t *Trie) Size() int {
	return countNodes(t.root)
}

func countNodes(n *node) int {
	count := 1
	for _, child := range n.children {
		count += countNodes(child)
	}
	return count
}
