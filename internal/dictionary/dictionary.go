// Package dictionary wraps the radix trie in a service that is safe to share
// between goroutines and that can ingest word lists from disk.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/radix-trie/internal/trie"
)

// Service owns the dictionary trie and serializes access to it. Queries are
// not read-only under the hood (counting results are memoized inside the
// trie), so a single exclusive lock guards mutation and query alike.
type Service struct {
	mu    sync.Mutex
	trie  *trie.Trie
	words int
}

// NewService creates a service with an empty dictionary.
func NewService() *Service {
	return &Service{trie: trie.New()}
}

// Add stores a single word.
func (s *Service) Add(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.Add(word)
	s.words++
}

// AddAll stores every word in order.
func (s *Service) AddAll(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.AddMany(words)
	s.words += len(words)
}

// LoadFile reads a word list with one word per line, skipping blank lines,
// and adds every entry to the dictionary. It returns the number of words
// added.
func (s *Service) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		s.trie.Add(word)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read word list: %w", err)
	}

	s.words += count
	log.Info().Str("path", path).Int("words", count).Msg("Loaded word list")
	return count, nil
}

// IsWord reports whether word is recognized by the dictionary.
func (s *Service) IsWord(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trie.IsWord(word)
}

// IsSentence reports whether text splits into a concatenation of dictionary
// words.
func (s *Service) IsSentence(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trie.IsSentence(text)
}

// PossibleSentences counts the distinct ways text splits into a
// concatenation of dictionary words.
func (s *Service) PossibleSentences(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trie.PossibleSentences(text)
}

// Stats describes the dictionary's current contents.
type Stats struct {
	// WordsAdded counts Add operations, duplicates included.
	WordsAdded int `json:"words_added"`
	// Nodes is the node count of the underlying trie, root included.
	Nodes int `json:"nodes"`
}

// Stats returns the dictionary's current counters.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{WordsAdded: s.words, Nodes: s.trie.Size()}
}
