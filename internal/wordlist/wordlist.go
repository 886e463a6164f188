// Package wordlist implements the bijection between 10-bit word indices
// (0..1023) and the fixed 1024-word table, including the shared
// "uppercase or lowercase, surrounding whitespace tolerated" normalisation
// convention used throughout share decoding.
//
// words_gen.go holds the data. Its invariants — exactly 1024 entries, all
// unique, all distinct in their first four letters, sorted — are checked
// once, the first time Index is called: a broken table panics there rather
// than producing silently wrong shares later.
package wordlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownWord is returned by Index for a word not present in the table.
var ErrUnknownWord = errors.New("wordlist: unknown word")

// ErrIndexOutOfRange is returned by Word for an index outside 0..1023.
var ErrIndexOutOfRange = errors.New("wordlist: index out of range")

// Size is the fixed number of entries in the table, and the number of
// distinct values a single 10-bit share symbol can take.
const Size = 1024

var (
	indexOnce sync.Once
	byWord    map[string]int
)

func buildIndex() {
	indexOnce.Do(func() {
		validate()
		byWord = make(map[string]int, Size)
		for i, w := range words {
			byWord[w] = i
		}
	})
}

// validate panics if the compiled-in table violates one of its invariants.
// It runs once, lazily, the first time the table is used.
func validate() {
	if len(words) != Size {
		panic(fmt.Sprintf("wordlist: table has %d entries, want %d", len(words), Size))
	}

	seen := make(map[string]struct{}, Size)
	prefixes := make(map[string]string, Size)
	for _, w := range words {
		if _, dup := seen[w]; dup {
			panic("wordlist: duplicate word " + w)
		}
		seen[w] = struct{}{}

		if len(w) < 4 {
			panic("wordlist: word shorter than four letters: " + w)
		}
		prefix := w[:4]
		if other, dup := prefixes[prefix]; dup {
			panic(fmt.Sprintf("wordlist: words %q and %q share the prefix %q", other, w, prefix))
		}
		prefixes[prefix] = w
	}

	if !sort.StringsAreSorted(words[:]) {
		panic("wordlist: table is not sorted")
	}
}

// normalize lowercases and trims surrounding whitespace, per the lookup
// contract ("case-insensitive, with surrounding-whitespace tolerance").
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Index returns the 0..1023 position of word in the table.
func Index(word string) (int, error) {
	buildIndex()

	w := normalize(word)
	if idx, ok := byWord[w]; ok {
		return idx, nil
	}

	// Fallback binary search, in case the map was bypassed (kept mainly
	// to document that the table's sortedness is load-bearing, not just
	// a cosmetic property).
	i := sort.SearchStrings(words[:], w)
	if i < Size && words[i] == w {
		return i, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
}

// Word returns the word at the given 0..1023 index.
func Word(index int) (string, error) {
	if index < 0 || index >= Size {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return words[index], nil
}

// All returns a copy of the full, sorted word table.
func All() []string {
	out := make([]string, Size)
	copy(out, words[:])
	return out
}
