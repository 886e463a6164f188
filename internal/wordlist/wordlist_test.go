package wordlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/wordlist"
)

func TestSizeAndUniqueness(t *testing.T) {
	t.Parallel()

	all := wordlist.All()
	require.Len(t, all, wordlist.Size)

	seen := make(map[string]bool, wordlist.Size)
	prefixes := make(map[string]bool, wordlist.Size)
	for _, w := range all {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true

		p := w[:4]
		assert.False(t, prefixes[p], "duplicate 4-letter prefix %q (word %q)", p, w)
		prefixes[p] = true
	}
}

func TestIndexWordBijection(t *testing.T) {
	t.Parallel()

	for i := 0; i < wordlist.Size; i++ {
		w, err := wordlist.Word(i)
		require.NoError(t, err)

		idx, err := wordlist.Index(w)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestIndexIsCaseAndWhitespaceTolerant(t *testing.T) {
	t.Parallel()

	w, err := wordlist.Word(0)
	require.NoError(t, err)

	idx, err := wordlist.Index("  " + strings.ToUpper(w) + "  ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestIndexUnknownWord(t *testing.T) {
	t.Parallel()

	_, err := wordlist.Index("not-a-real-word-at-all")
	assert.ErrorIs(t, err, wordlist.ErrUnknownWord)
}

func TestWordOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := wordlist.Word(-1)
	assert.ErrorIs(t, err, wordlist.ErrIndexOutOfRange)

	_, err = wordlist.Word(wordlist.Size)
	assert.ErrorIs(t, err, wordlist.ErrIndexOutOfRange)
}
