// Package seedsource is an external collaborator, not part of the
// SLIP-39 core: it offers a convenience bridge from a recovered master
// secret to a BIP-32 extended key, the way a wallet built on top of this
// library typically wants to consume the output of CombineMnemonics. The
// specification explicitly scopes BIP-39 mnemonic generation and any
// downstream key derivation out of the core as "external collaborators";
// this package exists so that scope boundary has a concrete home rather
// than being silently dropped.
package seedsource

import (
	"errors"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrInvalidWordCount indicates the mnemonic must be 12 or 24 words.
	ErrInvalidWordCount = errors.New("word count must be 12 or 24")

	// ErrInvalidMnemonic indicates the mnemonic is not valid BIP-39.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeMnemonicInput lowercases and collapses whitespace in a
// caller-supplied mnemonic, the same light normalization a transcription
// surface needs regardless of which word scheme produced the phrase.
func NormalizeMnemonicInput(input string) string {
	input = strings.ToLower(input)
	input = whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// GenerateBIP39Mnemonic creates a fresh BIP-39 mnemonic of the requested
// word count (12 or 24), independent of the SLIP-39 splitting machinery:
// a caller who just wants a quick single-phrase backup, rather than a
// multi-share split, can reach for this instead.
func GenerateBIP39Mnemonic(wordCount int) (string, error) {
	var bitSize int
	switch wordCount {
	case 12:
		bitSize = 128
	case 24:
		bitSize = 256
	default:
		return "", ErrInvalidWordCount
	}

	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateBIP39Mnemonic reports whether mnemonic is word-count-valid and
// checksum-valid BIP-39.
func ValidateBIP39Mnemonic(mnemonic string) error {
	normalized := NormalizeMnemonicInput(mnemonic)
	words := strings.Fields(normalized)
	if len(words) != 12 && len(words) != 24 {
		return ErrInvalidMnemonic
	}
	if !bip39.IsMnemonicValid(normalized) {
		return ErrInvalidMnemonic
	}
	return nil
}

// MasterKeyFromSecret derives a BIP-32 master extended key from an
// arbitrary recovered secret (typically the output of
// slip39.CombineMnemonics), treating it as a BIP-39 seed directly. This
// is the bridge a wallet wires SLIP-39 into: the library's job ends at
// producing bytes, this package's job is turning those bytes into a key
// tree.
func MasterKeyFromSecret(secret []byte) (*bip32.Key, error) {
	if len(secret) == 0 {
		return nil, errors.New("seedsource: secret must not be empty")
	}
	return bip32.NewMasterKey(secret)
}

// SeedFromBIP39Mnemonic converts a BIP-39 mnemonic and optional
// passphrase into a 64-byte seed suitable for MasterKeyFromSecret.
func SeedFromBIP39Mnemonic(mnemonic, passphrase string) ([]byte, error) {
	normalized := NormalizeMnemonicInput(mnemonic)
	if !bip39.IsMnemonicValid(normalized) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeedWithErrorChecking(normalized, passphrase)
}

// MaxTypoDistance bounds how far a misspelled BIP-39 word can be from a
// suggestion before the suggestion is considered useless noise.
const MaxTypoDistance = 2

// SuggestBIP39Word finds the closest BIP-39 English word list entry to
// input by Levenshtein distance, or "" if nothing is close enough.
func SuggestBIP39Word(input string) string {
	input = strings.ToLower(input)
	wordList := bip39.GetWordList()

	minDist := MaxTypoDistance + 1
	suggestion := ""
	for _, word := range wordList {
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}
	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}
