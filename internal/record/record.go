// Package record implements the share record codec: packing the fixed
// header fields and a share value into a word sequence, and the reverse.
// This is component D of the design — it sits on top of internal/wordlist
// for the word<->symbol bijection and internal/rs1024 for the trailing
// checksum, and knows nothing about Shamir, Feistel, or the two-level
// protocol above it.
package record

import (
	"fmt"

	"github.com/mrz1836/slip39/internal/rs1024"
	"github.com/mrz1836/slip39/internal/wordlist"
	slip39errors "github.com/mrz1836/slip39/pkg/errors"
)

// headerBits is the fixed width, in bits, of every share's header:
// identifier(15) + extendable(1) + iteration exponent(4) + group index(4) +
// (group threshold-1)(4) + (group count-1)(4) + member index(4) +
// (member threshold-1)(4).
const headerBits = 40

// minWords is the fewest words any legal share can have: a header, the
// smallest permitted share value (16 bytes, the minimum master secret
// length), and a checksum, rounded up to a whole number of 10-bit symbols.
const minWords = (headerBits + 8*16 + 30 + 9) / 10

// Record is the decoded content of one share: header metadata plus the
// share value. Field ranges mirror the wire format exactly (GroupThreshold
// and MemberThreshold are stored as their real 1..16 value, not the
// encoded N-1 form).
type Record struct {
	Identifier        uint16 // 0..32767 (15 bits)
	Extendable        bool
	IterationExponent uint8 // 0..15
	GroupIndex        uint8 // 0..15
	GroupThreshold    uint8 // 1..16
	GroupCount        uint8 // 1..16
	MemberIndex       uint8 // 0..15
	MemberThreshold   uint8 // 1..16
	Value             []byte
}

func invalidInput(msg string) *slip39errors.Error {
	return slip39errors.New(slip39errors.InvalidInput, msg)
}

func invalidMnemonic(msg string) *slip39errors.Error {
	return slip39errors.New(slip39errors.InvalidMnemonic, msg)
}

func (r Record) validateRanges() error {
	switch {
	case r.Identifier >= 1<<15:
		return invalidInput("identifier must fit in 15 bits")
	case r.IterationExponent > 15:
		return invalidInput("iteration exponent must be 0..15")
	case r.GroupIndex > 15:
		return invalidInput("group index must be 0..15")
	case r.GroupThreshold < 1 || r.GroupThreshold > 16:
		return invalidInput("group threshold must be 1..16")
	case r.GroupCount < 1 || r.GroupCount > 16:
		return invalidInput("group count must be 1..16")
	case r.GroupThreshold > r.GroupCount:
		return invalidInput("group threshold cannot exceed group count")
	case r.MemberIndex > 15:
		return invalidInput("member index must be 0..15")
	case r.MemberThreshold < 1 || r.MemberThreshold > 16:
		return invalidInput("member threshold must be 1..16")
	case len(r.Value) == 0:
		return invalidInput("share value must not be empty")
	}
	return nil
}

// Encode renders r as a sequence of lowercase words.
//
// The payload (header + value) is zero-padded up to the next 10-bit symbol
// boundary. Padding must come out under 8 bits per the wire format; share
// values whose byte length is congruent to 4 mod 5 (e.g. 24 bytes, a
// 192-bit master secret) push padding to exactly 8 bits and cannot be
// represented, so Encode rejects them with InvalidInput rather than
// silently emitting a non-conformant record. See DESIGN.md for why 192-bit
// master secrets are out of scope for the wire format even though the
// Feistel and Shamir layers underneath handle any even byte length.
func (r Record) Encode() ([]string, error) {
	if err := r.validateRanges(); err != nil {
		return nil, err
	}

	w := &bitWriter{}
	w.writeBits(uint32(r.Identifier), 15)
	if r.Extendable {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
	w.writeBits(uint32(r.IterationExponent), 4)
	w.writeBits(uint32(r.GroupIndex), 4)
	w.writeBits(uint32(r.GroupThreshold-1), 4)
	w.writeBits(uint32(r.GroupCount-1), 4)
	w.writeBits(uint32(r.MemberIndex), 4)
	w.writeBits(uint32(r.MemberThreshold-1), 4)
	w.writeBytes(r.Value)

	pad := w.padToSymbolBoundary()
	if pad >= 8 {
		return nil, invalidInput(fmt.Sprintf(
			"share value length %d bytes cannot be packed with fewer than 8 padding bits (got %d)",
			len(r.Value), pad))
	}

	payload := w.symbols()
	checksum := rs1024.Create(payload, r.Extendable)

	allSymbols := make([]int, 0, len(payload)+rs1024.ChecksumLength)
	allSymbols = append(allSymbols, payload...)
	allSymbols = append(allSymbols, checksum[:]...)

	words := make([]string, len(allSymbols))
	for i, sym := range allSymbols {
		word, err := wordlist.Word(sym)
		if err != nil {
			// Unreachable: symbols are always 0..1023 by construction.
			return nil, err
		}
		words[i] = word
	}
	return words, nil
}

// Decode parses a word sequence back into a Record. It validates the
// checksum before unpacking any field, and the padding before trusting any
// header value, per the decode path in the design: verify, then parse.
func Decode(words []string) (Record, error) {
	if len(words) < minWords {
		return Record{}, invalidMnemonic(fmt.Sprintf("share has %d words, need at least %d", len(words), minWords))
	}

	symbols := make([]int, len(words))
	for i, word := range words {
		idx, err := wordlist.Index(word)
		if err != nil {
			return Record{}, slip39errors.Wrap(slip39errors.InvalidMnemonic,
				fmt.Sprintf("word %d (%q) is not in the word list", i+1, word), err)
		}
		symbols[i] = idx
	}

	if len(symbols) < rs1024.ChecksumLength {
		return Record{}, invalidMnemonic("share is too short to contain a checksum")
	}
	payload := symbols[:len(symbols)-rs1024.ChecksumLength]

	// Extendable is a single header bit; we don't know it yet, so try both
	// customization strings. Exactly one should verify for a genuine
	// share; if neither does, the checksum is invalid.
	var extendable bool
	switch {
	case rs1024.Verify(symbols, false):
		extendable = false
	case rs1024.Verify(symbols, true):
		extendable = true
	default:
		return Record{}, slip39errors.New(slip39errors.InvalidChecksum, "RS1024 checksum verification failed")
	}

	r := &bitReader{}
	*r = *newBitReader(payload)

	if r.remaining() < headerBits {
		return Record{}, invalidMnemonic("share payload shorter than the fixed header")
	}

	identifier := uint16(r.readBits(15))
	extBit := r.readBits(1)
	if (extBit == 1) != extendable {
		return Record{}, invalidMnemonic("extendable bit does not match the checksum that verified")
	}
	iterationExponent := uint8(r.readBits(4))
	groupIndex := uint8(r.readBits(4))
	groupThreshold := uint8(r.readBits(4)) + 1
	groupCount := uint8(r.readBits(4)) + 1
	memberIndex := uint8(r.readBits(4))
	memberThreshold := uint8(r.readBits(4)) + 1

	if groupThreshold > groupCount {
		return Record{}, invalidMnemonic("group threshold exceeds group count")
	}

	remaining := r.remaining()
	padBits := remaining % 8
	valueBits := remaining - padBits
	if valueBits <= 0 {
		return Record{}, invalidMnemonic("share has no payload after the header")
	}

	value := r.readBytes(valueBits / 8)
	if padBits > 0 {
		padding := r.readBits(padBits)
		if padding != 0 {
			return Record{}, slip39errors.New(slip39errors.InvalidPadding, "nonzero padding bits")
		}
	}
	if padBits >= 8 {
		// Unreachable given padBits = remaining % 8, kept as a contract check.
		return Record{}, slip39errors.New(slip39errors.InvalidPadding, "padding must be shorter than 8 bits")
	}

	rec := Record{
		Identifier:        identifier,
		Extendable:        extendable,
		IterationExponent: iterationExponent,
		GroupIndex:        groupIndex,
		GroupThreshold:    groupThreshold,
		GroupCount:        groupCount,
		MemberIndex:       memberIndex,
		MemberThreshold:   memberThreshold,
		Value:             value,
	}
	if err := rec.validateRanges(); err != nil {
		return Record{}, err
	}
	return rec, nil
}
