package rs1024_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/slip39/internal/rs1024"
)

func codeword(payload []int, extendable bool) []int {
	checksum := rs1024.Create(payload, extendable)
	out := make([]int, 0, len(payload)+rs1024.ChecksumLength)
	out = append(out, payload...)
	out = append(out, checksum[:]...)
	return out
}

func TestCreateThenVerify(t *testing.T) {
	t.Parallel()

	for _, extendable := range []bool{false, true} {
		payload := []int{1, 2, 3, 4, 5, 1000, 0, 42}
		cw := codeword(payload, extendable)
		assert.True(t, rs1024.Verify(cw, extendable), "extendable=%v", extendable)
	}
}

func TestVerifyRejectsWrongCustomizationString(t *testing.T) {
	t.Parallel()

	payload := []int{7, 8, 9}
	cw := codeword(payload, false)
	assert.False(t, rs1024.Verify(cw, true))
}

func TestVerifyDetectsSingleSymbolCorruption(t *testing.T) {
	t.Parallel()

	payload := make([]int, 20)
	for i := range payload {
		payload[i] = (i*37 + 5) % 1024
	}
	cw := codeword(payload, false)

	for pos := range cw {
		for delta := 1; delta < 1024; delta++ {
			corrupted := append([]int(nil), cw...)
			corrupted[pos] = (corrupted[pos] + delta) % 1024
			if corrupted[pos] == cw[pos] {
				continue
			}
			assert.False(t, rs1024.Verify(corrupted, false),
				"position %d delta %d should have been detected", pos, delta)
		}
	}
}

func TestVerifyDetectsThreeSymbolCorruption(t *testing.T) {
	t.Parallel()

	payload := make([]int, 20)
	for i := range payload {
		payload[i] = (i*53 + 11) % 1024
	}
	cw := codeword(payload, false)

	// Sample a handful of triple-perturbations; guaranteed detection for
	// up to 3 errors is the contract.
	trials := [][3]int{{0, 1, 2}, {3, 5, 7}, {0, 10, 19}, {2, 4, 6}}
	for _, positions := range trials {
		corrupted := append([]int(nil), cw...)
		for _, p := range positions {
			corrupted[p] = (corrupted[p] + 1) % 1024
		}
		assert.False(t, rs1024.Verify(corrupted, false), "positions %v should have been detected", positions)
	}
}
