package secure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/secure"
)

func TestNewAllocatesZeroedBuffer(t *testing.T) {
	t.Parallel()

	b := secure.New(32)
	defer b.Destroy()

	require.Len(t, b.Bytes(), 32)
	for _, v := range b.Bytes() {
		assert.Equal(t, byte(0), v)
	}
}

func TestFromSliceCopiesData(t *testing.T) {
	t.Parallel()

	src := []byte{1, 2, 3, 4}
	b := secure.FromSlice(src)
	defer b.Destroy()

	assert.Equal(t, src, b.Bytes())

	// Mutating the wrapper must not mutate the caller's slice.
	b.Bytes()[0] = 0xFF
	assert.Equal(t, byte(1), src[0])
}

func TestDestroyZeroesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	b := secure.FromSlice([]byte{9, 9, 9})
	b.Destroy()
	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Len())

	assert.NotPanics(t, func() { b.Destroy() })
}

func TestZeroOverwritesSlice(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3}
	secure.Zero(data)
	assert.Equal(t, []byte{0, 0, 0}, data)
}
