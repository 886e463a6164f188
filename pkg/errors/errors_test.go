package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slip39errors "github.com/mrz1836/slip39/pkg/errors"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := slip39errors.New(slip39errors.InvalidDigest, "digest mismatch")
	assert.Equal(t, "digest mismatch", err.Error())

	err = err.WithDetail("group_index", "2")
	assert.Equal(t, "digest mismatch (group_index: 2)", err.Error())

	wrapped := slip39errors.Wrap(slip39errors.InvalidChecksum, "checksum failed", errors.New("boom"))
	assert.Equal(t, "checksum failed: boom", wrapped.Error())
	assert.Equal(t, "boom", wrapped.Unwrap().Error())
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	a := slip39errors.New(slip39errors.InsufficientShares, "not enough")
	b := slip39errors.New(slip39errors.InsufficientShares, "different message")
	c := slip39errors.New(slip39errors.InvalidDigest, "other kind")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
	assert.True(t, slip39errors.Has(a, slip39errors.InsufficientShares))
	assert.False(t, slip39errors.Has(a, slip39errors.InvalidDigest))
}

func TestError_DetailsAreSortedInMessage(t *testing.T) {
	t.Parallel()

	err := slip39errors.New(slip39errors.InconsistentShares, "mismatch").
		WithDetail("zeta", "1").
		WithDetail("alpha", "2")

	require.Equal(t, "mismatch (alpha: 2) (zeta: 1)", err.Error())
}
