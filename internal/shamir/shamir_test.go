package shamir_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/entropy"
	"github.com/mrz1836/slip39/internal/shamir"
	slip39errors "github.com/mrz1836/slip39/pkg/errors"
)

func randomSecret(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestSplitCombineRoundTripExactThreshold(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 32)
	shares, err := shamir.Split(entropy.Default, secret, 3, 5)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	got, err := shamir.Combine(shares[:3])
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSplitCombineRoundTripAnySubsetOfThreshold(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)
	shares, err := shamir.Split(entropy.Default, secret, 2, 4)
	require.NoError(t, err)

	subsets := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, idx := range subsets {
		subset := []shamir.Share{shares[idx[0]], shares[idx[1]]}
		got, err := shamir.Combine(subset)
		require.NoError(t, err)
		assert.Equal(t, secret, got, "subset %v", idx)
	}
}

func TestThresholdOneProducesIdenticalCopies(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)
	shares, err := shamir.Split(entropy.Default, secret, 1, 3)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	for _, s := range shares {
		assert.Equal(t, secret, s.Y)
	}

	got, err := shamir.Combine(shares[1:2])
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestOneOfOneDegenerate(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)
	shares, err := shamir.Split(entropy.Default, secret, 1, 1)
	require.NoError(t, err)
	require.Len(t, shares, 1)

	got, err := shamir.Combine(shares)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestCombineDetectsCorruptedShareViaDigest(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)
	shares, err := shamir.Split(entropy.Default, secret, 2, 3)
	require.NoError(t, err)

	corrupt := append([]shamir.Share{}, shares[0], shares[1])
	corrupt[0].Y = append([]byte{}, corrupt[0].Y...)
	corrupt[0].Y[0] ^= 0x01

	_, err = shamir.Combine(corrupt)
	require.Error(t, err)
	assert.True(t, slip39errors.Has(err, slip39errors.InvalidDigest))
}

func TestSplitRejectsBadThresholds(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)

	_, err := shamir.Split(entropy.Default, secret, 0, 3)
	assert.True(t, slip39errors.Has(err, slip39errors.InvalidInput))

	_, err = shamir.Split(entropy.Default, secret, 4, 3)
	assert.True(t, slip39errors.Has(err, slip39errors.InvalidInput))

	_, err = shamir.Split(entropy.Default, nil, 1, 1)
	assert.True(t, slip39errors.Has(err, slip39errors.InvalidInput))
}

func TestCombineRejectsDuplicateIndices(t *testing.T) {
	t.Parallel()

	secret := randomSecret(t, 16)
	shares, err := shamir.Split(entropy.Default, secret, 2, 3)
	require.NoError(t, err)

	_, err = shamir.Combine([]shamir.Share{shares[0], shares[0]})
	assert.True(t, slip39errors.Has(err, slip39errors.InvalidInput))
}
