package feistel_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/feistel"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	secret := randomBytes(t, 16)
	params := feistel.Params{Identifier: 0x1234, IterationExponent: 0, Extendable: false}

	enc, err := feistel.Encrypt(secret, "TREZOR", params)
	require.NoError(t, err)
	assert.Len(t, enc, len(secret))
	assert.NotEqual(t, secret, enc)

	dec, err := feistel.Decrypt(enc, "TREZOR", params)
	require.NoError(t, err)
	assert.Equal(t, secret, dec)
}

func TestEncryptDecryptRoundTripExtendable(t *testing.T) {
	t.Parallel()

	secret := randomBytes(t, 32)
	params := feistel.Params{Identifier: 0, IterationExponent: 1, Extendable: true}

	enc, err := feistel.Encrypt(secret, "", params)
	require.NoError(t, err)

	dec, err := feistel.Decrypt(enc, "", params)
	require.NoError(t, err)
	assert.Equal(t, secret, dec)
}

func TestWrongPassphraseYieldsDifferentSecretWithoutError(t *testing.T) {
	t.Parallel()

	secret := randomBytes(t, 16)
	params := feistel.Params{Identifier: 42, IterationExponent: 0, Extendable: false}

	enc, err := feistel.Encrypt(secret, "correct horse", params)
	require.NoError(t, err)

	dec, err := feistel.Decrypt(enc, "wrong horse", params)
	require.NoError(t, err)
	assert.NotEqual(t, secret, dec)
}

func TestDifferentIdentifierYieldsDifferentCiphertext(t *testing.T) {
	t.Parallel()

	secret := randomBytes(t, 16)
	a, err := feistel.Encrypt(secret, "x", feistel.Params{Identifier: 1, IterationExponent: 0})
	require.NoError(t, err)
	b, err := feistel.Encrypt(secret, "x", feistel.Params{Identifier: 2, IterationExponent: 0})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEncryptRejectsOddLength(t *testing.T) {
	t.Parallel()

	_, err := feistel.Encrypt(randomBytes(t, 15), "", feistel.Params{})
	require.Error(t, err)
}

func TestEncryptRejectsNonPrintablePassphrase(t *testing.T) {
	t.Parallel()

	_, err := feistel.Encrypt(randomBytes(t, 16), "bad\x01byte", feistel.Params{})
	require.Error(t, err)
}

func TestEncryptRejectsOutOfRangeIterationExponent(t *testing.T) {
	t.Parallel()

	_, err := feistel.Encrypt(randomBytes(t, 16), "", feistel.Params{IterationExponent: 16})
	require.Error(t, err)
}

func TestEncryptRejectsOversizedIdentifier(t *testing.T) {
	t.Parallel()

	_, err := feistel.Encrypt(randomBytes(t, 16), "", feistel.Params{Identifier: 1 << 15})
	require.Error(t, err)
}
