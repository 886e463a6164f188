package gf256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/gf256"
)

func TestAddIsXor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, byte(0x00), gf256.Add(0xAC, 0xAC))
	assert.Equal(t, byte(0xFF), gf256.Add(0x0F, 0xF0))
}

func TestMulIdentityAndZero(t *testing.T) {
	t.Parallel()
	for _, a := range []byte{0, 1, 2, 5, 200, 255} {
		assert.Equal(t, byte(0), gf256.Mul(a, 0), "a=%d", a)
		assert.Equal(t, a, gf256.Mul(a, 1), "a=%d", a)
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	t.Parallel()
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			product := gf256.Mul(byte(a), byte(b))
			quotient, err := gf256.Div(product, byte(b))
			require.NoError(t, err)
			assert.Equal(t, byte(a), quotient)
		}
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()
	for a := 1; a < 256; a++ {
		inv, err := gf256.Inverse(byte(a))
		require.NoError(t, err)
		assert.Equal(t, byte(1), gf256.Mul(byte(a), inv))
	}

	_, err := gf256.Inverse(0)
	assert.ErrorIs(t, err, gf256.ErrZeroInverse)
}

func TestInterpolateReconstructsConstantPolynomial(t *testing.T) {
	t.Parallel()

	// A degree-0 polynomial (constant secret) evaluates to the same value everywhere.
	points := []gf256.Point{{X: 1, Y: 42}, {X: 2, Y: 42}, {X: 3, Y: 42}}
	v, err := gf256.Interpolate(points, 99)
	require.NoError(t, err)
	assert.Equal(t, byte(42), v)
}

func TestInterpolateLinearPolynomial(t *testing.T) {
	t.Parallel()

	// f(x) = secret XOR (5*x); pick secret at x=0, recover it from two other points.
	secret := byte(0x7B)
	coeff := byte(0x05)
	eval := func(x byte) byte { return gf256.Add(secret, gf256.Mul(coeff, x)) }

	points := []gf256.Point{{X: 1, Y: eval(1)}, {X: 2, Y: eval(2)}}
	v, err := gf256.Interpolate(points, 0)
	require.NoError(t, err)
	assert.Equal(t, secret, v)
}

func TestInterpolateRejectsDuplicateX(t *testing.T) {
	t.Parallel()
	_, err := gf256.Interpolate([]gf256.Point{{X: 5, Y: 1}, {X: 5, Y: 2}}, 0)
	assert.ErrorIs(t, err, gf256.ErrDuplicateX)
}

func TestInterpolateRejectsEmpty(t *testing.T) {
	t.Parallel()
	_, err := gf256.Interpolate(nil, 0)
	assert.ErrorIs(t, err, gf256.ErrNoPoints)
}

func TestInterpolateBytesMatchesPerByteInterpolate(t *testing.T) {
	t.Parallel()

	xs := []byte{1, 2, 3}
	ys := [][]byte{
		{10, 20, 30},
		{11, 22, 33},
		{12, 24, 36},
	}

	got, err := gf256.InterpolateBytes(xs, ys, 7)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		points := make([]gf256.Point, len(xs))
		for i := range xs {
			points[i] = gf256.Point{X: xs[i], Y: ys[i][k]}
		}
		want, err := gf256.Interpolate(points, 7)
		require.NoError(t, err)
		assert.Equal(t, want, got[k])
	}
}
