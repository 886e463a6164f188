// Package gf256 implements arithmetic over the 256-element field used by
// the Shamir engine and its digest, with the Rijndael reducing polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b). Multiplication and division go through
// precomputed log/antilog tables built once from generator 3, matching the
// table-driven approach the specification requires: best-effort speed, no
// constant-time guarantee.
package gf256

import (
	"errors"
	"sync"
)

const primitivePolynomial = 0x11b

// ErrZeroInverse is returned by Inverse(0), which is undefined in a field.
var ErrZeroInverse = errors.New("gf256: inverse of zero is undefined")

// ErrNoPoints is returned by Interpolate with an empty point set.
var ErrNoPoints = errors.New("gf256: interpolate requires at least one point")

// ErrDuplicateX is returned by Interpolate when two points share an x-coordinate.
var ErrDuplicateX = errors.New("gf256: interpolate requires distinct x-coordinates")

var (
	expTable [255]byte
	logTable [256]byte
	initOnce sync.Once
)

func initTables() {
	initOnce.Do(func() {
		var x uint16 = 1
		for i := 0; i < 255; i++ {
			expTable[i] = byte(x)
			logTable[x] = byte(i)

			// Multiply by generator 3 = x + 1: (x << 1) ^ x.
			x = (x << 1) ^ x
			if x >= 256 {
				x ^= primitivePolynomial
			}
		}
	})
}

// Add returns a+b, which in GF(2^n) is the same as subtraction (XOR).
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a-b. Identical to Add in a characteristic-2 field.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a*b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	initTables()
	sum := int(logTable[a]) + int(logTable[b])
	if sum >= 255 {
		sum -= 255
	}
	return expTable[sum]
}

// Inverse returns 1/a. Returns ErrZeroInverse for a == 0.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}
	initTables()
	return expTable[(255-int(logTable[a]))%255], nil
}

// Div returns a/b. Returns ErrZeroInverse for b == 0.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrZeroInverse
	}
	if a == 0 {
		return 0, nil
	}
	initTables()
	diff := int(logTable[a]) - int(logTable[b])
	if diff < 0 {
		diff += 255
	}
	return expTable[diff], nil
}

// Point is one (x, y) knot of a polynomial over GF(2^8).
type Point struct {
	X byte
	Y byte
}

// Interpolate returns p(x) for the unique polynomial of degree < len(points)
// that passes through points, evaluated via Lagrange interpolation. Points
// must have distinct X coordinates and there must be at least one of them.
func Interpolate(points []Point, x byte) (byte, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}

	seen := make(map[byte]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p.X]; ok {
			return 0, ErrDuplicateX
		}
		seen[p.X] = struct{}{}
	}

	initTables()

	var result byte
	for i, pi := range points {
		term := pi.Y
		for j, pj := range points {
			if i == j {
				continue
			}
			num := Sub(x, pj.X)
			den := Sub(pi.X, pj.X)
			factor, err := Div(num, den)
			if err != nil {
				// den is never 0: X values were checked distinct above.
				return 0, err
			}
			term = Mul(term, factor)
		}
		result = Add(result, term)
	}
	return result, nil
}

// InterpolateBytes evaluates len(points[i].Y) independent polynomials (one
// per byte position) at x, given parallel y-vectors of equal length. This is
// the byte-parallel form the Shamir engine uses to interpolate a whole
// share value in one pass instead of one gf256.Interpolate call per byte.
func InterpolateBytes(xs []byte, ys [][]byte, x byte) ([]byte, error) {
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}
	if len(xs) != len(ys) {
		return nil, errors.New("gf256: xs and ys length mismatch")
	}
	n := len(ys[0])
	for _, y := range ys {
		if len(y) != n {
			return nil, errors.New("gf256: inconsistent y-vector lengths")
		}
	}

	seen := make(map[byte]struct{}, len(xs))
	for _, xi := range xs {
		if _, ok := seen[xi]; ok {
			return nil, ErrDuplicateX
		}
		seen[xi] = struct{}{}
	}

	initTables()

	weights := make([]byte, len(xs))
	for i, xi := range xs {
		weight := byte(1)
		for j, xj := range xs {
			if i == j {
				continue
			}
			num := Sub(x, xj)
			den := Sub(xi, xj)
			factor, err := Div(num, den)
			if err != nil {
				return nil, err
			}
			weight = Mul(weight, factor)
		}
		weights[i] = weight
	}

	out := make([]byte, n)
	for k := 0; k < n; k++ {
		var val byte
		for i := range xs {
			val = Add(val, Mul(ys[i][k], weights[i]))
		}
		out[k] = val
	}
	return out, nil
}
