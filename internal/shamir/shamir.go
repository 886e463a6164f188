// Package shamir implements the byte-parallel Shamir secret sharing scheme
// used at both levels of the SLIP-39 protocol (once for the outer,
// group-threshold split, and once per group for the inner, member-threshold
// split). It builds on internal/gf256 for the underlying field arithmetic
// and adds the two reserved abscissae and HMAC digest tag that distinguish
// this scheme from textbook Shamir sharing.
package shamir

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/mrz1836/slip39/internal/entropy"
	"github.com/mrz1836/slip39/internal/gf256"
	slip39errors "github.com/mrz1836/slip39/pkg/errors"
)

// Reserved abscissae. Regular shares occupy x = 0..N-1; these two values
// are never handed out as a share index.
const (
	SecretX = 255 // carries the secret itself
	DigestX = 254 // carries the digest tag
)

// DigestLength is the size, in bytes, of the HMAC-SHA256 digest prefix
// stored at DigestX ahead of the random padding R.
const DigestLength = 4

// Share is one (x, y) point of the split polynomial.
type Share struct {
	X byte
	Y []byte
}

func invalidInput(msg string) error {
	return slip39errors.New(slip39errors.InvalidInput, msg)
}

// digest computes the 4-byte digest tag HMAC-SHA256(key=r, msg=secret)[:4].
func digest(r, secret []byte) []byte {
	mac := hmac.New(sha256.New, r)
	mac.Write(secret)
	return mac.Sum(nil)[:DigestLength]
}

// Split divides secret into count shares such that any threshold of them
// reconstruct it and any threshold-1 reveal nothing. 1 <= threshold <=
// count <= 16. src supplies the random coefficients, the x=254 padding R,
// and (for a literal 1-of-1 degenerate split) nothing at all.
func Split(src entropy.Source, secret []byte, threshold, count int) ([]Share, error) {
	switch {
	case len(secret) == 0:
		return nil, invalidInput("secret must not be empty")
	case threshold < 1 || threshold > 16:
		return nil, invalidInput("threshold must be 1..16")
	case count < 1 || count > 16:
		return nil, invalidInput("count must be 1..16")
	case threshold > count:
		return nil, invalidInput("threshold cannot exceed count")
	}

	if threshold == 1 {
		shares := make([]Share, count)
		for i := 0; i < count; i++ {
			y := make([]byte, len(secret))
			copy(y, secret)
			shares[i] = Share{X: byte(i), Y: y}
		}
		return shares, nil
	}

	n := len(secret)

	r, err := entropy.Bytes(src, n-DigestLength)
	if err != nil {
		return nil, fmt.Errorf("shamir: drawing digest padding: %w", err)
	}
	digestPoint := append(append([]byte{}, digest(r, secret)...), r...)

	// Fix the two hidden points (secret at x=255, digest tag at x=254),
	// then draw threshold-2 further random points at x=0..threshold-3.
	// The polynomial of degree threshold-1 is now fully pinned; every
	// other share is recovered by interpolating at its own x.
	hiddenXs := []byte{SecretX, DigestX}
	hiddenYs := [][]byte{secret, digestPoint}

	randomXs := make([]byte, threshold-2)
	randomYs := make([][]byte, threshold-2)
	for i := 0; i < threshold-2; i++ {
		randomXs[i] = byte(i)
		y, err := entropy.Bytes(src, n)
		if err != nil {
			return nil, fmt.Errorf("shamir: drawing random coefficient point: %w", err)
		}
		randomYs[i] = y
	}

	knotXs := append(append([]byte{}, hiddenXs...), randomXs...)
	knotYs := append(append([][]byte{}, hiddenYs...), randomYs...)

	// Evaluating the pinned polynomial at x = 0..count-1 also reproduces
	// the threshold-2 random knots themselves at their own x, by the
	// defining property of Lagrange interpolation, so no special case is
	// needed for those indices.
	shares := make([]Share, count)
	for x := 0; x < count; x++ {
		xb := byte(x)
		y, err := gf256.InterpolateBytes(knotXs, knotYs, xb)
		if err != nil {
			return nil, fmt.Errorf("shamir: interpolating share %d: %w", x, err)
		}
		shares[x] = Share{X: xb, Y: y}
	}
	return shares, nil
}

// Combine reconstructs the original secret from at least threshold shares.
// threshold is implied by how many distinct-x shares are supplied: the
// two-level protocol is responsible for enforcing the real member/group
// threshold before calling Combine (see §3 invariants 3 and 4), so Combine
// itself only insists on at least one share and internally consistent
// value lengths.
func Combine(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, invalidInput("at least one share is required")
	}

	n := len(shares[0].Y)
	xs := make([]byte, len(shares))
	ys := make([][]byte, len(shares))
	seen := make(map[byte]bool, len(shares))
	for i, s := range shares {
		if len(s.Y) != n {
			return nil, invalidInput("shares have mismatched value lengths")
		}
		if seen[s.X] {
			return nil, invalidInput("duplicate share index")
		}
		seen[s.X] = true
		xs[i] = s.X
		ys[i] = s.Y
	}

	if len(shares) == 1 {
		out := make([]byte, n)
		copy(out, shares[0].Y)
		return out, nil
	}

	secret, err := gf256.InterpolateBytes(xs, ys, SecretX)
	if err != nil {
		return nil, fmt.Errorf("shamir: reconstructing secret: %w", err)
	}

	digestPoint, err := gf256.InterpolateBytes(xs, ys, DigestX)
	if err != nil {
		return nil, fmt.Errorf("shamir: reconstructing digest point: %w", err)
	}
	if len(digestPoint) < DigestLength {
		return nil, slip39errors.New(slip39errors.InvalidDigest, "reconstructed digest point too short")
	}
	wantDigest := digestPoint[:DigestLength]
	r := digestPoint[DigestLength:]

	gotDigest := digest(r, secret)
	if !hmac.Equal(wantDigest, gotDigest) {
		return nil, slip39errors.New(slip39errors.InvalidDigest, "digest mismatch: share set is corrupt or forged")
	}

	return secret, nil
}
