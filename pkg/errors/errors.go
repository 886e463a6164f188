// Package errors provides the structured error taxonomy shared across the
// slip39 core. Every failure the core detects itself is returned as one
// *Error, tagged with a Kind a caller can switch on. An error from the
// injected random source, and an error from the seedsource bridge behind
// the BIP-32 helpers, is returned as that collaborator's own error.
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Kind is a machine-readable error category. See the package doc for the
// full taxonomy; each Kind maps to one failure mode in the specification.
type Kind string

// Error kinds. Exactly one of these tags every error the core detects.
const (
	// InvalidInput marks an argument outside its documented range: bad
	// threshold arithmetic, a non-printable passphrase, an odd-length or
	// too-short master secret, an iteration exponent out of range, or a
	// share-value length the wire format cannot pad correctly.
	InvalidInput Kind = "invalid_input"

	// InvalidMnemonic marks a malformed word sequence: an unknown word,
	// the wrong word count, or a malformed header field.
	InvalidMnemonic Kind = "invalid_mnemonic"

	// InvalidChecksum marks an RS1024 verification failure.
	InvalidChecksum Kind = "invalid_checksum"

	// InvalidPadding marks nonzero or over-long (>=8 bit) padding found
	// while unpacking a share record.
	InvalidPadding Kind = "invalid_padding"

	// InconsistentShares marks a set of shares that disagree on
	// identifier, iteration exponent, extendable flag, group
	// threshold/count, or a group's member threshold, or that violate
	// the member-threshold-of-one-implies-one-member rule.
	InconsistentShares Kind = "inconsistent_shares"

	// InsufficientShares marks too few members in a required group, or
	// too few distinct groups.
	InsufficientShares Kind = "insufficient_shares"

	// InvalidDigest marks a post-interpolation HMAC digest mismatch,
	// indicating a corrupt or forged share.
	InvalidDigest Kind = "invalid_digest"
)

// Error is the structured error type returned by every public entry point.
type Error struct {
	Kind    Kind              // Machine-readable category
	Message string            // Human-readable message
	Details map[string]string // Additional context, rendered sorted by key
	Cause   error              // Underlying error, if any
}

// New creates an *Error of the given kind with no cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an *Error of the given kind that wraps cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithDetail returns a copy of e with the given key/value attached.
func (e *Error) WithDetail(key, value string) *Error {
	cp := *e
	cp.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is by comparing Kind, so errors.Is(err, errors.New(InvalidDigest, "")) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Has reports whether err is, or wraps, an *Error of the given kind.
func Has(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
