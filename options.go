package slip39

import (
	"github.com/mrz1836/slip39/internal/entropy"
	"github.com/mrz1836/slip39/internal/telemetry"
)

// Options controls the parameters of a split that are not themselves
// secret material: KDF work factor, extendability, and the random
// source. Every share produced by one GenerateMnemonics call carries the
// same IterationExponent and Extendable value (§3 invariant 1).
type Options struct {
	// IterationExponent scales the Feistel cipher's PBKDF2 work as
	// 2500*2^e. Must be 0..15. Defaults to 0.
	IterationExponent int

	// Extendable selects the checksum and Feistel customisation strings
	// used for this split, so an extendable scheme can later grow new
	// shares without colliding with a non-extendable one.
	Extendable bool

	// Source supplies the identifier, Shamir random coefficients, and
	// digest padding. Defaults to entropy.Default (crypto/rand).
	Source entropy.Source

	// Logger receives non-secret diagnostic events: one debug event per
	// split carrying the group threshold, group count, iteration exponent,
	// and extendable flag. Defaults to a discarding logger.
	Logger *telemetry.Logger
}

// Option mutates an Options value being built up by GenerateMnemonics.
type Option func(*Options)

// WithIterationExponent sets the KDF work-factor exponent (0..15).
func WithIterationExponent(e int) Option {
	return func(o *Options) { o.IterationExponent = e }
}

// WithExtendable marks the split as extendable.
func WithExtendable(extendable bool) Option {
	return func(o *Options) { o.Extendable = extendable }
}

// WithSource overrides the random source, primarily for deterministic
// tests.
func WithSource(src entropy.Source) Option {
	return func(o *Options) { o.Source = src }
}

// WithLogger attaches a telemetry logger for non-secret diagnostics.
func WithLogger(l *telemetry.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		IterationExponent: 0,
		Extendable:        false,
		Source:            entropy.Default,
		Logger:            telemetry.Discard(),
	}
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
