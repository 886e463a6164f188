// Package secure provides scoped, best-effort-locked memory for the secret
// material that flows through the core: the master secret, the encrypted
// master secret, and the per-round Feistel halves. None of this is a
// correctness requirement — the specification is explicit that memory
// wiping is defense-in-depth, not a guarantee — but it costs little and
// matches how the teacher codebase already handles wallet seed material.
package secure

import (
	"runtime"
	"sync"
)

// Bytes wraps a sensitive byte slice, best-effort mlocked, and zeroed on
// Destroy (and, as a backstop, on garbage collection if Destroy was never
// called).
type Bytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a zeroed Bytes of the given size.
func New(size int) *Bytes {
	data := make([]byte, size)
	b := &Bytes{data: data, locked: mlock(data)}
	runtime.SetFinalizer(b, func(s *Bytes) { s.Destroy() })
	return b
}

// FromSlice copies data into a new, securely-held buffer. It does not zero
// the caller's slice; the caller still owns that copy.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice. Returns nil once Destroy has run.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the length of the held data, or 0 once destroyed.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Destroy zeroes and unlocks the memory. Safe to call more than once.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// Zero overwrites a plain byte slice in place. Used on exit paths (success
// and error alike) for buffers that never needed the full Bytes wrapper,
// such as short-lived PBKDF2 outputs inside the Feistel cipher.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
