//go:build !windows

package secure

import "golang.org/x/sys/unix"

// mlock attempts to lock the memory region containing data. Returns true on
// success; failure (e.g. insufficient privilege, or an unsupported
// platform) is not fatal, since locking is defense-in-depth only.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a region previously locked by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
