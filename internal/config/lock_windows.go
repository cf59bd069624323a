//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFileExclusive blocks until f is exclusively locked.
func lockFileExclusive(f *os.File) error {
	// LOCKFILE_EXCLUSIVE_LOCK without FAIL_IMMEDIATELY waits for the holder
	ol := new(windows.Overlapped)
	return windows.LockFileEx(
		windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0, // reserved
		1, // lock 1 byte
		0, // high bits of length
		ol,
	)
}

// unlockFile releases the lock taken by lockFileExclusive.
func unlockFile(f *os.File) {
	ol := new(windows.Overlapped)
	windows.UnlockFileEx(
		windows.Handle(f.Fd()),
		0, // reserved
		1, // unlock 1 byte
		0, // high bits of length
		ol,
	)
}
