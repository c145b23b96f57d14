//go:build !windows

package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type flockHandle struct {
	f *os.File
}

func (h flockHandle) release() error {
	_ = unix.Flock(int(h.f.Fd()), unix.LOCK_UN)
	return h.f.Close()
}

// acquire takes an exclusive flock on a lock file in the temp directory.
// The kernel drops the lock with the last descriptor, including on crash.
func acquire(name string) (handle, error) {
	path := filepath.Join(os.TempDir(), name+".lock")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	return flockHandle{f: f}, nil
}
