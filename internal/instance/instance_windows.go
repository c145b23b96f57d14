//go:build windows

package instance

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

type mutexHandle windows.Handle

func (h mutexHandle) release() error {
	return windows.CloseHandle(windows.Handle(h))
}

// acquire creates (or opens) a named kernel mutex. CreateMutex hands back a
// valid handle together with ERROR_ALREADY_EXISTS when another process
// created it first.
func acquire(name string) (handle, error) {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid lock name %q: %w", name, err)
	}

	h, err := windows.CreateMutex(nil, false, namep)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if h != 0 {
			_ = windows.CloseHandle(h)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("create mutex %q: %w", name, err)
	}

	return mutexHandle(h), nil
}
