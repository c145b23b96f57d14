// Package instance guards against more than one cleaner process running at
// the same time.
package instance

import "errors"

// DefaultName is the process-wide lock name used by the pcc binary.
const DefaultName = "PCCleanerSingletonMutex"

// ErrAlreadyRunning is returned by Acquire when another process holds the lock.
var ErrAlreadyRunning = errors.New("another instance of PC Cleaner is already running")

// Lock is a held single-instance lock. The operating system releases it when
// the process exits, so Release is only needed for early hand-back.
type Lock struct {
	name string
	h    handle
}

// Name returns the lock name.
func (l *Lock) Name() string {
	return l.name
}

// Acquire takes the named process-wide lock, returning ErrAlreadyRunning if
// it is held elsewhere.
func Acquire(name string) (*Lock, error) {
	h, err := acquire(name)
	if err != nil {
		return nil, err
	}
	return &Lock{name: name, h: h}, nil
}

// Release gives the lock back. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.h == nil {
		return nil
	}
	err := l.h.release()
	l.h = nil
	return err
}

// handle is the platform lock primitive.
type handle interface {
	release() error
}
