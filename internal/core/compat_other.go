//go:build !windows

package core

import (
	"os"
	"runtime"
)

// OSVersionString names the host platform. Cache targets only exist on
// Windows, so other platforms get the bare GOOS/GOARCH pair.
func OSVersionString() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}
