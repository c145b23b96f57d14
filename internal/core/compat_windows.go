//go:build windows

package core

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// OSVersion is the NT kernel version of the running system.
type OSVersion struct {
	Major, Minor, Build uint32
}

// CurrentOSVersion reads the version through RtlGetNtVersionNumbers, which
// is not subject to manifest-based version lying.
func CurrentOSVersion() OSVersion {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	// The high bits of build flag checked/free builds.
	return OSVersion{Major: major, Minor: minor, Build: build & 0xFFFF}
}

// Name returns the marketing name of the release.
func (v OSVersion) Name() string {
	switch {
	case v.Major == 10 && v.Build >= 22000:
		return "Windows 11"
	case v.Major == 10:
		return "Windows 10"
	case v.Major == 6 && v.Minor == 3:
		return "Windows 8.1"
	case v.Major == 6 && v.Minor == 2:
		return "Windows 8"
	case v.Major == 6 && v.Minor == 1:
		return "Windows 7"
	}
	return fmt.Sprintf("Windows %d.%d", v.Major, v.Minor)
}

func (v OSVersion) String() string {
	return fmt.Sprintf("%s (Build %d)", v.Name(), v.Build)
}

// OSVersionString describes the running OS, e.g. "Windows 11 (Build 22631)".
func OSVersionString() string {
	return CurrentOSVersion().String()
}

// IsElevated reports whether the process token is elevated. Admin-only
// cleanup targets are refused otherwise.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
