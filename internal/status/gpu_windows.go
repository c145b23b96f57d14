//go:build windows

package status

import (
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32VideoController struct {
	Name string
}

// gpuName returns the names of all display adapters, comma separated.
func gpuName() (string, error) {
	var dst []win32VideoController
	if err := wmi.Query("SELECT Name FROM Win32_VideoController", &dst); err != nil {
		return "", err
	}

	names := make([]string, 0, len(dst))
	for _, c := range dst {
		if n := strings.TrimSpace(c.Name); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", "), nil
}
