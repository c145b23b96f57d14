//go:build !windows

package status

// gpuName is only implemented through WMI.
func gpuName() (string, error) {
	return "", nil
}
