// Package status collects a one-shot snapshot of the machine and of every
// cleanup target for the status command.
package status

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
	"github.com/lakshaymaurya-felt/pccleaner/internal/core"
)

// HostInfo describes the machine.
type HostInfo struct {
	Hostname     string        `json:"hostname"`
	OS           string        `json:"os"`
	OSVersion    string        `json:"os_version"`
	Architecture string        `json:"architecture"`
	Uptime       time.Duration `json:"uptime"`
	GPU          string        `json:"gpu,omitempty"`
	Elevated     bool          `json:"elevated"`
}

// DiskInfo is the usage of the system drive.
type DiskInfo struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}

// TargetInfo is the availability of one cleanup target.
type TargetInfo struct {
	ID            catalog.ID     `json:"id"`
	Host          string         `json:"host"`
	Status        catalog.Status `json:"-"`
	StatusText    string         `json:"status"`
	Directories   int            `json:"directories"`
	RequiresAdmin bool           `json:"requires_admin"`
	Permitted     bool           `json:"permitted"`
}

// Snapshot is everything the status command shows.
type Snapshot struct {
	Host    HostInfo     `json:"host"`
	Disk    *DiskInfo    `json:"disk,omitempty"`
	Targets []TargetInfo `json:"targets"`

	// Warnings lists probes that failed. A failed probe never fails the
	// snapshot.
	Warnings []string `json:"warnings,omitempty"`
}

// SystemDrive returns the root of the drive holding the Windows directory,
// or "/" when folders carry no volume name.
func SystemDrive(f config.Folders) string {
	if vol := filepath.VolumeName(f.Windows); vol != "" {
		return vol + `\`
	}
	return "/"
}

// Collect gathers host, disk and target information. Only the catalog is
// read; nothing is deleted.
func Collect(c *clean.Cleaner, drive string) *Snapshot {
	s := &Snapshot{
		Host: HostInfo{
			OS:           runtime.GOOS,
			OSVersion:    core.OSVersionString(),
			Architecture: runtime.GOARCH,
			Elevated:     c.Elevated,
		},
	}

	if hi, err := host.Info(); err != nil {
		s.Warnings = append(s.Warnings, fmt.Sprintf("host info: %v", err))
	} else {
		s.Host.Hostname = hi.Hostname
		if hi.Platform != "" {
			s.Host.OS = hi.Platform
		}
		if hi.KernelArch != "" {
			s.Host.Architecture = hi.KernelArch
		}
		s.Host.Uptime = time.Duration(hi.Uptime) * time.Second
	}

	if gpu, err := gpuName(); err != nil {
		s.Warnings = append(s.Warnings, fmt.Sprintf("gpu: %v", err))
	} else {
		s.Host.GPU = gpu
	}

	if u, err := disk.Usage(drive); err != nil {
		s.Warnings = append(s.Warnings, fmt.Sprintf("disk usage of %s: %v", drive, err))
	} else {
		s.Disk = &DiskInfo{
			Path:        drive,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		}
	}

	for _, t := range c.Catalog().Targets() {
		res := c.Catalog().ResolveTarget(t)
		s.Targets = append(s.Targets, TargetInfo{
			ID:            t.ID,
			Host:          t.Host,
			Status:        res.Status,
			StatusText:    res.Status.String(),
			Directories:   len(res.Directories),
			RequiresAdmin: t.RequiresAdmin,
			Permitted:     c.Permitted(t),
		})
	}

	return s
}
