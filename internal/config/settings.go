package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Environment variables read by LoadSettings.
const (
	EnvLogDir        = "PCCLEANER_LOG_DIR"
	EnvLogMaxSizeMB  = "PCCLEANER_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "PCCLEANER_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays = "PCCLEANER_LOG_MAX_AGE_DAYS"
	EnvWorkers       = "PCCLEANER_WORKERS"
)

// Settings holds the runtime settings of the cleaner. There is no settings
// file; values come from the environment and command-line flags.
type Settings struct {
	// LogDir is the directory holding the rotating log file.
	LogDir string

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB int

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups int

	// LogMaxAgeDays is how long rotated files are kept.
	LogMaxAgeDays int

	// Workers bounds concurrent deletions. Defaults to the CPU count.
	Workers int

	// Debug mirrors the --debug flag: log to the console at debug level.
	Debug bool
}

// DefaultSettings returns the settings used when no overrides are present.
func DefaultSettings(folders Folders) Settings {
	base := folders.LocalAppData
	if base == "" {
		base = os.TempDir()
	}
	return Settings{
		LogDir:        filepath.Join(base, "PCCleaner", "logs"),
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 7,
		Workers:       runtime.NumCPU(),
	}
}

// LoadSettings applies environment overrides on top of DefaultSettings.
func LoadSettings(folders Folders) (Settings, error) {
	s := DefaultSettings(folders)

	if dir := os.Getenv(EnvLogDir); dir != "" {
		s.LogDir = dir
	}

	ints := []struct {
		env string
		dst *int
	}{
		{EnvLogMaxSizeMB, &s.LogMaxSizeMB},
		{EnvLogMaxBackups, &s.LogMaxBackups},
		{EnvLogMaxAgeDays, &s.LogMaxAgeDays},
		{EnvWorkers, &s.Workers},
	}
	for _, v := range ints {
		if err := envInt(v.env, v.dst); err != nil {
			return Settings{}, err
		}
	}

	return s, nil
}

// envInt overwrites dst with the positive integer stored in env, if set.
func envInt(env string, dst *int) error {
	raw := os.Getenv(env)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", env, raw, err)
	}
	if n <= 0 {
		return fmt.Errorf("invalid %s %q: must be positive", env, raw)
	}
	*dst = n
	return nil
}
