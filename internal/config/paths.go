package config

import (
	"os"
	"path/filepath"
)

// Folders holds the resolved special folders every cleanup target is built
// from. Fields are absolute paths; an empty field means the folder could not
// be resolved and targets built on it are skipped.
type Folders struct {
	// Temp is the per-user temporary directory (GetTempPath).
	Temp string

	// Windows is the Windows directory (e.g., C:\Windows).
	Windows string

	// LocalAppData is the per-user local application data directory.
	LocalAppData string

	// RoamingAppData is the per-user roaming application data directory.
	RoamingAppData string

	// LocalAppDataLow is the low-integrity local application data directory.
	LocalAppDataLow string

	// ProgramFilesX86 is the 32-bit Program Files directory.
	ProgramFilesX86 string

	// SteamInstall is the Steam client install directory.
	SteamInstall string
}

// DetectFolders resolves the special folders of the current user. Known
// folder lookups are preferred; environment variables and hardcoded default
// install paths are the fallbacks.
func DetectFolders() Folders {
	local := knownFolder(folderLocalAppData, localAppData())
	f := Folders{
		Temp:            filepath.Clean(os.TempDir()),
		Windows:         knownFolder(folderWindows, winDir()),
		LocalAppData:    local,
		RoamingAppData:  knownFolder(folderRoamingAppData, appData()),
		LocalAppDataLow: knownFolder(folderLocalAppDataLow, localAppDataLow(local)),
		ProgramFilesX86: knownFolder(folderProgramFilesX86, programFilesX86()),
	}
	f.SteamInstall = steamInstallDir(f.ProgramFilesX86)
	return f
}

// ─── Environment Fallbacks ───────────────────────────────────────────────────

// localAppData returns the local app data directory.
func localAppData() string {
	return os.Getenv("LOCALAPPDATA")
}

// appData returns the roaming app data directory.
func appData() string {
	return os.Getenv("APPDATA")
}

// localAppDataLow derives LocalLow as a sibling of Local, which is where
// Windows keeps it under %USERPROFILE%\AppData.
func localAppDataLow(local string) string {
	if local == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(local), "LocalLow")
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// programFilesX86 returns the Program Files (x86) directory.
func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

// defaultSteamInstall is where the Steam installer puts the client unless the
// user picked another drive.
func defaultSteamInstall(programFilesX86 string) string {
	return filepath.Join(programFilesX86, "Steam")
}
