//go:build windows

package config

import (
	"path/filepath"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	folderWindows         = windows.FOLDERID_Windows
	folderLocalAppData    = windows.FOLDERID_LocalAppData
	folderRoamingAppData  = windows.FOLDERID_RoamingAppData
	folderLocalAppDataLow = windows.FOLDERID_LocalAppDataLow
	folderProgramFilesX86 = windows.FOLDERID_ProgramFilesX86
)

// knownFolder resolves a known folder through SHGetKnownFolderPath, returning
// fallback when the shell cannot resolve it.
func knownFolder(id *windows.KNOWNFOLDERID, fallback string) string {
	path, err := windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
	if err != nil || path == "" {
		return fallback
	}
	return path
}

// steamInstallDir reads the Steam client location the installer records under
// HKCU\Software\Valve\Steam. The value uses forward slashes.
func steamInstallDir(programFilesX86 string) string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return defaultSteamInstall(programFilesX86)
	}
	defer key.Close()

	val, _, err := key.GetStringValue("SteamPath")
	if err != nil || val == "" {
		return defaultSteamInstall(programFilesX86)
	}
	return filepath.Clean(filepath.FromSlash(val))
}
