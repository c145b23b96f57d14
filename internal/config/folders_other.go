//go:build !windows

package config

// knownFolderID stands in for windows.KNOWNFOLDERID; only the environment
// fallbacks exist off Windows.
type knownFolderID int

const (
	folderWindows knownFolderID = iota
	folderLocalAppData
	folderRoamingAppData
	folderLocalAppDataLow
	folderProgramFilesX86
)

func knownFolder(_ knownFolderID, fallback string) string {
	return fallback
}

func steamInstallDir(programFilesX86 string) string {
	return defaultSteamInstall(programFilesX86)
}
