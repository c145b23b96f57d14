package catalog

import (
	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
)

// Target identifiers.
const (
	GeneralCache      ID = "GeneralCache"
	WindowsUpdate     ID = "WindowsUpdate"
	Steam             ID = "Steam"
	Discord           ID = "Discord"
	NvidiaShaderCache ID = "NvidiaShaderCache"
	ChromeCache       ID = "ChromeCache"
	EdgeCache         ID = "EdgeCache"
	FirefoxCache      ID = "FirefoxCache"
)

// chromiumCaches are the cache directories every Chromium/Electron profile
// keeps next to its user data.
var chromiumCaches = []string{"blob_storage", "Cache", "Code Cache", "DawnCache", "GPUCache"}

// builtinTargets returns the fixed cleanup catalog.
func builtinTargets() []Target {
	return []Target{
		// ── Windows ─────────────────────────────────────────────
		{
			ID:            GeneralCache,
			Host:          "Windows",
			Description:   "Windows temporary, prefetch and crash dump files",
			Category:      CategorySystem,
			RequiresAdmin: true,
			paths: func(_ string, f config.Folders) []string {
				return []string{
					f.Temp,
					join(f.Windows, "Temp"),
					join(f.Windows, "Prefetch"),
					join(f.Windows, "SoftwareDistribution", "Download"),
					join(f.LocalAppData, "Temp"),
					join(f.LocalAppData, "Microsoft", "Windows", "Explorer"),
					join(f.LocalAppData, "CrashDumps"),
				}
			},
		},
		{
			ID:            WindowsUpdate,
			Host:          "Windows Update",
			Description:   "Windows Update download and delivery optimization cache",
			Category:      CategorySystem,
			RequiresAdmin: true,
			roots: func(f config.Folders) []string {
				return []string{join(f.Windows, "SoftwareDistribution")}
			},
			paths: func(root string, _ config.Folders) []string {
				return []string{
					join(root, "Download"),
					join(root, "DeliveryOptimization"),
				}
			},
		},

		// ── Applications ────────────────────────────────────────
		{
			ID:          Steam,
			Host:        "Steam",
			Description: "Steam web and HTTP caches",
			Category:    CategoryApps,
			roots: func(f config.Folders) []string {
				return []string{join(f.LocalAppData, "Steam", "htmlcache")}
			},
			paths: func(root string, f config.Folders) []string {
				paths := []string{join(f.SteamInstall, "appcache", "httpcache")}
				return append(paths, under(root, chromiumCaches)...)
			},
		},
		{
			ID:          Discord,
			Host:        "Discord",
			Description: "Discord caches and temporary files",
			Category:    CategoryApps,
			roots: func(f config.Folders) []string {
				return []string{join(f.RoamingAppData, "discord")}
			},
			paths: func(root string, _ config.Folders) []string {
				return under(root, chromiumCaches)
			},
		},

		// ── Graphics ────────────────────────────────────────────
		{
			ID:          NvidiaShaderCache,
			Host:        "NVIDIA shader cache",
			Description: "Graphics driver shader caches",
			Category:    CategoryGraphics,
			roots: func(f config.Folders) []string {
				// Newer drivers moved DXCache under LocalLow.
				return []string{
					join(f.LocalAppDataLow, "NVIDIA", "PerDriverVersion", "DXCache"),
					join(f.LocalAppData, "NVIDIA", "DXCache"),
				}
			},
			paths: func(root string, f config.Folders) []string {
				return []string{root, join(f.LocalAppData, "D3DSCache")}
			},
		},

		// ── Browsers ────────────────────────────────────────────
		{
			ID:          ChromeCache,
			Host:        "Google Chrome",
			Description: "Google Chrome browser cache",
			Category:    CategoryBrowser,
			roots: func(f config.Folders) []string {
				return []string{join(f.LocalAppData, "Google", "Chrome", "User Data")}
			},
			paths: browserProfileCaches,
		},
		{
			ID:          EdgeCache,
			Host:        "Microsoft Edge",
			Description: "Microsoft Edge browser cache",
			Category:    CategoryBrowser,
			roots: func(f config.Folders) []string {
				return []string{join(f.LocalAppData, "Microsoft", "Edge", "User Data")}
			},
			paths: browserProfileCaches,
		},
		{
			ID:          FirefoxCache,
			Host:        "Mozilla Firefox",
			Description: "Mozilla Firefox browser cache (cache2 within profiles)",
			Category:    CategoryBrowser,
			roots: func(f config.Folders) []string {
				return []string{join(f.LocalAppData, "Mozilla", "Firefox", "Profiles")}
			},
			paths: func(root string, _ config.Folders) []string {
				return []string{
					join(root, "*", "cache2"),
					join(root, "*", "startupCache"),
					join(root, "*", "thumbnails"),
				}
			},
		},
	}
}

// under joins each name onto root.
func under(root string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, join(root, n))
	}
	return out
}

// browserProfileCaches lists the disposable caches of the default Chromium
// profile under a "User Data" root.
func browserProfileCaches(root string, _ config.Folders) []string {
	return []string{
		join(root, "Default", "Cache"),
		join(root, "Default", "Code Cache"),
		join(root, "Default", "GPUCache"),
	}
}
