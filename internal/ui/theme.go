// Package ui holds the terminal presentation layer: theme, report rendering
// and the interactive menu.
package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0369a1", Dark: "#38bdf8"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorCoral     = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim   = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond = "◆"
	IconBullet  = "•"
	IconBlock   = "▌"
	IconPipe    = "│"
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "⚠"
	IconShield  = "⛨"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

// TitleStyle renders screen titles.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// HintBarStyle renders the key hint footer.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// TagWarningStyle renders a small inverted warning tag.
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(ColorWarning)
}

// TagAdminStyle renders the tag marking admin-only targets.
func TagAdminStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(ColorCoral)
}

// BoxStyle frames a block of output.
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)
}
