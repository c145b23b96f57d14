package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/core"
	"github.com/lakshaymaurya-felt/pccleaner/internal/ui"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

const barWidth = 36

// Render renders s for the terminal.
func Render(s *Snapshot) string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle().Render("  " + ui.IconDiamond + " PC Cleaner status"))
	b.WriteString("\n\n")
	b.WriteString(renderHost(s))
	b.WriteString("\n\n")

	if s.Disk != nil {
		b.WriteString(renderDisk(s.Disk))
		b.WriteString("\n\n")
	}

	b.WriteString(renderTargets(s.Targets))

	for _, w := range s.Warnings {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  " + ui.IconWarning + " " + w))
	}

	return b.String()
}

// ─── Sections ────────────────────────────────────────────────────────────────

func renderHost(s *Snapshot) string {
	h := s.Host
	privilege := "standard user"
	if h.Elevated {
		privilege = "administrator"
	}

	lines := []string{
		fmt.Sprintf("  Computer   %s", h.Hostname),
		fmt.Sprintf("  OS         %s (%s)", h.OS, h.OSVersion),
		fmt.Sprintf("  Arch       %s", h.Architecture),
		fmt.Sprintf("  Uptime     %s", h.Uptime),
		fmt.Sprintf("  Privilege  %s", privilege),
	}
	if h.GPU != "" {
		lines = append(lines, fmt.Sprintf("  GPU        %s", h.GPU))
	}

	return ui.BoxStyle().Render(strings.Join(lines, "\n"))
}

func renderDisk(d *DiskInfo) string {
	return fmt.Sprintf("  %-4s %s  %5.1f%%  %s free of %s",
		d.Path, colorBar(d.UsedPercent, barWidth), d.UsedPercent,
		core.FormatSize(int64(d.Free)),
		core.FormatSize(int64(d.Total)))
}

func renderTargets(targets []TargetInfo) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorSecondary).Render("  Targets")
	lines := []string{header}

	for _, t := range targets {
		state := lipgloss.NewStyle().Foreground(clrGreen).
			Render(fmt.Sprintf("%s %d folders", ui.IconSuccess, t.Directories))
		if t.Status == catalog.NotInstalled {
			state = lipgloss.NewStyle().Foreground(ui.ColorMuted).
				Render(ui.IconBullet + " not installed")
		}

		line := fmt.Sprintf("  %-20s %s", t.ID, state)
		if t.RequiresAdmin && !t.Permitted {
			line += " " + ui.TagAdminStyle().Render(" "+ui.IconShield+" admin ")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// colorBar renders a usage bar whose color tracks pct.
func colorBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barColor := clrGreen
	switch {
	case pct >= 90:
		barColor = clrRed
	case pct >= 75:
		barColor = clrOrange
	case pct >= 50:
		barColor = clrYellow
	}

	fStr := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	eStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
	return fStr + eStr
}
