package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
	"github.com/lakshaymaurya-felt/pccleaner/internal/core"
	"github.com/lakshaymaurya-felt/pccleaner/internal/sweep"
)

// User-facing summary messages.
const (
	MsgNothingToClean  = "Nothing to clean."
	MsgNothingRemoved  = "No files were removed."
	MsgAlreadyRunning  = "Another instance of PC Cleaner is already running."
	fmtNotInstalled    = "%s is not installed."
	fmtItemsRemoved    = "%s items removed. Total size: %s"
	fmtElevationNeeded = "Administrator privileges are required to clean %s."
)

// Summary returns the single-line outcome message for r.
func Summary(r clean.Report) string {
	if r.Refused {
		return ElevationMessage(r.Target)
	}
	if r.Status == catalog.NotInstalled {
		return fmt.Sprintf(fmtNotInstalled, r.Target.Host)
	}
	switch r.Result.Outcome() {
	case sweep.Empty:
		return MsgNothingToClean
	case sweep.NothingRemoved:
		return MsgNothingRemoved
	default:
		return fmt.Sprintf(fmtItemsRemoved,
			core.FormatCount(r.Result.ItemsDeleted),
			core.FormatSize(r.Result.BytesReclaimed))
	}
}

// ElevationMessage is shown when an admin-only target is picked without
// administrator rights.
func ElevationMessage(t catalog.Target) string {
	return fmt.Sprintf(fmtElevationNeeded, t.Host)
}

// RenderReport renders r as a styled line prefixed by the target name.
func RenderReport(r clean.Report) string {
	icon, color := IconSuccess, ColorSuccess
	switch {
	case r.Refused:
		icon, color = IconWarning, ColorWarning
	case r.Status == catalog.NotInstalled:
		icon, color = IconBullet, ColorMuted
	case r.Result.Outcome() == sweep.Empty:
		icon, color = IconBullet, ColorTextDim
	case r.Result.Outcome() == sweep.NothingRemoved:
		icon, color = IconWarning, ColorWarning
	case r.Result.Outcome() == sweep.Partial:
		icon, color = IconWarning, ColorSuccess
	}

	name := lipgloss.NewStyle().Bold(true).Foreground(ColorText).
		Width(20).Render(string(r.Target.ID))
	msg := lipgloss.NewStyle().Foreground(color).Render(icon + " " + Summary(r))

	line := "  " + name + msg
	if r.Refused {
		line += " " + TagWarningStyle().Render(" "+IconShield+" admin ")
	}
	if r.Result.ItemsFailed > 0 {
		line += lipgloss.NewStyle().Foreground(ColorMuted).
			Render(fmt.Sprintf("  %s %s in use", IconPipe, core.FormatCount(r.Result.ItemsFailed)))
	}
	return line
}

// RenderReports renders several reports followed by a grand total when more
// than one sweep removed something. Refused targets are listed too.
func RenderReports(reports []clean.Report) string {
	var (
		lines   []string
		total   sweep.Result
		removed int
	)
	for _, r := range reports {
		lines = append(lines, RenderReport(r))
		if r.Result.ItemsDeleted > 0 {
			removed++
		}
		total.ItemsDeleted += r.Result.ItemsDeleted
		total.ItemsFailed += r.Result.ItemsFailed
		total.TotalCandidates += r.Result.TotalCandidates
		total.BytesReclaimed += r.Result.BytesReclaimed
	}

	if removed > 1 {
		lines = append(lines, "", "  "+TitleStyle().Render(IconDiamond+" Total  ")+
			lipgloss.NewStyle().Foreground(ColorSuccess).Render(
				fmt.Sprintf(fmtItemsRemoved,
					core.FormatCount(total.ItemsDeleted),
					core.FormatSize(total.BytesReclaimed))))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error line.
func RenderError(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorError).Render("  " + IconError + " " + msg)
}
