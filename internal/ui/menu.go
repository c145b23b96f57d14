package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type sweepDoneMsg struct {
	reports []clean.Report
	err     error
}

func runTarget(c *clean.Cleaner, t catalog.Target) tea.Cmd {
	return func() tea.Msg {
		r, err := c.RunTarget(t)
		if err != nil {
			return sweepDoneMsg{err: err}
		}
		return sweepDoneMsg{reports: []clean.Report{r}}
	}
}

func runAll(c *clean.Cleaner) tea.Cmd {
	return func() tea.Msg {
		return sweepDoneMsg{reports: c.RunAll()}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

type menuState int

const (
	stateSelect menuState = iota
	stateRunning
	stateDone
)

// MenuModel is the bubbletea Model for the interactive target picker.
type MenuModel struct {
	cleaner  *clean.Cleaner
	targets  []catalog.Target
	cursor   int // len(targets) selects "all"
	state    menuState
	spinner  spinner.Model
	running  string
	notice   string
	reports  []clean.Report
	err      error
	width    int
	quitting bool
}

// NewMenuModel creates a MenuModel listing every catalog target.
func NewMenuModel(c *clean.Cleaner) MenuModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return MenuModel{
		cleaner: c,
		targets: c.Catalog().Targets(),
		spinner: sp,
		width:   80,
	}
}

// RunMenu runs the menu until the user quits.
func RunMenu(c *clean.Cleaner) error {
	_, err := tea.NewProgram(NewMenuModel(c)).Run()
	return err
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != stateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sweepDoneMsg:
		m.state = stateDone
		m.reports = msg.reports
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case stateRunning:
			// Sweeps cannot be cancelled.
			return m, nil
		case stateDone:
			if msg.String() == "q" || msg.String() == "esc" {
				m.quitting = true
				return m, tea.Quit
			}
			m.state = stateSelect
			m.reports = nil
			m.err = nil
			return m, nil
		}
		return m.updateSelect(msg)
	}

	return m, nil
}

func (m MenuModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.notice = ""
	case "down", "j":
		if m.cursor < len(m.targets) {
			m.cursor++
		}
		m.notice = ""
	case "a":
		return m.startAll()
	case "enter", " ":
		if m.cursor == len(m.targets) {
			return m.startAll()
		}
		t := m.targets[m.cursor]
		if !m.cleaner.Permitted(t) {
			m.notice = ElevationMessage(t)
			return m, nil
		}
		m.state = stateRunning
		m.running = t.Host
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, runTarget(m.cleaner, t))
	}
	return m, nil
}

func (m MenuModel) startAll() (tea.Model, tea.Cmd) {
	m.state = stateRunning
	m.running = "all permitted targets"
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, runAll(m.cleaner))
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(TitleStyle().Render("  " + IconDiamond + " PC Cleaner"))
	s.WriteString("\n")
	s.WriteString(HintBarStyle().Render(strings.Repeat("─", max(min(m.width, 72), 20))))
	s.WriteString("\n\n")

	switch m.state {
	case stateRunning:
		s.WriteString(fmt.Sprintf("  %s Cleaning %s…\n", m.spinner.View(), m.running))
	case stateDone:
		s.WriteString(m.renderDone())
		s.WriteString("\n\n")
		s.WriteString(HintBarStyle().Render("  any key back " + IconPipe + " q quit"))
	default:
		s.WriteString(m.renderTargets())
	}

	return s.String()
}

func (m MenuModel) renderTargets() string {
	var lines []string
	for i, t := range m.targets {
		lines = append(lines, m.renderRow(i, string(t.ID), t.Description, t.RequiresAdmin && !m.cleaner.Elevated))
	}
	lines = append(lines, m.renderRow(len(m.targets), "All", "Every target; admin-only ones need elevation", false))

	if m.notice != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(ColorWarning).
			Render("  "+IconWarning+" "+m.notice))
	}

	hints := []string{"↑↓ nav", "Enter clean", "a all", "q quit"}
	lines = append(lines, "", HintBarStyle().Render("  "+strings.Join(hints, " "+IconPipe+" ")))
	return strings.Join(lines, "\n")
}

func (m MenuModel) renderRow(i int, name, desc string, locked bool) string {
	cursor := "  "
	nameColor := ColorText
	if i == m.cursor {
		cursor = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(IconBlock) + " "
		nameColor = ColorPrimary
	}

	row := cursor +
		lipgloss.NewStyle().Foreground(nameColor).Bold(i == m.cursor).Width(20).Render(name) +
		lipgloss.NewStyle().Foreground(ColorTextDim).Render(desc)
	if locked {
		row += " " + TagAdminStyle().Render(" "+IconShield+" admin ")
	}
	return row
}

func (m MenuModel) renderDone() string {
	if m.err != nil {
		return RenderError(m.err.Error())
	}
	if len(m.reports) == 0 {
		return lipgloss.NewStyle().Foreground(ColorTextDim).Render("  " + MsgNothingToClean)
	}
	return RenderReports(m.reports)
}
