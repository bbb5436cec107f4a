package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/brandgen/internal/ui"
)

// Style variables for the interactive session.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	elapsedStyle    lipgloss.Style
	sectionStyle    lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	messageStyle    lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	noticeStyle     lipgloss.Style
	statusIdleStyle lipgloss.Style
	statusBusyStyle lipgloss.Style
	statusDoneStyle lipgloss.Style
	statusErrStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Border).
		MarginTop(1)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	messageStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Italic(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	noticeStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Italic(true)

	statusIdleStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Bold(true)

	statusBusyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}

// statusStyle returns the style used for the phase badge in the header.
func statusStyle(phase string) lipgloss.Style {
	switch phase {
	case "loading":
		return statusBusyStyle
	case "success":
		return statusDoneStyle
	case "error":
		return statusErrStyle
	default:
		return statusIdleStyle
	}
}
