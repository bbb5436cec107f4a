package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/brandgen/internal/cli"
	"github.com/agbru/brandgen/internal/orchestration"
)

// HeaderModel renders the top bar: title, version, phase and the elapsed
// time of the current attempt.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	phase     orchestration.Phase
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// Start restarts the elapsed timer for a new attempt.
func (h *HeaderModel) Start() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetPhase records the workflow phase and freezes the timer once the attempt
// has ended.
func (h *HeaderModel) SetPhase(p orchestration.Phase) {
	h.phase = p
	if (p == orchestration.PhaseSuccess || p == orchestration.PhaseError) && h.endTime.IsZero() {
		h.endTime = time.Now()
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Brand Identity Generator"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText)

	if !h.startTime.IsZero() {
		end := h.endTime
		if end.IsZero() {
			end = time.Now()
		}
		left += versionStyle.Render(" | ") +
			elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", cli.FormatExecutionDuration(end.Sub(h.startTime))))
	}

	badge := statusStyle(h.phase.String()).Render(strings.ToUpper(h.phase.String()))
	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(badge), 1)

	return headerStyle.Render(left + strings.Repeat(" ", gap) + badge)
}
