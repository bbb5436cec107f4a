package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/cli"
	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/progress"
	"github.com/agbru/brandgen/internal/ui"
)

// bodyView renders the area below the mission input for the active phase.
func (m Model) bodyView(width int) string {
	switch m.state.Phase {
	case orchestration.PhaseLoading:
		return m.loadingView()
	case orchestration.PhaseSuccess:
		if m.state.Result != nil {
			return resultView(*m.state.Result, width)
		}
	case orchestration.PhaseError:
		return errorStyle.Render("✗ " + m.state.Message)
	}
	return dimStyle.Render(fmt.Sprintf("Enter a mission of at least %d characters and press enter.", brand.MinMissionLength))
}

func (m Model) loadingView() string {
	snap := m.state.Progress
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		m.bar.ViewAs(float64(snap.Progress)/progress.MaxProgress),
		messageStyle.Render(snap.Message),
	)
}

// resultView renders the palette, fonts and logo summary of a result.
func resultView(r orchestration.Result, width int) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Color Palette"))
	b.WriteString("\n")
	swatchWidth := min(ui.SwatchWidth, max((width-4)/max(len(r.Identity.Colors), 1)-1, 9))
	b.WriteString(ui.PaletteStrip(r.Identity.Colors, swatchWidth))
	b.WriteString("\n")
	for i, c := range r.Identity.Colors {
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("[%d]", i+1)),
			valueStyle.Render(c.Name),
			dimStyle.Render(c.Usage))
	}

	b.WriteString(sectionStyle.Render("Typography"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("[h] Header"), valueStyle.Render(r.Identity.Fonts.Header.Name))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("[b] Body  "), valueStyle.Render(r.Identity.Fonts.Body.Name))

	b.WriteString(sectionStyle.Render("Logos"))
	b.WriteString("\n")
	if primary := r.PrimaryLogo(); primary != nil {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Primary"), cli.FormatBytes(len(primary)))
	}
	if marks := r.SecondaryMarks(); len(marks) > 0 {
		sizes := make([]string, len(marks))
		for i, mk := range marks {
			sizes[i] = cli.FormatBytes(len(mk))
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Secondary marks"), strings.Join(sizes, ", "))
	}
	b.WriteString(successStyle.Render(fmt.Sprintf("✓ Generated in %s", cli.FormatExecutionDuration(r.Duration))))
	return b.String()
}
