package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/brandgen/internal/brand"
)

// SwatchWidth is the default width of a rendered color swatch.
const SwatchWidth = 16

// Swatch renders a color as a block filled with the color itself, labeled
// with its hex code in a contrasting ink. Unparseable codes and the no-color
// theme fall back to a bracketed label.
func Swatch(c brand.Color, width int) string {
	label := strings.ToUpper(c.Hex)
	parsed, err := brand.ParseHex(c.Hex)
	if err != nil || !ColorsEnabled() {
		return fmt.Sprintf("[%s]", label)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(parsed.Hex())).
		Foreground(lipgloss.Color(brand.ContrastText(parsed))).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// PaletteStrip renders every color of the palette side by side.
func PaletteStrip(colors []brand.Color, width int) string {
	blocks := make([]string, len(colors))
	for i, c := range colors {
		blocks[i] = Swatch(c, width)
	}
	if !ColorsEnabled() {
		return strings.Join(blocks, " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
