package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/ui"
)

// DisplayResult prints the brand package of a successful attempt: the
// palette with swatches, the font pair, and a summary of the logos.
func DisplayResult(out io.Writer, r orchestration.Result) {
	fmt.Fprintf(out, "\n%s%sYour Brand Bible%s\n", ui.ColorBold(), ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(out, "%sattempt %s · generated in %s%s\n",
		ui.ColorSecondary(), r.AttemptID, FormatExecutionDuration(r.Duration), ui.ColorReset())

	DisplayPalette(out, r.Identity.Colors)
	DisplayFonts(out, r.Identity.Fonts)
	DisplayLogos(out, r.Images)
}

// DisplayPalette prints one line per color.
func DisplayPalette(out io.Writer, colors []brand.Color) {
	fmt.Fprintf(out, "\n%sColor Palette%s\n", ui.ColorBold(), ui.ColorReset())
	nameWidth := 0
	for _, c := range colors {
		nameWidth = max(nameWidth, len(c.Name))
	}
	for i, c := range colors {
		fmt.Fprintf(out, "  %d %s  %-*s  %s%s%s\n",
			i+1, ui.Swatch(c, ui.SwatchWidth), nameWidth, c.Name,
			ui.ColorSecondary(), c.Usage, ui.ColorReset())
	}
}

// DisplayFonts prints the header and body fonts with their import URLs.
func DisplayFonts(out io.Writer, fonts brand.FontPair) {
	fmt.Fprintf(out, "\n%sTypography%s\n", ui.ColorBold(), ui.ColorReset())
	for _, row := range []struct {
		role string
		font brand.Font
	}{{"Header", fonts.Header}, {"Body", fonts.Body}} {
		fmt.Fprintf(out, "  %-6s  %s  %s%s%s\n",
			row.role, row.font.Name, ui.ColorCyan(), row.font.ImportURL, ui.ColorReset())
	}
}

// DisplayLogos summarizes the primary logo and the secondary marks.
func DisplayLogos(out io.Writer, images brand.Images) {
	fmt.Fprintf(out, "\n%sLogos%s\n", ui.ColorBold(), ui.ColorReset())
	if primary := images.Primary(); primary != nil {
		fmt.Fprintf(out, "  Primary logo     %s, %s\n", brand.MIMEType(primary), FormatBytes(len(primary)))
	}
	for i, m := range images.Secondary() {
		fmt.Fprintf(out, "  Secondary mark %d %s, %s\n", i+1, brand.MIMEType(m), FormatBytes(len(m)))
	}
}

// DisplayError prints the user-facing message of a failed attempt.
func DisplayError(out io.Writer, message string) {
	fmt.Fprintf(out, "%s✗ %s%s\n", ui.ColorRed(), message, ui.ColorReset())
}

// DisplayQuietResult prints the palette hex codes on one line, followed by
// the two font names, for use in scripts.
func DisplayQuietResult(out io.Writer, r orchestration.Result) {
	hexes := make([]string, len(r.Identity.Colors))
	for i, c := range r.Identity.Colors {
		hexes[i] = c.Hex
	}
	fmt.Fprintln(out, strings.Join(hexes, " "))
	fmt.Fprintf(out, "%s\n%s\n", r.Identity.Fonts.Header.Name, r.Identity.Fonts.Body.Name)
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
