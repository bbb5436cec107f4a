package brand

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colors requested from the generative service.
const PaletteSize = 5

// ErrInvalidIdentity is returned when a generated identity lacks one of its
// required top-level fields.
var ErrInvalidIdentity = errors.New("invalid response structure from API")

// Identity is the merged color palette and font pair of a brand.
type Identity struct {
	Colors []Color  `json:"colors" yaml:"colors"`
	Fonts  FontPair `json:"fonts" yaml:"fonts"`
}

// Color is one entry of the palette.
type Color struct {
	Name  string `json:"name" yaml:"name"`
	Hex   string `json:"hex" yaml:"hex"`
	Usage string `json:"usage" yaml:"usage"`
}

// FontPair holds the header and body typefaces.
type FontPair struct {
	Header Font `json:"header" yaml:"header"`
	Body   Font `json:"body" yaml:"body"`
}

// Font names a typeface and the stylesheet URL that makes it available.
type Font struct {
	Name      string `json:"name" yaml:"name"`
	ImportURL string `json:"importUrl" yaml:"importUrl"`
}

// Fonts returns the header and body fonts in that order.
func (p FontPair) Fonts() []Font {
	return []Font{p.Header, p.Body}
}

// IsZero reports whether the font carries neither a name nor a URL.
func (f Font) IsZero() bool {
	return f.Name == "" && f.ImportURL == ""
}

// Validate checks that the identity is complete: at least one color, every
// color with a parseable hex code, and both fonts named with an import URL.
// Missing top-level fields wrap ErrInvalidIdentity.
func (id Identity) Validate() error {
	if len(id.Colors) == 0 {
		return fmt.Errorf("%w: missing colors", ErrInvalidIdentity)
	}
	if id.Fonts.Header.IsZero() || id.Fonts.Body.IsZero() {
		return fmt.Errorf("%w: missing fonts", ErrInvalidIdentity)
	}
	for i, c := range id.Colors {
		if _, err := ParseHex(c.Hex); err != nil {
			return fmt.Errorf("color %d (%s): %w", i, c.Name, err)
		}
	}
	for _, f := range id.Fonts.Fonts() {
		if f.Name == "" || f.ImportURL == "" {
			return fmt.Errorf("%w: font %q is missing a name or import URL", ErrInvalidIdentity, f.Name)
		}
	}
	return nil
}

// ParseHex parses a "#RRGGBB" or "#RGB" color code.
func ParseHex(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// ContrastText returns "#000000" or "#FFFFFF", whichever reads better on top
// of the given background color.
func ContrastText(background colorful.Color) string {
	l, _, _ := background.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
