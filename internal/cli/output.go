// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatProgress], [FormatExecutionDuration], [FormatBytes].
//
//   - Write*/Export* functions write data to a writer or to the filesystem.
//     Examples: [WriteJSON], [ExportKit].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/agbru/brandgen/internal/brand"
	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/ui"
)

// ManifestName is the file name of the brand manifest written by [ExportKit].
const ManifestName = "brand.yaml"

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// JSON prints the final state as JSON instead of the formatted report.
	JSON bool
	// Quiet prints only the hex codes and font names.
	Quiet bool
	// OutputDir is the directory the brand kit is exported to (empty for none).
	OutputDir string
}

// Manifest is the YAML document describing an exported brand kit.
type Manifest struct {
	AttemptID   string         `yaml:"attempt_id"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Mission     string         `yaml:"mission,omitempty"`
	Colors      []brand.Color  `yaml:"colors"`
	Fonts       brand.FontPair `yaml:"fonts"`
	Logos       ManifestLogos  `yaml:"logos"`
}

// ManifestLogos lists the exported logo files relative to the kit directory.
type ManifestLogos struct {
	Primary        string   `yaml:"primary,omitempty"`
	SecondaryMarks []string `yaml:"secondary_marks"`
}

// ExportKit writes the logos of r and a brand.yaml manifest into dir,
// creating it if needed. It returns the paths of the files written.
func ExportKit(dir, mission string, r orchestration.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.WrapError(err, "failed to create directory")
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return apperrors.WrapError(err, "failed to write %s", name)
		}
		written = append(written, path)
		return nil
	}

	manifest := Manifest{
		AttemptID:   r.AttemptID,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Mission:     mission,
		Colors:      r.Identity.Colors,
		Fonts:       r.Identity.Fonts,
		Logos:       ManifestLogos{SecondaryMarks: []string{}},
	}
	if primary := r.PrimaryLogo(); primary != nil {
		name := "primary-logo" + brand.Extension(primary)
		if err := write(name, primary); err != nil {
			return written, err
		}
		manifest.Logos.Primary = name
	}
	for i, mark := range r.SecondaryMarks() {
		name := fmt.Sprintf("mark-%d%s", i+1, brand.Extension(mark))
		if err := write(name, mark); err != nil {
			return written, err
		}
		manifest.Logos.SecondaryMarks = append(manifest.Logos.SecondaryMarks, name)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return written, apperrors.WrapError(err, "failed to encode manifest")
	}
	if err := write(ManifestName, data); err != nil {
		return written, err
	}
	return written, nil
}

// WriteJSON encodes the workflow state as indented JSON.
func WriteJSON(out io.Writer, st orchestration.State) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// DisplayOutcome renders a terminal state according to cfg and exports the
// brand kit when requested. It returns an error only for export failures.
func DisplayOutcome(out io.Writer, mission string, st orchestration.State, cfg OutputConfig) error {
	switch {
	case cfg.JSON:
		if err := WriteJSON(out, st); err != nil {
			return err
		}
	case st.Phase == orchestration.PhaseError:
		DisplayError(out, st.Message)
	case st.Result == nil:
	case cfg.Quiet:
		DisplayQuietResult(out, *st.Result)
	default:
		DisplayResult(out, *st.Result)
	}

	if cfg.OutputDir == "" || st.Phase != orchestration.PhaseSuccess || st.Result == nil {
		return nil
	}
	files, err := ExportKit(cfg.OutputDir, mission, *st.Result)
	if err != nil {
		return err
	}
	if !cfg.Quiet && !cfg.JSON {
		fmt.Fprintf(out, "\n%s✓ Brand kit saved to: %s%s%s (%d files)\n",
			ui.ColorGreen(), ui.ColorCyan(), cfg.OutputDir, ui.ColorReset(), len(files))
	}
	return nil
}
