package effects

import (
	"errors"
	"io"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboardUnavailable is returned when no clipboard is attached.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard places text on the user's clipboard.
type Clipboard interface {
	Copy(text string) error
}

// OSC52Clipboard writes the OSC 52 escape sequence to a terminal, which
// forwards the text to the host clipboard. It works over SSH and inside tmux
// or screen when the mode matches the multiplexer.
type OSC52Clipboard struct {
	Out  io.Writer
	Mode osc52.Mode
}

// NewOSC52Clipboard returns a clipboard writing to out with the mode derived
// from the environment lookup.
func NewOSC52Clipboard(out io.Writer, getenv func(string) string) *OSC52Clipboard {
	return &OSC52Clipboard{Out: out, Mode: DetectMode(getenv)}
}

// DetectMode picks the escape mode for the terminal multiplexer in use.
func DetectMode(getenv func(string) string) osc52.Mode {
	switch {
	case getenv("TMUX") != "":
		return osc52.TmuxMode
	case strings.HasPrefix(getenv("TERM"), "screen"):
		return osc52.ScreenMode
	default:
		return osc52.DefaultMode
	}
}

// Copy writes text as an OSC 52 set-clipboard sequence.
func (c *OSC52Clipboard) Copy(text string) error {
	if c == nil || c.Out == nil {
		return ErrClipboardUnavailable
	}
	_, err := osc52.New(text).Mode(c.Mode).WriteTo(c.Out)
	return err
}
