package effects

import (
	"github.com/agbru/brandgen/internal/logging"
	"github.com/agbru/brandgen/internal/orchestration"
)

// Dispatcher turns successful attempts into font requests and performs
// clipboard copies on behalf of the presentation layer.
type Dispatcher struct {
	fonts       FontLoader
	clipboard   Clipboard
	interactive bool
	logger      logging.Logger
}

// NewDispatcher returns a dispatcher. When interactive is false no fonts are
// requested. fonts and clipboard may be nil.
func NewDispatcher(fonts FontLoader, clipboard Clipboard, interactive bool, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Dispatcher{
		fonts:       fonts,
		clipboard:   clipboard,
		interactive: interactive,
		logger:      logger,
	}
}

// Attach registers the dispatcher for success events of m.
func (d *Dispatcher) Attach(m *orchestration.Machine) (cancel func()) {
	return m.OnSuccess(d.HandleSuccess)
}

// HandleSuccess requests the header font and then the body font of the
// result's identity.
func (d *Dispatcher) HandleSuccess(r orchestration.Result) {
	if !d.interactive || d.fonts == nil {
		return
	}
	for _, f := range r.Identity.Fonts.Fonts() {
		if f.ImportURL == "" {
			continue
		}
		d.fonts.RequestFont(f.ImportURL)
	}
}

// CopyToClipboard places text on the clipboard. Failures are logged and
// otherwise ignored.
func (d *Dispatcher) CopyToClipboard(text string) bool {
	if d.clipboard == nil {
		d.logger.Debug("clipboard copy skipped", logging.String("reason", ErrClipboardUnavailable.Error()))
		return false
	}
	if err := d.clipboard.Copy(text); err != nil {
		d.logger.Error("clipboard copy failed", err)
		return false
	}
	return true
}
