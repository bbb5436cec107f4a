package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/progress"
	"github.com/agbru/brandgen/internal/ui"
)

// ProgressReporter renders the loading phase of a workflow as a spinner
// followed by a progress bar and the current phase message.
type ProgressReporter struct {
	out io.Writer

	mu      sync.Mutex
	spinner Spinner
}

// NewProgressReporter returns a reporter writing to out.
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{out: out}
}

// Attach subscribes the reporter to m. The returned function unsubscribes it
// and stops the spinner if it is still running.
func (r *ProgressReporter) Attach(m *orchestration.Machine) (detach func()) {
	cancel := m.Subscribe(r.Observe)
	return func() {
		cancel()
		r.stop()
	}
}

// Observe handles one state change.
func (r *ProgressReporter) Observe(st orchestration.State) {
	switch st.Phase {
	case orchestration.PhaseLoading:
		r.update(st.Progress)
	default:
		r.stop()
	}
}

func (r *ProgressReporter) update(snap progress.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner == nil {
		r.spinner = newSpinner(spinner.WithWriter(r.out))
		r.spinner.Start()
	}
	r.spinner.UpdateSuffix(FormatProgress(snap))
}

func (r *ProgressReporter) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
}

// FormatProgress returns the suffix shown next to the spinner.
func FormatProgress(snap progress.Snapshot) string {
	return fmt.Sprintf(" %s%s%s %3d%% %s",
		ui.ColorPrimary(), progressBar(float64(snap.Progress)/progress.MaxProgress, ProgressBarWidth), ui.ColorReset(),
		snap.Progress, snap.Message)
}
