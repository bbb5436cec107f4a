package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/brandgen/internal/effects"
	apperrors "github.com/agbru/brandgen/internal/errors"
)

// Run is the public entry point for the interactive mode.
// It creates the bubbletea program, runs it, and returns the exit code.
// out is the terminal the program renders to; pass the writer returned by
// NewOutput, and give the same writer to the dispatcher's clipboard.
func Run(ctx context.Context, w Workflow, dispatcher *effects.Dispatcher, out io.Writer, version string) int {
	// Rebuild styles from the current ui theme (set by the app via InitTheme).
	initTUIStyles()

	ref := &programRef{}
	stopForwarding := forwardStates(ref, w.Machine())
	defer stopForwarding()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	p := tea.NewProgram(NewModel(ctx, w, dispatcher, version), opts...)
	// Inject the program reference before running so subscribers can Send.
	ref.SetProgram(p)
	defer ref.SetProgram(nil)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitSuccess
}
