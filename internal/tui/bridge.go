package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/brandgen/internal/effects"
	"github.com/agbru/brandgen/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so machine subscribers can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Generator runs one generation attempt.
type Generator interface {
	Generate(ctx context.Context, mission string) (orchestration.State, error)
}

// Workflow is a Generator whose state machine can be observed.
type Workflow interface {
	Generator
	Machine() *orchestration.Machine
}

// StateMsg carries a workflow state published by the machine.
type StateMsg struct {
	State orchestration.State
}

// GenerationDoneMsg is sent when an attempt returns.
type GenerationDoneMsg struct {
	State orchestration.State
	Err   error
}

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct {
	Label string
	OK    bool
}

// ContextCancelledMsg is sent when the session context is cancelled.
type ContextCancelledMsg struct {
	Err error
}

// forwardStates subscribes to m and forwards every state to the program.
func forwardStates(ref *programRef, m *orchestration.Machine) (cancel func()) {
	return m.Subscribe(func(st orchestration.State) {
		ref.Send(StateMsg{State: st})
	})
}

// generateCmd runs an attempt outside the event loop.
func generateCmd(ctx context.Context, g Generator, mission string) tea.Cmd {
	return func() tea.Msg {
		st, err := g.Generate(ctx, mission)
		return GenerationDoneMsg{State: st, Err: err}
	}
}

// copyCmd copies text through the dispatcher.
func copyCmd(d *effects.Dispatcher, label, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Label: label, OK: d.CopyToClipboard(text)}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
