package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/effects"
	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/orchestration"
)

// pane identifies which part of the session receives key presses.
type pane int

const (
	paneInput pane = iota
	paneResult
)

// Layout constants for the session.
const (
	minContentWidth = 40
	maxContentWidth = 100
	progressWidth   = 48
)

// Model is the root bubbletea model for the interactive session.
type Model struct {
	header HeaderModel
	input  textinput.Model
	bar    progressbar.Model
	help   help.Model
	keys   KeyMap

	ctx        context.Context
	generator  Generator
	dispatcher *effects.Dispatcher

	state   orchestration.State
	running bool
	focus   pane
	notice  string

	width    int
	height   int
	exitCode int
}

// NewModel creates a new session model. dispatcher may be nil, in which case
// copy keys report failure.
func NewModel(ctx context.Context, g Generator, dispatcher *effects.Dispatcher, version string) Model {
	if dispatcher == nil {
		dispatcher = effects.NewDispatcher(nil, nil, false, nil)
	}

	input := textinput.New()
	input.Placeholder = "Describe your company's mission..."
	input.Prompt = "› "
	input.CharLimit = 500
	input.Focus()

	return Model{
		header:     NewHeaderModel(version),
		input:      input,
		bar:        progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(progressWidth)),
		help:       help.New(),
		keys:       DefaultKeyMap(),
		ctx:        ctx,
		generator:  g,
		dispatcher: dispatcher,
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case StateMsg:
		m.applyState(msg.State)
		return m, nil

	case GenerationDoneMsg:
		m.running = false
		m.applyState(msg.State)
		if msg.State.Phase == orchestration.PhaseSuccess {
			m.focus = paneResult
			m.input.Blur()
		}
		return m, nil

	case CopiedMsg:
		if msg.OK {
			m.notice = "Copied " + msg.Label + " to clipboard"
		} else {
			m.notice = "Clipboard unavailable"
		}
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyState mirrors a machine state into the view.
func (m *Model) applyState(st orchestration.State) {
	if st.Phase == orchestration.PhaseLoading && m.state.Phase != orchestration.PhaseLoading {
		m.header.Start()
	}
	m.state = st
	m.header.SetPhase(st.Phase)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == paneInput && m.state.Result != nil {
			m.focus = paneResult
			m.input.Blur()
			return m, nil
		}
		m.focus = paneInput
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()
	}

	if m.focus == paneInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.CopyColor):
		return m, m.copyColor(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.CopyHeader):
		return m, m.copyFont("header font", func(p brand.FontPair) brand.Font { return p.Header })
	case key.Matches(msg, m.keys.CopyBody):
		return m, m.copyFont("body font", func(p brand.FontPair) brand.Font { return p.Body })
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// startGeneration launches an attempt unless one is already in flight.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.running || m.generator == nil {
		return m, nil
	}
	m.running = true
	m.notice = ""
	return m, generateCmd(m.ctx, m.generator, m.input.Value())
}

func (m Model) copyColor(i int) tea.Cmd {
	if m.state.Result == nil || i < 0 || i >= len(m.state.Result.Identity.Colors) {
		return nil
	}
	c := m.state.Result.Identity.Colors[i]
	return copyCmd(m.dispatcher, c.Hex, c.Hex)
}

func (m Model) copyFont(label string, pick func(brand.FontPair) brand.Font) tea.Cmd {
	if m.state.Result == nil {
		return nil
	}
	f := pick(m.state.Result.Identity.Fonts)
	if f.Name == "" {
		return nil
	}
	return copyCmd(m.dispatcher, label+" "+f.Name, f.Name)
}

// ExitCode returns the code the session should exit with.
func (m Model) ExitCode() int { return m.exitCode }

func (m *Model) layout() {
	w := m.contentWidth()
	m.header.SetWidth(w)
	m.input.Width = w - 6
	m.bar.Width = min(progressWidth, w-12)
	m.help.Width = w
}

func (m Model) contentWidth() int {
	return min(max(m.width, minContentWidth), maxContentWidth)
}

// View renders the session.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	w := m.contentWidth()
	sections := []string{
		m.header.View(),
		panelStyle.Width(w - 2).Render(m.input.View()),
		m.bodyView(w),
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
