package orchestration

import (
	"sync"
	"time"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/progress"
)

// Phase is the currently active state of the workflow.
type Phase int

// Workflow phases.
const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

var phaseNames = [...]string{"idle", "loading", "success", "error"}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MarshalText encodes the phase as its name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Result is the merged output of a successful attempt.
type Result struct {
	// AttemptID identifies the Generate call that produced the result.
	AttemptID string
	Identity  brand.Identity
	Images    brand.Images
	// Duration is the wall-clock time of the attempt.
	Duration time.Duration
}

// PrimaryLogo returns the first image, or nil when there is none.
func (r Result) PrimaryLogo() []byte { return r.Images.Primary() }

// SecondaryMarks returns the images after the primary logo.
func (r Result) SecondaryMarks() [][]byte { return r.Images.Secondary() }

// State is a tagged snapshot of the workflow: Phase selects which of the
// other fields is meaningful. Progress belongs to PhaseLoading (and holds the
// terminal snapshot once an attempt finished), Result to PhaseSuccess,
// Message to PhaseError. Result and Message are never both set.
type State struct {
	Phase    Phase
	Progress progress.Snapshot
	Result   *Result
	Message  string
}

type stateSubscriber struct {
	id int
	fn func(State)
}

type successSubscriber struct {
	id int
	fn func(Result)
}

// Machine owns the workflow phase and its payload. Readers may call State,
// Subscribe and OnSuccess from any goroutine; only the Orchestrator in this
// package performs transitions.
type Machine struct {
	// emitMu serializes transitions with their notifications so every
	// subscriber observes states in transition order.
	emitMu sync.Mutex

	mu      sync.Mutex
	state   State
	subs    []stateSubscriber
	success []successSubscriber
	nextID  int
}

// NewMachine returns a machine in PhaseIdle.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to receive every new state. Callbacks run
// synchronously on the goroutine performing the transition and must not
// block. The returned function removes the subscription.
func (m *Machine) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, stateSubscriber{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// OnSuccess registers fn to be called with the result each time the machine
// enters PhaseSuccess, after state subscribers were notified.
func (m *Machine) OnSuccess(fn func(Result)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.success = append(m.success, successSubscriber{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.success {
			if s.id == id {
				m.success = append(m.success[:i:i], m.success[i+1:]...)
				return
			}
		}
	}
}

// begin enters PhaseLoading, clearing any previous result or error.
func (m *Machine) begin() State {
	return m.transition(func(s *State) bool {
		*s = State{Phase: PhaseLoading, Progress: progress.Snapshot{}}
		return true
	})
}

// succeed enters PhaseSuccess with the given result.
func (m *Machine) succeed(r Result) State {
	return m.transition(func(s *State) bool {
		*s = State{Phase: PhaseSuccess, Progress: progress.Done(), Result: &r}
		return true
	})
}

// fail enters PhaseError with a user-facing message.
func (m *Machine) fail(message string) State {
	return m.transition(func(s *State) bool {
		*s = State{Phase: PhaseError, Progress: progress.Done(), Message: message}
		return true
	})
}

// setProgress mirrors a simulator snapshot while loading. Snapshots arriving
// in any other phase are dropped.
func (m *Machine) setProgress(snap progress.Snapshot) {
	m.transition(func(s *State) bool {
		if s.Phase != PhaseLoading || s.Progress == snap {
			return false
		}
		s.Progress = snap
		return true
	})
}

func (m *Machine) transition(update func(*State) bool) State {
	m.emitMu.Lock()
	defer m.emitMu.Unlock()

	m.mu.Lock()
	if !update(&m.state) {
		st := m.state
		m.mu.Unlock()
		return st
	}
	st := m.state
	subs := make([]func(State), len(m.subs))
	for i, s := range m.subs {
		subs[i] = s.fn
	}
	var success []func(Result)
	if st.Phase == PhaseSuccess && st.Result != nil {
		for _, s := range m.success {
			success = append(success, s.fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
	for _, fn := range success {
		fn(*st.Result)
	}
	return st
}
