package progress

import (
	"sync"
	"time"
)

const (
	// DefaultInterval is the wall-clock period between two ticks.
	DefaultInterval = 500 * time.Millisecond
	// DefaultStep is the percentage added on every tick.
	DefaultStep = 5
	// MaxProgress is the ceiling of the progress value.
	MaxProgress = 100
	// DoneMessage is the message of the terminal snapshot.
	DoneMessage = "Done!"
)

// DefaultMessages are the phase messages shown while a brand package is
// being generated, in display order.
var DefaultMessages = []string{
	"Analyzing your mission...",
	"Generating logo concepts...",
	"Curating color palette...",
	"Pairing perfect fonts...",
	"Finalizing your brand bible...",
}

// Snapshot is a point-in-time reading of the simulated progress.
type Snapshot struct {
	Progress int    `json:"progress"`
	Message  string `json:"message"`
}

// Done returns the terminal snapshot.
func Done() Snapshot {
	return Snapshot{Progress: MaxProgress, Message: DoneMessage}
}

// TickSource creates a periodic tick channel and the function that releases
// it. It exists so tests can drive the simulator by hand.
type TickSource func(d time.Duration) (ticks <-chan time.Time, stop func())

// TimeTicker is the TickSource backed by time.Ticker.
func TimeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithStep sets the increment applied on every tick. Non-positive values are
// ignored.
func WithStep(step int) Option {
	return func(s *Simulator) {
		if step > 0 {
			s.step = step
		}
	}
}

// WithMessages replaces the phase messages. An empty list is ignored.
func WithMessages(messages []string) Option {
	return func(s *Simulator) {
		if len(messages) > 0 {
			s.messages = append([]string(nil), messages...)
		}
	}
}

// WithTickSource replaces the tick source.
func WithTickSource(src TickSource) Option {
	return func(s *Simulator) {
		if src != nil {
			s.newTicker = src
		}
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Simulator produces monotonically increasing progress snapshots while
// running. All methods are safe for concurrent use, but subscribers must not
// call Start or Stop from their callback.
type Simulator struct {
	interval  time.Duration
	step      int
	messages  []string
	newTicker TickSource

	// emitMu serializes publication so subscribers see snapshots in order.
	emitMu sync.Mutex

	mu     sync.Mutex
	snap   Snapshot
	phase  int
	epoch  uint64
	quit   chan struct{}
	exited chan struct{}
	subs   []subscriber
	nextID int
}

// New creates an idle simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		interval:  DefaultInterval,
		step:      DefaultStep,
		messages:  append([]string(nil), DefaultMessages...),
		newTicker: TimeTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to receive every published snapshot. The returned
// function removes the subscription.
func (s *Simulator) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns the current reading.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Running reports whether a tick source is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit != nil
}

// Start resets progress to zero with the first phase message and begins
// ticking. A tick source that is already running is stopped first.
func (s *Simulator) Start() {
	s.halt()

	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.phase = 0
	s.snap = Snapshot{Progress: 0, Message: s.messages[0]}
	snap := s.snap
	ticks, stopTicker := s.newTicker(s.interval)
	quit, exited := make(chan struct{}), make(chan struct{})
	s.quit, s.exited = quit, exited
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
	go s.run(epoch, ticks, stopTicker, quit, exited)
}

// Stop cancels the tick source, waits for it to release, and forces the
// terminal snapshot. It is safe to call without a prior Start.
func (s *Simulator) Stop() {
	s.halt()

	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.snap = Done()
	s.phase = len(s.messages) - 1
	snap := s.snap
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// halt stops the running tick goroutine, if any, and waits for it to exit.
// Bumping the epoch first makes any tick already in flight a no-op.
func (s *Simulator) halt() {
	s.mu.Lock()
	quit, exited := s.quit, s.exited
	s.quit, s.exited = nil, nil
	s.epoch++
	s.mu.Unlock()

	if quit != nil {
		close(quit)
		<-exited
	}
}

func (s *Simulator) run(epoch uint64, ticks <-chan time.Time, stopTicker func(), quit <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	defer stopTicker()

	for {
		select {
		case <-quit:
			return
		case <-ticks:
			s.tick(epoch)
		}
	}
}

func (s *Simulator) tick(epoch uint64) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	s.snap.Progress, s.phase = advance(s.snap.Progress, s.phase, s.step, len(s.messages))
	s.snap.Message = s.messages[s.phase]
	snap := s.snap
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Simulator) subscribersLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	return fns
}

func notify(fns []func(Snapshot), snap Snapshot) {
	for _, fn := range fns {
		fn(snap)
	}
}

// advance applies one tick: progress grows by step up to MaxProgress, and the
// phase moves forward for every threshold crossed (MaxProgress/phases apart),
// never past the last phase.
func advance(progress, phase, step, phases int) (int, int) {
	progress = min(progress+step, MaxProgress)
	if phases <= 0 {
		return progress, 0
	}
	width := MaxProgress / phases
	for phase < phases-1 && progress >= (phase+1)*width {
		phase++
	}
	return progress, phase
}
