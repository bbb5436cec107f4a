package orchestration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/brand/brandtest"
	"github.com/agbru/brandgen/internal/progress"
)

const deadlockMission = "An independent bicycle repair shop."

// stubGenerator simulates various remote behaviors for deadlock testing.
type stubGenerator struct {
	behavior string // "instant", "slow", "error", "blocking"
	delay    time.Duration
}

func (g stubGenerator) wait(ctx context.Context) error {
	switch g.behavior {
	case "slow":
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.delay):
		}
	case "blocking":
		<-ctx.Done()
		return ctx.Err()
	case "error":
		return errors.New("simulated error")
	}
	return nil
}

func (g stubGenerator) GenerateIdentity(ctx context.Context, _ string) (brand.Identity, error) {
	if err := g.wait(ctx); err != nil {
		return brand.Identity{}, err
	}
	return brandtest.Identity(), nil
}

func (g stubGenerator) GenerateLogos(ctx context.Context, _ string) (brand.Images, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	return brandtest.Images(brand.LogoCount), nil
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that Generate completes
// under various generator combinations while the simulator ticks fast and a
// subscriber reads the machine on every update.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name     string
		identity stubGenerator
		logos    stubGenerator
		want     Phase
	}{
		{"all_instant", stubGenerator{behavior: "instant"}, stubGenerator{behavior: "instant"}, PhaseSuccess},
		{"mixed_instant_and_slow", stubGenerator{behavior: "instant"}, stubGenerator{behavior: "slow", delay: 50 * time.Millisecond}, PhaseSuccess},
		{"slow_identity", stubGenerator{behavior: "slow", delay: 50 * time.Millisecond}, stubGenerator{behavior: "instant"}, PhaseSuccess},
		{"mixed_with_errors", stubGenerator{behavior: "error"}, stubGenerator{behavior: "slow", delay: 20 * time.Millisecond}, PhaseError},
		{"both_errors", stubGenerator{behavior: "error"}, stubGenerator{behavior: "error"}, PhaseError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sim := progress.New(progress.WithInterval(time.Millisecond))
			o := New(tc.identity, tc.logos, WithSimulator(sim))
			o.Machine().Subscribe(func(State) { _ = o.Machine().State() })

			done := make(chan State, 1)
			go func() {
				st, _ := o.Generate(context.Background(), deadlockMission)
				done <- st
			}()

			select {
			case st := <-done:
				if st.Phase != tc.want {
					t.Errorf("expected phase %s, got %s", tc.want, st.Phase)
				}
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: Generate did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context while both calls block ends the attempt in the error phase.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	blocking := stubGenerator{behavior: "blocking"}
	o := New(blocking, blocking, WithSimulator(progress.New(progress.WithInterval(time.Millisecond))))

	done := make(chan State, 1)
	go func() {
		st, _ := o.Generate(ctx, deadlockMission)
		done <- st
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case st := <-done:
		if st.Phase != PhaseError {
			t.Errorf("expected error phase after cancellation, got %s", st.Phase)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}

// TestOrchestrationNoDeadlock_ConcurrentReaders hammers State and Snapshot
// from many goroutines across repeated attempts.
func TestOrchestrationNoDeadlock_ConcurrentReaders(t *testing.T) {
	sim := progress.New(progress.WithInterval(time.Millisecond))
	o := New(stubGenerator{behavior: "slow", delay: 5 * time.Millisecond}, stubGenerator{behavior: "instant"}, WithSimulator(sim))

	stop := make(chan struct{})
	var readers sync.WaitGroup
	for i := 0; i < 8; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = o.Machine().State()
					_ = sim.Snapshot()
				}
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for i := 0; i < 20; i++ {
			_, _ = o.Generate(context.Background(), deadlockMission)
		}
	}()

	select {
	case <-finished:
	case <-time.After(10 * time.Second):
		t.Fatal("DEADLOCK: repeated attempts did not complete")
	}
	close(stop)
	readers.Wait()

	if st := o.Machine().State(); st.Phase != PhaseSuccess {
		t.Errorf("expected final phase success, got %s", st.Phase)
	}
}
