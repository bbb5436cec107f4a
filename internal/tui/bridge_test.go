package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/agbru/brandgen/internal/effects"
	"github.com/agbru/brandgen/internal/orchestration"
)

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{} // program is nil
	// Should not panic
	ref.Send(StateMsg{})
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{} // nil program - Send is a no-op

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Send(StateMsg{})
		}()
	}
	wg.Wait()
}

func TestForwardStates_Unsubscribe(t *testing.T) {
	o := newTestOrchestrator(nil, nil)
	cancel := forwardStates(&programRef{}, o.Machine())
	cancel()
	// A second cancel must be harmless.
	cancel()
}

func TestGenerateCmd(t *testing.T) {
	o := newTestOrchestrator(nil, errors.New("quota exceeded"))

	msg := generateCmd(context.Background(), o, "An artisanal bakery")()
	done, ok := msg.(GenerationDoneMsg)
	if !ok {
		t.Fatalf("expected GenerationDoneMsg, got %T", msg)
	}
	if done.Err == nil {
		t.Fatal("expected an error")
	}
	if done.State.Phase != orchestration.PhaseError {
		t.Errorf("expected error phase, got %s", done.State.Phase)
	}
	if done.State.Message != "Failed to generate brand identity. quota exceeded" {
		t.Errorf("unexpected message %q", done.State.Message)
	}
}

func TestCopyCmd(t *testing.T) {
	clip := &recordingClipboard{}
	d := effects.NewDispatcher(nil, clip, true, nil)

	msg := copyCmd(d, "#8B5A2B", "#8B5A2B")()
	copied, ok := msg.(CopiedMsg)
	if !ok || !copied.OK {
		t.Fatalf("expected successful CopiedMsg, got %#v", msg)
	}
	if got := clip.texts(); len(got) != 1 || got[0] != "#8B5A2B" {
		t.Errorf("unexpected clipboard contents %v", got)
	}

	failing := effects.NewDispatcher(nil, &recordingClipboard{err: effects.ErrClipboardUnavailable}, true, nil)
	if msg := copyCmd(failing, "x", "x")().(CopiedMsg); msg.OK {
		t.Error("expected failed copy to report OK=false")
	}
}

func TestWatchContextCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := watchContextCmd(ctx)()
	cc, ok := msg.(ContextCancelledMsg)
	if !ok {
		t.Fatalf("expected ContextCancelledMsg, got %T", msg)
	}
	if !errors.Is(cc.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", cc.Err)
	}
}
