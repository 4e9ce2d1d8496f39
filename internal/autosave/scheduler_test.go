package autosave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-editor/internal/autosave"
)

// manualTimers collects scheduled callbacks so tests fire them explicitly.
type manualTimers struct {
	scheduled []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (m *manualTimers) factory(_ time.Duration, fn func()) autosave.Timer {
	t := &manualTimer{fn: fn}
	m.scheduled = append(m.scheduled, t)
	return t
}

func (m *manualTimers) fireLast(t *testing.T) {
	t.Helper()
	if len(m.scheduled) == 0 {
		t.Fatalf("no timer scheduled")
	}
	last := m.scheduled[len(m.scheduled)-1]
	if last.stopped {
		t.Fatalf("last timer was cancelled")
	}
	last.fn()
}

func TestBurstOfMutationsCollapsesToOneSave(t *testing.T) {
	timers := &manualTimers{}
	saves := 0
	sched := autosave.NewScheduler("about", func(context.Context) error {
		saves++
		return nil
	}, autosave.WithTimerFactory(timers.factory))

	for i := 0; i < 10; i++ {
		sched.Note()
	}
	if got := sched.State(); got != autosave.StatePending {
		t.Fatalf("expected pending got %s", got)
	}
	if len(timers.scheduled) != 10 {
		t.Fatalf("expected a fresh timer per mutation, got %d", len(timers.scheduled))
	}
	for _, timer := range timers.scheduled[:9] {
		if !timer.stopped {
			t.Fatalf("superseded timer not cancelled")
		}
	}

	timers.fireLast(t)
	if saves != 1 {
		t.Fatalf("expected exactly one save got %d", saves)
	}
	if got := sched.State(); got != autosave.StateIdle {
		t.Fatalf("expected idle after save got %s", got)
	}
}

func TestSaveFailureReturnsToIdleWithoutRetry(t *testing.T) {
	timers := &manualTimers{}
	saves := 0
	sched := autosave.NewScheduler("about", func(context.Context) error {
		saves++
		return errors.New("boom")
	}, autosave.WithTimerFactory(timers.factory))

	sched.Note()
	timers.fireLast(t)

	if saves != 1 {
		t.Fatalf("expected one attempt got %d", saves)
	}
	if got := sched.State(); got != autosave.StateIdle {
		t.Fatalf("expected idle after failure got %s", got)
	}
	if len(timers.scheduled) != 1 {
		t.Fatalf("failure must not schedule a retry timer")
	}
}

func TestMutationDuringSaveSchedulesNextSave(t *testing.T) {
	timers := &manualTimers{}
	var sched *autosave.Scheduler
	saves := 0
	sched = autosave.NewScheduler("about", func(context.Context) error {
		saves++
		if saves == 1 {
			// Edit arriving while the save call is in flight.
			sched.Note()
		}
		return nil
	}, autosave.WithTimerFactory(timers.factory))

	sched.Note()
	timers.fireLast(t)

	if got := sched.State(); got != autosave.StatePending {
		t.Fatalf("expected pending after mid-save mutation got %s", got)
	}
	timers.fireLast(t)
	if saves != 2 {
		t.Fatalf("expected the mid-save mutation to produce a second save, got %d", saves)
	}
}

func TestCloseCancelsPendingTimer(t *testing.T) {
	timers := &manualTimers{}
	saves := 0
	sched := autosave.NewScheduler("about", func(context.Context) error {
		saves++
		return nil
	}, autosave.WithTimerFactory(timers.factory))

	sched.Note()
	sched.Close()

	if !timers.scheduled[0].stopped {
		t.Fatalf("expected pending timer cancelled on close")
	}
	if got := sched.State(); got != autosave.StateIdle {
		t.Fatalf("expected idle after close got %s", got)
	}

	sched.Note()
	if len(timers.scheduled) != 1 {
		t.Fatalf("mutations after close must not schedule timers")
	}
	if saves != 0 {
		t.Fatalf("no save may run after close")
	}
}
