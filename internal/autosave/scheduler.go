package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

// DefaultQuietInterval is how long the document must stay untouched before an
// automatic save fires.
const DefaultQuietInterval = 10 * time.Second

// State identifies where the scheduler sits in its Idle -> Pending -> Saving
// cycle.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSaving  State = "saving"
)

// Flush persists the current document snapshot. The scheduler calls it from a
// timer goroutine; implementations snapshot their own state.
type Flush func(ctx context.Context) error

// Timer is the cancellable handle the scheduler holds while pending.
type Timer interface {
	Stop() bool
}

// TimerFactory builds timers; replaced in tests for deterministic firing.
type TimerFactory func(d time.Duration, fn func()) Timer

// Scheduler debounces background persistence: each mutation restarts the
// quiet-interval timer, so a burst of edits produces exactly one save with
// the final state. Failures are reported and dropped; the next mutation or an
// explicit save retries naturally.
type Scheduler struct {
	mu       sync.Mutex
	page     string
	interval time.Duration
	flush    Flush
	newTimer TimerFactory
	logger   interfaces.Logger
	notices  interfaces.NoticeSink

	state  State
	timer  Timer
	closed bool
}

// Option customizes scheduler behaviour.
type Option func(*Scheduler)

// WithInterval overrides the quiet interval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithTimerFactory overrides timer construction, mainly for tests.
func WithTimerFactory(factory TimerFactory) Option {
	return func(s *Scheduler) {
		if factory != nil {
			s.newTimer = factory
		}
	}
}

// WithLogger injects the scheduler logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotices routes save failures to the supplied sink.
func WithNotices(sink interfaces.NoticeSink) Option {
	return func(s *Scheduler) {
		if sink != nil {
			s.notices = sink
		}
	}
}

// NewScheduler builds a scheduler for one page. The flush callback is
// required.
func NewScheduler(page string, flush Flush, opts ...Option) *Scheduler {
	if flush == nil {
		panic("autosave: flush callback cannot be nil")
	}
	s := &Scheduler{
		page:     page,
		interval: DefaultQuietInterval,
		flush:    flush,
		newTimer: func(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) },
		logger:   logging.NoOp(),
		notices:  interfaces.NoOpNotices(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current scheduler state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Note records a mutation: any outstanding timer is cancelled and the quiet
// interval restarts. Mutations arriving while a save is in flight schedule
// the next save rather than blocking on the running one.
func (s *Scheduler) Note() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.newTimer(s.interval, s.fire)
	if s.state != StateSaving {
		s.state = StatePending
	}
}

// Close cancels any pending timer. Further mutations are ignored, so a torn
// down session can never trigger a save.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.state == StatePending {
		s.state = StateIdle
	}
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.state = StateSaving
	s.mu.Unlock()

	err := s.flush(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Error("autosave failed", "page", s.page, "error", err)
		s.notices.Error(s.page, "autosave failed, your edits are kept locally")
	}
	// A mutation during the save scheduled the next timer already.
	if s.timer != nil {
		s.state = StatePending
		return
	}
	s.state = StateIdle
}
