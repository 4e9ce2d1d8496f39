package session

import (
	"errors"
	"time"

	"github.com/goliatone/go-editor/internal/autosave"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/internal/richtext"
	"github.com/goliatone/go-editor/internal/validation"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
)

var (
	ErrUnknownPage   = errors.New("session: unknown page")
	ErrSessionClosed = errors.New("session: session closed")
)

// Manager opens editing sessions, one per page document. It owns the pieces
// shared between sessions: the schema registry, the persistence gateway, the
// document validator, and the richtext renderer.
type Manager struct {
	registry  *schema.Registry
	gateway   interfaces.Gateway
	notices   interfaces.NoticeSink
	logger    interfaces.Logger
	validator *validation.Validator
	renderer  *richtext.Renderer

	strict           bool
	autosaveEnabled  bool
	autosaveInterval time.Duration
	timerFactory     autosave.TimerFactory
	clock            func() time.Time
}

// ManagerOption customizes manager behaviour.
type ManagerOption func(*Manager)

// WithNotices routes engine notices to the supplied sink.
func WithNotices(sink interfaces.NoticeSink) ManagerOption {
	return func(m *Manager) {
		if sink != nil {
			m.notices = sink
		}
	}
}

// WithLoggerProvider scopes session logging through the supplied provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) ManagerOption {
	return func(m *Manager) {
		m.logger = logging.SessionLogger(provider)
	}
}

// WithValidator enables JSON Schema validation of fetched documents.
func WithValidator(v *validation.Validator) ManagerOption {
	return func(m *Manager) {
		m.validator = v
	}
}

// WithStrictMutations validates every mutation path against the schema
// registry before applying it.
func WithStrictMutations() ManagerOption {
	return func(m *Manager) {
		m.strict = true
	}
}

// WithAutosaveInterval overrides the quiet interval between the last mutation
// and the automatic save.
func WithAutosaveInterval(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.autosaveInterval = d
		}
	}
}

// WithAutosaveDisabled turns background persistence off; only explicit saves
// reach the gateway.
func WithAutosaveDisabled() ManagerOption {
	return func(m *Manager) {
		m.autosaveEnabled = false
	}
}

// WithTimerFactory overrides autosave timer construction, mainly for tests.
func WithTimerFactory(factory autosave.TimerFactory) ManagerOption {
	return func(m *Manager) {
		if factory != nil {
			m.timerFactory = factory
		}
	}
}

// WithClock overrides the clock used to stamp mutations.
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewManager builds a session manager over the supplied registry and gateway.
func NewManager(registry *schema.Registry, gateway interfaces.Gateway, opts ...ManagerOption) *Manager {
	m := &Manager{
		registry:         registry,
		gateway:          gateway,
		notices:          interfaces.NoOpNotices(),
		logger:           logging.NoOp(),
		renderer:         richtext.NewRenderer(),
		autosaveEnabled:  true,
		autosaveInterval: autosave.DefaultQuietInterval,
		clock:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Pages returns the page keys sessions can be opened for.
func (m *Manager) Pages() []string {
	return m.registry.Keys()
}

// Open starts an editing session for a page key.
func (m *Manager) Open(page string) (*Session, error) {
	pageSchema, ok := m.registry.Page(page)
	if !ok {
		return nil, ErrUnknownPage
	}
	return newSession(m, pageSchema), nil
}
