// Package stores provides process-wide observable state containers with a
// defined init, update, and reset lifecycle. Each dashboard concern (user,
// cart, UI chrome, filters, notifications, preferences) gets its own store
// so state never leaks between them.
package stores

import (
	"sync"

	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

// Listener observes state snapshots after each applied change.
type Listener[T any] func(T)

// Unsubscribe removes a previously registered listener.
type Unsubscribe func()

// CloneFunc deep-copies a state value. States holding only value types can
// rely on the default identity clone; anything carrying slices or maps must
// supply one so snapshots stay isolated.
type CloneFunc[T any] func(T) T

// Store holds one state value. Reads return snapshots; writes replace the
// value, persist it when a persister is attached, and fan out to listeners.
type Store[T any] struct {
	mu        sync.RWMutex
	name      string
	initial   T
	value     T
	clone     CloneFunc[T]
	persister Persister[T]
	logger    interfaces.Logger

	listeners map[int]Listener[T]
	nextID    int
}

// Option customizes store construction.
type Option[T any] func(*Store[T])

// WithClone installs a deep-copy function for snapshot isolation.
func WithClone[T any](clone CloneFunc[T]) Option[T] {
	return func(s *Store[T]) {
		if clone != nil {
			s.clone = clone
		}
	}
}

// WithPersister attaches durable storage. The persisted value, when present,
// wins over the initial value at construction time.
func WithPersister[T any](p Persister[T]) Option[T] {
	return func(s *Store[T]) {
		s.persister = p
	}
}

// WithLogger overrides the store logger.
func WithLogger[T any](logger interfaces.Logger) Option[T] {
	return func(s *Store[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a store seeded with initial. When a persister holds a previous
// value it is loaded instead; load failures fall back to initial so a corrupt
// file never blocks startup.
func New[T any](name string, initial T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		name:      name,
		initial:   initial,
		clone:     func(v T) T { return v },
		logger:    logging.NoOp(),
		listeners: map[int]Listener[T]{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.value = s.clone(s.initial)

	if s.persister != nil {
		loaded, found, err := s.persister.Load()
		switch {
		case err != nil:
			s.logger.Warn("could not load persisted state, using defaults", "store", name, "error", err)
		case found:
			s.value = loaded
		}
	}
	return s
}

// Name returns the store identifier, used for logging and persistence paths.
func (s *Store[T]) Name() string {
	return s.name
}

// Get returns a snapshot of the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

// Set replaces the value. The in-memory state always updates and listeners
// always fire; a persistence failure is returned so callers can surface it.
func (s *Store[T]) Set(value T) error {
	s.mu.Lock()
	s.value = s.clone(value)
	snapshot := s.clone(s.value)
	listeners := s.listenerList()
	s.mu.Unlock()

	s.notify(listeners, snapshot)
	return s.persist(snapshot)
}

// Update applies fn to a snapshot and stores the result.
func (s *Store[T]) Update(fn func(T) T) error {
	s.mu.Lock()
	s.value = s.clone(fn(s.clone(s.value)))
	snapshot := s.clone(s.value)
	listeners := s.listenerList()
	s.mu.Unlock()

	s.notify(listeners, snapshot)
	return s.persist(snapshot)
}

// Reset restores the initial value and clears any persisted copy.
func (s *Store[T]) Reset() error {
	s.mu.Lock()
	s.value = s.clone(s.initial)
	snapshot := s.clone(s.value)
	listeners := s.listenerList()
	s.mu.Unlock()

	s.notify(listeners, snapshot)
	if s.persister == nil {
		return nil
	}
	return s.persister.Clear()
}

// Subscribe registers a listener for future changes. The listener does not
// receive the current value; call Get for that.
func (s *Store[T]) Subscribe(listener Listener[T]) Unsubscribe {
	if listener == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) listenerList() []Listener[T] {
	out := make([]Listener[T], 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}

func (s *Store[T]) notify(listeners []Listener[T], snapshot T) {
	for _, l := range listeners {
		l(s.clone(snapshot))
	}
}

func (s *Store[T]) persist(snapshot T) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(snapshot); err != nil {
		s.logger.Error("could not persist state", "store", s.name, "error", err)
		return err
	}
	return nil
}
