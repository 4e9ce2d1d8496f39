package session

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/autosave"
	"github.com/goliatone/go-editor/internal/hydration"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/internal/mutation"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
)

// Session is one logical editing session over one page document. Mutations
// are expected to arrive from a single caller loop; the internal mutex only
// shields the document from the autosave timer goroutine.
type Session struct {
	mu       sync.Mutex
	manager  *Manager
	page     schema.Page
	doc      *document.Document
	engine   *mutation.Engine
	hydrator *hydration.Controller
	autosave *autosave.Scheduler
	logger   interfaces.Logger

	saving     bool
	publishing bool
	closed     bool
}

func newSession(m *Manager, page schema.Page) *Session {
	logger := logging.WithPage(m.logger, page.Key)

	engineOpts := []mutation.Option{
		mutation.WithClock(m.clock),
		mutation.WithLogger(logger),
	}
	if m.strict {
		engineOpts = append(engineOpts, mutation.WithRegistry(m.registry))
	}

	s := &Session{
		manager:  m,
		page:     page,
		doc:      document.New(page),
		engine:   mutation.NewEngine(engineOpts...),
		hydrator: hydration.NewController(page, hydration.WithNotices(m.notices), hydration.WithLogger(logger)),
		logger:   logger,
	}

	if m.autosaveEnabled {
		autosaveOpts := []autosave.Option{
			autosave.WithInterval(m.autosaveInterval),
			autosave.WithLogger(logging.WithPage(m.logger, page.Key)),
			autosave.WithNotices(m.notices),
		}
		if m.timerFactory != nil {
			autosaveOpts = append(autosaveOpts, autosave.WithTimerFactory(m.timerFactory))
		}
		s.autosave = autosave.NewScheduler(page.Key, s.flush, autosaveOpts...)
	}
	return s
}

// Page returns the session's page key.
func (s *Session) Page() string {
	return s.page.Key
}

// Document returns a snapshot of the current editable state.
func (s *Session) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Hydrated reports whether server state was applied this session.
func (s *Session) Hydrated() bool {
	return s.hydrator.Hydrated()
}

// Hydrate fetches the server document and installs it as local state, once
// per session. A missing backend document leaves the empty local document in
// place without consuming the hydration guard; fetch failures are reported
// and leave local state untouched so the operator can keep editing.
func (s *Session) Hydrate(ctx context.Context) (bool, error) {
	if s.hydrator.Hydrated() {
		return false, nil
	}

	fetched, err := s.manager.gateway.Fetch(ctx, s.page.Key)
	if err != nil {
		if errors.Is(err, interfaces.ErrPageNotFound) {
			s.logger.Debug("no server document yet, editing from defaults")
			return false, nil
		}
		s.logger.Error("fetch failed", "error", err)
		s.manager.notices.Error(s.page.Key, "could not load content, showing local state")
		return false, err
	}

	if s.manager.validator != nil {
		if err := s.manager.validator.ValidateDocument(fetched); err != nil {
			s.logger.Error("fetched document rejected", "error", err)
			return false, err
		}
	}

	applied, ok := s.hydrator.Apply(fetched)
	if !ok {
		return false, nil
	}

	s.mu.Lock()
	s.doc = applied
	s.mu.Unlock()
	return true, nil
}

// UpdateSection shallow-merges scalar fields into a section.
func (s *Session) UpdateSection(section string, fields map[string]any) error {
	return s.mutate(func() error {
		return s.engine.UpdateScalarFields(s.doc, section, fields)
	})
}

// UpdateGroup shallow-merges fields into a section's nested group.
func (s *Session) UpdateGroup(section, group string, fields map[string]any) error {
	return s.mutate(func() error {
		return s.engine.UpdateGroup(s.doc, section, group, fields)
	})
}

// AddItem appends an item to a collection, generating an id when absent.
func (s *Session) AddItem(section, collection string, item document.Item) (document.Item, error) {
	var stored document.Item
	err := s.mutate(func() error {
		var addErr error
		stored, addErr = s.engine.AddItem(s.doc, section, collection, item)
		return addErr
	})
	return stored, err
}

// UpdateItem merges fields into the identified collection item.
func (s *Session) UpdateItem(section, collection, id string, fields map[string]any) error {
	return s.mutate(func() error {
		return s.engine.UpdateItem(s.doc, section, collection, id, fields)
	})
}

// RemoveItem deletes the identified collection item.
func (s *Session) RemoveItem(section, collection, id string) error {
	return s.mutate(func() error {
		return s.engine.RemoveItem(s.doc, section, collection, id)
	})
}

// MoveItem swaps a collection item with its neighbour.
func (s *Session) MoveItem(section, collection string, index int, direction mutation.Direction) error {
	return s.mutate(func() error {
		return s.engine.MoveItem(s.doc, section, collection, index, direction)
	})
}

// Save persists a snapshot of the current document. A second explicit save
// while one is in flight is rejected rather than queued; mutations made while
// the save runs are untouched and picked up by the next save.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.saving {
		s.mu.Unlock()
		return interfaces.ErrSaveInFlight
	}
	s.saving = true
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	err := s.manager.gateway.Save(ctx, s.page.Key, snapshot)

	s.mu.Lock()
	s.saving = false
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("save failed", "error", err)
		s.manager.notices.Error(s.page.Key, "save failed, your edits are kept locally")
		return err
	}
	s.logger.Debug("document saved")
	return nil
}

// Publish saves the current draft and asks the backend to promote it. The
// local lifecycle status flips only after the server confirms.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.publishing {
		s.mu.Unlock()
		return interfaces.ErrSaveInFlight
	}
	s.publishing = true
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	err := s.manager.gateway.Save(ctx, s.page.Key, snapshot)
	if err == nil {
		err = s.manager.gateway.Publish(ctx, s.page.Key)
	}

	s.mu.Lock()
	s.publishing = false
	if err == nil {
		setErr := s.engine.SetStatus(s.doc, document.StatusPublished)
		if setErr != nil {
			err = setErr
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("publish failed", "error", err)
		s.manager.notices.Error(s.page.Key, "publish failed, the draft is unchanged")
		return err
	}
	s.manager.notices.Info(s.page.Key, "page published")
	return nil
}

// Reset replaces the document with the page defaults. Destructive: callers
// must gate it behind an explicit operator confirmation.
func (s *Session) Reset() error {
	defaults, err := s.engine.ResetToDefaults(s.page.Key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.doc = defaults
	s.mu.Unlock()
	s.noteMutation()
	s.logger.Info("document reset to defaults")
	return nil
}

// AutosaveState exposes the scheduler state, mainly for tests and UI badges.
func (s *Session) AutosaveState() autosave.State {
	if s.autosave == nil {
		return autosave.StateIdle
	}
	return s.autosave.State()
}

// Close tears the session down, cancelling any pending autosave so nothing
// persists into a dismantled context.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.autosave != nil {
		s.autosave.Close()
	}
}

func (s *Session) mutate(apply func() error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	err := apply()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.noteMutation()
	return nil
}

func (s *Session) noteMutation() {
	if s.autosave != nil {
		s.autosave.Note()
	}
}

// flush is the autosave callback: snapshot the latest state and persist it.
// Failures are already reported by the scheduler; local edits survive.
func (s *Session) flush(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.doc.Clone()
	s.mu.Unlock()
	return s.manager.gateway.Save(ctx, s.page.Key, snapshot)
}
