// Package editor is a content dashboard editing engine: declarative page
// schemas, a document model with additive hydration, pure mutation
// operations, debounced autosave, and a pluggable persistence gateway.
package editor

import (
	"sync"

	"github.com/goliatone/go-editor/internal/commands"
	"github.com/goliatone/go-editor/internal/di"
	"github.com/goliatone/go-editor/internal/icons"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/internal/session"
	"github.com/goliatone/go-editor/internal/stores"
	"github.com/goliatone/go-editor/internal/validation"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
)

// Session exports the editing session type for consumers of the editor package.
type Session = session.Session

// SessionManager exports the session manager type.
type SessionManager = session.Manager

// Gateway exports the persistence gateway contract.
type Gateway = interfaces.Gateway

// NoticeSink exports the notice sink contract.
type NoticeSink = interfaces.NoticeSink

// Stores exports the builtin state store bundle.
type Stores = stores.Bundle

// IconRegistry exports the icon registry type.
type IconRegistry = icons.Registry

// Validator exports the document validator type.
type Validator = validation.Validator

// SaveContentCommand exports the save command message.
type SaveContentCommand = commands.SaveContentCommand

// PublishContentCommand exports the publish command message.
type PublishContentCommand = commands.PublishContentCommand

// ResetContentCommand exports the reset command message.
type ResetContentCommand = commands.ResetContentCommand

// Module represents the top level editor runtime façade.
type Module struct {
	container *di.Container

	mu       sync.Mutex
	sessions map[string]*session.Session

	saveHandler    *commands.SaveContentHandler
	publishHandler *commands.PublishContentHandler
	resetHandler   *commands.ResetContentHandler
}

// New constructs an editor module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}

	m := &Module{
		container: container,
		sessions:  map[string]*session.Session{},
	}

	logger := logging.NoOp()
	if provider := container.LoggerProvider(); provider != nil {
		logger = logging.CommandLogger(provider)
	}
	m.saveHandler = commands.NewSaveContentHandler(m, logger)
	m.publishHandler = commands.NewPublishContentHandler(m, logger)
	m.resetHandler = commands.NewResetContentHandler(m, logger)

	return m, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Sessions returns the session manager.
func (m *Module) Sessions() *SessionManager {
	return m.container.Sessions()
}

// Session returns the module's long-lived session for a page, opening one on
// first use. Commands route through this so repeated operations on the same
// page share editing state.
func (m *Module) Session(page string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[page]; ok {
		return sess, nil
	}
	sess, err := m.container.Sessions().Open(page)
	if err != nil {
		return nil, err
	}
	m.sessions[page] = sess
	return sess, nil
}

// Schemas returns the page schema registry.
func (m *Module) Schemas() *schema.Registry {
	return m.container.SchemaRegistry()
}

// Stores returns the builtin client-side state stores.
func (m *Module) Stores() *Stores {
	return m.container.Stores()
}

// Icons returns the icon registry.
func (m *Module) Icons() *IconRegistry {
	return m.container.Icons()
}

// Gateway returns the configured persistence gateway.
func (m *Module) Gateway() Gateway {
	return m.container.Gateway()
}

// SaveContent returns the save command handler.
func (m *Module) SaveContent() *commands.SaveContentHandler {
	return m.saveHandler
}

// PublishContent returns the publish command handler.
func (m *Module) PublishContent() *commands.PublishContentHandler {
	return m.publishHandler
}

// ResetContent returns the reset command handler.
func (m *Module) ResetContent() *commands.ResetContentHandler {
	return m.resetHandler
}

// Close tears down every open session and releases container resources.
func (m *Module) Close() error {
	m.mu.Lock()
	for page, sess := range m.sessions {
		sess.Close()
		delete(m.sessions, page)
	}
	m.mu.Unlock()
	return m.container.Close()
}

var _ commands.SessionResolver = (*Module)(nil)
