package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/commands"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/internal/session"
	"github.com/goliatone/go-editor/internal/storage"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
	goerrors "github.com/goliatone/go-errors"
)

// cachingResolver keeps one open session per page, the way the module facade
// does, so repeated commands hit the same editing state.
type cachingResolver struct {
	mu       sync.Mutex
	manager  *session.Manager
	sessions map[string]*session.Session
}

func newResolver(gateway interfaces.Gateway) *cachingResolver {
	return &cachingResolver{
		manager:  session.NewManager(schema.Builtin(), gateway, session.WithAutosaveDisabled()),
		sessions: map[string]*session.Session{},
	}
}

func (r *cachingResolver) Session(page string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[page]; ok {
		return sess, nil
	}
	sess, err := r.manager.Open(page)
	if err != nil {
		return nil, err
	}
	r.sessions[page] = sess
	return sess, nil
}

func TestSaveContentCommand_PersistsDraft(t *testing.T) {
	ctx := context.Background()
	gateway := storage.NewGateway(storage.NewMemoryRepository())
	resolver := newResolver(gateway)

	sess, err := resolver.Session("about")
	if err != nil {
		t.Fatalf("Session(about): %v", err)
	}
	if err := sess.UpdateSection("hero", map[string]any{"title": "Saved by command"}); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	handler := commands.NewSaveContentHandler(resolver, logging.NoOp())
	if err := handler.Execute(ctx, commands.SaveContentCommand{Page: "about"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	persisted, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := persisted.Section("hero").Fields["title"]; got != "Saved by command" {
		t.Fatalf("persisted title = %v", got)
	}
}

func TestSaveContentCommand_RequiresPage(t *testing.T) {
	handler := commands.NewSaveContentHandler(newResolver(storage.NewGateway(storage.NewMemoryRepository())), logging.NoOp())

	err := handler.Execute(context.Background(), commands.SaveContentCommand{})
	if err == nil {
		t.Fatal("expected validation error for empty page")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestPublishContentCommand_PromotesDraft(t *testing.T) {
	ctx := context.Background()
	gateway := storage.NewGateway(storage.NewMemoryRepository())
	resolver := newResolver(gateway)

	handler := commands.NewPublishContentHandler(resolver, logging.NoOp())
	if err := handler.Execute(ctx, commands.PublishContentCommand{Page: "home"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	persisted, err := gateway.Fetch(ctx, "home")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if persisted.Status != document.StatusPublished {
		t.Fatalf("status = %v, want published", persisted.Status)
	}
}

func TestResetContentCommand_RequiresConfirmation(t *testing.T) {
	resolver := newResolver(storage.NewGateway(storage.NewMemoryRepository()))
	handler := commands.NewResetContentHandler(resolver, logging.NoOp())

	err := handler.Execute(context.Background(), commands.ResetContentCommand{Page: "blog"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("unconfirmed reset error = %v, want validation failure", err)
	}
}

func TestResetContentCommand_RestoresDefaults(t *testing.T) {
	ctx := context.Background()
	resolver := newResolver(storage.NewGateway(storage.NewMemoryRepository()))

	sess, err := resolver.Session("blog")
	if err != nil {
		t.Fatalf("Session(blog): %v", err)
	}
	if err := sess.UpdateSection("hero", map[string]any{"title": "Scratch"}); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	handler := commands.NewResetContentHandler(resolver, logging.NoOp())
	if err := handler.Execute(ctx, commands.ResetContentCommand{Page: "blog", Confirm: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	defaults, ok := document.Defaults("blog")
	if !ok {
		t.Fatal("no defaults for blog")
	}
	if got := sess.Document().Section("hero").Fields["title"]; got != defaults.Section("hero").Fields["title"] {
		t.Fatalf("title after reset = %v", got)
	}
}

func TestCommands_UnknownPageSurfacesSessionError(t *testing.T) {
	handler := commands.NewSaveContentHandler(newResolver(storage.NewGateway(storage.NewMemoryRepository())), logging.NoOp())

	err := handler.Execute(context.Background(), commands.SaveContentCommand{Page: "landing"})
	if !errors.Is(err, session.ErrUnknownPage) {
		t.Fatalf("unknown page error = %v, want ErrUnknownPage", err)
	}
}
