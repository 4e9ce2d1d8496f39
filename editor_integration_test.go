package editor_test

import (
	"context"
	"testing"

	editor "github.com/goliatone/go-editor"
	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/di"
	"github.com/goliatone/go-editor/internal/storage"
)

func TestModule_EditSavePublishLifecycle(t *testing.T) {
	ctx := context.Background()

	cfg := editor.DefaultConfig()
	cfg.Autosave.Enabled = false

	gateway := storage.NewGateway(storage.NewMemoryRepository())
	module, err := editor.New(cfg, di.WithGateway(gateway))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	sess, err := module.Session("about")
	if err != nil {
		t.Fatalf("Session(about): %v", err)
	}

	if _, err := sess.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if err := sess.UpdateSection("hero", map[string]any{"title": "Who we are"}); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	item, err := sess.AddItem("team", "members", document.Item{"name": "Dana", "role": "Editor"})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.ID() == "" {
		t.Fatal("added item should receive an id")
	}

	if err := module.SaveContent().Execute(ctx, editor.SaveContentCommand{Page: "about"}); err != nil {
		t.Fatalf("SaveContent: %v", err)
	}
	if err := module.PublishContent().Execute(ctx, editor.PublishContentCommand{Page: "about"}); err != nil {
		t.Fatalf("PublishContent: %v", err)
	}

	persisted, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if persisted.Status != document.StatusPublished {
		t.Fatalf("persisted status = %v, want published", persisted.Status)
	}
	if got := persisted.Section("hero").Fields["title"]; got != "Who we are" {
		t.Fatalf("persisted title = %v", got)
	}
	members := persisted.Section("team").Collections["members"]
	if len(members) == 0 || members[0]["name"] != "Dana" {
		t.Fatalf("persisted members = %v", members)
	}
}

func TestModule_SecondModuleHydratesPersistedContent(t *testing.T) {
	ctx := context.Background()

	cfg := editor.DefaultConfig()
	cfg.Autosave.Enabled = false
	gateway := storage.NewGateway(storage.NewMemoryRepository())

	first, err := editor.New(cfg, di.WithGateway(gateway))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sess, err := first.Session("services")
	if err != nil {
		t.Fatalf("Session(services): %v", err)
	}
	if err := sess.UpdateSection("hero", map[string]any{"title": "What we do"}); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}
	if err := sess.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := editor.New(cfg, di.WithGateway(gateway))
	if err != nil {
		t.Fatalf("New second module: %v", err)
	}
	defer second.Close()

	fresh, err := second.Session("services")
	if err != nil {
		t.Fatalf("Session(services): %v", err)
	}
	applied, err := fresh.Hydrate(ctx)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if !applied {
		t.Fatal("second module should hydrate persisted state")
	}
	if got := fresh.Document().Section("hero").Fields["title"]; got != "What we do" {
		t.Fatalf("hydrated title = %v", got)
	}
}

func TestModule_StoresAndIconsAreWired(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.Autosave.Enabled = false

	module, err := editor.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	ui := module.Stores().UI.Get()
	if !ui.SidebarOpen {
		t.Fatalf("ui defaults = %+v", ui)
	}

	if got := module.Icons().Render("not-a-real-icon", 16); got == "" {
		t.Fatal("unknown icon must render the fallback glyph")
	}

	if got := len(module.Schemas().Keys()); got != 5 {
		t.Fatalf("builtin schema count = %d, want 5", got)
	}
}
