package identity_test

import (
	"testing"

	"github.com/goliatone/go-editor/internal/identity"
)

func TestNewItemID_Unique(t *testing.T) {
	a := identity.NewItemID()
	b := identity.NewItemID()

	if a == "" || b == "" {
		t.Fatal("item ids must not be empty")
	}
	if a == b {
		t.Fatalf("item ids must be unique, both %q", a)
	}
}

func TestSeedItemID_Deterministic(t *testing.T) {
	first := identity.SeedItemID("about", "stats", "items", "clients")
	second := identity.SeedItemID("about", "stats", "items", "clients")

	if first != second {
		t.Fatalf("seed ids must be stable: %q vs %q", first, second)
	}

	other := identity.SeedItemID("about", "stats", "items", "projects")
	if first == other {
		t.Fatal("different keys must hash to different ids")
	}
}

func TestDocumentUUID_DistinctPerPage(t *testing.T) {
	if identity.DocumentUUID("about") == identity.DocumentUUID("blog") {
		t.Fatal("document uuids must differ per page")
	}
	if identity.DocumentUUID("about") != identity.DocumentUUID("about") {
		t.Fatal("document uuid must be stable per page")
	}
}
