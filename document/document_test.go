package document_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/schema"
)

func TestNew_BuildsEmptyTreeFromSchema(t *testing.T) {
	page, ok := schema.Builtin().Page("home")
	if !ok {
		t.Fatal("home schema missing")
	}

	doc := document.New(page)
	if doc.Page != "home" || doc.Status != document.StatusDraft {
		t.Fatalf("doc header = %q/%q", doc.Page, doc.Status)
	}

	features := doc.Section("features")
	if features == nil {
		t.Fatal("features section missing")
	}
	if got := features.Fields["heading"]; got != "" {
		t.Fatalf("scalar zero = %v, want empty string", got)
	}
	if items, ok := features.Collections["items"]; !ok || len(items) != 0 {
		t.Fatalf("collections should initialize empty, got %v", items)
	}

	cta := doc.Section("cta")
	social, ok := cta.Groups["social"]
	if !ok {
		t.Fatal("cta social group missing")
	}
	if got := social["twitter"]; got != "" {
		t.Fatalf("group child zero = %v, want empty string", got)
	}
}

func TestClone_IsolatesEveryLevel(t *testing.T) {
	page, _ := schema.Builtin().Page("support")
	doc := document.New(page)

	sec := doc.EnsureSection("faq")
	sec.Fields["heading"] = "Questions"
	sec.Collections["items"] = document.Collection{
		{"id": "q1", "question": "How fast?", "topics": []any{"speed"}},
	}

	clone := doc.Clone()
	clone.EnsureSection("faq").Fields["heading"] = "Changed"
	clone.Section("faq").Collections["items"][0]["question"] = "Mutated"
	clone.Section("faq").Collections["items"][0]["topics"].([]any)[0] = "mutated"

	if got := doc.Section("faq").Fields["heading"]; got != "Questions" {
		t.Fatalf("clone leaked scalar write: %v", got)
	}
	if got := doc.Section("faq").Collections["items"][0]["question"]; got != "How fast?" {
		t.Fatalf("clone leaked item write: %v", got)
	}
	if got := doc.Section("faq").Collections["items"][0]["topics"].([]any)[0]; got != "speed" {
		t.Fatalf("clone leaked nested slice write: %v", got)
	}
}

func TestDefaults_AreDeterministic(t *testing.T) {
	first, ok := document.Defaults("about")
	if !ok {
		t.Fatal("no defaults for about")
	}
	second, _ := document.Defaults("about")

	if !reflect.DeepEqual(first, second) {
		t.Fatal("defaults must be identical across calls")
	}

	stats := first.Section("stats").Collections["items"]
	if len(stats) == 0 {
		t.Fatal("about defaults should seed stat items")
	}
	for _, item := range stats {
		if item.ID() == "" {
			t.Fatalf("seeded item missing id: %v", item)
		}
	}
}

func TestDefaults_UnknownPage(t *testing.T) {
	if _, ok := document.Defaults("landing"); ok {
		t.Fatal("unknown page must not have defaults")
	}
}

func TestDocument_JSONRoundTripPreservesEquality(t *testing.T) {
	doc, ok := document.Defaults("services")
	if !ok {
		t.Fatal("no defaults for services")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded document.Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !reflect.DeepEqual(doc, &decoded) {
		t.Fatal("document should survive a JSON round trip unchanged")
	}
}

func TestCollection_Find(t *testing.T) {
	c := document.Collection{
		{"id": "a"},
		{"id": "b"},
	}

	if i, ok := c.Find("b"); !ok || i != 1 {
		t.Fatalf("Find(b) = %d,%v", i, ok)
	}
	if _, ok := c.Find("z"); ok {
		t.Fatal("Find(z) should miss")
	}
}

func TestZeroItem(t *testing.T) {
	field, err := schema.Builtin().CheckCollection("home", "testimonials", "items")
	if err != nil {
		t.Fatalf("CheckCollection: %v", err)
	}

	item := document.ZeroItem(field, "t-1")
	if item.ID() != "t-1" {
		t.Fatalf("id = %q", item.ID())
	}
	if got := item["rating"]; got != float64(0) {
		t.Fatalf("number zero = %v (%T), want float64(0)", got, got)
	}
	if got := item["quote"]; got != "" {
		t.Fatalf("text zero = %v", got)
	}
}
