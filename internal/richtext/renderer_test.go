package richtext_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-editor/internal/richtext"
)

func TestRenderer_BasicMarkdown(t *testing.T) {
	r := richtext.NewRenderer()

	html, err := r.HTML("# Heading\n\nSome **bold** copy.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("rendered html = %q", html)
	}
}

func TestRenderer_GFMTables(t *testing.T) {
	r := richtext.NewRenderer()

	html, err := r.HTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Fatalf("tables should render, got %q", html)
	}
}

func TestRenderer_EmptyInput(t *testing.T) {
	r := richtext.NewRenderer()

	html, err := r.HTML("")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Fatalf("empty source should render empty, got %q", html)
	}
}
