package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/validation"
	"github.com/goliatone/go-editor/schema"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	v, err := validation.NewValidator(schema.Builtin())
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestValidDocumentPasses(t *testing.T) {
	v := newValidator(t)
	doc, _ := document.Defaults("about")

	if err := v.ValidateDocument(doc); err != nil {
		t.Fatalf("expected valid document got %v", err)
	}
}

func TestWrongPageKeyFails(t *testing.T) {
	v := newValidator(t)
	doc, _ := document.Defaults("about")
	doc.Page = "home"

	err := v.ValidateDocument(doc)
	if !errors.Is(err, validation.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid got %v", err)
	}
	var payloadErr *validation.PayloadValidationError
	if !errors.As(err, &payloadErr) || len(payloadErr.Issues) == 0 {
		t.Fatalf("expected located issues got %v", err)
	}
}

func TestBadStatusFails(t *testing.T) {
	v := newValidator(t)
	doc, _ := document.Defaults("about")
	doc.Status = document.Status("live")

	if err := v.ValidateDocument(doc); !errors.Is(err, validation.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid got %v", err)
	}
}

func TestUnknownPagePassesThrough(t *testing.T) {
	v := newValidator(t)
	doc := &document.Document{Page: "landing", Status: document.StatusDraft}

	if err := v.ValidateDocument(doc); err != nil {
		t.Fatalf("unknown pages must pass through, got %v", err)
	}
}
