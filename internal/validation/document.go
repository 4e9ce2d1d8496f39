package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/schema"
)

var ErrDocumentInvalid = errors.New("validation: document invalid")

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Validator checks fetched documents against JSON Schemas generated from the
// page schema registry, so malformed backend payloads are rejected before
// they reach local editable state.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator compiles one JSON Schema per registered page.
func NewValidator(registry *schema.Registry) (*Validator, error) {
	v := &Validator{compiled: map[string]*jsonschema.Schema{}}
	for _, page := range registry.Pages() {
		compiled, err := compileSchema(DocumentSchema(page))
		if err != nil {
			return nil, fmt.Errorf("validation: compile schema for page %q: %w", page.Key, err)
		}
		v.compiled[page.Key] = compiled
	}
	return v, nil
}

// ValidateDocument checks a document against its page's generated schema.
// Unknown pages pass through untouched.
func (v *Validator) ValidateDocument(doc *document.Document) error {
	if doc == nil {
		return &PayloadValidationError{Cause: errors.New("document is nil")}
	}
	compiled, ok := v.compiled[doc.Page]
	if !ok {
		return nil
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return &PayloadValidationError{Cause: err}
	}
	var value any
	if err := json.Unmarshal(encoded, &value); err != nil {
		return &PayloadValidationError{Cause: err}
	}

	if err := compiled.Validate(value); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &PayloadValidationError{Issues: collectIssues(validationErr), Cause: err}
		}
		return &PayloadValidationError{Cause: err}
	}
	return nil
}

// DocumentSchema generates the JSON Schema for one page's document envelope.
// Section bodies stay permissive on purpose: hydration reconciles structure
// additively, the schema only rejects payloads that are not documents at all.
func DocumentSchema(page schema.Page) map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"page", "status", "sections"},
		"properties": map[string]any{
			"page": map[string]any{
				"type":  "string",
				"const": page.Key,
			},
			"status": map[string]any{
				"type": "string",
				"enum": []string{string(document.StatusDraft), string(document.StatusPublished)},
			},
			"last_updated": map[string]any{
				"type": "string",
			},
			"sections": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"fields": map[string]any{
							"type":                 "object",
							"additionalProperties": true,
						},
						"groups": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type":                 "object",
								"additionalProperties": true,
							},
						},
						"collections": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type":                 "object",
									"additionalProperties": true,
								},
							},
						},
					},
				},
			},
		},
	}
}

func compileSchema(raw map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
