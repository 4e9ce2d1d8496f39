package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldType enumerates the editable field kinds the dashboard understands.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeRichText FieldType = "richtext"
	TypeBoolean  FieldType = "boolean"
	TypeNumber   FieldType = "number"
	TypeTags     FieldType = "tags"
	TypeImage    FieldType = "image"
	TypeGroup    FieldType = "group"
	TypeArray    FieldType = "array"
)

var knownTypes = map[FieldType]struct{}{
	TypeText:     {},
	TypeTextarea: {},
	TypeRichText: {},
	TypeBoolean:  {},
	TypeNumber:   {},
	TypeTags:     {},
	TypeImage:    {},
	TypeGroup:    {},
	TypeArray:    {},
}

// Valid reports whether the field type is one of the supported kinds.
func (t FieldType) Valid() bool {
	_, ok := knownTypes[t]
	return ok
}

// Field describes one editable value. Group and array fields carry child
// descriptors; array fields additionally carry an ItemLabel used by the UI
// when rendering "Add <ItemLabel>" affordances.
type Field struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Type      FieldType `json:"type"`
	ItemLabel string    `json:"item_label,omitempty"`
	Fields    []Field   `json:"fields,omitempty"`
}

// Validate checks the descriptor is internally consistent.
func (f Field) Validate() error {
	errs := validation.Errors{}
	if f.Name == "" {
		errs["name"] = validation.NewError("schema.field.name_required", "field name is required")
	}
	if f.Label == "" {
		errs["label"] = validation.NewError("schema.field.label_required", "field label is required")
	}
	if !f.Type.Valid() {
		errs["type"] = validation.NewError("schema.field.type_unknown", "field type is unknown")
	}
	switch f.Type {
	case TypeGroup, TypeArray:
		if len(f.Fields) == 0 {
			errs["fields"] = validation.NewError("schema.field.children_required", "group and array fields require child descriptors")
		}
	default:
		if len(f.Fields) > 0 {
			errs["fields"] = validation.NewError("schema.field.children_forbidden", "scalar fields cannot carry child descriptors")
		}
	}
	for _, child := range f.Fields {
		if child.Type == TypeGroup || child.Type == TypeArray {
			// One nesting level is all the dashboard forms render.
			errs[child.Name] = validation.NewError("schema.field.nesting_depth", "nested group/array fields cannot nest further")
			continue
		}
		if err := child.Validate(); err != nil {
			errs[child.Name] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Section groups fields under a named heading on an editor page.
type Section struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

// Field returns the named field descriptor.
func (s Section) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Scalars returns the section's non-group, non-array fields in order.
func (s Section) Scalars() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Type != TypeGroup && f.Type != TypeArray {
			out = append(out, f)
		}
	}
	return out
}

// Groups returns the section's group fields in order.
func (s Section) Groups() []Field {
	out := []Field{}
	for _, f := range s.Fields {
		if f.Type == TypeGroup {
			out = append(out, f)
		}
	}
	return out
}

// Collections returns the section's array fields in order.
func (s Section) Collections() []Field {
	out := []Field{}
	for _, f := range s.Fields {
		if f.Type == TypeArray {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the section descriptor.
func (s Section) Validate() error {
	errs := validation.Errors{}
	if s.ID == "" {
		errs["id"] = validation.NewError("schema.section.id_required", "section id is required")
	}
	if s.Label == "" {
		errs["label"] = validation.NewError("schema.section.label_required", "section label is required")
	}
	if len(s.Fields) == 0 {
		errs["fields"] = validation.NewError("schema.section.fields_required", "section requires at least one field")
	}
	seen := map[string]struct{}{}
	for _, f := range s.Fields {
		if _, dup := seen[f.Name]; dup {
			errs[f.Name] = validation.NewError("schema.section.field_duplicate", "duplicate field name")
			continue
		}
		seen[f.Name] = struct{}{}
		if err := f.Validate(); err != nil {
			errs[f.Name] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Page describes the full editable surface of one dashboard page.
type Page struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Sections []Section `json:"sections"`
}

// Section returns the section with the given id.
func (p Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Validate checks the page descriptor and every section beneath it.
func (p Page) Validate() error {
	errs := validation.Errors{}
	if p.Key == "" {
		errs["key"] = validation.NewError("schema.page.key_required", "page key is required")
	}
	if p.Label == "" {
		errs["label"] = validation.NewError("schema.page.label_required", "page label is required")
	}
	if len(p.Sections) == 0 {
		errs["sections"] = validation.NewError("schema.page.sections_required", "page requires at least one section")
	}
	seen := map[string]struct{}{}
	for _, s := range p.Sections {
		if _, dup := seen[s.ID]; dup {
			errs[s.ID] = validation.NewError("schema.page.section_duplicate", "duplicate section id")
			continue
		}
		seen[s.ID] = struct{}{}
		if err := s.Validate(); err != nil {
			errs[s.ID] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
