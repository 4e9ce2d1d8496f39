package document

import (
	"time"

	"github.com/goliatone/go-editor/schema"
)

// Status captures the page document lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether the status is a known lifecycle value.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Item is one entry of a collection. The reserved "id" key carries the item's
// stable identity and is never regenerated by updates.
type Item map[string]any

// ID returns the item's identity, or the empty string when unset.
func (i Item) ID() string {
	id, _ := i["id"].(string)
	return id
}

// Collection is an ordered, identity-keyed list of items. Order is display
// order and is preserved by every mutation except an explicit move.
type Collection []Item

// Find returns the index of the item with the given id.
func (c Collection) Find(id string) (int, bool) {
	for i, item := range c {
		if item.ID() == id {
			return i, true
		}
	}
	return 0, false
}

// Section holds one named grouping of a page document: scalar fields, nested
// fixed-shape groups, and named collections.
type Section struct {
	Fields      map[string]any            `json:"fields"`
	Groups      map[string]map[string]any `json:"groups,omitempty"`
	Collections map[string]Collection     `json:"collections,omitempty"`
}

// Document is the full editable data tree for one page.
type Document struct {
	Page        string              `json:"page"`
	Status      Status              `json:"status"`
	LastUpdated time.Time           `json:"last_updated"`
	Sections    map[string]*Section `json:"sections"`
}

// Section returns the named section, or nil when absent.
func (d *Document) Section(id string) *Section {
	if d == nil {
		return nil
	}
	return d.Sections[id]
}

// EnsureSection returns the named section, creating an empty one when absent.
func (d *Document) EnsureSection(id string) *Section {
	if d.Sections == nil {
		d.Sections = map[string]*Section{}
	}
	sec, ok := d.Sections[id]
	if !ok {
		sec = &Section{Fields: map[string]any{}}
		d.Sections[id] = sec
	}
	if sec.Fields == nil {
		sec.Fields = map[string]any{}
	}
	return sec
}

// New builds an empty document for the page schema: every scalar at its zero
// value, every group populated with zeroed children, every collection empty.
func New(page schema.Page) *Document {
	doc := &Document{
		Page:     page.Key,
		Status:   StatusDraft,
		Sections: make(map[string]*Section, len(page.Sections)),
	}
	for _, sec := range page.Sections {
		doc.Sections[sec.ID] = NewSection(sec)
	}
	return doc
}

// NewSection builds an empty section from its schema descriptor.
func NewSection(sec schema.Section) *Section {
	out := &Section{Fields: map[string]any{}}
	for _, f := range sec.Fields {
		switch f.Type {
		case schema.TypeGroup:
			if out.Groups == nil {
				out.Groups = map[string]map[string]any{}
			}
			g := make(map[string]any, len(f.Fields))
			for _, child := range f.Fields {
				g[child.Name] = ZeroValue(child.Type)
			}
			out.Groups[f.Name] = g
		case schema.TypeArray:
			if out.Collections == nil {
				out.Collections = map[string]Collection{}
			}
			out.Collections[f.Name] = Collection{}
		default:
			out.Fields[f.Name] = ZeroValue(f.Type)
		}
	}
	return out
}

// ZeroValue returns the empty value for a scalar field type. Values match
// what a JSON round trip produces so hydrated and constructed documents
// compare equal.
func ZeroValue(t schema.FieldType) any {
	switch t {
	case schema.TypeBoolean:
		return false
	case schema.TypeNumber:
		return float64(0)
	case schema.TypeTags:
		return []any{}
	default:
		return ""
	}
}

// ZeroItem builds an item with every declared field zeroed and the supplied id.
func ZeroItem(f schema.Field, id string) Item {
	item := Item{"id": id}
	for _, child := range f.Fields {
		item[child.Name] = ZeroValue(child.Type)
	}
	return item
}
