package schema

// Registry holds the ordered set of page schemas the dashboard edits. It is
// the single source of truth for which mutation paths are legal.
type Registry struct {
	pages []Page
	index map[string]int
}

// NewRegistry validates and indexes the supplied page schemas.
func NewRegistry(pages ...Page) (*Registry, error) {
	r := &Registry{
		pages: make([]Page, 0, len(pages)),
		index: make(map[string]int, len(pages)),
	}
	for _, p := range pages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.index[p.Key]; exists {
			return nil, &PathError{Page: p.Key, Err: ErrUnknownPage}
		}
		r.index[p.Key] = len(r.pages)
		r.pages = append(r.pages, p)
	}
	return r, nil
}

// Page returns the schema for a page key.
func (r *Registry) Page(key string) (Page, bool) {
	i, ok := r.index[key]
	if !ok {
		return Page{}, false
	}
	return r.pages[i], true
}

// Pages returns every registered page in registration order.
func (r *Registry) Pages() []Page {
	out := make([]Page, len(r.pages))
	copy(out, r.pages)
	return out
}

// Keys returns the page keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.pages))
	for i, p := range r.pages {
		out[i] = p.Key
	}
	return out
}

// CheckScalarFields verifies every supplied field name is a scalar field of
// the section.
func (r *Registry) CheckScalarFields(page, section string, fields map[string]any) error {
	sec, err := r.section(page, section)
	if err != nil {
		return err
	}
	for name := range fields {
		f, ok := sec.Field(name)
		if !ok {
			return &PathError{Page: page, Section: section, Field: name, Err: ErrUnknownField}
		}
		if f.Type == TypeGroup || f.Type == TypeArray {
			return &PathError{Page: page, Section: section, Field: name, Err: ErrUnknownField}
		}
	}
	return nil
}

// CheckGroup verifies the group exists and the supplied names are among its
// child descriptors.
func (r *Registry) CheckGroup(page, section, group string, fields map[string]any) error {
	sec, err := r.section(page, section)
	if err != nil {
		return err
	}
	g, ok := sec.Field(group)
	if !ok {
		return &PathError{Page: page, Section: section, Field: group, Err: ErrUnknownField}
	}
	if g.Type != TypeGroup {
		return &PathError{Page: page, Section: section, Field: group, Err: ErrNotGroup}
	}
	return checkChildren(page, section, group, g, fields)
}

// CheckCollection verifies the named field is an array field and returns its
// descriptor.
func (r *Registry) CheckCollection(page, section, collection string) (Field, error) {
	sec, err := r.section(page, section)
	if err != nil {
		return Field{}, err
	}
	f, ok := sec.Field(collection)
	if !ok {
		return Field{}, &PathError{Page: page, Section: section, Field: collection, Err: ErrUnknownField}
	}
	if f.Type != TypeArray {
		return Field{}, &PathError{Page: page, Section: section, Field: collection, Err: ErrNotCollection}
	}
	return f, nil
}

// CheckItemFields verifies item field names against the collection's item
// descriptors. The reserved id key is always accepted.
func (r *Registry) CheckItemFields(page, section, collection string, fields map[string]any) error {
	f, err := r.CheckCollection(page, section, collection)
	if err != nil {
		return err
	}
	scrubbed := make(map[string]any, len(fields))
	for name, v := range fields {
		if name == "id" {
			continue
		}
		scrubbed[name] = v
	}
	return checkChildren(page, section, collection, f, scrubbed)
}

func (r *Registry) section(page, section string) (Section, error) {
	p, ok := r.Page(page)
	if !ok {
		return Section{}, &PathError{Page: page, Err: ErrUnknownPage}
	}
	sec, ok := p.Section(section)
	if !ok {
		return Section{}, &PathError{Page: page, Section: section, Err: ErrUnknownSection}
	}
	return sec, nil
}

func checkChildren(page, section, parent string, f Field, fields map[string]any) error {
	for name := range fields {
		found := false
		for _, child := range f.Fields {
			if child.Name == name {
				found = true
				break
			}
		}
		if !found {
			return &PathError{Page: page, Section: section, Collection: parent, Field: name, Err: ErrUnknownField}
		}
	}
	return nil
}
