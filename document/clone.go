package document

// Clone returns a deep copy of the document. Mutating the copy never affects
// the original; in-flight saves rely on this to snapshot state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	copied := &Document{
		Page:        d.Page,
		Status:      d.Status,
		LastUpdated: d.LastUpdated,
	}
	if d.Sections != nil {
		copied.Sections = make(map[string]*Section, len(d.Sections))
		for id, sec := range d.Sections {
			copied.Sections[id] = sec.Clone()
		}
	}
	return copied
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	copied := &Section{
		Fields: cloneRecord(s.Fields),
	}
	if s.Groups != nil {
		copied.Groups = make(map[string]map[string]any, len(s.Groups))
		for name, g := range s.Groups {
			copied.Groups[name] = cloneRecord(g)
		}
	}
	if s.Collections != nil {
		copied.Collections = make(map[string]Collection, len(s.Collections))
		for name, c := range s.Collections {
			copied.Collections[name] = c.Clone()
		}
	}
	return copied
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	if i == nil {
		return nil
	}
	return Item(cloneRecord(i))
}

// Clone returns a deep copy of the collection preserving order.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	copied := make(Collection, len(c))
	for i, item := range c {
		copied[i] = Item(cloneRecord(item))
	}
	return copied
}

func cloneRecord(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	copied := make(map[string]any, len(src))
	for k, v := range src {
		copied[k] = cloneValue(v)
	}
	return copied
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneRecord(val)
	case Item:
		return Item(cloneRecord(val))
	case []any:
		copied := make([]any, len(val))
		for i, elem := range val {
			copied[i] = cloneValue(elem)
		}
		return copied
	case []string:
		copied := make([]string, len(val))
		copy(copied, val)
		return copied
	default:
		return val
	}
}
