package session

import (
	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/schema"
)

// Preview bundles a document snapshot with rendered HTML for every richtext
// field, keyed by "section.field" for scalars and
// "section.collection.<itemID>.field" for collection items.
type Preview struct {
	Document *document.Document
	HTML     map[string]string
}

// Preview renders the current document for the dashboard preview pane.
func (s *Session) Preview() (*Preview, error) {
	snapshot := s.Document()
	preview := &Preview{
		Document: snapshot,
		HTML:     map[string]string{},
	}

	for _, secSchema := range s.page.Sections {
		sec := snapshot.Section(secSchema.ID)
		if sec == nil {
			continue
		}
		for _, f := range secSchema.Fields {
			switch f.Type {
			case schema.TypeRichText:
				if err := s.renderField(preview, secSchema.ID+"."+f.Name, sec.Fields[f.Name]); err != nil {
					return nil, err
				}
			case schema.TypeArray:
				for _, item := range sec.Collections[f.Name] {
					for _, child := range f.Fields {
						if child.Type != schema.TypeRichText {
							continue
						}
						key := secSchema.ID + "." + f.Name + "." + item.ID() + "." + child.Name
						if err := s.renderField(preview, key, item[child.Name]); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}
	return preview, nil
}

func (s *Session) renderField(preview *Preview, key string, value any) error {
	source, ok := value.(string)
	if !ok || source == "" {
		return nil
	}
	html, err := s.manager.renderer.HTML(source)
	if err != nil {
		return err
	}
	preview.HTML[key] = html
	return nil
}
