package hydration

import (
	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
)

// Controller seeds local editable state from a server-fetched document
// exactly once per editing session. Re-fetches within the same session are
// no-ops: the guard protects in-flight local edits, it is not a live-sync
// mechanism.
type Controller struct {
	page     schema.Page
	notices  interfaces.NoticeSink
	logger   interfaces.Logger
	hydrated bool
}

// Option customizes controller behaviour.
type Option func(*Controller)

// WithNotices routes reconciliation notices to the supplied sink.
func WithNotices(sink interfaces.NoticeSink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.notices = sink
		}
	}
}

// WithLogger injects the controller logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController builds a controller for one page schema.
func NewController(page schema.Page, opts ...Option) *Controller {
	c := &Controller{
		page:    page,
		notices: interfaces.NoOpNotices(),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Hydrated reports whether a document was already applied this session.
func (c *Controller) Hydrated() bool {
	return c.hydrated
}

// Apply installs the fetched document as the local editable state. The first
// call with a non-nil document wins; every later call returns (nil, false).
// After installing, missing substructures are filled additively from the
// schema and a synchronization notice is emitted; present values are never
// overwritten.
func (c *Controller) Apply(fetched *document.Document) (*document.Document, bool) {
	if c.hydrated || fetched == nil {
		return nil, false
	}
	c.hydrated = true

	doc := fetched.Clone()
	if c.Reconcile(doc) {
		c.logger.Info("document filled from latest schema", "page", c.page.Key)
		c.notices.Info(c.page.Key, "content synchronized with latest schema")
	}
	return doc, true
}

// Reconcile adds any section, field, group, or collection the schema declares
// but the document lacks, using empty defaults. It reports whether anything
// was added. Present values are untouched, field by field.
func (c *Controller) Reconcile(doc *document.Document) bool {
	if doc == nil {
		return false
	}
	added := false
	if doc.Sections == nil {
		doc.Sections = map[string]*document.Section{}
	}
	for _, secSchema := range c.page.Sections {
		sec, ok := doc.Sections[secSchema.ID]
		if !ok || sec == nil {
			doc.Sections[secSchema.ID] = document.NewSection(secSchema)
			added = true
			continue
		}
		if sec.Fields == nil {
			sec.Fields = map[string]any{}
		}
		for _, f := range secSchema.Fields {
			switch f.Type {
			case schema.TypeGroup:
				if reconcileGroup(sec, f) {
					added = true
				}
			case schema.TypeArray:
				if sec.Collections == nil {
					sec.Collections = map[string]document.Collection{}
				}
				if _, ok := sec.Collections[f.Name]; !ok {
					sec.Collections[f.Name] = document.Collection{}
					added = true
				}
			default:
				if _, ok := sec.Fields[f.Name]; !ok {
					sec.Fields[f.Name] = document.ZeroValue(f.Type)
					added = true
				}
			}
		}
	}
	return added
}

func reconcileGroup(sec *document.Section, f schema.Field) bool {
	added := false
	if sec.Groups == nil {
		sec.Groups = map[string]map[string]any{}
	}
	g, ok := sec.Groups[f.Name]
	if !ok || g == nil {
		g = map[string]any{}
		sec.Groups[f.Name] = g
		added = true
	}
	for _, child := range f.Fields {
		if _, ok := g[child.Name]; !ok {
			g[child.Name] = document.ZeroValue(child.Type)
			added = true
		}
	}
	return added
}
