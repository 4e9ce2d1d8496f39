package mutation

import (
	"errors"
	"time"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/identity"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
	"github.com/goliatone/go-editor/schema"
)

var (
	ErrNilDocument     = errors.New("mutation: document is nil")
	ErrInvalidStatus   = errors.New("mutation: invalid status")
	ErrDuplicateItemID = errors.New("mutation: item id already exists in collection")
	ErrUnknownDefaults = errors.New("mutation: no default document for page")
)

// Direction selects the neighbour an item swaps with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Engine applies the update operations of the editing model to a page
// document. Operations mutate the caller-owned document in place; the engine
// holds no locks, callers serialize access (one editing session per document).
type Engine struct {
	registry *schema.Registry
	now      func() time.Time
	newID    func() string
	logger   interfaces.Logger
}

// Option customizes engine behaviour.
type Option func(*Engine)

// WithRegistry enables strict mode: every mutation path is validated against
// the page schema before it is applied.
func WithRegistry(registry *schema.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithClock overrides the clock used to stamp LastUpdated, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.now = clock
		}
	}
}

// WithIDGenerator overrides the generator used for items added without an id.
func WithIDGenerator(generator func() string) Option {
	return func(e *Engine) {
		if generator != nil {
			e.newID = generator
		}
	}
}

// WithLogger injects the engine logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine constructs a mutation engine. Without WithRegistry the engine is
// permissive and creates missing sections and fields on demand.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		newID:  identity.NewItemID,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UpdateScalarFields shallow-merges the supplied key/value pairs into the
// section's top-level fields. Unspecified fields are untouched; missing keys
// are created.
func (e *Engine) UpdateScalarFields(doc *document.Document, section string, fields map[string]any) error {
	if doc == nil {
		return ErrNilDocument
	}
	if len(fields) == 0 {
		return nil
	}
	if e.registry != nil {
		if err := e.registry.CheckScalarFields(doc.Page, section, fields); err != nil {
			return err
		}
	}
	sec := doc.EnsureSection(section)
	for k, v := range fields {
		sec.Fields[k] = v
	}
	e.touch(doc)
	return nil
}

// UpdateGroup shallow-merges into the named nested group, one level deeper
// than UpdateScalarFields with the same semantics.
func (e *Engine) UpdateGroup(doc *document.Document, section, group string, fields map[string]any) error {
	if doc == nil {
		return ErrNilDocument
	}
	if len(fields) == 0 {
		return nil
	}
	if e.registry != nil {
		if err := e.registry.CheckGroup(doc.Page, section, group, fields); err != nil {
			return err
		}
	}
	sec := doc.EnsureSection(section)
	if sec.Groups == nil {
		sec.Groups = map[string]map[string]any{}
	}
	g, ok := sec.Groups[group]
	if !ok {
		g = map[string]any{}
		sec.Groups[group] = g
	}
	for k, v := range fields {
		g[k] = v
	}
	e.touch(doc)
	return nil
}

// AddItem appends the item to the end of the collection. When the item has no
// id one is generated; a duplicate id is rejected so item identity stays
// unique within the collection. Returns the stored item.
func (e *Engine) AddItem(doc *document.Document, section, collection string, item document.Item) (document.Item, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if e.registry != nil {
		if err := e.registry.CheckItemFields(doc.Page, section, collection, item); err != nil {
			return nil, err
		}
	}
	stored := item.Clone()
	if stored == nil {
		stored = document.Item{}
	}
	if stored.ID() == "" {
		stored["id"] = e.newID()
	}

	sec := doc.EnsureSection(section)
	if sec.Collections == nil {
		sec.Collections = map[string]document.Collection{}
	}
	coll := sec.Collections[collection]
	if _, exists := coll.Find(stored.ID()); exists {
		return nil, ErrDuplicateItemID
	}
	sec.Collections[collection] = append(coll, stored)
	e.touch(doc)
	return stored.Clone(), nil
}

// UpdateItem shallow-merges fields into the item with the given id. The id
// key itself is never overwritten; all other items and the collection order
// are unchanged. A missing id is a silent no-op.
func (e *Engine) UpdateItem(doc *document.Document, section, collection, id string, fields map[string]any) error {
	if doc == nil {
		return ErrNilDocument
	}
	if e.registry != nil {
		if err := e.registry.CheckItemFields(doc.Page, section, collection, fields); err != nil {
			return err
		}
	}
	sec := doc.Section(section)
	if sec == nil {
		return nil
	}
	coll, ok := sec.Collections[collection]
	if !ok {
		return nil
	}
	idx, found := coll.Find(id)
	if !found {
		e.logger.Debug("update skipped, item not found", "collection", collection, "id", id)
		return nil
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		coll[idx][k] = v
	}
	e.touch(doc)
	return nil
}

// RemoveItem deletes the item with the given id preserving the order of the
// remaining items. A missing id is a silent no-op.
func (e *Engine) RemoveItem(doc *document.Document, section, collection, id string) error {
	if doc == nil {
		return ErrNilDocument
	}
	if e.registry != nil {
		if _, err := e.registry.CheckCollection(doc.Page, section, collection); err != nil {
			return err
		}
	}
	sec := doc.Section(section)
	if sec == nil {
		return nil
	}
	coll, ok := sec.Collections[collection]
	if !ok {
		return nil
	}
	idx, found := coll.Find(id)
	if !found {
		e.logger.Debug("remove skipped, item not found", "collection", collection, "id", id)
		return nil
	}
	sec.Collections[collection] = append(coll[:idx], coll[idx+1:]...)
	e.touch(doc)
	return nil
}

// MoveItem swaps the item at index with its neighbour. Moves past either
// boundary are no-ops.
func (e *Engine) MoveItem(doc *document.Document, section, collection string, index int, direction Direction) error {
	if doc == nil {
		return ErrNilDocument
	}
	if e.registry != nil {
		if _, err := e.registry.CheckCollection(doc.Page, section, collection); err != nil {
			return err
		}
	}
	sec := doc.Section(section)
	if sec == nil {
		return nil
	}
	coll, ok := sec.Collections[collection]
	if !ok {
		return nil
	}
	target := index
	switch direction {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	default:
		return nil
	}
	if index < 0 || index >= len(coll) || target < 0 || target >= len(coll) {
		return nil
	}
	coll[index], coll[target] = coll[target], coll[index]
	e.touch(doc)
	return nil
}

// SetStatus sets the lifecycle field.
func (e *Engine) SetStatus(doc *document.Document, status document.Status) error {
	if doc == nil {
		return ErrNilDocument
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	doc.Status = status
	e.touch(doc)
	return nil
}

// ResetToDefaults returns the hardcoded default document for the page. It is
// a separately named, deliberately invoked operation: callers must gate it
// behind an explicit operator confirmation.
func (e *Engine) ResetToDefaults(page string) (*document.Document, error) {
	doc, ok := document.Defaults(page)
	if !ok {
		return nil, ErrUnknownDefaults
	}
	doc.LastUpdated = e.now()
	return doc, nil
}

func (e *Engine) touch(doc *document.Document) {
	doc.LastUpdated = e.now()
}
