package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/identity"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

// Gateway adapts a page record Repository to the persistence contract the
// editing engine depends on.
type Gateway struct {
	repo   Repository
	retry  RetryPolicy
	logger interfaces.Logger
	now    func() time.Time
}

// GatewayOption customizes gateway behaviour.
type GatewayOption func(*Gateway)

// WithRetryPolicy overrides the save retry policy.
func WithRetryPolicy(policy RetryPolicy) GatewayOption {
	return func(g *Gateway) {
		g.retry = policy
	}
}

// WithLogger injects the gateway logger.
func WithLogger(logger interfaces.Logger) GatewayOption {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClock overrides the clock used for record timestamps.
func WithClock(clock func() time.Time) GatewayOption {
	return func(g *Gateway) {
		if clock != nil {
			g.now = clock
		}
	}
}

// NewGateway builds a gateway over the supplied repository.
func NewGateway(repo Repository, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		repo:   repo,
		retry:  DefaultRetryPolicy(),
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ interfaces.Gateway = (*Gateway)(nil)

// Fetch returns the stored document for the page key.
func (g *Gateway) Fetch(ctx context.Context, page string) (*document.Document, error) {
	rec, err := g.repo.GetByKey(ctx, page)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, interfaces.ErrPageNotFound
		}
		return nil, err
	}
	doc := rec.Document.Clone()
	if doc != nil {
		doc.Status = document.Status(rec.Status)
	}
	return doc, nil
}

// Save stores a full document replacement. Transient failures are retried
// within the bounded policy; the operation is idempotent.
func (g *Gateway) Save(ctx context.Context, page string, doc *document.Document) error {
	if doc == nil {
		return errors.New("storage: cannot save nil document")
	}
	record := &PageRecord{
		ID:        identity.DocumentUUID(page),
		Key:       page,
		Status:    string(doc.Status),
		Document:  doc.Clone(),
		UpdatedAt: g.now(),
	}
	return g.retry.Do(ctx, func() error {
		_, err := g.repo.Upsert(ctx, record)
		if err != nil {
			g.logger.Warn("save attempt failed", "page", page, "error", err)
		}
		return err
	})
}

// Publish promotes the stored draft: lifecycle status flips to published,
// content fields stay exactly as saved.
func (g *Gateway) Publish(ctx context.Context, page string) error {
	rec, err := g.repo.GetByKey(ctx, page)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return interfaces.ErrPageNotFound
		}
		return err
	}
	rec.Status = string(document.StatusPublished)
	if rec.Document != nil {
		rec.Document.Status = document.StatusPublished
	}
	rec.UpdatedAt = g.now()
	if _, err := g.repo.Upsert(ctx, rec); err != nil {
		return err
	}
	g.logger.Info("page published", "page", page)
	return nil
}
