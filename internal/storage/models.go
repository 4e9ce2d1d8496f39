package storage

import (
	"context"
	"time"

	"github.com/goliatone/go-editor/document"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageRecord is the persisted form of one page document. The document tree is
// stored as a single JSON column; documents are saved whole, never patched.
type PageRecord struct {
	bun.BaseModel `bun:"table:page_documents,alias:pd"`

	ID        uuid.UUID          `bun:",pk,type:uuid"                json:"id"`
	Key       string             `bun:"key,notnull,unique"           json:"key"`
	Status    string             `bun:"status,notnull,default:'draft'" json:"status"`
	Document  *document.Document `bun:"document,type:jsonb,notnull"  json:"document"`
	CreatedAt time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time          `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Repository abstracts page document persistence for the gateway.
type Repository interface {
	GetByKey(ctx context.Context, key string) (*PageRecord, error)
	Upsert(ctx context.Context, record *PageRecord) (*PageRecord, error)
}
