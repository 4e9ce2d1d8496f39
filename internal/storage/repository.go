package storage

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewPageRecordRepository builds the go-repository-bun repository for page
// document records, keyed by page key.
func NewPageRecordRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord: func() *PageRecord { return &PageRecord{} },
		GetID: func(r *PageRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *PageRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *PageRecord) string {
			return r.Key
		},
	})
}
