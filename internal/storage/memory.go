package storage

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-editor/internal/identity"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for scaffolding and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*PageRecord
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory page record repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*PageRecord),
		now:     time.Now,
	}
}

// GetByKey retrieves a record by page key.
func (m *MemoryRepository) GetByKey(_ context.Context, key string) (*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[key]
	if !ok {
		return nil, &NotFoundError{Resource: "page_document", Key: key}
	}
	return cloneRecord(rec), nil
}

// Upsert stores the record keyed by page key.
func (m *MemoryRepository) Upsert(_ context.Context, record *PageRecord) (*PageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	if existing, ok := m.records[record.Key]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	} else {
		if copied.ID == uuid.Nil {
			copied.ID = identity.DocumentUUID(record.Key)
		}
		copied.CreatedAt = m.now()
	}
	copied.UpdatedAt = m.now()
	m.records[record.Key] = copied
	return cloneRecord(copied), nil
}

func cloneRecord(src *PageRecord) *PageRecord {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Document = src.Document.Clone()
	return &copied
}
