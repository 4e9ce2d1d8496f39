package storage

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunRepository persists page records through go-repository-bun.
type BunRepository struct {
	repo repository.Repository[*PageRecord]
}

// NewBunRepository constructs the SQL-backed page record repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs the repository with optional caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewPageRecordRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunRepository{repo: wrapped}
}

// GetByKey retrieves a page record by page key.
func (r *BunRepository) GetByKey(ctx context.Context, key string) (*PageRecord, error) {
	result, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "page_document", key)
	}
	return result, nil
}

// Upsert stores the record, inserting on first save and replacing the stored
// row afterwards. Saving the same record twice leaves identical state.
func (r *BunRepository) Upsert(ctx context.Context, record *PageRecord) (*PageRecord, error) {
	existing, err := r.repo.GetByIdentifier(ctx, record.Key)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			created, createErr := r.repo.Create(ctx, record)
			if createErr != nil {
				return nil, fmt.Errorf("page_document repository error: %w", createErr)
			}
			return created, nil
		}
		return nil, mapRepositoryError(err, "page_document", record.Key)
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("status", "document", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page_document", record.Key)
	}
	return updated, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache(base repository.Repository[*PageRecord], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[*PageRecord] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
