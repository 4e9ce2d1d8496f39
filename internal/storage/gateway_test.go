package storage_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/storage"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

func TestFetchMissingPageReturnsSentinel(t *testing.T) {
	gateway := storage.NewGateway(storage.NewMemoryRepository())

	_, err := gateway.Fetch(context.Background(), "about")
	if !errors.Is(err, interfaces.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound got %v", err)
	}
}

func TestSaveThenFetchRoundTrips(t *testing.T) {
	gateway := storage.NewGateway(storage.NewMemoryRepository())
	ctx := context.Background()

	doc, _ := document.Defaults("about")
	doc.Section("hero").Fields["title"] = "Hello"

	if err := gateway.Save(ctx, "about", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	fetched, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fetched.Section("hero").Fields["title"] != "Hello" {
		t.Fatalf("expected saved title got %v", fetched.Section("hero").Fields["title"])
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	repo := storage.NewMemoryRepository()
	gateway := storage.NewGateway(repo)
	ctx := context.Background()

	doc, _ := document.Defaults("about")
	if err := gateway.Save(ctx, "about", doc); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if err := gateway.Save(ctx, "about", doc); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("double save changed persisted state")
	}
}

func TestPublishFlipsStatusWithoutTouchingContent(t *testing.T) {
	gateway := storage.NewGateway(storage.NewMemoryRepository())
	ctx := context.Background()

	doc, _ := document.Defaults("about")
	doc.Section("hero").Fields["title"] = "Draft title"
	if err := gateway.Save(ctx, "about", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := gateway.Publish(ctx, "about"); err != nil {
		t.Fatalf("publish: %v", err)
	}

	fetched, err := gateway.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fetched.Status != document.StatusPublished {
		t.Fatalf("expected published status got %s", fetched.Status)
	}
	if fetched.Section("hero").Fields["title"] != "Draft title" {
		t.Fatalf("publish altered content: %v", fetched.Section("hero").Fields["title"])
	}
}

func TestPublishMissingPageReturnsSentinel(t *testing.T) {
	gateway := storage.NewGateway(storage.NewMemoryRepository())

	err := gateway.Publish(context.Background(), "about")
	if !errors.Is(err, interfaces.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound got %v", err)
	}
}

// flakyRepo fails the first N upserts with a transient error.
type flakyRepo struct {
	*storage.MemoryRepository
	failures int
}

func (f *flakyRepo) Upsert(ctx context.Context, record *storage.PageRecord) (*storage.PageRecord, error) {
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("transient: connection reset")
	}
	return f.MemoryRepository.Upsert(ctx, record)
}

func TestSaveRetriesTransientFailures(t *testing.T) {
	repo := &flakyRepo{MemoryRepository: storage.NewMemoryRepository(), failures: 2}
	gateway := storage.NewGateway(repo, storage.WithRetryPolicy(storage.RetryPolicy{
		Attempts:  3,
		BaseDelay: time.Millisecond,
	}))

	doc, _ := document.Defaults("about")
	if err := gateway.Save(context.Background(), "about", doc); err != nil {
		t.Fatalf("expected save to succeed after retries got %v", err)
	}
}

func TestSaveGivesUpAfterBoundedAttempts(t *testing.T) {
	repo := &flakyRepo{MemoryRepository: storage.NewMemoryRepository(), failures: 5}
	gateway := storage.NewGateway(repo, storage.WithRetryPolicy(storage.RetryPolicy{
		Attempts:  3,
		BaseDelay: time.Millisecond,
	}))

	doc, _ := document.Defaults("about")
	if err := gateway.Save(context.Background(), "about", doc); err == nil {
		t.Fatalf("expected bounded retry to give up")
	}
	if repo.failures != 2 {
		t.Fatalf("expected exactly 3 attempts, %d failures left", repo.failures)
	}
}
