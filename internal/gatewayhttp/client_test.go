package gatewayhttp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/gatewayhttp"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

// contentAPI is a minimal in-memory rendition of the dashboard content API.
type contentAPI struct {
	mu   sync.Mutex
	docs map[string]*document.Document
}

func newContentAPI() *contentAPI {
	return &contentAPI{docs: map[string]*document.Document{}}
}

func (a *contentAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/content/{page}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		doc, ok := a.docs[r.PathValue("page")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(doc)
	})
	mux.HandleFunc("PUT /api/content/{page}", func(w http.ResponseWriter, r *http.Request) {
		doc := &document.Document{}
		if err := json.NewDecoder(r.Body).Decode(doc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		a.docs[r.PathValue("page")] = doc
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/content/{page}/publish", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		doc, ok := a.docs[r.PathValue("page")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		doc.Status = document.StatusPublished
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestFetchMissingPage(t *testing.T) {
	server := httptest.NewServer(newContentAPI().handler())
	t.Cleanup(server.Close)

	client := gatewayhttp.New(server.URL)
	if _, err := client.Fetch(context.Background(), "about"); !errors.Is(err, interfaces.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound got %v", err)
	}
}

func TestSaveFetchPublishRoundTrip(t *testing.T) {
	api := newContentAPI()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	client := gatewayhttp.New(server.URL)
	ctx := context.Background()

	doc, _ := document.Defaults("about")
	doc.Section("hero").Fields["title"] = "Over the wire"

	if err := client.Save(ctx, "about", doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	fetched, err := client.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fetched.Section("hero").Fields["title"] != "Over the wire" {
		t.Fatalf("expected round-tripped title got %v", fetched.Section("hero").Fields["title"])
	}
	if fetched.Status != document.StatusDraft {
		t.Fatalf("expected draft before publish got %s", fetched.Status)
	}

	if err := client.Publish(ctx, "about"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	published, err := client.Fetch(ctx, "about")
	if err != nil {
		t.Fatalf("fetch after publish: %v", err)
	}
	if published.Status != document.StatusPublished {
		t.Fatalf("expected published got %s", published.Status)
	}
	if published.Section("hero").Fields["title"] != "Over the wire" {
		t.Fatalf("publish altered content fields")
	}
}

func TestServerErrorsAreWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := gatewayhttp.New(server.URL)
	ctx := context.Background()

	if _, err := client.Fetch(ctx, "about"); err == nil {
		t.Fatalf("expected fetch error")
	}
	doc, _ := document.Defaults("about")
	if err := client.Save(ctx, "about", doc); err == nil {
		t.Fatalf("expected save error")
	}
	if err := client.Publish(ctx, "about"); err == nil {
		t.Fatalf("expected publish error")
	}
}
