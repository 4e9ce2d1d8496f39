package interfaces

import (
	"context"
	"errors"

	"github.com/goliatone/go-editor/document"
)

// ErrPageNotFound indicates the backend holds no document for the page key.
var ErrPageNotFound = errors.New("gateway: page not found")

// ErrSaveInFlight indicates an explicit save is already running for the page.
var ErrSaveInFlight = errors.New("gateway: save already in flight")

// Gateway is the persistence boundary the editing engine calls into. The
// engine never talks to the network or database directly; hosts supply an
// implementation (HTTP client, bun repository, memory fake).
//
// Contract:
//   - Save must accept a full document replacement and be idempotent: saving
//     the same document twice produces the same persisted state.
//   - Publish only promotes the current draft and flips lifecycle status; it
//     must never alter content fields. Subsequent Fetch calls report
//     StatusPublished.
//   - There is no cross-session conflict detection: a second concurrent
//     editor of the same page is last-write-wins. Deliberately unresolved.
type Gateway interface {
	Fetch(ctx context.Context, page string) (*document.Document, error)
	Save(ctx context.Context, page string, doc *document.Document) error
	Publish(ctx context.Context, page string) error
}

// NoticeSink receives user-facing, non-blocking notices (toasts in the
// dashboard UI). Implementations must not block the caller.
type NoticeSink interface {
	Info(page, msg string)
	Warn(page, msg string)
	Error(page, msg string)
}

// NoOpNotices returns a sink that discards every notice.
func NoOpNotices() NoticeSink {
	return noopNotices{}
}

type noopNotices struct{}

func (noopNotices) Info(string, string)  {}
func (noopNotices) Warn(string, string)  {}
func (noopNotices) Error(string, string) {}
