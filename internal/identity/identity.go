package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// NewItemID returns a random identity for a freshly added collection item.
// Random UUIDs replace the wall-clock-derived ids the dashboard used to
// generate, which collided under rapid successive inserts.
func NewItemID() string {
	return uuid.NewString()
}

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SeedItemID derives a stable identity for default collection items so that
// reset-to-defaults yields the same ids every time.
func SeedItemID(page, section, collection, key string) string {
	return UUID("go-editor:item:" + page + ":" + section + ":" + collection + ":" + strings.TrimSpace(key)).String()
}

// DocumentUUID derives the stable primary key for a page document record.
func DocumentUUID(page string) uuid.UUID {
	return UUID("go-editor:document:" + strings.ToLower(strings.TrimSpace(page)))
}
