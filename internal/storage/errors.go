package storage

import "fmt"

// NotFoundError reports a missing persisted resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("storage: %s %q not found", e.Resource, e.Key)
}
