package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPage    = errors.New("schema: unknown page")
	ErrUnknownSection = errors.New("schema: unknown section")
	ErrUnknownField   = errors.New("schema: unknown field")
	ErrNotGroup       = errors.New("schema: field is not a group")
	ErrNotCollection  = errors.New("schema: field is not a collection")
)

// PathError reports the mutation path that failed schema validation.
type PathError struct {
	Page       string
	Section    string
	Field      string
	Collection string
	Err        error
}

func (e *PathError) Error() string {
	path := e.Page
	if e.Section != "" {
		path += "." + e.Section
	}
	if e.Collection != "" {
		path += "." + e.Collection
	}
	if e.Field != "" {
		path += "." + e.Field
	}
	return fmt.Sprintf("%v: %s", e.Err, path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
