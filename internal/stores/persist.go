package stores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Persister is durable storage behind a store, the local-storage analog for
// a server-side process.
type Persister[T any] interface {
	// Load returns the persisted value and whether one exists.
	Load() (T, bool, error)
	Save(value T) error
	Clear() error
}

// FilePersister keeps the state as a JSON document on disk. Saves go through
// a temp file and rename so a crash mid-write never leaves a torn file.
type FilePersister[T any] struct {
	path string
}

// NewFilePersister builds a persister writing to path.
func NewFilePersister[T any](path string) *FilePersister[T] {
	return &FilePersister[T]{path: path}
}

func (p *FilePersister[T]) Load() (T, bool, error) {
	var value T
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("stores: read %s: %w", p.path, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("stores: decode %s: %w", p.path, err)
	}
	return value, true, nil
}

func (p *FilePersister[T]) Save(value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("stores: encode %s: %w", p.path, err)
	}
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("stores: prepare %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".*")
	if err != nil {
		return fmt.Errorf("stores: temp file for %s: %w", p.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("stores: write %s: %w", p.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("stores: close %s: %w", p.path, err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("stores: replace %s: %w", p.path, err)
	}
	return nil
}

func (p *FilePersister[T]) Clear() error {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stores: clear %s: %w", p.path, err)
	}
	return nil
}
