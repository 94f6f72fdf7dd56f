package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when an id or slug lookup misses
var ErrNotFound = errors.New("record not found")

// Store abstracts the persistence of one JSON array document per resource.
// Every mutation rewrites the whole document; there is no locking around the
// load-mutate-save cycle, so concurrent writers to the same resource race
// and the last save wins.
type Store interface {
	Read(resource string) ([]byte, error)
	Write(resource string, data []byte) error
}

// FileStore persists each resource as <dir>/<resource>.json
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Read returns the raw document. A missing file reads as an empty array so
// that a fresh deployment starts with empty resources.
func (s *FileStore) Read(resource string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, resource+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("[]"), nil
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the document with a single write call
func (s *FileStore) Write(resource string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, resource+".json"), data, 0644)
}

// MemoryStore is an in-memory Store used by tests
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Read(resource string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[resource]
	if !ok {
		return []byte("[]"), nil
	}
	return data, nil
}

func (s *MemoryStore) Write(resource string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[resource] = append([]byte(nil), data...)
	return nil
}

// loadAll decodes a resource document into typed records. Malformed JSON on
// disk fails the load and surfaces as a storage error to the caller.
func loadAll[T any](store Store, resource string) ([]T, error) {
	data, err := store.Read(resource)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", resource, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", resource, err)
	}
	return records, nil
}

// saveAll re-encodes and replaces the whole resource document
func saveAll[T any](store Store, resource string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", resource, err)
	}
	if err := store.Write(resource, data); err != nil {
		return fmt.Errorf("write %s: %w", resource, err)
	}
	return nil
}
