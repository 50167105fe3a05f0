// Package memory provides an in-memory core.Storage.
// It never touches disk, which makes it the storage of choice for tests and
// for embedding a throwaway datastore.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notekeeper/pkg/core"
)

// Storage keeps the serialized datastore in a byte slice.
// The *Err fields inject failures into the matching operation.
type Storage struct {
	name string

	mu     sync.RWMutex
	data   []byte
	exists bool
	writes int

	ExistsErr error
	ReadErr   error
	WriteErr  error
}

// NewStorage creates an empty storage (no backing object yet).
func NewStorage(name string) *Storage {
	return &Storage{name: name}
}

// NewStorageWith creates a storage that already holds data.
func NewStorageWith(name string, data []byte) *Storage {
	s := NewStorage(name)
	s.data = append([]byte(nil), data...)
	s.exists = true
	return s
}

func (s *Storage) Name() string {
	return s.name
}

func (s *Storage) Exists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.exists, nil
}

func (s *Storage) Read(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Storage) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data = append([]byte(nil), data...)
	s.exists = true
	s.writes++
	return nil
}

// Bytes returns a copy of the current content.
func (s *Storage) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.data...)
}

// Writes returns how many successful writes happened.
func (s *Storage) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// State implements introspection.Introspectable.
func (s *Storage) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"name":   s.name,
		"exists": s.exists,
		"bytes":  len(s.data),
		"writes": s.writes,
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "memory"
}

var _ core.Storage = (*Storage)(nil)
var _ introspection.Introspectable = (*Storage)(nil)
var _ introspection.Component = (*Storage)(nil)
