package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	Pretty    bool   `json:"pretty"`
	Loaded    bool   `json:"loaded"`
	NoteCount int    `json:"note_count"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Name:      s.Name(),
		File:      Filename(s.Name()),
		Pretty:    s.config.Pretty,
		Loaded:    s.loaded,
		NoteCount: s.lastCount,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StorageType string     `json:"storage_type"`
	Watchable   bool       `json:"watchable"`
	Store       StoreState `json:"store"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storageType := "storage"
	// Try to get component type if storage implements introspection.Component
	if comp, ok := s.storage.(introspection.Component); ok {
		storageType = comp.ComponentType()
	}
	_, watchable := s.storage.(Watchable)

	return ServiceState{
		StorageType: storageType,
		Watchable:   watchable,
		Store:       s.store.State().(StoreState),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
