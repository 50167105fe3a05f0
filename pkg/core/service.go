package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the input rules in front of a Store.
type Service struct {
	store   *Store
	storage Storage
	logger  *slog.Logger
}

// NewService creates a new Service over the given storage.
func NewService(storage Storage, config StoreConfig) *Service {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:   NewStore(storage, config),
		storage: storage,
		logger:  logger,
	}
}

// Store exposes the underlying datastore.
func (s *Service) Store() *Store {
	return s.store
}

// Storage exposes the storage adapter backing the datastore.
func (s *Service) Storage() Storage {
	return s.storage
}

// SaveNote validates and saves a new note.
func (s *Service) SaveNote(ctx context.Context, id, name string) (Note, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Note{}, fmt.Errorf("%w: note ID cannot be empty", ErrInvalidArgument)
	}
	if name == "" {
		return Note{}, fmt.Errorf("%w: note name cannot be empty", ErrInvalidArgument)
	}

	n := Note{ID: id, Name: name}
	if err := s.store.Save(ctx, n); err != nil {
		s.report("save", id, err)
		return Note{}, err
	}

	s.logger.Debug("note saved", "store", s.store.Name(), "id", id)
	return n, nil
}

// GetNote retrieves a note by ID.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Note{}, fmt.Errorf("%w: note ID cannot be empty", ErrInvalidArgument)
	}

	n, err := s.store.Get(ctx, id)
	if err != nil {
		s.report("get", id, err)
		return Note{}, err
	}
	return n, nil
}

// ListNotes returns every note in stored order.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		s.report("list", "", err)
		return nil, err
	}
	return notes, nil
}

// FindNotes returns the notes whose ID or name matches the glob pattern.
// An empty pattern matches everything.
func (s *Service) FindNotes(ctx context.Context, pattern string) ([]Note, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidArgument, pattern)
	}

	notes, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return notes, nil
	}

	return MatchNotes(notes, pattern)
}

// MatchNotes filters notes whose ID or name matches the glob pattern.
func MatchNotes(notes []Note, pattern string) ([]Note, error) {
	matched := make([]Note, 0, len(notes))
	for _, n := range notes {
		ok, err := doublestar.Match(pattern, n.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %q: %w", ErrInvalidArgument, pattern, err)
		}
		if !ok {
			ok, _ = doublestar.Match(pattern, n.Name)
		}
		if ok {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Watch observes changes to the datastore if the storage supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.storage.(Watchable)
	if !ok {
		return nil, errors.New("storage does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service) report(op, id string, err error) {
	if IsInformational(err) {
		s.logger.Debug(op+" outcome", "store", s.store.Name(), "id", id, "reason", err)
		return
	}
	s.logger.Error(op+" failed", "store", s.store.Name(), "id", id, "error", err)
}
