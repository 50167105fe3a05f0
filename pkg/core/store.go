package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"
)

// emptyArray is what a freshly created datastore holds.
var emptyArray = []byte("[]")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StoreConfig holds the configuration for a Store.
type StoreConfig struct {
	// Pretty writes the array with a two-space indent instead of compact JSON.
	Pretty bool
	Logger *slog.Logger
}

// Store is the note datastore. Every operation loads the whole array from
// its Storage and, when mutating, rewrites the whole array.
type Store struct {
	storage Storage
	config  StoreConfig
	logger  *slog.Logger

	mu        sync.RWMutex
	lastCount int
	loaded    bool
}

// NewStore creates a Store bound to the given storage.
func NewStore(storage Storage, config StoreConfig) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		storage: storage,
		config:  config,
		logger:  logger.With("store", storage.Name()),
	}
}

// Name returns the datastore name.
func (s *Store) Name() string {
	return s.storage.Name()
}

// EnsureExists creates the datastore holding an empty array if it is absent.
// It returns false when the datastore could not be checked or created; the
// failure is logged, not returned.
func (s *Store) EnsureExists(ctx context.Context) bool {
	exists, err := s.storage.Exists(ctx)
	if err != nil {
		s.logger.Error("unable to check datastore", "error", err)
		return false
	}
	if exists {
		return true
	}

	if err := s.storage.Write(ctx, emptyArray); err != nil {
		s.logger.Error("unable to create datastore", "file", Filename(s.Name()), "error", err)
		return false
	}
	s.logger.Info("created datastore", "file", Filename(s.Name()))
	return true
}

// Load returns every note in stored order.
func (s *Store) Load(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename := Filename(s.Name())
	if !s.EnsureExists(ctx) {
		return nil, fmt.Errorf("%w: unable to create %s datastore", ErrWriteFailure, filename)
	}

	data, err := s.storage.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrReadFailure, filename, err)
	}

	notes, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrReadFailure, filename, err)
	}

	s.recordLoad(len(notes))
	return notes, nil
}

// List returns all notes, or ErrEmptyStore when there are none.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	notes, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrEmptyStore
	}
	return notes, nil
}

// Get returns the first note with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Note, error) {
	notes, err := s.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	if len(notes) == 0 {
		return Note{}, ErrEmptyStore
	}

	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Save appends the note and rewrites the datastore.
// An existing ID yields ErrDuplicateID and leaves the datastore untouched.
func (s *Store) Save(ctx context.Context, n Note) error {
	notes, err := s.Load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range notes {
		if existing.ID == n.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
	}

	notes = append(notes, n)

	data, err := encode(notes, s.config.Pretty)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.storage.Write(ctx, data); err != nil {
		return fmt.Errorf("%w: unable to save note in %s datastore: %w", ErrWriteFailure, Filename(s.Name()), err)
	}

	s.recordLoad(len(notes))
	return nil
}

func (s *Store) recordLoad(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCount = count
	s.loaded = true
}

func decode(data []byte) ([]Note, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("content is not valid UTF-8")
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func encode(notes []Note, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(notes, "", "  ")
	}
	return json.Marshal(notes)
}
