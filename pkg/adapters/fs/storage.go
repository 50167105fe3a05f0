package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notekeeper/pkg/core"
)

// DefaultEventBuffer is the capacity of the channel returned by Watch.
const DefaultEventBuffer = 16

// Config holds the configuration for the filesystem storage.
type Config struct {
	BaseDir     string // Directory holding <Name>.json
	Name        string // Datastore name
	MustExist   bool   // Fail instead of creating BaseDir
	Logger      *slog.Logger
	EventBuffer int
	Debounce    time.Duration // Quiet period before a watch event is emitted
}

// Storage implements core.Storage as a single JSON file on disk.
type Storage struct {
	config Config
	path   string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// NewStorage creates a new filesystem-backed storage.
func NewStorage(config Config) *Storage {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = DefaultEventBuffer
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Storage{
		config: config,
		path:   filepath.Join(config.BaseDir, core.Filename(config.Name)),
		logger: logger,
	}
}

// Initialize makes sure the base directory is usable.
func (s *Storage) Initialize(ctx context.Context) error {
	if err := core.ValidateStoreName(s.config.Name); err != nil {
		return err
	}

	if s.config.MustExist {
		info, err := os.Stat(s.config.BaseDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("base directory does not exist: %s", s.config.BaseDir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat base directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("base path is not a directory: %s", s.config.BaseDir)
		}
		return nil
	}

	if err := os.MkdirAll(s.config.BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}
	return nil
}

// Name returns the datastore name.
func (s *Storage) Name() string {
	return s.config.Name
}

// Path returns the full path of the datastore file.
func (s *Storage) Path() string {
	return s.path
}

// Exists reports whether the datastore file is present.
func (s *Storage) Exists(ctx context.Context) (bool, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", s.path)
	}
	return true, nil
}

// Read returns the raw content of the datastore file.
func (s *Storage) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.path)
}

// Write replaces the datastore file atomically.
func (s *Storage) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return err
	}
	s.logger.Debug("datastore written", "path", s.path, "bytes", len(data))
	return nil
}

var _ core.Storage = (*Storage)(nil)
var _ core.Watchable = (*Storage)(nil)
