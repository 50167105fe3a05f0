package notekeeper

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/aretw0/notekeeper/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// Service is a public alias for the domain service.
type Service = core.Service

// Config is the startup configuration read by LoadConfig.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring notekeeper.
type Option = platform.Option

// DefaultStore is the datastore name used when none is configured.
const DefaultStore = platform.DefaultStore

// WithStore sets the datastore name; the backing file is <name>.json.
func WithStore(name string) Option {
	return platform.WithStore(name)
}

// WithPretty writes the datastore indented instead of compact.
func WithPretty(pretty bool) Option {
	return platform.WithPretty(pretty)
}

// WithMustExist ensures the base directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithEventBuffer allows specifying the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new notekeeper Service for the datastore in baseDir.
func New(baseDir string, opts ...Option) (*core.Service, error) {
	return platform.New(baseDir, opts...)
}

// Init prepares the storage explicitly.
func Init(baseDir string, opts ...Option) (core.Storage, error) {
	return platform.Init(baseDir, opts...)
}

// --- Config ---

// LoadConfig reads the optional config file and NOTES_* environment variables.
func LoadConfig(configFile string) (*Config, error) {
	return platform.LoadConfig(configFile)
}

// FindConfig recursively looks upwards for a .notes.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// ResolveBaseDir determines the absolute base directory; empty means the working directory.
func ResolveBaseDir(dir string) (string, error) {
	return platform.ResolveBaseDir(dir)
}
