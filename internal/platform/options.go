package platform

import (
	"log/slog"

	"github.com/aretw0/notekeeper/pkg/core"
)

// DefaultStore is the datastore name used when none is configured.
const DefaultStore = "notes"

// options holds the internal configuration for the notekeeper service.
type options struct {
	storage     core.Storage
	logger      *slog.Logger
	adapter     string
	store       string
	pretty      bool
	mustExist   bool
	eventBuffer int
}

// Option defines a functional option for configuring notekeeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		store:   DefaultStore,
	}
}

// WithStore sets the datastore name; the backing file is <name>.json.
func WithStore(name string) Option {
	return func(o *options) {
		o.store = name
	}
}

// WithPretty writes the datastore indented instead of compact.
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

// WithMustExist ensures the base directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage allows injecting a custom storage (e.g. mock, memory).
// If provided, the adapter selection is skipped.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithAdapter allows specifying the storage adapter to use by name ("fs" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithEventBuffer sets the capacity of the watch event channel.
// Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}
