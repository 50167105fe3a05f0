package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Storage is the byte-level port a Store persists through.
// Adhering to this interface keeps the Store independent of where the
// serialized array actually lives (disk, memory, ...).
type Storage interface {
	// Name returns the datastore name the storage is bound to.
	Name() string

	// Exists reports whether the backing object is already present.
	Exists(ctx context.Context) (bool, error)

	// Read returns the full serialized content.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the full serialized content.
	Write(ctx context.Context, data []byte) error
}

// Watchable defines an interface for storages that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Filename derives the backing filename from a datastore name.
func Filename(name string) string {
	return name + ".json"
}

// ValidateStoreName rejects names that cannot map to a single file inside
// the base directory.
func ValidateStoreName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: store name cannot be empty", ErrInvalidArgument)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: store name %q is reserved", ErrInvalidArgument, name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: store name %q must not contain path separators", ErrInvalidArgument, name)
	}
	return nil
}
