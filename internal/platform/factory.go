package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/adapters/memory"
	"github.com/aretw0/notekeeper/pkg/core"
)

// New creates a Service for the datastore living in baseDir.
//
//	svc, err := notekeeper.New("/home/me/notes", notekeeper.WithStore("work"))
func New(baseDir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage, err := initStorage(baseDir, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(storage, core.StoreConfig{
		Pretty: o.pretty,
		Logger: o.logger,
	}), nil
}

// Init prepares the storage for the datastore living in baseDir and returns it.
func Init(baseDir string, opts ...Option) (core.Storage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStorage(baseDir, o)
}

func initStorage(baseDir string, o *options) (core.Storage, error) {
	// 1. Injected storage wins.
	if o.storage != nil {
		return o.storage, nil
	}

	if err := core.ValidateStoreName(o.store); err != nil {
		return nil, err
	}

	// 2. Build from adapter name.
	switch o.adapter {
	case "fs":
		resolved, err := ResolveBaseDir(baseDir)
		if err != nil {
			return nil, err
		}
		storage := fs.NewStorage(fs.Config{
			BaseDir:     resolved,
			Name:        o.store,
			MustExist:   o.mustExist,
			Logger:      o.logger,
			EventBuffer: o.eventBuffer,
		})
		if err := storage.Initialize(context.Background()); err != nil {
			return nil, err
		}
		if o.logger != nil {
			o.logger.Debug("using datastore", "path", storage.Path())
		}
		return storage, nil
	case "memory":
		return memory.NewStorage(o.store), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}
