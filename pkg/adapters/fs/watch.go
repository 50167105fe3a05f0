package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notekeeper/pkg/core"
)

// Watch emits an event each time the datastore file changes on disk.
// Bursts (an atomic rewrite is several fs operations) are coalesced into one
// event after the debounce period. The channel is closed when ctx is done.
func (s *Storage) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	present, err := s.Exists(ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.config.BaseDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.config.BaseDir, err)
	}

	events := make(chan core.Event, s.config.EventBuffer)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, events, present)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher panic", "error", err)
	}))

	return events, nil
}

func (s *Storage) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event, present bool) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending bool
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	filename := filepath.Base(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			// Permission-only changes carry no content change.
			if event.Op == fsnotify.Chmod {
				continue
			}
			s.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			pending = true
			if timer == nil {
				timer = time.NewTimer(s.config.Debounce)
			} else {
				timer.Reset(s.config.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if !pending {
				continue
			}
			pending = false

			exists, err := s.Exists(ctx)
			if err != nil {
				s.logger.Error("failed to stat datastore", "error", err)
				continue
			}

			var eType core.EventType
			switch {
			case exists && present:
				eType = core.EventModify
			case exists:
				eType = core.EventCreate
			case present:
				eType = core.EventDelete
			default:
				continue
			}
			present = exists

			s.recordEvent()
			select {
			case events <- core.Event{Type: eType, Store: s.config.Name, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("fsnotify error", "error", wErr)
		}
	}
}
