package games

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Provider hands out the current library.
type Provider interface {
	Library() *Library
}

type static struct{ l *Library }

func (s static) Library() *Library { return s.l }

// Static returns a Provider that always returns l.
func Static(l *Library) Provider { return static{l} }

// Source is a Provider backed by a library file that can be reloaded,
// either explicitly or by watching the file for changes. A failed reload
// keeps the previous library.
type Source struct {
	path   string
	logger *log.Logger
	cur    atomic.Pointer[Library]
	loads  atomic.Int64
}

// NewSource loads path and returns a Source serving it. A nil logger
// discards output.
func NewSource(path string, logger *log.Logger) (*Source, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Source{path: filepath.Clean(path), logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Library returns the most recently loaded library.
func (s *Source) Library() *Library { return s.cur.Load() }

// Path returns the watched file.
func (s *Source) Path() string { return s.path }

// Loads returns how many times the file has been loaded successfully.
func (s *Source) Loads() int64 { return s.loads.Load() }

// Reload re-reads the library file.
func (s *Source) Reload() error {
	l, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(l)
	s.loads.Add(1)
	return nil
}

// Watch reloads the library whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file by
// rename are picked up. onReload, if non-nil, runs after each successful
// reload.
func (s *Source) Watch(ctx context.Context, onReload func(*Library)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	s.logger.Debug("watching game library", "path", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("library reload failed, keeping previous", "path", s.path, "err", err)
				continue
			}
			l := s.Library()
			s.logger.Info("reloaded game library", "games", l.Len())
			if onReload != nil {
				onReload(l)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "err", err)
		}
	}
}
