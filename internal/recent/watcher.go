package recent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 200 * time.Millisecond

// Watch reloads the store whenever the file changes on disk, for example
// when another window saves it, and passes the new list to fn. fn runs on the
// watcher goroutine; UI callers must hop back with fyne.Do.
func (s *Store) Watch(ctx context.Context, fn func([]string)) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create recent files dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create recent files watcher: %w", err)
	}

	// The file is replaced by rename, so watch the directory.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					s.reload(ctx, fn)
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Error("RecentStore", err, map[string]interface{}{
					"path": s.path,
				})
			}
		}
	}()

	return nil
}

func (s *Store) reload(ctx context.Context, fn func([]string)) {
	if ctx.Err() != nil {
		return
	}

	files, err := s.read()
	if err != nil {
		s.logger.Warning("RecentStore", "ignoring unreadable change", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return
	}

	s.mu.Lock()
	changed := !slices.Equal(s.files, files)
	s.files = files
	s.mu.Unlock()

	if changed {
		fn(append([]string(nil), files...))
	}
}
