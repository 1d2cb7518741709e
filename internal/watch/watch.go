package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Dir calls fn with the name of every file below root that is created or
// written, once the file has been quiet for interval. New directories are
// watched as they appear. Dir blocks until ctx is done.
func Dir(ctx context.Context, root string, interval time.Duration, fn func(name string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating new fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchDirRecursively(watcher, root); err != nil {
		return fmt.Errorf("adding dir to watch: %w", err)
	}

	debounceEvents(ctx, interval, watcher, func(event fsnotify.Event) {
		if !relevantFilename(event.Name) {
			return
		}
		if isDir(event.Name) {
			if err := watchDirRecursively(watcher, event.Name); err != nil {
				slog.Warn("Watching new directory", "dir", event.Name, "err", err)
			}
			return
		}
		fn(event.Name)
	})
	return nil
}

// relevantFilename tests whether a change to path is worth reporting. It
// ignores temporary files from editors like vim and Emacs.
func relevantFilename(path string) bool {
	ext := filepath.Ext(path)
	// vim swap files: .swp, .swo, .swn, etc
	if len(ext) == 4 && strings.HasPrefix(ext, ".sw") {
		return false
	}
	// vim and Emacs backup files
	if strings.HasSuffix(path, "~") {
		return false
	}
	// Emacs autosave files
	base := filepath.Base(path)
	if strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return false
	}
	return true
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func watchDirRecursively(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("adding path %s to watch: %w", path, err)
			}
			slog.Debug("Watching", "dir", path)
		}
		return nil
	})
}

func debounceEvents(ctx context.Context, interval time.Duration, watcher *fsnotify.Watcher, fn func(event fsnotify.Event)) {
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watch error", "err", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			mu.Lock()
			t, ok := timers[ev.Name]
			if !ok {
				t = time.AfterFunc(math.MaxInt64, func() {
					fn(ev)
					mu.Lock()
					defer mu.Unlock()
					delete(timers, ev.Name)
				})
				t.Stop()
				timers[ev.Name] = t
			}
			mu.Unlock()
			t.Reset(interval)
		case <-ctx.Done():
			return
		}
	}
}
