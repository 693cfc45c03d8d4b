package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"carve/generator"
)

const (
	selectionExt  = ".selection"
	watchDebounce = 100 * time.Millisecond
)

// runWatchMode turns every <Name>.selection file dropped into inbox into a
// component. Selection files are removed once their component exists.
func runWatchMode(ctx context.Context, inbox string, gen *generator.Generator, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	absInbox, err := filepath.Abs(inbox)
	if err != nil {
		return fmt.Errorf("error getting absolute path: %w", err)
	}
	if err := os.MkdirAll(absInbox, 0755); err != nil {
		return fmt.Errorf("error creating inbox directory: %w", err)
	}
	if err := watcher.Add(absInbox); err != nil {
		return fmt.Errorf("failed to watch inbox: %w", err)
	}

	var mu sync.Mutex
	pending := map[string]struct{}{}

	existing, err := filepath.Glob(filepath.Join(absInbox, "*"+selectionExt))
	if err != nil {
		return fmt.Errorf("failed to scan inbox: %w", err)
	}
	for _, path := range existing {
		pending[path] = struct{}{}
	}

	processChan := make(chan struct{}, 1)
	if len(existing) > 0 {
		processChan <- struct{}{}
	}

	var debounceTimer *time.Timer

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if !strings.HasSuffix(event.Name, selectionExt) {
					continue
				}

				slog.Debug("Watcher event", "op", event.Op, "path", event.Name)

				mu.Lock()
				pending[event.Name] = struct{}{}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					select {
					case processChan <- struct{}{}:
					default:
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Watcher error", "error", err)
			}
		}
	}()

	fmt.Fprintf(out, "Watching %s for *%s files... (Press Ctrl+C to stop)\n", absInbox, selectionExt)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-processChan:
		}

		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		pending = map[string]struct{}{}
		mu.Unlock()
		sort.Strings(paths)

		processSelections(ctx, paths, gen, out)
	}
}

func processSelections(ctx context.Context, paths []string, gen *generator.Generator, out io.Writer) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Error("Failed to read selection", "path", path, "error", err)
			}
			continue
		}

		name := strings.TrimSuffix(filepath.Base(path), selectionExt)
		res, err := gen.Create(ctx, generator.Request{Name: name, Selection: string(data), Origin: path})
		switch {
		case err == nil:
			fmt.Fprintf(out, "Component created at %s\n", res.Path)
			if err := os.Remove(path); err != nil {
				slog.Debug("Failed to remove selection file", "path", path, "error", err)
			}
		case errors.Is(err, generator.ErrFileExists):
			generator.PrintWarning(out, err.Error())
		default:
			slog.Error("Failed to create component", "path", path, "error", err)
		}
	}
}
