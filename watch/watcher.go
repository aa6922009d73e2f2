// Package watch rebuilds snippet packages when their file-sourced
// ontologies change on disk.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ontoforge/ontosnip/catalog"
	"github.com/ontoforge/ontosnip/config"
	"github.com/ontoforge/ontosnip/generate"
)

// Config configures the watcher.
type Config struct {
	// DebounceDelay is how long to wait for more changes before rebuilding.
	DebounceDelay time.Duration

	// Logger for logging events.
	Logger *slog.Logger
}

// Watcher maps watched directories back to the packages sourced from
// them and rebuilds those packages after a quiet period.
type Watcher struct {
	cfg      Config
	pipeline *generate.Pipeline
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	// byDir maps a watched directory to the packages sourced under it.
	byDir map[string][]catalog.Package

	// Debouncing: collect changed packages before rebuilding.
	pendingMu sync.Mutex
	pending   map[string]catalog.Package

	// rebuilt receives package names after each rebuild; tests use it.
	rebuilt chan string
}

// New creates a watcher over the file-sourced packages in appCfg.
// Packages with http or git sources have nothing to watch and are
// skipped.
func New(appCfg *config.Config, pipeline *generate.Pipeline, cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = 500 * time.Millisecond
	}

	w := &Watcher{
		cfg:      cfg,
		pipeline: pipeline,
		watcher:  fsw,
		logger:   logger,
		byDir:    make(map[string][]catalog.Package),
		pending:  make(map[string]catalog.Package),
		rebuilt:  make(chan string, 16),
	}

	for _, pkg := range appCfg.Packages {
		if pkg.Source.Path == "" {
			continue
		}
		dir := watchDirFor(pkg.Source.Path)
		w.byDir[dir] = append(w.byDir[dir], pkg)
	}

	return w, nil
}

// watchDirFor returns the directory to watch for a path that may be a
// glob pattern: the longest prefix with no metacharacters.
func watchDirFor(pattern string) string {
	if !strings.ContainsAny(pattern, "*?[{") {
		return filepath.Dir(pattern)
	}

	dir := pattern
	for strings.ContainsAny(dir, "*?[{") {
		dir = filepath.Dir(dir)
	}
	return dir
}

// Watched returns the directories the watcher covers.
func (w *Watcher) Watched() []string {
	dirs := make([]string, 0, len(w.byDir))
	for d := range w.byDir {
		dirs = append(dirs, d)
	}
	return dirs
}

// Rebuilt returns a channel receiving package names after rebuilds.
func (w *Watcher) Rebuilt() <-chan string {
	return w.rebuilt
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// fsnotify watches are not recursive; glob sources can match files
	// anywhere under the root, so every subdirectory needs its own watch.
	for dir := range w.byDir {
		w.addWatchesRecursive(dir)
	}

	w.logger.Info("Watching for ontology changes",
		"dirs", len(w.byDir),
		"debounce", w.cfg.DebounceDelay)

	ticker := time.NewTicker(w.cfg.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// addWatchesRecursive adds watches to root and every directory below it.
func (w *Watcher) addWatchesRecursive(root string) {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
	if err != nil {
		w.logger.Warn("Failed to walk watch root", "path", root, "error", err)
	}
}

// handleNewDirectory adds a watch to a directory created under a
// watched root.
func (w *Watcher) handleNewDirectory(path string) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}

	if err := w.watcher.Add(path); err != nil {
		w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
	} else {
		w.logger.Debug("Added watch for new directory", "path", path)
	}
}

// handleEvent queues the packages affected by one filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.handleNewDirectory(event.Name)
			return
		}
	}

	dir := filepath.Dir(event.Name)
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	for watched, pkgs := range w.byDir {
		if dir != watched && !strings.HasPrefix(dir+string(filepath.Separator), watched+string(filepath.Separator)) {
			continue
		}
		for _, pkg := range pkgs {
			if _, queued := w.pending[pkg.Name]; !queued {
				w.logger.Debug("Queued rebuild", "package", pkg.Name, "file", event.Name)
			}
			w.pending[pkg.Name] = pkg
		}
	}
}

// flushPending rebuilds every queued package.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = make(map[string]catalog.Package)
	w.pendingMu.Unlock()

	for name, pkg := range pending {
		pr, err := w.pipeline.BuildOne(ctx, pkg)
		if err != nil {
			w.logger.Error("Rebuild failed", "package", name, "error", err)
			continue
		}
		w.logger.Info("Rebuilt package", "package", name, "terms", pr.Terms)

		select {
		case w.rebuilt <- name:
		default:
		}
	}
}
