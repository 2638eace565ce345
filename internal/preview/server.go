// Package preview serves the generated site locally, rebuilding on theme or
// content changes and notifying browsers over SSE.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// Rebuild re-runs the generation pipeline.
type Rebuild func(ctx context.Context) error

// Server is the local preview HTTP server.
type Server struct {
	Addr      string
	OutputDir string
	WatchDirs []string
	Rebuild   Rebuild
	Registry  *prom.Registry

	hub      *ReloadHub
	debounce time.Duration
}

// NewServer creates a preview server watching watchDirs for changes.
func NewServer(addr, outputDir string, watchDirs []string, rebuild Rebuild, registry *prom.Registry) *Server {
	return &Server{
		Addr:      addr,
		OutputDir: outputDir,
		WatchDirs: watchDirs,
		Rebuild:   rebuild,
		Registry:  registry,
		hub:       NewReloadHub(),
		debounce:  500 * time.Millisecond,
	}
}

// Start runs the server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.OutputDir)))
	mux.Handle("/reload", s.hub)
	if s.Registry != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(s.Registry))
	}

	srv := &http.Server{Addr: s.Addr, Handler: mux}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go s.watch(watchCtx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", "addr", s.Addr, "dir", s.OutputDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// watch monitors the watched directories and triggers debounced rebuilds.
func (s *Server) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher, live rebuild disabled", "error", err)
		return
	}
	defer watcher.Close()

	for _, dir := range s.WatchDirs {
		if err := addRecursive(watcher, dir); err != nil {
			slog.Warn("Failed to watch directory", "dir", dir, "error", err)
		}
	}

	var timer *time.Timer
	rebuild := func() {
		slog.Info("Change detected, rebuilding")
		if err := s.Rebuild(ctx); err != nil {
			slog.Error("Rebuild failed", "error", err)
			return
		}
		s.hub.Broadcast(time.Now().Format(time.RFC3339))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
