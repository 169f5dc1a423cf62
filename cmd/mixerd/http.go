package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
	"github.com/edumarques81/mixerd/internal/metrics"
	"github.com/edumarques81/mixerd/internal/version"
)

type routes struct {
	registry  *daemon.Registry
	metrics   *metrics.Metrics
	socket    http.Handler
	staticDir string
}

func (rt routes) handler() http.Handler {
	mux := http.NewServeMux()

	if rt.socket != nil {
		mux.Handle("/socket.io/", rt.socket)
	}
	mux.HandleFunc("GET /health", rt.health)
	mux.HandleFunc("GET /api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, version.GetInfo())
	})
	mux.HandleFunc("GET /api/v1/status", rt.daemonStatus)
	mux.HandleFunc("GET /api/v1/status/{serial}", rt.mixerStatus)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}
	if rt.staticDir != "" {
		mux.Handle("/", spa(rt.staticDir))
	}

	return corsMiddleware(mux)
}

func (rt routes) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"mixers": rt.registry.Len(),
	})
}

func (rt routes) daemonStatus(w http.ResponseWriter, r *http.Request) {
	if writeJSON(w, http.StatusOK, rt.registry.SnapshotAll()) && rt.metrics != nil {
		rt.metrics.SnapshotServed(metrics.ScopeDaemon)
	}
}

func (rt routes) mixerStatus(w http.ResponseWriter, r *http.Request) {
	serial := r.PathValue("serial")
	m, err := rt.registry.Snapshot(serial)
	if errors.Is(err, daemon.ErrNotAttached) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if writeJSON(w, http.StatusOK, m) && rt.metrics != nil {
		rt.metrics.SnapshotServed(metrics.ScopeMixer)
	}
}

// writeJSON encodes v before committing the status line, so a value that
// cannot be encoded becomes a 500 rather than a truncated 200. It reports
// whether v was written.
func writeJSON(w http.ResponseWriter, code int, v any) bool {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return false
	}
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
	return true
}

// spa serves files from dir and falls back to index.html for unknown paths.
func spa(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}
