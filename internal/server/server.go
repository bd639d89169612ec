// Package server exposes the persisted search state over HTTP for the
// map and table front end. Read-only: searches run via the CLI.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// RunLoader restores the persisted search run.
type RunLoader interface {
	LoadRun(ctx context.Context) (*model.SearchRun, error)
}

// New builds the HTTP handler.
func New(loader RunLoader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/run", func(w http.ResponseWriter, req *http.Request) {
		run, err := loader.LoadRun(req.Context())
		if err != nil {
			zap.L().Error("loading run state failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load state"})
			return
		}
		if run == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no search run persisted"})
			return
		}
		writeJSON(w, http.StatusOK, run)
	})

	r.Get("/api/leads", func(w http.ResponseWriter, req *http.Request) {
		run, err := loader.LoadRun(req.Context())
		if err != nil {
			zap.L().Error("loading run state failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load state"})
			return
		}
		leads := []model.Lead{}
		if run != nil {
			leads = run.Leads
		}
		writeJSON(w, http.StatusOK, leads)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
