package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"aesvec/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GET /v1/runs?limit=
func ListRuns(rs RunStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rs == nil {
			http.Error(w, "run store not configured", http.StatusNotFound)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		runs, err := rs.ListRuns(r.Context(), limit)
		if err != nil {
			lg.Errorw("list runs failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"data": runs, "count": len(runs)})
	}
}

// GET /v1/runs/{id}
func GetRun(rs RunStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rs == nil {
			http.Error(w, "run store not configured", http.StatusNotFound)
			return
		}
		id := chi.URLParam(r, "id")
		if err := uuid.Validate(id); err != nil {
			http.Error(w, "id must be a valid UUID", http.StatusBadRequest)
			return
		}
		run, err := rs.GetRun(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		if err != nil {
			lg.Errorw("get run failed", "id", id, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, run)
	}
}
