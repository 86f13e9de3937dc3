package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"aesvec/internal/models"
)

// RunStore is the persistence the handlers need; nil disables recording.
type RunStore interface {
	Record(ctx context.Context, run models.Run) error
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
	GetRun(ctx context.Context, id string) (models.Run, error)
}

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
