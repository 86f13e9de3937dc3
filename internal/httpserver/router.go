package httpserver

import (
	"net/http"

	"aesvec/internal/auth"
	"aesvec/internal/httpserver/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the fixture API. rs may be nil; a non-empty secret puts /v1 behind bearer auth.
func NewRouter(rs handlers.RunStore, secret []byte, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Group(func(api chi.Router) {
		if len(secret) > 0 {
			api.Use(auth.BearerAuth(secret))
		}
		api.Get("/v1/cases", handlers.ListCases())
		api.Get("/v1/vectors", handlers.GenerateVectors(rs, lg))
		api.Get("/v1/runs", handlers.ListRuns(rs, lg))
		api.Get("/v1/runs/{id}", handlers.GetRun(rs, lg))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
