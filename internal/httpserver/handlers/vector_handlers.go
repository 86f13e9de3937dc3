package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"aesvec/internal/services/vector"
	"aesvec/internal/store"
	"aesvec/internal/util"

	"go.uber.org/zap"
)

const maxCount = 1000

// GET /v1/cases
func ListCases() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{"data": vector.Cases, "count": len(vector.Cases)})
	}
}

// GET /v1/vectors?format=&count=&iv=&case=
func GenerateVectors(rs RunStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f, err := vector.ParseFormat(q.Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		count := 1
		if s := q.Get("count"); s != "" {
			count, err = strconv.Atoi(s)
			if err != nil || count < 1 || count > maxCount {
				http.Error(w, "count must be between 1 and "+strconv.Itoa(maxCount), http.StatusBadRequest)
				return
			}
		}
		var iv []byte
		if s := q.Get("iv"); s != "" {
			if iv, err = util.DecodeHex(s); err != nil {
				http.Error(w, "iv must be hex", http.StatusBadRequest)
				return
			}
		}
		scenarios, err := vector.Select(vector.SplitCases(q.Get("case")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		vs, err := vector.Generate(scenarios, vector.Options{Count: count, IV: iv, Logger: lg})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, vector.ErrIVSize) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}

		if rs != nil {
			run := store.NewRun("http", f, count, vs)
			if err := rs.Record(r.Context(), run); err != nil {
				lg.Errorw("record run failed", "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("X-Run-ID", run.ID)
		}

		var buf bytes.Buffer
		if err := vector.Render(&buf, f, vs); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", f.ContentType())
		_, _ = w.Write(buf.Bytes())
	}
}
