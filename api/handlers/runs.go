package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gibbslab/motifflow/internal/runstore"
)

// RunsAPI serves archived motif search runs.
type RunsAPI struct {
	Store *runstore.Store
}

// RunItem represents one archived run in API responses.
type RunItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Motif     string    `json:"motif"`
	Score     float64   `json:"score"`
	MotifLen  int       `json:"motif_len"`
	Samples   int       `json:"nsamples"`
	Sequences int       `json:"sequences"`
	SeqLen    int       `json:"seq_len"`
	Profile   string    `json:"profile,omitempty"`
}

func runItem(run runstore.Run, withProfile bool) RunItem {
	item := RunItem{
		ID:        run.ID,
		CreatedAt: run.CreatedAt,
		Motif:     run.Motif,
		Score:     run.Score,
		MotifLen:  run.MotifLen,
		Samples:   run.Samples,
		Sequences: run.Sequences,
		SeqLen:    run.SeqLen,
	}
	if withProfile {
		item.Profile = run.Profile
	}
	return item
}

// List handles run listing requests. Accepts an optional ?limit= query.
func (a *RunsAPI) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, `{"error": "limit must be a positive integer"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := a.Store.ListRuns(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	items := make([]RunItem, len(runs))
	for i, run := range runs {
		items[i] = runItem(run, false)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// Get handles single-run requests by id.
func (a *RunsAPI) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, ok, err := a.Store.GetRun(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, `{"error": "run not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runItem(run, true))
}
