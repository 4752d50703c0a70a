package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gibbslab/motifflow/internal/runstore"
	"github.com/gibbslab/motifflow/pkg/motifflow"
)

// SearchRequest represents a motif search request.
type SearchRequest struct {
	Sequences []string `json:"sequences"`
	MotifLen  int      `json:"motif_len"`
	Patience  int      `json:"patience"`
	Samples   int      `json:"nsamples"`
	Seed      int64    `json:"seed"`
}

// SearchResponse represents the response for a motif search.
type SearchResponse struct {
	RunID      string  `json:"run_id,omitempty"`
	Motif      string  `json:"motif"`
	Score      float64 `json:"score"`
	Offsets    []int   `json:"offsets"`
	Chain      int     `json:"chain"`
	Iterations int     `json:"iterations"`
	Profile    string  `json:"profile"`
}

// MotifAPI serves motif search requests and archives each completed
// search in the run store. Store may be nil, in which case runs are not
// persisted.
type MotifAPI struct {
	Store *runstore.Store
}

// Search handles motif search requests.
func (a *MotifAPI) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seqs := make([]*motifflow.Sequence, 0, len(req.Sequences))
	for _, bases := range req.Sequences {
		seq, err := motifflow.NewSequence(bases)
		if err != nil {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		seqs = append(seqs, seq)
	}

	set, err := motifflow.NewSet(seqs)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	cfg := motifflow.DefaultConfig()
	if req.MotifLen != 0 {
		cfg.MotifLen = req.MotifLen
	}
	if req.Patience != 0 {
		cfg.Patience = req.Patience
	}
	if req.Samples != 0 {
		cfg.Samples = req.Samples
	}
	cfg.Seed = req.Seed

	result, err := motifflow.Search(set, cfg)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	resp := SearchResponse{
		Motif:      result.Motif,
		Score:      result.Score,
		Offsets:    result.Offsets,
		Chain:      result.Chain,
		Iterations: result.Iterations,
		Profile:    result.Profile.Format(),
	}

	if a.Store != nil {
		run := runstore.Run{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
			Motif:     result.Motif,
			Score:     result.Score,
			MotifLen:  cfg.MotifLen,
			Samples:   cfg.Samples,
			Sequences: set.Size(),
			SeqLen:    set.SeqLen(),
			Profile:   resp.Profile,
		}
		if err := a.Store.SaveRun(r.Context(), run); err != nil {
			http.Error(w, `{"error": "saving run: `+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		resp.RunID = run.ID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// MinLengthRequest represents a minimum sequence length request.
type MinLengthRequest struct {
	PThreshold   float64 `json:"p_threshold"`
	NSequences   int     `json:"n_sequences"`
	MotifLen     int     `json:"motif_len"`
	AlphabetSize int     `json:"alphabet_size"`
}

// MinLengthResponse represents the response for minimum sequence length.
type MinLengthResponse struct {
	Length int `json:"length"`
}

// MinLengthHandler handles minimum suggested sequence length requests.
func MinLengthHandler(w http.ResponseWriter, r *http.Request) {
	var req MinLengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	length, err := motifflow.MinSequenceLength(req.PThreshold, req.NSequences, req.MotifLen, req.AlphabetSize)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MinLengthResponse{Length: length})
}

// ChanceRequest represents a chance non-occurrence probability request.
type ChanceRequest struct {
	NSequences   int `json:"n_sequences"`
	MotifLen     int `json:"motif_len"`
	SeqLength    int `json:"seq_length"`
	AlphabetSize int `json:"alphabet_size"`
}

// ChanceResponse represents the response for chance probability.
type ChanceResponse struct {
	Probability float64 `json:"probability"`
}

// ChanceHandler handles chance non-occurrence probability requests.
func ChanceHandler(w http.ResponseWriter, r *http.Request) {
	var req ChanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	prob, err := motifflow.NontargetProbability(req.NSequences, req.MotifLen, req.SeqLength, req.AlphabetSize)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChanceResponse{Probability: prob})
}
