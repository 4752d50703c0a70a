package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gibbslab/motifflow/pkg/motifflow"
)

// SequenceRequest represents a single-sequence request.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// ValidateResponse represents the response for sequence validation.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Length int    `json:"length"`
	Error  string `json:"error,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{}
	seq, err := motifflow.NewSequence(req.Sequence)
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Valid = true
		resp.Length = seq.Len()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SequenceInfoResponse represents the response for sequence information.
type SequenceInfoResponse struct {
	Length       int     `json:"length"`
	GCContent    float64 `json:"gc_content"`
	ATContent    float64 `json:"at_content"`
	ACount       int     `json:"a_count"`
	CCount       int     `json:"c_count"`
	GCount       int     `json:"g_count"`
	TCount       int     `json:"t_count"`
	NCount       int     `json:"n_count"`
	HasAmbiguous bool    `json:"has_ambiguous"`
}

// SequenceInfoHandler handles sequence information requests.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := motifflow.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	stats := motifflow.SequenceStats(seq)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SequenceInfoResponse{
		Length:       stats.Length,
		GCContent:    stats.GCContent,
		ATContent:    stats.ATContent,
		ACount:       stats.ACount,
		CCount:       stats.CCount,
		GCount:       stats.GCount,
		TCount:       stats.TCount,
		NCount:       stats.NCount,
		HasAmbiguous: stats.HasAmbiguous,
	})
}

// SetStatsRequest represents a sequence set statistics request.
type SetStatsRequest struct {
	Sequences []string `json:"sequences"`
}

// SetStatsResponse represents the response for set statistics.
type SetStatsResponse struct {
	Count         int     `json:"count"`
	TotalBases    int     `json:"total_bases"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  int     `json:"median_length"`
	MeanGCContent float64 `json:"mean_gc_content"`
	N50           int     `json:"n50"`
}

// SequenceSetStatsHandler handles sequence set statistics requests.
func SequenceSetStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SetStatsRequest
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

	stats, err := motifflow.SequenceSetStats(seqs)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SetStatsResponse{
		Count:         stats.Count,
		TotalBases:    stats.TotalBases,
		MinLength:     stats.MinLength,
		MaxLength:     stats.MaxLength,
		MeanLength:    stats.MeanLength,
		MedianLength:  stats.MedianLength,
		MeanGCContent: stats.MeanGCContent,
		N50:           stats.N50,
	})
}
