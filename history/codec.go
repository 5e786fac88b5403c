package history

import (
	"encoding/json"
	"math"
	"time"

	"github.com/katalvlaran/circlepack/ga"
)

func encodeRun(r Run) ([]byte, error) {
	return json.Marshal(r)
}

func decodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion || run.CodecVersion != CurrentCodecVersion {
		return Run{}, ErrVersionMismatch
	}
	return run, nil
}

// generationRecord is the stored form of ga.GenerationStats. JSON has no
// infinity, so a perfect score is flagged instead.
type generationRecord struct {
	Generation     int     `json:"generation"`
	GenerationBest float64 `json:"generation_best"`
	GenerationMax  bool    `json:"generation_max,omitempty"`
	Best           float64 `json:"best"`
	BestMax        bool    `json:"best_max,omitempty"`
	Improved       bool    `json:"improved"`
	Children       int     `json:"children"`
	Mutations      int     `json:"mutations"`
	MatchFallbacks int     `json:"match_fallbacks"`
	ElapsedNanos   int64   `json:"elapsed_ns"`
}

func finite(v float64) (float64, bool) {
	if math.IsInf(v, 1) {
		return 0, true
	}
	return v, false
}

func encodeGeneration(st ga.GenerationStats) ([]byte, error) {
	rec := generationRecord{
		Generation:     st.Generation,
		Improved:       st.Improved,
		Children:       st.Children,
		Mutations:      st.Mutations,
		MatchFallbacks: st.MatchFallbacks,
		ElapsedNanos:   int64(st.Elapsed),
	}
	rec.GenerationBest, rec.GenerationMax = finite(st.GenerationBest)
	rec.Best, rec.BestMax = finite(st.Best)
	return json.Marshal(rec)
}

func decodeGeneration(data []byte) (ga.GenerationStats, error) {
	var rec generationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ga.GenerationStats{}, err
	}
	st := ga.GenerationStats{
		Generation:     rec.Generation,
		GenerationBest: rec.GenerationBest,
		Best:           rec.Best,
		Improved:       rec.Improved,
		Children:       rec.Children,
		Mutations:      rec.Mutations,
		MatchFallbacks: rec.MatchFallbacks,
	}
	st.Elapsed = time.Duration(rec.ElapsedNanos)
	if rec.GenerationMax {
		st.GenerationBest = math.Inf(1)
	}
	if rec.BestMax {
		st.Best = math.Inf(1)
	}
	return st, nil
}
