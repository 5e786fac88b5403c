package history

import (
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/circlepack/ga"
)

// MemoryStore keeps everything in maps guarded by one RWMutex.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]Run
	generations map[string][]ga.GenerationStats
}

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store, dropping every run and generation.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]Run)
	s.generations = make(map[string][]ga.GenerationStats)
	return nil
}

// SaveRun inserts or replaces run, keyed by its ID.
//
// Errors: ErrBadRunID, ErrNotInitialized.
func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	if err := checkRunID(run.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	run.Best = run.Best.Clone()
	s.runs[run.ID] = run
	return nil
}

// GetRun returns a copy of the run with id and whether it exists.
func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Run{}, false, ErrNotInitialized
	}
	run, ok := s.runs[id]
	if ok {
		run.Best = run.Best.Clone()
	}
	return run, ok, nil
}

// ListRuns returns every run ordered by StartedAt, then ID.
//
// Complexity: O(R log R) for R stored runs.
func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]Run, 0, len(s.runs))

	var run Run
	for _, run = range s.runs {
		run.Best = run.Best.Clone()
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// AppendGeneration appends stats to the generations of runID.
//
// Errors: ErrBadRunID, ErrNotInitialized.
func (s *MemoryStore) AppendGeneration(_ context.Context, runID string, stats ga.GenerationStats) error {
	if err := checkRunID(runID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.generations[runID] = append(s.generations[runID], stats)
	return nil
}

// GetGenerations returns a copy of the generations of runID in append order.
//
// Complexity: O(G) for G stored generations.
func (s *MemoryStore) GetGenerations(_ context.Context, runID string) ([]ga.GenerationStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, false, ErrNotInitialized
	}
	gens, ok := s.generations[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]ga.GenerationStats(nil), gens...), true, nil
}

// Close is a no-op; the data lives until the store is dropped.
func (s *MemoryStore) Close() error {
	return nil
}
