// Package history records solver runs and their per-generation statistics.
//
// Two backends implement Store: MemoryStore for tests and one-shot runs, and
// SQLiteStore on modernc.org/sqlite for runs that should outlive the process.
// Records are stored as versioned JSON payloads.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/circlepack/ga"
	"github.com/katalvlaran/circlepack/placement"
)

// Versions stamped on every stored Run; decodeRun rejects any other pair.
const (
	// CurrentSchemaVersion is the layout version of Run.
	CurrentSchemaVersion = 1

	// CurrentCodecVersion is the payload encoding version.
	CurrentCodecVersion = 1
)

var (
	// ErrNotInitialized is returned by a store used before Init.
	ErrNotInitialized = errors.New("history: store is not initialized")

	// ErrBadRunID indicates an ID that is not a UUID.
	ErrBadRunID = errors.New("history: run id is not a uuid")

	// ErrVersionMismatch indicates a payload written by another codec.
	ErrVersionMismatch = errors.New("history: record version mismatch")

	// ErrUnknownBackend is returned by NewStore.
	ErrUnknownBackend = errors.New("history: unsupported store backend")
)

// Run describes one solve and its outcome.
type Run struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`

	ID        string                  `json:"id"`
	StartedAt time.Time               `json:"started_at"`
	Config    placement.Configuration `json:"config"`

	Seed           uint64  `json:"seed"`
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	CrossRatio     float64 `json:"cross_ratio"`
	MutateRatio    float64 `json:"mutate_ratio"`
	Init           string  `json:"init"`
	Mutation       string  `json:"mutation"`
	Fitness        string  `json:"fitness"`

	Best     placement.State `json:"best,omitempty"`
	Coverage float64         `json:"coverage"`
	Reason   string          `json:"reason,omitempty"`
	Elapsed  time.Duration   `json:"elapsed"`
}

// Store persists runs and generations.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	AppendGeneration(ctx context.Context, runID string, stats ga.GenerationStats) error
	GetGenerations(ctx context.Context, runID string) ([]ga.GenerationStats, bool, error)
	Close() error
}

// NewRun returns a Run with a fresh ID and the current versions, filled
// from cfg and opts.
func NewRun(cfg placement.Configuration, opts ga.Options) Run {
	return Run{
		SchemaVersion:  CurrentSchemaVersion,
		CodecVersion:   CurrentCodecVersion,
		ID:             uuid.NewString(),
		StartedAt:      time.Now().UTC(),
		Config:         cfg,
		Seed:           opts.Seed,
		PopulationSize: opts.PopulationSize,
		Generations:    opts.Generations,
		CrossRatio:     opts.CrossRatio,
		MutateRatio:    opts.MutateRatio,
		Init:           opts.Init.String(),
		Mutation:       opts.Mutation.String(),
		Fitness:        opts.Fitness.String(),
	}
}

// Finish copies the outcome of res into run.
func (r *Run) Finish(res ga.Result, coverage float64, elapsed time.Duration) {
	r.Best = res.Best.Clone()
	r.Coverage = coverage
	r.Reason = res.Reason.String()
	r.Elapsed = elapsed
}

// NewStore returns a store for kind: "" or "memory", or "sqlite" at path.
func NewStore(kind, path string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, kind)
	}
}

// Recorder returns a ga.Options.OnGeneration hook that appends each
// generation to store. The first error is kept and later calls are no-ops;
// err returns it.
func Recorder(ctx context.Context, store Store, runID string) (hook func(ga.GenerationStats), err func() error) {
	var first error
	hook = func(st ga.GenerationStats) {
		if first != nil {
			return
		}
		first = store.AppendGeneration(ctx, runID, st)
	}
	return hook, func() error { return first }
}

func checkRunID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrBadRunID, id)
	}
	return nil
}
