package experiment

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	astar "github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder"
	"github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder/grid"
)

// Record is one algorithm run on one solvable instance.
type Record struct {
	RunID        string
	Size         int
	Run          int
	Algorithm    string
	Success      bool
	Seconds      float64
	PathLength   int
	Expanded     int
	Generated    int
	PeakInMemory int
	AvgBranching float64
	MaxBranching int
	MinBranching int
}

// HeuristicByName resolves a config heuristic name.
func HeuristicByName(name string) (astar.Heuristic[grid.Cell], error) {
	switch name {
	case "manhattan":
		return grid.Manhattan, nil
	case "euclidean":
		return grid.Euclidean, nil
	case "zero":
		return grid.Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func algorithmLabel(name string) string {
	switch name {
	case "manhattan":
		return "A* (Manhattan)"
	case "euclidean":
		return "A* (Euclidean)"
	case "zero":
		return "A* (Zero)"
	default:
		return "A* (" + name + ")"
	}
}

// Runner sweeps the configured sizes, keeping only solvable instances.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// NewRunner builds a runner. A nil logger falls back to slog.Default.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, log: logger}
}

// Run generates random instances per size until the required number solve
// under the filter heuristic, then records every configured heuristic on
// each kept instance. Instances and statistics are deterministic for a
// given config; only RunID and wall times vary between invocations.
func (r *Runner) Run() ([]Record, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	heuristics := make([]astar.Heuristic[grid.Cell], len(r.cfg.Heuristics))
	for i, name := range r.cfg.Heuristics {
		h, err := HeuristicByName(name)
		if err != nil {
			return nil, err
		}
		heuristics[i] = h
	}

	rng := rand.New(rand.NewSource(r.cfg.Seed))
	records := make([]Record, 0, len(r.cfg.Sizes)*r.cfg.RequiredSuccesses*len(r.cfg.Heuristics))

	r.log.Info("starting experiments",
		"seed", r.cfg.Seed,
		"sizes", r.cfg.Sizes,
		"target_per_size", r.cfg.RequiredSuccesses)

	for _, size := range r.cfg.Sizes {
		successes := 0
		attempts := 0
		start := grid.Cell{Row: 0, Col: 0}
		goal := grid.Cell{Row: size - 1, Col: size - 1}

		for successes < r.cfg.RequiredSuccesses {
			attempts++
			if attempts > r.cfg.MaxAttemptsPerSize {
				return records, fmt.Errorf("size %d: no %d solvable maps within %d attempts",
					size, r.cfg.RequiredSuccesses, r.cfg.MaxAttemptsPerSize)
			}

			problem, err := grid.Random(rng, size, r.cfg.ObstacleDensity, start, goal)
			if err != nil {
				return records, fmt.Errorf("generate instance: %w", err)
			}

			// Solvability filter: run the first heuristic and discard the
			// map if it finds no path.
			filterResult, filterSeconds := timedSearch(problem, heuristics[0])
			if !filterResult.Found {
				continue
			}

			runID := uuid.NewString()
			records = append(records, makeRecord(runID, size, successes, r.cfg.Heuristics[0], filterResult, filterSeconds))
			r.logRun(size, successes, r.cfg.Heuristics[0], filterResult, filterSeconds)

			for i, h := range heuristics[1:] {
				name := r.cfg.Heuristics[i+1]
				result, seconds := timedSearch(problem, h)
				records = append(records, makeRecord(runID, size, successes, name, result, seconds))
				r.logRun(size, successes, name, result, seconds)
			}

			successes++
		}

		r.log.Info("size complete", "size", size, "instances", successes, "maps_generated", attempts)
	}

	return records, nil
}

func timedSearch(problem *grid.Problem, heuristic astar.Heuristic[grid.Cell]) (astar.Result[grid.Move], float64) {
	began := time.Now()
	result := astar.Search[grid.Cell, grid.Move](problem, heuristic,
		astar.WithCapacityHint(problem.Size()*problem.Size()))
	return result, time.Since(began).Seconds()
}

func makeRecord(runID string, size, run int, heuristicName string, result astar.Result[grid.Move], seconds float64) Record {
	return Record{
		RunID:        runID,
		Size:         size,
		Run:          run,
		Algorithm:    algorithmLabel(heuristicName),
		Success:      result.Found,
		Seconds:      seconds,
		PathLength:   len(result.Path),
		Expanded:     result.Stats.Expanded,
		Generated:    result.Stats.Generated,
		PeakInMemory: result.Stats.PeakInMemory,
		AvgBranching: result.Stats.AvgBranching,
		MaxBranching: result.Stats.MaxBranching,
		MinBranching: result.Stats.MinBranching,
	}
}

func (r *Runner) logRun(size, run int, heuristicName string, result astar.Result[grid.Move], seconds float64) {
	r.log.Info("run complete",
		"size", size,
		"run", run,
		"algorithm", algorithmLabel(heuristicName),
		"path_length", len(result.Path),
		"expanded", result.Stats.Expanded,
		"seconds", fmt.Sprintf("%.4f", seconds))
}
