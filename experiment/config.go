// Package experiment runs batches of randomized grid instances through the
// search core and collects per-run effort statistics for CSV export.
package experiment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls one experiment batch.
type Config struct {
	// Sizes lists the grid dimensions to sweep.
	Sizes []int `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	// ObstacleDensity is the per-cell obstacle probability.
	ObstacleDensity float64 `yaml:"obstacle_density" validate:"gte=0,lt=1"`
	// RequiredSuccesses is how many solvable instances to record per size.
	// Unsolvable maps are discarded and regenerated.
	RequiredSuccesses int `yaml:"required_successes" validate:"gt=0"`
	// MaxAttemptsPerSize bounds map regeneration so a hostile density cannot
	// spin forever.
	MaxAttemptsPerSize int `yaml:"max_attempts_per_size" validate:"gt=0"`
	// Seed fixes the obstacle stream; two runs with the same config produce
	// identical instances and statistics.
	Seed int64 `yaml:"seed"`
	// Heuristics names the estimators to run on each instance. The first one
	// doubles as the solvability filter.
	Heuristics []string `yaml:"heuristics" validate:"required,min=1,dive,oneof=manhattan euclidean zero"`
	// OutputCSV is where run records are written.
	OutputCSV string `yaml:"output_csv" validate:"required"`
}

// DefaultConfig mirrors the harness defaults: five sizes, 20% obstacle
// density, five solvable instances per size, seed 42.
func DefaultConfig() Config {
	return Config{
		Sizes:              []int{5, 10, 15, 20, 25},
		ObstacleDensity:    0.2,
		RequiredSuccesses:  5,
		MaxAttemptsPerSize: 1000,
		Seed:               42,
		Heuristics:         []string{"manhattan", "euclidean"},
		OutputCSV:          filepath.Join("output", "experiment_results.csv"),
	}
}

// Validate checks the config against its struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid experiment config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config file, layered over DefaultConfig so partial
// files only override what they mention.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WriteExampleConfig writes DefaultConfig as YAML, as a starting point for
// editing.
func WriteExampleConfig(path string) error {
	raw, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}
