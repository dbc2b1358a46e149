package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sampler draws repeated with-replacement samples from a population
// column to demonstrate estimator variance.
type Sampler struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewSampler creates a sampler. Seed 0 selects a time-seeded source so
// results vary across runs; any other seed pins the draw sequence.
func NewSampler(seed int64, logger *slog.Logger) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sampler{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// SampleMean draws k values with replacement and returns their mean.
// NaN population values are excluded from the sampling frame.
func (s *Sampler) SampleMean(population []float64, k int) (float64, error) {
	frame := dropNaN(population)
	if len(frame) == 0 {
		return 0, fmt.Errorf("population has no valid values")
	}
	if k < 1 {
		return 0, fmt.Errorf("sample size must be >= 1, got %d", k)
	}

	sample := make([]float64, k)
	for i := range sample {
		sample[i] = frame[s.rng.Intn(len(frame))]
	}
	return stat.Mean(sample, nil), nil
}

// Experiment holds the outcome of a repeated-sampling run
type Experiment struct {
	SampleSize     int       `json:"sample_size"`
	Trials         int       `json:"trials"`
	Means          []float64 `json:"means"`
	MinMean        float64   `json:"min_mean"`
	MaxMean        float64   `json:"max_mean"`
	PopulationMean float64   `json:"population_mean"`
}

// Range returns the spread between the extreme sample means
func (e Experiment) Range() float64 {
	return e.MaxMean - e.MinMean
}

// Run repeats SampleMean for the given trial count and reports the
// per-trial means, their min/max range, and the true population mean.
func (s *Sampler) Run(ctx context.Context, population []float64, k, trials int) (Experiment, error) {
	if trials < 1 {
		return Experiment{}, fmt.Errorf("trial count must be >= 1, got %d", trials)
	}

	frame := dropNaN(population)
	if len(frame) == 0 {
		return Experiment{}, fmt.Errorf("population has no valid values")
	}

	start := time.Now()
	means := make([]float64, trials)
	for i := range means {
		m, err := s.SampleMean(frame, k)
		if err != nil {
			return Experiment{}, fmt.Errorf("trial %d: %w", i, err)
		}
		means[i] = m
	}

	exp := Experiment{
		SampleSize:     k,
		Trials:         trials,
		Means:          means,
		MinMean:        floats.Min(means),
		MaxMean:        floats.Max(means),
		PopulationMean: stat.Mean(frame, nil),
	}

	s.logger.InfoContext(ctx, "sampling experiment completed",
		slog.Int("sample_size", k),
		slog.Int("trials", trials),
		slog.Float64("population_mean", exp.PopulationMean),
		slog.Float64("min_mean", exp.MinMean),
		slog.Float64("max_mean", exp.MaxMean),
		slog.Duration("duration", time.Since(start)),
	)

	return exp, nil
}

// dropNaN returns the finite values of the column
func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
