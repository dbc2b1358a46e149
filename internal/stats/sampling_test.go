package stats

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSampleMeanWithinPopulationBounds(t *testing.T) {
	population := []float64{1.0, 2.0, 2.5, 3.0, 3.7, 4.0}
	sampler := NewSampler(42, nil)

	for _, k := range []int{1, 3, 10, 500} {
		mean, err := sampler.SampleMean(population, k)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, mean, floats.Min(population))
		assert.LessOrEqual(t, mean, floats.Max(population))
	}
}

func TestSampleMeanSkipsNaN(t *testing.T) {
	population := []float64{math.NaN(), 2.0, math.NaN()}
	sampler := NewSampler(7, nil)

	mean, err := sampler.SampleMean(population, 50)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mean)
}

func TestSampleMeanErrors(t *testing.T) {
	sampler := NewSampler(1, nil)

	_, err := sampler.SampleMean(nil, 5)
	assert.Error(t, err)

	_, err = sampler.SampleMean([]float64{math.NaN()}, 5)
	assert.Error(t, err)

	_, err = sampler.SampleMean([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestRunExperiment(t *testing.T) {
	population := []float64{1, 2, 3, 4}
	sampler := NewSampler(99, nil)

	exp, err := sampler.Run(context.Background(), population, 3, 40)
	require.NoError(t, err)

	assert.Equal(t, 3, exp.SampleSize)
	assert.Equal(t, 40, exp.Trials)
	assert.Len(t, exp.Means, 40)
	assert.InDelta(t, 2.5, exp.PopulationMean, 1e-9)
	assert.LessOrEqual(t, exp.MinMean, exp.MaxMean)
	assert.GreaterOrEqual(t, exp.MinMean, 1.0)
	assert.LessOrEqual(t, exp.MaxMean, 4.0)
	assert.GreaterOrEqual(t, exp.Range(), 0.0)
}

func TestRunSeededIsReproducible(t *testing.T) {
	population := []float64{1, 2, 3, 4, 5}

	a, err := NewSampler(1234, nil).Run(context.Background(), population, 4, 10)
	require.NoError(t, err)
	b, err := NewSampler(1234, nil).Run(context.Background(), population, 4, 10)
	require.NoError(t, err)

	assert.Equal(t, a.Means, b.Means)
}

func TestRunErrors(t *testing.T) {
	sampler := NewSampler(5, nil)

	_, err := sampler.Run(context.Background(), []float64{1, 2}, 2, 0)
	assert.Error(t, err)

	_, err = sampler.Run(context.Background(), nil, 2, 5)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{2.0, math.NaN(), 4.0})
	require.NoError(t, err)

	assert.Equal(t, 2, s.N)
	assert.Equal(t, 1, s.Missing)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 4.0, s.Max)

	_, err = Describe([]float64{math.NaN()})
	assert.Error(t, err)
}
