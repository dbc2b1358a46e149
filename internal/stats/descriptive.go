package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for one numeric column
type Summary struct {
	N       int     `json:"n"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Describe computes a descriptive summary, excluding NaN values
func Describe(values []float64) (Summary, error) {
	valid := dropNaN(values)
	if len(valid) == 0 {
		return Summary{}, fmt.Errorf("no valid values to summarize")
	}
	return Summary{
		N:       len(valid),
		Missing: len(values) - len(valid),
		Mean:    stat.Mean(valid, nil),
		StdDev:  stat.StdDev(valid, nil),
		Min:     floats.Min(valid),
		Max:     floats.Max(valid),
	}, nil
}
