package stats

import (
	"fmt"
	"math"
	"sort"
)

// BinEdges derives histogram bin edges for a column of discrete numeric
// levels (e.g. grade points) such that every distinct value sits in the
// center of its own bin. Interior edges are the midpoints between
// consecutive sorted distinct values; the two outer edges mirror the
// first and last midpoint around the extreme values.
//
// The result has len(distinct)+1 strictly increasing edges. NaN inputs
// are ignored. Fewer than two distinct values is an error: no midpoint
// can be computed.
func BinEdges(values []float64) ([]float64, error) {
	distinct := distinctSorted(values)
	if len(distinct) < 2 {
		return nil, fmt.Errorf("need at least 2 distinct values, got %d", len(distinct))
	}

	edges := make([]float64, len(distinct)+1)
	for i := 0; i < len(distinct)-1; i++ {
		edges[i+1] = (distinct[i] + distinct[i+1]) / 2
	}
	edges[0] = 2*distinct[0] - edges[1]
	edges[len(edges)-1] = 2*distinct[len(distinct)-1] - edges[len(edges)-2]

	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, fmt.Errorf("edges not strictly increasing at index %d", i)
		}
	}

	return edges, nil
}

// distinctSorted returns the sorted distinct finite values of the input
func distinctSorted(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	var out []float64
	for _, v := range values {
		if math.IsNaN(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
