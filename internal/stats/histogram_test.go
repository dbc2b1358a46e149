package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinEdges(t *testing.T) {
	t.Run("three grade levels", func(t *testing.T) {
		edges, err := BinEdges([]float64{1, 2, 4})
		require.NoError(t, err)
		require.Len(t, edges, 4)

		assert.InDeltaSlice(t, []float64{0.5, 1.5, 3.0, 5.0}, edges, 1e-9)

		// Each distinct value lies strictly between its bracketing edges.
		for i, v := range []float64{1, 2, 4} {
			assert.Less(t, edges[i], v)
			assert.Greater(t, edges[i+1], v)
		}
	})

	t.Run("strictly increasing", func(t *testing.T) {
		edges, err := BinEdges([]float64{0, 1, 1.5, 2, 2.5, 3, 3.5, 4})
		require.NoError(t, err)
		require.Len(t, edges, 9)
		for i := 1; i < len(edges); i++ {
			assert.Greater(t, edges[i], edges[i-1])
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		edges, err := BinEdges([]float64{2, 1, 2, 4, 1, 4})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0.5, 1.5, 3.0, 5.0}, edges, 1e-9)
	})

	t.Run("NaN values ignored", func(t *testing.T) {
		edges, err := BinEdges([]float64{1, math.NaN(), 2, 4, math.NaN()})
		require.NoError(t, err)
		assert.Len(t, edges, 4)
	})

	t.Run("too few distinct values", func(t *testing.T) {
		_, err := BinEdges([]float64{3, 3, 3})
		assert.Error(t, err)

		_, err = BinEdges(nil)
		assert.Error(t, err)
	})
}
