package correlation

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance threshold for retaining a pair
const DefaultAlpha = 0.05

// minAlignedYears is the smallest overlap for which r and p are defined
const minAlignedYears = 3

// Pair is one retained correlation between two independent series
type Pair struct {
	P float64 `json:"p"`
	R float64 `json:"r"`
	A string  `json:"series_a"`
	B string  `json:"series_b"`
	N int     `json:"n"`
}

// Scan computes the Pearson correlation and two-sided significance for
// every unordered series pair aligned on year, retains pairs with
// p < alpha, and sorts them by r descending.
//
// No multiple-comparison correction is applied: with many independent
// pairs and alpha 0.05, spurious hits are expected, which is the point
// of the exercise. Pairs with fewer than three aligned years or zero
// variance on either side are skipped.
func Scan(ctx context.Context, all []Series, alpha float64, logger *slog.Logger) []Pair {
	if logger == nil {
		logger = slog.Default()
	}
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}

	start := time.Now()
	tested := 0
	var retained []Pair

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			x, y := Align(all[i], all[j])
			if len(x) < minAlignedYears {
				logger.DebugContext(ctx, "skipping pair with insufficient overlap",
					slog.String("series_a", all[i].Name),
					slog.String("series_b", all[j].Name),
					slog.Int("aligned", len(x)),
				)
				continue
			}

			r := stat.Correlation(x, y, nil)
			if math.IsNaN(r) {
				// Zero variance on one side: correlation undefined.
				continue
			}
			tested++

			p := pearsonPValue(r, len(x))
			if p < alpha {
				retained = append(retained, Pair{
					P: p,
					R: r,
					A: all[i].Name,
					B: all[j].Name,
					N: len(x),
				})
			}
		}
	}

	sort.Slice(retained, func(i, j int) bool { return retained[i].R > retained[j].R })

	logger.InfoContext(ctx, "correlation scan completed",
		slog.Int("series", len(all)),
		slog.Int("pairs_tested", tested),
		slog.Int("pairs_retained", len(retained)),
		slog.Float64("alpha", alpha),
		slog.Duration("duration", time.Since(start)),
	)

	return retained
}

// pearsonPValue returns the two-sided significance of a Pearson
// coefficient r over n points, using the t distribution with n-2
// degrees of freedom.
func pearsonPValue(r float64, n int) float64 {
	if n < 3 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}
