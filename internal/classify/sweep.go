package classify

import (
	"fmt"
	"math"
)

// ThresholdStep is the spacing of the decision-threshold grid [0, 1)
const ThresholdStep = 0.05

// SweepPoint holds the classification quality at one decision threshold.
//
// BalancedScore is the geometric mean of precision and recall, not the
// conventional harmonic-mean F1. Both are reported so the difference
// stays visible.
type SweepPoint struct {
	Threshold     float64 `json:"threshold"`
	Precision     float64 `json:"precision"`
	Recall        float64 `json:"recall"`
	BalancedScore float64 `json:"balanced_score"`
	F1            float64 `json:"f1"`
}

// ThresholdSweep evaluates hard labels (positive iff probability exceeds
// the threshold) over the grid 0.00, 0.05, ..., 0.95 and reports
// precision and recall against the positive class at each point.
func ThresholdSweep(proba []float64, labels []int) ([]SweepPoint, error) {
	if len(proba) != len(labels) {
		return nil, fmt.Errorf("probability count %d does not match label count %d", len(proba), len(labels))
	}
	if len(proba) == 0 {
		return nil, fmt.Errorf("no predictions to sweep")
	}

	positives := 0
	for _, label := range labels {
		if label == 1 {
			positives++
		}
	}
	if positives == 0 {
		return nil, fmt.Errorf("no positive labels: recall is undefined")
	}

	steps := int(math.Round(1 / ThresholdStep))
	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		threshold := float64(i) * ThresholdStep

		tp, fp := 0, 0
		for k, p := range proba {
			if p > threshold {
				if labels[k] == 1 {
					tp++
				} else {
					fp++
				}
			}
		}

		var precision, recall float64
		if tp+fp > 0 {
			precision = float64(tp) / float64(tp+fp)
		}
		recall = float64(tp) / float64(positives)

		point := SweepPoint{
			Threshold:     threshold,
			Precision:     precision,
			Recall:        recall,
			BalancedScore: math.Sqrt(precision * recall),
		}
		if precision+recall > 0 {
			point.F1 = 2 * precision * recall / (precision + recall)
		}
		points = append(points, point)
	}

	return points, nil
}
