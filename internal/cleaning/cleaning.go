package cleaning

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Action determines what happens to a row whose value fails a rule
type Action int

const (
	// Mask replaces the invalid value with a missing marker (NaN)
	Mask Action = iota
	// Drop removes the entire row
	Drop
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case Mask:
		return "mask"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Rule marks values of one numeric column as invalid. Missing values
// (NaN) never match: a cleaned cell stays cleaned, which makes rules
// idempotent by construction.
type Rule struct {
	Column  string
	Reason  string
	Invalid func(v float64) bool
	Action  Action
}

// Report summarizes what one Clean pass changed
type Report struct {
	Masked  int `json:"masked"`
	Dropped int `json:"dropped"`
}

// Changed reports whether the pass modified anything
func (r Report) Changed() bool {
	return r.Masked > 0 || r.Dropped > 0
}

// Clean applies the rules in order and returns the cleaned frame with a
// change report. Masking nulls invalid cells in place; dropping removes
// matching rows. No repair or imputation is attempted.
func Clean(df dataframe.DataFrame, rules []Rule, logger *slog.Logger) (dataframe.DataFrame, Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var report Report
	for _, rule := range rules {
		if rule.Invalid == nil {
			return dataframe.DataFrame{}, report, fmt.Errorf("rule %q on column %s has no predicate", rule.Reason, rule.Column)
		}
		if !hasColumn(df, rule.Column) {
			return dataframe.DataFrame{}, report, fmt.Errorf("rule %q: column %s not in table", rule.Reason, rule.Column)
		}

		values := df.Col(rule.Column).Float()
		switch rule.Action {
		case Mask:
			masked := 0
			for i, v := range values {
				if !math.IsNaN(v) && rule.Invalid(v) {
					values[i] = math.NaN()
					masked++
				}
			}
			if masked > 0 {
				df = df.Mutate(series.New(values, series.Float, rule.Column))
				if df.Err != nil {
					return dataframe.DataFrame{}, report, fmt.Errorf("rule %q: mask column %s: %w", rule.Reason, rule.Column, df.Err)
				}
			}
			report.Masked += masked
			logger.Debug("applied mask rule",
				slog.String("column", rule.Column),
				slog.String("reason", rule.Reason),
				slog.Int("masked", masked),
			)

		case Drop:
			keep := make([]int, 0, len(values))
			for i, v := range values {
				if math.IsNaN(v) || !rule.Invalid(v) {
					keep = append(keep, i)
				}
			}
			dropped := len(values) - len(keep)
			if dropped > 0 {
				df = df.Subset(keep)
				if df.Err != nil {
					return dataframe.DataFrame{}, report, fmt.Errorf("rule %q: drop rows on %s: %w", rule.Reason, rule.Column, df.Err)
				}
			}
			report.Dropped += dropped
			logger.Debug("applied drop rule",
				slog.String("column", rule.Column),
				slog.String("reason", rule.Reason),
				slog.Int("dropped", dropped),
			)

		default:
			return dataframe.DataFrame{}, report, fmt.Errorf("rule %q: unknown action %d", rule.Reason, rule.Action)
		}
	}

	return df, report, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
