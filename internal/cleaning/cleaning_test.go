package cleaning

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustat/internal/dataset"
)

func studentFrame(gpas []float64) dataframe.DataFrame {
	ids := make([]string, len(gpas))
	for i := range ids {
		ids[i] = string(rune('A' + i))
	}
	return dataframe.New(
		series.New(ids, series.String, dataset.ColStudentID),
		series.New(gpas, series.Float, dataset.ColHSGPA),
	)
}

func TestCleanMasksInvalidGPA(t *testing.T) {
	df := studentFrame([]float64{0, 2.0, 4.0, 5.0, 31.0})

	cleaned, report, err := Clean(df, StudentRules(), nil)
	require.NoError(t, err)

	// 0 is the missing sentinel, 5.0 and 31.0 are outliers: three masked.
	assert.Equal(t, 3, report.Masked)
	assert.Equal(t, 0, report.Dropped)
	assert.Equal(t, 5, cleaned.Nrow())

	gpas := cleaned.Col(dataset.ColHSGPA).Float()
	var valid []float64
	for _, v := range gpas {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	assert.ElementsMatch(t, []float64{2.0, 4.0}, valid)
}

func TestCleanDropsInvalidGrades(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"S1", "S1", "S2", "S3"}, series.String, dataset.ColStudentID),
		series.New([]float64{4.0, -1.0, 2.5, 31.0}, series.Float, dataset.ColGrade),
	)

	cleaned, report, err := Clean(df, CourseRules(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Dropped)
	assert.Equal(t, 0, report.Masked)
	require.Equal(t, 2, cleaned.Nrow())
	assert.ElementsMatch(t, []float64{4.0, 2.5}, cleaned.Col(dataset.ColGrade).Float())
}

func TestCleanIsIdempotent(t *testing.T) {
	df := studentFrame([]float64{0, 2.0, 4.0, 5.0, 31.0})

	once, first, err := Clean(df, StudentRules(), nil)
	require.NoError(t, err)
	require.True(t, first.Changed())

	twice, second, err := Clean(once, StudentRules(), nil)
	require.NoError(t, err)

	assert.False(t, second.Changed(), "second pass must be a fixed point")
	assert.Equal(t, once.Nrow(), twice.Nrow())

	before := once.Col(dataset.ColHSGPA).Float()
	after := twice.Col(dataset.ColHSGPA).Float()
	require.Equal(t, len(before), len(after))
	for i := range before {
		if math.IsNaN(before[i]) {
			assert.True(t, math.IsNaN(after[i]))
		} else {
			assert.Equal(t, before[i], after[i])
		}
	}
}

func TestCleanDropIsIdempotent(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"S1", "S2", "S3"}, series.String, dataset.ColStudentID),
		series.New([]float64{4.0, 5.5, 2.0}, series.Float, dataset.ColGrade),
	)

	once, _, err := Clean(df, CourseRules(), nil)
	require.NoError(t, err)
	twice, report, err := Clean(once, CourseRules(), nil)
	require.NoError(t, err)

	assert.False(t, report.Changed())
	assert.Equal(t, once.Nrow(), twice.Nrow())
}

func TestCleanErrors(t *testing.T) {
	df := studentFrame([]float64{3.0})

	t.Run("unknown column", func(t *testing.T) {
		rules := []Rule{{
			Column:  "no_such_column",
			Reason:  "test",
			Invalid: func(v float64) bool { return false },
			Action:  Mask,
		}}
		_, _, err := Clean(df, rules, nil)
		assert.Error(t, err)
	})

	t.Run("missing predicate", func(t *testing.T) {
		rules := []Rule{{Column: dataset.ColHSGPA, Reason: "test", Action: Mask}}
		_, _, err := Clean(df, rules, nil)
		assert.Error(t, err)
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "mask", Mask.String())
	assert.Equal(t, "drop", Drop.String())
	assert.Equal(t, "unknown", Action(9).String())
}
