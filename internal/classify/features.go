package classify

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"edustat/internal/dataset"
)

// FeatureRow is one student's classification example: the sum of grades
// earned in the target subject, the sum of grades earned everywhere
// else, and whether the student declared the target major.
type FeatureRow struct {
	StudentID    string  `json:"student_id"`
	TargetGrades float64 `json:"target_grades"`
	OtherGrades  float64 `json:"other_grades"`
	Label        int     `json:"label"`
}

// BuildFeatures aggregates the combined (student, course) table into one
// feature row per student. NaN grades are ignored; the label is 1 when
// the student's declared major equals targetMajor.
func BuildFeatures(combined dataframe.DataFrame, targetSubject, targetMajor string) ([]FeatureRow, error) {
	for _, col := range []string{dataset.ColStudentID, dataset.ColSubject, dataset.ColGrade, dataset.ColMajor} {
		if !hasColumn(combined, col) {
			return nil, fmt.Errorf("combined table missing column %s", col)
		}
	}

	ids := combined.Col(dataset.ColStudentID).Records()
	subjects := combined.Col(dataset.ColSubject).Records()
	grades := combined.Col(dataset.ColGrade).Float()
	majors := combined.Col(dataset.ColMajor).Records()

	byStudent := make(map[string]*FeatureRow)
	for i, id := range ids {
		row, ok := byStudent[id]
		if !ok {
			row = &FeatureRow{StudentID: id}
			if majors[i] == targetMajor {
				row.Label = 1
			}
			byStudent[id] = row
		}
		if math.IsNaN(grades[i]) {
			continue
		}
		if subjects[i] == targetSubject {
			row.TargetGrades += grades[i]
		} else {
			row.OtherGrades += grades[i]
		}
	}

	if len(byStudent) == 0 {
		return nil, fmt.Errorf("no students in combined table")
	}

	rows := make([]FeatureRow, 0, len(byStudent))
	for _, row := range byStudent {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentID < rows[j].StudentID })
	return rows, nil
}

// Matrix converts feature rows into a design matrix and label vector
func Matrix(rows []FeatureRow) (*mat.Dense, []float64) {
	X := mat.NewDense(len(rows), 2, nil)
	y := make([]float64, len(rows))
	for i, row := range rows {
		X.Set(i, 0, row.TargetGrades)
		X.Set(i, 1, row.OtherGrades)
		y[i] = float64(row.Label)
	}
	return X, y
}

// Labels extracts the integer labels of the rows
func Labels(rows []FeatureRow) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = row.Label
	}
	return out
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
