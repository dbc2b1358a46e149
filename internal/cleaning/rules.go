package cleaning

import "edustat/internal/dataset"

// GPA and grade bounds for the university record tables. A high-school
// GPA of exactly 0 is the upstream export's missing sentinel, not a
// real grade point average.
const (
	MaxGPA          = 4.0
	MaxGrade        = 4.0
	MinGrade        = 0.0
	GPAMissingValue = 0.0
)

// StudentRules returns the canonical cleaning rules for the student
// table: the 0.0 missing sentinel and out-of-range GPAs are masked.
func StudentRules() []Rule {
	return []Rule{
		{
			Column:  dataset.ColHSGPA,
			Reason:  "gpa missing sentinel",
			Invalid: func(v float64) bool { return v == GPAMissingValue },
			Action:  Mask,
		},
		{
			Column:  dataset.ColHSGPA,
			Reason:  "gpa above plausible max",
			Invalid: func(v float64) bool { return v > MaxGPA },
			Action:  Mask,
		},
	}
}

// CourseRules returns the canonical cleaning rules for the course
// table: rows with a grade outside the 0-4 grade-point range are
// dropped rather than masked.
func CourseRules() []Rule {
	return []Rule{
		{
			Column:  dataset.ColGrade,
			Reason:  "grade out of range",
			Invalid: func(v float64) bool { return v < MinGrade || v > MaxGrade },
			Action:  Drop,
		},
	}
}
