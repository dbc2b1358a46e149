package exporter

import (
	"time"

	"edustat/internal/classify"
	"edustat/internal/cleaning"
	"edustat/internal/correlation"
	"edustat/internal/stats"
)

// Report aggregates everything one analyzer run produced
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	StudentCleaning cleaning.Report `json:"student_cleaning"`
	CourseCleaning  cleaning.Report `json:"course_cleaning"`

	GPASummary   stats.Summary    `json:"gpa_summary"`
	GradeSummary stats.Summary    `json:"grade_summary"`
	GradeEdges   []float64        `json:"grade_edges"`
	Sampling     stats.Experiment `json:"sampling"`

	Correlations []correlation.Pair    `json:"correlations"`
	Sweep        []classify.SweepPoint `json:"sweep"`
}
