package dataset

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
)

// Combine left-joins course rows with student attributes on the student
// identifier, producing one enriched row per (student, course) pair.
// Course rows without a matching student keep NA student attributes.
func Combine(courses, students dataframe.DataFrame, logger *slog.Logger) (dataframe.DataFrame, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := requireColumns(courses, []string{ColStudentID}); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("course table: %w", err)
	}
	if err := requireColumns(students, []string{ColStudentID}); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("student table: %w", err)
	}

	combined := courses.LeftJoin(students, ColStudentID)
	if combined.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to join tables: %w", combined.Err)
	}

	logger.Info("combined tables",
		slog.Int("course_rows", courses.Nrow()),
		slog.Int("students", students.Nrow()),
		slog.Int("combined_rows", combined.Nrow()),
	)

	return combined, nil
}
