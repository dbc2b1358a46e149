package dataset

import (
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// studentTypes pins the column types of the student table
var studentTypes = map[string]series.Type{
	ColStudentID: series.String,
	ColHSGPA:     series.Float,
	ColMajor:     series.String,
	ColSex:       series.String,
	ColState:     series.String,
}

// courseTypes pins the column types of the course table
var courseTypes = map[string]series.Type{
	ColStudentID: series.String,
	ColTerm:      series.String,
	ColSubject:   series.String,
	ColCatalog:   series.String,
	ColGrade:     series.Float,
	ColGPAOther:  series.Float,
}

// LoadStudents reads the student table from a CSV file, transparently
// decompressing .gz inputs.
func LoadStudents(path string, logger *slog.Logger) (dataframe.DataFrame, error) {
	return loadTable(path, studentTypes, StudentColumns, logger)
}

// LoadCourses reads the course table from a CSV file, transparently
// decompressing .gz inputs.
func LoadCourses(path string, logger *slog.Logger) (dataframe.DataFrame, error) {
	return loadTable(path, courseTypes, CourseColumns, logger)
}

func loadTable(path string, types map[string]series.Type, required []string, logger *slog.Logger) (dataframe.DataFrame, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open table: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	df := dataframe.ReadCSV(reader,
		dataframe.HasHeader(true),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV %s: %w", path, df.Err)
	}

	if err := requireColumns(df, required); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("table %s: %w", path, err)
	}

	logger.Info("loaded table",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("cols", df.Ncol()),
	)

	return df, nil
}

// requireColumns verifies that every required column is present
func requireColumns(df dataframe.DataFrame, required []string) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
