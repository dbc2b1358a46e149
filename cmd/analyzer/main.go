// Command analyzer runs the full university-records pipeline: load the
// student and course tables, clean them, join them, run the sampling
// and correlation experiments, fit the major classifier, and export an
// Excel/CSV report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"edustat/internal/classify"
	"edustat/internal/cleaning"
	"edustat/internal/config"
	"edustat/internal/correlation"
	"edustat/internal/dataset"
	"edustat/internal/exporter"
	"edustat/internal/infrastructure"
	"edustat/internal/stats"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file (optional)")
	dataDir := flag.String("data", "", "data directory (overrides config)")
	seriesDir := flag.String("series", "", "directory of year/value series CSVs (overrides config)")
	outDir := flag.String("out", "", "report output directory (overrides config)")
	sampleSize := flag.Int("sample-size", 0, "sample size for the repeated-sampling experiment (overrides config)")
	trials := flag.Int("trials", 0, "trial count for the repeated-sampling experiment (overrides config)")
	subject := flag.String("subject", "", "target subject for the classifier (overrides config)")
	major := flag.String("major", "", "target major for the classifier (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyOverrides(cfg, *dataDir, *seriesDir, *outDir, *sampleSize, *trials, *subject, *major)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	if err := cfg.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to prepare directories", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateInputPaths(); err != nil {
		logger.ErrorContext(ctx, "Input validation failed", "error", err)
		os.Exit(1)
	}

	report, err := runPipeline(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", "error", err)
		os.Exit(1)
	}

	if err := exportReport(cfg, report, logger); err != nil {
		logger.ErrorContext(ctx, "Report export failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Analysis complete",
		"report_dir", cfg.Paths.ReportsDir,
		"correlations_retained", len(report.Correlations),
	)
}

// applyOverrides copies non-zero flag values over the loaded config
func applyOverrides(cfg *config.Config, dataDir, seriesDir, outDir string, sampleSize, trials int, subject, major string) {
	if dataDir != "" {
		cfg.Paths.DataDir = dataDir
	}
	if seriesDir != "" {
		cfg.Paths.SeriesDir = seriesDir
	}
	if outDir != "" {
		cfg.Paths.ReportsDir = outDir
	}
	if sampleSize > 0 {
		cfg.Sampling.SampleSize = sampleSize
	}
	if trials > 0 {
		cfg.Sampling.Trials = trials
	}
	if subject != "" {
		cfg.Classify.TargetSubject = subject
	}
	if major != "" {
		cfg.Classify.TargetMajor = major
	}
}

// runPipeline executes every analysis stage and assembles the report
func runPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger) (exporter.Report, error) {
	report := exporter.Report{
		RunID:       infrastructure.RunIDFromContext(ctx),
		GeneratedAt: time.Now().UTC(),
	}

	// Stage 1: load the two flat tables.
	students, err := dataset.LoadStudents(cfg.StudentsPath(), logger)
	if err != nil {
		return report, fmt.Errorf("load students: %w", err)
	}
	courses, err := dataset.LoadCourses(cfg.CoursesPath(), logger)
	if err != nil {
		return report, fmt.Errorf("load courses: %w", err)
	}

	// Stage 2: mask invalid student GPAs, drop invalid course grades.
	students, report.StudentCleaning, err = cleaning.Clean(students, cleaning.StudentRules(), logger)
	if err != nil {
		return report, fmt.Errorf("clean students: %w", err)
	}
	courses, report.CourseCleaning, err = cleaning.Clean(courses, cleaning.CourseRules(), logger)
	if err != nil {
		return report, fmt.Errorf("clean courses: %w", err)
	}

	// Stage 3: descriptive summaries and grade histogram edges.
	gpas := students.Col(dataset.ColHSGPA).Float()
	grades := courses.Col(dataset.ColGrade).Float()

	report.GPASummary, err = stats.Describe(gpas)
	if err != nil {
		return report, fmt.Errorf("summarize GPA: %w", err)
	}
	report.GradeSummary, err = stats.Describe(grades)
	if err != nil {
		return report, fmt.Errorf("summarize grades: %w", err)
	}
	report.GradeEdges, err = stats.BinEdges(grades)
	if err != nil {
		return report, fmt.Errorf("derive grade bin edges: %w", err)
	}

	// Stage 4: join course rows with student attributes.
	combined, err := dataset.Combine(courses, students, logger)
	if err != nil {
		return report, fmt.Errorf("combine tables: %w", err)
	}

	// Stage 5: repeated-sampling experiment over the GPA column.
	sampler := stats.NewSampler(cfg.Sampling.Seed, logger)
	report.Sampling, err = sampler.Run(ctx, gpas, cfg.Sampling.SampleSize, cfg.Sampling.Trials)
	if err != nil {
		return report, fmt.Errorf("sampling experiment: %w", err)
	}

	// Stage 6: spurious-correlation scan over the independent series.
	series, err := correlation.LoadDir(cfg.Paths.SeriesDir)
	if err != nil {
		return report, fmt.Errorf("load series: %w", err)
	}
	report.Correlations = correlation.Scan(ctx, series, cfg.Correlation.Alpha, logger)

	// Stage 7: classifier features, training, and threshold sweep.
	rows, err := classify.BuildFeatures(combined, cfg.Classify.TargetSubject, cfg.Classify.TargetMajor)
	if err != nil {
		return report, fmt.Errorf("build features: %w", err)
	}
	X, y := classify.Matrix(rows)

	model := classify.NewLogisticRegression(cfg.Classify.LearningRate, cfg.Classify.Epochs)
	if err := model.Fit(X, y); err != nil {
		return report, fmt.Errorf("fit classifier: %w", err)
	}
	proba, err := model.PredictProba(X)
	if err != nil {
		return report, fmt.Errorf("predict probabilities: %w", err)
	}
	report.Sweep, err = classify.ThresholdSweep(proba, classify.Labels(rows))
	if err != nil {
		return report, fmt.Errorf("threshold sweep: %w", err)
	}

	return report, nil
}

// exportReport writes the Excel workbook and the CSV companions
func exportReport(cfg *config.Config, report exporter.Report, logger *slog.Logger) error {
	excel := exporter.NewExcelWriter(logger)
	if err := excel.WriteWorkbook(filepath.Join(cfg.Paths.ReportsDir, "analysis.xlsx"), report); err != nil {
		return err
	}

	csv := exporter.NewCSVWriter(cfg.Paths.ReportsDir, logger)
	if err := csv.WriteCorrelations("correlations.csv", report); err != nil {
		return err
	}
	return csv.WriteSweep("threshold_sweep.csv", report)
}
