package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the Excel report workbook
const (
	SheetSummary        = "Summary"
	SheetSampling       = "Sampling"
	SheetCorrelations   = "Correlations"
	SheetClassification = "Classification"
)

// ExcelWriter renders a full analysis report as an Excel workbook, one
// sheet per pipeline stage.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates an Excel report writer
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteWorkbook writes the report to path, creating parent directories
func (w *ExcelWriter) WriteWorkbook(path string, report Report) error {
	start := time.Now()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetSummary)
	for _, sheet := range []string{SheetSampling, SheetCorrelations, SheetClassification} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	if err := w.writeSummary(f, report); err != nil {
		return err
	}
	if err := w.writeSampling(f, report); err != nil {
		return err
	}
	if err := w.writeCorrelations(f, report); err != nil {
		return err
	}
	if err := w.writeClassification(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("wrote Excel report",
		slog.String("path", path),
		slog.String("run_id", report.RunID),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func (w *ExcelWriter) writeSummary(f *excelize.File, report Report) error {
	rows := [][]interface{}{
		{"Run ID", report.RunID},
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
		{},
		{"Student GPA values masked", report.StudentCleaning.Masked},
		{"Course rows dropped", report.CourseCleaning.Dropped},
		{},
		{"Metric", "N", "Missing", "Mean", "StdDev", "Min", "Max"},
		{"High-school GPA", report.GPASummary.N, report.GPASummary.Missing, report.GPASummary.Mean,
			report.GPASummary.StdDev, report.GPASummary.Min, report.GPASummary.Max},
		{"Course grade", report.GradeSummary.N, report.GradeSummary.Missing, report.GradeSummary.Mean,
			report.GradeSummary.StdDev, report.GradeSummary.Min, report.GradeSummary.Max},
	}
	if len(report.GradeEdges) > 0 {
		edgeRow := []interface{}{"Grade histogram edges"}
		for _, e := range report.GradeEdges {
			edgeRow = append(edgeRow, e)
		}
		rows = append(rows, []interface{}{}, edgeRow)
	}
	return writeRows(f, SheetSummary, rows)
}

func (w *ExcelWriter) writeSampling(f *excelize.File, report Report) error {
	rows := [][]interface{}{
		{"Sample size", report.Sampling.SampleSize},
		{"Trials", report.Sampling.Trials},
		{"Population mean", report.Sampling.PopulationMean},
		{"Min sample mean", report.Sampling.MinMean},
		{"Max sample mean", report.Sampling.MaxMean},
		{"Range", report.Sampling.Range()},
		{},
		{"Trial", "SampleMean"},
	}
	for i, mean := range report.Sampling.Means {
		rows = append(rows, []interface{}{i + 1, mean})
	}
	return writeRows(f, SheetSampling, rows)
}

func (w *ExcelWriter) writeCorrelations(f *excelize.File, report Report) error {
	rows := [][]interface{}{
		{"SeriesA", "SeriesB", "PearsonR", "PValue", "AlignedYears"},
	}
	for _, pair := range report.Correlations {
		rows = append(rows, []interface{}{pair.A, pair.B, pair.R, pair.P, pair.N})
	}
	return writeRows(f, SheetCorrelations, rows)
}

func (w *ExcelWriter) writeClassification(f *excelize.File, report Report) error {
	rows := [][]interface{}{
		{"Threshold", "Precision", "Recall", "BalancedScore", "F1"},
	}
	for _, pt := range report.Sweep {
		rows = append(rows, []interface{}{pt.Threshold, pt.Precision, pt.Recall, pt.BalancedScore, pt.F1})
	}
	return writeRows(f, SheetClassification, rows)
}

// writeRows writes values row by row starting at A1
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %s row %d: %w", sheet, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
