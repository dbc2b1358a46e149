package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// CSVWriter writes analysis products into a report directory
type CSVWriter struct {
	outDir string
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer rooted at the given directory
func NewCSVWriter(outDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{outDir: outDir, logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file inside the report directory
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) error {
	fullPath := filepath.Join(w.outDir, name)

	w.logger.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)),
	)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCorrelations writes the retained correlation pairs
func (w *CSVWriter) WriteCorrelations(name string, report Report) error {
	records := make([][]string, 0, len(report.Correlations))
	for _, pair := range report.Correlations {
		records = append(records, []string{
			pair.A,
			pair.B,
			formatFloat(pair.R),
			formatFloat(pair.P),
			strconv.Itoa(pair.N),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"SeriesA", "SeriesB", "PearsonR", "PValue", "AlignedYears"},
		Records: records,
	})
}

// WriteSweep writes the threshold sweep grid
func (w *CSVWriter) WriteSweep(name string, report Report) error {
	records := make([][]string, 0, len(report.Sweep))
	for _, pt := range report.Sweep {
		records = append(records, []string{
			formatFloat(pt.Threshold),
			formatFloat(pt.Precision),
			formatFloat(pt.Recall),
			formatFloat(pt.BalancedScore),
			formatFloat(pt.F1),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"Threshold", "Precision", "Recall", "BalancedScore", "F1"},
		Records: records,
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
