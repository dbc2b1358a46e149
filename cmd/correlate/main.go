// Command correlate runs the standalone spurious-correlation scan over
// a directory of independent year/value series and prints the retained
// pairs, optionally writing them to CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"edustat/internal/config"
	"edustat/internal/correlation"
	"edustat/internal/exporter"
	"edustat/internal/infrastructure"
)

func main() {
	seriesDir := flag.String("series", "data/series", "directory of year/value series CSVs")
	alpha := flag.Float64("alpha", correlation.DefaultAlpha, "significance threshold for retaining a pair")
	outDir := flag.String("out", "", "write retained pairs as CSV to this directory (optional)")
	flag.Parse()

	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "console",
	})
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	series, err := correlation.LoadDir(*seriesDir)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load series", "error", err)
		os.Exit(1)
	}

	pairs := correlation.Scan(ctx, series, *alpha, logger)
	if len(pairs) == 0 {
		fmt.Printf("no pairs significant at p < %g\n", *alpha)
		return
	}

	fmt.Printf("%-20s %-20s %10s %10s %6s\n", "SERIES A", "SERIES B", "r", "p", "n")
	for _, pair := range pairs {
		fmt.Printf("%-20s %-20s %10.4f %10.4f %6d\n", pair.A, pair.B, pair.R, pair.P, pair.N)
	}

	if *outDir != "" {
		writer := exporter.NewCSVWriter(*outDir, logger)
		if err := writer.WriteCorrelations("correlations.csv", exporter.Report{Correlations: pairs}); err != nil {
			logger.ErrorContext(ctx, "Failed to write CSV", "error", err)
			os.Exit(1)
		}
	}
}
