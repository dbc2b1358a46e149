// Package exporter writes analysis results to CSV files and an Excel
// report workbook, one sheet per pipeline stage.
package exporter
