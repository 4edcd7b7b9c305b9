// package formatter provides functions to export dataset tables and download manifests to output formats (CSV, Parquet)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/frame"
)

// SummaryFileName is the manifest filename written into the output directory.
const SummaryFileName = "summary.csv"

// TripManifestToCSV converts trip download records to CSV format with columns: url, path, year, month
func TripManifestToCSV(files []datasets.TripFile) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"url", "path", "year", "month"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, file := range files {
		record := []string{
			file.URL,
			file.Path,
			strconv.Itoa(file.Year),
			strconv.Itoa(file.Month),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteTripManifest writes the trip download manifest to path
func WriteTripManifest(path string, files []datasets.TripFile) error {
	data, err := TripManifestToCSV(files)
	if err != nil {
		return fmt.Errorf("failed to generate manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	return nil
}

// ArchiveManifestToCSV converts archive download records to CSV format with columns: url, path
func ArchiveManifestToCSV(files []datasets.ArchiveFile) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"url", "path"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, file := range files {
		if err := writer.Write([]string{file.URL, file.Path}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteArchiveManifest writes the archive download manifest to path
func WriteArchiveManifest(path string, files []datasets.ArchiveFile) error {
	data, err := ArchiveManifestToCSV(files)
	if err != nil {
		return fmt.Errorf("failed to generate manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	return nil
}

// FrameToCSV converts a table to CSV format preserving column order.
// Missing cells render as empty fields.
func FrameToCSV(f *frame.Frame) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(f.Columns()); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	cols := f.Cols()
	record := make([]string, len(cols))
	for i := 0; i < f.Len(); i++ {
		for j, col := range cols {
			record[j] = cellString(col, i)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFrameCSV writes the table to a CSV file at path
func WriteFrameCSV(path string, f *frame.Frame) error {
	data, err := FrameToCSV(f)
	if err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	return nil
}

// cellString renders one cell as CSV text. Floats drop trailing zeros and
// timestamps reuse the layout the column was parsed with.
func cellString(c *frame.Column, i int) string {
	if !c.IsValid(i) {
		return ""
	}

	switch c.Kind {
	case frame.Float:
		return strconv.FormatFloat(c.FloatAt(i), 'f', -1, 64)
	case frame.Bool:
		return strconv.FormatBool(c.BoolAt(i))
	case frame.Time:
		return c.TimeAt(i).Format(c.Layout)
	default:
		return c.StringAt(i)
	}
}
