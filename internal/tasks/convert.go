package tasks

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/formatter"
	"github.com/da-moon/datapull/internal/frame"
	"github.com/da-moon/datapull/internal/shared"
)

// ConvertOpts contains configuration for a powerlifting dataset conversion.
type ConvertOpts struct {
	OutputDir    string          // Destination directory (default: ./data)
	Format       datasets.Format // Output format: parquet or csv (default: parquet)
	ArchiveURL   string          // Archive URL (default: datasets.DefaultArchiveURL)
	Compression  string          // Parquet compression codec (default: snappy)
	DryRun       bool            // Report the plan without downloading or converting
	SkipExisting bool            // Return early when the output file already exists
	KeepCSV      bool            // Keep a CSV copy alongside Parquet output
	NoCleanup    bool            // Leave intermediate files and folders in place
}

// ConvertResult contains all data from a powerlifting dataset conversion.
type ConvertResult struct {
	URL        string // Archive source URL
	OutputPath string // Converted dataset location
	CSVPath    string // CSV copy location when kept alongside Parquet output
	Rows       int    // Table row count
	Columns    int    // Table column count
	Skipped    bool   // Output pre-existed and conversion was skipped
	DryRun     bool   // Plan only, nothing downloaded
	Cleaned    int    // Intermediate files removed
}

// ConvertPowerlifting downloads the powerlifting archive and converts the
// bundled CSV to the requested output format.
//
// The full pipeline is download, extract, load, coerce, persist, clean up.
// Column coercion never fails: unparseable cells degrade to missing values.
// Download and extraction errors are fatal.
func (e *PullEngine) ConvertPowerlifting(ctx context.Context, progress chan<- ProgressUpdate, opts ConvertOpts) (*ConvertResult, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: engine constructed without a client", shared.ErrClientUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = "./data"
	}
	if opts.Format == "" {
		opts.Format = datasets.Parquet
	}
	if opts.ArchiveURL == "" {
		opts.ArchiveURL = datasets.DefaultArchiveURL
	}

	outputPath := datasets.PowerliftingOutputPath(opts.OutputDir, opts.Format)
	result := &ConvertResult{
		URL:        opts.ArchiveURL,
		OutputPath: outputPath,
	}

	if shared.FileExists(outputPath) {
		if opts.SkipExisting {
			result.Skipped = true
			e.sendProgress(progress, skipConvertUpdate(outputPath))
			return result, nil
		}
		e.sendProgress(progress, overwriteUpdate(outputPath))
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if opts.DryRun {
		result.DryRun = true
		e.sendProgress(progress, planConvertUpdate(opts.ArchiveURL, outputPath))
		return result, nil
	}

	archivePath := datasets.PowerliftingArchivePath(opts.OutputDir)
	e.sendProgress(progress, fetchArchiveUpdate(opts.ArchiveURL))
	if _, err := e.client.Fetch(ctx, opts.ArchiveURL, archivePath); err != nil {
		return result, fmt.Errorf("failed to fetch archive: %w", err)
	}

	csvPath, err := e.extractArchiveCSV(progress, archivePath, opts.OutputDir)
	if err != nil {
		return result, err
	}

	e.sendProgress(progress, loadTableUpdate(csvPath))
	table, err := loadTable(csvPath)
	if err != nil {
		return result, fmt.Errorf("failed to load %s: %w", csvPath, err)
	}
	result.Rows = table.Len()
	result.Columns = len(table.Columns())

	e.sendProgress(progress, coerceDatesUpdate(len(datasets.PowerliftingDateColumns)))
	for _, dc := range datasets.PowerliftingDateColumns {
		table.CoerceTime(dc.Name, dc.Layout)
	}

	e.sendProgress(progress, coerceNumericUpdate(len(datasets.PowerliftingNumericColumns)))
	table.CoerceFloat(datasets.PowerliftingNumericColumns...)

	e.sendProgress(progress, coerceBoolUpdate(len(datasets.PowerliftingBoolColumns)))
	for _, name := range datasets.PowerliftingBoolColumns {
		table.CoerceBool(name, datasets.YesNo)
	}

	e.sendProgress(progress, writeOutputUpdate(outputPath))
	switch opts.Format {
	case datasets.CSV:
		if err := formatter.WriteFrameCSV(outputPath, table); err != nil {
			return result, err
		}
	default:
		popts := formatter.Options{Compression: formatter.ParseCompressionType(opts.Compression)}
		if err := formatter.WriteFrameParquet(outputPath, table, popts); err != nil {
			return result, err
		}
		if opts.KeepCSV {
			csvCopy := datasets.PowerliftingOutputPath(opts.OutputDir, datasets.CSV)
			e.sendProgress(progress, keepCSVUpdate(csvCopy))
			if err := formatter.WriteFrameCSV(csvCopy, table); err != nil {
				return result, err
			}
			result.CSVPath = csvCopy
		}
	}

	if !opts.NoCleanup {
		e.sendProgress(progress, cleanupUpdate())
		cleaned, err := cleanupIntermediates(opts.OutputDir, archivePath, csvPath)
		if err != nil {
			return result, fmt.Errorf("conversion completed but cleanup failed: %w", err)
		}
		result.Cleaned = cleaned
	}

	return result, nil
}

// extractArchiveCSV extracts the first CSV member of the archive into dir and
// returns the extracted path. Member names are validated before extraction so
// a crafted archive cannot write outside dir.
func (e *PullEngine) extractArchiveCSV(progress chan<- ProgressUpdate, archivePath, dir string) (string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	var member *zip.File
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".csv") {
			member = f
			break
		}
	}
	if member == nil {
		return "", fmt.Errorf("%w: no CSV member in %s", shared.ErrArchiveFormat, archivePath)
	}
	if !filepath.IsLocal(filepath.FromSlash(member.Name)) {
		return "", fmt.Errorf("%w: unsafe member path %s", shared.ErrArchiveFormat, member.Name)
	}

	e.sendProgress(progress, extractUpdate(member.Name))

	dest := filepath.Join(dir, filepath.FromSlash(member.Name))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("failed to create extraction directory: %w", err)
	}

	src, err := member.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open archive member: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to extract %s: %w", member.Name, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", member.Name, err)
	}

	return dest, nil
}

// loadTable reads the extracted CSV fully into memory.
func loadTable(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return frame.ReadCSV(f)
}

// cleanupIntermediates removes the archive, the extracted CSV when distinct
// from a final output, and everything else in dir that is not one of the two
// possible final outputs. Returns the number of entries removed.
func cleanupIntermediates(dir, archivePath, extractedCSV string) (int, error) {
	finals := map[string]bool{
		datasets.PowerliftingOutputPath(dir, datasets.Parquet): true,
		datasets.PowerliftingOutputPath(dir, datasets.CSV):     true,
	}

	removed := 0
	if shared.FileExists(archivePath) {
		if err := os.Remove(archivePath); err != nil {
			return removed, err
		}
		removed++
	}
	if shared.FileExists(extractedCSV) && !finals[extractedCSV] {
		if err := os.Remove(extractedCSV); err != nil {
			return removed, err
		}
		removed++
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return removed, err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if finals[path] {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
