package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/formatter"
	"github.com/da-moon/datapull/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Powerlifting downloads the powerlifting archive and converts the bundled
// CSV to the requested output format.
func (r *Runner) Powerlifting(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	formatArg := cmd.String("format")
	if formatArg == "" {
		formatArg = config.Output.Format
	}
	if formatArg == "" {
		formatArg = "parquet"
	}
	format, err := datasets.ParseFormat(formatArg)
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = config.Output.Dir
	}
	noCleanup := cmd.Bool("no-cleanup")

	r.logger.Info("starting powerlifting conversion", "format", format, "dir", dir)
	r.writePlain("Converting powerlifting data to %s\n\n", format)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.CheckOutput:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.FetchArchive:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.Extract, tasks.LoadTable, tasks.Coerce, tasks.Cleanup:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteOutput:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	// Run the engine operation
	result, err := r.engine.ConvertPowerlifting(ctx, progressCh, tasks.ConvertOpts{
		OutputDir:    dir,
		Format:       format,
		ArchiveURL:   config.Datasets.Powerlifting.ArchiveURL,
		Compression:  config.Output.Compression,
		DryRun:       cmd.Bool("dryrun"),
		SkipExisting: cmd.Bool("skip-download"),
		KeepCSV:      cmd.Bool("keep-csv"),
		NoCleanup:    noCleanup,
	})
	close(progressCh)

	if err != nil {
		return err
	}

	// The manifest is gated on no-cleanup alone, so skipped and dry runs
	// still record the output they resolved.
	if noCleanup {
		manifestPath := filepath.Join(filepath.Dir(result.OutputPath), formatter.SummaryFileName)
		files := []datasets.ArchiveFile{{URL: result.URL, Path: result.OutputPath}}
		if err := formatter.WriteArchiveManifest(manifestPath, files); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		r.writePlain("\n📝 Manifest written to %s\n", manifestPath)
	}

	if result.Skipped || result.DryRun {
		return nil
	}

	// Output summary
	r.writePlain("\n")
	r.writePlainHeader("Conversion Complete!")
	r.writePlain("Source: %s\n", result.URL)
	r.writePlain("Output: %s (%d rows, %d columns)\n", result.OutputPath, result.Rows, result.Columns)
	if result.CSVPath != "" {
		r.writePlain("CSV copy: %s\n", result.CSVPath)
	}
	if result.Cleaned > 0 {
		r.writePlain("Cleaned: %d intermediate entries\n", result.Cleaned)
	}

	return nil
}
