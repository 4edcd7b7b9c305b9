package main

import (
	"context"
	"fmt"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Trips fetches one trip record file per month in the requested range.
func (r *Runner) Trips(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	category, err := datasets.ParseCategory(cmd.String("category"))
	if err != nil {
		return err
	}

	start, err := datasets.ParseMonth(cmd.String("start"))
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}

	endArg := cmd.String("end")
	if endArg == "" {
		endArg = cmd.String("start")
	}
	end, err := datasets.ParseMonth(endArg)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	dest := cmd.String("dest")
	if dest == "" {
		dest = config.Output.Dir
	}
	dryRun := cmd.Bool("dryrun")

	r.logger.Info("starting trip fetch", "category", category, "start", start.String(), "end", end.String(), "dest", dest)
	r.writePlain("Fetching %s trip records %s..%s\n", category, start, end)
	r.writePlain("Destination: %s\n\n", dest)

	// Create progress channel and goroutine to handle updates
	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchFile:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	// Run the engine operation
	result, err := r.engine.FetchTrips(ctx, progressCh, tasks.TripFetchOpts{
		Category:  category,
		Start:     start,
		End:       end,
		OutputDir: dest,
		BaseURL:   config.Datasets.Trips.BaseURL,
		DryRun:    dryRun,
		RateLimit: config.HTTP.RateLimit,
	})
	close(progressCh)

	if err != nil {
		return err
	}

	// Output summary
	r.writePlain("\n")
	r.writePlainHeader("Fetch Complete!")
	r.writePlain("Range: %s..%s (%d files)\n", start, end, len(result.Files))
	r.writePlain("Downloaded: %d\n", result.Downloaded)
	r.writePlain("Skipped: %d\n", result.Skipped)
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	return nil
}
