package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/formatter"
	"github.com/da-moon/datapull/internal/shared"
)

// TripFetchOpts contains configuration for a trip record fetch.
type TripFetchOpts struct {
	Category  datasets.Category // Dataset category: yellow or green (default: green)
	Start     datasets.Month    // First month in the range (inclusive)
	End       datasets.Month    // Last month in the range (inclusive)
	OutputDir string            // Download directory (default: ./data)
	BaseURL   string            // Remote base URL (default: datasets.DefaultTripBaseURL)
	DryRun    bool              // Plan the downloads without any network access
	RateLimit float64           // Requests per second across the range (default: 1)
}

// TripFetchResult contains all data from a trip record fetch.
type TripFetchResult struct {
	Files        []datasets.TripFile // Manifest rows, one per file in the range
	Downloaded   int                 // Files fetched over the network
	Skipped      int                 // Files already on disk
	ManifestPath string              // Manifest location
	OutputDir    string              // Download directory
}

// FetchTrips downloads one trip record file per month in the requested range.
//
// Months are fetched sequentially in ascending order with paced requests.
// Files already on disk are skipped without a network request. The manifest
// is written even when the fetch aborts partway so rows already collected
// stay recorded.
func (e *PullEngine) FetchTrips(ctx context.Context, progress chan<- ProgressUpdate, opts TripFetchOpts) (*TripFetchResult, error) {
	if e.client == nil {
		return nil, fmt.Errorf("%w: engine constructed without a client", shared.ErrClientUnavailable)
	}

	months, err := datasets.MonthRange(opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	if opts.Category == "" {
		opts.Category = datasets.Green
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "./data"
	}
	if opts.BaseURL == "" {
		opts.BaseURL = datasets.DefaultTripBaseURL
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &TripFetchResult{
		OutputDir: opts.OutputDir,
		Files:     make([]datasets.TripFile, 0, len(months)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	total := len(months)

	var fetchErr error
	for i, m := range months {
		file := datasets.TripFile{
			URL:   datasets.TripURL(opts.BaseURL, opts.Category, m),
			Path:  datasets.TripPath(opts.OutputDir, opts.Category, m),
			Year:  m.Year,
			Month: m.Month,
		}

		if shared.FileExists(file.Path) {
			result.Files = append(result.Files, file)
			result.Skipped++
			e.sendProgress(progress, skipTripUpdate(i+1, total, file))
			continue
		}

		if opts.DryRun {
			result.Files = append(result.Files, file)
			e.sendProgress(progress, planTripUpdate(i+1, total, file))
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			fetchErr = err
			break
		}

		e.sendProgress(progress, downloadTripUpdate(i+1, total, file))

		res, err := e.client.FetchWithRetry(ctx, file.URL, file.Path)
		if err != nil {
			e.sendProgress(progress, tripFailedUpdate(i+1, total, file, err))
			fetchErr = fmt.Errorf("failed to fetch %s: %w", file.URL, err)
			break
		}

		result.Files = append(result.Files, file)
		result.Downloaded++
		e.sendProgress(progress, tripDoneUpdate(i+1, total, file, res.Bytes))
	}

	manifestPath := filepath.Join(opts.OutputDir, formatter.SummaryFileName)
	e.sendProgress(progress, manifestUpdate(manifestPath))
	if err := formatter.WriteTripManifest(manifestPath, result.Files); err != nil {
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, fmt.Errorf("fetch completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	return result, fetchErr
}
