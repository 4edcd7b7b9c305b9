package tasks

import (
	"context"

	"github.com/da-moon/datapull/internal/download"
)

// DatasetEngine defines operations for pulling public datasets onto local disk.
type DatasetEngine interface {
	// FetchTrips downloads one trip record file per month in an inclusive range by skipping existing files, pacing requests, and recording a manifest.
	FetchTrips(ctx context.Context, progress chan<- ProgressUpdate, opts TripFetchOpts) (*TripFetchResult, error)

	// ConvertPowerlifting downloads the powerlifting archive and converts the bundled CSV by coercing column types and serializing to the requested format.
	ConvertPowerlifting(ctx context.Context, progress chan<- ProgressUpdate, opts ConvertOpts) (*ConvertResult, error)
}

// PullEngine implements DatasetEngine against the public dataset endpoints.
// Contains a dependency on the streaming download client.
type PullEngine struct {
	client *download.Client
}

// NewPullEngine creates a new PullEngine with the provided download client.
func NewPullEngine(client *download.Client) *PullEngine {
	return &PullEngine{client: client}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *PullEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
