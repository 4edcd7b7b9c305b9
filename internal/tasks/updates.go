package tasks

import (
	"fmt"
	"path/filepath"

	"github.com/da-moon/datapull/internal/datasets"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchFile Phase = iota
	WriteManifest
	CheckOutput
	FetchArchive
	Extract
	LoadTable
	Coerce
	WriteOutput
	Cleanup
)

func (p Phase) String() string {
	switch p {
	case FetchFile:
		return "fetch_file"
	case WriteManifest:
		return "write_manifest"
	case CheckOutput:
		return "check_output"
	case FetchArchive:
		return "fetch_archive"
	case Extract:
		return "extract"
	case LoadTable:
		return "load_table"
	case Coerce:
		return "coerce"
	case WriteOutput:
		return "write_output"
	case Cleanup:
		return "cleanup"
	default:
		return ""
	}
}

func downloadTripUpdate(step, total int, file datasets.TripFile) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Downloading %s...", step, total, filepath.Base(file.Path)),
		Data:    file,
	}
}

func skipTripUpdate(step, total int, file datasets.TripFile) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s already exists, skipping", step, total, filepath.Base(file.Path)),
		Data:    file,
	}
}

func planTripUpdate(step, total int, file datasets.TripFile) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Would download %s", step, total, file.URL),
		Data:    file,
	}
}

func tripDoneUpdate(step, total int, file datasets.TripFile, bytes int64) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d bytes)", step, total, filepath.Base(file.Path), bytes),
		Data:    file,
	}
}

func tripFailedUpdate(step, total int, file datasets.TripFile, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, filepath.Base(file.Path), err),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing manifest to %s...", path),
	}
}

func skipConvertUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CheckOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("File %s exists, skipping download and conversion", path),
	}
}

func overwriteUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CheckOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("File %s exists, but will be overwritten", path),
	}
}

func planConvertUpdate(url, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchArchive,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Dry run: would download from %s and save to %s", url, path),
	}
}

func fetchArchiveUpdate(url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchArchive,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Downloading %s...", url),
	}
}

func extractUpdate(member string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Extract,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Extracting %s from archive...", member),
	}
}

func loadTableUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadTable,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loading %s...", filepath.Base(path)),
	}
}

func coerceDatesUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Coerce,
		Step:    1,
		Total:   3,
		Message: fmt.Sprintf("Converting %d date columns...", n),
	}
}

func coerceNumericUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Coerce,
		Step:    2,
		Total:   3,
		Message: fmt.Sprintf("Converting %d numeric columns...", n),
	}
}

func coerceBoolUpdate(n int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Coerce,
		Step:    3,
		Total:   3,
		Message: fmt.Sprintf("Converting %d boolean columns...", n),
	}
}

func writeOutputUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Saving %s...", path),
	}
}

func keepCSVUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Keeping CSV copy at %s...", path),
	}
}

func cleanupUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   Cleanup,
		Step:    1,
		Total:   1,
		Message: "Cleaning up intermediate files...",
	}
}
