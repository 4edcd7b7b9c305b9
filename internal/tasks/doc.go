// Package tasks orchestrates dataset download and conversion operations with real-time progress reporting.
//
// # Core Operations
//
// The [DatasetEngine] interface defines two operations:
//
//  1. [DatasetEngine.FetchTrips] : Sequential month-range trip record fetch
//     - Builds one deterministic URL and path per month in the range
//     - Skips files already on disk without touching the network
//     - Recovers from server rate limiting with a fixed backoff and bounded retry
//     - Records a manifest row for every file, downloaded or skipped
//
//  2. [DatasetEngine.ConvertPowerlifting] : Powerlifting archive conversion
//     - Downloads the competition archive and extracts its CSV payload
//     - Coerces date, numeric, and boolean columns (unparseable values become missing)
//     - Persists the table as Parquet or CSV, optionally keeping the CSV alongside
//     - Removes intermediate files unless asked not to
//
// # Progress Reporting
//
// # All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Implementation
//
// [PullEngine] implements [DatasetEngine] with a dependency on:
//   - [download.Client] : streaming HTTP client with progress bars and rate-limit retry
package tasks
