// Package datasets defines the dataset descriptors the fetch and convert pipelines operate on.
//
// The package contains two categories of declarations:
//
// 1. Trip records: value types addressing one month of NYC TLC data
//   - [Category] : dataset subtype selector (yellow or green)
//   - [Month] : a (year, month) pair with parsing and range expansion
//   - [TripURL] / [TripPath] / [TripFilename] : pure functions deriving the
//     remote URL and local path from (category, month)
//   - [TripFile] : one manifest row per fetch attempt
//
// 2. Powerlifting: the single-archive dataset and its coercion plan
//   - [Format] : converted output encoding (parquet or csv)
//   - [PowerliftingOutputPath] / [PowerliftingArchivePath] : output locations
//   - [PowerliftingDateColumns], [PowerliftingNumericColumns],
//     [PowerliftingBoolColumns] : the fixed column coercion plan
//   - [ArchiveFile] : one manifest row per convert attempt
//
// Everything here is immutable and derived by string formatting; URL and path
// construction never touches the network or the filesystem.
package datasets
