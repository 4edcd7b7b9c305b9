package datasets

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/da-moon/datapull/internal/shared"
)

// DefaultArchiveURL is the canonical Open Powerlifting full-dump location.
const DefaultArchiveURL = "https://openpowerlifting.gitlab.io/opl-csv/files/openpowerlifting-latest.zip"

// PowerliftingBaseName is the base file name shared by the archive and every converted output.
const PowerliftingBaseName = "openpowerlifting-latest"

// Format selects the converted output encoding.
type Format string

const (
	Parquet Format = "parquet"
	CSV     Format = "csv"
)

// ParseFormat parses an output format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parquet":
		return Parquet, nil
	case "csv":
		return CSV, nil
	default:
		return "", fmt.Errorf("%w: %q (expected parquet or csv)", shared.ErrInvalidFormat, s)
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// PowerliftingOutputPath returns the converted dataset path for the given format.
func PowerliftingOutputPath(dir string, f Format) string {
	return filepath.Join(dir, PowerliftingBaseName+f.Ext())
}

// PowerliftingArchivePath returns the local path the archive downloads to.
func PowerliftingArchivePath(dir string) string {
	return filepath.Join(dir, PowerliftingBaseName+".zip")
}

// DateColumn pairs a column name with its parse layout.
type DateColumn struct {
	Name   string
	Layout string
}

// PowerliftingDateColumns are parsed as dates during conversion.
//
// BirthYearClass keeps the original year-only layout; values that hold a
// range rather than a year coerce to missing.
var PowerliftingDateColumns = []DateColumn{
	{Name: "Date", Layout: "2006-01-02"},
	{Name: "BirthYearClass", Layout: "2006"},
}

// PowerliftingNumericColumns are coerced to float64 during conversion:
// ages, weights, lift attempts, best-lift summaries and scoring metrics.
var PowerliftingNumericColumns = []string{
	"Age", "BodyweightKg", "WeightClassKg",
	"Squat1Kg", "Squat2Kg", "Squat3Kg", "Squat4Kg", "Best3SquatKg",
	"Bench1Kg", "Bench2Kg", "Bench3Kg", "Bench4Kg", "Best3BenchKg",
	"Deadlift1Kg", "Deadlift2Kg", "Deadlift3Kg", "Deadlift4Kg", "Best3DeadliftKg",
	"TotalKg", "Dots", "Wilks", "Glossbrenner", "Goodlift",
}

// PowerliftingBoolColumns are mapped through [YesNo] during conversion.
var PowerliftingBoolColumns = []string{"Tested", "Sanctioned"}

// YesNo is the two-valued text encoding used by the boolean columns.
// Any value outside the map coerces to missing.
var YesNo = map[string]bool{"Yes": true, "No": false}

// ArchiveFile is one manifest row: a converted (or planned) archive output.
type ArchiveFile struct {
	URL  string
	Path string
}
