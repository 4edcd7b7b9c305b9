package datasets

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/da-moon/datapull/internal/shared"
)

// DefaultTripBaseURL hosts the published trip record files.
const DefaultTripBaseURL = "https://d37ci6vzurychx.cloudfront.net/trip-data"

// Category identifies a trip record dataset subtype.
type Category string

const (
	Yellow Category = "yellow"
	Green  Category = "green"
)

// Categories lists every valid trip record category.
func Categories() []Category {
	return []Category{Yellow, Green}
}

func categoryNames() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, " or ")
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if name == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected %s)", shared.ErrInvalidCategory, s, categoryNames())
}

// Month identifies one month of trip records.
type Month struct {
	Year  int
	Month int
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// ParseMonth parses a YYYY-MM string into a [Month].
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q (expected YYYY-MM)", shared.ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: int(t.Month())}, nil
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	return m.Year < o.Year || (m.Year == o.Year && m.Month < o.Month)
}

// Next returns the month immediately after m.
func (m Month) Next() Month {
	if m.Month == 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// MonthRange expands an inclusive month range in ascending order.
func MonthRange(start, end Month) ([]Month, error) {
	if start.Month < 1 || start.Month > 12 {
		return nil, fmt.Errorf("%w: %s", shared.ErrInvalidMonth, start)
	}
	if end.Month < 1 || end.Month > 12 {
		return nil, fmt.Errorf("%w: %s", shared.ErrInvalidMonth, end)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s ends before %s starts", shared.ErrInvalidRange, end, start)
	}

	months := []Month{}
	for m := start; !end.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months, nil
}

// TripFilename returns the deterministic file name for one month of trip records.
func TripFilename(c Category, m Month) string {
	return fmt.Sprintf("%s_tripdata_%04d-%02d.parquet", c, m.Year, m.Month)
}

// TripURL returns the deterministic source URL for one month of trip records.
func TripURL(baseURL string, c Category, m Month) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(baseURL, "/"), TripFilename(c, m))
}

// TripPath returns the deterministic local destination for one month of trip records.
func TripPath(dir string, c Category, m Month) string {
	return filepath.Join(dir, TripFilename(c, m))
}

// TripFile is one manifest row: a fetched, skipped or planned trip file.
type TripFile struct {
	URL   string
	Path  string
	Year  int
	Month int
}
