package datasets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/da-moon/datapull/internal/shared"
)

func TestParseFormat(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "parquet", input: "parquet", want: Parquet},
		{name: "csv", input: "csv", want: CSV},
		{name: "mixed case", input: "Parquet", want: Parquet},
		{name: "unknown", input: "xlsx", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPowerliftingPaths(t *testing.T) {
	if got := PowerliftingOutputPath("data", Parquet); got != filepath.Join("data", "openpowerlifting-latest.parquet") {
		t.Errorf("parquet output path = %q", got)
	}
	if got := PowerliftingOutputPath("data", CSV); got != filepath.Join("data", "openpowerlifting-latest.csv") {
		t.Errorf("csv output path = %q", got)
	}
	if got := PowerliftingArchivePath("data"); got != filepath.Join("data", "openpowerlifting-latest.zip") {
		t.Errorf("archive path = %q", got)
	}
}

func TestCoercionPlan(t *testing.T) {
	t.Run("numeric columns", func(t *testing.T) {
		if len(PowerliftingNumericColumns) != 23 {
			t.Errorf("expected 23 numeric columns, got %d", len(PowerliftingNumericColumns))
		}

		seen := map[string]bool{}
		for _, col := range PowerliftingNumericColumns {
			if seen[col] {
				t.Errorf("duplicate numeric column %q", col)
			}
			seen[col] = true
		}
	})

	t.Run("date columns", func(t *testing.T) {
		if len(PowerliftingDateColumns) != 2 {
			t.Fatalf("expected 2 date columns, got %d", len(PowerliftingDateColumns))
		}
		if PowerliftingDateColumns[0].Name != "Date" || PowerliftingDateColumns[0].Layout != "2006-01-02" {
			t.Errorf("unexpected first date column: %+v", PowerliftingDateColumns[0])
		}
		if PowerliftingDateColumns[1].Name != "BirthYearClass" || PowerliftingDateColumns[1].Layout != "2006" {
			t.Errorf("unexpected second date column: %+v", PowerliftingDateColumns[1])
		}
	})

	t.Run("boolean mapping", func(t *testing.T) {
		if v, ok := YesNo["Yes"]; !ok || !v {
			t.Error("expected Yes to map to true")
		}
		if v, ok := YesNo["No"]; !ok || v {
			t.Error("expected No to map to false")
		}
		if _, ok := YesNo["maybe"]; ok {
			t.Error("expected unknown values to stay unmapped")
		}
	})
}
