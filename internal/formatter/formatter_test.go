package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/da-moon/datapull/internal/datasets"
	"github.com/da-moon/datapull/internal/frame"
	th "github.com/da-moon/datapull/internal/testing"
)

func TestManifests(t *testing.T) {
	t.Run("TripManifestToCSV", func(t *testing.T) {
		files := []datasets.TripFile{
			{
				URL:   "https://example.com/green_tripdata_2024-01.parquet",
				Path:  "data/green_tripdata_2024-01.parquet",
				Year:  2024,
				Month: 1,
			},
			{
				URL:   "https://example.com/green_tripdata_2024-02.parquet",
				Path:  "data/green_tripdata_2024-02.parquet",
				Year:  2024,
				Month: 2,
			},
		}

		data, err := TripManifestToCSV(files)
		if err != nil {
			t.Fatalf("TripManifestToCSV failed: %v", err)
		}

		output := string(data)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "url,path,year,month" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if !strings.Contains(lines[1], "green_tripdata_2024-01.parquet") || !strings.HasSuffix(lines[1], "2024,1") {
			t.Errorf("unexpected first row: %s", lines[1])
		}
	})

	t.Run("TripManifestEmpty", func(t *testing.T) {
		data, err := TripManifestToCSV(nil)
		if err != nil {
			t.Fatalf("TripManifestToCSV failed: %v", err)
		}
		if strings.TrimSpace(string(data)) != "url,path,year,month" {
			t.Errorf("expected header only, got: %s", data)
		}
	})

	t.Run("ArchiveManifestToCSV", func(t *testing.T) {
		files := []datasets.ArchiveFile{
			{
				URL:  "https://example.com/openpowerlifting-latest.zip",
				Path: "data/openpowerlifting-latest.zip",
			},
		}

		data, err := ArchiveManifestToCSV(files)
		if err != nil {
			t.Fatalf("ArchiveManifestToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
		}
		if lines[0] != "url,path" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "https://example.com/openpowerlifting-latest.zip,data/openpowerlifting-latest.zip" {
			t.Errorf("unexpected row: %s", lines[1])
		}
	})

	t.Run("WriteTripManifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.csv")
		files := []datasets.TripFile{
			{URL: "https://example.com/a.parquet", Path: "data/a.parquet", Year: 2023, Month: 12},
		}

		if err := WriteTripManifest(path, files); err != nil {
			t.Fatalf("WriteTripManifest failed: %v", err)
		}

		th.AssertFileExists(t, path)
		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "https://example.com/a.parquet,data/a.parquet,2023,12") {
			t.Errorf("unexpected manifest content: %s", content)
		}
	})
}

func TestFrameCSV(t *testing.T) {
	loadFrame := func(t *testing.T, data string) *frame.Frame {
		t.Helper()
		f, err := frame.ReadCSV(strings.NewReader(data))
		if err != nil {
			t.Fatalf("ReadCSV failed: %v", err)
		}
		return f
	}

	t.Run("RendersCoercedColumns", func(t *testing.T) {
		f := loadFrame(t, "Name,Date,TotalKg,Tested\nAlice,2024-03-09,500.50,Yes\nBob,2023-07-01,42,No\n")
		f.CoerceTime("Date", "2006-01-02")
		f.CoerceFloat("TotalKg")
		f.CoerceBool("Tested", map[string]bool{"Yes": true, "No": false})

		data, err := FrameToCSV(f)
		if err != nil {
			t.Fatalf("FrameToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if lines[0] != "Name,Date,TotalKg,Tested" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "Alice,2024-03-09,500.5,true" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if lines[2] != "Bob,2023-07-01,42,false" {
			t.Errorf("unexpected second row: %s", lines[2])
		}
	})

	t.Run("MissingCellsRenderEmpty", func(t *testing.T) {
		f := loadFrame(t, "Age,Tested\nnot a number,Maybe\n30,Yes\n")
		f.CoerceFloat("Age")
		f.CoerceBool("Tested", map[string]bool{"Yes": true, "No": false})

		data, err := FrameToCSV(f)
		if err != nil {
			t.Fatalf("FrameToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if lines[1] != "," {
			t.Errorf("expected empty cells, got: %s", lines[1])
		}
		if lines[2] != "30,true" {
			t.Errorf("unexpected row: %s", lines[2])
		}
	})

	t.Run("RoundTripPreservesShape", func(t *testing.T) {
		f := loadFrame(t, "A,B\n1,x\n2,y\n3,\n")
		f.CoerceFloat("A")

		path := filepath.Join(t.TempDir(), "out.csv")
		if err := WriteFrameCSV(path, f); err != nil {
			t.Fatalf("WriteFrameCSV failed: %v", err)
		}

		reloaded := loadFrame(t, th.MustReadFile(t, path))
		if reloaded.Len() != 3 {
			t.Errorf("expected 3 rows, got %d", reloaded.Len())
		}
		if len(reloaded.Columns()) != 2 {
			t.Errorf("expected 2 columns, got %d", len(reloaded.Columns()))
		}

		b, _ := reloaded.Column("B")
		if b.IsValid(2) {
			t.Error("expected missing cell to survive the round trip")
		}
	})
}
