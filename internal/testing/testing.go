// package testing contains shared testing utilities
package testing

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// RequestCounter wraps a handler and counts the requests it serves.
type RequestCounter struct {
	n       atomic.Int64
	handler http.Handler
}

func NewRequestCounter(h http.Handler) *RequestCounter {
	return &RequestCounter{handler: h}
}

func (c *RequestCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.n.Add(1)
	c.handler.ServeHTTP(w, r)
}

func (c *RequestCounter) Count() int64 {
	return c.n.Load()
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

// AssertNoFile fails when path exists.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ZipMember is one entry of a zip fixture. Members are written in order.
type ZipMember struct {
	Name string
	Body string
}

// ZipBytes builds an in-memory zip archive, for httptest servers that serve archives.
func ZipBytes(t *testing.T, members []ZipMember) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, m := range members {
		fw, err := w.Create(m.Name)
		if err != nil {
			t.Fatalf("Failed to create zip member %s: %v", m.Name, err)
		}
		if _, err := fw.Write([]byte(m.Body)); err != nil {
			t.Fatalf("Failed to write zip member %s: %v", m.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finalize zip fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteZipFixture writes a zip archive at path containing the given members.
func WriteZipFixture(t *testing.T, path string, members []ZipMember) {
	t.Helper()
	MustWriteFile(t, path, ZipBytes(t, members))
}

// PowerliftingCSV is a small fixture covering every coercion path: parseable
// and unparseable dates, year-only and range BirthYearClass values, numeric
// junk and blanks, and a boolean value outside the Yes/No encoding.
const PowerliftingCSV = `Name,Sex,Event,Date,BirthYearClass,Age,BodyweightKg,Best3SquatKg,Best3BenchKg,Best3DeadliftKg,TotalKg,Tested,Sanctioned
Alice,F,SBD,2023-04-15,1990,33,63.5,105,62.5,140,307.5,Yes,Yes
Bob,M,SBD,2023-04-15,24-34,not a number,93,,100,180,280,No,Maybe
Cara,F,B,bad-date,1985,41,72,,80,,80,Yes,No
`
