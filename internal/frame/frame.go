package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Kind is the storage type of a column.
type Kind int

const (
	String Kind = iota
	Float
	Bool
	Time
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Time:
		return "time"
	default:
		return ""
	}
}

// Column is one named, typed column with a per-row validity mask.
// A false mask entry marks the cell as missing.
type Column struct {
	Name   string
	Kind   Kind
	Layout string // time layout, set when Kind is Time

	str    []string
	floats []float64
	bools  []bool
	times  []time.Time
	valid  []bool
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return len(c.valid)
}

// IsValid reports whether row i holds a value (false means missing).
func (c *Column) IsValid(i int) bool {
	return c.valid[i]
}

// Missing returns the number of missing cells.
func (c *Column) Missing() int {
	n := 0
	for _, v := range c.valid {
		if !v {
			n++
		}
	}
	return n
}

// StringAt returns the text value at row i. Only meaningful for String columns.
func (c *Column) StringAt(i int) string {
	return c.str[i]
}

// FloatAt returns the numeric value at row i. Only meaningful for Float columns.
func (c *Column) FloatAt(i int) float64 {
	return c.floats[i]
}

// BoolAt returns the boolean value at row i. Only meaningful for Bool columns.
func (c *Column) BoolAt(i int) bool {
	return c.bools[i]
}

// TimeAt returns the timestamp at row i. Only meaningful for Time columns.
func (c *Column) TimeAt(i int) time.Time {
	return c.times[i]
}

// Frame is an ordered collection of named columns with a fixed row count.
type Frame struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// ReadCSV loads a delimited table. The first record is the header; every
// following record must have the same width. Empty cells load as missing.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty table: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make([]*Column, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		cols[i] = &Column{Name: name, Kind: String}
		index[name] = i
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rows+1, err)
		}

		for i, cell := range record {
			cols[i].str = append(cols[i].str, cell)
			cols[i].valid = append(cols[i].valid, cell != "")
		}
		rows++
	}

	return &Frame{cols: cols, index: index, rows: rows}, nil
}

// Len returns the row count.
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, or false when the frame has no such column.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Cols returns the columns in order.
func (f *Frame) Cols() []*Column {
	return f.cols
}
