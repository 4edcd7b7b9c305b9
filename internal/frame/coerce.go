package frame

import (
	"strconv"
	"strings"
	"time"
)

// CoerceTime reparses the named column as timestamps under the given layout.
// Unparseable cells become missing. Coercing an absent or already retyped
// column is a no-op.
func (f *Frame) CoerceTime(name, layout string) {
	col, ok := f.Column(name)
	if !ok || col.Kind != String {
		return
	}

	col.times = make([]time.Time, len(col.str))
	for i, s := range col.str {
		if !col.valid[i] {
			continue
		}
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			col.valid[i] = false
			continue
		}
		col.times[i] = t
	}

	col.Kind = Time
	col.Layout = layout
	col.str = nil
}

// CoerceFloat reparses the named columns as float64. Unparseable cells
// become missing. Absent or already retyped columns are skipped.
func (f *Frame) CoerceFloat(names ...string) {
	for _, name := range names {
		col, ok := f.Column(name)
		if !ok || col.Kind != String {
			continue
		}

		col.floats = make([]float64, len(col.str))
		for i, s := range col.str {
			if !col.valid[i] {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				col.valid[i] = false
				continue
			}
			col.floats[i] = v
		}

		col.Kind = Float
		col.str = nil
	}
}

// CoerceBool remaps the named column through the given text encoding.
// Values outside the mapping become missing. Coercing an absent or already
// retyped column is a no-op.
func (f *Frame) CoerceBool(name string, mapping map[string]bool) {
	col, ok := f.Column(name)
	if !ok || col.Kind != String {
		return
	}

	col.bools = make([]bool, len(col.str))
	for i, s := range col.str {
		if !col.valid[i] {
			continue
		}
		v, ok := mapping[s]
		if !ok {
			col.valid[i] = false
			continue
		}
		col.bools[i] = v
	}

	col.Kind = Bool
	col.str = nil
}
