package dataset

import (
	"fmt"
)

// DataError describes a problem with the contents of a Frame, carrying the
// offending column name when one applies.
type DataError struct {
	Column string
	Reason string
}

// DataError implements error
func (e DataError) Error() string {
	if e.Column == "" {
		return e.Reason
	}
	return fmt.Sprintf("column %s: %s", e.Column, e.Reason)
}

// Frame is a column-oriented table. Numeric columns hold float64 values and
// label columns hold strings; all columns have the same number of rows.
type Frame struct {
	numRows int
	order   []string
	numeric map[string][]float64
	labels  map[string][]string
}

// NewFrame returns an empty frame with the given number of rows. Columns
// added to the frame must match that length.
func NewFrame(numRows int) *Frame {
	return &Frame{
		numRows: numRows,
		numeric: make(map[string][]float64),
		labels:  make(map[string][]string),
	}
}

// NumRows in the frame
func (f *Frame) NumRows() int {
	return f.numRows
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.order...)
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	if _, ok := f.numeric[name]; ok {
		return true
	}
	_, ok := f.labels[name]
	return ok
}

// AddNumeric adds a numeric column to the frame.
func (f *Frame) AddNumeric(name string, values []float64) error {
	if err := f.checkAdd(name, len(values)); err != nil {
		return err
	}
	f.numeric[name] = values
	f.order = append(f.order, name)
	return nil
}

// AddLabel adds a string column to the frame.
func (f *Frame) AddLabel(name string, values []string) error {
	if err := f.checkAdd(name, len(values)); err != nil {
		return err
	}
	f.labels[name] = values
	f.order = append(f.order, name)
	return nil
}

func (f *Frame) checkAdd(name string, n int) error {
	if f.HasColumn(name) {
		return DataError{Column: name, Reason: "column already exists"}
	}
	if n != f.numRows {
		return DataError{Column: name, Reason: fmt.Sprintf("expected %d rows, got %d", f.numRows, n)}
	}
	return nil
}

// Numeric returns the values of a numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	values, ok := f.numeric[name]
	if !ok {
		return nil, DataError{Column: name, Reason: "no such numeric column"}
	}
	return values, nil
}

// Label returns the values of a string column.
func (f *Frame) Label(name string) ([]string, error) {
	values, ok := f.labels[name]
	if !ok {
		return nil, DataError{Column: name, Reason: "no such label column"}
	}
	return values, nil
}

// Slice returns a new frame containing only the given rows, in the given
// order. Row indices are zero-based.
func (f *Frame) Slice(rows []int) (*Frame, error) {
	for _, r := range rows {
		if r < 0 || r >= f.numRows {
			return nil, DataError{Reason: fmt.Sprintf("row %d out of range [0, %d)", r, f.numRows)}
		}
	}

	out := NewFrame(len(rows))
	for _, name := range f.order {
		if values, ok := f.numeric[name]; ok {
			sliced := make([]float64, 0, len(rows))
			for _, r := range rows {
				sliced = append(sliced, values[r])
			}
			out.numeric[name] = sliced
		} else {
			values := f.labels[name]
			sliced := make([]string, 0, len(rows))
			for _, r := range rows {
				sliced = append(sliced, values[r])
			}
			out.labels[name] = sliced
		}
		out.order = append(out.order, name)
	}
	return out, nil
}
