// Package frame is the in-memory table behind a preview.
//
// A [Frame] is a set of equally long [Column]s. It is built once by a loader
// and only read afterwards; every operation returns a new Frame and shares
// cell storage with the receiver where it can.
package frame

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Sentinel errors for programmatic error handling.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrLengthMismatch = errors.New("column length mismatch")
	ErrRaggedRecord   = errors.New("wrong number of fields")
)

// NullText is how null cells are displayed.
const NullText = "null"

// Frame is an immutable table of named, typed columns.
type Frame struct {
	cols []*Column
	rows int
}

// New builds a frame from columns of equal length.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{cols: cols}
	for i, c := range cols {
		if i == 0 {
			f.rows = c.Len()
			continue
		}
		if c.Len() != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, c.Name(), c.Len(), f.rows)
		}
	}
	return f, nil
}

// FromRecords builds a frame from rows of text cells, detecting the kind of
// each column. Every record must have len(names) fields.
func FromRecords(names []string, records [][]string) (*Frame, error) {
	cells := make([][]string, len(names))
	for i := range cells {
		cells[i] = make([]string, len(records))
	}
	for r, rec := range records {
		if len(rec) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrRaggedRecord, r+1, len(rec), len(names))
		}
		for c, s := range rec {
			cells[c][r] = s
		}
	}
	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = inferColumn(name, cells[i])
	}
	return New(cols...)
}

func (f *Frame) NumRows() int { return f.rows }
func (f *Frame) NumCols() int { return len(f.cols) }

// Column returns the i-th column.
func (f *Frame) Column(i int) *Column { return f.cols[i] }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// Kinds returns the column kinds in order.
func (f *Frame) Kinds() []Kind {
	kinds := make([]Kind, len(f.cols))
	for i, c := range f.cols {
		kinds[i] = c.Kind()
	}
	return kinds
}

// Lookup returns the first column called name.
func (f *Frame) Lookup(name string) (*Column, bool) {
	for _, c := range f.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Row returns the display text of row i; null cells read [NullText].
func (f *Frame) Row(i int) []string {
	row := make([]string, len(f.cols))
	for c, col := range f.cols {
		if col.IsNull(i) {
			row[c] = NullText
		} else {
			row[c] = col.Text(i)
		}
	}
	return row
}

// Select returns the named columns in the given order. Names repeat as
// often as they are listed.
func (f *Frame) Select(names []string) (*Frame, error) {
	cols := make([]*Column, len(names))
	for i, name := range names {
		c, ok := f.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		cols[i] = c
	}
	return &Frame{cols: cols, rows: f.rows}, nil
}

// Slice returns rows [i, j), clamped to the frame.
func (f *Frame) Slice(i, j int) *Frame {
	i = clamp(i, 0, f.rows)
	j = clamp(j, i, f.rows)
	cols := make([]*Column, len(f.cols))
	for k, c := range f.cols {
		cols[k] = c.slice(i, j)
	}
	return &Frame{cols: cols, rows: j - i}
}

// Head returns the first n rows.
func (f *Frame) Head(n int) *Frame {
	return f.Slice(0, n)
}

// Tail returns the last n rows.
func (f *Frame) Tail(n int) *Frame {
	return f.Slice(f.rows-n, f.rows)
}

// Take returns the rows at idx, in that order.
func (f *Frame) Take(idx []int) *Frame {
	cols := make([]*Column, len(f.cols))
	for k, c := range f.cols {
		cols[k] = c.take(idx)
	}
	return &Frame{cols: cols, rows: len(idx)}
}

// Sample draws n distinct rows in random order. n is capped at the number
// of rows.
func (f *Frame) Sample(n int, rng *rand.Rand) *Frame {
	n = clamp(n, 0, f.rows)
	return f.Take(rng.Perm(f.rows)[:n])
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
