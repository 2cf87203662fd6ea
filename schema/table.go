package schema

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyTable    = errors.New("empty table")
	ErrRaggedColumn  = errors.New("column length does not match index")
)

const (
	ColumnConfirmed = "Confirmed"
	ColumnRecovered = "Recovered"
	ColumnDeaths    = "Deaths"
	ColumnWorld     = "World"
)

// Table is a date indexed set of numeric columns. Every column has one value
// per index entry.
type Table struct {
	Index   []time.Time
	Columns map[string][]float64
}

// NewTable builds a table and checks that every column lines up with the index.
func NewTable(index []time.Time, columns map[string][]float64) (Table, error) {
	for name, values := range columns {
		if len(values) != len(index) {
			return Table{}, fmt.Errorf("%w: %s has %d values for %d dates", ErrRaggedColumn, name, len(values), len(index))
		}
	}

	return Table{
		Index:   index,
		Columns: columns,
	}, nil
}

func (t Table) Len() int {
	return len(t.Index)
}

// Column returns the values of a named column. A column that does not
// line up with the index is reported as ragged.
func (t Table) Column(name string) ([]float64, error) {
	values, ok := t.Columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	if len(values) != len(t.Index) {
		return nil, fmt.Errorf("%w: %s has %d values for %d dates", ErrRaggedColumn, name, len(values), len(t.Index))
	}
	return values, nil
}

// Select reduces the table to the named columns. The index is shared.
func (t Table) Select(names ...string) (Table, error) {
	columns := make(map[string][]float64, len(names))
	for _, name := range names {
		values, err := t.Column(name)
		if err != nil {
			return Table{}, err
		}
		columns[name] = values
	}

	return Table{
		Index:   t.Index,
		Columns: columns,
	}, nil
}

// MinDate returns the earliest date of the index, which need not be sorted.
func (t Table) MinDate() (time.Time, error) {
	if t.Len() == 0 {
		return time.Time{}, ErrEmptyTable
	}

	min := t.Index[0]
	for _, d := range t.Index[1:] {
		if d.Before(min) {
			min = d
		}
	}
	return min, nil
}

// MaxDate returns the latest date of the index.
func (t Table) MaxDate() (time.Time, error) {
	if t.Len() == 0 {
		return time.Time{}, ErrEmptyTable
	}

	max := t.Index[0]
	for _, d := range t.Index[1:] {
		if d.After(max) {
			max = d
		}
	}
	return max, nil
}
