// Package dataset provides the immutable in-memory table that subgroup
// descriptions are evaluated against.
package dataset

import (
	"fmt"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

type Column struct {
	Name   string
	Kind   Kind
	values []Value
}

func (c *Column) Value(row int) Value {
	return c.values[row]
}

// Dataset is a column-major table with a fixed number of rows. It is never
// mutated after construction, so it can be shared across evaluations.
type Dataset struct {
	columns []*Column
	byName  map[string]*Column
	names   mapset.Set[string]
	rows    int
}

// New builds a dataset from a header and raw string rows, inferring one
// kind per column: numeric when every present cell parses as a number,
// boolean when every present cell is True/False, categorical otherwise.
func New(header []string, rows [][]string) (*Dataset, error) {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, h := range header {
		if !names.Add(h) {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i, len(row), len(header))
		}
	}

	ds := &Dataset{
		columns: make([]*Column, len(header)),
		byName:  make(map[string]*Column, len(header)),
		names:   names,
		rows:    len(rows),
	}

	for ci, name := range header {
		raw := make([]string, len(rows))
		for ri, row := range rows {
			raw[ri] = row[ci]
		}
		col := buildColumn(name, raw)
		ds.columns[ci] = col
		ds.byName[name] = col
	}

	return ds, nil
}

func buildColumn(name string, raw []string) *Column {
	kind := inferKind(raw)
	values := make([]Value, len(raw))
	for i, r := range raw {
		if isMissing(r) {
			values[i] = MissingValue()
			continue
		}
		switch kind {
		case Numeric:
			f, _ := strconv.ParseFloat(r, 64)
			values[i] = Number(f)
		case Boolean:
			b, _ := parseBool(r)
			values[i] = Bool(b)
		default:
			values[i] = String(r)
		}
	}
	return &Column{Name: name, Kind: kind, values: values}
}

func inferKind(raw []string) Kind {
	numeric, boolean, present := true, true, 0
	for _, r := range raw {
		if isMissing(r) {
			continue
		}
		present++
		if numeric {
			if _, err := strconv.ParseFloat(r, 64); err != nil {
				numeric = false
			}
		}
		if boolean {
			if _, ok := parseBool(r); !ok {
				boolean = false
			}
		}
		if !numeric && !boolean {
			return Categorical
		}
	}
	switch {
	case present == 0:
		return Categorical
	case boolean:
		return Boolean
	case numeric:
		return Numeric
	}
	return Categorical
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.rows
}

// Columns returns the column names in header order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.Name
	}
	return out
}

func (d *Dataset) HasColumn(name string) bool {
	return d.names.Contains(name)
}

// MissingColumns returns the names from attrs that the dataset lacks.
func (d *Dataset) MissingColumns(attrs mapset.Set[string]) []string {
	var missing []string
	for _, a := range attrs.ToSlice() {
		if !d.names.Contains(a) {
			missing = append(missing, a)
		}
	}
	sort.Strings(missing)
	return missing
}

func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.byName[name]
	return c, ok
}

func (d *Dataset) Value(row int, attr string) (Value, bool) {
	c, ok := d.byName[attr]
	if !ok || row < 0 || row >= d.rows {
		return Value{}, false
	}
	return c.values[row], true
}
