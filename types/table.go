/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"
	"sort"
)

// Column is a named, ordered sequence of cell values.
// Cell values are heterogeneous: strings, numbers, bools, slices, maps,
// time.Time, or nil as the missing marker.
type Column struct {
	Name   string        `json:"name"`
	Values []interface{} `json:"values"`
}

// Len returns the number of cells in the column
func (c Column) Len() int {
	return len(c.Values)
}

// Table is an ordered sequence of named columns sharing one row count.
// A Table passed into the pipeline is never modified; each stage returns a new one.
type Table struct {
	Columns []Column `json:"columns"`
}

// NewTable builds a table from row-major data.
// Every row must have exactly len(names) cells.
func NewTable(names []string, rows [][]interface{}) (*Table, error) {
	t := &Table{Columns: make([]Column, len(names))}
	for i, name := range names {
		t.Columns[i] = Column{Name: name, Values: make([]interface{}, len(rows))}
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, NewInvalidInputError(StageInput, "", "row %d has %d cells, expected %d", r, len(row), len(names))
		}
		for c, v := range row {
			t.Columns[c].Values[r] = v
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromRecords builds a table from event records of mixed schema.
// A key absent from a record becomes a missing cell.
// When columnOrder is empty, the union of all keys is used in lexical order.
func FromRecords(records []map[string]interface{}, columnOrder []string) *Table {
	var names []string
	if len(columnOrder) > 0 {
		names = columnOrder
	} else {
		seen := make(map[string]struct{})
		for _, rec := range records {
			for k := range rec {
				if _, ok := seen[k]; !ok {
					seen[k] = struct{}{}
					names = append(names, k)
				}
			}
		}
		sort.Strings(names)
	}

	t := &Table{Columns: make([]Column, len(names))}
	for i, name := range names {
		values := make([]interface{}, len(records))
		for r, rec := range records {
			values[r] = rec[name]
		}
		t.Columns[i] = Column{Name: name, Values: values}
	}
	return t
}

// NumRows returns the row count, taken from the first column
func (t *Table) NumRows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, t.NumColumns())
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Row returns row i as a record keyed by column name.
func (t *Table) Row(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(t.Columns))
	for _, c := range t.Columns {
		row[c.Name] = c.Values[i]
	}
	return row
}

// Clone returns a copy whose column slices do not alias t.
// Cell values themselves are shared.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		values := make([]interface{}, len(c.Values))
		copy(values, c.Values)
		out.Columns[i] = Column{Name: c.Name, Values: values}
	}
	return out
}

// Validate checks the structural preconditions of a table:
// at least one column, unique column names and a fixed row count.
func (t *Table) Validate() error {
	if t == nil {
		return NewInvalidInputError(StageInput, "", "table is nil")
	}
	if len(t.Columns) == 0 {
		return NewInvalidInputError(StageInput, "", "table has zero columns")
	}
	return t.validateShape(StageInput)
}

func (t *Table) validateShape(stage Stage) error {
	rows := t.NumRows()
	names := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		if _, dup := names[c.Name]; dup {
			return NewInvalidInputError(stage, c.Name, "duplicate column name")
		}
		names[c.Name] = struct{}{}
		if len(c.Values) != rows {
			return NewInvalidInputError(stage, c.Name, "column has %d rows, expected %d", len(c.Values), rows)
		}
	}
	return nil
}

// ValidateShape checks names and row counts but accepts a table with no columns.
// Stages downstream of cleaning use it, since cleaning may legitimately drop every column.
func (t *Table) ValidateShape(stage Stage) error {
	if t == nil {
		return NewInvalidInputError(stage, "", "table is nil")
	}
	return t.validateShape(stage)
}

// String implements fmt.Stringer
func (t *Table) String() string {
	return fmt.Sprintf("Table{columns: %d, rows: %d}", t.NumColumns(), t.NumRows())
}
