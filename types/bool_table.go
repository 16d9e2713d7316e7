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

// BoolColumn holds the presence flags of one column.
type BoolColumn struct {
	Name   string `json:"name"`
	Values []bool `json:"values"`
}

// BoolTable has the same row count and column set as the table it was
// derived from; a cell is true when the source cell was populated.
type BoolTable struct {
	Columns []BoolColumn `json:"columns"`
}

// NumRows returns the row count
func (b *BoolTable) NumRows() int {
	if b == nil || len(b.Columns) == 0 {
		return 0
	}
	return len(b.Columns[0].Values)
}

// NumColumns returns the column count
func (b *BoolTable) NumColumns() int {
	if b == nil {
		return 0
	}
	return len(b.Columns)
}

// ColumnNames returns the column names in table order
func (b *BoolTable) ColumnNames() []string {
	names := make([]string, b.NumColumns())
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// RowBits returns the presence vector of row i in column order.
func (b *BoolTable) RowBits(i int) []bool {
	bits := make([]bool, len(b.Columns))
	for c := range b.Columns {
		bits[c] = b.Columns[c].Values[i]
	}
	return bits
}
