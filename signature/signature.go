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

package signature

import (
	"strings"

	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/types"
	"github.com/rulego/sigprofile/utils/cast"
)

// Fingerprint is a row's presence pattern: one '1' or '0' per column, in column order.
type Fingerprint string

// NewFingerprint encodes a presence vector
func NewFingerprint(bits []bool) Fingerprint {
	var b strings.Builder
	b.Grow(len(bits))
	for _, present := range bits {
		if present {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return Fingerprint(b.String())
}

// Present reports whether column i is populated in this fingerprint
func (f Fingerprint) Present(i int) bool {
	return i >= 0 && i < len(f) && f[i] == '1'
}

// Split partitions columns into those present and missing under f.
func (f Fingerprint) Split(columns []string) (present, missing []string) {
	present = make([]string, 0, len(columns))
	missing = make([]string, 0, len(columns))
	for i, name := range columns {
		if f.Present(i) {
			present = append(present, name)
		} else {
			missing = append(missing, name)
		}
	}
	return present, missing
}

// Group aggregates every row sharing one fingerprint.
type Group struct {
	Fingerprint    Fingerprint                `json:"fingerprint"`
	Count          int                        `json:"count"`
	PresentColumns []string                   `json:"presentColumns"`
	MissingColumns []string                   `json:"missingColumns"`
	ValueFrequency map[string]*FrequencyTable `json:"-"`

	presentIdx []int
}

func newGroup(fp Fingerprint, columns []string) *Group {
	present, missing := fp.Split(columns)
	g := &Group{
		Fingerprint:    fp,
		PresentColumns: present,
		MissingColumns: missing,
		ValueFrequency: make(map[string]*FrequencyTable, len(present)),
		presentIdx:     make([]int, 0, len(present)),
	}
	for i, name := range columns {
		if fp.Present(i) {
			g.presentIdx = append(g.presentIdx, i)
			g.ValueFrequency[name] = NewFrequencyTable()
		}
	}
	return g
}

// Frequency returns the value counts of a present column, or nil
func (g *Group) Frequency(column string) *FrequencyTable {
	return g.ValueFrequency[column]
}

// TopValues returns up to n of the most frequent values of column within the group
func (g *Group) TopValues(column string, n int) []ValueCount {
	f := g.ValueFrequency[column]
	if f == nil {
		return nil
	}
	return f.Top(n)
}

// Index maps fingerprints to their groups and remembers the order in which
// fingerprints were first seen.
type Index struct {
	columns []string
	order   []Fingerprint
	groups  map[Fingerprint]*Group
	rows    int
}

// NewIndex creates an empty index over the given columns
func NewIndex(columns []string) *Index {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Index{
		columns: cols,
		groups:  make(map[Fingerprint]*Group),
	}
}

// Add folds one row into the index. bits and values are in column order.
// Values are stored in their comparable form.
func (idx *Index) Add(bits []bool, values []interface{}) error {
	if len(bits) != len(idx.columns) || len(values) != len(idx.columns) {
		return types.NewInvalidInputError(types.StageIndex, "", "row has %d flags and %d values, expected %d", len(bits), len(values), len(idx.columns))
	}
	fp := NewFingerprint(bits)
	g, ok := idx.groups[fp]
	if !ok {
		g = newGroup(fp, idx.columns)
		idx.groups[fp] = g
		idx.order = append(idx.order, fp)
	}
	g.Count++
	for _, i := range g.presentIdx {
		g.ValueFrequency[idx.columns[i]].Add(cast.ToKey(values[i]))
	}
	idx.rows++
	return nil
}

// Columns returns the indexed column names
func (idx *Index) Columns() []string {
	out := make([]string, len(idx.columns))
	copy(out, idx.columns)
	return out
}

// Len returns the number of distinct fingerprints
func (idx *Index) Len() int {
	return len(idx.order)
}

// TotalRows returns the number of rows folded into the index
func (idx *Index) TotalRows() int {
	return idx.rows
}

// Fingerprints returns the fingerprints in first-seen order
func (idx *Index) Fingerprints() []Fingerprint {
	out := make([]Fingerprint, len(idx.order))
	copy(out, idx.order)
	return out
}

// Get returns the group for fp
func (idx *Index) Get(fp Fingerprint) (*Group, bool) {
	g, ok := idx.groups[fp]
	return g, ok
}

// Groups returns all groups in first-seen order
func (idx *Index) Groups() []*Group {
	out := make([]*Group, len(idx.order))
	for i, fp := range idx.order {
		out[i] = idx.groups[fp]
	}
	return out
}

// Build indexes every row of a cleaned table by its presence pattern.
// presence must come from binarizing cleaned: same row count and the same
// columns in the same order.
func Build(presence *types.BoolTable, cleaned *types.Table) (*Index, error) {
	if presence == nil {
		return nil, types.NewInvalidInputError(types.StageIndex, "", "presence table is nil")
	}
	if err := cleaned.ValidateShape(types.StageIndex); err != nil {
		return nil, err
	}
	if presence.NumColumns() != cleaned.NumColumns() {
		return nil, types.NewInvalidInputError(types.StageIndex, "", "presence table has %d columns, cleaned table has %d", presence.NumColumns(), cleaned.NumColumns())
	}
	rows := cleaned.NumRows()
	for i, col := range presence.Columns {
		if col.Name != cleaned.Columns[i].Name {
			return nil, types.NewInvalidInputError(types.StageIndex, col.Name, "column %d is %q in the cleaned table", i, cleaned.Columns[i].Name)
		}
		if len(col.Values) != rows {
			return nil, types.NewInvalidInputError(types.StageIndex, col.Name, "presence column has %d rows, cleaned table has %d", len(col.Values), rows)
		}
	}

	idx := NewIndex(cleaned.ColumnNames())
	values := make([]interface{}, len(cleaned.Columns))
	for r := 0; r < rows; r++ {
		for c := range cleaned.Columns {
			values[c] = cleaned.Columns[c].Values[r]
		}
		if err := idx.Add(presence.RowBits(r), values); err != nil {
			return nil, err
		}
	}

	logger.Component("indexer").Debug("indexed %d rows into %d fingerprints over %d columns", rows, idx.Len(), len(idx.columns))
	return idx, nil
}
