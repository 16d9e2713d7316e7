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

// Package binarizer turns a cleaned table into a presence table:
// true where a cell is populated, false where it is missing.
package binarizer

import (
	"github.com/rulego/sigprofile/types"
	"github.com/rulego/sigprofile/utils/cast"
)

// Binarize returns a BoolTable with the shape and column order of table.
// nil and NaN are always missing; when treatBlankAsMissing is set, strings
// made only of whitespace are missing too.
func Binarize(table *types.Table, treatBlankAsMissing bool) (*types.BoolTable, error) {
	if err := table.ValidateShape(types.StageBinarize); err != nil {
		return nil, err
	}

	out := &types.BoolTable{Columns: make([]types.BoolColumn, len(table.Columns))}
	for i, col := range table.Columns {
		values := make([]bool, len(col.Values))
		for r, v := range col.Values {
			values[r] = IsPresent(v, treatBlankAsMissing)
		}
		out.Columns[i] = types.BoolColumn{Name: col.Name, Values: values}
	}
	return out, nil
}

// IsPresent reports whether a single cell counts as populated
func IsPresent(v interface{}, treatBlankAsMissing bool) bool {
	if cast.IsMissing(v) {
		return false
	}
	if treatBlankAsMissing && cast.IsBlank(v) {
		return false
	}
	return true
}
