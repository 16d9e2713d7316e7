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

// Package variability scores how much a table's schema varies from row to row.
//
// Rows are grouped by presence pattern. For each column, the share of distinct
// patterns in which it is populated tells whether it is always filled (1),
// never filled (0) or sometimes filled. The score is the number of sometimes
// filled columns divided by the number of always filled columns: a table whose
// score exceeds 1 is "variable", anything else is "constant".
package variability

import (
	"math"

	"github.com/rulego/sigprofile/binarizer"
	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/signature"
	"github.com/rulego/sigprofile/types"
)

// Class is the variability verdict for a table
type Class string

const (
	NoData   Class = "no_data"
	Variable Class = "variable"
	Constant Class = "constant"
)

// Result describes the fill behaviour of every column
type Result struct {
	Score           float64  `json:"score"`
	Class           Class    `json:"class"`
	Patterns        int      `json:"patterns"`
	AlwaysFilled    []string `json:"alwaysFilled"`
	SometimesFilled []string `json:"sometimesFilled"`
	NeverFilled     []string `json:"neverFilled"`
}

// Measure scores table. Blank strings count as empty cells.
// A table without rows is classed NoData. With no always-filled column the
// score is +Inf when some column is sometimes filled, and 0 otherwise.
func Measure(table *types.Table) (*Result, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if table.NumRows() == 0 {
		return &Result{Class: NoData}, nil
	}

	presence, err := binarizer.Binarize(table, true)
	if err != nil {
		return nil, err
	}
	idx, err := signature.Build(presence, table)
	if err != nil {
		return nil, err
	}

	res := &Result{Patterns: idx.Len()}
	filled := make([]int, len(table.Columns))
	for _, fp := range idx.Fingerprints() {
		for i := range filled {
			if fp.Present(i) {
				filled[i]++
			}
		}
	}
	for i, name := range idx.Columns() {
		switch filled[i] {
		case 0:
			res.NeverFilled = append(res.NeverFilled, name)
		case res.Patterns:
			res.AlwaysFilled = append(res.AlwaysFilled, name)
		default:
			res.SometimesFilled = append(res.SometimesFilled, name)
		}
	}

	switch {
	case len(res.AlwaysFilled) > 0:
		res.Score = float64(len(res.SometimesFilled)) / float64(len(res.AlwaysFilled))
	case len(res.SometimesFilled) > 0:
		res.Score = math.Inf(1)
	}
	res.Class = Constant
	if res.Score > 1 {
		res.Class = Variable
	}

	logger.Component("variability").Debug("score %.2f (%s) over %d patterns", res.Score, res.Class, res.Patterns)
	return res, nil
}

// MeasureAll scores several named tables, e.g. samples of every table in a workspace.
// The first invalid table aborts the whole call.
func MeasureAll(tables map[string]*types.Table) (map[string]*Result, error) {
	out := make(map[string]*Result, len(tables))
	for name, t := range tables {
		res, err := Measure(t)
		if err != nil {
			return nil, types.WrapInvalidInput(types.StageVariation, "", err, "table %s", name)
		}
		out[name] = res
	}
	return out, nil
}
