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

package sigprofile

import (
	"fmt"
	"io"
	"strings"

	"github.com/rulego/sigprofile/utils/table"
)

// PrintSummary 输出最近一次运行的概要：删除的列和每个指纹组的行数及出现次数最多的值。
// topN 限制每列显示的取值个数，小于 1 时每列只显示 1 个。
func (p *Profiler) PrintSummary(w io.Writer, topN int) {
	r := p.Last()
	if r == nil {
		fmt.Fprintln(w, "no completed run")
		return
	}
	if topN < 1 {
		topN = 1
	}

	fmt.Fprintf(w, "run %s: %d rows, %d columns kept, %d dropped, %d fingerprints\n",
		r.RunID, r.Filtered.NumRows(), r.Cleaned.Table.NumColumns(), len(r.Cleaned.Dropped), r.Index.Len())

	if len(r.Cleaned.Dropped) > 0 {
		dropped := make([]map[string]interface{}, 0, len(r.Cleaned.Dropped))
		for _, d := range r.Cleaned.Dropped {
			dropped = append(dropped, map[string]interface{}{
				"column": d.Name,
				"reason": string(d.Reason),
				"detail": d.Detail,
			})
		}
		table.PrintTableFromSlice(w, dropped, []string{"column", "reason", "detail"})
	}

	rows := make([]map[string]interface{}, 0)
	for _, g := range r.Index.Groups() {
		for _, column := range g.PresentColumns {
			var parts []string
			for _, vc := range g.TopValues(column, topN) {
				parts = append(parts, fmt.Sprintf("%v (%d)", vc.Value, vc.Count))
			}
			rows = append(rows, map[string]interface{}{
				"fingerprint": string(g.Fingerprint),
				"rows":        g.Count,
				"column":      column,
				"top values":  strings.Join(parts, ", "),
			})
		}
	}
	table.FormatTableData(w, rows, []string{"fingerprint", "rows", "column", "top values"})
}

// PrintReport 输出最近一次运行的唯一值报告。
// 全表唯一（只属于一个指纹组）的值以高亮显示。
func (p *Profiler) PrintReport(w io.Writer) {
	r := p.Last()
	if r == nil {
		fmt.Fprintln(w, "no completed run")
		return
	}
	report := r.Report
	fmt.Fprintf(w, "run %s: threshold %d, %d group-unique pairs, %d table-wide\n",
		r.RunID, report.Threshold, len(report.Pairs()), len(report.TableWidePairs()))

	rows := make([]map[string]interface{}, 0)
	for _, fp := range report.Fingerprints() {
		for _, pair := range report.Uniques(fp) {
			var value interface{} = pair.Value
			if report.IsTableWide(pair) {
				value = table.Highlighted{Value: pair.Value}
			}
			rows = append(rows, map[string]interface{}{
				"fingerprint": string(fp),
				"column":      pair.Column,
				"value":       value,
				"groups":      report.GlobalCount(pair),
			})
		}
	}
	table.FormatTableData(w, rows, []string{"fingerprint", "column", "value", "groups"})
}
