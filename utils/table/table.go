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

package table

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/rulego/sigprofile/utils/cast"
)

// Highlighted marks a cell to be rendered in the highlight color.
// Width is computed on the plain value, so borders stay aligned.
type Highlighted struct {
	Value interface{}
}

var highlightColor = color.New(color.FgGreen, color.Bold)

func cellText(v interface{}) (plain, rendered string) {
	if h, ok := v.(Highlighted); ok {
		plain = cast.ToString(h.Value)
		return plain, highlightColor.Sprint(plain)
	}
	if v == nil {
		return "", ""
	}
	plain = cast.ToString(v)
	return plain, plain
}

// PrintTableFromSlice writes data as an ASCII table to w.
// Columns follow fieldOrder; columns not listed there follow in lexical order.
func PrintTableFromSlice(w io.Writer, data []map[string]interface{}, fieldOrder []string) {
	if len(data) == 0 {
		return
	}

	columnSet := make(map[string]bool)
	for _, row := range data {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for _, field := range fieldOrder {
		if columnSet[field] {
			columns = append(columns, field)
			delete(columnSet, field)
		}
	}
	rest := make([]string, 0, len(columnSet))
	for col := range columnSet {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	columns = append(columns, rest...)

	// 计算每列最大宽度（按终端显示宽度）
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = runewidth.StringWidth(col)
		for _, row := range data {
			plain, _ := cellText(row[col])
			if width := runewidth.StringWidth(plain); width > colWidths[i] {
				colWidths[i] = width
			}
		}
		if colWidths[i] < 4 {
			colWidths[i] = 4
		}
	}

	PrintTableBorder(w, colWidths)
	fmt.Fprint(w, "|")
	for i, col := range columns {
		fmt.Fprintf(w, " %s |", runewidth.FillRight(col, colWidths[i]))
	}
	fmt.Fprintln(w)
	PrintTableBorder(w, colWidths)

	for _, row := range data {
		fmt.Fprint(w, "|")
		for i, col := range columns {
			plain, rendered := cellText(row[col])
			pad := colWidths[i] - runewidth.StringWidth(plain)
			fmt.Fprintf(w, " %s%s |", rendered, strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w)
	}

	PrintTableBorder(w, colWidths)
	fmt.Fprintf(w, "(%d rows)\n", len(data))
}

// PrintTableBorder writes a table border line
func PrintTableBorder(w io.Writer, columnWidths []int) {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range columnWidths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	fmt.Fprintln(w, b.String())
}

// FormatTableData writes a result of any supported shape to w
func FormatTableData(w io.Writer, result interface{}, fieldOrder []string) {
	switch v := result.(type) {
	case []map[string]interface{}:
		if len(v) == 0 {
			fmt.Fprintln(w, "(0 rows)")
			return
		}
		PrintTableFromSlice(w, v, fieldOrder)
	case map[string]interface{}:
		if len(v) == 0 {
			fmt.Fprintln(w, "(0 rows)")
			return
		}
		PrintTableFromSlice(w, []map[string]interface{}{v}, fieldOrder)
	default:
		fmt.Fprintf(w, "Result: %v\n", result)
	}
}
