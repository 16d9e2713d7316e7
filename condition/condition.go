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

package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/sigprofile/types"
	"github.com/rulego/sigprofile/utils/cast"
)

type Condition interface {
	Evaluate(env interface{}) bool
}

type ExprCondition struct {
	expression string
	program    *vm.Program
}

func NewExprCondition(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match function requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match function requires string parameters")
			}
			return matchesLikePattern(text, pattern), nil
		}),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null function requires 1 parameter")
			}
			return cast.IsMissing(params[0]), nil
		}),
		expr.Function("is_not_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_not_null function requires 1 parameter")
			}
			return !cast.IsMissing(params[0]), nil
		}),
		// is_blank: 缺失值或仅含空白字符的字符串
		expr.Function("is_blank", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_blank function requires 1 parameter")
			}
			return cast.IsMissing(params[0]) || cast.IsBlank(params[0]), nil
		}),
		expr.Function("to_string", func(params ...any) (any, error) {
			if len(params) != 1 {
				return "", fmt.Errorf("to_string function requires 1 parameter")
			}
			return cast.ToString(params[0]), nil
		}),
		expr.Function("to_number", func(params ...any) (any, error) {
			if len(params) != 1 {
				return 0.0, fmt.Errorf("to_number function requires 1 parameter")
			}
			return cast.ToFloat64E(params[0])
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{expression: expression, program: program}, nil
}

// Evaluate runs the compiled expression; a runtime error counts as false.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// String returns the source expression
func (ec *ExprCondition) String() string {
	return ec.expression
}

// FilterTable returns a new table with only the rows for which cond holds.
// Each row is evaluated as a map of column name to raw cell value.
// A nil cond keeps every row.
func FilterTable(table *types.Table, cond Condition) (*types.Table, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if cond == nil {
		return table.Clone(), nil
	}

	keep := make([]int, 0, table.NumRows())
	for r := 0; r < table.NumRows(); r++ {
		if cond.Evaluate(table.Row(r)) {
			keep = append(keep, r)
		}
	}

	out := &types.Table{Columns: make([]types.Column, len(table.Columns))}
	for i, col := range table.Columns {
		values := make([]interface{}, len(keep))
		for j, r := range keep {
			values[j] = col.Values[r]
		}
		out.Columns[i] = types.Column{Name: col.Name, Values: values}
	}
	return out, nil
}

// matchesLikePattern 实现LIKE模式匹配
// 支持%（匹配任意字符序列）和_（匹配单个字符）
func matchesLikePattern(text, pattern string) bool {
	return likeMatch(text, pattern, 0, 0)
}

// likeMatch 递归实现LIKE匹配算法
func likeMatch(text, pattern string, textIndex, patternIndex int) bool {
	if patternIndex >= len(pattern) {
		return textIndex >= len(text)
	}

	// 文本已经结束，剩余模式必须全是%
	if textIndex >= len(text) {
		for i := patternIndex; i < len(pattern); i++ {
			if pattern[i] != '%' {
				return false
			}
		}
		return true
	}

	switch pattern[patternIndex] {
	case '%':
		if likeMatch(text, pattern, textIndex, patternIndex+1) {
			return true
		}
		for i := textIndex; i < len(text); i++ {
			if likeMatch(text, pattern, i+1, patternIndex+1) {
				return true
			}
		}
		return false
	case '_':
		return likeMatch(text, pattern, textIndex+1, patternIndex+1)
	default:
		if text[textIndex] == pattern[patternIndex] {
			return likeMatch(text, pattern, textIndex+1, patternIndex+1)
		}
		return false
	}
}
