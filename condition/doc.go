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

/*
Package condition filters raw table rows with boolean expressions.

Expressions are compiled with the expr-lang library and evaluated against each
row as a map of column name to cell value. Columns absent from the table
evaluate to nil.

# Custom Functions

	like_match(text, pattern) - SQL LIKE with % and _ wildcards
	is_null(value)            - value is nil or NaN
	is_not_null(value)        - negation of is_null
	is_blank(value)           - value is missing or a whitespace-only string
	to_string(value)          - string form of any value
	to_number(value)          - numeric form of a number or numeric string

# Usage

	cond, err := condition.NewExprCondition("EventID == 4625 && !is_blank(IpAddress)")
	if err != nil {
		return err
	}
	failures, err := condition.FilterTable(table, cond)

An expression that fails at runtime for a row (for example comparing a string
with a number) excludes that row.
*/
package condition
