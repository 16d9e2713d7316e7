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
Package cleaner removes columns that carry no structural information before
rows are fingerprinted.

Rules, evaluated per column in input order (first match wins):

  - exact name: the column name is listed in Options.ExactNames
  - invariant: at most one distinct non-missing value (Options.DropInvariantColumns)
  - pattern: a regular expression in Options.NamePatterns matches the whole name
  - entropy: normalized entropy outside [Lower, Upper] (Options.Entropy, off by default)

Then, when Options.DropDuplicateColumns is set, columns with an identical value
sequence to an earlier column are removed. Columns that are entirely missing or
empty are exempt from that step.

Every removal is recorded in Result.Dropped with its reason:

	res, err := cleaner.Clean(table, cleaner.Options{
		ExactNames:           []string{"TimeGenerated"},
		NamePatterns:         []string{"Source.*"},
		DropDuplicateColumns: true,
		DropInvariantColumns: true,
	})
	for _, d := range res.Dropped {
		fmt.Println(d.Name, d.Reason)
	}
*/
package cleaner
