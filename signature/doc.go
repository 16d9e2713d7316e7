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
Package signature groups rows by their presence pattern.

A Fingerprint has one character per column: '1' when the cell is populated,
'0' when it is missing. Rows sharing a fingerprint form a Group that counts its
rows and, for every present column, how often each value occurs:

	presence, _ := binarizer.Binarize(cleaned, true)
	idx, err := signature.Build(presence, cleaned)
	for _, g := range idx.Groups() {
		fmt.Println(g.Fingerprint, g.Count, g.PresentColumns)
		for _, vc := range g.TopValues("Account", 3) {
			fmt.Println("  ", vc.Value, vc.Count)
		}
	}

Counts and frequencies do not depend on row order; only Fingerprints() and
Groups() follow first-seen order.

Index.Add folds a single row, so callers holding prior state can extend an
index explicitly. Build always starts from an empty index.
*/
package signature
