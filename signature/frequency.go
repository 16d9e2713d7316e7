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

import "sort"

// ValueCount pairs an observed value with its number of occurrences
type ValueCount struct {
	Value interface{} `json:"value"`
	Count int         `json:"count"`
}

// FrequencyTable counts occurrences of values in one column of one group.
// Values keep the order in which they were first seen.
type FrequencyTable struct {
	order  []interface{}
	counts map[interface{}]int
	total  int
}

// NewFrequencyTable creates an empty table
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[interface{}]int)}
}

// Add records one occurrence of v. v must be comparable.
func (f *FrequencyTable) Add(v interface{}) {
	n, ok := f.counts[v]
	if !ok {
		f.order = append(f.order, v)
	}
	f.counts[v] = n + 1
	f.total++
}

// Count returns the occurrences of v
func (f *FrequencyTable) Count(v interface{}) int {
	return f.counts[v]
}

// Len returns the number of distinct values
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts
func (f *FrequencyTable) Total() int {
	return f.total
}

// Values returns the distinct values in first-seen order
func (f *FrequencyTable) Values() []interface{} {
	out := make([]interface{}, len(f.order))
	copy(out, f.order)
	return out
}

// Entries returns every value with its count in first-seen order
func (f *FrequencyTable) Entries() []ValueCount {
	out := make([]ValueCount, len(f.order))
	for i, v := range f.order {
		out[i] = ValueCount{Value: v, Count: f.counts[v]}
	}
	return out
}

// Top returns up to n entries by descending count; ties keep first-seen order.
// n <= 0 returns every entry.
func (f *FrequencyTable) Top(n int) []ValueCount {
	entries := f.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Map returns a plain copy of the counts, e.g. for JSON rendering
func (f *FrequencyTable) Map() map[interface{}]int {
	out := make(map[interface{}]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}
