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

// Package uniqueness finds values that single out a structural group.
//
// Within a group, a column whose frequency table holds between 1 and
// threshold distinct values has all of those values flagged as group-unique.
// Across groups, each flagged (column, value) pair is counted once per group
// that flagged it; a global count of 1 means the value identifies exactly one
// structural group of the whole table.
package uniqueness

import (
	"fmt"

	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/signature"
)

// Pair is a (column, value) combination. Value is in comparable form.
type Pair struct {
	Column string      `json:"column"`
	Value  interface{} `json:"value"`
}

// String implements fmt.Stringer
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %v)", p.Column, p.Value)
}

// PairCount is a pair with its global count
type PairCount struct {
	Pair  Pair `json:"pair"`
	Count int  `json:"count"`
}

// Report holds the group-unique pairs of every fingerprint and their global counts.
type Report struct {
	Threshold int

	order          []signature.Fingerprint
	perFingerprint map[signature.Fingerprint][]Pair
	pairOrder      []Pair
	globalCounts   map[Pair]int
}

// FindUniques scans every group of idx. A threshold below 1 is treated as 1.
func FindUniques(idx *signature.Index, threshold int) *Report {
	log := logger.Component("uniqueness")
	if threshold < 1 {
		log.Warn("uniqueness threshold %d is below 1, using 1", threshold)
		threshold = 1
	}

	r := &Report{
		Threshold:      threshold,
		perFingerprint: make(map[signature.Fingerprint][]Pair),
		globalCounts:   make(map[Pair]int),
	}
	if idx == nil {
		return r
	}

	for _, g := range idx.Groups() {
		uniques := make([]Pair, 0)
		for _, column := range g.PresentColumns {
			freq := g.Frequency(column)
			// a present column without values is excluded, not flagged
			if freq == nil || freq.Len() == 0 || freq.Len() > threshold {
				continue
			}
			for _, v := range freq.Values() {
				p := Pair{Column: column, Value: v}
				uniques = append(uniques, p)
				if _, seen := r.globalCounts[p]; !seen {
					r.pairOrder = append(r.pairOrder, p)
				}
				r.globalCounts[p]++
			}
		}
		r.order = append(r.order, g.Fingerprint)
		r.perFingerprint[g.Fingerprint] = uniques
	}

	log.Info("threshold %d: %d group-unique pairs, %d table-wide", threshold, len(r.pairOrder), len(r.TableWidePairs()))
	return r
}

// Fingerprints returns the analyzed fingerprints in index order
func (r *Report) Fingerprints() []signature.Fingerprint {
	out := make([]signature.Fingerprint, len(r.order))
	copy(out, r.order)
	return out
}

// Uniques returns the group-unique pairs of fp in column order
func (r *Report) Uniques(fp signature.Fingerprint) []Pair {
	return r.perFingerprint[fp]
}

// PerFingerprint returns a copy of the fingerprint → pairs mapping
func (r *Report) PerFingerprint() map[signature.Fingerprint][]Pair {
	out := make(map[signature.Fingerprint][]Pair, len(r.perFingerprint))
	for fp, pairs := range r.perFingerprint {
		out[fp] = append([]Pair(nil), pairs...)
	}
	return out
}

// GlobalCount returns the number of groups in which p was flagged
func (r *Report) GlobalCount(p Pair) int {
	return r.globalCounts[p]
}

// GlobalCounts returns a copy of the pair → group count mapping
func (r *Report) GlobalCounts() map[Pair]int {
	out := make(map[Pair]int, len(r.globalCounts))
	for p, n := range r.globalCounts {
		out[p] = n
	}
	return out
}

// Pairs returns every flagged pair with its global count, in first-flagged order
func (r *Report) Pairs() []PairCount {
	out := make([]PairCount, len(r.pairOrder))
	for i, p := range r.pairOrder {
		out[i] = PairCount{Pair: p, Count: r.globalCounts[p]}
	}
	return out
}

// IsTableWide reports whether p was flagged in exactly one group
func (r *Report) IsTableWide(p Pair) bool {
	return r.globalCounts[p] == 1
}

// TableWide returns the pairs of fp that are unique across the whole table
func (r *Report) TableWide(fp signature.Fingerprint) []Pair {
	var out []Pair
	for _, p := range r.perFingerprint[fp] {
		if r.IsTableWide(p) {
			out = append(out, p)
		}
	}
	return out
}

// TableWidePairs returns all pairs with a global count of 1: candidate
// natural keys or anomalous singleton values.
func (r *Report) TableWidePairs() []Pair {
	var out []Pair
	for _, p := range r.pairOrder {
		if r.globalCounts[p] == 1 {
			out = append(out, p)
		}
	}
	return out
}
