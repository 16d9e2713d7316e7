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

package cleaner

import (
	"fmt"
	"hash/fnv"
	"math"
	"regexp"

	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/types"
	"github.com/rulego/sigprofile/utils/cast"
)

// Reason explains why a column was removed
type Reason string

const (
	ReasonExactName Reason = "exact_name"
	ReasonInvariant Reason = "invariant"
	ReasonPattern   Reason = "pattern"
	ReasonEntropy   Reason = "entropy"
	ReasonDuplicate Reason = "duplicate"
)

// DroppedColumn records one removed column and the single rule that removed it.
type DroppedColumn struct {
	Name   string `json:"name"`
	Reason Reason `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// Options controls which rules are applied
type Options struct {
	ExactNames           []string
	NamePatterns         []string
	DropDuplicateColumns bool
	DropInvariantColumns bool
	Entropy              types.EntropyConfig
}

// DefaultOptions drops duplicate and invariant columns only
func DefaultOptions() Options {
	return Options{
		DropDuplicateColumns: true,
		DropInvariantColumns: true,
		Entropy:              types.DefaultEntropyConfig(),
	}
}

// OptionsFromConfig extracts the cleaning parameters from a pipeline config
func OptionsFromConfig(cfg types.Config) Options {
	return Options{
		ExactNames:           cfg.ExactNames,
		NamePatterns:         cfg.NamePatterns,
		DropDuplicateColumns: cfg.DropDuplicateColumns,
		DropInvariantColumns: cfg.DropInvariantColumns,
		Entropy:              cfg.Entropy,
	}
}

// Result is a cleaned table plus the audit trail of removed columns
type Result struct {
	Table   *types.Table    `json:"table"`
	Dropped []DroppedColumn `json:"dropped"`
}

// DroppedNames returns the names of removed columns in removal order
func (r *Result) DroppedNames() []string {
	names := make([]string, len(r.Dropped))
	for i, d := range r.Dropped {
		names[i] = d.Name
	}
	return names
}

// Cleaner removes analytically uninformative columns.
// A Cleaner is immutable after New and may be reused across tables.
type Cleaner struct {
	opts     Options
	exact    map[string]struct{}
	patterns []*regexp.Regexp
	log      logger.Logger
}

// New compiles the name patterns and validates the options.
func New(opts Options) (*Cleaner, error) {
	c := &Cleaner{
		opts:  opts,
		exact: make(map[string]struct{}, len(opts.ExactNames)),
		log:   logger.Component("cleaner"),
	}
	for _, name := range opts.ExactNames {
		c.exact[name] = struct{}{}
	}
	for _, p := range opts.NamePatterns {
		re, err := types.CompileFullMatch(p)
		if err != nil {
			return nil, types.WrapInvalidInput(types.StageClean, "", err, "invalid name pattern %q", p)
		}
		c.patterns = append(c.patterns, re)
	}
	if e := opts.Entropy; e.Enabled && (e.Lower < 0 || e.Upper > 1 || e.Lower > e.Upper) {
		return nil, types.NewInvalidInputError(types.StageClean, "", "entropy bounds must satisfy 0 <= lower <= upper <= 1, got [%g, %g]", e.Lower, e.Upper)
	}
	return c, nil
}

// Clean is a convenience wrapper around New(opts).Clean(table)
func Clean(table *types.Table, opts Options) (*Result, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.Clean(table)
}

// Clean returns a new table holding the surviving columns in their original order.
// Cell values are replaced by their comparable form (see cast.ToKey).
//
// Per column, in order, the first matching rule wins:
// exact name, invariant, name pattern, entropy. Duplicate removal runs last over
// the survivors; columns that are entirely empty are exempt from it.
func (c *Cleaner) Clean(table *types.Table) (*Result, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	kept := make([]types.Column, 0, len(table.Columns))
	for _, col := range table.Columns {
		keyed := types.Column{Name: col.Name, Values: toKeys(col.Values)}
		if reason, detail, drop := c.columnRule(keyed); drop {
			c.drop(result, col.Name, reason, detail)
			continue
		}
		kept = append(kept, keyed)
	}

	if c.opts.DropDuplicateColumns {
		kept = c.dropDuplicates(kept, result)
	}

	result.Table = &types.Table{Columns: kept}
	c.log.Info("kept %d of %d columns over %d rows", len(kept), len(table.Columns), table.NumRows())
	return result, nil
}

func (c *Cleaner) columnRule(col types.Column) (Reason, string, bool) {
	if _, ok := c.exact[col.Name]; ok {
		return ReasonExactName, "", true
	}
	if c.opts.DropInvariantColumns {
		if n := distinctCount(col.Values); n <= 1 {
			return ReasonInvariant, fmt.Sprintf("%d distinct values", n), true
		}
	}
	for _, re := range c.patterns {
		if re.MatchString(col.Name) {
			return ReasonPattern, re.String(), true
		}
	}
	if c.opts.Entropy.Enabled {
		if e, ok := normalizedEntropy(col.Values); !ok || e < c.opts.Entropy.Lower || e > c.opts.Entropy.Upper {
			return ReasonEntropy, fmt.Sprintf("normalized entropy %.3f", e), true
		}
	}
	return "", "", false
}

func (c *Cleaner) drop(result *Result, name string, reason Reason, detail string) {
	result.Dropped = append(result.Dropped, DroppedColumn{Name: name, Reason: reason, Detail: detail})
	if detail != "" {
		c.log.Debug("dropped column %s: %s (%s)", name, reason, detail)
	} else {
		c.log.Debug("dropped column %s: %s", name, reason)
	}
}

// dropDuplicates keeps the first column of each group of identical value
// sequences. Columns whose every cell is missing or "" always survive.
func (c *Cleaner) dropDuplicates(cols []types.Column, result *Result) []types.Column {
	buckets := make(map[uint64][]int)
	out := make([]types.Column, 0, len(cols))
	for _, col := range cols {
		if allEmpty(col.Values) {
			out = append(out, col)
			continue
		}
		h := hashValues(col.Values)
		duplicateOf := ""
		for _, idx := range buckets[h] {
			if equalValues(out[idx].Values, col.Values) {
				duplicateOf = out[idx].Name
				break
			}
		}
		if duplicateOf != "" {
			c.drop(result, col.Name, ReasonDuplicate, "same values as "+duplicateOf)
			continue
		}
		buckets[h] = append(buckets[h], len(out))
		out = append(out, col)
	}
	return out
}

func toKeys(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = cast.ToKey(v)
	}
	return out
}

// distinctCount counts distinct non-missing values
func distinctCount(keys []interface{}) int {
	seen := make(map[interface{}]struct{})
	for _, k := range keys {
		if k == nil {
			continue
		}
		seen[k] = struct{}{}
	}
	return len(seen)
}

// normalizedEntropy is the Shannon entropy of the non-missing value
// distribution divided by log2(distinct). ok is false when the column has
// fewer than two distinct values, where the ratio is undefined.
func normalizedEntropy(keys []interface{}) (float64, bool) {
	counts := make(map[interface{}]int)
	total := 0
	for _, k := range keys {
		if k == nil {
			continue
		}
		counts[k]++
		total++
	}
	if len(counts) < 2 {
		return 0, false
	}
	var h float64
	for _, n := range counts {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h / math.Log2(float64(len(counts))), true
}

func allEmpty(keys []interface{}) bool {
	for _, k := range keys {
		if !cast.IsEmpty(k) {
			return false
		}
	}
	return true
}

func hashValues(keys []interface{}) uint64 {
	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%T\x1f%v\x1e", k, k)
	}
	return h.Sum64()
}

func equalValues(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
