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
Package types provides the data model shared by every stage of the profiling pipeline.

# Tables

A Table is an ordered list of named columns with a fixed row count. Cells are
heterogeneous, and nil marks a missing cell:

	table, err := types.NewTable(
		[]string{"Account", "IpAddress"},
		[][]interface{}{
			{"alice", "10.0.0.1"},
			{"bob", nil},
		},
	)

Event records of mixed schema are converted with FromRecords, where an absent key
becomes a missing cell.

A BoolTable mirrors a cleaned table with true for populated cells.

# Configuration

Config carries every pipeline parameter. NewConfig returns the defaults and
LoadConfig reads a file through viper with SIGPROFILE_ environment overrides:

	# sigprofile.yaml
	exact_names: [TimeGenerated, TenantId]
	name_patterns: ["Source.*"]
	uniqueness_threshold: 2

# Errors

Every validation failure is a *ProfileError naming the stage (and column where
applicable) and wraps ErrInvalidInput.
*/
package types
