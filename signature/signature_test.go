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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/sigprofile/binarizer"
	"github.com/rulego/sigprofile/types"
)

func buildIndex(t *testing.T, names []string, rows [][]interface{}) *Index {
	t.Helper()
	table, err := types.NewTable(names, rows)
	require.NoError(t, err)
	presence, err := binarizer.Binarize(table, true)
	require.NoError(t, err)
	idx, err := Build(presence, table)
	require.NoError(t, err)
	return idx
}

func TestFingerprint(t *testing.T) {
	fp := NewFingerprint([]bool{true, false, true})
	assert.Equal(t, Fingerprint("101"), fp)
	assert.True(t, fp.Present(0))
	assert.False(t, fp.Present(1))
	assert.False(t, fp.Present(5))

	present, missing := fp.Split([]string{"A", "B", "C"})
	assert.Equal(t, []string{"A", "C"}, present)
	assert.Equal(t, []string{"B"}, missing)
}

// TestBuild_TwoGroups 两种填充模式形成两个分组
func TestBuild_TwoGroups(t *testing.T) {
	idx := buildIndex(t, []string{"A", "B"}, [][]interface{}{
		{1, ""},
		{2, ""},
		{1, "x"},
	})

	assert.Equal(t, []Fingerprint{"10", "11"}, idx.Fingerprints())
	assert.Equal(t, 3, idx.TotalRows())

	g, ok := idx.Get("10")
	require.True(t, ok)
	assert.Equal(t, 2, g.Count)
	assert.Equal(t, []string{"A"}, g.PresentColumns)
	assert.Equal(t, []string{"B"}, g.MissingColumns)
	assert.Equal(t, map[interface{}]int{1: 1, 2: 1}, g.Frequency("A").Map())
	assert.Nil(t, g.Frequency("B"))

	g, ok = idx.Get("11")
	require.True(t, ok)
	assert.Equal(t, 1, g.Count)
	assert.Equal(t, []string{"A", "B"}, g.PresentColumns)
	assert.Empty(t, g.MissingColumns)
	assert.Equal(t, map[interface{}]int{1: 1}, g.Frequency("A").Map())
	assert.Equal(t, map[interface{}]int{"x": 1}, g.Frequency("B").Map())
}

// TestBuild_Invariants 分组计数与频次之和的不变量
func TestBuild_Invariants(t *testing.T) {
	rows := [][]interface{}{
		{"alice", "10.0.0.1", nil, "logon"},
		{"bob", "10.0.0.2", nil, "logon"},
		{"alice", nil, "svc", "logoff"},
		{"carol", "10.0.0.1", "svc", "logon"},
		{"alice", "10.0.0.1", nil, "logon"},
		{nil, nil, nil, "heartbeat"},
	}
	names := []string{"Account", "IpAddress", "Service", "Activity"}
	idx := buildIndex(t, names, rows)

	total := 0
	for _, g := range idx.Groups() {
		assert.Len(t, string(g.Fingerprint), len(names))
		total += g.Count
		for _, col := range g.PresentColumns {
			assert.Equal(t, g.Count, g.Frequency(col).Total(), "group %s column %s", g.Fingerprint, col)
		}
		assert.Len(t, g.ValueFrequency, len(g.PresentColumns))
	}
	assert.Equal(t, len(rows), total)

	g, _ := idx.Get("1101")
	assert.Equal(t, 3, g.Count)
	assert.Equal(t, []ValueCount{{"alice", 2}, {"bob", 1}}, g.TopValues("Account", 2))
	assert.Equal(t, []ValueCount{{"10.0.0.1", 2}}, g.TopValues("IpAddress", 1))
}

// TestBuild_OrderIndependent 计数与行顺序无关
func TestBuild_OrderIndependent(t *testing.T) {
	rows := [][]interface{}{
		{"a", nil}, {"b", "x"}, {"a", "y"}, {"c", nil}, {"a", nil},
	}
	reversed := make([][]interface{}, len(rows))
	for i := range rows {
		reversed[len(rows)-1-i] = rows[i]
	}

	fwd := buildIndex(t, []string{"K", "V"}, rows)
	rev := buildIndex(t, []string{"K", "V"}, reversed)

	require.Equal(t, fwd.Len(), rev.Len())
	for _, fp := range fwd.Fingerprints() {
		a, _ := fwd.Get(fp)
		b, ok := rev.Get(fp)
		require.True(t, ok)
		assert.Equal(t, a.Count, b.Count)
		for col, f := range a.ValueFrequency {
			assert.Equal(t, f.Map(), b.ValueFrequency[col].Map())
		}
	}
}

// TestBuild_ZeroRows 没有行时索引为空
func TestBuild_ZeroRows(t *testing.T) {
	idx := buildIndex(t, []string{"A"}, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Groups())
}

// TestBuild_Mismatch 形状不一致时报错
func TestBuild_Mismatch(t *testing.T) {
	table, err := types.NewTable([]string{"A", "B"}, [][]interface{}{{1, 2}})
	require.NoError(t, err)
	other, err := types.NewTable([]string{"A", "C"}, [][]interface{}{{1, 2}})
	require.NoError(t, err)
	short, err := types.NewTable([]string{"A"}, [][]interface{}{{1}})
	require.NoError(t, err)

	presence, err := binarizer.Binarize(table, true)
	require.NoError(t, err)
	longer, err := binarizer.Binarize(&types.Table{Columns: []types.Column{
		{Name: "A", Values: []interface{}{1, 2}},
		{Name: "B", Values: []interface{}{1, 2}},
	}}, true)
	require.NoError(t, err)

	tests := []struct {
		name     string
		presence *types.BoolTable
		cleaned  *types.Table
	}{
		{"列名不同", presence, other},
		{"列数不同", presence, short},
		{"行数不同", longer, table},
		{"nil presence", nil, table},
		{"nil cleaned", presence, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.presence, tt.cleaned)
			assert.ErrorIs(t, err, types.ErrInvalidInput)
		})
	}
}

// TestIndex_Add 增量添加行
func TestIndex_Add(t *testing.T) {
	idx := NewIndex([]string{"A", "B"})
	require.NoError(t, idx.Add([]bool{true, false}, []interface{}{[]int{1}, nil}))
	require.NoError(t, idx.Add([]bool{true, false}, []interface{}{[]int{1}, nil}))
	assert.Error(t, idx.Add([]bool{true}, []interface{}{1}))

	g, ok := idx.Get("10")
	require.True(t, ok)
	assert.Equal(t, 2, g.Count)
	assert.Equal(t, 2, g.Frequency("A").Count("[1]"))
}

func TestFrequencyTable(t *testing.T) {
	f := NewFrequencyTable()
	for _, v := range []interface{}{"b", "a", "b", "c", "a", "b"} {
		f.Add(v)
	}
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 6, f.Total())
	assert.Equal(t, []interface{}{"b", "a", "c"}, f.Values())
	assert.Equal(t, []ValueCount{{"b", 3}, {"a", 2}, {"c", 1}}, f.Entries())
	assert.Equal(t, []ValueCount{{"b", 3}, {"a", 2}}, f.Top(2))
	assert.Len(t, f.Top(0), 3)
	assert.Equal(t, 0, f.Count("z"))
}
