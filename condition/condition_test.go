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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/sigprofile/types"
)

// TestNewExprCondition 测试创建表达式条件
func TestNewExprCondition(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"简单比较表达式", "EventID == 4624", false},
		{"复杂逻辑表达式", "EventID == 4625 && Account == 'alice'", false},
		{"包含函数的表达式", "is_blank(IpAddress)", false},
		{"LIKE模式匹配", "like_match(Account, 'svc_%')", false},
		{"无效表达式", "EventID >", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cond)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cond)
			}
		})
	}
}

// TestExprCondition_Evaluate 测试表达式条件求值
func TestExprCondition_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		expected   bool
	}{
		{"数值比较", "EventID == 4624", map[string]interface{}{"EventID": 4624}, true},
		{"字符串比较", "Account != 'alice'", map[string]interface{}{"Account": "bob"}, true},
		{"is_null - 空值", "is_null(Account)", map[string]interface{}{"Account": nil}, true},
		{"is_null - NaN", "is_null(Latency)", map[string]interface{}{"Latency": math.NaN()}, true},
		{"is_null - 缺失字段", "is_null(missing_field)", map[string]interface{}{}, true},
		{"is_not_null", "is_not_null(Account)", map[string]interface{}{"Account": "x"}, true},
		{"is_blank - 空白字符串", "is_blank(Account)", map[string]interface{}{"Account": "  "}, true},
		{"is_blank - 有值", "is_blank(Account)", map[string]interface{}{"Account": "a"}, false},
		{"to_number", "to_number(Port) > 1024", map[string]interface{}{"Port": "8080"}, true},
		{"to_string", "to_string(EventID) == '4624'", map[string]interface{}{"EventID": 4624}, true},
		{"运行时错误视为false", "to_number(Port) > 1", map[string]interface{}{"Port": "http"}, false},
		{"like_match类型错误", "like_match(Port, 'x%')", map[string]interface{}{"Port": 80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cond.Evaluate(tt.env))
		})
	}
}

// TestExprCondition_LikeMatch 测试like_match函数
func TestExprCondition_LikeMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		expected   bool
	}{
		{"LIKE - 前缀匹配", "like_match(name, 'John%')", map[string]interface{}{"name": "Johnson"}, true},
		{"LIKE - 后缀匹配", "like_match(name, '%son')", map[string]interface{}{"name": "Johnson"}, true},
		{"LIKE - 包含匹配", "like_match(name, '%oh%')", map[string]interface{}{"name": "Johnson"}, true},
		{"LIKE - 单字符匹配", "like_match(name, 'J_hn')", map[string]interface{}{"name": "John"}, true},
		{"LIKE - 不匹配", "like_match(name, 'Jane%')", map[string]interface{}{"name": "Johnson"}, false},
		{"LIKE - 复杂模式", "like_match(email, '%@%.com')", map[string]interface{}{"email": "user@example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cond.Evaluate(tt.env))
		})
	}
}

// TestMatchesLikePattern 测试LIKE模式匹配函数
func TestMatchesLikePattern(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pattern  string
		expected bool
	}{
		{"精确匹配", "hello", "hello", true},
		{"前缀通配符", "hello world", "hello%", true},
		{"后缀通配符", "hello world", "%world", true},
		{"中间通配符", "hello world", "hello%world", true},
		{"多个单字符通配符", "hello", "h__lo", true},
		{"混合通配符", "hello world test", "h_llo%test", true},
		{"空字符串匹配", "", "%", true},
		{"不匹配", "hello", "world", false},
		{"长度不匹配", "hello", "h_", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchesLikePattern(tt.text, tt.pattern))
		})
	}
}

// TestFilterTable 测试按条件过滤表的行
func TestFilterTable(t *testing.T) {
	table, err := types.NewTable([]string{"EventID", "Account", "IpAddress"}, [][]interface{}{
		{4624, "alice", "10.0.0.1"},
		{4625, "bob", ""},
		{4625, "carol", "10.0.0.9"},
		{4634, "alice", nil},
	})
	require.NoError(t, err)

	cond, err := NewExprCondition("EventID == 4625 && !is_blank(IpAddress)")
	require.NoError(t, err)

	out, err := FilterTable(table, cond)
	require.NoError(t, err)
	assert.Equal(t, []string{"EventID", "Account", "IpAddress"}, out.ColumnNames())
	assert.Equal(t, 1, out.NumRows())
	assert.Equal(t, map[string]interface{}{"EventID": 4625, "Account": "carol", "IpAddress": "10.0.0.9"}, out.Row(0))
	assert.Equal(t, 4, table.NumRows())

	all, err := FilterTable(table, nil)
	require.NoError(t, err)
	assert.Equal(t, table, all)
	all.Columns[0].Values[0] = 0
	assert.Equal(t, 4624, table.Columns[0].Values[0])

	_, err = FilterTable(&types.Table{}, cond)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
