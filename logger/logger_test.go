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

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

// TestParseLevel 测试日志级别解析
func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel(" Warning "))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, OFF, ParseLevel("off"))
	assert.Equal(t, INFO, ParseLevel(""))
	assert.Equal(t, INFO, ParseLevel("verbose"))
}

// TestNewLogger 测试创建新的日志器
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)
	require.NotNil(t, log)

	log.Info("info message with %d number", 42)
	output := buf.String()
	assert.Contains(t, output, "info message with 42 number")
	assert.Contains(t, output, "[INFO]")
}

// TestDefaultLogger_LevelFiltering 测试日志级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel  Level
		messageLevel Level
		shouldLog    bool
	}{
		{DEBUG, DEBUG, true},
		{DEBUG, ERROR, true},
		{INFO, DEBUG, false},
		{INFO, WARN, true},
		{WARN, INFO, false},
		{WARN, ERROR, true},
		{ERROR, WARN, false},
		{ERROR, ERROR, true},
		{OFF, ERROR, false},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		log := NewLogger(test.loggerLevel, &buf)

		switch test.messageLevel {
		case DEBUG:
			log.Debug("test message")
		case INFO:
			log.Info("test message")
		case WARN:
			log.Warn("test message")
		case ERROR:
			log.Error("test message")
		}

		logged := strings.Contains(buf.String(), "test message")
		assert.Equal(t, test.shouldLog, logged, "logger=%s message=%s", test.loggerLevel, test.messageLevel)
	}
}

// TestWith 测试组件日志器
func TestWith(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(DEBUG, &buf)
	cleaner := root.With("cleaner")

	cleaner.Debug("dropped column %s", "TenantId")
	assert.Contains(t, buf.String(), "[DEBUG] [cleaner] dropped column TenantId")

	buf.Reset()
	cleaner.With("dedup").Info("kept %d", 3)
	assert.Contains(t, buf.String(), "[cleaner.dedup] kept 3")

	// 级别在派生日志器之间共享
	buf.Reset()
	root.SetLevel(ERROR)
	cleaner.Warn("hidden")
	assert.Empty(t, buf.String())
}

// TestNewDiscardLogger 测试丢弃日志器
func TestNewDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b")
		log.Warn("c")
		log.Error("d")
		log.SetLevel(DEBUG)
		log.With("x").Info("e")
	})
}

// TestGlobalLogger 测试全局日志器
func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")
	Component("indexer").Info("groups=%d", 2)

	output := buf.String()
	for _, want := range []string{"global debug", "global info", "global warn", "global error", "[indexer] groups=2"} {
		assert.Contains(t, output, want)
	}
}
