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

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file configuration,
// e.g. SIGPROFILE_UNIQUENESS_THRESHOLD=2.
const EnvPrefix = "SIGPROFILE"

// Config 剖析流水线配置
type Config struct {
	// 列清洗
	ExactNames           []string      `json:"exactNames" mapstructure:"exact_names"`                     // 按名称精确删除的列
	NamePatterns         []string      `json:"namePatterns" mapstructure:"name_patterns"`                 // 按正则(全匹配)删除的列
	DropDuplicateColumns bool          `json:"dropDuplicateColumns" mapstructure:"drop_duplicate_columns"` // 删除内容重复的列
	DropInvariantColumns bool          `json:"dropInvariantColumns" mapstructure:"drop_invariant_columns"` // 删除不变列
	Entropy              EntropyConfig `json:"entropy" mapstructure:"entropy"`                             // 熵过滤

	// 二值化
	TreatBlankAsMissing bool `json:"treatBlankAsMissing" mapstructure:"treat_blank_as_missing"`

	// 唯一性分析
	UniquenessThreshold int `json:"uniquenessThreshold" mapstructure:"uniqueness_threshold"`

	// 行过滤表达式，在清洗之前作用于原始表
	RowFilter string `json:"rowFilter" mapstructure:"row_filter"`
}

// EntropyConfig 熵过滤配置
// A column is dropped when its normalized Shannon entropy falls outside [Lower, Upper].
type EntropyConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Lower   float64 `json:"lower" mapstructure:"lower"`
	Upper   float64 `json:"upper" mapstructure:"upper"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		DropDuplicateColumns: true,
		DropInvariantColumns: true,
		Entropy:              DefaultEntropyConfig(),
		TreatBlankAsMissing:  true,
		UniquenessThreshold:  1,
	}
}

// DefaultEntropyConfig 默认熵过滤配置（关闭）
func DefaultEntropyConfig() EntropyConfig {
	return EntropyConfig{
		Enabled: false,
		Lower:   0,
		Upper:   1,
	}
}

// EffectiveThreshold returns the uniqueness threshold clamped to at least 1.
func (c Config) EffectiveThreshold() int {
	if c.UniquenessThreshold < 1 {
		return 1
	}
	return c.UniquenessThreshold
}

// Validate checks the parameters eagerly so that a bad configuration is
// rejected before any pipeline state is touched.
// A threshold below 1 is not an error; it is clamped at analysis time.
func (c Config) Validate() error {
	var errs []error
	for _, p := range c.NamePatterns {
		if _, err := CompileFullMatch(p); err != nil {
			errs = append(errs, WrapInvalidInput(StageConfig, "", err, "invalid name pattern %q", p))
		}
	}
	if c.Entropy.Enabled {
		e := c.Entropy
		if e.Lower < 0 || e.Upper > 1 || e.Lower > e.Upper {
			errs = append(errs, NewInvalidInputError(StageConfig, "", "entropy bounds must satisfy 0 <= lower <= upper <= 1, got [%g, %g]", e.Lower, e.Upper))
		}
	}
	return errors.Join(errs...)
}

// CompileFullMatch compiles a column-name pattern anchored at both ends,
// so "Time.*" matches "TimeGenerated" but not "EventTime".
func CompileFullMatch(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pattern + ")$")
}

// LoadConfig 从配置文件加载配置
// Supported formats are those viper understands (yaml, json, toml...).
// Keys missing from the file keep their NewConfig defaults, and every key can be
// overridden by an environment variable prefixed with EnvPrefix.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("exact_names", cfg.ExactNames)
	v.SetDefault("name_patterns", cfg.NamePatterns)
	v.SetDefault("drop_duplicate_columns", cfg.DropDuplicateColumns)
	v.SetDefault("drop_invariant_columns", cfg.DropInvariantColumns)
	v.SetDefault("entropy.enabled", cfg.Entropy.Enabled)
	v.SetDefault("entropy.lower", cfg.Entropy.Lower)
	v.SetDefault("entropy.upper", cfg.Entropy.Upper)
	v.SetDefault("treat_blank_as_missing", cfg.TreatBlankAsMissing)
	v.SetDefault("uniqueness_threshold", cfg.UniquenessThreshold)
	v.SetDefault("row_filter", cfg.RowFilter)
}
