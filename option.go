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

package sigprofile

import (
	"io"

	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/types"
)

// Option 表示对 Profiler 默认行为的修改配置。
// 通过函数式选项模式，用户可以灵活地配置剖析流水线的各项参数。
type Option func(*Profiler)

// WithConfig 使用完整的配置替换默认配置。
// 通常与 types.LoadConfig 配合使用，后续选项仍可覆盖其中的字段。
//
// 示例:
//
//	cfg, err := types.LoadConfig("sigprofile.yaml")
//	p := sigprofile.New(WithConfig(cfg), WithThreshold(2))
func WithConfig(cfg types.Config) Option {
	return func(p *Profiler) {
		p.config = cfg
	}
}

// WithExactNames 设置按名称精确删除的列
func WithExactNames(names ...string) Option {
	return func(p *Profiler) {
		p.config.ExactNames = append([]string(nil), names...)
	}
}

// WithNamePatterns 设置按正则表达式删除的列，列名必须完整匹配
//
// 示例:
//
//	// 删除 Resource1、Resource2 ... 等列
//	p := sigprofile.New(WithNamePatterns("Resource\\d+"))
func WithNamePatterns(patterns ...string) Option {
	return func(p *Profiler) {
		p.config.NamePatterns = append([]string(nil), patterns...)
	}
}

// WithDropDuplicates 开启或关闭重复列删除
func WithDropDuplicates(enabled bool) Option {
	return func(p *Profiler) {
		p.config.DropDuplicateColumns = enabled
	}
}

// WithDropInvariant 开启或关闭不变列删除
func WithDropInvariant(enabled bool) Option {
	return func(p *Profiler) {
		p.config.DropInvariantColumns = enabled
	}
}

// WithTreatBlankAsMissing 设置仅含空白的字符串是否视为缺失
func WithTreatBlankAsMissing(enabled bool) Option {
	return func(p *Profiler) {
		p.config.TreatBlankAsMissing = enabled
	}
}

// WithEntropy 开启熵过滤，归一化熵落在 [lower, upper] 之外的列被删除
func WithEntropy(lower, upper float64) Option {
	return func(p *Profiler) {
		p.config.Entropy = types.EntropyConfig{Enabled: true, Lower: lower, Upper: upper}
	}
}

// WithThreshold 设置唯一值阈值，小于 1 的值在分析时按 1 处理
func WithThreshold(threshold int) Option {
	return func(p *Profiler) {
		p.config.UniquenessThreshold = threshold
	}
}

// WithRowFilter 设置行过滤表达式，只有满足条件的行进入流水线。
//
// 示例:
//
//	p := sigprofile.New(WithRowFilter("EventID == 4624 && like_match(Account, 'svc_%')"))
func WithRowFilter(expression string) Option {
	return func(p *Profiler) {
		p.config.RowFilter = expression
	}
}

// WithLogger 设置自定义日志记录器。
// 日志记录器是全局的，会影响所有 Profiler 实例。
func WithLogger(log logger.Logger) Option {
	return func(p *Profiler) {
		logger.SetDefault(log)
	}
}

// WithLogLevel 设置日志级别
func WithLogLevel(level logger.Level) Option {
	return func(p *Profiler) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标与级别
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(p *Profiler) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(p *Profiler) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
