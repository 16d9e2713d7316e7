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
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rulego/sigprofile/binarizer"
	"github.com/rulego/sigprofile/cleaner"
	"github.com/rulego/sigprofile/condition"
	"github.com/rulego/sigprofile/logger"
	"github.com/rulego/sigprofile/signature"
	"github.com/rulego/sigprofile/types"
	"github.com/rulego/sigprofile/uniqueness"
)

// Profiler 是结构指纹剖析流水线的主要接口。
// 它依次执行列清洗、二值化、指纹分组和唯一值检测，并保存最近一次运行的全部中间结果。
//
// 使用示例:
//
//	p := sigprofile.New(sigprofile.WithExactNames("TimeGenerated"))
//	result, err := p.Run(table)
//	for _, pair := range result.Report.TableWidePairs() {
//		fmt.Println(pair)
//	}
type Profiler struct {
	config types.Config

	mu   sync.RWMutex
	last *Result
}

// Result 一次运行的全部产出
type Result struct {
	RunID    string             `json:"runId"`
	Filtered *types.Table       `json:"-"` // 行过滤后的原始表
	Cleaned  *cleaner.Result    `json:"cleaned"`
	Presence *types.BoolTable   `json:"-"`
	Index    *signature.Index   `json:"-"`
	Report   *uniqueness.Report `json:"-"`
}

// New 创建一个新的 Profiler 实例。
// 未指定的参数使用 types.NewConfig 的默认值。
//
// 参数:
//   - options: 可变长度的配置选项
//
// 示例:
//
//	// 默认配置
//	p := sigprofile.New()
//
//	// 从配置文件加载
//	cfg, err := types.LoadConfig("sigprofile.yaml")
//	p := sigprofile.New(sigprofile.WithConfig(cfg))
func New(options ...Option) *Profiler {
	p := &Profiler{config: types.NewConfig()}
	for _, option := range options {
		option(p)
	}
	return p
}

// Config 返回当前配置的副本
func (p *Profiler) Config() types.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cfg := p.config
	cfg.ExactNames = append([]string(nil), p.config.ExactNames...)
	cfg.NamePatterns = append([]string(nil), p.config.NamePatterns...)
	return cfg
}

// Run 执行完整的剖析流水线。
// 参数在处理任何数据之前校验；任一阶段失败时不返回部分结果，且保留上一次运行的状态。
// 成功时，上一次运行的所有中间结果被整体替换。输入表不会被修改。
//
// 参数:
//   - table: 待剖析的原始表
//
// 返回值:
//   - *Result: 本次运行的全部中间结果
//   - error: 参数或输入非法时返回包装了 types.ErrInvalidInput 的错误
func (p *Profiler) Run(table *types.Table) (*Result, error) {
	cfg := p.Config()
	log := logger.Component("profiler")

	if err := cfg.Validate(); err != nil {
		log.Error("rejected configuration: %v", err)
		return nil, err
	}
	var cond condition.Condition
	if cfg.RowFilter != "" {
		c, err := condition.NewExprCondition(cfg.RowFilter)
		if err != nil {
			return nil, types.WrapInvalidInput(types.StageFilter, "", err, "invalid row filter %q", cfg.RowFilter)
		}
		cond = c
	}
	cl, err := cleaner.New(cleaner.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		log.Error("rejected table: %v", err)
		return nil, err
	}

	runID := uuid.New().String()
	log.Info("run %s: %d rows x %d columns, uniqueness threshold %d", runID, table.NumRows(), table.NumColumns(), cfg.EffectiveThreshold())

	filtered, err := condition.FilterTable(table, cond)
	if err != nil {
		return nil, err
	}
	if cond != nil {
		log.Debug("run %s: row filter kept %d of %d rows", runID, filtered.NumRows(), table.NumRows())
	}

	cleaned, err := cl.Clean(filtered)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	presence, err := binarizer.Binarize(cleaned.Table, cfg.TreatBlankAsMissing)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	idx, err := signature.Build(presence, cleaned.Table)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	report := uniqueness.FindUniques(idx, cfg.UniquenessThreshold)

	result := &Result{
		RunID:    runID,
		Filtered: filtered,
		Cleaned:  cleaned,
		Presence: presence,
		Index:    idx,
		Report:   report,
	}

	p.mu.Lock()
	p.last = result
	p.mu.Unlock()

	log.Info("run %s: %d columns kept, %d fingerprints, %d table-wide unique values",
		runID, cleaned.Table.NumColumns(), idx.Len(), len(report.TableWidePairs()))
	return result, nil
}

// Reanalyze 使用新的阈值重新执行唯一值检测，复用最近一次运行的指纹索引。
// 成功后替换保存的报告。
func (p *Profiler) Reanalyze(threshold int) (*uniqueness.Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil, types.NewInvalidInputError(types.StageAnalyze, "", "no completed run to reanalyze")
	}
	report := uniqueness.FindUniques(p.last.Index, threshold)
	next := *p.last
	next.Report = report
	p.last = &next
	return report, nil
}

// Last 返回最近一次成功运行的结果，尚未运行时返回 nil
func (p *Profiler) Last() *Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// CleanedTable 返回最近一次运行的清洗后表
func (p *Profiler) CleanedTable() *types.Table {
	if r := p.Last(); r != nil {
		return r.Cleaned.Table
	}
	return nil
}

// DroppedColumns 返回最近一次运行删除的列及原因
func (p *Profiler) DroppedColumns() []cleaner.DroppedColumn {
	if r := p.Last(); r != nil {
		return r.Cleaned.Dropped
	}
	return nil
}

// BooleanTable 返回最近一次运行的二值化表
func (p *Profiler) BooleanTable() *types.BoolTable {
	if r := p.Last(); r != nil {
		return r.Presence
	}
	return nil
}

// Index 返回最近一次运行的指纹索引
func (p *Profiler) Index() *signature.Index {
	if r := p.Last(); r != nil {
		return r.Index
	}
	return nil
}

// Report 返回最近一次运行的唯一值报告
func (p *Profiler) Report() *uniqueness.Report {
	if r := p.Last(); r != nil {
		return r.Report
	}
	return nil
}
