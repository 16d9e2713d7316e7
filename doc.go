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
Package sigprofile 是一个针对混合模式事件表的结构指纹剖析库。

安全日志等事件表通常由多种事件类型合并而成，每种事件只填充部分列。
sigprofile 把每一行映射为一个"结构指纹"（哪些列有值、哪些列缺失），
按指纹对行分组，并找出在某个指纹组内只出现极少次数的列值。

# 处理流程

	原始表 → 行过滤 → 列清洗 → 二值化 → 指纹分组 → 唯一值检测

• 行过滤 - 可选的 expr 表达式，只保留满足条件的行
• 列清洗 - 按名称、正则、不变性、熵删除列，并删除内容重复的列
• 二值化 - 将每个单元格映射为"有值/缺失"
• 指纹分组 - 按有值模式对行分组，统计每组每列的值频率
• 唯一值检测 - 找出组内不同取值数不超过阈值的列，并统计全表出现次数

# 入门示例

	table := types.FromRecords([]map[string]interface{}{
		{"EventID": 4624, "Account": "alice", "LogonType": 3},
		{"EventID": 4624, "Account": "bob", "LogonType": 3},
		{"EventID": 4688, "Account": "alice", "Process": "cmd.exe"},
	}, nil)

	p := sigprofile.New(sigprofile.WithThreshold(1))
	result, err := p.Run(table)
	if err != nil {
		log.Fatal(err)
	}
	p.PrintReport(os.Stdout)

	for _, pair := range result.Report.TableWidePairs() {
		fmt.Println(pair)
	}

# 配置

配置可以通过函数式选项、配置文件或 SIGPROFILE_ 前缀的环境变量提供：

	cfg, err := types.LoadConfig("sigprofile.yaml")
	p := sigprofile.New(sigprofile.WithConfig(cfg))

所有参数在处理数据之前校验，非法参数返回包装了 types.ErrInvalidInput 的错误。
*/
package sigprofile
