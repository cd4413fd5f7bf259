// Package model 定义 cloc 的核心数据模型。
// 这些结构会被扫描流水线、输出层和命令层共同使用。
package model

// SumLanguage 是总计行使用的语言名。
const SumLanguage = "Sum"

// LineCount 表示一组行级统计值。
//
// 注意：
// - 每一行只会落入 blank/comment/code 之一
// - 因此 Blank+Comment+Code 恒等于文件行数
type LineCount struct {
	Blank   uint64 `json:"blank" yaml:"blank"`
	Comment uint64 `json:"comment" yaml:"comment"`
	Code    uint64 `json:"code" yaml:"code"`
}

// Add 将另一个统计结果叠加到当前对象。
func (c *LineCount) Add(other LineCount) {
	c.Blank += other.Blank
	c.Comment += other.Comment
	c.Code += other.Code
}

// Lines 返回三类行数之和。
func (c LineCount) Lines() uint64 {
	return c.Blank + c.Comment + c.Code
}

// Detail 表示单文件分类结果，生成后不再修改。
type Detail struct {
	Language string `json:"language" yaml:"language"`
	Bytes    uint64 `json:"bytes" yaml:"bytes"`
	LineCount `yaml:",inline"`
}

// LanguageSummary 表示某个语言的聚合结果。
// 各字段都是对应 Detail 的逐项求和，因此折叠顺序不影响结果。
type LanguageSummary struct {
	Language  string `json:"language" yaml:"language"`
	Files     uint64 `json:"files" yaml:"files"`
	Bytes     uint64 `json:"bytes" yaml:"bytes"`
	LineCount `yaml:",inline"`
}

// AddDetail 把一个文件结果折叠进汇总。
func (s *LanguageSummary) AddDetail(detail Detail) {
	s.Files++
	s.Bytes += detail.Bytes
	s.LineCount.Add(detail.LineCount)
}

// Merge 合并两个同语言的汇总，用于分片聚合后的归并。
func (s *LanguageSummary) Merge(other LanguageSummary) {
	s.Files += other.Files
	s.Bytes += other.Bytes
	s.LineCount.Add(other.LineCount)
}

// Report 是一次运行的最终结果。
// Languages 按语言名升序排列，保证相同输入得到完全一致的 Report；
// 展示层需要的排序由 report 包另行处理。
type Report struct {
	Languages []LanguageSummary `json:"languages" yaml:"languages"`
	Total     LanguageSummary   `json:"total" yaml:"total"`
}

// RunStats 是一次运行的计数器快照，只用于展示和指标导出，不参与流程控制。
type RunStats struct {
	// TotalFiles 是 explorer 投递给 worker 的文件数。
	TotalFiles int64 `json:"total_files" yaml:"total_files"`
	// TextFiles 是成功分类的文件数。
	TextFiles int64 `json:"text_files" yaml:"text_files"`
	// IgnoredPaths 是命中忽略列表而被剪掉的路径数（目录只计一次）。
	IgnoredPaths int64 `json:"ignored_paths" yaml:"ignored_paths"`
	// UnrecognizedFiles 是找不到语言配置的文件数。
	UnrecognizedFiles int64 `json:"unrecognized_files" yaml:"unrecognized_files"`
	// SkippedFiles 是因 I/O 或非文本内容被跳过的文件数。
	SkippedFiles int64 `json:"skipped_files" yaml:"skipped_files"`
	// DirErrors 是读取失败而被跳过的目录数。
	DirErrors int64 `json:"dir_errors" yaml:"dir_errors"`
}
