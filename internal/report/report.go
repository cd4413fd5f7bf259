// Package report 提供 cloc 的输出能力。
// 当前实现支持终端表格、Markdown、JSON 和 YAML 四种格式，后三种可导出到文件。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"cloc/internal/model"
)

// Document 是所有输出格式共用的数据。
type Document struct {
	Root           string                  `json:"root" yaml:"root"`
	ElapsedSeconds float64                 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Languages      []model.LanguageSummary `json:"languages" yaml:"languages"`
	Total          model.LanguageSummary   `json:"total" yaml:"total"`
	Stats          model.RunStats          `json:"stats" yaml:"stats"`
}

// NewDocument 组装一次运行的输出数据。
func NewDocument(root string, result model.Report, stats model.RunStats, elapsed time.Duration) Document {
	languages := result.Languages
	if languages == nil {
		languages = []model.LanguageSummary{}
	}
	return Document{
		Root:           root,
		ElapsedSeconds: elapsed.Seconds(),
		Languages:      languages,
		Total:          result.Total,
		Stats:          stats,
	}
}

// PrintJSON 把结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, doc Document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
func WriteJSONFile(path string, doc Document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return writeOutputFile(path, append(content, '\n'))
}

// PrintYAML 把结果以 YAML 输出到任意 writer。
func PrintYAML(writer io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return encoder.Close()
}

// WriteYAMLFile 将 YAML 结果导出到指定路径。
func WriteYAMLFile(path string, doc Document) error {
	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return writeOutputFile(path, content)
}

// writeOutputFile 写入导出文件，目录不存在会自动创建。
func writeOutputFile(path string, content []byte) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
