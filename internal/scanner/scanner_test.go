package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloc/internal/clocerr"
	"cloc/internal/languages"
	"cloc/internal/model"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// findLanguage 在结果中查找指定语言的汇总。
func findLanguage(t *testing.T, report model.Report, language string) model.LanguageSummary {
	t.Helper()

	for _, item := range report.Languages {
		if item.Language == language {
			return item
		}
	}
	t.Fatalf("language %s not found in report: %+v", language, report.Languages)
	return model.LanguageSummary{}
}

// TestScanSingleFile 验证根路径可以直接是单个文件。
func TestScanSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.rs")

	content := strings.Join([]string{
		"// comment",
		"fn main() {",
		"    println!(\"hi\");",
		"",
		"}",
	}, "\n")
	writeFixtureFile(t, filePath, content)

	service := NewService(languages.NewRegistry(), 2)
	result, err := service.ScanPath(filePath)
	if err != nil {
		t.Fatalf("scan single file failed: %v", err)
	}

	if len(result.Report.Languages) != 1 {
		t.Fatalf("expected 1 language, got %d", len(result.Report.Languages))
	}

	rust := findLanguage(t, result.Report, "Rust")
	want := model.LineCount{Blank: 1, Comment: 1, Code: 3}
	if rust.LineCount != want || rust.Files != 1 {
		t.Fatalf("unexpected rust summary: %+v", rust)
	}
	if rust.Bytes != uint64(len(content)) {
		t.Fatalf("expected %d bytes, got %d", len(content), rust.Bytes)
	}
	if result.Report.Total.Language != model.SumLanguage || result.Report.Total.LineCount != want {
		t.Fatalf("unexpected total: %+v", result.Report.Total)
	}
}

// TestScanDirectoryGroupsByLanguage 验证目录扫描按语言分组，且总计与各语言之和一致。
func TestScanDirectoryGroupsByLanguage(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n\nfunc main() {}\n")
	writeFixtureFile(t, filepath.Join(tempDir, "pkg", "util.go"), "// Package pkg\npackage pkg\n")
	writeFixtureFile(t, filepath.Join(tempDir, "web", "app.js"), "/*\n * app\n */\nconst x = 1;\n")
	writeFixtureFile(t, filepath.Join(tempDir, "notes.xyz"), "not a source file")

	service := NewService(languages.NewRegistry(), 4)
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan directory failed: %v", err)
	}

	if len(result.Report.Languages) != 2 {
		t.Fatalf("expected 2 language summaries, got %d", len(result.Report.Languages))
	}

	goSummary := findLanguage(t, result.Report, "Go")
	if goSummary.Files != 2 || goSummary.Code != 3 || goSummary.Comment != 1 || goSummary.Blank != 1 {
		t.Fatalf("unexpected go summary: %+v", goSummary)
	}

	jsSummary := findLanguage(t, result.Report, "JavaScript")
	if jsSummary.Files != 1 || jsSummary.Comment != 3 || jsSummary.Code != 1 {
		t.Fatalf("unexpected js summary: %+v", jsSummary)
	}

	total := result.Report.Total
	if total.Files != 3 || total.Code != 4 || total.Comment != 4 || total.Blank != 1 {
		t.Fatalf("unexpected total: %+v", total)
	}

	if result.Stats.TotalFiles != 4 || result.Stats.TextFiles != 3 || result.Stats.UnrecognizedFiles != 1 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
}

// TestScanIsIdempotent 验证同一棵目录树扫描两次得到完全相同的结果。
func TestScanIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	for i, name := range []string{"a.go", "b.py", "c/d.rs", "c/e.go", "f/g/h.sql"} {
		writeFixtureFile(t, filepath.Join(tempDir, name), strings.Repeat("// c\ncode\n\n", i+1))
	}

	service := NewService(languages.NewRegistry(), 8)
	first, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	second, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("second scan failed: %v", err)
	}

	if len(first.Report.Languages) != len(second.Report.Languages) {
		t.Fatalf("language count differs: %d vs %d", len(first.Report.Languages), len(second.Report.Languages))
	}
	for i := range first.Report.Languages {
		if first.Report.Languages[i] != second.Report.Languages[i] {
			t.Fatalf("summary differs: %+v vs %+v", first.Report.Languages[i], second.Report.Languages[i])
		}
	}
	if first.Report.Total != second.Report.Total {
		t.Fatalf("total differs: %+v vs %+v", first.Report.Total, second.Report.Total)
	}
}

// TestScanSkipsNonTextFiles 验证非 UTF-8 内容只被跳过并计数。
func TestScanSkipsNonTextFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "ok.c"), "int main() { return 0; }\n")
	writeFixtureFile(t, filepath.Join(tempDir, "blob.c"), string([]byte{0xff, 0xfe, 0x00, 0x80}))

	service := NewService(languages.NewRegistry(), 2)
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if result.Report.Total.Files != 1 {
		t.Fatalf("expected 1 classified file, got %d", result.Report.Total.Files)
	}
	if result.Stats.SkippedFiles != 1 {
		t.Fatalf("expected 1 skipped file, got %d", result.Stats.SkippedFiles)
	}
}

// TestScanHonorsIgnoreList 验证忽略目录下的文件不会产生任何结果。
func TestScanHonorsIgnoreList(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "src", "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "lib", "lib.go"), "package lib\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "lib", "lib.rs"), "fn lib() {}\n")

	ignoreFile := filepath.Join(tempDir, ".clocignore")
	writeFixtureFile(t, ignoreFile, filepath.Join(tempDir, "vendor")+"\n")

	ignoreList, err := LoadIgnoreList(ignoreFile)
	if err != nil {
		t.Fatalf("load ignore list failed: %v", err)
	}

	service := NewService(languages.NewRegistry(), 2, WithIgnoreList(ignoreList))
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(result.Report.Languages) != 1 || result.Report.Languages[0].Language != "Go" {
		t.Fatalf("unexpected languages: %+v", result.Report.Languages)
	}
	if result.Report.Total.Files != 1 {
		t.Fatalf("expected 1 file, got %d", result.Report.Total.Files)
	}
	if result.Stats.IgnoredPaths != 1 {
		t.Fatalf("expected vendor to be pruned once, got %d", result.Stats.IgnoredPaths)
	}
}

// TestScanMissingRoot 验证根路径不存在时直接返回 IO 错误。
func TestScanMissingRoot(t *testing.T) {
	service := NewService(languages.NewRegistry(), 1)
	_, err := service.ScanPath(filepath.Join(t.TempDir(), "missing"))
	if !clocerr.IsKind(err, clocerr.KindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

// TestScanEmptyPath 验证空路径属于参数错误。
func TestScanEmptyPath(t *testing.T) {
	service := NewService(languages.NewRegistry(), 1)
	_, err := service.ScanPath("  ")
	if !clocerr.IsKind(err, clocerr.KindInvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

// TestScanWithTinyQueues 验证队列容量为 1 时背压不会造成死锁。
func TestScanWithTinyQueues(t *testing.T) {
	tempDir := t.TempDir()
	for i := 0; i < 50; i++ {
		writeFixtureFile(t, filepath.Join(tempDir, "pkg", "f"+strings.Repeat("x", i%7)+string(rune('a'+i%26))+".go"), "package p\n")
	}

	stats := &Stats{}
	service := NewService(languages.NewRegistry(), 3, WithQueueSizes(1, 1), WithStats(stats))
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if result.Report.Total.Files != uint64(stats.Seen()) {
		t.Fatalf("expected %d files, got %d", stats.Seen(), result.Report.Total.Files)
	}
	if stats.Processed() != stats.Seen() {
		t.Fatalf("processed %d of %d files", stats.Processed(), stats.Seen())
	}
}
