package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloc/internal/clocerr"
	"cloc/internal/languages"
	"cloc/internal/logging"
	"cloc/internal/metrics"
	"cloc/internal/model"
)

func newTestPool(workers int) *workerPool {
	return &workerPool{
		registry: languages.NewRegistry(),
		workers:  workers,
		stats:    &Stats{},
		recorder: metrics.NewRecorder(),
		logger:   logging.Nop(),
	}
}

func TestPoolProcessesEachTaskOnce(t *testing.T) {
	root := canonicalTempDir(t)
	const fileCount = 40
	tasks := make(chan FileTask, fileCount+2)
	for i := 0; i < fileCount; i++ {
		path := filepath.Join(root, "f"+string(rune('A'+i%26))+string(rune('a'+i/26))+".go")
		writeFixtureFile(t, path, "package p\n// c\n\n")
		tasks <- FileTask{Path: path}
	}
	tasks <- FileTask{Path: filepath.Join(root, "unknown.xyz")}
	tasks <- FileTask{Path: filepath.Join(root, "missing.go")}
	close(tasks)

	pool := newTestPool(6)
	results := make(chan model.Detail, 1)
	go pool.run(tasks, results)

	report := Collect(results)

	assert.Equal(t, uint64(fileCount), report.Total.Files)
	assert.Equal(t, uint64(fileCount), report.Total.Code)
	assert.Equal(t, uint64(fileCount), report.Total.Comment)
	assert.Equal(t, uint64(fileCount), report.Total.Blank)

	stats := pool.stats.Snapshot()
	assert.Equal(t, int64(fileCount), stats.TextFiles)
	assert.Equal(t, int64(1), stats.UnrecognizedFiles)
	assert.Equal(t, int64(1), stats.SkippedFiles)
}

func TestAnalyzeFileReportsSizeFromDisk(t *testing.T) {
	root := canonicalTempDir(t)
	path := filepath.Join(root, "main.py")
	content := "# héllo\nprint('wörld')\n"
	writeFixtureFile(t, path, content)

	profile, ok := languages.NewRegistry().Resolve("py")
	require.True(t, ok)

	detail, err := analyzeFile(path, profile)
	require.NoError(t, err)

	assert.Equal(t, "Python", detail.Language)
	assert.Equal(t, uint64(len(content)), detail.Bytes)
	assert.Equal(t, model.LineCount{Comment: 1, Code: 1}, detail.LineCount)
}

func TestAnalyzeFileErrorsAreTyped(t *testing.T) {
	root := canonicalTempDir(t)
	profile, ok := languages.NewRegistry().Resolve("go")
	require.True(t, ok)

	_, err := analyzeFile(filepath.Join(root, "missing.go"), profile)
	assert.True(t, clocerr.IsKind(err, clocerr.KindIO))

	binary := filepath.Join(root, "binary.go")
	require.NoError(t, os.WriteFile(binary, []byte{0xc3, 0x28}, 0o644))
	_, err = analyzeFile(binary, profile)
	assert.ErrorIs(t, err, clocerr.ErrNonText)
}
