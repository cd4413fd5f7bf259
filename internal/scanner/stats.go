package scanner

import (
	"sync/atomic"

	"cloc/internal/model"
)

// Stats 是一次运行的并发计数器。
// explorer 和 worker 都会写入，展示层（例如进度条）可以随时读取。
type Stats struct {
	totalFiles        atomic.Int64
	textFiles         atomic.Int64
	ignoredPaths      atomic.Int64
	unrecognizedFiles atomic.Int64
	skippedFiles      atomic.Int64
	dirErrors         atomic.Int64
}

// Seen 返回 explorer 已投递的文件数。
func (s *Stats) Seen() int64 {
	return s.totalFiles.Load()
}

// Processed 返回 worker 已处理完（无论成功与否）的文件数。
func (s *Stats) Processed() int64 {
	return s.textFiles.Load() + s.unrecognizedFiles.Load() + s.skippedFiles.Load()
}

// Snapshot 返回当前计数器的只读快照。
func (s *Stats) Snapshot() model.RunStats {
	return model.RunStats{
		TotalFiles:        s.totalFiles.Load(),
		TextFiles:         s.textFiles.Load(),
		IgnoredPaths:      s.ignoredPaths.Load(),
		UnrecognizedFiles: s.unrecognizedFiles.Load(),
		SkippedFiles:      s.skippedFiles.Load(),
		DirErrors:         s.dirErrors.Load(),
	}
}
