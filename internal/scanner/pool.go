package scanner

import (
	"io"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"cloc/internal/clocerr"
	"cloc/internal/languages"
	"cloc/internal/logging"
	"cloc/internal/metrics"
	"cloc/internal/model"
)

// workerPool 是固定数量的 worker 集合。
// worker 之间只通过 tasks/results 两个 channel 共享数据，不需要额外加锁。
type workerPool struct {
	registry *languages.Registry
	workers  int
	stats    *Stats
	recorder *metrics.Recorder
	logger   logging.Logger
}

// run 启动全部 worker，等待它们在 tasks 关闭并取空后退出，然后关闭 results。
// results 只会在所有 worker 都退出后关闭，聚合方据此判断不会再有新结果。
func (p *workerPool) run(tasks <-chan FileTask, results chan<- model.Detail) {
	var group errgroup.Group
	for i := 0; i < p.workers; i++ {
		group.Go(func() error {
			p.work(tasks, results)
			return nil
		})
	}

	_ = group.Wait()
	close(results)
}

// work 是单个 worker 的主循环。单文件失败只计数并跳过，不会中断流水线。
func (p *workerPool) work(tasks <-chan FileTask, results chan<- model.Detail) {
	for task := range tasks {
		started := time.Now()
		detail, err := p.process(task)
		if err != nil {
			p.skip(task, err)
			continue
		}

		p.recorder.ObserveFile(detail.Language, time.Since(started))
		p.stats.textFiles.Add(1)
		results <- detail
	}
}

// process 解析语言并分类单个文件。
func (p *workerPool) process(task FileTask) (model.Detail, error) {
	profile, err := p.registry.Lookup(task.Path)
	if err != nil {
		return model.Detail{}, err
	}
	return analyzeFile(task.Path, profile)
}

// skip 根据错误类别更新对应计数器。
func (p *workerPool) skip(task FileTask, err error) {
	kind, _ := clocerr.KindOf(err)
	switch kind {
	case clocerr.KindUnrecognized:
		p.stats.unrecognizedFiles.Add(1)
	default:
		p.stats.skippedFiles.Add(1)
		p.logger.Debug("skip file", "path", task.Path, "kind", string(kind), "error", err.Error())
	}
}

// analyzeFile 读取文件并按语言配置分类。
// 字节数取自文件元数据，与行统计相互独立；内容不是合法 UTF-8 时视为非文本文件。
func analyzeFile(path string, profile *languages.Profile) (model.Detail, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Detail{}, clocerr.IO(path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return model.Detail{}, clocerr.IO(path, err)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return model.Detail{}, clocerr.IO(path, err)
	}
	if !utf8.Valid(content) {
		return model.Detail{}, clocerr.NonText(path)
	}

	return model.Detail{
		Language:  profile.Name,
		Bytes:     uint64(info.Size()),
		LineCount: languages.Classify(string(content), profile),
	}, nil
}
