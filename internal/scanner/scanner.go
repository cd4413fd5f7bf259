// Package scanner 提供并发统计流水线。
//
// 流水线结构：explorer（单生产者）→ 有界路径队列 → N 个 worker → 有界结果队列 → 聚合器（单消费者）。
// 关闭信号通过 channel close 逐级向下游传播：explorer 遍历结束关闭路径队列，
// 所有 worker 退出后关闭结果队列，聚合器读到关闭后返回最终结果。
// 该层负责调度和聚合，不负责注释语法细节。
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cloc/internal/clocerr"
	"cloc/internal/languages"
	"cloc/internal/logging"
	"cloc/internal/metrics"
	"cloc/internal/model"
)

const (
	// DefaultPathQueueSize 是路径队列容量。
	DefaultPathQueueSize = 1024
	// DefaultResultQueueSize 是结果队列容量。
	DefaultResultQueueSize = 32
	// workersPerCPU 决定默认 worker 数；文件读取以 I/O 为主，worker 数可以多于 CPU 数。
	workersPerCPU = 5
)

// DefaultWorkers 返回默认 worker 数量。
func DefaultWorkers() int {
	return runtime.NumCPU() * workersPerCPU
}

// Service 是扫描服务对象。
type Service struct {
	registry        *languages.Registry
	workers         int
	ignoreList      []string
	pathQueueSize   int
	resultQueueSize int
	logger          logging.Logger
	recorder        *metrics.Recorder
	stats           *Stats
}

// Option 用于定制 Service。
type Option func(*Service)

// WithIgnoreList 设置已规范化的忽略路径列表，见 LoadIgnoreList。
func WithIgnoreList(ignoreList []string) Option {
	return func(s *Service) {
		s.ignoreList = ignoreList
	}
}

// WithLogger 设置日志输出。
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRecorder 设置指标收集器。
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// WithStats 让调用方持有计数器，以便在运行过程中读取进度。
// 未设置时每次 ScanPath 都会使用新的计数器。
func WithStats(stats *Stats) Option {
	return func(s *Service) {
		s.stats = stats
	}
}

// WithQueueSizes 设置路径队列和结果队列的容量。
func WithQueueSizes(pathQueue int, resultQueue int) Option {
	return func(s *Service) {
		if pathQueue > 0 {
			s.pathQueueSize = pathQueue
		}
		if resultQueue > 0 {
			s.resultQueueSize = resultQueue
		}
	}
}

// NewService 创建扫描服务。
func NewService(registry *languages.Registry, workers int, options ...Option) *Service {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	service := &Service{
		registry:        registry,
		workers:         workers,
		pathQueueSize:   DefaultPathQueueSize,
		resultQueueSize: DefaultResultQueueSize,
		logger:          logging.Nop(),
	}
	for _, option := range options {
		option(service)
	}
	if service.recorder == nil {
		service.recorder = metrics.NewRecorder()
	}

	return service
}

// Result 是一次扫描的完整输出。
type Result struct {
	Root    string
	Report  model.Report
	Stats   model.RunStats
	Elapsed time.Duration
}

// ScanPath 扫描目录或单文件，流水线总是运行到结束。
// 根路径不可读时在任何阶段启动前返回错误，不产生部分结果。
func (s *Service) ScanPath(targetPath string) (Result, error) {
	var result Result

	root, err := resolveRoot(targetPath)
	if err != nil {
		return result, err
	}
	result.Root = root

	stats := s.stats
	if stats == nil {
		stats = &Stats{}
	}

	started := time.Now()

	tasks := make(chan FileTask, s.pathQueueSize)
	results := make(chan model.Detail, s.resultQueueSize)

	walker := &explorer{
		ignoreList: s.ignoreList,
		stats:      stats,
		logger:     s.logger.WithComponent("explorer"),
	}
	pool := &workerPool{
		registry: s.registry,
		workers:  s.workers,
		stats:    stats,
		recorder: s.recorder,
		logger:   s.logger.WithComponent("worker"),
	}

	go func() {
		defer close(tasks)
		walker.walk(root, tasks)
	}()
	go pool.run(tasks, results)

	result.Report = Collect(results)
	result.Stats = stats.Snapshot()
	result.Elapsed = time.Since(started)

	s.recorder.RecordRun(result.Report, result.Stats, result.Elapsed)
	s.logger.Info("scan finished",
		"root", root,
		"files", result.Stats.TotalFiles,
		"text_files", result.Stats.TextFiles,
		"elapsed", result.Elapsed.String(),
	)

	return result, nil
}

// resolveRoot 把根路径规范化并确认它可读。
func resolveRoot(targetPath string) (string, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return "", clocerr.InvalidArgument("scan path is empty")
	}

	absolute, err := filepath.Abs(trimmedPath)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	root, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", clocerr.IO(absolute, err)
	}

	handle, err := os.Open(root)
	if err != nil {
		return "", clocerr.IO(root, err)
	}
	if closeErr := handle.Close(); closeErr != nil {
		return "", clocerr.IO(root, closeErr)
	}

	return root, nil
}
