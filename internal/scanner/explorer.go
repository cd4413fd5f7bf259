package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cloc/internal/logging"
)

// FileTask 表示一个待分类的文件，只会被一个 worker 消费一次。
type FileTask struct {
	Path string
}

// LoadIgnoreList 读取忽略列表文件，每行一个路径。
//
// 每个路径都会被规范化为不含符号链接的绝对路径；规范化失败（例如路径不存在）
// 的行会被静默丢弃。filename 为空表示没有忽略列表。
func LoadIgnoreList(filename string) ([]string, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}

	ignoreList := make([]string, 0)
	lines := bufio.NewScanner(bytes.NewReader(content))
	for lines.Scan() {
		canonical, ok := canonicalize(lines.Text())
		if !ok {
			continue
		}
		ignoreList = append(ignoreList, canonical)
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("parse ignore file: %w", err)
	}

	return ignoreList, nil
}

// canonicalize 把路径转成不含符号链接的绝对路径。
func canonicalize(path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// explorer 是流水线唯一的生产者：遍历目录树并把候选文件推入有界队列。
type explorer struct {
	ignoreList []string
	stats      *Stats
	logger     logging.Logger
}

// isIgnored 判断 path 是否等于忽略列表中的某一项，或位于其下。
// 匹配以路径分段为单位，/a/bc 不会被 /a/b 忽略。
func (e *explorer) isIgnored(path string) bool {
	for _, ignored := range e.ignoreList {
		if path == ignored {
			return true
		}
		prefix := ignored
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// walk 遍历 root 并推送文件任务。队列满时阻塞，形成背压。
// 目录读取失败只跳过该子树，不会中断整个遍历。
func (e *explorer) walk(root string, tasks chan<- FileTask) {
	info, err := os.Stat(root)
	if err != nil {
		e.logger.Warn(err, "stat root failed", "path", root)
		return
	}

	if !info.IsDir() {
		if e.isIgnored(root) {
			e.stats.ignoredPaths.Add(1)
			return
		}
		e.emit(root, info.Mode(), tasks)
		return
	}

	walkErr := filepath.WalkDir(root, e.visitor(tasks))
	if walkErr != nil && !errors.Is(walkErr, fs.SkipDir) {
		e.logger.Warn(walkErr, "walk aborted", "root", root)
	}
}

// visitor 返回 WalkDir 的回调：处理目录读取错误、忽略剪枝并投递文件。
func (e *explorer) visitor(tasks chan<- FileTask) fs.WalkDirFunc {
	return func(path string, entry fs.DirEntry, readErr error) error {
		if readErr != nil {
			// 同一个目录在 ReadDir 失败后会被再次回调，这里只记录并跳过它的内容。
			e.stats.dirErrors.Add(1)
			e.logger.Warn(readErr, "skip unreadable directory", "path", path)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if e.isIgnored(path) {
			e.stats.ignoredPaths.Add(1)
			e.logger.Debug("ignore path", "path", path)
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		e.emit(path, entry.Type(), tasks)
		return nil
	}
}

// emit 只投递普通文件；指向普通文件的符号链接也会被统计，但不会跟随目录链接。
func (e *explorer) emit(path string, mode fs.FileMode, tasks chan<- FileTask) {
	if mode&fs.ModeSymlink != 0 {
		target, err := os.Stat(path)
		if err != nil {
			e.logger.Debug("skip dangling symlink", "path", path, "error", err.Error())
			return
		}
		mode = target.Mode()
	}

	if !mode.IsRegular() {
		return
	}

	e.stats.totalFiles.Add(1)
	tasks <- FileTask{Path: path}
}
