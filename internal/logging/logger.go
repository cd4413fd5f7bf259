// Package logging 提供基于 log/slog 的结构化日志。
// 日志统一写到 stderr，避免污染 stdout 上的统计表格。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"cloc/internal/clocerr"
)

// Logger 是流水线各组件使用的日志接口。
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(err error, msg string, fields ...any)
	Error(err error, msg string, fields ...any)

	WithComponent(component string) Logger
}

// Config 描述日志输出方式。
type Config struct {
	Level  slog.Level
	Format string // "text" 或 "json"
	Output io.Writer
}

// DefaultConfig 返回默认配置：warn 级别、text 格式、输出到 stderr。
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// ParseLevel 把 debug/info/warn/error 转成 slog 级别。
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, clocerr.InvalidArgument("unsupported log level %q, allowed values: debug, info, warn, error", value)
	}
}

// slogLogger 是 Logger 的 slog 实现。
type slogLogger struct {
	logger *slog.Logger
}

// New 按配置创建 Logger。
func New(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	options := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(config.Output, options)
	} else {
		handler = slog.NewTextHandler(config.Output, options)
	}

	return &slogLogger{logger: slog.New(handler)}
}

// Nop 返回丢弃全部输出的 Logger，供测试和库调用方使用。
func Nop() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *slogLogger) Debug(msg string, fields ...any) {
	l.logger.Debug(msg, fields...)
}

func (l *slogLogger) Info(msg string, fields ...any) {
	l.logger.Info(msg, fields...)
}

func (l *slogLogger) Warn(err error, msg string, fields ...any) {
	l.logger.Warn(msg, withError(err, fields)...)
}

func (l *slogLogger) Error(err error, msg string, fields ...any) {
	l.logger.Error(msg, withError(err, fields)...)
}

// WithComponent 返回带 component 字段的子 Logger。
func (l *slogLogger) WithComponent(component string) Logger {
	return &slogLogger{logger: l.logger.With(slog.String("component", component))}
}

func withError(err error, fields []any) []any {
	if err == nil {
		return fields
	}
	return append([]any{slog.String("error", err.Error())}, fields...)
}
