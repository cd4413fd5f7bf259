// Package clocerr 定义 cloc 的错误分类。
//
// 单文件错误（IO、NonText、Unrecognized）在 worker 内被转换为跳过和计数，
// 不会中断流水线；InvalidArgument 只出现在启动阶段，直接报告给用户。
package clocerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 表示错误类别。
type Kind string

const (
	KindIO              Kind = "io"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnrecognized    Kind = "unrecognized"
	KindNonText         Kind = "non_text"
)

// 哨兵错误，配合 errors.Is 按类别判断。
var (
	ErrIO              = &Error{Kind: KindIO}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrUnrecognized    = &Error{Kind: KindUnrecognized}
	ErrNonText         = &Error{Kind: KindNonText}
)

// Error 是带类别和路径上下文的结构化错误。
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Cause   error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	parts = append(parts, "["+string(e.Kind)+"]")
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += ": " + e.Cause.Error()
	}
	return result
}

// Unwrap 返回底层错误。
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 只比较类别，使 errors.Is(err, ErrNonText) 这类判断成立。
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// IO 包装文件或目录读取失败。
func IO(path string, cause error) *Error {
	return &Error{Kind: KindIO, Path: path, Message: "read failed", Cause: cause}
}

// NonText 表示文件内容不是合法的 UTF-8 文本。
func NonText(path string) *Error {
	return &Error{Kind: KindNonText, Path: path, Message: "content is not valid UTF-8 text"}
}

// Unrecognized 表示文件后缀没有对应的语言配置。
func Unrecognized(path string, extension string) *Error {
	return &Error{
		Kind:    KindUnrecognized,
		Path:    path,
		Message: fmt.Sprintf("no language registered for extension %q", extension),
	}
}

// InvalidArgument 表示命令行或配置取值非法。
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// KindOf 取出错误链上第一个 *Error 的类别。
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind 判断错误链中是否含有指定类别。
func IsKind(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
