// Package progress 在统计过程中于 stderr 显示一个转圈提示和已处理文件数。
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Counter 返回当前已处理的文件数，会被渲染循环并发调用。
type Counter func() int64

// stopMsg 让模型清空输出后退出。
type stopMsg struct{}

type model struct {
	spinner  spinner.Model
	message  string
	count    Counter
	quitting bool
}

func newModel(message string, count Counter) model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6"))
	return model{
		spinner: s,
		message: message,
		count:   count,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.count == nil {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
	}
	return fmt.Sprintf("%s %s (%d files)", m.spinner.View(), m.message, m.count())
}

// Spinner 是一个正在运行的进度提示。
type Spinner struct {
	program *tea.Program
	done    chan struct{}
}

// Enabled 判断给定输出是否是终端，非终端时不显示进度。
func Enabled(out *os.File) bool {
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

// Start 启动进度提示，调用方负责在统计结束后调用 Stop。
func Start(out io.Writer, message string, count Counter) *Spinner {
	program := tea.NewProgram(
		newModel(message, count),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	s := &Spinner{program: program, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = program.Run()
	}()
	return s
}

// Stop 结束进度提示并等待终端恢复，可以重复调用。
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.program.Send(stopMsg{})
	<-s.done
}
