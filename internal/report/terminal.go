package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloc/internal/model"
)

const (
	languageColumnWidth = 25
	numberColumnWidth   = 12
	// tableInnerWidth 是两侧竖线之间的宽度：左右各一个空格加六列。
	tableInnerWidth = 1 + languageColumnWidth + 5*numberColumnWidth + 1
)

var tableHeader = [6]string{"Language", "files", "size", "blank", "comment", "code"}

// PrintTerminal 以带边框的表格输出结果。
// 样式由 writer 对应的终端能力决定，写入文件或管道时不带颜色。
func PrintTerminal(writer io.Writer, doc Document) error {
	renderer := lipgloss.NewRenderer(writer)
	headerStyle := renderer.NewStyle().Bold(true)
	sumStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#01FAC6"))
	mutedStyle := renderer.NewStyle().Faint(true)

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%12.4f secs\n", doc.ElapsedSeconds))
	builder.WriteString(borderLine("┌", "┐"))
	builder.WriteString("│ " + headerStyle.Render(row(tableHeader)) + " │\n")
	builder.WriteString(borderLine("├", "┤"))
	for _, summary := range doc.Languages {
		builder.WriteString("│ " + row(summaryCells(summary)) + " │\n")
	}
	builder.WriteString(borderLine("├", "┤"))
	builder.WriteString("│ " + sumStyle.Render(row(summaryCells(doc.Total))) + " │\n")
	builder.WriteString(borderLine("└", "┘"))
	builder.WriteString(mutedStyle.Render(statsLine(doc.Stats)) + "\n")

	_, err := io.WriteString(writer, builder.String())
	return err
}

func borderLine(left string, right string) string {
	return left + strings.Repeat("─", tableInnerWidth) + right + "\n"
}

func row(cells [6]string) string {
	return fmt.Sprintf("%-*s%*s%*s%*s%*s%*s",
		languageColumnWidth, cells[0],
		numberColumnWidth, cells[1],
		numberColumnWidth, cells[2],
		numberColumnWidth, cells[3],
		numberColumnWidth, cells[4],
		numberColumnWidth, cells[5],
	)
}

func summaryCells(summary model.LanguageSummary) [6]string {
	return [6]string{
		summary.Language,
		fmt.Sprint(summary.Files),
		FormatSize(summary.Bytes),
		fmt.Sprint(summary.Blank),
		fmt.Sprint(summary.Comment),
		fmt.Sprint(summary.Code),
	}
}

func statsLine(stats model.RunStats) string {
	return fmt.Sprintf(
		"total files: %d, text files: %d, ignored: %d, unrecognized: %d, skipped: %d, unreadable dirs: %d",
		stats.TotalFiles,
		stats.TextFiles,
		stats.IgnoredPaths,
		stats.UnrecognizedFiles,
		stats.SkippedFiles,
		stats.DirErrors,
	)
}
