package report

import (
	"fmt"
	"strings"
)

// RenderMarkdown 把结果渲染成 Markdown 管道表格。
func RenderMarkdown(doc Document) string {
	var builder strings.Builder

	builder.WriteString("# cloc report\n\n")
	builder.WriteString(fmt.Sprintf("- root: `%s`\n", doc.Root))
	builder.WriteString(fmt.Sprintf("- elapsed: %.4f secs\n", doc.ElapsedSeconds))
	builder.WriteString("- " + statsLine(doc.Stats) + "\n\n")

	builder.WriteString("| " + strings.Join(tableHeader[:], " | ") + " |\n")
	builder.WriteString("| :--- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, summary := range doc.Languages {
		builder.WriteString(markdownRow(summaryCells(summary), false))
	}
	builder.WriteString(markdownRow(summaryCells(doc.Total), true))

	return builder.String()
}

// WriteMarkdownFile 将 Markdown 结果导出到指定路径。
func WriteMarkdownFile(path string, doc Document) error {
	return writeOutputFile(path, []byte(RenderMarkdown(doc)))
}

func markdownRow(cells [6]string, bold bool) string {
	if bold {
		for i := range cells {
			cells[i] = "**" + cells[i] + "**"
		}
	}
	return "| " + strings.Join(cells[:], " | ") + " |\n"
}
