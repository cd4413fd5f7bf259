// Package cmd 提供 cloc 的命令行入口与子命令编排。
package cmd

import (
	"cloc/internal/languages"
	"cloc/internal/report"
	"cloc/internal/scanner"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// 根命令本身就是统计命令，示例：
//
//	cloc .
//	cloc ./project --output json --report-file result.json
//	cloc ./project -s code --order-by desc --ignore-file .clocignore
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	options := &countOptions{}

	rootCmd := &cobra.Command{
		Use:   "cloc [path]",
		Short: "统计源代码的空行、注释行和代码行",
		Long: "cloc 并发遍历目录树，按文件后缀识别语言，\n" +
			"逐行统计 blank/comment/code 并按语言汇总，支持终端、Markdown、JSON 和 YAML 输出。",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args, registry, options)
		},
	}

	flags := rootCmd.Flags()
	flags.String("ignore-file", "", "忽略列表文件，每行一个路径")
	flags.StringP("output", "o", string(report.FormatTerminal), "输出格式: terminal、markdown、json 或 yaml")
	flags.StringP("sort-by", "s", string(report.SortByLanguage), "排序字段: language、files、size、blank、comment 或 code")
	flags.String("order-by", string(report.OrderAsc), "排序方向: asc 或 desc")
	flags.IntP("workers", "w", scanner.DefaultWorkers(), "并发 worker 数量")
	flags.String("report-file", "", "markdown/json/yaml 导出文件路径，默认 cloc-report.<ext>")
	flags.String("metrics-file", "", "Prometheus textfile 指标导出路径")
	flags.Bool("no-progress", false, "不显示进度提示")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&options.configFile, "config", "", "配置文件路径，默认读取当前目录的 .cloc.yaml")
	persistent.String("log-level", "warn", "日志级别: debug、info、warn 或 error")
	persistent.String("log-format", "text", "日志格式: text 或 json")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))

	return rootCmd
}
