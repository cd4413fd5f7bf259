package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cloc/internal/config"
	"cloc/internal/languages"
	"cloc/internal/logging"
	"cloc/internal/metrics"
	"cloc/internal/progress"
	"cloc/internal/report"
	"cloc/internal/scanner"

	"github.com/spf13/cobra"
)

// countOptions 存放不经过 viper 的参数。
type countOptions struct {
	configFile string
}

// runCount 是根命令的执行体：加载配置、运行流水线、按格式输出。
func runCount(cmd *cobra.Command, args []string, registry *languages.Registry, options *countOptions) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	usedConfig, err := config.ReadFile(v, options.configFile, ".")
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logConfig := cfg.Logging()
	logConfig.Output = cmd.ErrOrStderr()
	logger := logging.New(logConfig)
	if usedConfig != "" {
		logger.Info("using config file", "file", usedConfig)
	}

	entry, err := resolveEntry(cmd.ErrOrStderr(), args)
	if err != nil {
		return err
	}

	ignoreList, err := scanner.LoadIgnoreList(cfg.IgnoreFile)
	if err != nil {
		logger.Warn(err, "ignore file unreadable, counting without it", "file", cfg.IgnoreFile)
	}

	stats := &scanner.Stats{}
	recorder := metrics.NewRecorder()
	service := scanner.NewService(
		registry,
		cfg.Workers,
		scanner.WithIgnoreList(ignoreList),
		scanner.WithLogger(logger),
		scanner.WithRecorder(recorder),
		scanner.WithStats(stats),
	)

	spinner := startProgress(cmd.ErrOrStderr(), cfg, stats)
	result, err := service.ScanPath(entry)
	spinner.Stop()
	if err != nil {
		return err
	}

	report.Sort(result.Report.Languages, cfg.SortBy, cfg.OrderBy)
	doc := report.NewDocument(result.Root, result.Report, result.Stats, result.Elapsed)

	out := cmd.OutOrStdout()
	if err := render(out, cfg, doc); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nMetrics exported to %s\n", cfg.MetricsFile)
	}
	return nil
}

// resolveEntry 确定统计入口。
// 未指定路径或路径不存在时给出提示并退回当前目录。
func resolveEntry(errOut io.Writer, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		if _, err := os.Stat(args[0]); err == nil {
			return args[0], nil
		}
		_, _ = fmt.Fprintf(errOut, "can't find path %s, so use current directory as entry.\n\n", args[0])
	} else {
		_, _ = fmt.Fprint(errOut, "No directory specified, so use current directory as entry.\n\n")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}
	return cwd, nil
}

// startProgress 仅在 stderr 是终端且未禁用时显示进度。
func startProgress(errOut io.Writer, cfg *config.Config, stats *scanner.Stats) *progress.Spinner {
	if cfg.NoProgress {
		return nil
	}
	file, ok := errOut.(*os.File)
	if !ok || !progress.Enabled(file) {
		return nil
	}
	return progress.Start(file, "counting", stats.Processed)
}

// render 按输出格式打印结果，文件格式同时导出到 report-file。
func render(out io.Writer, cfg *config.Config, doc report.Document) error {
	switch cfg.Output {
	case report.FormatTerminal:
		return report.PrintTerminal(out, doc)
	case report.FormatMarkdown:
		if _, err := io.WriteString(out, report.RenderMarkdown(doc)); err != nil {
			return err
		}
		if err := report.WriteMarkdownFile(cfg.ReportFile, doc); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nMarkdown exported to %s\n", cfg.ReportFile)
	case report.FormatJSON:
		if err := report.PrintJSON(out, doc); err != nil {
			return err
		}
		if err := report.WriteJSONFile(cfg.ReportFile, doc); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nJSON exported to %s\n", cfg.ReportFile)
	case report.FormatYAML:
		if err := report.PrintYAML(out, doc); err != nil {
			return err
		}
		if err := report.WriteYAMLFile(cfg.ReportFile, doc); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nYAML exported to %s\n", cfg.ReportFile)
	}
	return nil
}
