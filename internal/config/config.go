// Package config 负责合并命令行参数、环境变量、配置文件和默认值。
//
// 优先级从高到低：
//  1. 命令行参数（--output、--workers 等）
//  2. 环境变量 CLOC_*（键中的 "-" 和 "." 替换为 "_"，例如 CLOC_SORT_BY）
//  3. 配置文件：--config 指定的文件，否则为工作目录下的 .cloc.yaml
//  4. 默认值
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cloc/internal/clocerr"
	"cloc/internal/logging"
	"cloc/internal/report"
	"cloc/internal/scanner"
)

// 配置键，同时也是命令行参数名。
const (
	KeyIgnoreFile  = "ignore-file"
	KeyOutput      = "output"
	KeySortBy      = "sort-by"
	KeyOrderBy     = "order-by"
	KeyWorkers     = "workers"
	KeyReportFile  = "report-file"
	KeyMetricsFile = "metrics-file"
	KeyNoProgress  = "no-progress"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
)

// EnvPrefix 是环境变量前缀。
const EnvPrefix = "CLOC"

// Config 是一次运行的完整配置，Load 返回时已经过校验。
type Config struct {
	IgnoreFile  string         `mapstructure:"ignore-file"`
	Output      report.Format  `mapstructure:"output"`
	SortBy      report.SortKey `mapstructure:"sort-by"`
	OrderBy     report.Order   `mapstructure:"order-by"`
	Workers     int            `mapstructure:"workers"`
	ReportFile  string         `mapstructure:"report-file"`
	MetricsFile string         `mapstructure:"metrics-file"`
	NoProgress  bool           `mapstructure:"no-progress"`
	LogLevel    string         `mapstructure:"log-level"`
	LogFormat   string         `mapstructure:"log-format"`
}

// New 创建带默认值和环境变量绑定的 viper 实例。
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults 写入全部默认值。
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIgnoreFile, "")
	v.SetDefault(KeyOutput, string(report.FormatTerminal))
	v.SetDefault(KeySortBy, string(report.SortByLanguage))
	v.SetDefault(KeyOrderBy, string(report.OrderAsc))
	v.SetDefault(KeyWorkers, scanner.DefaultWorkers())
	v.SetDefault(KeyReportFile, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyNoProgress, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
}

// BindFlags 把命令行参数绑定到同名配置键。
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{
		KeyIgnoreFile, KeyOutput, KeySortBy, KeyOrderBy, KeyWorkers,
		KeyReportFile, KeyMetricsFile, KeyNoProgress, KeyLogLevel, KeyLogFormat,
	} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile 读取配置文件，返回实际使用的文件路径。
// cfgFile 为空时在 searchDir 下查找 .cloc.yaml，找不到不算错误；
// 显式指定的文件不存在或格式错误则返回错误。
func ReadFile(v *viper.Viper, cfgFile string, searchDir string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(searchDir)
		v.SetConfigName(".cloc")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", clocerr.InvalidArgument("read config file: %v", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load 从 viper 解码配置并校验。
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, clocerr.InvalidArgument("decode config: %v", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 校验并规范化各枚举值。
func (c *Config) Validate() error {
	output, err := report.ParseFormat(string(c.Output))
	if err != nil {
		return err
	}
	c.Output = output

	sortBy, err := report.ParseSortKey(string(c.SortBy))
	if err != nil {
		return err
	}
	c.SortBy = sortBy

	orderBy, err := report.ParseOrder(string(c.OrderBy))
	if err != nil {
		return err
	}
	c.OrderBy = orderBy

	if c.Workers <= 0 {
		return clocerr.InvalidArgument("workers must be greater than 0, got %d", c.Workers)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return clocerr.InvalidArgument("unsupported log format %q, allowed values: text, json", c.LogFormat)
	}

	c.IgnoreFile = strings.TrimSpace(c.IgnoreFile)
	c.ReportFile = strings.TrimSpace(c.ReportFile)
	c.MetricsFile = strings.TrimSpace(c.MetricsFile)
	if c.ReportFile == "" {
		c.ReportFile = c.Output.DefaultReportFile()
	}

	return nil
}

// Logging 返回对应的日志配置。
func (c *Config) Logging() logging.Config {
	config := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.LogLevel); err == nil {
		config.Level = level
	}
	config.Format = c.LogFormat
	return config
}
