package report

import (
	"sort"
	"strings"

	"cloc/internal/clocerr"
	"cloc/internal/model"
)

// Format 是输出格式。
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat 解析输出格式，大小写不敏感。
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatTerminal, FormatMarkdown, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", clocerr.InvalidArgument("unsupported output %q, allowed values: terminal, markdown, json, yaml", value)
	}
}

// DefaultReportFile 返回各文件格式的默认导出路径，terminal 没有导出文件。
func (f Format) DefaultReportFile() string {
	switch f {
	case FormatMarkdown:
		return "cloc-report.md"
	case FormatJSON:
		return "cloc-report.json"
	case FormatYAML:
		return "cloc-report.yaml"
	default:
		return ""
	}
}

// SortKey 是语言汇总的排序字段。
type SortKey string

const (
	SortByLanguage SortKey = "language"
	SortByFiles    SortKey = "files"
	SortBySize     SortKey = "size"
	SortByBlank    SortKey = "blank"
	SortByComment  SortKey = "comment"
	SortByCode     SortKey = "code"
)

// ParseSortKey 解析排序字段。
func ParseSortKey(value string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(value))); key {
	case SortByLanguage, SortByFiles, SortBySize, SortByBlank, SortByComment, SortByCode:
		return key, nil
	default:
		return "", clocerr.InvalidArgument("unsupported sort-by %q, allowed values: language, files, size, blank, comment, code", value)
	}
}

// Order 是排序方向。
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder 解析排序方向。
func ParseOrder(value string) (Order, error) {
	switch order := Order(strings.ToLower(strings.TrimSpace(value))); order {
	case OrderAsc, OrderDesc:
		return order, nil
	default:
		return "", clocerr.InvalidArgument("unsupported order-by %q, allowed values: asc, desc", value)
	}
}

// Sort 原地对语言汇总做稳定排序。
// 数值字段相等时按语言名升序，保证输出确定。
func Sort(summaries []model.LanguageSummary, key SortKey, order Order) {
	value := func(summary model.LanguageSummary) uint64 {
		switch key {
		case SortByFiles:
			return summary.Files
		case SortBySize:
			return summary.Bytes
		case SortByBlank:
			return summary.Blank
		case SortByComment:
			return summary.Comment
		case SortByCode:
			return summary.Code
		default:
			return 0
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		left, right := summaries[i], summaries[j]
		if key != SortByLanguage {
			if lv, rv := value(left), value(right); lv != rv {
				if order == OrderDesc {
					return lv > rv
				}
				return lv < rv
			}
			return left.Language < right.Language
		}
		if order == OrderDesc {
			return left.Language > right.Language
		}
		return left.Language < right.Language
	})
}
