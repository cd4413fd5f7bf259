package scanner

import (
	"sort"

	"cloc/internal/model"
)

// Aggregator 把 Detail 折叠为按语言的汇总和总计。
// 折叠是逐项求和，满足交换律和结合律，因此与到达顺序无关。
// Aggregator 不是并发安全的，流水线中只有一个消费者持有它。
type Aggregator struct {
	byLanguage map[string]*model.LanguageSummary
	total      model.LanguageSummary
}

// NewAggregator 创建空的聚合器。
func NewAggregator() *Aggregator {
	return &Aggregator{
		byLanguage: make(map[string]*model.LanguageSummary),
		total:      model.LanguageSummary{Language: model.SumLanguage},
	}
}

// Add 折叠一个文件结果。
func (a *Aggregator) Add(detail model.Detail) {
	summary, ok := a.byLanguage[detail.Language]
	if !ok {
		summary = &model.LanguageSummary{Language: detail.Language}
		a.byLanguage[detail.Language] = summary
	}
	summary.AddDetail(detail)
	a.total.AddDetail(detail)
}

// Merge 把另一个聚合器的结果并入当前聚合器，用于分片聚合。
func (a *Aggregator) Merge(other *Aggregator) {
	for language, partial := range other.byLanguage {
		summary, ok := a.byLanguage[language]
		if !ok {
			summary = &model.LanguageSummary{Language: language}
			a.byLanguage[language] = summary
		}
		summary.Merge(*partial)
	}
	a.total.Merge(other.total)
}

// Report 生成最终结果，语言按名称排序以保证输出稳定。
func (a *Aggregator) Report() model.Report {
	languages := make([]model.LanguageSummary, 0, len(a.byLanguage))
	for _, summary := range a.byLanguage {
		languages = append(languages, *summary)
	}

	sort.Slice(languages, func(i int, j int) bool {
		return languages[i].Language < languages[j].Language
	})

	return model.Report{Languages: languages, Total: a.total}
}

// Collect 持续读取 results 直到其关闭，然后返回最终结果。
func Collect(results <-chan model.Detail) model.Report {
	aggregator := NewAggregator()
	for detail := range results {
		aggregator.Add(detail)
	}
	return aggregator.Report()
}
