package languages

import (
	"strings"

	"cloc/internal/model"
)

// Classify 按行统计 content 中的空行、注释行和代码行。
//
// 每行先去掉首尾空白，然后依次判定：
//  1. 空行，即使处于块注释内部也计为 blank；
//  2. 不在块注释内时，以单行注释前缀开头的计为 comment；
//  3. 块注释：打开、延续或关闭块注释的行计为 comment；
//  4. 其余计为 code。
//
// 跨行状态（当前打开的块注释）只存在于本次调用内，不同文件之间互不影响。
func Classify(content string, profile *Profile) model.LineCount {
	var count model.LineCount
	var open *BlockPair

	for len(content) > 0 {
		var line string
		if idx := strings.IndexByte(content, '\n'); idx >= 0 {
			line, content = content[:idx], content[idx+1:]
		} else {
			line, content = content, ""
		}

		line = strings.TrimSpace(line)
		if line == "" {
			count.Blank++
			continue
		}

		if open == nil && hasAnyPrefix(line, profile.SingleLine) {
			count.Comment++
			continue
		}

		var matched bool
		open, matched = matchBlock(line, profile.Blocks, open)
		if matched {
			count.Comment++
			continue
		}

		count.Code++
	}

	return count
}

// matchBlock 处理块注释状态转移，返回新的打开状态以及本行是否属于注释。
//
// 已有块注释打开时只考虑同一对标记。行首再次出现同一起始标记会直接关闭块注释，
// 不支持嵌套注释。
func matchBlock(line string, blocks []BlockPair, open *BlockPair) (*BlockPair, bool) {
	for i := range blocks {
		pair := &blocks[i]
		if open != nil && *open != *pair {
			continue
		}

		sameLine := false
		if strings.HasPrefix(line, pair.Start) {
			if open != nil {
				return nil, true
			}
			sameLine = true
			open = pair
		}

		if open != nil {
			// 同一行打开又关闭时，要求行长足以容纳起止两个标记，
			// 避免 "'''" 这类起止相同的标记被同一段字符既当开始又当结束。
			if strings.HasSuffix(line, pair.End) &&
				(!sameLine || len(line) >= len(pair.Start)+len(pair.End)) {
				return nil, true
			}
			return open, true
		}
	}

	return open, false
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
