package search

import (
	"strings"
	"unicode"
)

// CaseVariants 生成文本输入的大小写变体：原始、全小写、全大写、
// 首字母大写、逐词首字母大写。去重后返回，顺序稳定。
//
// 变体枚举只覆盖这几种常见写法，混合大小写（如 "mCcall"）在
// 范围查询阶段会漏掉，由执行器的大小写不敏感前缀复核兜底不了
// 的部分保持为已知行为。
func CaseVariants(value string) []string {
	if value == "" {
		return nil
	}
	candidates := []string{
		value,
		strings.ToLower(value),
		strings.ToUpper(value),
		capitalize(value),
		titleCase(value),
	}
	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		variants = append(variants, candidate)
	}
	return variants
}

// capitalize 首字母大写，其余小写
func capitalize(value string) string {
	runes := []rune(strings.ToLower(value))
	if len(runes) == 0 {
		return value
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titleCase 逐词首字母大写（按空格分词）
func titleCase(value string) string {
	words := strings.Split(value, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}
