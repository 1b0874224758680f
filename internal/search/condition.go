package search

import (
	"strconv"
	"time"
)

// Op 查询条件操作符
type Op string

const (
	OpEqual        Op = "=="
	OpGreaterEqual Op = ">="
	OpLess         Op = "<"
)

// Condition 单个查询条件（合取语义）
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// prefixUpperBound 是文本前缀范围查询的右开边界附加符，
// 取 Unicode 私有区高位码点，使 [v, v+bound) 覆盖全部以 v 开头的字符串。
const prefixUpperBound = "\uf8ff"

// dateInputLayouts 日期输入支持的格式
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// BuildConditions 将一个 (字段, 原始输入) 翻译为存储层查询条件。
// 第二个返回值为 false 表示输入对该字段类型不可解析，应当匹配空集而非报错。
func BuildConditions(field Field, raw string) ([]Condition, bool) {
	if raw == "" {
		return nil, true
	}
	switch field.Type {
	case FieldTypeText:
		return textPrefixConditions(field.Name, raw), true
	case FieldTypeNumber:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return []Condition{{Field: field.Name, Op: OpEqual, Value: parsed}}, true
	case FieldTypeDate:
		dayStart, ok := parseDateInput(raw)
		if !ok {
			return nil, false
		}
		dayEnd := dayStart.AddDate(0, 0, 1)
		return []Condition{
			{Field: field.Name, Op: OpGreaterEqual, Value: dayStart},
			{Field: field.Name, Op: OpLess, Value: dayEnd},
		}, true
	default:
		// enum 及未知类型按原始值等值匹配
		return []Condition{{Field: field.Name, Op: OpEqual, Value: raw}}, true
	}
}

// textPrefixConditions 构造前缀范围条件 [v, v+上界)
func textPrefixConditions(fieldName, value string) []Condition {
	return []Condition{
		{Field: fieldName, Op: OpGreaterEqual, Value: value},
		{Field: fieldName, Op: OpLess, Value: value + prefixUpperBound},
	}
}

// parseDateInput 解析日期输入，归一到本地时区当天零点
func parseDateInput(raw string) (time.Time, bool) {
	for _, layout := range dateInputLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		year, month, day := parsed.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}
