package search

import (
	"context"
)

// Document 集合中的一条文档：字符串标识 + 字段表
type Document struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// Store 文档存储抽象：按集合名执行合取的范围/等值条件查询。
// conditions 为空时返回集合全部文档。
type Store interface {
	Query(ctx context.Context, collection string, conditions []Condition) ([]Document, error)
}
