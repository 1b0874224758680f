package search

import (
	"strings"
	"sync"
)

// FieldType 查询字段类型
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeEnum   FieldType = "enum"
)

// FieldID 文档标识伪字段（对文档 ID 做前缀匹配，不落到存储查询）
const FieldID = "id"

// Field 可检索字段声明
type Field struct {
	Name  string    `json:"name"`  // 字段名（文档内键名）
	Label string    `json:"label"` // 展示名
	Type  FieldType `json:"type"`  // 字段类型
}

// Catalog 按集合登记的可检索字段目录
type Catalog struct {
	mu     sync.RWMutex
	fields map[string][]Field
}

// NewCatalog 创建空目录
func NewCatalog() *Catalog {
	return &Catalog{fields: make(map[string][]Field)}
}

// Register 登记集合的可检索字段（重复登记覆盖）
func (c *Catalog) Register(collection string, fields ...Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields[collection] = append([]Field(nil), fields...)
}

// Fields 返回集合的字段声明（未登记返回 nil）
func (c *Catalog) Fields(collection string) []Field {
	c.mu.RLock()
	defer c.mu.RUnlock()
	registered, ok := c.fields[collection]
	if !ok {
		return nil
	}
	return append([]Field(nil), registered...)
}

// Lookup 按字段名查找集合内的字段声明
func (c *Catalog) Lookup(collection, fieldName string) (Field, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, field := range c.fields[collection] {
		if strings.EqualFold(field.Name, fieldName) {
			return field, true
		}
	}
	return Field{}, false
}

// Collections 返回已登记的集合名
func (c *Catalog) Collections() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.fields))
	for name := range c.fields {
		names = append(names, name)
	}
	return names
}
