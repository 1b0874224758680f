package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Params 单字段查询参数
type Params struct {
	Field Field
	Value string
}

// Page 分页参数（页码从 1 开始）
type Page struct {
	Page int
	Size int
}

// Result 查询结果：当前页文档与过滤后总数
type Result struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
}

// Searcher 在 Store 之上执行查询、排序与内存分页
type Searcher struct {
	store Store
}

// NewSearcher 创建查询执行器
func NewSearcher(store Store) *Searcher {
	return &Searcher{store: store}
}

// Search 执行单字段查询并分页。
// 存储层不提供服务端游标，因此先取全部匹配文档，按新近度排序后在内存切页；
// Total 是过滤后的总数，与页码无关。存储层错误原样上抛，不重试。
func (s *Searcher) Search(ctx context.Context, collection string, params Params, page Page) (Result, error) {
	matched, err := s.match(ctx, collection, params)
	if err != nil {
		return Result{}, err
	}

	sortByRecency(matched)

	total := len(matched)
	offset, limit := pageBounds(page, total)
	return Result{
		Documents: matched[offset:limit],
		Total:     total,
	}, nil
}

func (s *Searcher) match(ctx context.Context, collection string, params Params) ([]Document, error) {
	value := strings.TrimSpace(params.Value)
	if value == "" {
		return s.store.Query(ctx, collection, nil)
	}

	// id 是伪字段：对文档标识本身做大小写不敏感前缀匹配
	if strings.EqualFold(params.Field.Name, FieldID) {
		all, err := s.store.Query(ctx, collection, nil)
		if err != nil {
			return nil, err
		}
		return filterByIDPrefix(all, value), nil
	}

	if params.Field.Type == FieldTypeText {
		return s.matchTextPrefix(ctx, collection, params.Field, value)
	}

	conditions, ok := BuildConditions(params.Field, value)
	if !ok {
		// 不可解析的输入匹配空集
		return nil, nil
	}
	return s.store.Query(ctx, collection, conditions)
}

// matchTextPrefix 文本前缀查询：按大小写变体逐个发范围查询，
// 按文档 ID 并集去重，再用真正大小写不敏感的前缀判断复核。
func (s *Searcher) matchTextPrefix(ctx context.Context, collection string, field Field, value string) ([]Document, error) {
	merged := make([]Document, 0)
	seen := make(map[string]bool)
	for _, variant := range CaseVariants(value) {
		docs, err := s.store.Query(ctx, collection, textPrefixConditions(field.Name, variant))
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if seen[doc.ID] {
				continue
			}
			seen[doc.ID] = true
			merged = append(merged, doc)
		}
	}

	lowered := strings.ToLower(value)
	filtered := merged[:0]
	for _, doc := range merged {
		fieldValue := stringFieldValue(doc, field.Name)
		if strings.HasPrefix(strings.ToLower(fieldValue), lowered) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

func filterByIDPrefix(docs []Document, value string) []Document {
	lowered := strings.ToLower(value)
	filtered := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if strings.HasPrefix(strings.ToLower(doc.ID), lowered) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

func stringFieldValue(doc Document, fieldName string) string {
	raw, ok := doc.Data[fieldName]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

// sortByRecency 按新近度降序排序：created_at 优先，其次 updated_at，
// 再退到任意日期/时间字段的最大值；都没有的排在最后。平手按 ID 保证稳定。
func sortByRecency(docs []Document) {
	keys := make(map[string]float64, len(docs))
	for _, doc := range docs {
		keys[doc.ID] = recencyKey(doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		ki, kj := keys[docs[i].ID], keys[docs[j].ID]
		if ki != kj {
			return ki > kj
		}
		return docs[i].ID < docs[j].ID
	})
}

func recencyKey(doc Document) float64 {
	if t, ok := timeValue(doc.Data["created_at"]); ok {
		return float64(t.UnixMilli())
	}
	if t, ok := timeValue(doc.Data["updated_at"]); ok {
		return float64(t.UnixMilli())
	}
	best := math.Inf(-1)
	for key, raw := range doc.Data {
		lowered := strings.ToLower(key)
		if !strings.Contains(lowered, "date") && !strings.Contains(lowered, "time") {
			continue
		}
		if t, ok := timeValue(raw); ok {
			if candidate := float64(t.UnixMilli()); candidate > best {
				best = candidate
			}
		}
	}
	return best
}

// timeValue 尽力把字段值解释为时间戳
func timeValue(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.Unix(v, 0), true
	case float64:
		return time.Unix(int64(v), 0), true
	default:
		return time.Time{}, false
	}
}

func pageBounds(page Page, total int) (int, int) {
	size := page.Size
	if size <= 0 {
		size = 20
	}
	number := page.Page
	if number <= 0 {
		number = 1
	}
	offset := (number - 1) * size
	if offset > total {
		offset = total
	}
	limit := offset + size
	if limit > total {
		limit = total
	}
	return offset, limit
}
