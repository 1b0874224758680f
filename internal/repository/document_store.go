package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dingcan-next/internal/search"

	"gorm.io/gorm"
)

// documentCollection 文档集合到关系表的映射
type documentCollection struct {
	table      string
	softDelete bool // 表带 deleted_at 软删除列时过滤已删除行
}

// DocumentStore 把关系表按集合名暴露为 search.Store，
// 支撑检索层的合取范围/等值条件查询。
type DocumentStore struct {
	db          *gorm.DB
	collections map[string]documentCollection
}

// NewDocumentStore 创建文档存储
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{
		db:          db,
		collections: make(map[string]documentCollection),
	}
}

// RegisterCollection 登记集合对应的表
func (s *DocumentStore) RegisterCollection(collection, table string, softDelete bool) {
	s.collections[collection] = documentCollection{table: table, softDelete: softDelete}
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Query 执行合取条件查询，返回文档集合。
// 条件为空时返回集合全部文档。
func (s *DocumentStore) Query(ctx context.Context, collection string, conditions []search.Condition) ([]search.Document, error) {
	registered, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection: %s", collection)
	}

	query := s.db.WithContext(ctx).Table(registered.table)
	if registered.softDelete {
		query = query.Where("deleted_at IS NULL")
	}
	for _, condition := range conditions {
		if !identifierPattern.MatchString(condition.Field) {
			return nil, fmt.Errorf("invalid field name: %s", condition.Field)
		}
		operator, err := sqlOperator(condition.Op)
		if err != nil {
			return nil, err
		}
		// 列名加双引号，避免 window 等保留字冲突
		query = query.Where(fmt.Sprintf(`"%s" %s ?`, condition.Field, operator), condition.Value)
	}

	var rows []map[string]interface{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	documents := make([]search.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, search.Document{
			ID:   fmt.Sprint(row["id"]),
			Data: row,
		})
	}
	return documents, nil
}

func sqlOperator(op search.Op) (string, error) {
	switch op {
	case search.OpEqual:
		return "=", nil
	case search.OpGreaterEqual:
		return ">=", nil
	case search.OpLess:
		return "<", nil
	default:
		return "", fmt.Errorf("unsupported operator: %s", op)
	}
}
