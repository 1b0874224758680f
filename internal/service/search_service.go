package service

import (
	"context"
	"strings"

	"github.com/dingcan-next/internal/repository"
	"github.com/dingcan-next/internal/search"
)

// SearchService 管理端通用检索服务：对已登记集合执行单字段检索。
type SearchService struct {
	catalog  *search.Catalog
	searcher *search.Searcher
}

// NewSearchService 创建检索服务并登记各集合的可检索字段
func NewSearchService(store *repository.DocumentStore) *SearchService {
	catalog := search.NewCatalog()

	store.RegisterCollection("subscriptions", "subscription_requests", true)
	catalog.Register("subscriptions",
		search.Field{Name: "id", Label: "编号", Type: search.FieldTypeText},
		search.Field{Name: "contact_name", Label: "收餐人", Type: search.FieldTypeText},
		search.Field{Name: "contact_phone", Label: "电话", Type: search.FieldTypeText},
		search.Field{Name: "address", Label: "地址", Type: search.FieldTypeText},
		search.Field{Name: "status", Label: "状态", Type: search.FieldTypeEnum},
		search.Field{Name: "start_date", Label: "开始日期", Type: search.FieldTypeDate},
		search.Field{Name: "end_date", Label: "结束日期", Type: search.FieldTypeDate},
	)

	store.RegisterCollection("deliveries", "delivery_assignments", false)
	catalog.Register("deliveries",
		search.Field{Name: "id", Label: "编号", Type: search.FieldTypeText},
		search.Field{Name: "customer_name", Label: "收餐人", Type: search.FieldTypeText},
		search.Field{Name: "phone", Label: "电话", Type: search.FieldTypeText},
		search.Field{Name: "group_name", Label: "分组", Type: search.FieldTypeText},
		search.Field{Name: "window", Label: "波次", Type: search.FieldTypeEnum},
		search.Field{Name: "status", Label: "状态", Type: search.FieldTypeEnum},
		search.Field{Name: "distance_km", Label: "距离", Type: search.FieldTypeNumber},
	)

	store.RegisterCollection("customers", "users", true)
	catalog.Register("customers",
		search.Field{Name: "id", Label: "编号", Type: search.FieldTypeText},
		search.Field{Name: "email", Label: "邮箱", Type: search.FieldTypeText},
		search.Field{Name: "display_name", Label: "昵称", Type: search.FieldTypeText},
		search.Field{Name: "phone", Label: "电话", Type: search.FieldTypeText},
		search.Field{Name: "status", Label: "状态", Type: search.FieldTypeEnum},
	)

	store.RegisterCollection("couriers", "couriers", true)
	catalog.Register("couriers",
		search.Field{Name: "id", Label: "编号", Type: search.FieldTypeText},
		search.Field{Name: "name", Label: "姓名", Type: search.FieldTypeText},
		search.Field{Name: "phone", Label: "电话", Type: search.FieldTypeText},
	)

	store.RegisterCollection("packages", "meal_packages", true)
	catalog.Register("packages",
		search.Field{Name: "id", Label: "编号", Type: search.FieldTypeText},
		search.Field{Name: "name", Label: "名称", Type: search.FieldTypeText},
		search.Field{Name: "price", Label: "价格", Type: search.FieldTypeNumber},
	)

	return &SearchService{
		catalog:  catalog,
		searcher: search.NewSearcher(store),
	}
}

// Fields 返回集合的可检索字段声明
func (s *SearchService) Fields(collection string) ([]search.Field, error) {
	fields := s.catalog.Fields(collection)
	if fields == nil {
		return nil, ErrUnknownCollection
	}
	return fields, nil
}

// Search 对集合执行单字段检索并分页
func (s *SearchService) Search(ctx context.Context, collection, fieldName, value string, page, pageSize int) (search.Result, error) {
	if s.catalog.Fields(collection) == nil {
		return search.Result{}, ErrUnknownCollection
	}
	// 无字段无值是合法的全量列表；带值时字段必须已登记
	var field search.Field
	if fieldName != "" || strings.TrimSpace(value) != "" {
		var ok bool
		field, ok = s.catalog.Lookup(collection, fieldName)
		if !ok {
			return search.Result{}, ErrUnknownField
		}
	}
	return s.searcher.Search(ctx, collection, search.Params{Field: field, Value: value}, search.Page{Page: page, Size: pageSize})
}
