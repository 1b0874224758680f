package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// memoryStore 测试用内存文档存储
type memoryStore struct {
	collections map[string][]Document
	failWith    error
	queryCount  int
}

func (m *memoryStore) Query(_ context.Context, collection string, conditions []Condition) ([]Document, error) {
	m.queryCount++
	if m.failWith != nil {
		return nil, m.failWith
	}
	var matched []Document
	for _, doc := range m.collections[collection] {
		if matchesAll(doc, conditions) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func matchesAll(doc Document, conditions []Condition) bool {
	for _, condition := range conditions {
		if !matches(doc, condition) {
			return false
		}
	}
	return true
}

func matches(doc Document, condition Condition) bool {
	raw, ok := doc.Data[condition.Field]
	if !ok {
		return false
	}
	switch want := condition.Value.(type) {
	case string:
		have, ok := raw.(string)
		if !ok {
			return false
		}
		switch condition.Op {
		case OpEqual:
			return have == want
		case OpGreaterEqual:
			return have >= want
		case OpLess:
			return have < want
		}
	case float64:
		have, ok := raw.(float64)
		if !ok {
			return false
		}
		return condition.Op == OpEqual && have == want
	case time.Time:
		have, ok := raw.(time.Time)
		if !ok {
			return false
		}
		switch condition.Op {
		case OpGreaterEqual:
			return !have.Before(want)
		case OpLess:
			return have.Before(want)
		}
	}
	return false
}

func makeStore() *memoryStore {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.Local)
	docs := []Document{
		{ID: "sub-001", Data: map[string]interface{}{"customer_name": "mccall", "created_at": base.Add(1 * time.Hour)}},
		{ID: "sub-002", Data: map[string]interface{}{"customer_name": "Mcdonald", "created_at": base.Add(3 * time.Hour)}},
		{ID: "sub-003", Data: map[string]interface{}{"customer_name": "MCGEE", "created_at": base.Add(2 * time.Hour)}},
		{ID: "sub-004", Data: map[string]interface{}{"customer_name": "wang", "created_at": base}},
		{ID: "sub-005", Data: map[string]interface{}{"customer_name": "mCcall", "created_at": base.Add(4 * time.Hour)}},
	}
	return &memoryStore{collections: map[string][]Document{"subscriptions": docs}}
}

func TestSearchTextPrefixUnionsCaseVariants(t *testing.T) {
	searcher := NewSearcher(makeStore())
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "mc"}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	// 变体范围查询命中 mccall / Mcdonald / MCGEE；混合大小写 mCcall 漏掉（已知行为）
	if result.Total != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", result.Total, result.Documents)
	}
	for _, doc := range result.Documents {
		if doc.ID == "sub-005" {
			t.Fatal("mixed-case document should not be matched by variant expansion")
		}
	}
}

func TestSearchSortsByRecencyDescending(t *testing.T) {
	searcher := NewSearcher(makeStore())
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "mc"}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"sub-002", "sub-003", "sub-001"}
	for i, id := range want {
		if result.Documents[i].ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, result.Documents[i].ID)
		}
	}
}

func TestSearchPaginationPartitionsResults(t *testing.T) {
	store := &memoryStore{collections: map[string][]Document{"subscriptions": nil}}
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		store.collections["subscriptions"] = append(store.collections["subscriptions"], Document{
			ID:   fmt.Sprintf("doc-%02d", i),
			Data: map[string]interface{}{"customer_name": "wang", "created_at": base.Add(time.Duration(i) * time.Hour)},
		})
	}
	searcher := NewSearcher(store)
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "wang"}

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: page, Size: 3})
		if err != nil {
			t.Fatal(err)
		}
		if result.Total != 7 {
			t.Fatalf("page %d: expected total 7, got %d", page, result.Total)
		}
		wantLen := 3
		if page == 3 {
			wantLen = 1
		}
		if len(result.Documents) != wantLen {
			t.Fatalf("page %d: expected %d docs, got %d", page, wantLen, len(result.Documents))
		}
		for _, doc := range result.Documents {
			if seen[doc.ID] {
				t.Fatalf("document %s appeared on multiple pages", doc.ID)
			}
			seen[doc.ID] = true
		}
	}
	if len(seen) != 7 {
		t.Fatalf("pages did not partition the result set: %d unique docs", len(seen))
	}
}

func TestSearchPageBeyondEnd(t *testing.T) {
	searcher := NewSearcher(makeStore())
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "mc"}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 9, Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Documents) != 0 {
		t.Fatalf("expected empty page, got %d docs", len(result.Documents))
	}
	if result.Total != 3 {
		t.Fatalf("total must be page-independent, got %d", result.Total)
	}
}

func TestSearchIDPseudoField(t *testing.T) {
	searcher := NewSearcher(makeStore())
	params := Params{Field: Field{Name: "id", Type: FieldTypeText}, Value: "SUB-00"}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 2})
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 5 {
		t.Fatalf("expected all 5 docs by id prefix, got %d", result.Total)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("expected page size 2, got %d", len(result.Documents))
	}
}

func TestSearchUnparseableNumberMatchesNothing(t *testing.T) {
	store := makeStore()
	searcher := NewSearcher(store)
	params := Params{Field: Field{Name: "distance_km", Type: FieldTypeNumber}, Value: "twelve"}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 0 {
		t.Fatalf("expected empty result, got %d", result.Total)
	}
	if store.queryCount != 0 {
		t.Fatalf("unparseable input must not hit the store, got %d queries", store.queryCount)
	}
}

func TestSearchStoreErrorPropagates(t *testing.T) {
	boom := errors.New("store unavailable")
	store := makeStore()
	store.failWith = boom
	searcher := NewSearcher(store)
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "mc"}
	_, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 20})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if store.queryCount != 1 {
		t.Fatalf("expected no retry, got %d queries", store.queryCount)
	}
}

func TestSearchEmptyValueReturnsAll(t *testing.T) {
	searcher := NewSearcher(makeStore())
	params := Params{Field: Field{Name: "customer_name", Type: FieldTypeText}, Value: "  "}
	result, err := searcher.Search(context.Background(), "subscriptions", params, Page{Page: 1, Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 5 {
		t.Fatalf("expected all docs, got %d", result.Total)
	}
}
