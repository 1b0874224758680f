package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/search"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDocumentStoreDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:documentstore?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Courier{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Courier{}).Error; err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	return db
}

func TestDocumentStoreQueryConjunction(t *testing.T) {
	db := newDocumentStoreDB(t)
	couriers := []models.Courier{
		{Name: "wang wei", Phone: "13800000001", IsActive: true},
		{Name: "wang fang", Phone: "13800000002", IsActive: false},
		{Name: "li lei", Phone: "13800000003", IsActive: true},
	}
	for i := range couriers {
		if err := db.Create(&couriers[i]).Error; err != nil {
			t.Fatalf("seed courier failed: %v", err)
		}
	}

	store := NewDocumentStore(db)
	store.RegisterCollection("couriers", "couriers", true)

	docs, err := store.Query(context.Background(), "couriers", []search.Condition{
		{Field: "name", Op: search.OpGreaterEqual, Value: "wang"},
		{Field: "name", Op: search.OpLess, Value: "wang\uf8ff"},
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.ID == "" {
			t.Fatal("expected non-empty document id")
		}
		if _, ok := doc.Data["name"]; !ok {
			t.Fatal("expected name field in document data")
		}
	}
}

func TestDocumentStoreSoftDeleteFiltered(t *testing.T) {
	db := newDocumentStoreDB(t)
	courier := models.Courier{Name: "zhao min", IsActive: true}
	if err := db.Create(&courier).Error; err != nil {
		t.Fatalf("seed courier failed: %v", err)
	}
	if err := db.Delete(&courier).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	store := NewDocumentStore(db)
	store.RegisterCollection("couriers", "couriers", true)

	docs, err := store.Query(context.Background(), "couriers", nil)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	for _, doc := range docs {
		if doc.Data["name"] == "zhao min" {
			t.Fatal("soft-deleted row must not be returned")
		}
	}
}

func TestDocumentStoreUnknownCollection(t *testing.T) {
	store := NewDocumentStore(newDocumentStoreDB(t))
	if _, err := store.Query(context.Background(), "nope", nil); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestDocumentStoreWithSearcherEndToEnd(t *testing.T) {
	db := newDocumentStoreDB(t)
	now := time.Now()
	couriers := []models.Courier{
		{Name: "mccall", Phone: "1", IsActive: true, CreatedAt: now.Add(-time.Hour)},
		{Name: "Mcdonald", Phone: "2", IsActive: true, CreatedAt: now},
		{Name: "wang", Phone: "3", IsActive: true, CreatedAt: now.Add(-2 * time.Hour)},
	}
	for i := range couriers {
		if err := db.Create(&couriers[i]).Error; err != nil {
			t.Fatalf("seed courier failed: %v", err)
		}
	}

	store := NewDocumentStore(db)
	store.RegisterCollection("couriers", "couriers", true)
	searcher := search.NewSearcher(store)

	result, err := searcher.Search(context.Background(), "couriers",
		search.Params{Field: search.Field{Name: "name", Type: search.FieldTypeText}, Value: "mc"},
		search.Page{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", result.Total)
	}
}
