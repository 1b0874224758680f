package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newSearchServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:searchservice?mode=memory&cache=shared"), &gorm.Config{
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

func TestSearchServiceRejectsBadInputs(t *testing.T) {
	db := newSearchServiceDB(t)
	svc := NewSearchService(repository.NewDocumentStore(db))

	if _, err := svc.Search(context.Background(), "no-such-collection", "", "", 1, 20); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
	if _, err := svc.Search(context.Background(), "couriers", "no_such_field", "wang", 1, 20); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for unregistered field, got %v", err)
	}
	if _, err := svc.Search(context.Background(), "couriers", "", "wang", 1, 20); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for value without field, got %v", err)
	}
	if _, err := svc.Fields("no-such-collection"); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection from Fields, got %v", err)
	}
}

func TestSearchServiceUnfilteredListing(t *testing.T) {
	db := newSearchServiceDB(t)
	for _, courier := range []models.Courier{
		{Name: "wang wei", Phone: "13800000001", IsActive: true},
		{Name: "li lei", Phone: "13800000002", IsActive: true},
	} {
		if err := db.Create(&courier).Error; err != nil {
			t.Fatalf("seed courier failed: %v", err)
		}
	}

	svc := NewSearchService(repository.NewDocumentStore(db))
	result, err := svc.Search(context.Background(), "couriers", "", "", 1, 20)
	if err != nil {
		t.Fatalf("unfiltered search failed: %v", err)
	}
	if result.Total != 2 || len(result.Documents) != 2 {
		t.Fatalf("expected 2 couriers, got total=%d len=%d", result.Total, len(result.Documents))
	}
}
